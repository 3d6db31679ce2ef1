package models

import "github.com/google/uuid"

type Project struct {
	BaseModel

	Name        string    `gorm:"not null"`
	Description string
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Deadline    Deadline
}
