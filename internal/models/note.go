package models

import "github.com/google/uuid"

type Note struct {
	BaseModel

	Name      string    `gorm:"not null" json:"name"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project"`
}
