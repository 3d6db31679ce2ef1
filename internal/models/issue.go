package models

import "github.com/google/uuid"

// IssueStatus is the Kanban column of an issue.
type IssueStatus int

const (
	StatusToDo IssueStatus = iota
	StatusInProgress
	StatusCompleted
)

func (s IssueStatus) Valid() bool {
	return s >= StatusToDo && s <= StatusCompleted
}

func (s IssueStatus) String() string {
	switch s {
	case StatusToDo:
		return "todo"
	case StatusInProgress:
		return "in-progress"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

type IssuePriority int

const (
	PriorityLow IssuePriority = iota
	PriorityMedium
	PriorityHigh
)

func (p IssuePriority) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

type Issue struct {
	BaseModel

	Name        string        `gorm:"not null" json:"name"`
	Description string        `json:"description"`
	ProjectID   uuid.UUID     `gorm:"type:uuid;not null;index" json:"project"`
	Status      IssueStatus   `gorm:"not null" json:"status"`
	Priority    IssuePriority `gorm:"not null" json:"priority"`
}
