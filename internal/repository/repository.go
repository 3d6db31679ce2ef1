// Package repository defines persistence for users, projects, issues and
// notes, and a gorm-backed implementation of it.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/models"
)

// ErrNotFound is returned (wrapped) when a lookup by primary key misses.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindNonAdmin(ctx context.Context) ([]models.User, error)
	HasAdmin(ctx context.Context) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error)
	FindAll(ctx context.Context) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type IssueRepository interface {
	Create(ctx context.Context, issue *models.Issue) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Issue, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Issue, error)
	FindByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]models.Issue, error)
	Update(ctx context.Context, issue *models.Issue) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.IssueStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
}

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Note, error)
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error)
}

// Store hands out repositories bound to one connection or transaction.
type Store interface {
	Users() UserRepository
	Projects() ProjectRepository
	Issues() IssueRepository
	Notes() NoteRepository

	// Transaction runs fn against a transactional view of the store. Changes
	// are committed only when fn returns nil.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	Ping(ctx context.Context) error
}
