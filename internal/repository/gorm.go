package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a *gorm.DB, which may itself be a
// transaction handle.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Users() UserRepository       { return &gormUsers{db: s.db} }
func (s *GormStore) Projects() ProjectRepository { return &gormProjects{db: s.db} }
func (s *GormStore) Issues() IssueRepository     { return &gormIssues{db: s.db} }
func (s *GormStore) Notes() NoteRepository       { return &gormNotes{db: s.db} }

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// deleted turns a zero-row delete into ErrNotFound.
func deleted(result *gorm.DB, what string) error {
	if result.Error != nil {
		return fmt.Errorf("%s: %w", what, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

var _ Store = (*GormStore)(nil)
