package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/apperrors"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/rs/zerolog"
)

type CascadeResult struct {
	DeletedProjects int64 `json:"deletedProjects,omitempty"`
	DeletedIssues   int64 `json:"deletedIssues"`
	DeletedNotes    int64 `json:"deletedNotes"`
}

// CascadeCoordinator removes a project together with its issues and notes
// in a single store transaction. On any failure nothing is removed.
type CascadeCoordinator struct {
	store  repository.Store
	logger zerolog.Logger
}

func NewCascadeCoordinator(store repository.Store, logger zerolog.Logger) *CascadeCoordinator {
	return &CascadeCoordinator{store: store, logger: logger}
}

func (c *CascadeCoordinator) CascadeDeleteProject(ctx context.Context, projectID uuid.UUID) (CascadeResult, error) {
	var result CascadeResult

	err := c.store.Transaction(ctx, func(tx repository.Store) error {
		r, err := deleteProjectTree(ctx, tx, projectID)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		c.logger.Error().Err(err).Str("project_id", projectID.String()).Msg("project cascade rolled back")
		return CascadeResult{}, cascadeErr(err, "Project")
	}

	c.logger.Info().
		Str("project_id", projectID.String()).
		Int64("deleted_issues", result.DeletedIssues).
		Int64("deleted_notes", result.DeletedNotes).
		Msg("project deleted")
	return result, nil
}

// CascadeDeleteUser removes every project the user owns, each with its
// children, and then the user, all in one transaction.
func (c *CascadeCoordinator) CascadeDeleteUser(ctx context.Context, userID uuid.UUID) (CascadeResult, error) {
	var total CascadeResult

	err := c.store.Transaction(ctx, func(tx repository.Store) error {
		projects, err := tx.Projects().FindByOwner(ctx, userID)
		if err != nil {
			return fmt.Errorf("list owned projects: %w", err)
		}
		for _, project := range projects {
			r, err := deleteProjectTree(ctx, tx, project.ID)
			if err != nil {
				return err
			}
			total.DeletedProjects++
			total.DeletedIssues += r.DeletedIssues
			total.DeletedNotes += r.DeletedNotes
		}
		return tx.Users().Delete(ctx, userID)
	})
	if err != nil {
		c.logger.Error().Err(err).Str("user_id", userID.String()).Msg("user cascade rolled back")
		return CascadeResult{}, cascadeErr(err, "User")
	}

	c.logger.Info().
		Str("user_id", userID.String()).
		Int64("deleted_projects", total.DeletedProjects).
		Int64("deleted_issues", total.DeletedIssues).
		Int64("deleted_notes", total.DeletedNotes).
		Msg("user deleted")
	return total, nil
}

// deleteProjectTree deletes children before the project row.
func deleteProjectTree(ctx context.Context, tx repository.Store, projectID uuid.UUID) (CascadeResult, error) {
	issues, err := tx.Issues().DeleteByProject(ctx, projectID)
	if err != nil {
		return CascadeResult{}, fmt.Errorf("delete issues of %s: %w", projectID, err)
	}
	notes, err := tx.Notes().DeleteByProject(ctx, projectID)
	if err != nil {
		return CascadeResult{}, fmt.Errorf("delete notes of %s: %w", projectID, err)
	}
	if err := tx.Projects().Delete(ctx, projectID); err != nil {
		return CascadeResult{}, fmt.Errorf("delete project %s: %w", projectID, err)
	}
	return CascadeResult{DeletedIssues: issues, DeletedNotes: notes}, nil
}

// cascadeErr keeps NotFound for a root that vanished under us and reports
// everything else as a cascade failure.
func cascadeErr(err error, entity string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound(entity)
	}
	return apperrors.CascadeFailure(err)
}
