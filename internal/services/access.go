package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/apperrors"
	"github.com/monocle-dev/trackr/internal/models"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/monocle-dev/trackr/internal/types"
)

// lookupErr maps a repository miss to NotFound for the named entity and
// anything else to Internal.
func lookupErr(err error, entity string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound(entity)
	}
	return apperrors.Internal(err)
}

// ownedProject resolves existence first, then ownership.
func ownedProject(ctx context.Context, store repository.Store, gate Gate, caller types.Identity, projectID uuid.UUID, action Action) (*models.Project, error) {
	project, err := store.Projects().FindByID(ctx, projectID)
	if err != nil {
		return nil, lookupErr(err, "Project")
	}
	if err := gate.Authorize(caller, project, action); err != nil {
		return nil, err
	}
	return project, nil
}

// ownedIssue resolves the issue, then its project, then ownership.
func ownedIssue(ctx context.Context, store repository.Store, gate Gate, caller types.Identity, issueID uuid.UUID, action Action) (*models.Issue, error) {
	issue, err := store.Issues().FindByID(ctx, issueID)
	if err != nil {
		return nil, lookupErr(err, "Issue")
	}
	if _, err := ownedProject(ctx, store, gate, caller, issue.ProjectID, action); err != nil {
		return nil, err
	}
	return issue, nil
}

func ownedNote(ctx context.Context, store repository.Store, gate Gate, caller types.Identity, noteID uuid.UUID, action Action) (*models.Note, error) {
	note, err := store.Notes().FindByID(ctx, noteID)
	if err != nil {
		return nil, lookupErr(err, "Note")
	}
	if _, err := ownedProject(ctx, store, gate, caller, note.ProjectID, action); err != nil {
		return nil, err
	}
	return note, nil
}
