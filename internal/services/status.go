package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/models"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/monocle-dev/trackr/internal/types"
)

// StatusTransition moves an issue between Kanban columns. Every column can
// reach every other one, and completed issues can be reopened.
type StatusTransition struct {
	store repository.Store
	gate  Gate
}

func NewStatusTransition(store repository.Store, gate Gate) *StatusTransition {
	return &StatusTransition{store: store, gate: gate}
}

func (t *StatusTransition) SetStatus(ctx context.Context, caller types.Identity, issueID uuid.UUID, status int) (*models.Issue, error) {
	if err := checkStatus(&status); err != nil {
		return nil, err
	}

	issue, err := ownedIssue(ctx, t.store, t.gate, caller, issueID, ActionWrite)
	if err != nil {
		return nil, err
	}

	if err := t.store.Issues().UpdateStatus(ctx, issue.ID, models.IssueStatus(status)); err != nil {
		return nil, lookupErr(err, "Issue")
	}

	updated, err := t.store.Issues().FindByID(ctx, issue.ID)
	if err != nil {
		return nil, lookupErr(err, "Issue")
	}
	return updated, nil
}
