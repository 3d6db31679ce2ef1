package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/apperrors"
	"github.com/monocle-dev/trackr/internal/models"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/monocle-dev/trackr/internal/types"
)

type CreateIssueInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Status      *int   `json:"status"`
	Priority    *int   `json:"priority"`
}

// UpdateIssueInput replaces the name; nil fields keep their stored value.
type UpdateIssueInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Status      *int    `json:"status"`
	Priority    *int    `json:"priority"`
}

var issueMessages = map[string]string{
	"name":        "Please enter a name",
	"description": "Description is too long",
}

type IssueService struct {
	store      repository.Store
	gate       Gate
	transition *StatusTransition
}

func NewIssueService(store repository.Store, gate Gate, transition *StatusTransition) *IssueService {
	return &IssueService{store: store, gate: gate, transition: transition}
}

func (s *IssueService) Create(ctx context.Context, caller types.Identity, projectID uuid.UUID, input CreateIssueInput) (*models.Issue, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateIssueFields(input, input.Status, input.Priority); err != nil {
		return nil, err
	}

	if _, err := ownedProject(ctx, s.store, s.gate, caller, projectID, ActionWrite); err != nil {
		return nil, err
	}

	issue := models.Issue{
		Name:        input.Name,
		Description: input.Description,
		ProjectID:   projectID,
		Status:      models.StatusToDo,
		Priority:    models.PriorityMedium,
	}
	if input.Status != nil {
		issue.Status = models.IssueStatus(*input.Status)
	}
	if input.Priority != nil {
		issue.Priority = models.IssuePriority(*input.Priority)
	}

	if err := s.store.Issues().Create(ctx, &issue); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &issue, nil
}

func (s *IssueService) ListForProject(ctx context.Context, caller types.Identity, projectID uuid.UUID) ([]models.Issue, error) {
	if _, err := ownedProject(ctx, s.store, s.gate, caller, projectID, ActionRead); err != nil {
		return nil, err
	}
	issues, err := s.store.Issues().FindByProject(ctx, projectID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if issues == nil {
		issues = []models.Issue{}
	}
	return issues, nil
}

func (s *IssueService) Update(ctx context.Context, caller types.Identity, issueID uuid.UUID, input UpdateIssueInput) (*models.Issue, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateIssueFields(input, input.Status, input.Priority); err != nil {
		return nil, err
	}

	issue, err := ownedIssue(ctx, s.store, s.gate, caller, issueID, ActionWrite)
	if err != nil {
		return nil, err
	}

	issue.Name = input.Name
	if input.Description != nil {
		issue.Description = *input.Description
	}
	if input.Status != nil {
		issue.Status = models.IssueStatus(*input.Status)
	}
	if input.Priority != nil {
		issue.Priority = models.IssuePriority(*input.Priority)
	}

	if err := s.store.Issues().Update(ctx, issue); err != nil {
		return nil, lookupErr(err, "Issue")
	}
	return issue, nil
}

// SetStatus changes only the status column.
func (s *IssueService) SetStatus(ctx context.Context, caller types.Identity, issueID uuid.UUID, status int) (*models.Issue, error) {
	return s.transition.SetStatus(ctx, caller, issueID, status)
}

func (s *IssueService) Delete(ctx context.Context, caller types.Identity, issueID uuid.UUID) error {
	issue, err := ownedIssue(ctx, s.store, s.gate, caller, issueID, ActionDelete)
	if err != nil {
		return err
	}
	if err := s.store.Issues().Delete(ctx, issue.ID); err != nil {
		return lookupErr(err, "Issue")
	}
	return nil
}

func validateIssueFields(input interface{}, status, priority *int) error {
	var errs apperrors.ValidationErrors
	if err := validateInput(input, issueMessages); err != nil {
		fieldErrs, ok := err.(apperrors.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}
	if err := checkStatus(status); err != nil {
		errs = append(errs, err.(*apperrors.Error))
	}
	if err := checkPriority(priority); err != nil {
		errs = append(errs, err.(*apperrors.Error))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
