package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/apperrors"
	"github.com/monocle-dev/trackr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueCreateDefaults(t *testing.T) {
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")
	project := createProject(t, svc, owner, "p")

	issue, err := svc.Issues.Create(context.Background(), owner, project.ID, CreateIssueInput{Name: "bug"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusToDo, issue.Status)
	assert.Equal(t, models.PriorityMedium, issue.Priority)
	assert.Equal(t, project.ID, issue.ProjectID)
}

func TestIssueCreateKeepsLowPriority(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")
	project := createProject(t, svc, owner, "p")

	issue, err := svc.Issues.Create(ctx, owner, project.ID, CreateIssueInput{Name: "chore", Priority: intPtr(0)})
	require.NoError(t, err)

	stored, err := store.Issues().FindByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityLow, stored.Priority)
}

func TestIssueCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")
	project := createProject(t, svc, owner, "p")

	_, err := svc.Issues.Create(ctx, owner, project.ID, CreateIssueInput{Name: "bug", Status: intPtr(5)})
	require.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = svc.Issues.Create(ctx, owner, project.ID, CreateIssueInput{Name: "", Status: intPtr(7), Priority: intPtr(-1)})
	var fieldErrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"name", "status", "priority"}, fields)

	issues, err := store.Issues().FindByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestIssueCreateUnknownProject(t *testing.T) {
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")

	_, err := svc.Issues.Create(context.Background(), owner, uuid.New(), CreateIssueInput{Name: "bug"})
	require.True(t, apperrors.Is(err, apperrors.KindNotFound))
	assert.Contains(t, err.Error(), "Project not found")
}

func TestIssueUpdate(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")
	project := createProject(t, svc, owner, "p")
	issue := createIssue(t, svc, owner, project.ID, models.StatusToDo)

	updated, err := svc.Issues.Update(ctx, owner, issue.ID, UpdateIssueInput{
		Name:        "renamed",
		Description: strPtr("details"),
		Priority:    intPtr(int(models.PriorityHigh)),
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, "details", updated.Description)
	assert.Equal(t, models.PriorityHigh, updated.Priority)
	assert.Equal(t, models.StatusToDo, updated.Status)
	assert.Equal(t, project.ID, updated.ProjectID)

	_, err = svc.Issues.Update(ctx, owner, issue.ID, UpdateIssueInput{Name: "x", Priority: intPtr(9)})
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = svc.Issues.Update(ctx, owner, uuid.New(), UpdateIssueInput{Name: "x"})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestIssueListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")
	project := createProject(t, svc, owner, "p")

	empty, err := svc.Issues.ListForProject(ctx, owner, project.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first := createIssue(t, svc, owner, project.ID, models.StatusToDo)
	createIssue(t, svc, owner, project.ID, models.StatusCompleted)

	require.NoError(t, svc.Issues.Delete(ctx, owner, first.ID))
	list, err := svc.Issues.ListForProject(ctx, owner, project.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotEqual(t, first.ID, list[0].ID)

	err = svc.Issues.Delete(ctx, owner, first.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}
