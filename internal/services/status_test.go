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

func TestSetStatusMovesFreely(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")
	project := createProject(t, svc, owner, "board")
	issue := createIssue(t, svc, owner, project.ID, models.StatusToDo)

	steps := []models.IssueStatus{
		models.StatusCompleted,
		models.StatusToDo,
		models.StatusInProgress,
		models.StatusCompleted,
		models.StatusInProgress,
	}
	for _, status := range steps {
		updated, err := svc.Issues.SetStatus(ctx, owner, issue.ID, int(status))
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
		assert.Equal(t, issue.Name, updated.Name)
	}
}

func TestSetStatusRejectsOutOfRange(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")
	project := createProject(t, svc, owner, "board")
	issue := createIssue(t, svc, owner, project.ID, models.StatusInProgress)

	for _, bad := range []int{-1, 3, 5} {
		_, err := svc.Issues.SetStatus(ctx, owner, issue.ID, bad)
		assert.True(t, apperrors.Is(err, apperrors.KindValidation), "status %d", bad)
	}

	stored, err := store.Issues().FindByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, stored.Status)
}

func TestSetStatusChecksExistenceThenOwnership(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")
	intruder := createUser(t, store, "intruder@example.com")
	project := createProject(t, svc, owner, "board")
	issue := createIssue(t, svc, owner, project.ID, models.StatusToDo)

	_, err := svc.Issues.SetStatus(ctx, owner, uuid.New(), 1)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	_, err = svc.Issues.SetStatus(ctx, intruder, issue.ID, 2)
	assert.True(t, apperrors.Is(err, apperrors.KindUnauthorized))

	stored, err := store.Issues().FindByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusToDo, stored.Status)
}
