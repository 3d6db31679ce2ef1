package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/apperrors"
	"github.com/monocle-dev/trackr/internal/models"
	"github.com/monocle-dev/trackr/internal/repository/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascadeDeleteProject(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")

	doomed := createProject(t, svc, owner, "doomed")
	kept := createProject(t, svc, owner, "kept")
	for i := 0; i < 3; i++ {
		createIssue(t, svc, owner, doomed.ID, models.StatusToDo)
	}
	createNote(t, svc, owner, doomed.ID)
	createNote(t, svc, owner, doomed.ID)
	keptIssue := createIssue(t, svc, owner, kept.ID, models.StatusToDo)
	keptNote := createNote(t, svc, owner, kept.ID)

	cascade := NewCascadeCoordinator(store, zerolog.Nop())
	result, err := cascade.CascadeDeleteProject(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Equal(t, CascadeResult{DeletedIssues: 3, DeletedNotes: 2}, result)

	_, err = store.Projects().FindByID(ctx, doomed.ID)
	assert.Error(t, err)
	issues, err := store.Issues().FindByProject(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, issues)
	notes, err := store.Notes().FindByProject(ctx, doomed.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)

	_, err = store.Issues().FindByID(ctx, keptIssue.ID)
	assert.NoError(t, err)
	_, err = store.Notes().FindByID(ctx, keptNote.ID)
	assert.NoError(t, err)
}

func TestCascadeDeleteProjectWithoutChildren(t *testing.T) {
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")
	project := createProject(t, svc, owner, "empty")

	result, err := NewCascadeCoordinator(store, zerolog.Nop()).CascadeDeleteProject(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Zero(t, result.DeletedIssues)
	assert.Zero(t, result.DeletedNotes)
}

func TestCascadeDeleteProjectMissing(t *testing.T) {
	store := memory.NewStore()
	_, err := NewCascadeCoordinator(store, zerolog.Nop()).CascadeDeleteProject(context.Background(), uuid.New())
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestCascadeFailsClosed(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")
	project := createProject(t, svc, owner, "fragile")
	issue := createIssue(t, svc, owner, project.ID, models.StatusInProgress)
	note := createNote(t, svc, owner, project.ID)

	cascade := NewCascadeCoordinator(brokenNotesStore{store}, zerolog.Nop())
	result, err := cascade.CascadeDeleteProject(ctx, project.ID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindCascadeFailure))
	assert.ErrorIs(t, err, errNotesUnavailable)
	assert.Equal(t, CascadeResult{}, result)

	_, err = store.Projects().FindByID(ctx, project.ID)
	assert.NoError(t, err, "project must survive a failed cascade")
	_, err = store.Issues().FindByID(ctx, issue.ID)
	assert.NoError(t, err, "issues deleted before the failure must be restored")
	_, err = store.Notes().FindByID(ctx, note.ID)
	assert.NoError(t, err)
}

func TestCascadeDeleteUser(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")
	other := createUser(t, store, "other@example.com")

	first := createProject(t, svc, owner, "first")
	second := createProject(t, svc, owner, "second")
	createIssue(t, svc, owner, first.ID, models.StatusToDo)
	createIssue(t, svc, owner, second.ID, models.StatusCompleted)
	createNote(t, svc, owner, second.ID)
	foreign := createProject(t, svc, other, "foreign")

	result, err := NewCascadeCoordinator(store, zerolog.Nop()).CascadeDeleteUser(ctx, owner.UserID)
	require.NoError(t, err)
	assert.Equal(t, CascadeResult{DeletedProjects: 2, DeletedIssues: 2, DeletedNotes: 1}, result)

	_, err = store.Users().FindByID(ctx, owner.UserID)
	assert.Error(t, err)
	remaining, err := store.Projects().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, foreign.ID, remaining[0].ID)
}

func TestCascadeDeleteUserFailsClosed(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestServices(t)
	owner := createUser(t, store, "owner@example.com")
	project := createProject(t, svc, owner, "p")
	createNote(t, svc, owner, project.ID)

	_, err := NewCascadeCoordinator(brokenNotesStore{store}, zerolog.Nop()).CascadeDeleteUser(ctx, owner.UserID)
	assert.True(t, apperrors.Is(err, apperrors.KindCascadeFailure))

	_, err = store.Users().FindByID(ctx, owner.UserID)
	assert.NoError(t, err)
	_, err = store.Projects().FindByID(ctx, project.ID)
	assert.NoError(t, err)
}
