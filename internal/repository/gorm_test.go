package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Project{}, &models.Issue{}, &models.Note{}))
	return NewGormStore(db)
}

func seedProject(t *testing.T, store Store) (*models.User, *models.Project) {
	t.Helper()
	ctx := context.Background()
	user := &models.User{Name: "owner", Email: "owner@example.com", PasswordHash: "hash"}
	require.NoError(t, store.Users().Create(ctx, user))

	project := &models.Project{
		Name:     "p",
		OwnerID:  user.ID,
		Deadline: models.NewDeadline(time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, store.Projects().Create(ctx, project))
	return user, project
}

func TestGormUsers(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	user := &models.User{Name: "a", Email: "a@example.com", PasswordHash: "h"}
	require.NoError(t, store.Users().Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)

	found, err := store.Users().FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = store.Users().FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))

	has, err := store.Users().HasAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	admin := &models.User{Name: "root", Email: "root@example.com", PasswordHash: "h", IsAdminUser: true}
	require.NoError(t, store.Users().Create(ctx, admin))
	has, err = store.Users().HasAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	regular, err := store.Users().FindNonAdmin(ctx)
	require.NoError(t, err)
	require.Len(t, regular, 1)
	assert.Equal(t, user.ID, regular[0].ID)

	require.NoError(t, store.Users().Delete(ctx, user.ID))
	assert.True(t, errors.Is(store.Users().Delete(ctx, user.ID), ErrNotFound))
}

func TestGormProjectDeadlineRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)
	user, project := seedProject(t, store)

	found, err := store.Projects().FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-20", found.Deadline.String())
	assert.Equal(t, user.ID, found.OwnerID)

	found.Name = "renamed"
	found.Deadline = models.Deadline{}
	require.NoError(t, store.Projects().Update(ctx, found))

	again, err := store.Projects().FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", again.Name)
	assert.False(t, again.Deadline.Valid)

	owned, err := store.Projects().FindByOwner(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	missing := &models.Project{Name: "ghost"}
	missing.ID = uuid.New()
	assert.True(t, errors.Is(store.Projects().Update(ctx, missing), ErrNotFound))
}

func TestGormIssuesAndNotes(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)
	_, project := seedProject(t, store)

	low := &models.Issue{Name: "low", ProjectID: project.ID, Status: models.StatusToDo, Priority: models.PriorityLow}
	done := &models.Issue{Name: "done", ProjectID: project.ID, Status: models.StatusCompleted, Priority: models.PriorityHigh}
	require.NoError(t, store.Issues().Create(ctx, low))
	require.NoError(t, store.Issues().Create(ctx, done))

	stored, err := store.Issues().FindByID(ctx, low.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityLow, stored.Priority)

	require.NoError(t, store.Issues().UpdateStatus(ctx, low.ID, models.StatusInProgress))
	stored, err = store.Issues().FindByID(ctx, low.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, stored.Status)
	assert.Equal(t, "low", stored.Name)

	byProjects, err := store.Issues().FindByProjects(ctx, []uuid.UUID{project.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, byProjects, 2)

	none, err := store.Issues().FindByProjects(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	note := &models.Note{Name: "n", Content: "c", ProjectID: project.ID}
	require.NoError(t, store.Notes().Create(ctx, note))

	issues, err := store.Issues().DeleteByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), issues)
	notes, err := store.Notes().DeleteByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), notes)

	_, err = store.Notes().FindByID(ctx, note.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGormTransactionRollback(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)
	_, project := seedProject(t, store)
	issue := &models.Issue{Name: "i", ProjectID: project.ID}
	require.NoError(t, store.Issues().Create(ctx, issue))

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(tx Store) error {
		if _, err := tx.Issues().DeleteByProject(ctx, project.ID); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.Issues().FindByID(ctx, issue.ID)
	assert.NoError(t, err)

	err = store.Transaction(ctx, func(tx Store) error {
		if _, err := tx.Issues().DeleteByProject(ctx, project.ID); err != nil {
			return err
		}
		return tx.Projects().Delete(ctx, project.ID)
	})
	require.NoError(t, err)
	_, err = store.Projects().FindByID(ctx, project.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGormPing(t *testing.T) {
	assert.NoError(t, newSQLiteStore(t).Ping(context.Background()))
}
