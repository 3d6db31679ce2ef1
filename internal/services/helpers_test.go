package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/models"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/monocle-dev/trackr/internal/repository/memory"
	"github.com/monocle-dev/trackr/internal/types"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

type stubTokens struct{}

func (stubTokens) Generate(userID uuid.UUID, email string) (string, error) {
	return "token-" + userID.String(), nil
}

func newTestServices(t *testing.T) (*Services, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return newServicesOn(store), store
}

func newServicesOn(store repository.Store) *Services {
	return New(store, Options{
		Logger:     zerolog.Nop(),
		Tokens:     stubTokens{},
		Now:        func() time.Time { return fixedNow },
		Location:   time.UTC,
		BcryptCost: bcrypt.MinCost,
	})
}

func createUser(t *testing.T, store repository.Store, email string) types.Identity {
	t.Helper()
	user := &models.User{Name: "user", Email: email, PasswordHash: "x"}
	require.NoError(t, store.Users().Create(context.Background(), user))
	return types.Identity{UserID: user.ID}
}

func createProject(t *testing.T, svc *Services, owner types.Identity, name string) *ProjectView {
	t.Helper()
	project, err := svc.Projects.Create(context.Background(), owner, CreateProjectInput{Name: name})
	require.NoError(t, err)
	return project
}

func createIssue(t *testing.T, svc *Services, owner types.Identity, projectID uuid.UUID, status models.IssueStatus) *models.Issue {
	t.Helper()
	s := int(status)
	issue, err := svc.Issues.Create(context.Background(), owner, projectID, CreateIssueInput{Name: "issue", Status: &s})
	require.NoError(t, err)
	return issue
}

func createNote(t *testing.T, svc *Services, owner types.Identity, projectID uuid.UUID) *models.Note {
	t.Helper()
	note, err := svc.Notes.Create(context.Background(), owner, projectID, NoteInput{Name: "note", Content: "body"})
	require.NoError(t, err)
	return note
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

var errNotesUnavailable = errors.New("notes table unavailable")

// brokenNotesStore fails every note bulk delete, inside or outside a
// transaction.
type brokenNotesStore struct {
	repository.Store
}

func (s brokenNotesStore) Notes() repository.NoteRepository {
	return brokenNotes{s.Store.Notes()}
}

func (s brokenNotesStore) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	return s.Store.Transaction(ctx, func(tx repository.Store) error {
		return fn(brokenNotesStore{tx})
	})
}

type brokenNotes struct {
	repository.NoteRepository
}

func (brokenNotes) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	return 0, errNotesUnavailable
}
