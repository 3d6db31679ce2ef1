// Package memory is an in-process repository.Store for local development
// and tests. Transactions run against a copy of the data that replaces the
// live copy on commit.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/models"
	"github.com/monocle-dev/trackr/internal/repository"
)

type dataset struct {
	users    map[uuid.UUID]models.User
	projects map[uuid.UUID]models.Project
	issues   map[uuid.UUID]models.Issue
	notes    map[uuid.UUID]models.Note
}

func newDataset() *dataset {
	return &dataset{
		users:    make(map[uuid.UUID]models.User),
		projects: make(map[uuid.UUID]models.Project),
		issues:   make(map[uuid.UUID]models.Issue),
		notes:    make(map[uuid.UUID]models.Note),
	}
}

func (d *dataset) clone() *dataset {
	c := newDataset()
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.projects {
		c.projects[k] = v
	}
	for k, v := range d.issues {
		c.issues[k] = v
	}
	for k, v := range d.notes {
		c.notes[k] = v
	}
	return c
}

type Store struct {
	mu   *sync.Mutex
	data *dataset
	inTx bool
	now  func() time.Time
}

func NewStore() *Store {
	return &Store{mu: &sync.Mutex{}, data: newDataset(), now: time.Now}
}

// lock is a no-op inside a transaction, which already holds the mutex.
func (s *Store) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) Users() repository.UserRepository       { return users{s} }
func (s *Store) Projects() repository.ProjectRepository { return projects{s} }
func (s *Store) Issues() repository.IssueRepository     { return issues{s} }
func (s *Store) Notes() repository.NoteRepository       { return notes{s} }

func (s *Store) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(&Store{mu: s.mu, data: work, inTx: true, now: s.now}); err != nil {
		return err
	}
	s.data = work
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) stamp(b *models.BaseModel) {
	now := s.now()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, repository.ErrNotFound)
}

func byCreated[T any](items []T, created func(T) time.Time) []T {
	sort.SliceStable(items, func(i, j int) bool {
		return created(items[i]).Before(created(items[j]))
	})
	return items
}

type users struct{ s *Store }

func (r users) Create(ctx context.Context, user *models.User) error {
	defer r.s.lock()()
	for _, u := range r.s.data.users {
		if strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("create user: duplicate email %q", user.Email)
		}
	}
	r.s.stamp(&user.BaseModel)
	r.s.data.users[user.ID] = *user
	return nil
}

func (r users) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	defer r.s.lock()()
	u, ok := r.s.data.users[id]
	if !ok {
		return nil, notFound("find user")
	}
	return &u, nil
}

func (r users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	defer r.s.lock()()
	for _, u := range r.s.data.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, notFound("find user by email")
}

func (r users) FindNonAdmin(ctx context.Context) ([]models.User, error) {
	defer r.s.lock()()
	var out []models.User
	for _, u := range r.s.data.users {
		if !u.IsAdminUser {
			out = append(out, u)
		}
	}
	return byCreated(out, func(u models.User) time.Time { return u.CreatedAt }), nil
}

func (r users) HasAdmin(ctx context.Context) (bool, error) {
	defer r.s.lock()()
	for _, u := range r.s.data.users {
		if u.IsAdminUser {
			return true, nil
		}
	}
	return false, nil
}

func (r users) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.lock()()
	if _, ok := r.s.data.users[id]; !ok {
		return notFound("delete user")
	}
	delete(r.s.data.users, id)
	return nil
}

type projects struct{ s *Store }

func (r projects) Create(ctx context.Context, project *models.Project) error {
	defer r.s.lock()()
	r.s.stamp(&project.BaseModel)
	r.s.data.projects[project.ID] = *project
	return nil
}

func (r projects) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	defer r.s.lock()()
	p, ok := r.s.data.projects[id]
	if !ok {
		return nil, notFound("find project")
	}
	return &p, nil
}

func (r projects) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	defer r.s.lock()()
	var out []models.Project
	for _, p := range r.s.data.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return byCreated(out, func(p models.Project) time.Time { return p.CreatedAt }), nil
}

func (r projects) FindAll(ctx context.Context) ([]models.Project, error) {
	defer r.s.lock()()
	out := make([]models.Project, 0, len(r.s.data.projects))
	for _, p := range r.s.data.projects {
		out = append(out, p)
	}
	return byCreated(out, func(p models.Project) time.Time { return p.CreatedAt }), nil
}

func (r projects) Update(ctx context.Context, project *models.Project) error {
	defer r.s.lock()()
	stored, ok := r.s.data.projects[project.ID]
	if !ok {
		return notFound("update project")
	}
	stored.Name = project.Name
	stored.Description = project.Description
	stored.Deadline = project.Deadline
	stored.UpdatedAt = r.s.now()
	r.s.data.projects[project.ID] = stored
	project.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r projects) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.lock()()
	if _, ok := r.s.data.projects[id]; !ok {
		return notFound("delete project")
	}
	delete(r.s.data.projects, id)
	return nil
}

type issues struct{ s *Store }

func (r issues) Create(ctx context.Context, issue *models.Issue) error {
	defer r.s.lock()()
	r.s.stamp(&issue.BaseModel)
	r.s.data.issues[issue.ID] = *issue
	return nil
}

func (r issues) FindByID(ctx context.Context, id uuid.UUID) (*models.Issue, error) {
	defer r.s.lock()()
	i, ok := r.s.data.issues[id]
	if !ok {
		return nil, notFound("find issue")
	}
	return &i, nil
}

func (r issues) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Issue, error) {
	return r.FindByProjects(ctx, []uuid.UUID{projectID})
}

func (r issues) FindByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]models.Issue, error) {
	defer r.s.lock()()
	wanted := make(map[uuid.UUID]bool, len(projectIDs))
	for _, id := range projectIDs {
		wanted[id] = true
	}
	var out []models.Issue
	for _, i := range r.s.data.issues {
		if wanted[i.ProjectID] {
			out = append(out, i)
		}
	}
	return byCreated(out, func(i models.Issue) time.Time { return i.CreatedAt }), nil
}

func (r issues) Update(ctx context.Context, issue *models.Issue) error {
	defer r.s.lock()()
	stored, ok := r.s.data.issues[issue.ID]
	if !ok {
		return notFound("update issue")
	}
	stored.Name = issue.Name
	stored.Description = issue.Description
	stored.Status = issue.Status
	stored.Priority = issue.Priority
	stored.UpdatedAt = r.s.now()
	r.s.data.issues[issue.ID] = stored
	issue.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r issues) UpdateStatus(ctx context.Context, id uuid.UUID, status models.IssueStatus) error {
	defer r.s.lock()()
	stored, ok := r.s.data.issues[id]
	if !ok {
		return notFound("update issue status")
	}
	stored.Status = status
	stored.UpdatedAt = r.s.now()
	r.s.data.issues[id] = stored
	return nil
}

func (r issues) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.lock()()
	if _, ok := r.s.data.issues[id]; !ok {
		return notFound("delete issue")
	}
	delete(r.s.data.issues, id)
	return nil
}

func (r issues) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	defer r.s.lock()()
	var n int64
	for id, i := range r.s.data.issues {
		if i.ProjectID == projectID {
			delete(r.s.data.issues, id)
			n++
		}
	}
	return n, nil
}

type notes struct{ s *Store }

func (r notes) Create(ctx context.Context, note *models.Note) error {
	defer r.s.lock()()
	r.s.stamp(&note.BaseModel)
	r.s.data.notes[note.ID] = *note
	return nil
}

func (r notes) FindByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	defer r.s.lock()()
	n, ok := r.s.data.notes[id]
	if !ok {
		return nil, notFound("find note")
	}
	return &n, nil
}

func (r notes) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Note, error) {
	defer r.s.lock()()
	var out []models.Note
	for _, n := range r.s.data.notes {
		if n.ProjectID == projectID {
			out = append(out, n)
		}
	}
	return byCreated(out, func(n models.Note) time.Time { return n.CreatedAt }), nil
}

func (r notes) Update(ctx context.Context, note *models.Note) error {
	defer r.s.lock()()
	stored, ok := r.s.data.notes[note.ID]
	if !ok {
		return notFound("update note")
	}
	stored.Name = note.Name
	stored.Content = note.Content
	stored.UpdatedAt = r.s.now()
	r.s.data.notes[note.ID] = stored
	note.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r notes) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.s.lock()()
	if _, ok := r.s.data.notes[id]; !ok {
		return notFound("delete note")
	}
	delete(r.s.data.notes, id)
	return nil
}

func (r notes) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	defer r.s.lock()()
	var n int64
	for id, note := range r.s.data.notes {
		if note.ProjectID == projectID {
			delete(r.s.data.notes, id)
			n++
		}
	}
	return n, nil
}

var _ repository.Store = (*Store)(nil)
