package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/apperrors"
	"github.com/monocle-dev/trackr/internal/models"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/monocle-dev/trackr/internal/types"
	"github.com/rs/zerolog"
)

type CreateProjectInput struct {
	Name        string         `json:"name" validate:"required,max=200"`
	Description string         `json:"description" validate:"max=5000"`
	Deadline    OptionalString `json:"deadline"`
}

// UpdateProjectInput replaces the name. A missing description or deadline
// is left as is; an explicit null or empty deadline clears it.
type UpdateProjectInput struct {
	Name        string         `json:"name" validate:"required,max=200"`
	Description *string        `json:"description" validate:"omitempty,max=5000"`
	Deadline    OptionalString `json:"deadline"`
}

var projectMessages = map[string]string{
	"name":        "Please enter a name",
	"description": "Description is too long",
}

// ProjectView is a stored project with its metrics flattened alongside.
type ProjectView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Owner       uuid.UUID `json:"owner"`
	Deadline    *string   `json:"deadline"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	ProjectMetrics
}

type ProjectService struct {
	store   repository.Store
	gate    Gate
	cascade *CascadeCoordinator
	metrics *MetricsCalculator
	logger  zerolog.Logger
}

func NewProjectService(store repository.Store, gate Gate, cascade *CascadeCoordinator, metrics *MetricsCalculator, logger zerolog.Logger) *ProjectService {
	return &ProjectService{
		store:   store,
		gate:    gate,
		cascade: cascade,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *ProjectService) Create(ctx context.Context, caller types.Identity, input CreateProjectInput) (*ProjectView, error) {
	if caller.Anonymous() {
		return nil, apperrors.Unauthorized()
	}
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input, projectMessages); err != nil {
		return nil, err
	}
	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return nil, err
	}

	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     caller.UserID,
		Deadline:    deadline,
	}
	if err := s.store.Projects().Create(ctx, &project); err != nil {
		return nil, apperrors.Internal(err)
	}

	view := s.view(project, nil)
	return &view, nil
}

func (s *ProjectService) Get(ctx context.Context, caller types.Identity, projectID uuid.UUID) (*ProjectView, error) {
	project, err := ownedProject(ctx, s.store, s.gate, caller, projectID, ActionRead)
	if err != nil {
		return nil, err
	}
	return s.withMetrics(ctx, *project)
}

func (s *ProjectService) ListForOwner(ctx context.Context, caller types.Identity) ([]ProjectView, error) {
	if caller.Anonymous() {
		return nil, apperrors.Unauthorized()
	}
	projects, err := s.store.Projects().FindByOwner(ctx, caller.UserID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return s.viewsWithMetrics(ctx, projects)
}

// ListAll is the read-only administrative listing across every owner.
func (s *ProjectService) ListAll(ctx context.Context, caller types.Identity) ([]ProjectView, error) {
	if err := s.gate.AuthorizeAdminListing(caller); err != nil {
		return nil, err
	}
	projects, err := s.store.Projects().FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return s.viewsWithMetrics(ctx, projects)
}

func (s *ProjectService) Update(ctx context.Context, caller types.Identity, projectID uuid.UUID, input UpdateProjectInput) (*ProjectView, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input, projectMessages); err != nil {
		return nil, err
	}
	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return nil, err
	}

	project, err := ownedProject(ctx, s.store, s.gate, caller, projectID, ActionWrite)
	if err != nil {
		return nil, err
	}

	project.Name = input.Name
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Deadline.Set {
		project.Deadline = deadline
	}

	if err := s.store.Projects().Update(ctx, project); err != nil {
		return nil, lookupErr(err, "Project")
	}
	return s.withMetrics(ctx, *project)
}

func (s *ProjectService) Delete(ctx context.Context, caller types.Identity, projectID uuid.UUID) (CascadeResult, error) {
	if _, err := ownedProject(ctx, s.store, s.gate, caller, projectID, ActionDelete); err != nil {
		return CascadeResult{}, err
	}
	return s.cascade.CascadeDeleteProject(ctx, projectID)
}

func (s *ProjectService) withMetrics(ctx context.Context, project models.Project) (*ProjectView, error) {
	issues, err := s.store.Issues().FindByProject(ctx, project.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	view := s.view(project, issues)
	return &view, nil
}

func (s *ProjectService) viewsWithMetrics(ctx context.Context, projects []models.Project) ([]ProjectView, error) {
	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}

	issues, err := s.store.Issues().FindByProjects(ctx, ids)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	byProject := make(map[uuid.UUID][]models.Issue, len(projects))
	for _, issue := range issues {
		byProject[issue.ProjectID] = append(byProject[issue.ProjectID], issue)
	}

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, s.view(p, byProject[p.ID]))
	}
	return views, nil
}

func (s *ProjectService) view(project models.Project, issues []models.Issue) ProjectView {
	if project.Deadline.Malformed {
		s.logger.Warn().Str("project_id", project.ID.String()).Msg("stored deadline is unreadable, reporting no deadline")
	}

	view := ProjectView{
		ID:             project.ID,
		Name:           project.Name,
		Description:    project.Description,
		Owner:          project.OwnerID,
		CreatedAt:      project.CreatedAt,
		UpdatedAt:      project.UpdatedAt,
		ProjectMetrics: s.metrics.ProjectMetrics(project, issues),
	}
	if project.Deadline.Usable() {
		d := project.Deadline.String()
		view.Deadline = &d
	}
	return view
}
