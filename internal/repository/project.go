package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/models"
	"gorm.io/gorm"
)

type gormProjects struct {
	db *gorm.DB
}

func (r *gormProjects) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *gormProjects) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, notFoundOr(err, "find project")
	}
	return &project, nil
}

func (r *gormProjects) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at").Find(&projects).Error; err != nil {
		return nil, notFoundOr(err, "list projects")
	}
	return projects, nil
}

func (r *gormProjects) FindAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).Order("created_at").Find(&projects).Error; err != nil {
		return nil, notFoundOr(err, "list all projects")
	}
	return projects, nil
}

// Update writes name, description and deadline. Owner is never written.
func (r *gormProjects) Update(ctx context.Context, project *models.Project) error {
	result := r.db.WithContext(ctx).Model(project).Updates(map[string]interface{}{
		"name":        project.Name,
		"description": project.Description,
		"deadline":    project.Deadline,
	})
	return deleted(result, "update project")
}

func (r *gormProjects) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{}), "delete project")
}
