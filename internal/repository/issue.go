package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/models"
	"gorm.io/gorm"
)

type gormIssues struct {
	db *gorm.DB
}

func (r *gormIssues) Create(ctx context.Context, issue *models.Issue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

func (r *gormIssues) FindByID(ctx context.Context, id uuid.UUID) (*models.Issue, error) {
	var issue models.Issue
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&issue).Error; err != nil {
		return nil, notFoundOr(err, "find issue")
	}
	return &issue, nil
}

func (r *gormIssues) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Issue, error) {
	var issues []models.Issue
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at").Find(&issues).Error; err != nil {
		return nil, notFoundOr(err, "list issues")
	}
	return issues, nil
}

func (r *gormIssues) FindByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]models.Issue, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	var issues []models.Issue
	if err := r.db.WithContext(ctx).Where("project_id IN ?", projectIDs).Find(&issues).Error; err != nil {
		return nil, notFoundOr(err, "list issues for projects")
	}
	return issues, nil
}

// Update writes the mutable fields; project is never written.
func (r *gormIssues) Update(ctx context.Context, issue *models.Issue) error {
	result := r.db.WithContext(ctx).Model(issue).Updates(map[string]interface{}{
		"name":        issue.Name,
		"description": issue.Description,
		"status":      issue.Status,
		"priority":    issue.Priority,
	})
	return deleted(result, "update issue")
}

func (r *gormIssues) UpdateStatus(ctx context.Context, id uuid.UUID, status models.IssueStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Issue{}).Where("id = ?", id).Update("status", status)
	return deleted(result, "update issue status")
}

func (r *gormIssues) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Issue{}), "delete issue")
}

func (r *gormIssues) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&models.Issue{})
	if result.Error != nil {
		return 0, notFoundOr(result.Error, "delete issues for project")
	}
	return result.RowsAffected, nil
}
