package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/models"
	"gorm.io/gorm"
)

type gormNotes struct {
	db *gorm.DB
}

func (r *gormNotes) Create(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *gormNotes) FindByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	var note models.Note
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&note).Error; err != nil {
		return nil, notFoundOr(err, "find note")
	}
	return &note, nil
}

func (r *gormNotes) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at").Find(&notes).Error; err != nil {
		return nil, notFoundOr(err, "list notes")
	}
	return notes, nil
}

func (r *gormNotes) Update(ctx context.Context, note *models.Note) error {
	result := r.db.WithContext(ctx).Model(note).Updates(map[string]interface{}{
		"name":    note.Name,
		"content": note.Content,
	})
	return deleted(result, "update note")
}

func (r *gormNotes) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{}), "delete note")
}

func (r *gormNotes) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&models.Note{})
	if result.Error != nil {
		return 0, notFoundOr(result.Error, "delete notes for project")
	}
	return result.RowsAffected, nil
}
