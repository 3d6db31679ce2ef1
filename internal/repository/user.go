package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/models"
	"gorm.io/gorm"
)

type gormUsers struct {
	db *gorm.DB
}

func (r *gormUsers) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *gormUsers) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "find user")
	}
	return &user, nil
}

func (r *gormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "find user by email")
	}
	return &user, nil
}

func (r *gormUsers) FindNonAdmin(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Where("is_admin_user = ?", false).Order("created_at").Find(&users).Error; err != nil {
		return nil, notFoundOr(err, "list users")
	}
	return users, nil
}

func (r *gormUsers) HasAdmin(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("is_admin_user = ?", true).Count(&count).Error; err != nil {
		return false, notFoundOr(err, "count admins")
	}
	return count > 0, nil
}

func (r *gormUsers) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{}), "delete user")
}
