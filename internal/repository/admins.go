package repository

import (
	"errors"

	"clinic-admin/internal/models"
	"clinic-admin/internal/utils"

	"gorm.io/gorm"
)

// AdminRepository provides queries over admin_users.
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByUsername returns the admin with the given username.
func (r *AdminRepository) GetByUsername(username string) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// GetByID returns the admin with the given id.
func (r *AdminRepository) GetByID(id uint) (*models.AdminUser, error) {
	var admin models.AdminUser
	if err := r.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// Bootstrap creates the initial admin account when the table is empty, so a
// fresh deployment can always be logged into. Existing rows are never touched.
func (r *AdminRepository) Bootstrap(username, password string) error {
	var count int64
	if err := r.db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return r.db.Create(&models.AdminUser{Username: username, PasswordHash: hash}).Error
}
