package repository

import (
	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/models"
)

// GormProfileRepository is a GORM implementation of ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByUserID finds the profile owned by a user
func (r *GormProfileRepository) FindByUserID(userID uint64) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUsername finds a profile by its public username
func (r *GormProfileRepository) FindByUsername(username string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("username = ?", username).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateOwned updates the caller's profile in a single statement.
func (r *GormProfileRepository) UpdateOwned(userID uint64, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}
