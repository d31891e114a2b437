package repository

import (
	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindOwned finds a project matched by id and owner in one predicate
func (r *GormProjectRepository) FindOwned(id, userID uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByUser returns the owner's projects: featured first, then by the
// user-assigned display order, newest first on ties.
func (r *GormProjectRepository) ListByUser(userID uint64) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("user_id = ?", userID).
		Order("is_featured DESC").
		Order("display_order ASC").
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateOwned updates a project scoped to its owner in one statement. The
// owner check is part of the mutation predicate, not a separate read.
func (r *GormProjectRepository) UpdateOwned(id, userID uint64, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Project{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// DeleteOwned hard-deletes a project scoped to its owner
func (r *GormProjectRepository) DeleteOwned(id, userID uint64) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Project{})
	return result.RowsAffected, result.Error
}
