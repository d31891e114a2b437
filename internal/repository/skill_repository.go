package repository

import (
	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/models"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// Create creates a new skill
func (r *GormSkillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// FindOwned finds a skill matched by id and owner in one predicate
func (r *GormSkillRepository) FindOwned(id, userID uint64) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// ListByUser returns the owner's skills: strongest proficiency first,
// featured breaking ties, then name.
func (r *GormSkillRepository) ListByUser(userID uint64) ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Where("user_id = ?", userID).
		Order("proficiency_level DESC").
		Order("is_featured DESC").
		Order("name ASC").
		Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// UpdateOwned updates a skill scoped to its owner in one statement
func (r *GormSkillRepository) UpdateOwned(id, userID uint64, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Skill{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// DeleteOwned hard-deletes a skill scoped to its owner
func (r *GormSkillRepository) DeleteOwned(id, userID uint64) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Skill{})
	return result.RowsAffected, result.Error
}
