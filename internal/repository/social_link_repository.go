package repository

import (
	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/models"
)

// GormSocialLinkRepository is a GORM implementation of SocialLinkRepository
type GormSocialLinkRepository struct {
	db *gorm.DB
}

// NewSocialLinkRepository creates a new SocialLinkRepository
func NewSocialLinkRepository(db *gorm.DB) SocialLinkRepository {
	return &GormSocialLinkRepository{db: db}
}

// Create creates a new social link
func (r *GormSocialLinkRepository) Create(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

// FindOwned finds a link matched by id and owner in one predicate
func (r *GormSocialLinkRepository) FindOwned(id, userID uint64) (*models.SocialLink, error) {
	var link models.SocialLink
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// ListByUser returns the owner's links in manual display order
func (r *GormSocialLinkRepository) ListByUser(userID uint64) ([]models.SocialLink, error) {
	var links []models.SocialLink
	if err := r.db.Where("user_id = ?", userID).
		Order("display_order ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// ListActiveByUser returns only links shown publicly
func (r *GormSocialLinkRepository) ListActiveByUser(userID uint64) ([]models.SocialLink, error) {
	var links []models.SocialLink
	if err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("display_order ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// UpdateOwned updates a link scoped to its owner in one statement
func (r *GormSocialLinkRepository) UpdateOwned(id, userID uint64, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.SocialLink{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// DeleteOwned hard-deletes a link scoped to its owner
func (r *GormSocialLinkRepository) DeleteOwned(id, userID uint64) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SocialLink{})
	return result.RowsAffected, result.Error
}

// SwapDisplayOrder exchanges display_order between two of the caller's links
// in a single transaction. A missing or foreign row rolls the whole swap
// back, so a half-applied reorder can never persist.
func (r *GormSocialLinkRepository) SwapDisplayOrder(userID, firstID, secondID uint64) ([]models.SocialLink, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var first, second models.SocialLink
		if err := tx.Where("id = ? AND user_id = ?", firstID, userID).First(&first).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ? AND user_id = ?", secondID, userID).First(&second).Error; err != nil {
			return err
		}

		result := tx.Model(&models.SocialLink{}).
			Where("id = ? AND user_id = ?", first.ID, userID).
			Update("display_order", second.DisplayOrder)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		result = tx.Model(&models.SocialLink{}).
			Where("id = ? AND user_id = ?", second.ID, userID).
			Update("display_order", first.DisplayOrder)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	var swapped []models.SocialLink
	if err := r.db.Where("user_id = ? AND id IN ?", userID, []uint64{firstID, secondID}).
		Order("display_order ASC").
		Find(&swapped).Error; err != nil {
		return nil, err
	}
	return swapped, nil
}
