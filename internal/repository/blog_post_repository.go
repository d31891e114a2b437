package repository

import (
	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/database"
	"github.com/foliohub/portfolio-api/internal/models"
	"github.com/foliohub/portfolio-api/internal/utils"
)

// GormBlogPostRepository is a GORM implementation of BlogPostRepository
type GormBlogPostRepository struct {
	db *gorm.DB
}

// NewBlogPostRepository creates a new BlogPostRepository
func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &GormBlogPostRepository{db: db}
}

// Create creates a new blog post. A slug collision surfaces as
// gorm.ErrDuplicatedKey via the connection's error translation.
func (r *GormBlogPostRepository) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// FindOwned finds a post matched by id and owner in one predicate
func (r *GormBlogPostRepository) FindOwned(id, userID uint64) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListByUser returns the owner's posts newest first, drafts included
func (r *GormBlogPostRepository) ListByUser(userID uint64) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindPublishedBySlug finds a published post with its author profile
func (r *GormBlogPostRepository) FindPublishedBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.Preload("Author").
		Where("slug = ? AND is_published = ?", slug, true).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPublished returns published posts newest first, optionally scoped to
// one user and paginated.
func (r *GormBlogPostRepository) ListPublished(userID uint64, limit, offset int) ([]models.BlogPost, int64, error) {
	query := r.db.Model(&models.BlogPost{}).Where("is_published = ?", true)
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Preload("Author").Order("published_at DESC")
	if limit > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Limit:  limit,
			Offset: offset,
		}))
	}

	var posts []models.BlogPost
	if err := listQuery.Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// UpdateOwned updates a post scoped to its owner in one statement
func (r *GormBlogPostRepository) UpdateOwned(id, userID uint64, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.BlogPost{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// DeleteOwned hard-deletes a post scoped to its owner
func (r *GormBlogPostRepository) DeleteOwned(id, userID uint64) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.BlogPost{})
	return result.RowsAffected, result.Error
}
