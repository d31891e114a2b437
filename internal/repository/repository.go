package repository

import (
	"github.com/foliohub/portfolio-api/internal/models"
)

// UserRepository defines the interface for account data access
type UserRepository interface {
	// CreateWithProfile creates the account and its profile row in a single
	// transaction.
	CreateWithProfile(user *models.User, profile *models.Profile) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// FindByUserID finds the profile owned by a user
	FindByUserID(userID uint64) (*models.Profile, error)

	// FindByUsername finds a profile by its public username
	FindByUsername(username string) (*models.Profile, error)

	// UpdateOwned updates the caller's profile in one statement and reports
	// the number of rows affected
	UpdateOwned(userID uint64, updates map[string]interface{}) (int64, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error

	// FindOwned finds a project matched by id and owner in one predicate
	FindOwned(id, userID uint64) (*models.Project, error)

	// ListByUser returns the owner's projects in display order
	ListByUser(userID uint64) ([]models.Project, error)

	// UpdateOwned updates a project scoped to its owner in one statement
	UpdateOwned(id, userID uint64, updates map[string]interface{}) (int64, error)

	// DeleteOwned hard-deletes a project scoped to its owner
	DeleteOwned(id, userID uint64) (int64, error)
}

// SkillRepository defines the interface for skill data access
type SkillRepository interface {
	Create(skill *models.Skill) error
	FindOwned(id, userID uint64) (*models.Skill, error)
	ListByUser(userID uint64) ([]models.Skill, error)
	UpdateOwned(id, userID uint64, updates map[string]interface{}) (int64, error)
	DeleteOwned(id, userID uint64) (int64, error)
}

// BlogPostRepository defines the interface for blog post data access
type BlogPostRepository interface {
	Create(post *models.BlogPost) error
	FindOwned(id, userID uint64) (*models.BlogPost, error)

	// ListByUser returns the owner's posts, newest first, published or not
	ListByUser(userID uint64) ([]models.BlogPost, error)

	// FindPublishedBySlug finds a published post with its author profile
	FindPublishedBySlug(slug string) (*models.BlogPost, error)

	// ListPublished returns published posts newest first. userID of zero
	// means all users; limit/offset of zero means unbounded.
	ListPublished(userID uint64, limit, offset int) ([]models.BlogPost, int64, error)

	UpdateOwned(id, userID uint64, updates map[string]interface{}) (int64, error)
	DeleteOwned(id, userID uint64) (int64, error)
}

// SocialLinkRepository defines the interface for social link data access
type SocialLinkRepository interface {
	Create(link *models.SocialLink) error
	FindOwned(id, userID uint64) (*models.SocialLink, error)

	// ListByUser returns the owner's links in manual display order
	ListByUser(userID uint64) ([]models.SocialLink, error)

	// ListActiveByUser returns only links shown publicly
	ListActiveByUser(userID uint64) ([]models.SocialLink, error)

	UpdateOwned(id, userID uint64, updates map[string]interface{}) (int64, error)
	DeleteOwned(id, userID uint64) (int64, error)

	// SwapDisplayOrder exchanges the display_order of two links owned by the
	// same user inside a single transaction; either both rows change or
	// neither does.
	SwapDisplayOrder(userID, firstID, secondID uint64) ([]models.SocialLink, error)
}
