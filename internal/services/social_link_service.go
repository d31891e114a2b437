package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/models"
	"github.com/foliohub/portfolio-api/internal/repository"
)

var (
	ErrLinkPlatformRequired = errors.New("link platform is required")
	ErrLinkURLRequired      = errors.New("link url is required")
	ErrReorderSameLink      = errors.New("cannot reorder a link against itself")
)

// SocialLinkService provides business logic for social link operations.
type SocialLinkService struct {
	linkRepo repository.SocialLinkRepository
}

// NewSocialLinkService creates a new SocialLinkService.
func NewSocialLinkService(linkRepo repository.SocialLinkRepository) *SocialLinkService {
	return &SocialLinkService{
		linkRepo: linkRepo,
	}
}

// CreateSocialLinkInput represents parameters to create a social link.
// Nil DisplayOrder appends the link after the caller's existing ones.
type CreateSocialLinkInput struct {
	Platform     string
	URL          string
	DisplayText  string
	DisplayOrder *int
	IsActive     *bool
}

// Create validates and persists a new social link for the caller.
func (s *SocialLinkService) Create(userID uint64, input CreateSocialLinkInput) (*models.SocialLink, error) {
	platform := strings.ToLower(strings.TrimSpace(input.Platform))
	if platform == "" {
		return nil, ErrLinkPlatformRequired
	}
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return nil, ErrLinkURLRequired
	}

	link := &models.SocialLink{
		UserID:      userID,
		Platform:    platform,
		URL:         url,
		DisplayText: strings.TrimSpace(input.DisplayText),
		IsActive:    true,
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}

	if input.DisplayOrder != nil {
		link.DisplayOrder = *input.DisplayOrder
	} else {
		existing, err := s.linkRepo.ListByUser(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to count links: %w", err)
		}
		link.DisplayOrder = len(existing)
	}

	if err := s.linkRepo.Create(link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}

	return link, nil
}

// List returns the caller's links in manual display order.
func (s *SocialLinkService) List(userID uint64) ([]models.SocialLink, error) {
	links, err := s.linkRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// Update applies a partial update to one of the caller's links.
func (s *SocialLinkService) Update(userID, id uint64, raw map[string]interface{}) (*models.SocialLink, error) {
	updates := map[string]interface{}{}

	if v, ok := stringField(raw, "platform"); ok {
		platform := strings.ToLower(strings.TrimSpace(v))
		if platform == "" {
			return nil, ErrLinkPlatformRequired
		}
		updates["platform"] = platform
	}
	if v, ok := stringField(raw, "url"); ok {
		url := strings.TrimSpace(v)
		if url == "" {
			return nil, ErrLinkURLRequired
		}
		updates["url"] = url
	}
	if v, ok := stringField(raw, "display_text"); ok {
		updates["display_text"] = v
	}
	if v, ok := intField(raw, "display_order"); ok {
		updates["display_order"] = v
	}
	if v, ok := boolField(raw, "is_active"); ok {
		updates["is_active"] = v
	}

	if len(updates) > 0 {
		affected, err := s.linkRepo.UpdateOwned(id, userID, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to update link: %w", err)
		}
		if affected == 0 {
			return nil, ErrNotFound
		}
	}

	link, err := s.linkRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to reload link: %w", err)
	}
	return link, nil
}

// Delete removes one of the caller's links.
func (s *SocialLinkService) Delete(userID, id uint64) error {
	affected, err := s.linkRepo.DeleteOwned(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder swaps the display_order of two of the caller's links. The swap is
// transactional: a failure on either row rolls both back, so the caller
// never sees a half-applied reorder.
func (s *SocialLinkService) Reorder(userID, firstID, secondID uint64) ([]models.SocialLink, error) {
	if firstID == secondID {
		return nil, ErrReorderSameLink
	}

	swapped, err := s.linkRepo.SwapDisplayOrder(userID, firstID, secondID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to reorder links: %w", err)
	}
	return swapped, nil
}
