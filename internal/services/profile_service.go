package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/models"
	"github.com/foliohub/portfolio-api/internal/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService provides business logic for the account's profile.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

// GetOwn returns the caller's profile.
func (s *ProfileService) GetOwn(userID uint64) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return profile, nil
}

// UpdateOwn applies a partial update to the caller's profile. Username and
// user_id are never writable: username addresses the public page and is
// immutable after signup.
func (s *ProfileService) UpdateOwn(userID uint64, raw map[string]interface{}) (*models.Profile, error) {
	updates := map[string]interface{}{}

	if v, ok := stringField(raw, "display_name"); ok {
		updates["display_name"] = v
	}
	if v, ok := stringField(raw, "bio"); ok {
		updates["bio"] = v
	}
	if v, ok := stringField(raw, "avatar_url"); ok {
		updates["avatar_url"] = v
	}
	if v, ok := boolField(raw, "is_public"); ok {
		updates["is_public"] = v
	}

	if len(updates) > 0 {
		affected, err := s.profileRepo.UpdateOwned(userID, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
		if affected == 0 {
			return nil, ErrProfileNotFound
		}
	}

	return s.GetOwn(userID)
}
