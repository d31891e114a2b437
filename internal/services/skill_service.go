package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/constants"
	"github.com/foliohub/portfolio-api/internal/models"
	"github.com/foliohub/portfolio-api/internal/repository"
)

var (
	ErrSkillNameRequired     = errors.New("skill name is required")
	ErrSkillCategoryRequired = errors.New("skill category is required")
)

// SkillService provides business logic for skill operations.
type SkillService struct {
	skillRepo repository.SkillRepository
}

// NewSkillService creates a new SkillService.
func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
	}
}

// CreateSkillInput represents parameters to create a skill.
type CreateSkillInput struct {
	Name              string
	Category          string
	ProficiencyLevel  int
	YearsOfExperience *int
	IsFeatured        bool
	Description       string
}

// clampProficiency keeps the level inside the 1-5 domain the UI offers.
func clampProficiency(level int) int {
	if level < constants.MinProficiencyLevel {
		return constants.MinProficiencyLevel
	}
	if level > constants.MaxProficiencyLevel {
		return constants.MaxProficiencyLevel
	}
	return level
}

// Create validates and persists a new skill for the caller.
func (s *SkillService) Create(userID uint64, input CreateSkillInput) (*models.Skill, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrSkillNameRequired
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, ErrSkillCategoryRequired
	}

	skill := &models.Skill{
		UserID:            userID,
		Name:              name,
		Category:          category,
		ProficiencyLevel:  clampProficiency(input.ProficiencyLevel),
		YearsOfExperience: input.YearsOfExperience,
		IsFeatured:        input.IsFeatured,
		Description:       strings.TrimSpace(input.Description),
	}

	if err := s.skillRepo.Create(skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	return skill, nil
}

// List returns the caller's skills in display order.
func (s *SkillService) List(userID uint64) ([]models.Skill, error) {
	skills, err := s.skillRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

// Update applies a partial update to one of the caller's skills.
func (s *SkillService) Update(userID, id uint64, raw map[string]interface{}) (*models.Skill, error) {
	updates := map[string]interface{}{}

	if v, ok := stringField(raw, "name"); ok {
		name := strings.TrimSpace(v)
		if name == "" {
			return nil, ErrSkillNameRequired
		}
		updates["name"] = name
	}
	if v, ok := stringField(raw, "category"); ok {
		category := strings.TrimSpace(v)
		if category == "" {
			return nil, ErrSkillCategoryRequired
		}
		updates["category"] = category
	}
	if v, ok := intField(raw, "proficiency_level"); ok {
		updates["proficiency_level"] = clampProficiency(v)
	}
	if v, ok := intField(raw, "years_of_experience"); ok {
		updates["years_of_experience"] = v
	} else if val, present := raw["years_of_experience"]; present && val == nil {
		updates["years_of_experience"] = nil
	}
	if v, ok := boolField(raw, "is_featured"); ok {
		updates["is_featured"] = v
	}
	if v, ok := stringField(raw, "description"); ok {
		updates["description"] = v
	}

	if len(updates) > 0 {
		affected, err := s.skillRepo.UpdateOwned(id, userID, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to update skill: %w", err)
		}
		if affected == 0 {
			return nil, ErrNotFound
		}
	}

	skill, err := s.skillRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to reload skill: %w", err)
	}
	return skill, nil
}

// Delete removes one of the caller's skills.
func (s *SkillService) Delete(userID, id uint64) error {
	affected, err := s.skillRepo.DeleteOwned(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
