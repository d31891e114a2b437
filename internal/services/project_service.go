package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/models"
	"github.com/foliohub/portfolio-api/internal/repository"
)

var ErrProjectTitleRequired = errors.New("project title is required")

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput represents parameters to create a project. The owner
// always comes from the session, never from the request body.
type CreateProjectInput struct {
	Title           string
	Description     string
	LongDescription string
	Tags            []string
	GithubURL       string
	DemoURL         string
	ImageURL        string
	IsFeatured      bool
	DisplayOrder    int
}

// Create validates and persists a new project for the caller.
func (s *ProjectService) Create(userID uint64, input CreateProjectInput) (*models.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrProjectTitleRequired
	}

	project := &models.Project{
		UserID:          userID,
		Title:           title,
		Description:     strings.TrimSpace(input.Description),
		LongDescription: strings.TrimSpace(input.LongDescription),
		Tags:            input.Tags,
		GithubURL:       strings.TrimSpace(input.GithubURL),
		DemoURL:         strings.TrimSpace(input.DemoURL),
		ImageURL:        strings.TrimSpace(input.ImageURL),
		IsFeatured:      input.IsFeatured,
		DisplayOrder:    input.DisplayOrder,
	}
	if project.Tags == nil {
		project.Tags = []string{}
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// List returns the caller's projects in display order.
func (s *ProjectService) List(userID uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Update applies a partial update to one of the caller's projects. The row
// is matched by id and owner in the mutation predicate itself; zero affected
// rows means not found, whether the row is absent or owned by someone else.
func (s *ProjectService) Update(userID, id uint64, raw map[string]interface{}) (*models.Project, error) {
	updates := map[string]interface{}{}

	if v, ok := stringField(raw, "title"); ok {
		title := strings.TrimSpace(v)
		if title == "" {
			return nil, ErrProjectTitleRequired
		}
		updates["title"] = title
	}
	if v, ok := stringField(raw, "description"); ok {
		updates["description"] = v
	}
	if v, ok := stringField(raw, "long_description"); ok {
		updates["long_description"] = v
	}
	if v, ok := tagsField(raw, "tags"); ok {
		updates["tags"] = v
	}
	if v, ok := stringField(raw, "github_url"); ok {
		updates["github_url"] = v
	}
	if v, ok := stringField(raw, "demo_url"); ok {
		updates["demo_url"] = v
	}
	if v, ok := stringField(raw, "image_url"); ok {
		updates["image_url"] = v
	}
	if v, ok := boolField(raw, "is_featured"); ok {
		updates["is_featured"] = v
	}
	if v, ok := intField(raw, "display_order"); ok {
		updates["display_order"] = v
	}

	if len(updates) > 0 {
		affected, err := s.projectRepo.UpdateOwned(id, userID, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}
		if affected == 0 {
			return nil, ErrNotFound
		}
	}

	project, err := s.projectRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to reload project: %w", err)
	}
	return project, nil
}

// Delete removes one of the caller's projects.
func (s *ProjectService) Delete(userID, id uint64) error {
	affected, err := s.projectRepo.DeleteOwned(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
