package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/constants"
	"github.com/foliohub/portfolio-api/internal/models"
	"github.com/foliohub/portfolio-api/internal/repository"
)

// PortfolioService assembles the public, read-only view of a profile.
type PortfolioService struct {
	profileRepo repository.ProfileRepository
	projectRepo repository.ProjectRepository
	skillRepo   repository.SkillRepository
	postRepo    repository.BlogPostRepository
	linkRepo    repository.SocialLinkRepository
}

// NewPortfolioService creates a new PortfolioService.
func NewPortfolioService(
	profileRepo repository.ProfileRepository,
	projectRepo repository.ProjectRepository,
	skillRepo repository.SkillRepository,
	postRepo repository.BlogPostRepository,
	linkRepo repository.SocialLinkRepository,
) *PortfolioService {
	return &PortfolioService{
		profileRepo: profileRepo,
		projectRepo: projectRepo,
		skillRepo:   skillRepo,
		postRepo:    postRepo,
		linkRepo:    linkRepo,
	}
}

// Portfolio is everything a public profile page needs in one payload.
type Portfolio struct {
	Profile     *models.Profile
	Projects    []models.Project
	Skills      []models.Skill
	RecentPosts []models.BlogPost
	SocialLinks []models.SocialLink
}

// GetByUsername loads a public portfolio. A missing or private profile is a
// hard not-found; the four section reads run concurrently and a failed
// section degrades to empty instead of failing the page.
func (s *PortfolioService) GetByUsername(username string) (*Portfolio, error) {
	profile, err := s.profileRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	if !profile.IsPublic {
		return nil, ErrProfileNotFound
	}

	portfolio := &Portfolio{
		Profile:     profile,
		Projects:    []models.Project{},
		Skills:      []models.Skill{},
		RecentPosts: []models.BlogPost{},
		SocialLinks: []models.SocialLink{},
	}

	userID := profile.UserID
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		projects, err := s.projectRepo.ListByUser(userID)
		if err != nil {
			log.Printf("portfolio %s: projects section unavailable: %v", username, err)
			return
		}
		portfolio.Projects = projects
	}()

	go func() {
		defer wg.Done()
		skills, err := s.skillRepo.ListByUser(userID)
		if err != nil {
			log.Printf("portfolio %s: skills section unavailable: %v", username, err)
			return
		}
		portfolio.Skills = skills
	}()

	go func() {
		defer wg.Done()
		posts, _, err := s.postRepo.ListPublished(userID, constants.RecentPostsLimit, 0)
		if err != nil {
			log.Printf("portfolio %s: blog section unavailable: %v", username, err)
			return
		}
		portfolio.RecentPosts = posts
	}()

	go func() {
		defer wg.Done()
		links, err := s.linkRepo.ListActiveByUser(userID)
		if err != nil {
			log.Printf("portfolio %s: links section unavailable: %v", username, err)
			return
		}
		portfolio.SocialLinks = links
	}()

	wg.Wait()
	return portfolio, nil
}

// GetPublishedPost loads one published post with its author for the public
// blog page.
func (s *PortfolioService) GetPublishedPost(slug string) (*models.BlogPost, error) {
	post, err := s.postRepo.FindPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// ListPublishedPosts returns published posts newest first, across all users
// when username is empty.
func (s *PortfolioService) ListPublishedPosts(username string, limit, offset int) ([]models.BlogPost, int64, error) {
	var userID uint64
	if username != "" {
		profile, err := s.profileRepo.FindByUsername(username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, ErrProfileNotFound
			}
			return nil, 0, fmt.Errorf("failed to find profile: %w", err)
		}
		if !profile.IsPublic {
			return nil, 0, ErrProfileNotFound
		}
		userID = profile.UserID
	}

	posts, total, err := s.postRepo.ListPublished(userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, total, nil
}
