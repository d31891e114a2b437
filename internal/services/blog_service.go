package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/foliohub/portfolio-api/internal/models"
	"github.com/foliohub/portfolio-api/internal/repository"
	"github.com/foliohub/portfolio-api/internal/utils"
)

var (
	ErrPostTitleRequired   = errors.New("post title is required")
	ErrPostSlugRequired    = errors.New("post slug is required")
	ErrPostContentRequired = errors.New("post content is required")
	ErrDuplicateSlug       = errors.New("a post with this slug already exists")
	ErrSlugGeneration      = errors.New("failed to generate slug")
)

// BlogService provides business logic for blog post operations.
type BlogService struct {
	postRepo repository.BlogPostRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(postRepo repository.BlogPostRepository) *BlogService {
	return &BlogService{
		postRepo: postRepo,
	}
}

// CreateBlogPostInput represents parameters to create a blog post.
// ReadingTime is absent on purpose: it is derived from content.
type CreateBlogPostInput struct {
	Title       string
	Slug        string
	Content     string
	Excerpt     string
	CoverImage  string
	IsPublished bool
	Tags        []string
}

// SuggestSlug produces a URL-safe slug for a title with a random suffix so
// new posts rarely collide. Uniqueness is still the store's job.
func (s *BlogService) SuggestSlug(title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", ErrPostTitleRequired
	}
	slug, err := utils.GenerateSlug(title)
	if err != nil {
		return "", ErrSlugGeneration
	}
	return slug, nil
}

// Create validates and persists a new blog post for the caller. Title, slug
// and content are required; a duplicate slug is reported as a distinct
// conflict, not a generic failure.
func (s *BlogService) Create(userID uint64, input CreateBlogPostInput) (*models.BlogPost, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPostTitleRequired
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrPostContentRequired
	}
	slug := utils.Slugify(input.Slug)
	if slug == "" {
		return nil, ErrPostSlugRequired
	}

	post := &models.BlogPost{
		UserID:      userID,
		Title:       title,
		Slug:        slug,
		Content:     content,
		Excerpt:     strings.TrimSpace(input.Excerpt),
		CoverImage:  strings.TrimSpace(input.CoverImage),
		IsPublished: input.IsPublished,
		ReadingTime: utils.ReadingTime(content),
		Tags:        input.Tags,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.Create(post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// List returns the caller's posts, drafts included, newest first.
func (s *BlogService) List(userID uint64) ([]models.BlogPost, error) {
	posts, err := s.postRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Update applies a partial update to one of the caller's posts. Reading time
// follows content; published_at follows the publish flag: flipping it on
// stamps the moment of the update when no timestamp exists yet, flipping it
// off clears it. The current row is read owner-scoped and the update itself
// carries the same owner predicate, so the decision never touches another
// account's row.
func (s *BlogService) Update(userID, id uint64, raw map[string]interface{}) (*models.BlogPost, error) {
	current, err := s.postRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}

	updates := map[string]interface{}{}

	if v, ok := stringField(raw, "title"); ok {
		title := strings.TrimSpace(v)
		if title == "" {
			return nil, ErrPostTitleRequired
		}
		updates["title"] = title
	}
	if v, ok := stringField(raw, "slug"); ok {
		slug := utils.Slugify(v)
		if slug == "" {
			return nil, ErrPostSlugRequired
		}
		updates["slug"] = slug
	}
	if v, ok := stringField(raw, "content"); ok {
		content := strings.TrimSpace(v)
		if content == "" {
			return nil, ErrPostContentRequired
		}
		updates["content"] = content
		updates["reading_time"] = utils.ReadingTime(content)
	}
	if v, ok := stringField(raw, "excerpt"); ok {
		updates["excerpt"] = v
	}
	if v, ok := stringField(raw, "cover_image"); ok {
		updates["cover_image"] = v
	}
	if v, ok := tagsField(raw, "tags"); ok {
		updates["tags"] = v
	}
	if v, ok := boolField(raw, "is_published"); ok {
		updates["is_published"] = v
		if v {
			if current.PublishedAt == nil {
				updates["published_at"] = time.Now()
			}
		} else {
			updates["published_at"] = nil
		}
	}

	if len(updates) > 0 {
		affected, err := s.postRepo.UpdateOwned(id, userID, updates)
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicateSlug
			}
			return nil, fmt.Errorf("failed to update post: %w", err)
		}
		if affected == 0 {
			return nil, ErrNotFound
		}
	}

	post, err := s.postRepo.FindOwned(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to reload post: %w", err)
	}
	return post, nil
}

// Delete removes one of the caller's posts.
func (s *BlogService) Delete(userID, id uint64) error {
	affected, err := s.postRepo.DeleteOwned(id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
