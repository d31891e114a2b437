package dto

import (
	"time"

	"github.com/foliohub/portfolio-api/internal/models"
)

// BlogPostListItemDTO represents a post in list responses (no full content)
type BlogPostListItemDTO struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Excerpt     string            `json:"excerpt"`
	CoverImage  string            `json:"cover_image"`
	PublishedAt *time.Time        `json:"published_at"`
	ReadingTime int               `json:"reading_time"`
	Tags        []string          `json:"tags"`
	Author      *PublicProfileDTO `json:"author,omitempty"`
}

// BlogPostDetailDTO represents a published post with its author
type BlogPostDetailDTO struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Content     string            `json:"content"`
	Excerpt     string            `json:"excerpt"`
	CoverImage  string            `json:"cover_image"`
	PublishedAt *time.Time        `json:"published_at"`
	ReadingTime int               `json:"reading_time"`
	Tags        []string          `json:"tags"`
	Author      *PublicProfileDTO `json:"author,omitempty"`
}

// ToBlogPostListItemDTO converts a BlogPost model to its list shape
func ToBlogPostListItemDTO(post models.BlogPost) BlogPostListItemDTO {
	dto := BlogPostListItemDTO{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Excerpt:     post.Excerpt,
		CoverImage:  post.CoverImage,
		PublishedAt: post.PublishedAt,
		ReadingTime: post.ReadingTime,
		Tags:        post.Tags,
	}
	if post.Author != nil {
		author := ToPublicProfileDTO(*post.Author)
		dto.Author = &author
	}
	return dto
}

// ToBlogPostDetailDTO converts a BlogPost model to its detail shape
func ToBlogPostDetailDTO(post models.BlogPost) BlogPostDetailDTO {
	dto := BlogPostDetailDTO{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Content:     post.Content,
		Excerpt:     post.Excerpt,
		CoverImage:  post.CoverImage,
		PublishedAt: post.PublishedAt,
		ReadingTime: post.ReadingTime,
		Tags:        post.Tags,
	}
	if post.Author != nil {
		author := ToPublicProfileDTO(*post.Author)
		dto.Author = &author
	}
	return dto
}

// ToBlogPostList converts a slice of posts to list items
func ToBlogPostList(posts []models.BlogPost) []BlogPostListItemDTO {
	items := make([]BlogPostListItemDTO, len(posts))
	for i, post := range posts {
		items[i] = ToBlogPostListItemDTO(post)
	}
	return items
}
