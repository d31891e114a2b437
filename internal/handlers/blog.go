package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/foliohub/portfolio-api/internal/errors"
	"github.com/foliohub/portfolio-api/internal/middleware"
	"github.com/foliohub/portfolio-api/internal/services"
)

// BlogHandler serves the authenticated blog CRUD surface.
type BlogHandler struct {
	blogService *services.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// ListPosts returns the caller's posts, drafts included, newest first.
func (h *BlogHandler) ListPosts(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	posts, err := h.blogService.List(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// SuggestSlug returns a URL-safe slug with a random suffix for a title, the
// same shape the create endpoint accepts.
func (h *BlogHandler) SuggestSlug(c *gin.Context) {
	title := c.Query("title")

	slug, err := h.blogService.SuggestSlug(title)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slug": slug})
}

// CreatePost creates a new post owned by the caller. Reading time is
// derived from content; a client-supplied value is ignored.
func (h *BlogHandler) CreatePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreatePostRequest struct {
		Title       string   `json:"title"`
		Slug        string   `json:"slug"`
		Content     string   `json:"content"`
		Excerpt     string   `json:"excerpt"`
		CoverImage  string   `json:"cover_image"`
		IsPublished bool     `json:"is_published"`
		Tags        []string `json:"tags"`
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.blogService.Create(userID, services.CreateBlogPostInput{
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		CoverImage:  req.CoverImage,
		IsPublished: req.IsPublished,
		Tags:        req.Tags,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost applies a partial update to one of the caller's posts.
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.blogService.Update(userID, id, raw)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost removes one of the caller's posts.
func (h *BlogHandler) DeletePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.blogService.Delete(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post deleted successfully",
	})
}
