package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/foliohub/portfolio-api/internal/errors"
	"github.com/foliohub/portfolio-api/internal/middleware"
	"github.com/foliohub/portfolio-api/internal/services"
)

// SocialLinkHandler serves the authenticated social link CRUD surface.
type SocialLinkHandler struct {
	linkService *services.SocialLinkService
}

// NewSocialLinkHandler creates a new SocialLinkHandler.
func NewSocialLinkHandler(linkService *services.SocialLinkService) *SocialLinkHandler {
	return &SocialLinkHandler{
		linkService: linkService,
	}
}

// ListLinks returns the caller's links in manual display order.
func (h *SocialLinkHandler) ListLinks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	links, err := h.linkService.List(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, links)
}

// CreateLink creates a new social link owned by the caller.
func (h *SocialLinkHandler) CreateLink(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateLinkRequest struct {
		Platform     string `json:"platform" binding:"required"`
		URL          string `json:"url" binding:"required"`
		DisplayText  string `json:"display_text"`
		DisplayOrder *int   `json:"display_order"`
		IsActive     *bool  `json:"is_active"`
	}

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	link, err := h.linkService.Create(userID, services.CreateSocialLinkInput{
		Platform:     req.Platform,
		URL:          req.URL,
		DisplayText:  req.DisplayText,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// UpdateLink applies a partial update to one of the caller's links.
func (h *SocialLinkHandler) UpdateLink(c *gin.Context) {
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

	link, err := h.linkService.Update(userID, id, raw)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}

// DeleteLink removes one of the caller's links.
func (h *SocialLinkHandler) DeleteLink(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.linkService.Delete(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Link deleted successfully",
	})
}

// ReorderLinks swaps the display order of two of the caller's links in one
// transaction and returns both rows as persisted.
func (h *SocialLinkHandler) ReorderLinks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type ReorderRequest struct {
		FirstID  uint64 `json:"first_id" binding:"required"`
		SecondID uint64 `json:"second_id" binding:"required"`
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	links, err := h.linkService.Reorder(userID, req.FirstID, req.SecondID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Links reordered successfully",
		"links":   links,
	})
}
