package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/foliohub/portfolio-api/internal/errors"
	"github.com/foliohub/portfolio-api/internal/middleware"
	"github.com/foliohub/portfolio-api/internal/services"
)

// ProjectHandler serves the authenticated project CRUD surface.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects returns the caller's projects in display order.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	projects, err := h.projectService.List(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject creates a new project owned by the caller. The owner is
// stamped from the session; a client-supplied user_id is never read.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateProjectRequest struct {
		Title           string   `json:"title" binding:"required"`
		Description     string   `json:"description"`
		LongDescription string   `json:"long_description"`
		Tags            []string `json:"tags"`
		GithubURL       string   `json:"github_url"`
		DemoURL         string   `json:"demo_url"`
		ImageURL        string   `json:"image_url"`
		IsFeatured      bool     `json:"is_featured"`
		DisplayOrder    int      `json:"display_order"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(userID, services.CreateProjectInput{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Tags:            req.Tags,
		GithubURL:       req.GithubURL,
		DemoURL:         req.DemoURL,
		ImageURL:        req.ImageURL,
		IsFeatured:      req.IsFeatured,
		DisplayOrder:    req.DisplayOrder,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject applies a partial update to one of the caller's projects.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
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

	project, err := h.projectService.Update(userID, id, raw)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject removes one of the caller's projects.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}
