package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/foliohub/portfolio-api/internal/errors"
	"github.com/foliohub/portfolio-api/internal/middleware"
	"github.com/foliohub/portfolio-api/internal/services"
)

// SkillHandler serves the authenticated skill CRUD surface.
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// ListSkills returns the caller's skills in display order.
func (h *SkillHandler) ListSkills(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	skills, err := h.skillService.List(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

// CreateSkill creates a new skill owned by the caller.
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateSkillRequest struct {
		Name              string `json:"name" binding:"required"`
		Category          string `json:"category" binding:"required"`
		ProficiencyLevel  int    `json:"proficiency_level" binding:"required"`
		YearsOfExperience *int   `json:"years_of_experience"`
		IsFeatured        bool   `json:"is_featured"`
		Description       string `json:"description"`
	}

	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	skill, err := h.skillService.Create(userID, services.CreateSkillInput{
		Name:              req.Name,
		Category:          req.Category,
		ProficiencyLevel:  req.ProficiencyLevel,
		YearsOfExperience: req.YearsOfExperience,
		IsFeatured:        req.IsFeatured,
		Description:       req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, skill)
}

// UpdateSkill applies a partial update to one of the caller's skills.
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
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

	skill, err := h.skillService.Update(userID, id, raw)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, skill)
}

// DeleteSkill removes one of the caller's skills.
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.skillService.Delete(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Skill deleted successfully",
	})
}
