package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foliohub/portfolio-api/internal/dto"
	"github.com/foliohub/portfolio-api/internal/services"
	"github.com/foliohub/portfolio-api/internal/utils"
)

// PublicHandler serves the unauthenticated read-only portfolio surface.
type PublicHandler struct {
	portfolioService *services.PortfolioService
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(portfolioService *services.PortfolioService) *PublicHandler {
	return &PublicHandler{
		portfolioService: portfolioService,
	}
}

// GetPortfolio returns the aggregated public profile page payload.
func (h *PublicHandler) GetPortfolio(c *gin.Context) {
	username := c.Param("username")

	portfolio, err := h.portfolioService.GetByUsername(username)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PortfolioDTO{
		Profile:     dto.ToPublicProfileDTO(*portfolio.Profile),
		Projects:    portfolio.Projects,
		Skills:      dto.GroupSkillsByCategory(portfolio.Skills),
		RecentPosts: dto.ToBlogPostList(portfolio.RecentPosts),
		SocialLinks: portfolio.SocialLinks,
	})
}

// ListUserPosts returns one user's published posts, newest first.
func (h *PublicHandler) ListUserPosts(c *gin.Context) {
	username := c.Param("username")
	params := utils.GetPaginationParams(c)

	posts, total, err := h.portfolioService.ListPublishedPosts(username, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": dto.ToBlogPostList(posts),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// ListPosts returns published posts across all users, newest first.
func (h *PublicHandler) ListPosts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	posts, total, err := h.portfolioService.ListPublishedPosts("", params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": dto.ToBlogPostList(posts),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetPost returns one published post by slug with its author.
func (h *PublicHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.portfolioService.GetPublishedPost(slug)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogPostDetailDTO(*post))
}
