package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apierrors "github.com/foliohub/portfolio-api/internal/errors"
	"github.com/foliohub/portfolio-api/internal/services"
)

// respondServiceError maps a service error onto the API's outcome taxonomy:
// validation, conflict, not-found, or transient. Anything unclassified is a
// 500 with a generic message so raw store errors never reach clients.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrProfileNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDuplicateSlug):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrProjectTitleRequired),
		errors.Is(err, services.ErrSkillNameRequired),
		errors.Is(err, services.ErrSkillCategoryRequired),
		errors.Is(err, services.ErrPostTitleRequired),
		errors.Is(err, services.ErrPostSlugRequired),
		errors.Is(err, services.ErrPostContentRequired),
		errors.Is(err, services.ErrLinkPlatformRequired),
		errors.Is(err, services.ErrLinkURLRequired),
		errors.Is(err, services.ErrReorderSameLink):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
