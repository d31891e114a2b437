package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/foliohub/portfolio-api/internal/errors"
)

// parseIDParam reads the :id route parameter; on failure it writes a 400
// and returns false.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
