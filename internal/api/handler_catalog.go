package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLocations handles GET /api/locations, serving the filter
// dropdowns from the current snapshot.
func (h *Handler) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Snapshot().Locations)
}

// GetInstructors handles GET /api/instructors.
func (h *Handler) GetInstructors(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Snapshot().Instructors)
}
