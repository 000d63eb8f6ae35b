package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
)

// dashboardHandler handles HTTP requests for the aggregated dashboard.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
	}
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard computes the dashboard for the calendar year of asOf. The
// optional asOf query parameter (YYYY-MM-DD) defaults to today.
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	asOf := time.Now().UTC()
	if asOfStr := c.Query("asOf"); asOfStr != "" {
		parsed, err := time.Parse("2006-01-02", asOfStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asOf date, expected YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	summary, err := h.dashboardService.ComputeDashboard(c.Request.Context(), c.Param("clientID"), asOf)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
