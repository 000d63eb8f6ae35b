package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
)

// reportHandler handles HTTP requests for tabular entity reports.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

// registerReportRoutes registers the report route.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	rg.GET("/reports/:entity", h.getReport)
}

// getReport shapes one entity collection into a display table. The optional
// from/to query parameters (YYYY-MM-DD) default to the current calendar year.
func (h *reportHandler) getReport(c *gin.Context) {
	entity := domain.EntityType(c.Param("entity"))
	if !entity.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown report entity: " + c.Param("entity")})
		return
	}

	dateRange, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if dateRange == nil {
		year := time.Now().UTC().Year()
		dateRange = &domain.DateRange{
			Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		}
	}

	table, err := h.reportService.ComputeRange(c.Request.Context(), c.Param("clientID"), entity, dateRange.Start, dateRange.End)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}
