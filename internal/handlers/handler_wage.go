package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
	"github.com/richmill123/rice_mill_backend/internal/dto"
	"github.com/richmill123/rice_mill_backend/internal/middleware"
)

// wageHandler handles HTTP requests related to wage entries.
type wageHandler struct {
	wageService portssvc.WageSvcFacade
}

// newWageHandler creates a new wageHandler.
func newWageHandler(ws portssvc.WageSvcFacade) *wageHandler {
	return &wageHandler{
		wageService: ws,
	}
}

// registerWageRoutes registers routes related to wage entries.
func registerWageRoutes(rg *gin.RouterGroup, wageService portssvc.WageSvcFacade) {
	h := newWageHandler(wageService)

	wages := rg.Group("/wages")
	{
		wages.POST("", h.createWage)
		wages.GET("", h.listWages)
		wages.GET("/:wageID", h.getWageByID)
		wages.PUT("/:wageID", h.updateWage)
		wages.DELETE("/:wageID", h.deleteWage)
	}
}

func (h *wageHandler) createWage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	var req dto.CreateWageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wage, err := h.wageService.CreateWage(c.Request.Context(), clientID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Wage created", slog.String("wage_id", wage.WageID))
	c.JSON(http.StatusCreated, dto.ToWageResponse(wage))
}

func (h *wageHandler) getWageByID(c *gin.Context) {
	wage, err := h.wageService.GetWageByID(c.Request.Context(), c.Param("clientID"), c.Param("wageID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWageResponse(wage))
}

func (h *wageHandler) listWages(c *gin.Context) {
	dateRange, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wages, err := h.wageService.ListWages(c.Request.Context(), c.Param("clientID"), dateRange)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListWageResponse(wages))
}

func (h *wageHandler) updateWage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	wageID := c.Param("wageID")

	var req dto.UpdateWageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wage, err := h.wageService.UpdateWage(c.Request.Context(), c.Param("clientID"), wageID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Wage updated", slog.String("wage_id", wageID))
	c.JSON(http.StatusOK, dto.ToWageResponse(wage))
}

func (h *wageHandler) deleteWage(c *gin.Context) {
	if err := h.wageService.DeleteWage(c.Request.Context(), c.Param("clientID"), c.Param("wageID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
