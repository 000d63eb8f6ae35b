package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
	"github.com/richmill123/rice_mill_backend/internal/dto"
	"github.com/richmill123/rice_mill_backend/internal/middleware"
)

// incomeHandler handles HTTP requests related to income entries.
type incomeHandler struct {
	incomeService portssvc.IncomeSvcFacade
}

// newIncomeHandler creates a new incomeHandler.
func newIncomeHandler(is portssvc.IncomeSvcFacade) *incomeHandler {
	return &incomeHandler{
		incomeService: is,
	}
}

// registerIncomeRoutes registers routes related to income entries.
func registerIncomeRoutes(rg *gin.RouterGroup, incomeService portssvc.IncomeSvcFacade) {
	h := newIncomeHandler(incomeService)

	income := rg.Group("/income")
	{
		income.POST("", h.createIncome)
		income.GET("", h.listIncome)
		income.GET("/:incomeID", h.getIncomeByID)
		income.PUT("/:incomeID", h.updateIncome)
		income.DELETE("/:incomeID", h.deleteIncome)
	}
}

func (h *incomeHandler) createIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	income, err := h.incomeService.CreateIncome(c.Request.Context(), clientID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Income created", slog.String("income_id", income.IncomeID))
	c.JSON(http.StatusCreated, dto.ToIncomeResponse(income))
}

func (h *incomeHandler) getIncomeByID(c *gin.Context) {
	income, err := h.incomeService.GetIncomeByID(c.Request.Context(), c.Param("clientID"), c.Param("incomeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeResponse(income))
}

func (h *incomeHandler) listIncome(c *gin.Context) {
	dateRange, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	income, err := h.incomeService.ListIncome(c.Request.Context(), c.Param("clientID"), dateRange)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListIncomeResponse(income))
}

func (h *incomeHandler) updateIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	incomeID := c.Param("incomeID")

	var req dto.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	income, err := h.incomeService.UpdateIncome(c.Request.Context(), c.Param("clientID"), incomeID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Income updated", slog.String("income_id", incomeID))
	c.JSON(http.StatusOK, dto.ToIncomeResponse(income))
}

func (h *incomeHandler) deleteIncome(c *gin.Context) {
	if err := h.incomeService.DeleteIncome(c.Request.Context(), c.Param("clientID"), c.Param("incomeID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
