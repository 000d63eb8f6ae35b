package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
	"github.com/richmill123/rice_mill_backend/internal/dto"
	"github.com/richmill123/rice_mill_backend/internal/middleware"
)

// stockHandler handles HTTP requests related to the stock snapshot.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

// newStockHandler creates a new stockHandler.
func newStockHandler(ss portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{
		stockService: ss,
	}
}

// registerStockRoutes registers routes related to stock.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockSvcFacade) {
	h := newStockHandler(stockService)

	stock := rg.Group("/stock")
	{
		stock.PUT("", h.upsertStock)
		stock.GET("", h.listStock)
		stock.GET("/:stockID", h.getStockByID)
		stock.DELETE("/:stockID", h.deleteStock)
	}
}

// upsertStock sets the current quantity for one item type. Repeated writes
// for the same item type land on the same row.
func (h *stockHandler) upsertStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	var req dto.UpsertStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertStock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	stock, err := h.stockService.UpsertStock(c.Request.Context(), clientID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Stock upserted", slog.String("item_type", stock.ItemType))
	c.JSON(http.StatusOK, dto.ToStockResponse(stock))
}

func (h *stockHandler) getStockByID(c *gin.Context) {
	stock, err := h.stockService.GetStockByID(c.Request.Context(), c.Param("clientID"), c.Param("stockID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStockResponse(stock))
}

func (h *stockHandler) listStock(c *gin.Context) {
	stocks, err := h.stockService.ListStock(c.Request.Context(), c.Param("clientID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListStockResponse(stocks))
}

func (h *stockHandler) deleteStock(c *gin.Context) {
	if err := h.stockService.DeleteStock(c.Request.Context(), c.Param("clientID"), c.Param("stockID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
