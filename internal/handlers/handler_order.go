package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
	"github.com/richmill123/rice_mill_backend/internal/dto"
	"github.com/richmill123/rice_mill_backend/internal/middleware"
)

// orderHandler handles HTTP requests related to orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// newOrderHandler creates a new orderHandler.
func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{
		orderService: os,
	}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:orderID", h.getOrderByID)
		orders.PUT("/:orderID", h.updateOrder)
		orders.PATCH("/:orderID/status", h.transitionOrder)
		orders.DELETE("/:orderID", h.deleteOrder)
	}
}

func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), clientID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Order created", slog.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

func (h *orderHandler) getOrderByID(c *gin.Context) {
	order, err := h.orderService.GetOrderByID(c.Request.Context(), c.Param("clientID"), c.Param("orderID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *orderHandler) listOrders(c *gin.Context) {
	dateRange, err := parseDateRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), c.Param("clientID"), dateRange)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

func (h *orderHandler) updateOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), c.Param("clientID"), orderID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Order updated", slog.String("order_id", orderID))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// transitionOrder moves an order along the processing pipeline. The request
// names the target stage; anything but the current or next stage is rejected.
func (h *orderHandler) transitionOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	var req dto.TransitionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransitionOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	order, err := h.orderService.TransitionOrder(c.Request.Context(), c.Param("clientID"), orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Order status updated", slog.String("order_id", orderID), slog.String("status", string(order.Status)))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

func (h *orderHandler) deleteOrder(c *gin.Context) {
	if err := h.orderService.DeleteOrder(c.Request.Context(), c.Param("clientID"), c.Param("orderID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
