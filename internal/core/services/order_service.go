package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
	portssvc "github.com/richmill123/rice_mill_backend/internal/core/ports/services"
	"github.com/richmill123/rice_mill_backend/internal/dto"
)

// orderService implements the OrderSvcFacade interface.
type orderService struct {
	BaseService
	orderRepo portsrepo.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(repo portsrepo.OrderRepository) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: repo}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder validates and stores a new order. Every new order starts in
// CREATED.
func (s *orderService) CreateOrder(ctx context.Context, clientID string, req dto.CreateOrderRequest) (*domain.Order, error) {
	now := time.Now().UTC()
	order := domain.Order{
		OrderID:       uuid.NewString(),
		ClientID:      clientID,
		Name:          req.Name,
		VillageName:   req.VillageName,
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		TypeOfPaddy:   req.TypeOfPaddy,
		NumberOfBags:  req.NumberOfBags,
		TotalAmount:   req.TotalAmount,
		AdvanceAmount: req.AdvanceAmount,
		Status:        domain.OrderCreated,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	order, err := ReconcileOrder(order)
	if err != nil {
		s.LogError(ctx, err, "Order failed validation", slog.String("client_id", clientID))
		return nil, err
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save order", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.LogInfo(ctx, "Order created", slog.String("order_id", order.OrderID), slog.String("client_id", clientID))
	return &order, nil
}

// GetOrderByID retrieves one order scoped to the client.
func (s *orderService) GetOrderByID(ctx context.Context, clientID, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, clientID, orderID)
	if err != nil {
		return nil, err
	}
	reconciled, err := ReconcileOrder(*order)
	if err != nil {
		return nil, err
	}
	return &reconciled, nil
}

// ListOrders retrieves all of the client's orders, optionally date-ranged.
func (s *orderService) ListOrders(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListOrdersByClient(ctx, clientID, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateOrder performs a full-field update of the order's descriptive and
// monetary fields. The status is untouched; it moves only via TransitionOrder.
func (s *orderService) UpdateOrder(ctx context.Context, clientID, orderID string, req dto.UpdateOrderRequest) (*domain.Order, error) {
	existing, err := s.orderRepo.FindOrderByID(ctx, clientID, orderID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = req.Name
	updated.VillageName = req.VillageName
	updated.Address = req.Address
	updated.PhoneNumber = req.PhoneNumber
	updated.TypeOfPaddy = req.TypeOfPaddy
	updated.NumberOfBags = req.NumberOfBags
	updated.TotalAmount = req.TotalAmount
	updated.AdvanceAmount = req.AdvanceAmount
	updated.LastUpdatedAt = time.Now().UTC()

	updated, err = ReconcileOrder(updated)
	if err != nil {
		s.LogError(ctx, err, "Order update failed validation", slog.String("order_id", orderID))
		return nil, err
	}

	if err := s.orderRepo.UpdateOrder(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update order", slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to update order %s: %w", orderID, err)
	}
	return &updated, nil
}

// DeleteOrder removes the order. Deletion is immediate and unrecoverable.
func (s *orderService) DeleteOrder(ctx context.Context, clientID, orderID string) error {
	if err := s.orderRepo.DeleteOrder(ctx, clientID, orderID); err != nil {
		s.LogError(ctx, err, "Failed to delete order", slog.String("order_id", orderID))
		return err
	}
	s.LogInfo(ctx, "Order deleted", slog.String("order_id", orderID), slog.String("client_id", clientID))
	return nil
}

// TransitionOrder moves an order forward along the processing pipeline.
// Progression is strictly forward-only, one stage at a time; requesting the
// current status again is a no-op. The write is guarded by the stored status,
// so a concurrent transition surfaces as apperrors.ConflictError for the
// caller to retry.
func (s *orderService) TransitionOrder(ctx context.Context, clientID, orderID string, targetStatus domain.OrderStatus) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, clientID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.CanTransition(targetStatus); err != nil {
		s.LogError(ctx, err, "Rejected order status transition",
			slog.String("order_id", orderID),
			slog.String("from", string(order.Status)),
			slog.String("to", string(targetStatus)))
		return nil, err
	}

	if order.Status == targetStatus {
		return order, nil
	}

	updated, err := s.orderRepo.UpdateOrderStatus(ctx, clientID, orderID, order.Status, targetStatus)
	if err != nil {
		s.LogError(ctx, err, "Failed to apply order status transition",
			slog.String("order_id", orderID),
			slog.String("to", string(targetStatus)))
		return nil, err
	}

	s.LogInfo(ctx, "Order status advanced",
		slog.String("order_id", orderID),
		slog.String("from", string(order.Status)),
		slog.String("to", string(targetStatus)))
	return updated, nil
}
