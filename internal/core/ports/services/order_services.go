package services

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	"github.com/richmill123/rice_mill_backend/internal/dto"
)

// OrderSvcFacade defines operations on paddy-processing orders, including the
// status pipeline transition.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, clientID string, req dto.CreateOrderRequest) (*domain.Order, error)
	GetOrderByID(ctx context.Context, clientID, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, clientID, orderID string, req dto.UpdateOrderRequest) (*domain.Order, error)
	DeleteOrder(ctx context.Context, clientID, orderID string) error

	// TransitionOrder moves an order to targetStatus. Same-status is a no-op
	// returning the unchanged order; anything but the next pipeline stage
	// fails with apperrors.IllegalTransitionError.
	TransitionOrder(ctx context.Context, clientID, orderID string, targetStatus domain.OrderStatus) (*domain.Order, error)
}
