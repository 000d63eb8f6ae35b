package repositories

import (
	"context"

	"github.com/richmill123/rice_mill_backend/internal/core/domain"
)

// OrderRepository defines storage operations for orders. Every operation is
// scoped to the owning client.
type OrderRepository interface {
	SaveOrder(ctx context.Context, order domain.Order) error
	FindOrderByID(ctx context.Context, clientID, orderID string) (*domain.Order, error)
	ListOrdersByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, order domain.Order) error
	DeleteOrder(ctx context.Context, clientID, orderID string) error

	// UpdateOrderStatus moves an order from one status to another in a single
	// guarded write. The update only applies while the stored status still
	// equals from; a lost race returns apperrors.ConflictError.
	UpdateOrderStatus(ctx context.Context, clientID, orderID string, from, to domain.OrderStatus) (*domain.Order, error)
}
