package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/richmill123/rice_mill_backend/internal/apperrors"
	"github.com/richmill123/rice_mill_backend/internal/core/domain"
	portsrepo "github.com/richmill123/rice_mill_backend/internal/core/ports/repositories"
	"github.com/richmill123/rice_mill_backend/internal/models"
	"github.com/richmill123/rice_mill_backend/internal/utils/mapping"
)

type PgxOrderRepository struct {
	BaseRepository
}

// newPgxOrderRepository creates a new repository for order data.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepository {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OrderRepository = (*PgxOrderRepository)(nil)

const selectOrderFields = `
	order_id, client_id, name, village_name, address, phone_number,
	type_of_paddy, number_of_bags, total_amount, advance_amount, status,
	created_at, last_updated_at`

func scanOrder(row pgx.Row) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.ClientID,
		&m.Name,
		&m.VillageName,
		&m.Address,
		&m.PhoneNumber,
		&m.TypeOfPaddy,
		&m.NumberOfBags,
		&m.TotalAmount,
		&m.AdvanceAmount,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveOrder inserts a new order.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	modelOrder := mapping.ToModelOrder(order)

	query := `
		INSERT INTO orders (` + selectOrderFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelOrder.OrderID,
		modelOrder.ClientID,
		modelOrder.Name,
		modelOrder.VillageName,
		modelOrder.Address,
		modelOrder.PhoneNumber,
		modelOrder.TypeOfPaddy,
		modelOrder.NumberOfBags,
		modelOrder.TotalAmount,
		modelOrder.AdvanceAmount,
		modelOrder.Status,
		modelOrder.CreatedAt,
		modelOrder.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: order with ID %s already exists", apperrors.ErrDuplicate, modelOrder.OrderID)
		}
		return fmt.Errorf("failed to save order %s: %w", modelOrder.OrderID, err)
	}
	return nil
}

// FindOrderByID retrieves one order scoped to its owning client.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, clientID, orderID string) (*domain.Order, error) {
	query := `
		SELECT ` + selectOrderFields + `
		FROM orders
		WHERE client_id = $1 AND order_id = $2;
	`
	modelOrder, err := scanOrder(r.Pool.QueryRow(ctx, query, clientID, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}

	domainOrder := mapping.ToDomainOrder(modelOrder)
	return &domainOrder, nil
}

// ListOrdersByClient retrieves the client's orders, optionally limited to an
// inclusive calendar-date range on created_at.
func (r *PgxOrderRepository) ListOrdersByClient(ctx context.Context, clientID string, dateRange *domain.DateRange) ([]domain.Order, error) {
	query := `
		SELECT ` + selectOrderFields + `
		FROM orders
		WHERE client_id = $1
	`
	args := []any{clientID}
	if dateRange != nil {
		query += ` AND created_at >= $2 AND created_at < $3`
		args = append(args, domain.DayOf(dateRange.Start), domain.DayOf(dateRange.End).AddDate(0, 0, 1))
	}
	query += ` ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	modelOrders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Order, error) {
		return scanOrder(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Order{}, nil
		}
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}

	return mapping.ToDomainOrderSlice(modelOrders), nil
}

// UpdateOrder performs a full-field update of the order row.
func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	modelOrder := mapping.ToModelOrder(order)

	query := `
		UPDATE orders SET
			name = $3,
			village_name = $4,
			address = $5,
			phone_number = $6,
			type_of_paddy = $7,
			number_of_bags = $8,
			total_amount = $9,
			advance_amount = $10,
			status = $11,
			last_updated_at = $12
		WHERE client_id = $1 AND order_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelOrder.ClientID,
		modelOrder.OrderID,
		modelOrder.Name,
		modelOrder.VillageName,
		modelOrder.Address,
		modelOrder.PhoneNumber,
		modelOrder.TypeOfPaddy,
		modelOrder.NumberOfBags,
		modelOrder.TotalAmount,
		modelOrder.AdvanceAmount,
		modelOrder.Status,
		modelOrder.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", modelOrder.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteOrder removes the order row.
func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, clientID, orderID string) error {
	query := `DELETE FROM orders WHERE client_id = $1 AND order_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, clientID, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", orderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateOrderStatus advances the order's status in one guarded write. The
// update only lands while the stored status still equals from; when the row
// exists but the guard misses, the caller lost a concurrent race and gets a
// ConflictError instead of a silent overwrite.
func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, clientID, orderID string, from, to domain.OrderStatus) (*domain.Order, error) {
	query := `
		UPDATE orders SET
			status = $4,
			last_updated_at = NOW()
		WHERE client_id = $1 AND order_id = $2 AND status = $3
		RETURNING ` + selectOrderFields
	modelOrder, err := scanOrder(r.Pool.QueryRow(ctx, query, clientID, orderID, string(from), string(to)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguish a missing order from a lost race on the status guard.
			if _, findErr := r.FindOrderByID(ctx, clientID, orderID); findErr != nil {
				return nil, findErr
			}
			return nil, &apperrors.ConflictError{Entity: "order", ID: orderID}
		}
		return nil, fmt.Errorf("failed to update status of order %s: %w", orderID, err)
	}

	domainOrder := mapping.ToDomainOrder(modelOrder)
	return &domainOrder, nil
}
