package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, order_code, store_id, customer_id, status, carrier_order_code,
	shipping_fee_estimated, shipping_fee_real, delivered_at, paid_at, created_at, updated_at`

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

func scanOrder(row pgx.Row) (*domain.StoreOrder, error) {
	o := &domain.StoreOrder{}
	err := row.Scan(
		&o.ID, &o.OrderCode, &o.StoreID, &o.CustomerID, &o.Status, &o.CarrierOrderCode,
		&o.ShippingFeeEstimated, &o.ShippingFeeReal, &o.DeliveredAt, &o.PaidAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepo) listOrders(ctx context.Context, query string, args ...any) ([]domain.StoreOrder, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.StoreOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *OrderRepo) Create(ctx context.Context, o *domain.StoreOrder) error {
	query := `INSERT INTO store_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		o.ID, o.OrderCode, o.StoreID, o.CustomerID, o.Status, o.CarrierOrderCode,
		o.ShippingFeeEstimated, o.ShippingFeeReal, o.DeliveredAt, o.PaidAt, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store order: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StoreOrder, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM store_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store order: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) GetByCarrierOrderCode(ctx context.Context, code string) (*domain.StoreOrder, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM store_orders WHERE carrier_order_code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store order by carrier code: %w", err)
	}
	return o, nil
}

func (r *OrderRepo) ListInTransit(ctx context.Context, limit int) ([]domain.StoreOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM store_orders
		WHERE carrier_order_code <> '' AND status IN ($1, $2)
		ORDER BY updated_at LIMIT $3`

	orders, err := r.listOrders(ctx, query, domain.OrderStatusConfirmed, domain.OrderStatusShipping, limit)
	if err != nil {
		return nil, fmt.Errorf("list in-transit orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepo) ListFeeUnreconciled(ctx context.Context, limit int) ([]domain.StoreOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM store_orders o
		WHERE o.status = $1 AND o.shipping_fee_real IS NOT NULL
		AND NOT EXISTS (SELECT 1 FROM shipping_order_fees f WHERE f.store_order_id = o.id)
		ORDER BY o.delivered_at LIMIT $2`

	orders, err := r.listOrders(ctx, query, domain.OrderStatusDelivered, limit)
	if err != nil {
		return nil, fmt.Errorf("list fee-unreconciled orders: %w", err)
	}
	return orders, nil
}

// MarkPaid stamps the first successful payment. The row lock it takes
// serializes concurrent payment events for the same order.
func (r *OrderRepo) MarkPaid(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `UPDATE store_orders SET paid_at = $1, updated_at = $1 WHERE id = $2 AND paid_at IS NULL`, at, id)
	if err != nil {
		return false, fmt.Errorf("mark order paid: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkShipping moves a confirmed order to SHIPPING.
func (r *OrderRepo) MarkShipping(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query := `UPDATE store_orders SET status = $1, updated_at = $2 WHERE id = $3 AND status IN ($4, $5)`

	tag, err := r.pool.Exec(ctx, query, domain.OrderStatusShipping, at, id,
		domain.OrderStatusPending, domain.OrderStatusConfirmed)
	if err != nil {
		return false, fmt.Errorf("mark order shipping: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkDelivered sets DELIVERED and the delivery time once.
func (r *OrderRepo) MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time) (bool, error) {
	query := `UPDATE store_orders SET status = $1, delivered_at = $2, updated_at = $2
		WHERE id = $3 AND status <> $1 AND status <> $4`

	tag, err := r.pool.Exec(ctx, query, domain.OrderStatusDelivered, deliveredAt, id, domain.OrderStatusCanceled)
	if err != nil {
		return false, fmt.Errorf("mark order delivered: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetRealShippingFee records the carrier's fee until it has been reconciled.
func (r *OrderRepo) SetRealShippingFee(ctx context.Context, id uuid.UUID, fee int64) (bool, error) {
	query := `UPDATE store_orders SET shipping_fee_real = $1, updated_at = NOW()
		WHERE id = $2 AND NOT EXISTS (SELECT 1 FROM shipping_order_fees f WHERE f.store_order_id = $2)`

	tag, err := r.pool.Exec(ctx, query, fee, id)
	if err != nil {
		return false, fmt.Errorf("set real shipping fee: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

var _ ports.OrderRepository = (*OrderRepo)(nil)
