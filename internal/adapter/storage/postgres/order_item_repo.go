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

const orderItemColumns = `id, store_order_id, store_id, product_name, quantity, unit_price, line_total,
	platform_fee_percentage, platform_fee_amount, eligible_for_payout, is_payout, payout_excluded,
	payout_bill_id, delivered_at, created_at, updated_at`

const prefixedOrderItemColumns = `i.id, i.store_order_id, i.store_id, i.product_name, i.quantity, i.unit_price, i.line_total,
	i.platform_fee_percentage, i.platform_fee_amount, i.eligible_for_payout, i.is_payout, i.payout_excluded,
	i.payout_bill_id, i.delivered_at, i.created_at, i.updated_at`

// OrderItemRepo implements ports.OrderItemRepository. Every flag change is a
// compare-and-set so concurrent passes and bill generation never double-apply.
type OrderItemRepo struct {
	pool Pool
}

// NewOrderItemRepo creates a new OrderItemRepo.
func NewOrderItemRepo(pool Pool) *OrderItemRepo {
	return &OrderItemRepo{pool: pool}
}

func scanOrderItem(row pgx.Row) (*domain.StoreOrderItem, error) {
	i := &domain.StoreOrderItem{}
	err := row.Scan(
		&i.ID, &i.StoreOrderID, &i.StoreID, &i.ProductName, &i.Quantity, &i.UnitPrice, &i.LineTotal,
		&i.PlatformFeePercentage, &i.PlatformFeeAmount, &i.EligibleForPayout, &i.IsPayout, &i.PayoutExcluded,
		&i.PayoutBillID, &i.DeliveredAt, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func collectOrderItems(rows pgx.Rows) ([]domain.StoreOrderItem, error) {
	defer rows.Close()

	var items []domain.StoreOrderItem
	for rows.Next() {
		i, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *i)
	}
	return items, rows.Err()
}

func (r *OrderItemRepo) Create(ctx context.Context, i *domain.StoreOrderItem) error {
	query := `INSERT INTO store_order_items (` + orderItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.pool.Exec(ctx, query,
		i.ID, i.StoreOrderID, i.StoreID, i.ProductName, i.Quantity, i.UnitPrice, i.LineTotal,
		i.PlatformFeePercentage, i.PlatformFeeAmount, i.EligibleForPayout, i.IsPayout, i.PayoutExcluded,
		i.PayoutBillID, i.DeliveredAt, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

func (r *OrderItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StoreOrderItem, error) {
	i, err := scanOrderItem(r.pool.QueryRow(ctx, `SELECT `+orderItemColumns+` FROM store_order_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return i, nil
}

func (r *OrderItemRepo) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.StoreOrderItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderItemColumns+` FROM store_order_items
		WHERE store_order_id = $1 ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	items, err := collectOrderItems(rows)
	if err != nil {
		return nil, fmt.Errorf("scan order items: %w", err)
	}
	return items, nil
}

func (r *OrderItemRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.StoreOrderItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderItemColumns+` FROM store_order_items
		WHERE id = ANY($1) ORDER BY created_at, id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list order items by id: %w", err)
	}
	items, err := collectOrderItems(rows)
	if err != nil {
		return nil, fmt.Errorf("scan order items: %w", err)
	}
	return items, nil
}

// ListAwaitingEligibility only looks at delivered orders past the cutoff, so
// items of canceled or undelivered orders never occupy a batch.
func (r *OrderItemRepo) ListAwaitingEligibility(ctx context.Context, deliveredBefore time.Time, limit int) ([]domain.StoreOrderItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+prefixedOrderItemColumns+` FROM store_order_items i
		JOIN store_orders o ON o.id = i.store_order_id
		WHERE i.eligible_for_payout = FALSE AND i.is_payout = FALSE AND i.payout_excluded = FALSE
		  AND o.status = 'DELIVERED' AND o.delivered_at <= $1
		ORDER BY o.delivered_at, i.created_at LIMIT $2`, deliveredBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("list eligibility candidates: %w", err)
	}
	items, err := collectOrderItems(rows)
	if err != nil {
		return nil, fmt.Errorf("scan eligibility candidates: %w", err)
	}
	return items, nil
}

func (r *OrderItemRepo) ListMissingDeliveredAt(ctx context.Context, limit int) ([]ports.DeliveredAtBackfill, error) {
	query := `SELECT i.id, o.delivered_at FROM store_order_items i
		JOIN store_orders o ON o.id = i.store_order_id
		WHERE i.delivered_at IS NULL AND o.delivered_at IS NOT NULL
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list items missing delivered_at: %w", err)
	}
	defer rows.Close()

	var out []ports.DeliveredAtBackfill
	for rows.Next() {
		var b ports.DeliveredAtBackfill
		if err := rows.Scan(&b.ItemID, &b.DeliveredAt); err != nil {
			return nil, fmt.Errorf("scan delivered_at backfill: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListBillable locks the store's billable items for the caller's bill.
func (r *OrderItemRepo) ListBillable(ctx context.Context, tx pgx.Tx, storeID uuid.UUID) ([]domain.StoreOrderItem, error) {
	rows, err := tx.Query(ctx, `SELECT `+orderItemColumns+` FROM store_order_items
		WHERE store_id = $1 AND eligible_for_payout = TRUE AND is_payout = FALSE AND payout_excluded = FALSE
		ORDER BY delivered_at, id FOR UPDATE`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list billable items: %w", err)
	}
	items, err := collectOrderItems(rows)
	if err != nil {
		return nil, fmt.Errorf("scan billable items: %w", err)
	}
	return items, nil
}

func (r *OrderItemRepo) ListStoresWithBillable(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT store_id FROM store_order_items
		WHERE eligible_for_payout = TRUE AND is_payout = FALSE AND payout_excluded = FALSE`)
	if err != nil {
		return nil, fmt.Errorf("list stores with billable items: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan store id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *OrderItemRepo) MarkEligible(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query := `UPDATE store_order_items SET eligible_for_payout = TRUE, updated_at = $1
		WHERE id = $2 AND eligible_for_payout = FALSE AND is_payout = FALSE AND payout_excluded = FALSE`

	tag, err := r.pool.Exec(ctx, query, at, id)
	if err != nil {
		return false, fmt.Errorf("mark item eligible: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OrderItemRepo) SetDeliveredAt(ctx context.Context, id uuid.UUID, deliveredAt time.Time) (bool, error) {
	query := `UPDATE store_order_items SET delivered_at = $1, updated_at = NOW() WHERE id = $2 AND delivered_at IS NULL`

	tag, err := r.pool.Exec(ctx, query, deliveredAt, id)
	if err != nil {
		return false, fmt.Errorf("set item delivered_at: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *OrderItemRepo) MarkPaidOut(ctx context.Context, tx pgx.Tx, id uuid.UUID, billID uuid.UUID, at time.Time) (bool, error) {
	query := `UPDATE store_order_items SET is_payout = TRUE, payout_bill_id = $1, updated_at = $2
		WHERE id = $3 AND is_payout = FALSE AND eligible_for_payout = TRUE AND payout_excluded = FALSE`

	tag, err := tx.Exec(ctx, query, billID, at, id)
	if err != nil {
		return false, fmt.Errorf("mark item paid out: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Exclude withdraws an item from payout for good. Paid-out items are never touched.
func (r *OrderItemRepo) Exclude(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) (bool, error) {
	query := `UPDATE store_order_items SET payout_excluded = TRUE, eligible_for_payout = FALSE, updated_at = $1
		WHERE id = $2 AND payout_excluded = FALSE AND is_payout = FALSE`

	tag, err := tx.Exec(ctx, query, at, id)
	if err != nil {
		return false, fmt.Errorf("exclude item: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
