package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ShippingOrderFeeRepo implements ports.ShippingOrderFeeRepository.
type ShippingOrderFeeRepo struct {
	pool Pool
}

func NewShippingOrderFeeRepo(pool Pool) *ShippingOrderFeeRepo {
	return &ShippingOrderFeeRepo{pool: pool}
}

// Create inserts the fee row; an order that already has one is left alone.
func (r *ShippingOrderFeeRepo) Create(ctx context.Context, tx pgx.Tx, f *domain.ShippingOrderFee) (bool, error) {
	query := `INSERT INTO shipping_order_fees
		(id, store_id, store_order_id, estimated_fee, real_fee, delta, charged_to, amount, bill_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (store_order_id) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		f.ID, f.StoreID, f.StoreOrderID, f.EstimatedFee, f.RealFee, f.Delta, f.ChargedTo, f.Amount, f.BillID, f.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert shipping order fee: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListUnbilled returns shop-charged rows not yet deducted on a bill.
func (r *ShippingOrderFeeRepo) ListUnbilled(ctx context.Context, tx pgx.Tx, storeID uuid.UUID) ([]domain.ShippingOrderFee, error) {
	query := `SELECT id, store_id, store_order_id, estimated_fee, real_fee, delta, charged_to, amount, bill_id, created_at
		FROM shipping_order_fees
		WHERE store_id = $1 AND bill_id IS NULL AND charged_to = $2 AND amount <> 0
		ORDER BY created_at FOR UPDATE`

	rows, err := tx.Query(ctx, query, storeID, domain.FeePartyShop)
	if err != nil {
		return nil, fmt.Errorf("list unbilled shipping fees: %w", err)
	}
	defer rows.Close()

	var fees []domain.ShippingOrderFee
	for rows.Next() {
		var f domain.ShippingOrderFee
		if err := rows.Scan(
			&f.ID, &f.StoreID, &f.StoreOrderID, &f.EstimatedFee, &f.RealFee, &f.Delta,
			&f.ChargedTo, &f.Amount, &f.BillID, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan shipping fee: %w", err)
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

func (r *ShippingOrderFeeRepo) AttachToBill(ctx context.Context, tx pgx.Tx, id uuid.UUID, billID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, `UPDATE shipping_order_fees SET bill_id = $1 WHERE id = $2 AND bill_id IS NULL`, billID, id)
	if err != nil {
		return false, fmt.Errorf("attach shipping fee to bill: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReturnShippingFeeRepo implements ports.ReturnShippingFeeRepository.
type ReturnShippingFeeRepo struct {
	pool Pool
}

func NewReturnShippingFeeRepo(pool Pool) *ReturnShippingFeeRepo {
	return &ReturnShippingFeeRepo{pool: pool}
}

const returnFeeColumns = `id, return_request_id, store_id, amount, paid_by_shop, picked, picked_at, bill_id, created_at`

func scanReturnFee(row pgx.Row) (*domain.ReturnShippingFee, error) {
	f := &domain.ReturnShippingFee{}
	err := row.Scan(&f.ID, &f.ReturnRequestID, &f.StoreID, &f.Amount, &f.PaidByShop, &f.Picked, &f.PickedAt, &f.BillID, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *ReturnShippingFeeRepo) Create(ctx context.Context, tx pgx.Tx, f *domain.ReturnShippingFee) error {
	query := `INSERT INTO return_shipping_fees (` + returnFeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		f.ID, f.ReturnRequestID, f.StoreID, f.Amount, f.PaidByShop, f.Picked, f.PickedAt, f.BillID, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert return shipping fee: %w", err)
	}
	return nil
}

func (r *ReturnShippingFeeRepo) GetByReturnID(ctx context.Context, returnID uuid.UUID) (*domain.ReturnShippingFee, error) {
	f, err := scanReturnFee(r.pool.QueryRow(ctx,
		`SELECT `+returnFeeColumns+` FROM return_shipping_fees WHERE return_request_id = $1`, returnID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return shipping fee: %w", err)
	}
	return f, nil
}

func (r *ReturnShippingFeeRepo) MarkPicked(ctx context.Context, tx pgx.Tx, returnID uuid.UUID, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx,
		`UPDATE return_shipping_fees SET picked = TRUE, picked_at = $1 WHERE return_request_id = $2 AND picked = FALSE`,
		at, returnID)
	if err != nil {
		return false, fmt.Errorf("mark return fee picked: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ReturnShippingFeeRepo) ListUnbilled(ctx context.Context, tx pgx.Tx, storeID uuid.UUID) ([]domain.ReturnShippingFee, error) {
	rows, err := tx.Query(ctx, `SELECT `+returnFeeColumns+` FROM return_shipping_fees
		WHERE store_id = $1 AND picked = TRUE AND paid_by_shop = TRUE AND bill_id IS NULL
		ORDER BY picked_at FOR UPDATE`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list unbilled return fees: %w", err)
	}
	defer rows.Close()

	var fees []domain.ReturnShippingFee
	for rows.Next() {
		f, err := scanReturnFee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan return fee: %w", err)
		}
		fees = append(fees, *f)
	}
	return fees, rows.Err()
}

func (r *ReturnShippingFeeRepo) AttachToBill(ctx context.Context, tx pgx.Tx, id uuid.UUID, billID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, `UPDATE return_shipping_fees SET bill_id = $1 WHERE id = $2 AND bill_id IS NULL`, billID, id)
	if err != nil {
		return false, fmt.Errorf("attach return fee to bill: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
