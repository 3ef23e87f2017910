package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const billColumns = `id, bill_code, store_id, from_date, to_date, total_gross, total_platform_fee,
	total_shipping_order_fee, total_return_shipping_fee, total_net_payout, status, transfer_reference,
	receipt_image_url, admin_note, paid_at, paid_by, created_at, updated_at`

// PayoutBillRepo implements ports.PayoutBillRepository.
type PayoutBillRepo struct {
	pool Pool
}

// NewPayoutBillRepo creates a new PayoutBillRepo.
func NewPayoutBillRepo(pool Pool) *PayoutBillRepo {
	return &PayoutBillRepo{pool: pool}
}

func scanBill(row pgx.Row) (*domain.PayoutBill, error) {
	b := &domain.PayoutBill{}
	err := row.Scan(
		&b.ID, &b.BillCode, &b.StoreID, &b.FromDate, &b.ToDate, &b.TotalGross, &b.TotalPlatformFee,
		&b.TotalShippingOrderFee, &b.TotalReturnShippingFee, &b.TotalNetPayout, &b.Status, &b.TransferReference,
		&b.ReceiptImageURL, &b.AdminNote, &b.PaidAt, &b.PaidBy, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *PayoutBillRepo) Create(ctx context.Context, tx pgx.Tx, b *domain.PayoutBill) error {
	query := `INSERT INTO payout_bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := tx.Exec(ctx, query,
		b.ID, b.BillCode, b.StoreID, b.FromDate, b.ToDate, b.TotalGross, b.TotalPlatformFee,
		b.TotalShippingOrderFee, b.TotalReturnShippingFee, b.TotalNetPayout, b.Status, b.TransferReference,
		b.ReceiptImageURL, b.AdminNote, b.PaidAt, b.PaidBy, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout bill: %w", err)
	}
	return nil
}

func (r *PayoutBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PayoutBill, error) {
	b, err := scanBill(r.pool.QueryRow(ctx, `SELECT `+billColumns+` FROM payout_bills WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payout bill: %w", err)
	}
	return b, nil
}

func (r *PayoutBillRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PayoutBill, error) {
	b, err := scanBill(tx.QueryRow(ctx, `SELECT `+billColumns+` FROM payout_bills WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payout bill for update: %w", err)
	}
	return b, nil
}

func (r *PayoutBillRepo) GetOpenByStore(ctx context.Context, tx pgx.Tx, storeID uuid.UUID) (*domain.PayoutBill, error) {
	b, err := scanBill(tx.QueryRow(ctx, `SELECT `+billColumns+` FROM payout_bills
		WHERE store_id = $1 AND status IN ($2, $3) LIMIT 1`,
		storeID, domain.PayoutBillPending, domain.PayoutBillReview))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open payout bill: %w", err)
	}
	return b, nil
}

// List returns a page of bills plus the total count.
func (r *PayoutBillRepo) List(ctx context.Context, params ports.PayoutBillListParams) ([]domain.PayoutBill, int64, error) {
	var (
		conds []string
		args  []any
	)
	if params.StoreID != nil {
		args = append(args, *params.StoreID)
		conds = append(conds, fmt.Sprintf("store_id = $%d", len(args)))
	}
	if params.Status != nil {
		args = append(args, *params.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payout_bills`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count payout bills: %w", err)
	}

	page, size := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	args = append(args, size, (page-1)*size)
	query := fmt.Sprintf(`SELECT %s FROM payout_bills%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		billColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list payout bills: %w", err)
	}
	defer rows.Close()

	var bills []domain.PayoutBill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan payout bill: %w", err)
		}
		bills = append(bills, *b)
	}
	return bills, total, rows.Err()
}

func (r *PayoutBillRepo) UpdateTotals(ctx context.Context, tx pgx.Tx, b *domain.PayoutBill) error {
	query := `UPDATE payout_bills SET total_gross = $1, total_platform_fee = $2, total_shipping_order_fee = $3,
		total_return_shipping_fee = $4, total_net_payout = $5, from_date = $6, to_date = $7, updated_at = $8
		WHERE id = $9`

	tag, err := tx.Exec(ctx, query,
		b.TotalGross, b.TotalPlatformFee, b.TotalShippingOrderFee, b.TotalReturnShippingFee, b.TotalNetPayout,
		b.FromDate, b.ToDate, b.UpdatedAt, b.ID,
	)
	if err != nil {
		return fmt.Errorf("update payout bill totals: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payout bill not found: %s", b.ID)
	}
	return nil
}

func (r *PayoutBillRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, b *domain.PayoutBill, from domain.PayoutBillStatus) (bool, error) {
	query := `UPDATE payout_bills SET status = $1, transfer_reference = $2, receipt_image_url = $3, admin_note = $4,
		paid_at = $5, paid_by = $6, updated_at = $7
		WHERE id = $8 AND status = $9`

	tag, err := tx.Exec(ctx, query,
		b.Status, b.TransferReference, b.ReceiptImageURL, b.AdminNote, b.PaidAt, b.PaidBy, b.UpdatedAt, b.ID, from,
	)
	if err != nil {
		return false, fmt.Errorf("update payout bill status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PayoutBillRepo) CreateItem(ctx context.Context, tx pgx.Tx, i *domain.PayoutBillItem) error {
	query := `INSERT INTO payout_bill_items
		(id, bill_id, order_item_id, store_order_id, product_name, quantity, line_total,
		platform_fee_percentage, platform_fee_amount, net_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		i.ID, i.BillID, i.OrderItemID, i.StoreOrderID, i.ProductName, i.Quantity, i.LineTotal,
		i.PlatformFeePercentage, i.PlatformFeeAmount, i.NetAmount, i.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout bill item: %w", err)
	}
	return nil
}

func (r *PayoutBillRepo) CreateShippingFee(ctx context.Context, tx pgx.Tx, f *domain.PayoutShippingOrderFee) error {
	_, err := tx.Exec(ctx, `INSERT INTO payout_shipping_order_fees
		(id, bill_id, shipping_fee_id, store_order_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		f.ID, f.BillID, f.ShippingFeeID, f.StoreOrderID, f.Amount, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payout shipping fee: %w", err)
	}
	return nil
}

func (r *PayoutBillRepo) CreateReturnShippingFee(ctx context.Context, tx pgx.Tx, f *domain.PayoutReturnShippingFee) error {
	_, err := tx.Exec(ctx, `INSERT INTO payout_return_shipping_fees
		(id, bill_id, return_shipping_fee_id, return_request_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		f.ID, f.BillID, f.ReturnShippingFeeID, f.ReturnRequestID, f.Amount, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payout return shipping fee: %w", err)
	}
	return nil
}

func (r *PayoutBillRepo) ListItems(ctx context.Context, billID uuid.UUID) ([]domain.PayoutBillItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, bill_id, order_item_id, store_order_id, product_name, quantity,
		line_total, platform_fee_percentage, platform_fee_amount, net_amount, created_at
		FROM payout_bill_items WHERE bill_id = $1 ORDER BY created_at, id`, billID)
	if err != nil {
		return nil, fmt.Errorf("list payout bill items: %w", err)
	}
	defer rows.Close()

	var items []domain.PayoutBillItem
	for rows.Next() {
		var i domain.PayoutBillItem
		if err := rows.Scan(
			&i.ID, &i.BillID, &i.OrderItemID, &i.StoreOrderID, &i.ProductName, &i.Quantity,
			&i.LineTotal, &i.PlatformFeePercentage, &i.PlatformFeeAmount, &i.NetAmount, &i.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payout bill item: %w", err)
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *PayoutBillRepo) ListShippingFees(ctx context.Context, billID uuid.UUID) ([]domain.PayoutShippingOrderFee, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, bill_id, shipping_fee_id, store_order_id, amount, created_at
		FROM payout_shipping_order_fees WHERE bill_id = $1 ORDER BY created_at, id`, billID)
	if err != nil {
		return nil, fmt.Errorf("list payout shipping fees: %w", err)
	}
	defer rows.Close()

	var fees []domain.PayoutShippingOrderFee
	for rows.Next() {
		var f domain.PayoutShippingOrderFee
		if err := rows.Scan(&f.ID, &f.BillID, &f.ShippingFeeID, &f.StoreOrderID, &f.Amount, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payout shipping fee: %w", err)
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

func (r *PayoutBillRepo) ListReturnShippingFees(ctx context.Context, billID uuid.UUID) ([]domain.PayoutReturnShippingFee, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, bill_id, return_shipping_fee_id, return_request_id, amount, created_at
		FROM payout_return_shipping_fees WHERE bill_id = $1 ORDER BY created_at, id`, billID)
	if err != nil {
		return nil, fmt.Errorf("list payout return shipping fees: %w", err)
	}
	defer rows.Close()

	var fees []domain.PayoutReturnShippingFee
	for rows.Next() {
		var f domain.PayoutReturnShippingFee
		if err := rows.Scan(&f.ID, &f.BillID, &f.ReturnShippingFeeID, &f.ReturnRequestID, &f.Amount, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payout return shipping fee: %w", err)
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}
