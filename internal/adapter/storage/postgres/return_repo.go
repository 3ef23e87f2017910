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

const returnColumns = `id, customer_id, store_id, store_order_id, item_ids, reason, refund_amount, status,
	covered_by, carrier_order_code, pickup_attempts, reject_reason, dispute_reason, resolution_note,
	approved_at, shipped_at, delivered_to_shop_at, received_at, disputed_at, escalated_at, resolved_at,
	refunded_at, rejected_at, canceled_at, completed_at, created_at, updated_at`

// ReturnRepo implements ports.ReturnRepository.
type ReturnRepo struct {
	pool Pool
}

// NewReturnRepo creates a new ReturnRepo.
func NewReturnRepo(pool Pool) *ReturnRepo {
	return &ReturnRepo{pool: pool}
}

func scanReturn(row pgx.Row) (*domain.ReturnRequest, error) {
	r := &domain.ReturnRequest{}
	var status string
	err := row.Scan(
		&r.ID, &r.CustomerID, &r.StoreID, &r.StoreOrderID, &r.ItemIDs, &r.Reason, &r.RefundAmount, &status,
		&r.CoveredBy, &r.CarrierOrderCode, &r.PickupAttempts, &r.RejectReason, &r.DisputeReason, &r.ResolutionNote,
		&r.ApprovedAt, &r.ShippedAt, &r.DeliveredToShopAt, &r.ReceivedAt, &r.DisputedAt, &r.EscalatedAt, &r.ResolvedAt,
		&r.RefundedAt, &r.RejectedAt, &r.CanceledAt, &r.CompletedAt, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	st, ok := domain.ParseReturnStatus(status)
	if !ok {
		return nil, fmt.Errorf("unknown return status %q", status)
	}
	r.Status = st
	return r, nil
}

func (repo *ReturnRepo) collect(rows pgx.Rows) ([]domain.ReturnRequest, error) {
	defer rows.Close()

	var out []domain.ReturnRequest
	for rows.Next() {
		r, err := scanReturn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func statusStrings(statuses []domain.ReturnStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (repo *ReturnRepo) Create(ctx context.Context, tx pgx.Tx, r *domain.ReturnRequest) error {
	query := `INSERT INTO return_requests (` + returnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
		$20, $21, $22, $23, $24, $25, $26, $27)`

	_, err := tx.Exec(ctx, query,
		r.ID, r.CustomerID, r.StoreID, r.StoreOrderID, r.ItemIDs, r.Reason, r.RefundAmount, string(r.Status),
		r.CoveredBy, r.CarrierOrderCode, r.PickupAttempts, r.RejectReason, r.DisputeReason, r.ResolutionNote,
		r.ApprovedAt, r.ShippedAt, r.DeliveredToShopAt, r.ReceivedAt, r.DisputedAt, r.EscalatedAt, r.ResolvedAt,
		r.RefundedAt, r.RejectedAt, r.CanceledAt, r.CompletedAt, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert return request: %w", err)
	}
	return nil
}

func (repo *ReturnRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReturnRequest, error) {
	r, err := scanReturn(repo.pool.QueryRow(ctx, `SELECT `+returnColumns+` FROM return_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return request: %w", err)
	}
	return r, nil
}

func (repo *ReturnRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.ReturnRequest, error) {
	r, err := scanReturn(tx.QueryRow(ctx, `SELECT `+returnColumns+` FROM return_requests WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return request for update: %w", err)
	}
	return r, nil
}

func (repo *ReturnRepo) GetByCarrierOrderCode(ctx context.Context, code string) (*domain.ReturnRequest, error) {
	r, err := scanReturn(repo.pool.QueryRow(ctx,
		`SELECT `+returnColumns+` FROM return_requests WHERE carrier_order_code = $1 ORDER BY created_at DESC LIMIT 1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return by carrier code: %w", err)
	}
	return r, nil
}

func (repo *ReturnRepo) HasOpenForItems(ctx context.Context, itemIDs []uuid.UUID) (bool, error) {
	var exists bool
	err := repo.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM return_requests WHERE item_ids && $1 AND status = ANY($2))`,
		itemIDs, statusStrings(domain.OpenReturnStatuses),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check open returns: %w", err)
	}
	return exists, nil
}

// ListForSweep selects by status and updated_at age, oldest first.
func (repo *ReturnRepo) ListForSweep(ctx context.Context, f ports.ReturnSweepFilter) ([]domain.ReturnRequest, error) {
	conds := []string{"status = $1", "updated_at <= $2"}
	args := []any{string(f.Status), f.UpdatedBefore}

	if f.HasCarrierShipment != nil {
		if *f.HasCarrierShipment {
			conds = append(conds, "carrier_order_code <> ''")
		} else {
			conds = append(conds, "carrier_order_code = ''")
		}
	}
	if f.DeliveredToShop != nil {
		if *f.DeliveredToShop {
			conds = append(conds, "delivered_to_shop_at IS NOT NULL")
		} else {
			conds = append(conds, "delivered_to_shop_at IS NULL")
		}
	}
	args = append(args, f.Limit)

	query := fmt.Sprintf(`SELECT %s FROM return_requests WHERE %s ORDER BY updated_at LIMIT $%d`,
		returnColumns, strings.Join(conds, " AND "), len(args))

	rows, err := repo.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list returns for sweep: %w", err)
	}
	out, err := repo.collect(rows)
	if err != nil {
		return nil, fmt.Errorf("scan returns for sweep: %w", err)
	}
	return out, nil
}

func (repo *ReturnRepo) ListRefundedWithLiveItems(ctx context.Context, limit int) ([]domain.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM return_requests r
		WHERE r.status = ANY($1) AND r.refunded_at IS NOT NULL
		AND EXISTS (
			SELECT 1 FROM store_order_items i
			WHERE i.id = ANY(r.item_ids) AND i.payout_excluded = FALSE AND i.is_payout = FALSE
		)
		ORDER BY r.refunded_at LIMIT $2`

	rows, err := repo.pool.Query(ctx, query, statusStrings(domain.RefundOutcomes), limit)
	if err != nil {
		return nil, fmt.Errorf("list refunded returns: %w", err)
	}
	out, err := repo.collect(rows)
	if err != nil {
		return nil, fmt.Errorf("scan refunded returns: %w", err)
	}
	return out, nil
}

func (repo *ReturnRepo) ListOpenShipments(ctx context.Context, limit int) ([]domain.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM return_requests
		WHERE carrier_order_code <> ''
		AND (status = $1 OR (status = $2 AND delivered_to_shop_at IS NULL))
		ORDER BY updated_at LIMIT $3`

	rows, err := repo.pool.Query(ctx, query, string(domain.ReturnApproved), string(domain.ReturnShipping), limit)
	if err != nil {
		return nil, fmt.Errorf("list open return shipments: %w", err)
	}
	out, err := repo.collect(rows)
	if err != nil {
		return nil, fmt.Errorf("scan open return shipments: %w", err)
	}
	return out, nil
}

// UpdateIfStatus persists r when the row still has status from.
func (repo *ReturnRepo) UpdateIfStatus(ctx context.Context, tx pgx.Tx, r *domain.ReturnRequest, from domain.ReturnStatus) (bool, error) {
	query := `UPDATE return_requests SET
		status = $1, covered_by = $2, carrier_order_code = $3, pickup_attempts = $4, reject_reason = $5,
		dispute_reason = $6, resolution_note = $7, approved_at = $8, shipped_at = $9, delivered_to_shop_at = $10,
		received_at = $11, disputed_at = $12, escalated_at = $13, resolved_at = $14, refunded_at = $15,
		rejected_at = $16, canceled_at = $17, completed_at = $18, updated_at = $19
		WHERE id = $20 AND status = $21`

	tag, err := tx.Exec(ctx, query,
		string(r.Status), r.CoveredBy, r.CarrierOrderCode, r.PickupAttempts, r.RejectReason,
		r.DisputeReason, r.ResolutionNote, r.ApprovedAt, r.ShippedAt, r.DeliveredToShopAt,
		r.ReceivedAt, r.DisputedAt, r.EscalatedAt, r.ResolvedAt, r.RefundedAt,
		r.RejectedAt, r.CanceledAt, r.CompletedAt, r.UpdatedAt,
		r.ID, string(from),
	)
	if err != nil {
		return false, fmt.Errorf("update return request: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
