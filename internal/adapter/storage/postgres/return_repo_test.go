package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func returnRows(status string, r *domain.ReturnRequest) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "customer_id", "store_id", "store_order_id", "item_ids", "reason", "refund_amount", "status",
		"covered_by", "carrier_order_code", "pickup_attempts", "reject_reason", "dispute_reason", "resolution_note",
		"approved_at", "shipped_at", "delivered_to_shop_at", "received_at", "disputed_at", "escalated_at", "resolved_at",
		"refunded_at", "rejected_at", "canceled_at", "completed_at", "created_at", "updated_at",
	}).AddRow(
		r.ID, r.CustomerID, r.StoreID, r.StoreOrderID, r.ItemIDs, r.Reason, r.RefundAmount, status,
		r.CoveredBy, r.CarrierOrderCode, r.PickupAttempts, r.RejectReason, r.DisputeReason, r.ResolutionNote,
		r.ApprovedAt, r.ShippedAt, r.DeliveredToShopAt, r.ReceivedAt, r.DisputedAt, r.EscalatedAt, r.ResolvedAt,
		r.RefundedAt, r.RejectedAt, r.CanceledAt, r.CompletedAt, r.CreatedAt, r.UpdatedAt,
	)
}

func newTestReturn() *domain.ReturnRequest {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.ReturnRequest{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		StoreID:      uuid.New(),
		StoreOrderID: uuid.New(),
		ItemIDs:      []uuid.UUID{uuid.New()},
		Reason:       "wrong size",
		RefundAmount: 250_000,
		Status:       domain.ReturnPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestReturnRepo_GetByID_FoldsLegacyCanceledSpelling(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReturnRepo(mock)
	r := newTestReturn()

	mock.ExpectQuery("SELECT .+ FROM return_requests WHERE id").
		WithArgs(r.ID).
		WillReturnRows(returnRows("CANCELLED", r))

	got, err := repo.GetByID(context.Background(), r.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ReturnCanceled, got.Status)
	assert.Equal(t, r.ItemIDs, got.ItemIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReturnRepo_GetByID_UnknownStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReturnRepo(mock)
	r := newTestReturn()

	mock.ExpectQuery("SELECT .+ FROM return_requests WHERE id").
		WithArgs(r.ID).
		WillReturnRows(returnRows("LOST_IN_SPACE", r))

	_, err = repo.GetByID(context.Background(), r.ID)
	assert.Error(t, err)
}

func TestReturnRepo_UpdateIfStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReturnRepo(mock)
	r := newTestReturn()
	r.MoveTo(domain.ReturnApproved, time.Now().UTC())

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE return_requests SET").
		WithArgs(
			string(r.Status), r.CoveredBy, r.CarrierOrderCode, r.PickupAttempts, r.RejectReason,
			r.DisputeReason, r.ResolutionNote, r.ApprovedAt, r.ShippedAt, r.DeliveredToShopAt,
			r.ReceivedAt, r.DisputedAt, r.EscalatedAt, r.ResolvedAt, r.RefundedAt,
			r.RejectedAt, r.CanceledAt, r.CompletedAt, r.UpdatedAt,
			r.ID, string(domain.ReturnPending),
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	ok, err := repo.UpdateIfStatus(context.Background(), tx, r, domain.ReturnPending)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReturnRepo_ListForSweep_BuildsFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReturnRepo(mock)
	cutoff := time.Now().UTC().Add(-72 * time.Hour)
	yes := true
	r := newTestReturn()
	r.Status = domain.ReturnShipping

	mock.ExpectQuery("FROM return_requests WHERE status = .+ AND updated_at <= .+ AND delivered_to_shop_at IS NOT NULL ORDER BY updated_at").
		WithArgs(string(domain.ReturnShipping), cutoff, 50).
		WillReturnRows(returnRows(string(domain.ReturnShipping), r))

	out, err := repo.ListForSweep(context.Background(), ports.ReturnSweepFilter{
		Status:          domain.ReturnShipping,
		UpdatedBefore:   cutoff,
		DeliveredToShop: &yes,
		Limit:           50,
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, domain.ReturnShipping, out[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReturnRepo_HasOpenForItems(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReturnRepo(mock)
	items := []uuid.UUID{uuid.New()}

	mock.ExpectQuery("SELECT EXISTS .+ FROM return_requests WHERE item_ids &&").
		WithArgs(items, statusStrings(domain.OpenReturnStatuses)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	open, err := repo.HasOpenForItems(context.Background(), items)
	require.NoError(t, err)
	assert.True(t, open)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlatformTransactionRepo_OrderCustody(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPlatformTransactionRepo(mock)
	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COALESCE.+ FROM platform_transactions").
		WithArgs(orderID, domain.PlatformTxHold, domain.PlatformTxRelease, domain.PlatformTxRefundCustomerReturn).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(int64(550_000)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	custody, err := repo.OrderCustody(context.Background(), tx, orderID)
	require.NoError(t, err)
	assert.Equal(t, int64(550_000), custody)
	assert.NoError(t, mock.ExpectationsWereMet())
}
