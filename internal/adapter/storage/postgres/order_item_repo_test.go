package postgres

import (
	"context"
	"testing"
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderItemRows(items ...*domain.StoreOrderItem) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "store_order_id", "store_id", "product_name", "quantity", "unit_price", "line_total",
		"platform_fee_percentage", "platform_fee_amount", "eligible_for_payout", "is_payout", "payout_excluded",
		"payout_bill_id", "delivered_at", "created_at", "updated_at",
	})
	for _, i := range items {
		rows.AddRow(
			i.ID, i.StoreOrderID, i.StoreID, i.ProductName, i.Quantity, i.UnitPrice, i.LineTotal,
			i.PlatformFeePercentage, i.PlatformFeeAmount, i.EligibleForPayout, i.IsPayout, i.PayoutExcluded,
			i.PayoutBillID, i.DeliveredAt, i.CreatedAt, i.UpdatedAt,
		)
	}
	return rows
}

func newTestItem() *domain.StoreOrderItem {
	order := &domain.StoreOrder{ID: uuid.New(), StoreID: uuid.New()}
	return domain.NewStoreOrderItem(order, "Green tea", 4, 200_000, decimal.NewFromInt(5), time.Now().UTC())
}

func TestOrderItemRepo_ListBillable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderItemRepo(mock)
	item := newTestItem()
	item.EligibleForPayout = true

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM store_order_items .+ eligible_for_payout = TRUE .+ FOR UPDATE").
		WithArgs(item.StoreID).
		WillReturnRows(orderItemRows(item))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	items, err := repo.ListBillable(context.Background(), tx, item.StoreID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(800_000), items[0].LineTotal)
	assert.Equal(t, int64(40_000), items[0].PlatformFeeAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderItemRepo_MarkEligible(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"flag flipped", 1, true},
		{"already eligible or excluded", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			repo := NewOrderItemRepo(mock)
			id := uuid.New()
			at := time.Now().UTC()

			mock.ExpectExec("UPDATE store_order_items SET eligible_for_payout = TRUE").
				WithArgs(at, id).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))

			ok, err := repo.MarkEligible(context.Background(), id, at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderItemRepo_MarkPaidOut_LostRace(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderItemRepo(mock)
	id, billID := uuid.New(), uuid.New()
	at := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE store_order_items SET is_payout = TRUE").
		WithArgs(billID, at, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	ok, err := repo.MarkPaidOut(context.Background(), tx, id, billID, at)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderItemRepo_Exclude(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderItemRepo(mock)
	id := uuid.New()
	at := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE store_order_items SET payout_excluded = TRUE, eligible_for_payout = FALSE").
		WithArgs(at, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	ok, err := repo.Exclude(context.Background(), tx, id, at)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderItemRepo_ListMissingDeliveredAt(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderItemRepo(mock)
	itemID := uuid.New()
	delivered := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT i.id, o.delivered_at FROM store_order_items i").
		WithArgs(100).
		WillReturnRows(pgxmock.NewRows([]string{"id", "delivered_at"}).AddRow(itemID, delivered))

	out, err := repo.ListMissingDeliveredAt(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, itemID, out[0].ItemID)
	assert.Equal(t, delivered, out[0].DeliveredAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderItemRepo_ListStoresWithBillable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderItemRepo(mock)
	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT DISTINCT store_id FROM store_order_items").
		WillReturnRows(pgxmock.NewRows([]string{"store_id"}).AddRow(a).AddRow(b))

	ids, err := repo.ListStoresWithBillable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_MarkDelivered(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	id := uuid.New()
	at := time.Now().UTC()

	mock.ExpectExec("UPDATE store_orders SET status").
		WithArgs(domain.OrderStatusDelivered, at, id, domain.OrderStatusCanceled).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.MarkDelivered(context.Background(), id, at)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderItemRepo_ListAwaitingEligibility(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderItemRepo(mock)
	item := newTestItem()
	cutoff := time.Now().UTC().Add(-7 * 24 * time.Hour)

	mock.ExpectQuery("SELECT .+ FROM store_order_items i JOIN store_orders o .+ o.status = 'DELIVERED' AND o.delivered_at <= \\$1").
		WithArgs(cutoff, 50).
		WillReturnRows(orderItemRows(item))

	items, err := repo.ListAwaitingEligibility(context.Background(), cutoff, 50)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
