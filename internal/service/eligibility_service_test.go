package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-settlement/config"
	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEvaluateEligibility_WaitsForHoldWindow(t *testing.T) {
	w := newWorld(t)
	o, items := w.order(uuid.New(), uuid.New(), 100_000)
	w.pay(o, 100_000, domain.PaymentMethodGateway)
	delivered := time.Now().UTC().Add(-time.Hour)
	w.deliver(o, delivered)

	w.at(delivered.Add(6 * 24 * time.Hour))
	n, err := w.eligibility.EvaluateEligibility(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.False(t, w.item(items[0].ID).EligibleForPayout)

	w.at(delivered.Add(7*24*time.Hour + time.Hour))
	n, err = w.eligibility.EvaluateEligibility(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, w.item(items[0].ID).EligibleForPayout)

	n, err = w.eligibility.EvaluateEligibility(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestEvaluateEligibility_UndeliverableItemsDoNotStallBatch(t *testing.T) {
	w := newWorld(t)
	w.eligibility.policy.SweepBatchSize = 2

	// Older items that can never pass the hold window: one order still in
	// transit and one canceled.
	w.order(uuid.New(), uuid.New(), 10_000, 20_000)
	now := time.Now().UTC()
	canceled := &domain.StoreOrder{ID: uuid.New(), StoreID: uuid.New(), Status: domain.OrderStatusCanceled, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, w.db.Orders().Create(w.ctx, canceled))
	require.NoError(t, w.db.OrderItems().Create(w.ctx, domain.NewStoreOrderItem(canceled, "mug", 1, 30_000, decimal.NewFromInt(5), now)))

	o, items := w.order(uuid.New(), uuid.New(), 100_000)
	w.deliver(o, time.Now().UTC().Add(-8*24*time.Hour))

	n, err := w.eligibility.EvaluateEligibility(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, w.item(items[0].ID).EligibleForPayout)

	n, err = w.eligibility.EvaluateEligibility(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestEvaluateEligibility_OpenReturnBlocks(t *testing.T) {
	w := newWorld(t)
	customer := w.customer(0)
	o, items := w.order(customer.CustomerID, uuid.New(), 100_000, 50_000)
	w.pay(o, 150_000, domain.PaymentMethodGateway)
	delivered := time.Now().UTC().Add(-time.Hour)
	w.deliver(o, delivered)

	w.at(delivered.Add(24 * time.Hour))
	_, err := w.returns.CreateReturn(w.ctx, createReturnFor(customer.CustomerID, o, items[0]))
	require.NoError(t, err)

	w.at(delivered.Add(8 * 24 * time.Hour))
	n, err := w.eligibility.EvaluateEligibility(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, w.item(items[0].ID).EligibleForPayout)
	assert.True(t, w.item(items[1].ID).EligibleForPayout)
}

func TestSyncDeliveredAt_CopiesOrderTime(t *testing.T) {
	w := newWorld(t)
	o, items := w.order(uuid.New(), uuid.New(), 10_000, 20_000)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	w.deliver(o, at)

	n, err := w.eligibility.SyncDeliveredAt(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	for _, it := range items {
		got := w.item(it.ID)
		require.NotNil(t, got.DeliveredAt)
		assert.True(t, at.Equal(*got.DeliveredAt))
	}

	n, err = w.eligibility.SyncDeliveredAt(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestProcessReturnOutcomes_ExcludesRefundedItems(t *testing.T) {
	w := newWorld(t)
	storeID := uuid.New()
	o, items := w.order(uuid.New(), storeID, 200_000, 100_000)
	w.pay(o, 300_000, domain.PaymentMethodGateway)
	require.Equal(t, int64(285_000), w.storeWallet(storeID).PendingBalance)

	now := time.Now().UTC()
	r := &domain.ReturnRequest{
		ID:           uuid.New(),
		CustomerID:   o.CustomerID,
		StoreID:      storeID,
		StoreOrderID: o.ID,
		ItemIDs:      []uuid.UUID{items[0].ID},
		Status:       domain.ReturnRefunded,
		RefundedAt:   &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	tx, err := w.db.Begin(w.ctx)
	require.NoError(t, err)
	require.NoError(t, w.db.Returns().Create(w.ctx, tx, r))
	require.NoError(t, tx.Commit(w.ctx))

	n, err := w.eligibility.ProcessReturnOutcomes(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, w.item(items[0].ID).PayoutExcluded)
	assert.False(t, w.item(items[1].ID).PayoutExcluded)
	assert.Equal(t, int64(95_000), w.storeWallet(storeID).PendingBalance)

	n, err = w.eligibility.ProcessReturnOutcomes(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, int64(95_000), w.storeWallet(storeID).PendingBalance)
}

func TestReconcileShippingFees_ShopPays(t *testing.T) {
	w := newWorld(t)
	storeID := uuid.New()
	o, _ := w.order(uuid.New(), storeID, 100_000)
	w.pay(o, 130_000, domain.PaymentMethodGateway)
	w.deliver(o, time.Now().UTC())
	_, err := w.db.Orders().SetRealShippingFee(w.ctx, o.ID, 42_000)
	require.NoError(t, err)

	n, err := w.eligibility.ReconcileShippingFees(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, int64(95_000-12_000), w.storeWallet(storeID).PendingBalance)

	tx, err := w.db.Begin(w.ctx)
	require.NoError(t, err)
	fees, err := w.db.ShippingOrderFees().ListUnbilled(w.ctx, tx, storeID)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(w.ctx))
	require.Len(t, fees, 1)
	assert.Equal(t, int64(12_000), fees[0].Amount)
	assert.Equal(t, domain.FeePartyShop, fees[0].ChargedTo)

	n, err = w.eligibility.ReconcileShippingFees(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestReconcileShippingFees_PlatformAbsorbs(t *testing.T) {
	w := newWorld(t)
	policy := testPolicy()
	policy.ShippingDeltaPolicy = config.ShippingDeltaPlatform
	w.eligibility.policy = policy

	storeID := uuid.New()
	o, _ := w.order(uuid.New(), storeID, 100_000)
	w.pay(o, 130_000, domain.PaymentMethodGateway)
	w.deliver(o, time.Now().UTC())
	_, err := w.db.Orders().SetRealShippingFee(w.ctx, o.ID, 25_000)
	require.NoError(t, err)

	n, err := w.eligibility.ReconcileShippingFees(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, int64(95_000), w.storeWallet(storeID).PendingBalance)
	// Estimate was 5k above the real fee; the platform keeps it.
	assert.Equal(t, int64(130_000+5_000), w.platformBalance())
}

func TestEvaluateEligibility_ItemFailuresAreJoined(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mocks.NewMockOrderItemRepository(ctrl)
	orders := mocks.NewMockOrderRepository(ctrl)
	svc := NewEligibilityService(orders, items, mocks.NewMockReturnRepository(ctrl), mocks.NewMockShippingOrderFeeRepository(ctrl),
		mocks.NewMockStoreWalletService(ctrl), mocks.NewMockPlatformWalletService(ctrl), mocks.NewMockDBTransactor(ctrl),
		testPolicy(), newTestLogger())

	a := domain.StoreOrderItem{ID: uuid.New(), StoreOrderID: uuid.New()}
	b := domain.StoreOrderItem{ID: uuid.New(), StoreOrderID: uuid.New()}
	items.EXPECT().ListAwaitingEligibility(gomock.Any(), gomock.Any(), 100).Return([]domain.StoreOrderItem{a, b}, nil)
	orders.EXPECT().GetByID(gomock.Any(), a.StoreOrderID).Return(nil, errors.New("db down"))
	orders.EXPECT().GetByID(gomock.Any(), b.StoreOrderID).DoAndReturn(func(context.Context, uuid.UUID) (*domain.StoreOrder, error) {
		return nil, errors.New("db down again")
	})

	n, err := svc.EvaluateEligibility(context.Background())
	assert.Equal(t, 0, n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), a.ID.String())
	assert.Contains(t, err.Error(), b.ID.String())
}
