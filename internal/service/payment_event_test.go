package service

import (
	"testing"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPaymentEvent_GatewayPaidCreditsStorePending(t *testing.T) {
	w := newWorld(t)
	storeID := uuid.New()
	o, _ := w.order(uuid.New(), storeID, 500_000, 300_000)

	out := w.pay(o, 830_000, domain.PaymentMethodGateway)

	assert.Equal(t, int64(830_000), out.HeldAmount)
	// 800k of lines at 5% leaves 760k for the store.
	assert.Equal(t, int64(760_000), out.StoreCredited)
	assert.Equal(t, int64(760_000), w.storeWallet(storeID).PendingBalance)
	assert.Equal(t, int64(830_000), w.platformBalance())

	custody, err := w.db.PlatformTransactions().OrderCustody(w.ctx, nil, o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(830_000), custody)
}

func TestApplyPaymentEvent_ReplayReturnsStoredOutcome(t *testing.T) {
	w := newWorld(t)
	storeID := uuid.New()
	o, _ := w.order(uuid.New(), storeID, 200_000)
	event := domain.PaymentEvent{
		ExternalRef: "gw-123",
		OrderID:     o.ID,
		Amount:      200_000,
		Status:      domain.PaymentEventPaid,
		Method:      domain.PaymentMethodGateway,
	}

	first, err := w.wallets.ApplyPaymentEvent(w.ctx, event)
	require.NoError(t, err)
	second, err := w.wallets.ApplyPaymentEvent(w.ctx, event)
	require.NoError(t, err)
	w.redis.FlushAll()
	third, err := w.wallets.ApplyPaymentEvent(w.ctx, event)
	require.NoError(t, err)

	assert.Equal(t, first.AppliedAt.UTC(), second.AppliedAt.UTC())
	assert.Equal(t, first.StoreCredited, third.StoreCredited)
	assert.Equal(t, int64(190_000), w.storeWallet(storeID).PendingBalance)
	assert.Equal(t, int64(200_000), w.platformBalance())
}

func TestApplyPaymentEvent_WalletMethodDebitsCustomer(t *testing.T) {
	w := newWorld(t)
	wallet := w.customer(250_000)
	o, _ := w.order(wallet.CustomerID, uuid.New(), 200_000)

	w.pay(o, 200_000, domain.PaymentMethodWallet)

	assert.Equal(t, int64(50_000), w.walletBalance(wallet.ID))
	assert.Equal(t, int64(200_000), w.platformBalance())
}

func TestApplyPaymentEvent_WalletShortfallChangesNothing(t *testing.T) {
	w := newWorld(t)
	wallet := w.customer(10_000)
	storeID := uuid.New()
	o, _ := w.order(wallet.CustomerID, storeID, 200_000)

	_, err := w.wallets.ApplyPaymentEvent(w.ctx, domain.PaymentEvent{
		ExternalRef: "gw-short",
		OrderID:     o.ID,
		Amount:      200_000,
		Status:      domain.PaymentEventPaid,
		Method:      domain.PaymentMethodWallet,
	})
	assert.True(t, apperror.HasCode(err, apperror.CodeInsufficientFunds))

	assert.Equal(t, int64(10_000), w.walletBalance(wallet.ID))
	assert.Equal(t, int64(0), w.storeWallet(storeID).PendingBalance)
	assert.Equal(t, int64(0), w.platformBalance())
}

func TestApplyPaymentEvent_FailedIsRememberedOnly(t *testing.T) {
	w := newWorld(t)
	o, _ := w.order(uuid.New(), uuid.New(), 100_000)

	out, err := w.wallets.ApplyPaymentEvent(w.ctx, domain.PaymentEvent{
		ExternalRef: "gw-fail",
		OrderID:     o.ID,
		Status:      domain.PaymentEventFailed,
		OccurredAt:  time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentEventFailed, out.Status)
	assert.Zero(t, out.HeldAmount)
	assert.Equal(t, int64(0), w.platformBalance())

	log, err := w.db.Idempotency().Get(w.ctx, domain.BuildIdempotencyKey("payment", "gw-fail"))
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestApplyPaymentEvent_Validation(t *testing.T) {
	w := newWorld(t)
	orderID := uuid.New()

	tests := []struct {
		name  string
		event domain.PaymentEvent
		code  string
	}{
		{"missing ref", domain.PaymentEvent{OrderID: orderID, Status: domain.PaymentEventPaid}, "VAL_001"},
		{"unknown status", domain.PaymentEvent{ExternalRef: "x", Status: "refunded"}, "VAL_001"},
		{"zero amount", domain.PaymentEvent{ExternalRef: "x", Status: domain.PaymentEventPaid, Method: domain.PaymentMethodGateway}, apperror.CodeInvalidAmount},
		{"unknown method", domain.PaymentEvent{ExternalRef: "x", Status: domain.PaymentEventPaid, Amount: 1, Method: "CARD"}, "VAL_001"},
		{"unknown order", domain.PaymentEvent{ExternalRef: "x", OrderID: orderID, Status: domain.PaymentEventPaid, Amount: 1, Method: domain.PaymentMethodGateway}, apperror.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.wallets.ApplyPaymentEvent(w.ctx, tt.event)
			assert.True(t, apperror.HasCode(err, tt.code), "got %v", err)
		})
	}
}

func TestApplyPaymentEvent_SecondGatewayRefDoesNotCreditStoreTwice(t *testing.T) {
	w := newWorld(t)
	storeID := uuid.New()
	o, _ := w.order(uuid.New(), storeID, 100_000)

	paid := func(ref string) *domain.PaymentOutcome {
		out, err := w.wallets.ApplyPaymentEvent(w.ctx, domain.PaymentEvent{
			ExternalRef: ref,
			OrderID:     o.ID,
			Amount:      100_000,
			Status:      domain.PaymentEventPaid,
			Method:      domain.PaymentMethodGateway,
		})
		require.NoError(t, err)
		return out
	}

	first := paid("gw-a")
	assert.False(t, first.Duplicate)
	second := paid("gw-b")
	assert.True(t, second.Duplicate)
	assert.Zero(t, second.StoreCredited)
	assert.Equal(t, int64(100_000), second.HeldAmount)

	assert.Equal(t, int64(95_000), w.storeWallet(storeID).PendingBalance)
	// The second capture really happened, so custody keeps it.
	assert.Equal(t, int64(200_000), w.platformBalance())

	again := paid("gw-b")
	assert.True(t, again.Duplicate)
	assert.Equal(t, int64(200_000), w.platformBalance())
}

func TestApplyPaymentEvent_RepeatedWalletPaymentMovesNothing(t *testing.T) {
	w := newWorld(t)
	wallet := w.customer(500_000)
	storeID := uuid.New()
	o, _ := w.order(wallet.CustomerID, storeID, 200_000)

	w.pay(o, 200_000, domain.PaymentMethodWallet)
	out, err := w.wallets.ApplyPaymentEvent(w.ctx, domain.PaymentEvent{
		ExternalRef: "wallet-retry",
		OrderID:     o.ID,
		Amount:      200_000,
		Status:      domain.PaymentEventPaid,
		Method:      domain.PaymentMethodWallet,
	})
	require.NoError(t, err)
	assert.True(t, out.Duplicate)
	assert.Zero(t, out.HeldAmount)

	assert.Equal(t, int64(300_000), w.walletBalance(wallet.ID))
	assert.Equal(t, int64(190_000), w.storeWallet(storeID).PendingBalance)
	assert.Equal(t, int64(200_000), w.platformBalance())
}
