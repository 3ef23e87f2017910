package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallet_CanDebit(t *testing.T) {
	tests := []struct {
		name   string
		status WalletStatus
		want   bool
	}{
		{"active", WalletStatusActive, true},
		{"frozen", WalletStatusFrozen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Wallet{Status: tt.status}
			assert.Equal(t, tt.want, w.CanDebit())
		})
	}
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		txType WalletTransactionType
		want   int64
	}{
		{WalletTxDeposit, 500},
		{WalletTxRefund, 500},
		{WalletTxTransfer, 500},
		{WalletTxHold, -500},
		{WalletTxWithdraw, -500},
	}

	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			assert.Equal(t, tt.want, SignedAmount(tt.txType, 500))
		})
	}
}

func TestStoreWallet_Apply(t *testing.T) {
	now := time.Now()

	t.Run("pending hold then release moves pending to available", func(t *testing.T) {
		w := NewStoreWallet(uuid.New(), now)
		require.NoError(t, w.Apply(&StoreWalletTransaction{Type: StoreTxPendingHold, PendingDelta: 760_000, CreatedAt: now}))
		require.NoError(t, w.Apply(&StoreWalletTransaction{Type: StoreTxReleasePending, PendingDelta: -760_000, AvailableDelta: 760_000, CreatedAt: now}))

		assert.Equal(t, int64(0), w.PendingBalance)
		assert.Equal(t, int64(760_000), w.AvailableBalance)
		assert.Equal(t, int64(760_000), w.TotalRevenue)
	})

	t.Run("rejects negative available plus pending", func(t *testing.T) {
		w := NewStoreWallet(uuid.New(), now)
		w.PendingBalance = 100
		err := w.Apply(&StoreWalletTransaction{Type: StoreTxRefund, PendingDelta: -101, CreatedAt: now})
		assert.ErrorIs(t, err, ErrStoreBalanceNegative)
		assert.Equal(t, int64(100), w.PendingBalance, "wallet untouched on failure")
	})

	t.Run("withdraw cannot borrow from pending", func(t *testing.T) {
		w := NewStoreWallet(uuid.New(), now)
		w.PendingBalance = 1000
		w.AvailableBalance = 10
		err := w.Apply(&StoreWalletTransaction{Type: StoreTxWithdraw, AvailableDelta: -20, CreatedAt: now})
		assert.ErrorIs(t, err, ErrStoreBalanceNegative)
	})

	t.Run("deposit bucket cannot go negative", func(t *testing.T) {
		w := NewStoreWallet(uuid.New(), now)
		w.AvailableBalance = 1000
		err := w.Apply(&StoreWalletTransaction{Type: StoreTxDeposit, DepositDelta: -1, CreatedAt: now})
		assert.ErrorIs(t, err, ErrStoreBalanceNegative)
	})
}

func TestNewStoreMovement(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name                        string
		typ                         StoreWalletTransactionType
		amount                      int64
		wantAmount                  int64
		available, pending, deposit int64
	}{
		{"deposit", StoreTxDeposit, 500, 500, 0, 0, 500},
		{"pending hold", StoreTxPendingHold, 760, 760, 0, 760, 0},
		{"release pending", StoreTxReleasePending, 760, 760, 760, -760, 0},
		{"withdraw", StoreTxWithdraw, 300, 300, -300, 0, 0},
		{"refund", StoreTxRefund, 190, 190, 0, -190, 0},
		{"adjustment charge", StoreTxAdjustment, 5_000, 5_000, 0, -5_000, 0},
		{"adjustment credit", StoreTxAdjustment, -2_000, 2_000, 0, 2_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewStoreMovement(tt.typ, tt.amount, now)
			assert.Equal(t, tt.wantAmount, m.Amount)
			assert.Equal(t, tt.available, m.AvailableDelta)
			assert.Equal(t, tt.pending, m.PendingDelta)
			assert.Equal(t, tt.deposit, m.DepositDelta)
		})
	}
}

func TestPlatformWallet_Apply(t *testing.T) {
	w := &PlatformWallet{ID: uuid.New()}
	now := time.Now()

	hold := &PlatformTransaction{Type: PlatformTxHold, Amount: 800_000, CreatedAt: now}
	w.Apply(hold)
	fee := &PlatformTransaction{Type: PlatformTxPlatformFee, Amount: -40_000, CreatedAt: now}
	w.Apply(fee)
	payout := &PlatformTransaction{Type: PlatformTxPayoutStore, Amount: -760_000, CreatedAt: now}
	w.Apply(payout)

	assert.Equal(t, int64(0), w.Balance)
	assert.Equal(t, int64(40_000), w.TotalFeeRevenue)
	assert.Equal(t, int64(800_000), hold.BalanceAfter)
	assert.Equal(t, w.ID, payout.WalletID)
}

func TestPlatformFee(t *testing.T) {
	tests := []struct {
		name      string
		lineTotal int64
		pct       string
		want      int64
	}{
		{"five percent", 500_000, "5", 25_000},
		{"fractional percent", 300_000, "2.5", 7_500},
		{"rounds half up", 333, "1.5", 5},
		{"zero percent", 100_000, "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlatformFee(tt.lineTotal, decimal.RequireFromString(tt.pct)))
		})
	}
}

func TestStoreOrder_HoldWindowElapsed(t *testing.T) {
	delivered := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour
	o := &StoreOrder{Status: OrderStatusDelivered, DeliveredAt: &delivered}

	assert.False(t, o.HoldWindowElapsed(window, delivered.Add(6*24*time.Hour)))
	assert.True(t, o.HoldWindowElapsed(window, delivered.Add(window)))
	assert.True(t, o.HoldWindowElapsed(window, delivered.Add(window+time.Hour)))

	shipping := &StoreOrder{Status: OrderStatusShipping, DeliveredAt: &delivered}
	assert.False(t, shipping.HoldWindowElapsed(window, delivered.Add(30*24*time.Hour)))
}

func TestStoreOrder_ShippingFeeDelta(t *testing.T) {
	o := &StoreOrder{ShippingFeeEstimated: 30_000}
	_, ok := o.ShippingFeeDelta()
	assert.False(t, ok)

	real := int64(42_000)
	o.ShippingFeeReal = &real
	delta, ok := o.ShippingFeeDelta()
	assert.True(t, ok)
	assert.Equal(t, int64(12_000), delta)
}

func TestStoreOrderItem_Flags(t *testing.T) {
	order := &StoreOrder{ID: uuid.New(), StoreID: uuid.New()}
	item := NewStoreOrderItem(order, "Tea", 2, 250_000, decimal.NewFromInt(5), time.Now())

	assert.Equal(t, int64(500_000), item.LineTotal)
	assert.Equal(t, int64(25_000), item.PlatformFeeAmount)
	assert.Equal(t, int64(475_000), item.NetAmount())
	assert.True(t, item.AwaitingEligibility())
	assert.False(t, item.Billable())

	item.EligibleForPayout = true
	assert.False(t, item.AwaitingEligibility())
	assert.True(t, item.Billable())

	item.IsPayout = true
	assert.False(t, item.Billable())
}

func TestPayoutBill_Recalculate(t *testing.T) {
	b := &PayoutBill{
		TotalGross:             800_000,
		TotalPlatformFee:       40_000,
		TotalShippingOrderFee:  12_000,
		TotalReturnShippingFee: 8_000,
	}
	b.Recalculate()

	assert.Equal(t, int64(740_000), b.TotalNetPayout)
	assert.Equal(t, int64(20_000), b.ShippingDeductions())
}

func TestNewBillCode_Unique(t *testing.T) {
	a, b := NewBillCode(), NewBillCode()
	assert.True(t, strings.HasPrefix(a, "PB-"))
	assert.Len(t, a, 3+26)
	assert.NotEqual(t, a, b)
}

func TestPayoutBillStatus_IsOpen(t *testing.T) {
	assert.True(t, PayoutBillPending.IsOpen())
	assert.True(t, PayoutBillReview.IsOpen())
	assert.False(t, PayoutBillPaid.IsOpen())
	assert.False(t, PayoutBillCanceled.IsOpen())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to ReturnStatus
		want     bool
	}{
		{ReturnPending, ReturnApproved, true},
		{ReturnPending, ReturnRefunded, true},
		{ReturnPending, ReturnReceived, false},
		{ReturnApproved, ReturnShipping, true},
		{ReturnApproved, ReturnCanceled, true},
		{ReturnShipping, ReturnReceived, true},
		{ReturnShipping, ReturnDispute, true},
		{ReturnShipping, ReturnAutoRefunded, true},
		{ReturnReceived, ReturnRefunded, true},
		{ReturnDispute, ReturnDisputeResolvedCustomer, true},
		{ReturnDisputeEscalated, ReturnDisputeResolvedShop, true},
		{ReturnRefunded, ReturnDone, true},
		{ReturnRefunded, ReturnPending, false},
		{ReturnCanceled, ReturnApproved, false},
		{ReturnDone, ReturnRefunded, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestParseReturnStatus_FoldsLegacySpelling(t *testing.T) {
	st, ok := ParseReturnStatus("CANCELLED")
	assert.True(t, ok)
	assert.Equal(t, ReturnCanceled, st)

	st, ok = ParseReturnStatus("AUTO_REFUNDED")
	assert.True(t, ok)
	assert.Equal(t, ReturnAutoRefunded, st)

	_, ok = ParseReturnStatus("LOST")
	assert.False(t, ok)
}

func TestReturnStatus_IsOpen(t *testing.T) {
	for _, st := range OpenReturnStatuses {
		assert.True(t, st.IsOpen(), st)
	}
	for _, st := range RefundOutcomes {
		assert.False(t, st.IsOpen(), st)
	}
	assert.False(t, ReturnCanceled.IsOpen())
	assert.False(t, ReturnDisputeResolvedShop.IsOpen())
}

func TestReturnRequest_MoveTo(t *testing.T) {
	r := &ReturnRequest{Status: ReturnShipping}
	at := time.Now()

	r.MoveTo(ReturnAutoRefunded, at)

	assert.Equal(t, ReturnAutoRefunded, r.Status)
	require.NotNil(t, r.RefundedAt)
	assert.Equal(t, at, *r.RefundedAt)
	assert.Equal(t, at, r.UpdatedAt)
}

func TestMapCarrierStatus(t *testing.T) {
	tests := []struct {
		code string
		want ShipmentStatus
	}{
		{"ready_to_pick", ShipmentReadyToPick},
		{"picking", ShipmentPicking},
		{"picked", ShipmentPicked},
		{"transporting", ShipmentInTransit},
		{"sorting", ShipmentInTransit},
		{"delivering", ShipmentDelivering},
		{"delivered", ShipmentDelivered},
		{" Delivered ", ShipmentDelivered},
		{"delivery_fail", ShipmentDeliveryFailed},
		{"return_transporting", ShipmentReturning},
		{"returned", ShipmentReturned},
		{"cancel", ShipmentCanceled},
		{"lost", ShipmentException},
		{"teleported", ShipmentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, MapCarrierStatus(tt.code))
		})
	}
}

func TestShipmentStatus_PickedUp(t *testing.T) {
	assert.True(t, ShipmentPicked.PickedUp())
	assert.True(t, ShipmentInTransit.PickedUp())
	assert.True(t, ShipmentDelivered.PickedUp())
	assert.False(t, ShipmentPicking.PickedUp())
	assert.False(t, ShipmentCanceled.PickedUp())
}

func TestBuildIdempotencyKeys(t *testing.T) {
	walletID := uuid.MustParse("6f1c2a9e-3b7d-4c1a-9f2e-1d2c3b4a5e6f")

	assert.Equal(t, "payment:gw-123", BuildIdempotencyKey("payment", "gw-123"))
	assert.Equal(t,
		"wallet:6f1c2a9e-3b7d-4c1a-9f2e-1d2c3b4a5e6f:DEPOSIT:bank-9",
		BuildWalletIdempotencyKey(walletID, WalletTxDeposit, "bank-9"),
	)
}
