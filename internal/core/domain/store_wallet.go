package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrStoreBalanceNegative is returned when a movement would leave
// available + pending below zero, or drain a single bucket below zero.
var ErrStoreBalanceNegative = errors.New("store wallet balance would become negative")

// StoreWallet holds a store's earnings split into buckets.
// Pending only moves to available through a paid payout bill.
type StoreWallet struct {
	ID               uuid.UUID `json:"id"`
	StoreID          uuid.UUID `json:"store_id"`
	AvailableBalance int64     `json:"available_balance"`
	PendingBalance   int64     `json:"pending_balance"`
	DepositBalance   int64     `json:"deposit_balance"`
	TotalRevenue     int64     `json:"total_revenue"`
	Currency         string    `json:"currency"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewStoreWallet opens an empty wallet for a store.
func NewStoreWallet(storeID uuid.UUID, now time.Time) *StoreWallet {
	return &StoreWallet{
		ID:        uuid.New(),
		StoreID:   storeID,
		Currency:  Currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type StoreWalletTransactionType string

const (
	StoreTxDeposit        StoreWalletTransactionType = "DEPOSIT"
	StoreTxPendingHold    StoreWalletTransactionType = "PENDING_HOLD"
	StoreTxReleasePending StoreWalletTransactionType = "RELEASE_PENDING"
	StoreTxWithdraw       StoreWalletTransactionType = "WITHDRAW"
	StoreTxRefund         StoreWalletTransactionType = "REFUND"
	StoreTxAdjustment     StoreWalletTransactionType = "ADJUSTMENT"
)

// StoreWalletTransaction records the per-bucket deltas of one movement.
// Amount is the unsigned magnitude shown to the store.
type StoreWalletTransaction struct {
	ID             uuid.UUID                  `json:"id"`
	WalletID       uuid.UUID                  `json:"wallet_id"`
	Type           StoreWalletTransactionType `json:"type"`
	Amount         int64                      `json:"amount"`
	AvailableDelta int64                      `json:"available_delta"`
	PendingDelta   int64                      `json:"pending_delta"`
	DepositDelta   int64                      `json:"deposit_delta"`
	OrderID        *uuid.UUID                 `json:"order_id,omitempty"`
	BillID         *uuid.UUID                 `json:"bill_id,omitempty"`
	Note           string                     `json:"note,omitempty"`
	CreatedAt      time.Time                  `json:"created_at"`
}

// Apply adds the transaction deltas to w after checking the balance invariants.
// w is left untouched when the check fails.
func (w *StoreWallet) Apply(t *StoreWalletTransaction) error {
	available := w.AvailableBalance + t.AvailableDelta
	pending := w.PendingBalance + t.PendingDelta
	deposit := w.DepositBalance + t.DepositDelta

	if available+pending < 0 || deposit < 0 {
		return ErrStoreBalanceNegative
	}
	if t.Type == StoreTxWithdraw && available < 0 {
		return ErrStoreBalanceNegative
	}

	w.AvailableBalance = available
	w.PendingBalance = pending
	w.DepositBalance = deposit
	if t.Type == StoreTxReleasePending {
		w.TotalRevenue += t.AvailableDelta
	}
	w.UpdatedAt = t.CreatedAt
	return nil
}

// NewStoreMovement builds a store transaction with the bucket deltas implied
// by typ. amount is signed only for ADJUSTMENT, where a positive value is a
// charge against pending and a negative one a credit.
func NewStoreMovement(typ StoreWalletTransactionType, amount int64, now time.Time) *StoreWalletTransaction {
	t := &StoreWalletTransaction{
		ID:        uuid.New(),
		Type:      typ,
		Amount:    amount,
		CreatedAt: now,
	}
	switch typ {
	case StoreTxDeposit:
		t.DepositDelta = amount
	case StoreTxPendingHold:
		t.PendingDelta = amount
	case StoreTxReleasePending:
		t.PendingDelta = -amount
		t.AvailableDelta = amount
	case StoreTxWithdraw:
		t.AvailableDelta = -amount
	case StoreTxRefund:
		t.PendingDelta = -amount
	case StoreTxAdjustment:
		t.PendingDelta = -amount
		if amount < 0 {
			t.Amount = -amount
		}
	}
	return t
}

// ForOrder tags the movement with an order.
func (t *StoreWalletTransaction) ForOrder(orderID uuid.UUID) *StoreWalletTransaction {
	t.OrderID = &orderID
	return t
}

// ForBill tags the movement with a payout bill.
func (t *StoreWalletTransaction) ForBill(billID uuid.UUID) *StoreWalletTransaction {
	t.BillID = &billID
	return t
}
