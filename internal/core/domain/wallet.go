package domain

import (
	"time"

	"github.com/google/uuid"
)

// Currency is the single settlement currency. Amounts are int64 in its smallest unit.
const Currency = "VND"

// WalletStatus gates debits on a customer wallet.
type WalletStatus string

const (
	WalletStatusActive WalletStatus = "ACTIVE"
	WalletStatusFrozen WalletStatus = "FROZEN"
)

// Wallet is a customer's spendable balance. Balance is a denormalized sum of
// the wallet's transactions and only changes together with a new transaction row.
type Wallet struct {
	ID                uuid.UUID    `json:"id"`
	CustomerID        uuid.UUID    `json:"customer_id"`
	Balance           int64        `json:"balance"`
	Currency          string       `json:"currency"`
	Status            WalletStatus `json:"status"`
	LastTransactionAt *time.Time   `json:"last_transaction_at,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// NewWallet opens an empty active wallet for a customer.
func NewWallet(customerID uuid.UUID, now time.Time) *Wallet {
	return &Wallet{
		ID:         uuid.New(),
		CustomerID: customerID,
		Currency:   Currency,
		Status:     WalletStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CanDebit reports whether money may leave the wallet.
func (w *Wallet) CanDebit() bool {
	return w.Status == WalletStatusActive
}

// WalletTransactionType is the kind of customer wallet movement.
type WalletTransactionType string

const (
	WalletTxDeposit  WalletTransactionType = "DEPOSIT"
	WalletTxWithdraw WalletTransactionType = "WITHDRAW"
	WalletTxHold     WalletTransactionType = "HOLD"     // payment for an order, funds move into platform custody
	WalletTxRefund   WalletTransactionType = "REFUND"   // return refund
	WalletTxTransfer WalletTransactionType = "TRANSFER" // held funds released back before fulfilment
)

// IsCredit reports whether the type adds money to the wallet.
func (t WalletTransactionType) IsCredit() bool {
	switch t {
	case WalletTxDeposit, WalletTxRefund, WalletTxTransfer:
		return true
	}
	return false
}

// WalletTransaction is an immutable customer ledger row. Amount is signed.
type WalletTransaction struct {
	ID           uuid.UUID             `json:"id"`
	WalletID     uuid.UUID             `json:"wallet_id"`
	Type         WalletTransactionType `json:"type"`
	Amount       int64                 `json:"amount"`
	BalanceAfter int64                 `json:"balance_after"`
	OrderID      *uuid.UUID            `json:"order_id,omitempty"`
	ExternalRef  *string               `json:"external_ref,omitempty"`
	Note         string                `json:"note,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// SignedAmount converts a positive magnitude into the ledger sign for t.
func SignedAmount(t WalletTransactionType, magnitude int64) int64 {
	if t.IsCredit() {
		return magnitude
	}
	return -magnitude
}
