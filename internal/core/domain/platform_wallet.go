package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlatformWallet is the singleton custody ledger. Balance is the money the
// platform holds on behalf of customers and stores; it may dip below zero
// when the platform absorbs carrier cost overruns.
type PlatformWallet struct {
	ID              uuid.UUID `json:"id"`
	Balance         int64     `json:"balance"`
	TotalFeeRevenue int64     `json:"total_fee_revenue"`
	Currency        string    `json:"currency"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type PlatformTransactionType string

const (
	PlatformTxInitialize           PlatformTransactionType = "INITIALIZE"
	PlatformTxHold                 PlatformTransactionType = "HOLD"
	PlatformTxRelease              PlatformTransactionType = "RELEASE"
	PlatformTxRefundCustomerReturn PlatformTransactionType = "REFUND_CUSTOMER_RETURN"
	PlatformTxPayoutStore          PlatformTransactionType = "PAYOUT_STORE"
	PlatformTxPlatformFee          PlatformTransactionType = "PLATFORM_FEE"
	PlatformTxShippingFeeAdjust    PlatformTransactionType = "SHIPPING_FEE_ADJUST"
)

// PlatformTransaction is an immutable custody ledger row. Amount is signed.
type PlatformTransaction struct {
	ID           uuid.UUID               `json:"id"`
	WalletID     uuid.UUID               `json:"wallet_id"`
	Type         PlatformTransactionType `json:"type"`
	Amount       int64                   `json:"amount"`
	BalanceAfter int64                   `json:"balance_after"`
	OrderID      *uuid.UUID              `json:"order_id,omitempty"`
	BillID       *uuid.UUID              `json:"bill_id,omitempty"`
	StoreID      *uuid.UUID              `json:"store_id,omitempty"`
	Note         string                  `json:"note,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
}

// Apply adds t to the wallet balance. PLATFORM_FEE rows also move the fee
// out of custody into fee revenue.
func (w *PlatformWallet) Apply(t *PlatformTransaction) {
	w.Balance += t.Amount
	if t.Type == PlatformTxPlatformFee {
		w.TotalFeeRevenue -= t.Amount
	}
	w.UpdatedAt = t.CreatedAt
	t.WalletID = w.ID
	t.BalanceAfter = w.Balance
}
