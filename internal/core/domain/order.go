package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of a store order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// StoreOrder is the per-store slice of a customer checkout.
// The carrier bills per parcel, so the real shipping fee lives here and not on items.
type StoreOrder struct {
	ID                   uuid.UUID   `json:"id"`
	OrderCode            string      `json:"order_code"`
	StoreID              uuid.UUID   `json:"store_id"`
	CustomerID           uuid.UUID   `json:"customer_id"`
	Status               OrderStatus `json:"status"`
	CarrierOrderCode     string      `json:"carrier_order_code,omitempty"`
	ShippingFeeEstimated int64       `json:"shipping_fee_estimated"`
	ShippingFeeReal      *int64      `json:"shipping_fee_real,omitempty"`
	DeliveredAt          *time.Time  `json:"delivered_at,omitempty"`
	PaidAt               *time.Time  `json:"paid_at,omitempty"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// IsDelivered reports whether delivery has been confirmed with a timestamp.
func (o *StoreOrder) IsDelivered() bool {
	return o.Status == OrderStatusDelivered && o.DeliveredAt != nil
}

// HoldWindowElapsed reports whether now is at or past deliveredAt + window.
func (o *StoreOrder) HoldWindowElapsed(window time.Duration, now time.Time) bool {
	if !o.IsDelivered() {
		return false
	}
	return !now.Before(o.DeliveredAt.Add(window))
}

// ShippingFeeDelta is real minus estimated fee; ok is false until the carrier reported a fee.
func (o *StoreOrder) ShippingFeeDelta() (delta int64, ok bool) {
	if o.ShippingFeeReal == nil {
		return 0, false
	}
	return *o.ShippingFeeReal - o.ShippingFeeEstimated, true
}

// StoreOrderItem is an order line seen from the payout side.
// EligibleForPayout and IsPayout only move false to true; PayoutExcluded
// is the single path that withdraws eligibility and never touches paid-out items.
type StoreOrderItem struct {
	ID                    uuid.UUID       `json:"id"`
	StoreOrderID          uuid.UUID       `json:"store_order_id"`
	StoreID               uuid.UUID       `json:"store_id"`
	ProductName           string          `json:"product_name"`
	Quantity              int             `json:"quantity"`
	UnitPrice             int64           `json:"unit_price"`
	LineTotal             int64           `json:"line_total"`
	PlatformFeePercentage decimal.Decimal `json:"platform_fee_percentage"`
	PlatformFeeAmount     int64           `json:"platform_fee_amount"`
	EligibleForPayout     bool            `json:"eligible_for_payout"`
	IsPayout              bool            `json:"is_payout"`
	PayoutExcluded        bool            `json:"payout_excluded"`
	PayoutBillID          *uuid.UUID      `json:"payout_bill_id,omitempty"`
	DeliveredAt           *time.Time      `json:"delivered_at,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// NewStoreOrderItem prices a line and freezes its platform fee.
func NewStoreOrderItem(order *StoreOrder, productName string, quantity int, unitPrice int64, feePct decimal.Decimal, now time.Time) *StoreOrderItem {
	lineTotal := unitPrice * int64(quantity)
	return &StoreOrderItem{
		ID:                    uuid.New(),
		StoreOrderID:          order.ID,
		StoreID:               order.StoreID,
		ProductName:           productName,
		Quantity:              quantity,
		UnitPrice:             unitPrice,
		LineTotal:             lineTotal,
		PlatformFeePercentage: feePct,
		PlatformFeeAmount:     PlatformFee(lineTotal, feePct),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// PlatformFee computes round-half-up(lineTotal * pct / 100).
func PlatformFee(lineTotal int64, pct decimal.Decimal) int64 {
	return decimal.NewFromInt(lineTotal).
		Mul(pct).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// NetAmount is what the store earns for the line.
func (i *StoreOrderItem) NetAmount() int64 {
	return i.LineTotal - i.PlatformFeeAmount
}

// AwaitingEligibility reports whether the eligibility pass still has to look at the item.
func (i *StoreOrderItem) AwaitingEligibility() bool {
	return !i.EligibleForPayout && !i.IsPayout && !i.PayoutExcluded
}

// Billable reports whether the item may be put on a payout bill.
func (i *StoreOrderItem) Billable() bool {
	return i.EligibleForPayout && !i.IsPayout && !i.PayoutExcluded
}
