package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type PayoutBillStatus string

const (
	PayoutBillPending  PayoutBillStatus = "PENDING"
	PayoutBillReview   PayoutBillStatus = "REVIEW"
	PayoutBillPaid     PayoutBillStatus = "PAID"
	PayoutBillCanceled PayoutBillStatus = "CANCELED"
)

// IsOpen reports whether the bill still blocks a new bill for its store.
func (s PayoutBillStatus) IsOpen() bool {
	return s == PayoutBillPending || s == PayoutBillReview
}

// PayoutBill batches a store's eligible items into one transfer.
// Immutable once PAID.
type PayoutBill struct {
	ID                     uuid.UUID        `json:"id"`
	BillCode               string           `json:"bill_code"`
	StoreID                uuid.UUID        `json:"store_id"`
	FromDate               time.Time        `json:"from_date"`
	ToDate                 time.Time        `json:"to_date"`
	TotalGross             int64            `json:"total_gross"`
	TotalPlatformFee       int64            `json:"total_platform_fee"`
	TotalShippingOrderFee  int64            `json:"total_shipping_order_fee"`
	TotalReturnShippingFee int64            `json:"total_return_shipping_fee"`
	TotalNetPayout         int64            `json:"total_net_payout"`
	Status                 PayoutBillStatus `json:"status"`
	TransferReference      string           `json:"transfer_reference,omitempty"`
	ReceiptImageURL        string           `json:"receipt_image_url,omitempty"`
	AdminNote              string           `json:"admin_note,omitempty"`
	PaidAt                 *time.Time       `json:"paid_at,omitempty"`
	PaidBy                 *uuid.UUID       `json:"paid_by,omitempty"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

// NewBillCode returns a unique, time-sortable bill code.
func NewBillCode() string {
	return "PB-" + ulid.Make().String()
}

// ShippingDeductions is the part of the gross the store owes for carriage.
func (b *PayoutBill) ShippingDeductions() int64 {
	return b.TotalShippingOrderFee + b.TotalReturnShippingFee
}

// Recalculate derives the net payout from the component totals.
func (b *PayoutBill) Recalculate() {
	b.TotalNetPayout = b.TotalGross - b.TotalPlatformFee - b.TotalShippingOrderFee - b.TotalReturnShippingFee
}

// PayoutBillItem freezes an order line as it was when billed.
type PayoutBillItem struct {
	ID                    uuid.UUID       `json:"id"`
	BillID                uuid.UUID       `json:"bill_id"`
	OrderItemID           uuid.UUID       `json:"order_item_id"`
	StoreOrderID          uuid.UUID       `json:"store_order_id"`
	ProductName           string          `json:"product_name"`
	Quantity              int             `json:"quantity"`
	LineTotal             int64           `json:"line_total"`
	PlatformFeePercentage decimal.Decimal `json:"platform_fee_percentage"`
	PlatformFeeAmount     int64           `json:"platform_fee_amount"`
	NetAmount             int64           `json:"net_amount"`
	CreatedAt             time.Time       `json:"created_at"`
}

// SnapshotItem copies the billable fields of item into a bill line.
func SnapshotItem(billID uuid.UUID, item *StoreOrderItem, now time.Time) PayoutBillItem {
	return PayoutBillItem{
		ID:                    uuid.New(),
		BillID:                billID,
		OrderItemID:           item.ID,
		StoreOrderID:          item.StoreOrderID,
		ProductName:           item.ProductName,
		Quantity:              item.Quantity,
		LineTotal:             item.LineTotal,
		PlatformFeePercentage: item.PlatformFeePercentage,
		PlatformFeeAmount:     item.PlatformFeeAmount,
		NetAmount:             item.NetAmount(),
		CreatedAt:             now,
	}
}

// PayoutShippingOrderFee freezes a shipping fee deduction on a bill.
type PayoutShippingOrderFee struct {
	ID            uuid.UUID `json:"id"`
	BillID        uuid.UUID `json:"bill_id"`
	ShippingFeeID uuid.UUID `json:"shipping_fee_id"`
	StoreOrderID  uuid.UUID `json:"store_order_id"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// PayoutReturnShippingFee freezes a return shipping deduction on a bill.
type PayoutReturnShippingFee struct {
	ID                  uuid.UUID `json:"id"`
	BillID              uuid.UUID `json:"bill_id"`
	ReturnShippingFeeID uuid.UUID `json:"return_shipping_fee_id"`
	ReturnRequestID     uuid.UUID `json:"return_request_id"`
	Amount              int64     `json:"amount"`
	CreatedAt           time.Time `json:"created_at"`
}

// FeeParty names who absorbs a carrier cost.
type FeeParty string

const (
	FeePartyShop     FeeParty = "SHOP"
	FeePartyPlatform FeeParty = "PLATFORM"
	FeePartyCustomer FeeParty = "CUSTOMER"
)

// ShippingOrderFee is the reconciled carrier cost of one delivered order.
// Amount is what the store is charged on its next bill (zero when the platform absorbs it).
type ShippingOrderFee struct {
	ID           uuid.UUID  `json:"id"`
	StoreID      uuid.UUID  `json:"store_id"`
	StoreOrderID uuid.UUID  `json:"store_order_id"`
	EstimatedFee int64      `json:"estimated_fee"`
	RealFee      int64      `json:"real_fee"`
	Delta        int64      `json:"delta"`
	ChargedTo    FeeParty   `json:"charged_to"`
	Amount       int64      `json:"amount"`
	BillID       *uuid.UUID `json:"bill_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ReturnShippingFee is the carrier cost of shipping a return back to the store.
type ReturnShippingFee struct {
	ID              uuid.UUID  `json:"id"`
	ReturnRequestID uuid.UUID  `json:"return_request_id"`
	StoreID         uuid.UUID  `json:"store_id"`
	Amount          int64      `json:"amount"`
	PaidByShop      bool       `json:"paid_by_shop"`
	Picked          bool       `json:"picked"`
	PickedAt        *time.Time `json:"picked_at,omitempty"`
	BillID          *uuid.UUID `json:"bill_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
