package dto

import (
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/google/uuid"
)

// PaymentWebhookRequest is the payment gateway's notification body.
type PaymentWebhookRequest struct {
	ExternalRef string `json:"external_ref" binding:"required,max=100,safe_id"`
	OrderID     string `json:"order_id" binding:"required,uuid"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Status      string `json:"status" binding:"required,oneof=paid failed"`
	Method      string `json:"method" binding:"omitempty,oneof=GATEWAY WALLET"`
	OccurredAt  string `json:"occurred_at" binding:"omitempty"`
}

// ToEvent converts a bound request. Binding already validated the uuid.
func (r PaymentWebhookRequest) ToEvent() domain.PaymentEvent {
	method := domain.PaymentMethod(r.Method)
	if method == "" {
		method = domain.PaymentMethodGateway
	}
	occurred, err := time.Parse(time.RFC3339, r.OccurredAt)
	if err != nil {
		occurred = time.Now().UTC()
	}
	return domain.PaymentEvent{
		ExternalRef: r.ExternalRef,
		OrderID:     uuid.MustParse(r.OrderID),
		Amount:      r.Amount,
		Status:      domain.PaymentEventStatus(r.Status),
		Method:      method,
		OccurredAt:  occurred.UTC(),
	}
}

// CarrierWebhookRequest is GHN's order status callback.
type CarrierWebhookRequest struct {
	OrderCode string `json:"OrderCode" binding:"required,carrier_code"`
	Status    string `json:"Status" binding:"required,carrier_status"`
	TotalFee  *int64 `json:"TotalFee,omitempty" binding:"omitempty,gte=0"`
	Time      string `json:"Time,omitempty"`
}

// ToUpdate converts a bound callback.
func (r CarrierWebhookRequest) ToUpdate() domain.CarrierUpdate {
	observed, err := time.Parse(time.RFC3339, r.Time)
	if err != nil {
		observed = time.Now().UTC()
	}
	return domain.CarrierUpdate{
		OrderCode:  r.OrderCode,
		RawStatus:  r.Status,
		TotalFee:   r.TotalFee,
		ObservedAt: observed.UTC(),
	}
}

// ReviewBillRequest moves a bill to REVIEW.
type ReviewBillRequest struct {
	Note string `json:"note" binding:"max=500"`
}

// MarkBillPaidRequest records the bank transfer for a bill.
type MarkBillPaidRequest struct {
	TransferReference string `json:"transfer_reference" binding:"required,max=100,transfer_ref"`
	ReceiptImageURL   string `json:"receipt_image_url" binding:"omitempty,max=500,safe_url"`
	AdminNote         string `json:"admin_note" binding:"max=500"`
}

// ResolveDisputeRequest closes an escalated dispute.
type ResolveDisputeRequest struct {
	InFavorOfCustomer *bool  `json:"in_favor_of_customer" binding:"required"`
	Note              string `json:"note" binding:"required,max=1000"`
}

// ListBillsQuery filters the payout bill listing.
type ListBillsQuery struct {
	StoreID  string `form:"store_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=PENDING REVIEW PAID CANCELED"`
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	PageSize int    `form:"page_size" binding:"omitempty,gte=1,lte=100"`
}

// WebhookAck is returned to webhook senders.
type WebhookAck struct {
	Received bool   `json:"received"`
	Note     string `json:"note,omitempty"`
}
