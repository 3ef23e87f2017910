package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReturnStatus is a state of the return/refund lifecycle.
// CANCELED is the only spelling; legacy "CANCELLED" input is folded into it by ParseReturnStatus.
type ReturnStatus string

const (
	ReturnPending                 ReturnStatus = "PENDING"
	ReturnApproved                ReturnStatus = "APPROVED"
	ReturnShipping                ReturnStatus = "SHIPPING"
	ReturnReceived                ReturnStatus = "RECEIVED"
	ReturnDispute                 ReturnStatus = "DISPUTE"
	ReturnDisputeEscalated        ReturnStatus = "DISPUTE_ESCALATED"
	ReturnDisputeResolvedShop     ReturnStatus = "DISPUTE_RESOLVED_SHOP"
	ReturnDisputeResolvedCustomer ReturnStatus = "DISPUTE_RESOLVED_CUSTOMER"
	ReturnRefunded                ReturnStatus = "REFUNDED"
	ReturnRejected                ReturnStatus = "REJECTED"
	ReturnAutoRefunded            ReturnStatus = "AUTO_REFUNDED"
	ReturnDone                    ReturnStatus = "RETURN_DONE"
	ReturnCanceled                ReturnStatus = "CANCELED"
)

// ParseReturnStatus normalizes a stored or inbound status string.
func ParseReturnStatus(s string) (ReturnStatus, bool) {
	if s == "CANCELLED" {
		return ReturnCanceled, true
	}
	st := ReturnStatus(s)
	_, ok := returnTransitions[st]
	return st, ok
}

var returnTransitions = map[ReturnStatus][]ReturnStatus{
	ReturnPending:                 {ReturnApproved, ReturnRejected, ReturnRefunded, ReturnCanceled},
	ReturnApproved:                {ReturnShipping, ReturnRefunded, ReturnCanceled},
	ReturnShipping:                {ReturnReceived, ReturnDispute, ReturnAutoRefunded},
	ReturnReceived:                {ReturnRefunded},
	ReturnDispute:                 {ReturnDisputeEscalated, ReturnDisputeResolvedShop, ReturnDisputeResolvedCustomer},
	ReturnDisputeEscalated:        {ReturnDisputeResolvedShop, ReturnDisputeResolvedCustomer},
	ReturnDisputeResolvedCustomer: {ReturnDone},
	ReturnRefunded:                {ReturnDone},
	ReturnAutoRefunded:            {ReturnDone},
	ReturnDisputeResolvedShop:     {},
	ReturnRejected:                {},
	ReturnDone:                    {},
	ReturnCanceled:                {},
}

// CanTransition reports whether from -> to is an edge of the lifecycle.
func CanTransition(from, to ReturnStatus) bool {
	for _, next := range returnTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsOpen reports whether the return still blocks payout of its items.
func (s ReturnStatus) IsOpen() bool {
	switch s {
	case ReturnPending, ReturnApproved, ReturnShipping, ReturnReceived, ReturnDispute, ReturnDisputeEscalated:
		return true
	}
	return false
}

// RefundOutcomes are the statuses in which the customer got their money back.
var RefundOutcomes = []ReturnStatus{ReturnRefunded, ReturnAutoRefunded, ReturnDisputeResolvedCustomer, ReturnDone}

// OpenReturnStatuses lists IsOpen statuses for repository filters.
var OpenReturnStatuses = []ReturnStatus{ReturnPending, ReturnApproved, ReturnShipping, ReturnReceived, ReturnDispute, ReturnDisputeEscalated}

// ReturnRequest is one customer return against a delivered store order.
type ReturnRequest struct {
	ID                uuid.UUID    `json:"id"`
	CustomerID        uuid.UUID    `json:"customer_id"`
	StoreID           uuid.UUID    `json:"store_id"`
	StoreOrderID      uuid.UUID    `json:"store_order_id"`
	ItemIDs           []uuid.UUID  `json:"item_ids"`
	Reason            string       `json:"reason"`
	RefundAmount      int64        `json:"refund_amount"`
	Status            ReturnStatus `json:"status"`
	CoveredBy         FeeParty     `json:"covered_by,omitempty"`
	CarrierOrderCode  string       `json:"carrier_order_code,omitempty"`
	PickupAttempts    int          `json:"pickup_attempts"`
	RejectReason      string       `json:"reject_reason,omitempty"`
	DisputeReason     string       `json:"dispute_reason,omitempty"`
	ResolutionNote    string       `json:"resolution_note,omitempty"`
	ApprovedAt        *time.Time   `json:"approved_at,omitempty"`
	ShippedAt         *time.Time   `json:"shipped_at,omitempty"`
	DeliveredToShopAt *time.Time   `json:"delivered_to_shop_at,omitempty"`
	ReceivedAt        *time.Time   `json:"received_at,omitempty"`
	DisputedAt        *time.Time   `json:"disputed_at,omitempty"`
	EscalatedAt       *time.Time   `json:"escalated_at,omitempty"`
	ResolvedAt        *time.Time   `json:"resolved_at,omitempty"`
	RefundedAt        *time.Time   `json:"refunded_at,omitempty"`
	RejectedAt        *time.Time   `json:"rejected_at,omitempty"`
	CanceledAt        *time.Time   `json:"canceled_at,omitempty"`
	CompletedAt       *time.Time   `json:"completed_at,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// MoveTo sets the new status and stamps the matching timestamp.
// It does not check the transition table; callers do.
func (r *ReturnRequest) MoveTo(to ReturnStatus, at time.Time) {
	t := at
	switch to {
	case ReturnApproved:
		r.ApprovedAt = &t
	case ReturnShipping:
		r.ShippedAt = &t
	case ReturnReceived:
		r.ReceivedAt = &t
	case ReturnDispute:
		r.DisputedAt = &t
	case ReturnDisputeEscalated:
		r.EscalatedAt = &t
	case ReturnDisputeResolvedShop, ReturnDisputeResolvedCustomer:
		r.ResolvedAt = &t
	case ReturnRefunded, ReturnAutoRefunded:
		r.RefundedAt = &t
	case ReturnRejected:
		r.RejectedAt = &t
	case ReturnCanceled:
		r.CanceledAt = &t
	case ReturnDone:
		r.CompletedAt = &t
	}
	r.Status = to
	r.UpdatedAt = at
}

// HasCarrierShipment reports whether a return parcel was booked with the carrier.
func (r *ReturnRequest) HasCarrierShipment() bool {
	return r.CarrierOrderCode != ""
}

// Covers reports whether itemID is part of the return.
func (r *ReturnRequest) Covers(itemID uuid.UUID) bool {
	for _, id := range r.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}
