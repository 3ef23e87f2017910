package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentEventStatus string

const (
	PaymentEventPaid   PaymentEventStatus = "paid"
	PaymentEventFailed PaymentEventStatus = "failed"
)

// PaymentMethod tells where the customer's money came from.
type PaymentMethod string

const (
	PaymentMethodGateway PaymentMethod = "GATEWAY"
	PaymentMethodWallet  PaymentMethod = "WALLET"
)

// PaymentEvent is a gateway notification for one store order.
// ExternalRef is unique per gateway attempt and makes the event idempotent.
type PaymentEvent struct {
	ExternalRef string             `json:"external_ref"`
	OrderID     uuid.UUID          `json:"order_id"`
	Amount      int64              `json:"amount"`
	Status      PaymentEventStatus `json:"status"`
	Method      PaymentMethod      `json:"method"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// PaymentOutcome is the stored result of applying a payment event.
type PaymentOutcome struct {
	ExternalRef   string             `json:"external_ref"`
	OrderID       uuid.UUID          `json:"order_id"`
	Status        PaymentEventStatus `json:"status"`
	HeldAmount    int64              `json:"held_amount"`
	StoreCredited int64              `json:"store_credited"`
	Duplicate     bool               `json:"duplicate,omitempty"`
	AppliedAt     time.Time          `json:"applied_at"`
}
