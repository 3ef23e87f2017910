package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction is an operator action on money or disputes.
type AuditAction string

const (
	AuditActionReviewBill     AuditAction = "REVIEW_BILL"
	AuditActionMarkBillPaid   AuditAction = "MARK_BILL_PAID"
	AuditActionResolveDispute AuditAction = "RESOLVE_DISPUTE"
	AuditActionGenerateBill   AuditAction = "GENERATE_BILL"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	ActorID      *uuid.UUID  `json:"actor_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
