package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyLog stores the result of an externally keyed operation so a
// replay returns it instead of applying twice.
type IdempotencyLog struct {
	Key          string    `json:"key"` // Format: "scope:external_ref"
	ResourceID   uuid.UUID `json:"resource_id"`
	ResponseJSON []byte    `json:"response_json"`
	CreatedAt    time.Time `json:"created_at"`
}

// BuildIdempotencyKey scopes an external reference.
func BuildIdempotencyKey(scope string, externalRef string) string {
	return scope + ":" + externalRef
}

// BuildWalletIdempotencyKey scopes an external reference to one wallet operation.
func BuildWalletIdempotencyKey(walletID uuid.UUID, op WalletTransactionType, externalRef string) string {
	return "wallet:" + walletID.String() + ":" + string(op) + ":" + externalRef
}
