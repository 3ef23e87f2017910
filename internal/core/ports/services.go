package ports

import (
	"context"
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification of inbound webhooks.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(timestamp int64, body string) string
}

// TokenService handles JWT token operations for operators.
type TokenService interface {
	Generate(actorID uuid.UUID, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	ActorID uuid.UUID
	Role    string
}

// IdempotencyCache is the Redis-layer idempotency check (fast path).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// JobLock gives one instance at a time the right to run a background job.
type JobLock interface {
	// Acquire returns an owner token when the lock was taken, ok=false when another owner holds it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)
	// Release frees the lock only if token still owns it.
	Release(ctx context.Context, key string, token string) error
}

// CarrierClient reads parcel state from the shipping carrier.
type CarrierClient interface {
	GetParcelStatus(ctx context.Context, orderCode string) (*domain.CarrierUpdate, error)
}

// AuditService records operator actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// WalletService moves money in and out of customer wallets.
type WalletService interface {
	Hold(ctx context.Context, req WalletMutation) (*domain.WalletTransaction, error)
	Release(ctx context.Context, req WalletMutation) (*domain.WalletTransaction, error)
	Refund(ctx context.Context, req WalletMutation) (*domain.WalletTransaction, error)
	Deposit(ctx context.Context, req WalletMutation) (*domain.WalletTransaction, error)
	Withdraw(ctx context.Context, req WalletMutation) (*domain.WalletTransaction, error)
	// RefundInTx refunds a customer inside the caller's transaction. No idempotency layer.
	// The returned custody row is not recorded yet: the caller passes it to
	// PlatformWalletService.RecordInTx once it holds its other locks, so the
	// platform singleton is always locked last.
	RefundInTx(ctx context.Context, tx pgx.Tx, customerID uuid.UUID, amount int64, orderID uuid.UUID, note string) (*domain.WalletTransaction, *domain.PlatformTransaction, error)
}

// WalletMutation is one customer wallet operation.
type WalletMutation struct {
	WalletID    uuid.UUID
	Amount      int64
	OrderID     *uuid.UUID
	ExternalRef string // optional; makes the call idempotent
	Note        string
}

// PaymentEventService applies gateway payment notifications.
type PaymentEventService interface {
	ApplyPaymentEvent(ctx context.Context, event domain.PaymentEvent) (*domain.PaymentOutcome, error)
}

// StoreWalletService moves money between store wallet buckets.
type StoreWalletService interface {
	// Open returns the store's wallet, creating an empty one on first use.
	Open(ctx context.Context, storeID uuid.UUID) (*domain.StoreWallet, error)
	Deposit(ctx context.Context, storeID uuid.UUID, amount int64, note string) (*domain.StoreWalletTransaction, error)
	Withdraw(ctx context.Context, storeID uuid.UUID, amount int64, note string) (*domain.StoreWalletTransaction, error)
	// ApplyInTx locks the store wallet in tx, applies t and appends it.
	ApplyInTx(ctx context.Context, tx pgx.Tx, storeID uuid.UUID, t *domain.StoreWalletTransaction) (*domain.StoreWallet, error)
}

// PlatformWalletService records custody movements on the platform singleton.
type PlatformWalletService interface {
	Bootstrap(ctx context.Context) (*domain.PlatformWallet, error)
	// RecordInTx locks the platform wallet in tx and appends the given rows in order.
	RecordInTx(ctx context.Context, tx pgx.Tx, txs ...*domain.PlatformTransaction) error
}

// EligibilityService runs the payout eligibility passes.
type EligibilityService interface {
	EvaluateEligibility(ctx context.Context) (int, error)
	ProcessReturnOutcomes(ctx context.Context) (int, error)
	SyncDeliveredAt(ctx context.Context) (int, error)
	ReconcileShippingFees(ctx context.Context) (int, error)
	// ExcludeItemsInTx permanently removes items from payout and takes their
	// net amount out of the store's pending balance. Returns the excluded count.
	ExcludeItemsInTx(ctx context.Context, tx pgx.Tx, storeID uuid.UUID, itemIDs []uuid.UUID, reason string) (int, error)
}

// PayoutService generates and settles payout bills.
type PayoutService interface {
	CreateBillForStore(ctx context.Context, storeID uuid.UUID) (*domain.PayoutBill, error)
	GetOrCreateBillForStore(ctx context.Context, storeID uuid.UUID) (*domain.PayoutBill, error)
	GenerateBillsForAllStores(ctx context.Context) (int, error)
	MoveBillToReview(ctx context.Context, billID uuid.UUID, adminID uuid.UUID, note string) (*domain.PayoutBill, error)
	MarkBillAsPaid(ctx context.Context, req MarkBillPaidRequest) (*domain.PayoutBill, error)
	GetBill(ctx context.Context, billID uuid.UUID) (*PayoutBillDetail, error)
	ListBills(ctx context.Context, params PayoutBillListParams) ([]domain.PayoutBill, int64, error)
}

// MarkBillPaidRequest carries the admin's reconciliation data.
type MarkBillPaidRequest struct {
	BillID            uuid.UUID
	AdminID           uuid.UUID
	TransferReference string
	ReceiptImageURL   string
	AdminNote         string
}

// PayoutBillDetail is a bill with its frozen lines.
type PayoutBillDetail struct {
	Bill               *domain.PayoutBill               `json:"bill"`
	Items              []domain.PayoutBillItem          `json:"items"`
	ShippingFees       []domain.PayoutShippingOrderFee  `json:"shipping_fees"`
	ReturnShippingFees []domain.PayoutReturnShippingFee `json:"return_shipping_fees"`
}

// ReturnService drives the return/refund lifecycle.
type ReturnService interface {
	CreateReturn(ctx context.Context, req CreateReturnRequest) (*domain.ReturnRequest, error)
	ApproveReturn(ctx context.Context, returnID uuid.UUID, actor domain.Actor, coveredBy domain.FeeParty) (*domain.ReturnRequest, error)
	RejectReturn(ctx context.Context, returnID uuid.UUID, actor domain.Actor, reason string) (*domain.ReturnRequest, error)
	RefundWithoutReturn(ctx context.Context, returnID uuid.UUID, actor domain.Actor) (*domain.ReturnRequest, error)
	CancelReturn(ctx context.Context, returnID uuid.UUID, actor domain.Actor) (*domain.ReturnRequest, error)
	AttachReturnShipment(ctx context.Context, returnID uuid.UUID, actor domain.Actor, carrierOrderCode string, fee int64) (*domain.ReturnRequest, error)
	ConfirmReceived(ctx context.Context, returnID uuid.UUID, actor domain.Actor) (*domain.ReturnRequest, error)
	OpenDispute(ctx context.Context, returnID uuid.UUID, actor domain.Actor, reason string) (*domain.ReturnRequest, error)
	EscalateDispute(ctx context.Context, returnID uuid.UUID, actor domain.Actor) (*domain.ReturnRequest, error)
	ResolveDispute(ctx context.Context, returnID uuid.UUID, actor domain.Actor, inFavorOfCustomer bool, note string) (*domain.ReturnRequest, error)
	CompleteReturn(ctx context.Context, returnID uuid.UUID, actor domain.Actor) (*domain.ReturnRequest, error)

	AutoApprovePendingReturns(ctx context.Context) (int, error)
	AutoCancelUnshippedReturns(ctx context.Context) (int, error)
	AutoRefundForUnresponsiveShop(ctx context.Context) (int, error)
	AutoHandleGhnPickupTimeout(ctx context.Context) (int, error)
}

// CreateReturnRequest is a customer's return of some lines of a delivered order.
type CreateReturnRequest struct {
	CustomerID   uuid.UUID
	StoreOrderID uuid.UUID
	ItemIDs      []uuid.UUID
	Reason       string
}

// ShippingBridge applies carrier status to orders and returns.
type ShippingBridge interface {
	ApplyCarrierUpdate(ctx context.Context, update domain.CarrierUpdate) error
	SyncCarrierStatuses(ctx context.Context) (int, error)
}
