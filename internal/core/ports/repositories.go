package ports

import (
	"context"
	"time"

	"marketplace-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Methods accepting pgx.Tx run inside the caller's unit of work; the
// ...ForUpdate variants take an exclusive row lock held until commit.
// Compare-and-set methods return false when the guard did not match.

// WalletRepository persists customer wallets.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	GetByCustomerIDForUpdate(ctx context.Context, tx pgx.Tx, customerID uuid.UUID) (*domain.Wallet, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, balance int64, at time.Time) error
}

// WalletTransactionRepository is the append-only customer ledger.
type WalletTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, t *domain.WalletTransaction) error
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.WalletTransaction, error)
}

// StoreWalletRepository persists store wallets.
type StoreWalletRepository interface {
	Create(ctx context.Context, wallet *domain.StoreWallet) error
	GetByStoreID(ctx context.Context, storeID uuid.UUID) (*domain.StoreWallet, error)
	GetByStoreIDForUpdate(ctx context.Context, tx pgx.Tx, storeID uuid.UUID) (*domain.StoreWallet, error)
	UpdateBalances(ctx context.Context, tx pgx.Tx, wallet *domain.StoreWallet) error
}

// StoreWalletTransactionRepository is the append-only store ledger.
type StoreWalletTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, t *domain.StoreWalletTransaction) error
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.StoreWalletTransaction, error)
}

// PlatformWalletRepository persists the singleton platform wallet.
type PlatformWalletRepository interface {
	Create(ctx context.Context, tx pgx.Tx, wallet *domain.PlatformWallet) error
	Get(ctx context.Context) (*domain.PlatformWallet, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.PlatformWallet, error)
	UpdateBalances(ctx context.Context, tx pgx.Tx, wallet *domain.PlatformWallet) error
}

// PlatformTransactionRepository is the append-only custody ledger.
type PlatformTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, t *domain.PlatformTransaction) error
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.PlatformTransaction, error)
	// OrderCustody sums HOLD, RELEASE and REFUND_CUSTOMER_RETURN rows of an order:
	// the money still held for it.
	OrderCustody(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (int64, error)
}

// OrderRepository persists the payout view of store orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.StoreOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StoreOrder, error)
	GetByCarrierOrderCode(ctx context.Context, code string) (*domain.StoreOrder, error)
	// ListInTransit returns carrier-tracked orders not yet delivered or canceled.
	ListInTransit(ctx context.Context, limit int) ([]domain.StoreOrder, error)
	// ListFeeUnreconciled returns delivered orders with a real fee and no shipping fee row.
	ListFeeUnreconciled(ctx context.Context, limit int) ([]domain.StoreOrder, error)
	// MarkPaid sets paid_at once; false means the order was already paid.
	MarkPaid(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) (bool, error)
	MarkShipping(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time) (bool, error)
	SetRealShippingFee(ctx context.Context, id uuid.UUID, fee int64) (bool, error)
}

// DeliveredAtBackfill pairs an item with its order's delivery time.
type DeliveredAtBackfill struct {
	ItemID      uuid.UUID
	DeliveredAt time.Time
}

// OrderItemRepository persists order lines and their payout flags.
type OrderItemRepository interface {
	Create(ctx context.Context, item *domain.StoreOrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StoreOrderItem, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.StoreOrderItem, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.StoreOrderItem, error)
	// ListAwaitingEligibility returns unflagged items of orders delivered at or
	// before deliveredBefore, oldest delivery first.
	ListAwaitingEligibility(ctx context.Context, deliveredBefore time.Time, limit int) ([]domain.StoreOrderItem, error)
	ListMissingDeliveredAt(ctx context.Context, limit int) ([]DeliveredAtBackfill, error)
	ListBillable(ctx context.Context, tx pgx.Tx, storeID uuid.UUID) ([]domain.StoreOrderItem, error)
	ListStoresWithBillable(ctx context.Context) ([]uuid.UUID, error)
	MarkEligible(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	SetDeliveredAt(ctx context.Context, id uuid.UUID, deliveredAt time.Time) (bool, error)
	MarkPaidOut(ctx context.Context, tx pgx.Tx, id uuid.UUID, billID uuid.UUID, at time.Time) (bool, error)
	Exclude(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) (bool, error)
}

// ShippingOrderFeeRepository persists reconciled carrier fees of delivered orders.
type ShippingOrderFeeRepository interface {
	// Create inserts the row unless the order already has one.
	Create(ctx context.Context, tx pgx.Tx, fee *domain.ShippingOrderFee) (bool, error)
	ListUnbilled(ctx context.Context, tx pgx.Tx, storeID uuid.UUID) ([]domain.ShippingOrderFee, error)
	AttachToBill(ctx context.Context, tx pgx.Tx, id uuid.UUID, billID uuid.UUID) (bool, error)
}

// ReturnShippingFeeRepository persists return parcel fees.
type ReturnShippingFeeRepository interface {
	Create(ctx context.Context, tx pgx.Tx, fee *domain.ReturnShippingFee) error
	GetByReturnID(ctx context.Context, returnID uuid.UUID) (*domain.ReturnShippingFee, error)
	MarkPicked(ctx context.Context, tx pgx.Tx, returnID uuid.UUID, at time.Time) (bool, error)
	// ListUnbilled returns picked, shop-paid fees not yet on a bill.
	ListUnbilled(ctx context.Context, tx pgx.Tx, storeID uuid.UUID) ([]domain.ReturnShippingFee, error)
	AttachToBill(ctx context.Context, tx pgx.Tx, id uuid.UUID, billID uuid.UUID) (bool, error)
}

// PayoutBillListParams filters bills for the admin listing.
type PayoutBillListParams struct {
	StoreID  *uuid.UUID
	Status   *domain.PayoutBillStatus
	Page     int
	PageSize int
}

// PayoutBillRepository persists bills and their snapshots.
type PayoutBillRepository interface {
	Create(ctx context.Context, tx pgx.Tx, bill *domain.PayoutBill) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PayoutBill, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.PayoutBill, error)
	GetOpenByStore(ctx context.Context, tx pgx.Tx, storeID uuid.UUID) (*domain.PayoutBill, error)
	List(ctx context.Context, params PayoutBillListParams) ([]domain.PayoutBill, int64, error)
	UpdateTotals(ctx context.Context, tx pgx.Tx, bill *domain.PayoutBill) error
	// UpdateStatus writes status and reconciliation fields when the stored status equals from.
	UpdateStatus(ctx context.Context, tx pgx.Tx, bill *domain.PayoutBill, from domain.PayoutBillStatus) (bool, error)
	CreateItem(ctx context.Context, tx pgx.Tx, item *domain.PayoutBillItem) error
	CreateShippingFee(ctx context.Context, tx pgx.Tx, fee *domain.PayoutShippingOrderFee) error
	CreateReturnShippingFee(ctx context.Context, tx pgx.Tx, fee *domain.PayoutReturnShippingFee) error
	ListItems(ctx context.Context, billID uuid.UUID) ([]domain.PayoutBillItem, error)
	ListShippingFees(ctx context.Context, billID uuid.UUID) ([]domain.PayoutShippingOrderFee, error)
	ListReturnShippingFees(ctx context.Context, billID uuid.UUID) ([]domain.PayoutReturnShippingFee, error)
}

// ReturnSweepFilter selects returns for an automatic timeout pass.
type ReturnSweepFilter struct {
	Status             domain.ReturnStatus
	UpdatedBefore      time.Time
	HasCarrierShipment *bool
	DeliveredToShop    *bool
	Limit              int
}

// ReturnRepository persists return requests.
type ReturnRepository interface {
	Create(ctx context.Context, tx pgx.Tx, r *domain.ReturnRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReturnRequest, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.ReturnRequest, error)
	GetByCarrierOrderCode(ctx context.Context, code string) (*domain.ReturnRequest, error)
	HasOpenForItems(ctx context.Context, itemIDs []uuid.UUID) (bool, error)
	ListForSweep(ctx context.Context, f ReturnSweepFilter) ([]domain.ReturnRequest, error)
	// ListRefundedWithLiveItems returns refunded returns that still cover an item not excluded from payout.
	ListRefundedWithLiveItems(ctx context.Context, limit int) ([]domain.ReturnRequest, error)
	// ListOpenShipments returns returns whose parcel is booked and not yet at the store.
	ListOpenShipments(ctx context.Context, limit int) ([]domain.ReturnRequest, error)
	// UpdateIfStatus writes r when the stored status still equals from.
	UpdateIfStatus(ctx context.Context, tx pgx.Tx, r *domain.ReturnRequest, from domain.ReturnStatus) (bool, error)
}

// IdempotencyRepository defines persistence for idempotency logs (DB backup).
type IdempotencyRepository interface {
	Create(ctx context.Context, tx pgx.Tx, log *domain.IdempotencyLog) error
	Get(ctx context.Context, key string) (*domain.IdempotencyLog, error)
}

// AuditRepository stores operator audit rows.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
