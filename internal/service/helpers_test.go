package service

import (
	"context"
	"io"
	"testing"
	"time"

	"marketplace-settlement/config"
	"marketplace-settlement/internal/adapter/storage/memory"
	rediscache "marketplace-settlement/internal/adapter/storage/redis"
	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// mockTx satisfies pgx.Tx for gomock-based tests; only Commit and Rollback are called.
type mockTx struct{ pgx.Tx }

func (mockTx) Commit(context.Context) error   { return nil }
func (mockTx) Rollback(context.Context) error { return nil }

func testPolicy() config.PolicyConfig {
	return config.PolicyConfig{
		HoldWindow:               7 * 24 * time.Hour,
		AutoApproveAfter:         48 * time.Hour,
		AutoCancelUnshippedAfter: 7 * 24 * time.Hour,
		AutoRefundAfter:          72 * time.Hour,
		PickupTimeout:            72 * time.Hour,
		MaxPickupAttempts:        2,
		ShippingDeltaPolicy:      config.ShippingDeltaShop,
		SweepBatchSize:           100,
	}
}

// recordingAudit keeps audit entries in memory, synchronously.
type recordingAudit struct{ entries []domain.AuditLog }

func (a *recordingAudit) Log(_ context.Context, e *domain.AuditLog) { a.entries = append(a.entries, *e) }

// world wires every service over one in-memory store.
type world struct {
	t     *testing.T
	ctx   context.Context
	db    *memory.Store
	redis *miniredis.Miniredis
	audit *recordingAudit

	wallets      *WalletServiceImpl
	storeWallets *StoreWalletServiceImpl
	platform     *PlatformWalletServiceImpl
	eligibility  *EligibilityServiceImpl
	payouts      *PayoutServiceImpl
	returns      *ReturnServiceImpl
	bridge       *ShippingBridgeImpl
}

func newWorld(t *testing.T) *world {
	t.Helper()
	return newWorldWithCarrier(t, nil)
}

func newWorldWithCarrier(t *testing.T, carrier ports.CarrierClient) *world {
	t.Helper()
	ctx := context.Background()
	db := memory.NewStore()
	mr := miniredis.RunT(t)
	cache := rediscache.NewIdempotencyCache(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	log := newTestLogger()
	policy := testPolicy()

	enc, err := NewAESEncryptionService(testAESKey)
	require.NoError(t, err)

	platform := NewPlatformWalletService(db.PlatformWallet(), db.PlatformTransactions(), db, log)
	_, err = platform.Bootstrap(ctx)
	require.NoError(t, err)

	storeWallets := NewStoreWalletService(db.StoreWallets(), db.StoreWalletTransactions(), db, log)
	wallets := NewWalletService(db.Wallets(), db.WalletTransactions(), db.PlatformTransactions(),
		db.Orders(), db.OrderItems(), db.Idempotency(), cache, storeWallets, platform, db, log)
	eligibility := NewEligibilityService(db.Orders(), db.OrderItems(), db.Returns(), db.ShippingOrderFees(),
		storeWallets, platform, db, policy, log)
	audit := &recordingAudit{}
	payouts := NewPayoutService(db.PayoutBills(), db.OrderItems(), db.StoreWallets(), db.ShippingOrderFees(),
		db.ReturnShippingFees(), storeWallets, platform, enc, audit, db, log)
	returns := NewReturnService(db.Returns(), db.Orders(), db.OrderItems(), db.ReturnShippingFees(),
		wallets, eligibility, platform, db, policy, log)
	bridge := NewShippingBridge(db.Orders(), db.Returns(), db.ReturnShippingFees(), carrier, db, 100, 4, log)

	return &world{
		t: t, ctx: ctx, db: db, redis: mr, audit: audit,
		wallets: wallets, storeWallets: storeWallets, platform: platform,
		eligibility: eligibility, payouts: payouts, returns: returns, bridge: bridge,
	}
}

// customer opens a wallet and funds it.
func (w *world) customer(balance int64) *domain.Wallet {
	w.t.Helper()
	wallet := domain.NewWallet(uuid.New(), time.Now().UTC())
	require.NoError(w.t, w.db.Wallets().Create(w.ctx, wallet))
	if balance > 0 {
		_, err := w.wallets.Deposit(w.ctx, ports.WalletMutation{WalletID: wallet.ID, Amount: balance, Note: "top up"})
		require.NoError(w.t, err)
	}
	return wallet
}

// order creates a confirmed store order with one item per price at a 5% fee.
func (w *world) order(customerID, storeID uuid.UUID, prices ...int64) (*domain.StoreOrder, []*domain.StoreOrderItem) {
	w.t.Helper()
	now := time.Now().UTC()
	o := &domain.StoreOrder{
		ID:                   uuid.New(),
		OrderCode:            "SO-" + uuid.NewString()[:8],
		StoreID:              storeID,
		CustomerID:           customerID,
		Status:               domain.OrderStatusConfirmed,
		CarrierOrderCode:     "GHN" + uuid.NewString()[:8],
		ShippingFeeEstimated: 30_000,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	require.NoError(w.t, w.db.Orders().Create(w.ctx, o))

	items := make([]*domain.StoreOrderItem, 0, len(prices))
	for i, p := range prices {
		item := domain.NewStoreOrderItem(o, "product-"+string(rune('A'+i)), 1, p, decimal.NewFromInt(5), now)
		require.NoError(w.t, w.db.OrderItems().Create(w.ctx, item))
		items = append(items, item)
	}
	return o, items
}

func (w *world) pay(o *domain.StoreOrder, amount int64, method domain.PaymentMethod) *domain.PaymentOutcome {
	w.t.Helper()
	out, err := w.wallets.ApplyPaymentEvent(w.ctx, domain.PaymentEvent{
		ExternalRef: "pay-" + o.ID.String(),
		OrderID:     o.ID,
		Amount:      amount,
		Status:      domain.PaymentEventPaid,
		Method:      method,
		OccurredAt:  time.Now().UTC(),
	})
	require.NoError(w.t, err)
	return out
}

func (w *world) deliver(o *domain.StoreOrder, at time.Time) {
	w.t.Helper()
	ok, err := w.db.Orders().MarkDelivered(w.ctx, o.ID, at)
	require.NoError(w.t, err)
	require.True(w.t, ok)
	got, err := w.db.Orders().GetByID(w.ctx, o.ID)
	require.NoError(w.t, err)
	*o = *got
}

func (w *world) walletBalance(id uuid.UUID) int64 {
	w.t.Helper()
	wallet, err := w.db.Wallets().GetByID(w.ctx, id)
	require.NoError(w.t, err)
	return wallet.Balance
}

func (w *world) storeWallet(storeID uuid.UUID) *domain.StoreWallet {
	w.t.Helper()
	sw, err := w.db.StoreWallets().GetByStoreID(w.ctx, storeID)
	require.NoError(w.t, err)
	require.NotNil(w.t, sw)
	return sw
}

func (w *world) platformBalance() int64 {
	w.t.Helper()
	p, err := w.db.PlatformWallet().Get(w.ctx)
	require.NoError(w.t, err)
	return p.Balance
}

func (w *world) item(id uuid.UUID) *domain.StoreOrderItem {
	w.t.Helper()
	item, err := w.db.OrderItems().GetByID(w.ctx, id)
	require.NoError(w.t, err)
	return item
}

// at pins the clock of every service that reads one.
func (w *world) at(now time.Time) {
	clock := func() time.Time { return now }
	w.eligibility.now = clock
	w.returns.now = clock
	w.bridge.now = clock
}

func itemIDs(items []*domain.StoreOrderItem) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
