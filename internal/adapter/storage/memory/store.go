// Package memory is an in-process implementation of the repository ports.
// Transactions are serialized: Begin takes a store-wide lock held until
// Commit or Rollback, which gives the same guarantees as the row locks the
// postgres adapter takes with FOR UPDATE. Non-transactional writes take the
// same lock, so they must not be called while the caller holds a Tx.
package memory

import (
	"context"
	"sync"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type state struct {
	wallets          map[uuid.UUID]domain.Wallet
	walletTxs        []domain.WalletTransaction
	storeWallets     map[uuid.UUID]domain.StoreWallet // keyed by store id
	storeWalletTxs   []domain.StoreWalletTransaction
	platform         *domain.PlatformWallet
	platformTxs      []domain.PlatformTransaction
	orders           map[uuid.UUID]domain.StoreOrder
	items            map[uuid.UUID]domain.StoreOrderItem
	shippingFees     map[uuid.UUID]domain.ShippingOrderFee
	returnFees       map[uuid.UUID]domain.ReturnShippingFee
	bills            map[uuid.UUID]domain.PayoutBill
	billItems        []domain.PayoutBillItem
	billShippingFees []domain.PayoutShippingOrderFee
	billReturnFees   []domain.PayoutReturnShippingFee
	returns          map[uuid.UUID]domain.ReturnRequest
	idempotency      map[string]domain.IdempotencyLog
}

func newState() *state {
	return &state{
		wallets:      make(map[uuid.UUID]domain.Wallet),
		storeWallets: make(map[uuid.UUID]domain.StoreWallet),
		orders:       make(map[uuid.UUID]domain.StoreOrder),
		items:        make(map[uuid.UUID]domain.StoreOrderItem),
		shippingFees: make(map[uuid.UUID]domain.ShippingOrderFee),
		returnFees:   make(map[uuid.UUID]domain.ReturnShippingFee),
		bills:        make(map[uuid.UUID]domain.PayoutBill),
		returns:      make(map[uuid.UUID]domain.ReturnRequest),
		idempotency:  make(map[string]domain.IdempotencyLog),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *state) clone() *state {
	c := &state{
		wallets:          cloneMap(s.wallets),
		walletTxs:        append([]domain.WalletTransaction(nil), s.walletTxs...),
		storeWallets:     cloneMap(s.storeWallets),
		storeWalletTxs:   append([]domain.StoreWalletTransaction(nil), s.storeWalletTxs...),
		platformTxs:      append([]domain.PlatformTransaction(nil), s.platformTxs...),
		orders:           cloneMap(s.orders),
		items:            cloneMap(s.items),
		shippingFees:     cloneMap(s.shippingFees),
		returnFees:       cloneMap(s.returnFees),
		bills:            cloneMap(s.bills),
		billItems:        append([]domain.PayoutBillItem(nil), s.billItems...),
		billShippingFees: append([]domain.PayoutShippingOrderFee(nil), s.billShippingFees...),
		billReturnFees:   append([]domain.PayoutReturnShippingFee(nil), s.billReturnFees...),
		returns:          cloneMap(s.returns),
		idempotency:      cloneMap(s.idempotency),
	}
	if s.platform != nil {
		p := *s.platform
		c.platform = &p
	}
	return c
}

// Store holds every table of the ledger in memory.
type Store struct {
	txMu sync.Mutex   // held by the open transaction or an autocommit write
	mu   sync.RWMutex // guards data
	data *state

	auditMu sync.Mutex
	audit   []domain.AuditLog
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newState()}
}

// Begin implements ports.DBTransactor.
func (s *Store) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.txMu.Lock()
	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()
	return &Tx{store: s, snapshot: snapshot}, nil
}

func (s *Store) read(fn func(d *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// write mutates data on behalf of an open transaction.
func (s *Store) write(fn func(d *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// autocommit runs a single-statement write outside any transaction.
func (s *Store) autocommit(fn func(d *state) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return s.write(fn)
}

// Tx is the handle returned by Begin. Only Commit and Rollback are
// implemented; the embedded pgx.Tx is nil and any SQL call on it panics.
type Tx struct {
	pgx.Tx
	store    *Store
	snapshot *state
	done     bool
}

func (t *Tx) Commit(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.snapshot = nil
	t.store.txMu.Unlock()
	return nil
}

// Rollback restores the snapshot taken by Begin. Calling it after Commit
// returns pgx.ErrTxClosed, which callers ignore in their deferred rollback.
func (t *Tx) Rollback(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.store.mu.Lock()
	t.store.data = t.snapshot
	t.store.mu.Unlock()
	t.snapshot = nil
	t.store.txMu.Unlock()
	return nil
}

func (s *Store) Wallets() *WalletRepo {
	return &WalletRepo{s}
}

func (s *Store) WalletTransactions() *WalletTransactionRepo {
	return &WalletTransactionRepo{s}
}

func (s *Store) StoreWallets() *StoreWalletRepo {
	return &StoreWalletRepo{s}
}

func (s *Store) StoreWalletTransactions() *StoreWalletTransactionRepo {
	return &StoreWalletTransactionRepo{s}
}

func (s *Store) PlatformWallet() *PlatformWalletRepo {
	return &PlatformWalletRepo{s}
}

func (s *Store) PlatformTransactions() *PlatformTransactionRepo {
	return &PlatformTransactionRepo{s}
}

func (s *Store) Orders() *OrderRepo {
	return &OrderRepo{s}
}

func (s *Store) OrderItems() *OrderItemRepo {
	return &OrderItemRepo{s}
}

func (s *Store) ShippingOrderFees() *ShippingOrderFeeRepo {
	return &ShippingOrderFeeRepo{s}
}

func (s *Store) ReturnShippingFees() *ReturnShippingFeeRepo {
	return &ReturnShippingFeeRepo{s}
}

func (s *Store) PayoutBills() *PayoutBillRepo {
	return &PayoutBillRepo{s}
}

func (s *Store) Returns() *ReturnRepo {
	return &ReturnRepo{s}
}

func (s *Store) Idempotency() *IdempotencyRepo {
	return &IdempotencyRepo{s}
}

func (s *Store) Audit() *AuditRepo {
	return &AuditRepo{s}
}

var _ ports.DBTransactor = (*Store)(nil)
