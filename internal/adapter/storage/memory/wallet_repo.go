package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// errCheckViolation mirrors the balance CHECK constraints of the schema.
var errCheckViolation = errors.New("check constraint violated")

type WalletRepo struct{ s *Store }

func (r *WalletRepo) Create(_ context.Context, w *domain.Wallet) error {
	return r.s.autocommit(func(d *state) error {
		for _, existing := range d.wallets {
			if existing.CustomerID == w.CustomerID {
				return fmt.Errorf("insert wallet: customer %s already has a wallet", w.CustomerID)
			}
		}
		d.wallets[w.ID] = *w
		return nil
	})
}

func (r *WalletRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Wallet, error) {
	var out *domain.Wallet
	r.s.read(func(d *state) {
		if w, ok := d.wallets[id]; ok {
			out = &w
		}
	})
	return out, nil
}

func (r *WalletRepo) GetByCustomerID(_ context.Context, customerID uuid.UUID) (*domain.Wallet, error) {
	var out *domain.Wallet
	r.s.read(func(d *state) {
		for _, w := range d.wallets {
			if w.CustomerID == customerID {
				out = &w
				return
			}
		}
	})
	return out, nil
}

func (r *WalletRepo) GetByIDForUpdate(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	return r.GetByID(ctx, id)
}

func (r *WalletRepo) GetByCustomerIDForUpdate(ctx context.Context, _ pgx.Tx, customerID uuid.UUID) (*domain.Wallet, error) {
	return r.GetByCustomerID(ctx, customerID)
}

func (r *WalletRepo) UpdateBalance(_ context.Context, _ pgx.Tx, walletID uuid.UUID, balance int64, at time.Time) error {
	return r.s.write(func(d *state) error {
		w, ok := d.wallets[walletID]
		if !ok {
			return fmt.Errorf("wallet not found: %s", walletID)
		}
		if balance < 0 {
			return fmt.Errorf("update wallet balance: %w", errCheckViolation)
		}
		w.Balance = balance
		w.LastTransactionAt = &at
		w.UpdatedAt = at
		d.wallets[walletID] = w
		return nil
	})
}

type WalletTransactionRepo struct{ s *Store }

func (r *WalletTransactionRepo) Create(_ context.Context, _ pgx.Tx, t *domain.WalletTransaction) error {
	return r.s.write(func(d *state) error {
		d.walletTxs = append(d.walletTxs, *t)
		return nil
	})
}

func (r *WalletTransactionRepo) ListByWallet(_ context.Context, walletID uuid.UUID) ([]domain.WalletTransaction, error) {
	var out []domain.WalletTransaction
	r.s.read(func(d *state) {
		for _, t := range d.walletTxs {
			if t.WalletID == walletID {
				out = append(out, t)
			}
		}
	})
	return out, nil
}

type StoreWalletRepo struct{ s *Store }

func (r *StoreWalletRepo) Create(_ context.Context, w *domain.StoreWallet) error {
	return r.s.autocommit(func(d *state) error {
		if _, ok := d.storeWallets[w.StoreID]; ok {
			return fmt.Errorf("insert store wallet: store %s already has a wallet", w.StoreID)
		}
		d.storeWallets[w.StoreID] = *w
		return nil
	})
}

func (r *StoreWalletRepo) GetByStoreID(_ context.Context, storeID uuid.UUID) (*domain.StoreWallet, error) {
	var out *domain.StoreWallet
	r.s.read(func(d *state) {
		if w, ok := d.storeWallets[storeID]; ok {
			out = &w
		}
	})
	return out, nil
}

func (r *StoreWalletRepo) GetByStoreIDForUpdate(ctx context.Context, _ pgx.Tx, storeID uuid.UUID) (*domain.StoreWallet, error) {
	return r.GetByStoreID(ctx, storeID)
}

func (r *StoreWalletRepo) UpdateBalances(_ context.Context, _ pgx.Tx, w *domain.StoreWallet) error {
	return r.s.write(func(d *state) error {
		if _, ok := d.storeWallets[w.StoreID]; !ok {
			return fmt.Errorf("store wallet not found: %s", w.StoreID)
		}
		if w.AvailableBalance+w.PendingBalance < 0 || w.DepositBalance < 0 {
			return fmt.Errorf("update store wallet: %w", errCheckViolation)
		}
		d.storeWallets[w.StoreID] = *w
		return nil
	})
}

type StoreWalletTransactionRepo struct{ s *Store }

func (r *StoreWalletTransactionRepo) Create(_ context.Context, _ pgx.Tx, t *domain.StoreWalletTransaction) error {
	return r.s.write(func(d *state) error {
		d.storeWalletTxs = append(d.storeWalletTxs, *t)
		return nil
	})
}

func (r *StoreWalletTransactionRepo) ListByWallet(_ context.Context, walletID uuid.UUID) ([]domain.StoreWalletTransaction, error) {
	var out []domain.StoreWalletTransaction
	r.s.read(func(d *state) {
		for _, t := range d.storeWalletTxs {
			if t.WalletID == walletID {
				out = append(out, t)
			}
		}
	})
	return out, nil
}

type PlatformWalletRepo struct{ s *Store }

func (r *PlatformWalletRepo) Create(_ context.Context, _ pgx.Tx, w *domain.PlatformWallet) error {
	return r.s.write(func(d *state) error {
		if d.platform != nil {
			return errors.New("insert platform wallet: singleton already exists")
		}
		p := *w
		d.platform = &p
		return nil
	})
}

func (r *PlatformWalletRepo) Get(_ context.Context) (*domain.PlatformWallet, error) {
	var out *domain.PlatformWallet
	r.s.read(func(d *state) {
		if d.platform != nil {
			p := *d.platform
			out = &p
		}
	})
	return out, nil
}

func (r *PlatformWalletRepo) GetForUpdate(ctx context.Context, _ pgx.Tx) (*domain.PlatformWallet, error) {
	return r.Get(ctx)
}

func (r *PlatformWalletRepo) UpdateBalances(_ context.Context, _ pgx.Tx, w *domain.PlatformWallet) error {
	return r.s.write(func(d *state) error {
		if d.platform == nil || d.platform.ID != w.ID {
			return fmt.Errorf("platform wallet not found: %s", w.ID)
		}
		p := *w
		d.platform = &p
		return nil
	})
}

type PlatformTransactionRepo struct{ s *Store }

func (r *PlatformTransactionRepo) Create(_ context.Context, _ pgx.Tx, t *domain.PlatformTransaction) error {
	return r.s.write(func(d *state) error {
		d.platformTxs = append(d.platformTxs, *t)
		return nil
	})
}

func (r *PlatformTransactionRepo) ListByWallet(_ context.Context, walletID uuid.UUID) ([]domain.PlatformTransaction, error) {
	var out []domain.PlatformTransaction
	r.s.read(func(d *state) {
		for _, t := range d.platformTxs {
			if t.WalletID == walletID {
				out = append(out, t)
			}
		}
	})
	return out, nil
}

func (r *PlatformTransactionRepo) OrderCustody(_ context.Context, _ pgx.Tx, orderID uuid.UUID) (int64, error) {
	var custody int64
	r.s.read(func(d *state) {
		for _, t := range d.platformTxs {
			if t.OrderID == nil || *t.OrderID != orderID {
				continue
			}
			switch t.Type {
			case domain.PlatformTxHold, domain.PlatformTxRelease, domain.PlatformTxRefundCustomerReturn:
				custody += t.Amount
			}
		}
	})
	return custody, nil
}

var (
	_ ports.WalletRepository                 = (*WalletRepo)(nil)
	_ ports.WalletTransactionRepository      = (*WalletTransactionRepo)(nil)
	_ ports.StoreWalletRepository            = (*StoreWalletRepo)(nil)
	_ ports.StoreWalletTransactionRepository = (*StoreWalletTransactionRepo)(nil)
	_ ports.PlatformWalletRepository         = (*PlatformWalletRepo)(nil)
	_ ports.PlatformTransactionRepository    = (*PlatformTransactionRepo)(nil)
)
