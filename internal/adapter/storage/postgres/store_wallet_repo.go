package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const storeWalletColumns = `id, store_id, available_balance, pending_balance, deposit_balance, total_revenue, currency, created_at, updated_at`

// StoreWalletRepo implements ports.StoreWalletRepository.
type StoreWalletRepo struct {
	pool Pool
}

// NewStoreWalletRepo creates a new StoreWalletRepo.
func NewStoreWalletRepo(pool Pool) *StoreWalletRepo {
	return &StoreWalletRepo{pool: pool}
}

func scanStoreWallet(row pgx.Row) (*domain.StoreWallet, error) {
	w := &domain.StoreWallet{}
	err := row.Scan(
		&w.ID, &w.StoreID, &w.AvailableBalance, &w.PendingBalance, &w.DepositBalance,
		&w.TotalRevenue, &w.Currency, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *StoreWalletRepo) Create(ctx context.Context, w *domain.StoreWallet) error {
	query := `INSERT INTO store_wallets (` + storeWalletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.StoreID, w.AvailableBalance, w.PendingBalance, w.DepositBalance,
		w.TotalRevenue, w.Currency, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store wallet: %w", err)
	}
	return nil
}

func (r *StoreWalletRepo) GetByStoreID(ctx context.Context, storeID uuid.UUID) (*domain.StoreWallet, error) {
	query := `SELECT ` + storeWalletColumns + ` FROM store_wallets WHERE store_id = $1`

	w, err := scanStoreWallet(r.pool.QueryRow(ctx, query, storeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store wallet: %w", err)
	}
	return w, nil
}

// GetByStoreIDForUpdate locks the store wallet row. Bill generation uses
// the same lock to serialize per store.
func (r *StoreWalletRepo) GetByStoreIDForUpdate(ctx context.Context, tx pgx.Tx, storeID uuid.UUID) (*domain.StoreWallet, error) {
	query := `SELECT ` + storeWalletColumns + ` FROM store_wallets WHERE store_id = $1 FOR UPDATE`

	w, err := scanStoreWallet(tx.QueryRow(ctx, query, storeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store wallet for update: %w", err)
	}
	return w, nil
}

func (r *StoreWalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, w *domain.StoreWallet) error {
	query := `UPDATE store_wallets
		SET available_balance = $1, pending_balance = $2, deposit_balance = $3, total_revenue = $4, updated_at = $5
		WHERE id = $6`

	tag, err := tx.Exec(ctx, query,
		w.AvailableBalance, w.PendingBalance, w.DepositBalance, w.TotalRevenue, w.UpdatedAt, w.ID,
	)
	if err != nil {
		return fmt.Errorf("update store wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("store wallet not found: %s", w.ID)
	}
	return nil
}

// StoreWalletTransactionRepo implements ports.StoreWalletTransactionRepository.
type StoreWalletTransactionRepo struct {
	pool Pool
}

func NewStoreWalletTransactionRepo(pool Pool) *StoreWalletTransactionRepo {
	return &StoreWalletTransactionRepo{pool: pool}
}

func (r *StoreWalletTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.StoreWalletTransaction) error {
	query := `INSERT INTO store_wallet_transactions
		(id, wallet_id, type, amount, available_delta, pending_delta, deposit_delta, order_id, bill_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.WalletID, t.Type, t.Amount, t.AvailableDelta, t.PendingDelta, t.DepositDelta,
		t.OrderID, t.BillID, t.Note, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store wallet transaction: %w", err)
	}
	return nil
}

func (r *StoreWalletTransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.StoreWalletTransaction, error) {
	query := `SELECT id, wallet_id, type, amount, available_delta, pending_delta, deposit_delta, order_id, bill_id, note, created_at
		FROM store_wallet_transactions WHERE wallet_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list store wallet transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.StoreWalletTransaction
	for rows.Next() {
		var t domain.StoreWalletTransaction
		if err := rows.Scan(
			&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.AvailableDelta, &t.PendingDelta, &t.DepositDelta,
			&t.OrderID, &t.BillID, &t.Note, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan store wallet transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}
