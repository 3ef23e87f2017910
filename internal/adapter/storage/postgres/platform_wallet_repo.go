package postgres

import (
	"context"
	"errors"
	"fmt"

	"marketplace-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const platformWalletColumns = `id, balance, total_fee_revenue, currency, created_at, updated_at`

// PlatformWalletRepo implements ports.PlatformWalletRepository.
// The table holds at most one row, enforced by the singleton column.
type PlatformWalletRepo struct {
	pool Pool
}

func NewPlatformWalletRepo(pool Pool) *PlatformWalletRepo {
	return &PlatformWalletRepo{pool: pool}
}

func scanPlatformWallet(row pgx.Row) (*domain.PlatformWallet, error) {
	w := &domain.PlatformWallet{}
	if err := row.Scan(&w.ID, &w.Balance, &w.TotalFeeRevenue, &w.Currency, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *PlatformWalletRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.PlatformWallet) error {
	query := `INSERT INTO platform_wallets (` + platformWalletColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query, w.ID, w.Balance, w.TotalFeeRevenue, w.Currency, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert platform wallet: %w", err)
	}
	return nil
}

func (r *PlatformWalletRepo) Get(ctx context.Context) (*domain.PlatformWallet, error) {
	w, err := scanPlatformWallet(r.pool.QueryRow(ctx, `SELECT `+platformWalletColumns+` FROM platform_wallets LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get platform wallet: %w", err)
	}
	return w, nil
}

// GetForUpdate locks the singleton. Callers lock customer and store wallets first.
func (r *PlatformWalletRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.PlatformWallet, error) {
	w, err := scanPlatformWallet(tx.QueryRow(ctx, `SELECT `+platformWalletColumns+` FROM platform_wallets LIMIT 1 FOR UPDATE`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get platform wallet for update: %w", err)
	}
	return w, nil
}

func (r *PlatformWalletRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, w *domain.PlatformWallet) error {
	query := `UPDATE platform_wallets SET balance = $1, total_fee_revenue = $2, updated_at = $3 WHERE id = $4`

	tag, err := tx.Exec(ctx, query, w.Balance, w.TotalFeeRevenue, w.UpdatedAt, w.ID)
	if err != nil {
		return fmt.Errorf("update platform wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("platform wallet not found: %s", w.ID)
	}
	return nil
}

// PlatformTransactionRepo implements ports.PlatformTransactionRepository.
type PlatformTransactionRepo struct {
	pool Pool
}

func NewPlatformTransactionRepo(pool Pool) *PlatformTransactionRepo {
	return &PlatformTransactionRepo{pool: pool}
}

func (r *PlatformTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.PlatformTransaction) error {
	query := `INSERT INTO platform_transactions
		(id, wallet_id, type, amount, balance_after, order_id, bill_id, store_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.WalletID, t.Type, t.Amount, t.BalanceAfter,
		t.OrderID, t.BillID, t.StoreID, t.Note, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert platform transaction: %w", err)
	}
	return nil
}

func (r *PlatformTransactionRepo) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.PlatformTransaction, error) {
	query := `SELECT id, wallet_id, type, amount, balance_after, order_id, bill_id, store_id, note, created_at
		FROM platform_transactions WHERE wallet_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list platform transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.PlatformTransaction
	for rows.Next() {
		var t domain.PlatformTransaction
		if err := rows.Scan(
			&t.ID, &t.WalletID, &t.Type, &t.Amount, &t.BalanceAfter,
			&t.OrderID, &t.BillID, &t.StoreID, &t.Note, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan platform transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// OrderCustody returns the amount still held in custody for an order.
func (r *PlatformTransactionRepo) OrderCustody(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM platform_transactions
		WHERE order_id = $1 AND type IN ($2, $3, $4)`

	var custody int64
	err := tx.QueryRow(ctx, query, orderID,
		domain.PlatformTxHold, domain.PlatformTxRelease, domain.PlatformTxRefundCustomerReturn,
	).Scan(&custody)
	if err != nil {
		return 0, fmt.Errorf("sum order custody: %w", err)
	}
	return custody, nil
}
