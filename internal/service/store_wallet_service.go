package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// StoreWalletServiceImpl implements ports.StoreWalletService.
type StoreWalletServiceImpl struct {
	walletRepo ports.StoreWalletRepository
	txRepo     ports.StoreWalletTransactionRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewStoreWalletService creates a new StoreWalletServiceImpl.
func NewStoreWalletService(
	walletRepo ports.StoreWalletRepository,
	txRepo ports.StoreWalletTransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *StoreWalletServiceImpl {
	return &StoreWalletServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		transactor: transactor,
		log:        log,
	}
}

// Open must not be called while the caller holds a transaction.
func (s *StoreWalletServiceImpl) Open(ctx context.Context, storeID uuid.UUID) (*domain.StoreWallet, error) {
	wallet, err := s.walletRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get store wallet: %w", err))
	}
	if wallet != nil {
		return wallet, nil
	}

	wallet = domain.NewStoreWallet(storeID, time.Now().UTC())
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		// Lost the race with a concurrent Open.
		existing, getErr := s.walletRepo.GetByStoreID(ctx, storeID)
		if getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, apperror.InternalError(fmt.Errorf("create store wallet: %w", err))
	}
	s.log.Info().Str("store_id", storeID.String()).Msg("store wallet opened")
	return wallet, nil
}

// Deposit adds to the store's security deposit.
func (s *StoreWalletServiceImpl) Deposit(ctx context.Context, storeID uuid.UUID, amount int64, note string) (*domain.StoreWalletTransaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if _, err := s.Open(ctx, storeID); err != nil {
		return nil, err
	}
	return s.applyStandalone(ctx, storeID, domain.StoreTxDeposit, amount, note)
}

// Withdraw takes money out of the available bucket only.
func (s *StoreWalletServiceImpl) Withdraw(ctx context.Context, storeID uuid.UUID, amount int64, note string) (*domain.StoreWalletTransaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	return s.applyStandalone(ctx, storeID, domain.StoreTxWithdraw, amount, note)
}

func (s *StoreWalletServiceImpl) applyStandalone(ctx context.Context, storeID uuid.UUID, typ domain.StoreWalletTransactionType, amount int64, note string) (*domain.StoreWalletTransaction, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	movement := domain.NewStoreMovement(typ, amount, time.Now().UTC())
	movement.Note = note
	if _, err := s.ApplyInTx(ctx, dbTx, storeID, movement); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("store_id", storeID.String()).
		Str("type", string(typ)).
		Int64("amount", amount).
		Msg("store wallet movement applied")
	return movement, nil
}

// ApplyInTx locks the wallet, applies t and appends it. The wallet must exist.
func (s *StoreWalletServiceImpl) ApplyInTx(ctx context.Context, tx pgx.Tx, storeID uuid.UUID, t *domain.StoreWalletTransaction) (*domain.StoreWallet, error) {
	wallet, err := s.walletRepo.GetByStoreIDForUpdate(ctx, tx, storeID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock store wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("store wallet")
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	t.WalletID = wallet.ID
	if err := wallet.Apply(t); err != nil {
		if errors.Is(err, domain.ErrStoreBalanceNegative) {
			return nil, apperror.ErrInsufficientFunds()
		}
		return nil, apperror.InternalError(err)
	}

	if err := s.walletRepo.UpdateBalances(ctx, tx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update store wallet: %w", err))
	}
	if err := s.txRepo.Create(ctx, tx, t); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create store transaction: %w", err))
	}
	return wallet, nil
}
