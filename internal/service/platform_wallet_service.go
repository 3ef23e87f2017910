package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// PlatformWalletServiceImpl implements ports.PlatformWalletService.
type PlatformWalletServiceImpl struct {
	walletRepo ports.PlatformWalletRepository
	txRepo     ports.PlatformTransactionRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewPlatformWalletService creates a new PlatformWalletServiceImpl.
func NewPlatformWalletService(
	walletRepo ports.PlatformWalletRepository,
	txRepo ports.PlatformTransactionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *PlatformWalletServiceImpl {
	return &PlatformWalletServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		transactor: transactor,
		log:        log,
	}
}

// Bootstrap creates the singleton wallet with an INITIALIZE row. Safe to call on every start.
func (s *PlatformWalletServiceImpl) Bootstrap(ctx context.Context) (*domain.PlatformWallet, error) {
	existing, err := s.walletRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get platform wallet: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	created, err := s.create(ctx)
	if err == nil {
		s.log.Info().Str("wallet_id", created.ID.String()).Msg("platform wallet initialized")
		return created, nil
	}

	// Another instance may have won the insert.
	existing, getErr := s.walletRepo.Get(ctx)
	if getErr == nil && existing != nil {
		return existing, nil
	}
	return nil, err
}

func (s *PlatformWalletServiceImpl) create(ctx context.Context) (*domain.PlatformWallet, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	wallet := &domain.PlatformWallet{
		ID:        uuid.New(),
		Currency:  domain.Currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.walletRepo.Create(ctx, dbTx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create platform wallet: %w", err))
	}

	init := &domain.PlatformTransaction{
		ID:        uuid.New(),
		Type:      domain.PlatformTxInitialize,
		Note:      "platform wallet initialized",
		CreatedAt: now,
	}
	wallet.Apply(init)
	if err := s.txRepo.Create(ctx, dbTx, init); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create initialize row: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return wallet, nil
}

// RecordInTx locks the singleton and appends txs in order. Rows without an
// ID or timestamp get one.
func (s *PlatformWalletServiceImpl) RecordInTx(ctx context.Context, tx pgx.Tx, txs ...*domain.PlatformTransaction) error {
	if len(txs) == 0 {
		return nil
	}

	wallet, err := s.walletRepo.GetForUpdate(ctx, tx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock platform wallet: %w", err))
	}
	if wallet == nil {
		return apperror.ErrDataIntegrity(fmt.Errorf("platform wallet is not bootstrapped"))
	}

	now := time.Now().UTC()
	for _, t := range txs {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		wallet.Apply(t)
		if err := s.txRepo.Create(ctx, tx, t); err != nil {
			return apperror.InternalError(fmt.Errorf("create platform transaction: %w", err))
		}
	}

	if err := s.walletRepo.UpdateBalances(ctx, tx, wallet); err != nil {
		return apperror.InternalError(fmt.Errorf("update platform wallet: %w", err))
	}
	return nil
}

// platformRow builds an unsaved custody row; RecordInTx fills the rest.
func platformRow(typ domain.PlatformTransactionType, amount int64, note string) *domain.PlatformTransaction {
	return &domain.PlatformTransaction{Type: typ, Amount: amount, Note: note}
}
