package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const idempotencyTTL = 24 * time.Hour

// WalletServiceImpl implements ports.WalletService and ports.PaymentEventService.
type WalletServiceImpl struct {
	walletRepo   ports.WalletRepository
	txRepo       ports.WalletTransactionRepository
	custodyRepo  ports.PlatformTransactionRepository
	orderRepo    ports.OrderRepository
	itemRepo     ports.OrderItemRepository
	idempRepo    ports.IdempotencyRepository
	idempCache   ports.IdempotencyCache
	storeWallets ports.StoreWalletService
	platform     ports.PlatformWalletService
	transactor   ports.DBTransactor
	log          zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	txRepo ports.WalletTransactionRepository,
	custodyRepo ports.PlatformTransactionRepository,
	orderRepo ports.OrderRepository,
	itemRepo ports.OrderItemRepository,
	idempRepo ports.IdempotencyRepository,
	idempCache ports.IdempotencyCache,
	storeWallets ports.StoreWalletService,
	platform ports.PlatformWalletService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo:   walletRepo,
		txRepo:       txRepo,
		custodyRepo:  custodyRepo,
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		idempRepo:    idempRepo,
		idempCache:   idempCache,
		storeWallets: storeWallets,
		platform:     platform,
		transactor:   transactor,
		log:          log,
	}
}

// Hold moves money from the customer into platform custody for an order.
func (s *WalletServiceImpl) Hold(ctx context.Context, req ports.WalletMutation) (*domain.WalletTransaction, error) {
	return s.mutate(ctx, domain.WalletTxHold, req)
}

// Release gives held money back to the customer before fulfilment.
func (s *WalletServiceImpl) Release(ctx context.Context, req ports.WalletMutation) (*domain.WalletTransaction, error) {
	return s.mutate(ctx, domain.WalletTxTransfer, req)
}

// Refund pays a return refund out of the order's custody.
func (s *WalletServiceImpl) Refund(ctx context.Context, req ports.WalletMutation) (*domain.WalletTransaction, error) {
	return s.mutate(ctx, domain.WalletTxRefund, req)
}

func (s *WalletServiceImpl) Deposit(ctx context.Context, req ports.WalletMutation) (*domain.WalletTransaction, error) {
	return s.mutate(ctx, domain.WalletTxDeposit, req)
}

func (s *WalletServiceImpl) Withdraw(ctx context.Context, req ports.WalletMutation) (*domain.WalletTransaction, error) {
	return s.mutate(ctx, domain.WalletTxWithdraw, req)
}

// RefundInTx refunds inside the caller's transaction. The caller records the
// returned custody row and commits.
func (s *WalletServiceImpl) RefundInTx(ctx context.Context, tx pgx.Tx, customerID uuid.UUID, amount int64, orderID uuid.UUID, note string) (*domain.WalletTransaction, *domain.PlatformTransaction, error) {
	if amount <= 0 {
		return nil, nil, apperror.ErrInvalidAmount()
	}
	wallet, err := s.walletRepo.GetByCustomerIDForUpdate(ctx, tx, customerID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, nil, apperror.ErrNotFound("wallet")
	}
	return s.applyInTx(ctx, tx, wallet, domain.WalletTxRefund, amount, &orderID, nil, note)
}

func (s *WalletServiceImpl) mutate(ctx context.Context, op domain.WalletTransactionType, req ports.WalletMutation) (*domain.WalletTransaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if mirrorType(op) != "" && req.OrderID == nil {
		return nil, apperror.Validation("order_id is required")
	}

	var idempKey string
	var externalRef *string
	if req.ExternalRef != "" {
		idempKey = domain.BuildWalletIdempotencyKey(req.WalletID, op, req.ExternalRef)
		externalRef = &req.ExternalRef

		stored, err := s.lookupIdempotent(ctx, idempKey)
		if err != nil {
			return nil, err
		}
		if stored != nil {
			return unmarshalWalletTransaction(stored)
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, req.WalletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if idempKey != "" {
		// A concurrent request with the same ref may have committed while we waited on the lock.
		prior, err := s.committedIdempotent(ctx, idempKey)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			return unmarshalWalletTransaction(prior)
		}
	}

	txn, mirror, err := s.applyInTx(ctx, dbTx, wallet, op, req.Amount, req.OrderID, externalRef, req.Note)
	if err != nil {
		return nil, err
	}
	if mirror != nil {
		if err := s.platform.RecordInTx(ctx, dbTx, mirror); err != nil {
			return nil, err
		}
	}

	var respJSON []byte
	if idempKey != "" {
		respJSON, err = json.Marshal(txn)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("marshal response: %w", err))
		}
		if err := s.idempRepo.Create(ctx, dbTx, &domain.IdempotencyLog{
			Key:          idempKey,
			ResourceID:   txn.ID,
			ResponseJSON: respJSON,
			CreatedAt:    txn.CreatedAt,
		}); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if idempKey != "" {
		s.cacheIdempotent(ctx, idempKey, respJSON)
	}

	s.log.Info().
		Str("tx_id", txn.ID.String()).
		Str("wallet_id", wallet.ID.String()).
		Str("type", string(op)).
		Int64("amount", req.Amount).
		Int64("balance_after", txn.BalanceAfter).
		Msg("wallet mutation applied")

	return txn, nil
}

// applyInTx validates and writes one movement on a wallet the caller has
// locked. It returns the platform row to mirror, if any, so the caller can
// record it after every other lock it needs.
func (s *WalletServiceImpl) applyInTx(
	ctx context.Context,
	tx pgx.Tx,
	wallet *domain.Wallet,
	op domain.WalletTransactionType,
	amount int64,
	orderID *uuid.UUID,
	externalRef *string,
	note string,
) (*domain.WalletTransaction, *domain.PlatformTransaction, error) {
	if !op.IsCredit() && !wallet.CanDebit() {
		return nil, nil, apperror.ErrWalletFrozen()
	}

	if op == domain.WalletTxTransfer || op == domain.WalletTxRefund {
		custody, err := s.custodyRepo.OrderCustody(ctx, tx, *orderID)
		if err != nil {
			return nil, nil, apperror.InternalError(fmt.Errorf("order custody: %w", err))
		}
		if amount > custody {
			return nil, nil, apperror.ErrRefundExceedsHold()
		}
	}

	signed := domain.SignedAmount(op, amount)
	newBalance := wallet.Balance + signed
	if newBalance < 0 {
		return nil, nil, apperror.ErrInsufficientFunds()
	}

	now := time.Now().UTC()
	txn := &domain.WalletTransaction{
		ID:           uuid.New(),
		WalletID:     wallet.ID,
		Type:         op,
		Amount:       signed,
		BalanceAfter: newBalance,
		OrderID:      orderID,
		ExternalRef:  externalRef,
		Note:         note,
		CreatedAt:    now,
	}

	if err := s.walletRepo.UpdateBalance(ctx, tx, wallet.ID, newBalance, now); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}
	if err := s.txRepo.Create(ctx, tx, txn); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("create wallet transaction: %w", err))
	}
	wallet.Balance = newBalance

	var mirror *domain.PlatformTransaction
	if typ := mirrorType(op); typ != "" {
		// Custody moves opposite to the customer.
		mirror = platformRow(typ, -signed, note)
		mirror.OrderID = orderID
		mirror.CreatedAt = now
	}
	return txn, mirror, nil
}

// mirrorType is the custody row written alongside op, empty when op stays
// between the customer and the outside world.
func mirrorType(op domain.WalletTransactionType) domain.PlatformTransactionType {
	switch op {
	case domain.WalletTxHold:
		return domain.PlatformTxHold
	case domain.WalletTxTransfer:
		return domain.PlatformTxRelease
	case domain.WalletTxRefund:
		return domain.PlatformTxRefundCustomerReturn
	}
	return ""
}

// lookupIdempotent returns the stored response for key, checking Redis
// first and the DB log second.
func (s *WalletServiceImpl) lookupIdempotent(ctx context.Context, key string) ([]byte, error) {
	cached, err := s.idempCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
	}
	if cached != nil {
		return cached, nil
	}

	return s.committedIdempotent(ctx, key)
}

// committedIdempotent reads the stored response from the database only.
func (s *WalletServiceImpl) committedIdempotent(ctx context.Context, key string) ([]byte, error) {
	idempLog, err := s.idempRepo.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if idempLog != nil {
		return idempLog.ResponseJSON, nil
	}
	return nil, nil
}

func (s *WalletServiceImpl) cacheIdempotent(ctx context.Context, key string, value []byte) {
	if err := s.idempCache.Set(ctx, key, value, idempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache idempotency in redis")
	}
}

func unmarshalWalletTransaction(data []byte) (*domain.WalletTransaction, error) {
	var txn domain.WalletTransaction
	if err := json.Unmarshal(data, &txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached transaction: %w", err))
	}
	return &txn, nil
}
