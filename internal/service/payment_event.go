package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/pkg/apperror"
)

// ApplyPaymentEvent books a gateway notification. A paid event puts the
// amount into platform custody (debiting the customer wallet for WALLET
// payments) and credits the store's pending balance with the net of its
// lines. A failed event is only remembered. Replays return the stored outcome.
//
// A second paid event for an already paid order (a new gateway reference)
// never credits the store again. Gateway money is still booked into custody
// so the platform balance matches what was captured; a repeated WALLET event
// moves nothing.
func (s *WalletServiceImpl) ApplyPaymentEvent(ctx context.Context, event domain.PaymentEvent) (*domain.PaymentOutcome, error) {
	if err := validatePaymentEvent(event); err != nil {
		return nil, err
	}

	idempKey := domain.BuildIdempotencyKey("payment", event.ExternalRef)
	cached, err := s.lookupIdempotent(ctx, idempKey)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		var outcome domain.PaymentOutcome
		if err := json.Unmarshal(cached, &outcome); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("unmarshal payment outcome: %w", err))
		}
		return &outcome, nil
	}

	order, err := s.orderRepo.GetByID(ctx, event.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}

	outcome := &domain.PaymentOutcome{
		ExternalRef: event.ExternalRef,
		OrderID:     order.ID,
		Status:      event.Status,
		AppliedAt:   time.Now().UTC(),
	}

	var storeCredit int64
	if event.Status == domain.PaymentEventPaid {
		items, err := s.itemRepo.ListByOrder(ctx, order.ID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("list order items: %w", err))
		}
		for i := range items {
			storeCredit += items[i].NetAmount()
		}
		// Opening a wallet writes outside any transaction, so do it first.
		if _, err := s.storeWallets.Open(ctx, order.StoreID); err != nil {
			return nil, err
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if event.Status == domain.PaymentEventPaid {
		first, err := s.orderRepo.MarkPaid(ctx, dbTx, order.ID, outcome.AppliedAt)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("mark order paid: %w", err))
		}
		if !first {
			outcome.Duplicate = true
			storeCredit = 0
		}
	}
	// The order row lock above serializes replays of the same ref.
	prior, err := s.committedIdempotent(ctx, idempKey)
	if err != nil {
		return nil, err
	}
	if prior != nil {
		var stored domain.PaymentOutcome
		if err := json.Unmarshal(prior, &stored); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("unmarshal payment outcome: %w", err))
		}
		return &stored, nil
	}

	switch {
	case outcome.Duplicate && event.Method == domain.PaymentMethodGateway:
		mirror := platformRow(domain.PlatformTxHold, event.Amount, "duplicate payment "+event.ExternalRef)
		mirror.OrderID = &order.ID
		mirror.StoreID = &order.StoreID
		if err := s.platform.RecordInTx(ctx, dbTx, mirror); err != nil {
			return nil, err
		}
		outcome.HeldAmount = event.Amount

	case outcome.Duplicate:
		// The customer wallet was already debited for this order.

	case event.Status == domain.PaymentEventPaid:
		mirror := platformRow(domain.PlatformTxHold, event.Amount, "payment "+event.ExternalRef)
		mirror.OrderID = &order.ID

		if event.Method == domain.PaymentMethodWallet {
			wallet, err := s.walletRepo.GetByCustomerIDForUpdate(ctx, dbTx, order.CustomerID)
			if err != nil {
				return nil, apperror.InternalError(fmt.Errorf("lock wallet: %w", err))
			}
			if wallet == nil {
				return nil, apperror.ErrNotFound("wallet")
			}
			ref := event.ExternalRef
			_, mirror, err = s.applyInTx(ctx, dbTx, wallet, domain.WalletTxHold, event.Amount, &order.ID, &ref, "payment "+order.OrderCode)
			if err != nil {
				return nil, err
			}
		}
		mirror.StoreID = &order.StoreID

		if storeCredit > 0 {
			credit := domain.NewStoreMovement(domain.StoreTxPendingHold, storeCredit, outcome.AppliedAt).ForOrder(order.ID)
			credit.Note = "order " + order.OrderCode
			if _, err := s.storeWallets.ApplyInTx(ctx, dbTx, order.StoreID, credit); err != nil {
				return nil, err
			}
		}

		if err := s.platform.RecordInTx(ctx, dbTx, mirror); err != nil {
			return nil, err
		}
		outcome.HeldAmount = event.Amount
		outcome.StoreCredited = storeCredit
	}

	respJSON, err := json.Marshal(outcome)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal payment outcome: %w", err))
	}
	if err := s.idempRepo.Create(ctx, dbTx, &domain.IdempotencyLog{
		Key:          idempKey,
		ResourceID:   order.ID,
		ResponseJSON: respJSON,
		CreatedAt:    outcome.AppliedAt,
	}); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save idempotency log: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	s.cacheIdempotent(ctx, idempKey, respJSON)

	if outcome.Duplicate {
		s.log.Warn().
			Str("external_ref", event.ExternalRef).
			Str("order_id", order.ID.String()).
			Str("method", string(event.Method)).
			Int64("held", outcome.HeldAmount).
			Msg("order already paid, store not credited again")
		return outcome, nil
	}

	s.log.Info().
		Str("external_ref", event.ExternalRef).
		Str("order_id", order.ID.String()).
		Str("status", string(event.Status)).
		Int64("held", outcome.HeldAmount).
		Int64("store_credited", storeCredit).
		Msg("payment event applied")

	return outcome, nil
}

func validatePaymentEvent(event domain.PaymentEvent) error {
	if event.ExternalRef == "" {
		return apperror.Validation("external_ref is required")
	}
	switch event.Status {
	case domain.PaymentEventFailed:
		return nil
	case domain.PaymentEventPaid:
	default:
		return apperror.Validation(fmt.Sprintf("unsupported payment status %q", event.Status))
	}
	if event.Amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	switch event.Method {
	case domain.PaymentMethodGateway, domain.PaymentMethodWallet:
		return nil
	}
	return apperror.Validation(fmt.Sprintf("unsupported payment method %q", event.Method))
}
