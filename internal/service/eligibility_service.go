package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-settlement/config"
	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

// EligibilityServiceImpl implements ports.EligibilityService.
// Each pass works item by item; a failure is logged, joined into the
// returned error and retried on the next tick.
type EligibilityServiceImpl struct {
	orderRepo    ports.OrderRepository
	itemRepo     ports.OrderItemRepository
	returnRepo   ports.ReturnRepository
	feeRepo      ports.ShippingOrderFeeRepository
	storeWallets ports.StoreWalletService
	platform     ports.PlatformWalletService
	transactor   ports.DBTransactor
	policy       config.PolicyConfig
	now          func() time.Time
	log          zerolog.Logger
}

// NewEligibilityService creates a new EligibilityServiceImpl.
func NewEligibilityService(
	orderRepo ports.OrderRepository,
	itemRepo ports.OrderItemRepository,
	returnRepo ports.ReturnRepository,
	feeRepo ports.ShippingOrderFeeRepository,
	storeWallets ports.StoreWalletService,
	platform ports.PlatformWalletService,
	transactor ports.DBTransactor,
	policy config.PolicyConfig,
	log zerolog.Logger,
) *EligibilityServiceImpl {
	return &EligibilityServiceImpl{
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		returnRepo:   returnRepo,
		feeRepo:      feeRepo,
		storeWallets: storeWallets,
		platform:     platform,
		transactor:   transactor,
		policy:       policy,
		now:          func() time.Time { return time.Now().UTC() },
		log:          log.With().Str("component", "eligibility").Logger(),
	}
}

// EvaluateEligibility flags items whose hold window has elapsed and that no
// open return covers.
func (s *EligibilityServiceImpl) EvaluateEligibility(ctx context.Context) (int, error) {
	now := s.now()
	items, err := s.itemRepo.ListAwaitingEligibility(ctx, now.Add(-s.policy.HoldWindow), s.policy.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list awaiting items: %w", err)
	}

	orders := make(map[uuid.UUID]*domain.StoreOrder)
	var (
		marked int
		errs   error
	)
	for i := range items {
		item := &items[i]
		order, ok := orders[item.StoreOrderID]
		if !ok {
			order, err = s.orderRepo.GetByID(ctx, item.StoreOrderID)
			if err != nil {
				errs = multierr.Append(errs, s.itemFailed(item.ID, "load order", err))
				continue
			}
			orders[item.StoreOrderID] = order
		}
		if order == nil || !order.HoldWindowElapsed(s.policy.HoldWindow, now) {
			continue
		}

		open, err := s.returnRepo.HasOpenForItems(ctx, []uuid.UUID{item.ID})
		if err != nil {
			errs = multierr.Append(errs, s.itemFailed(item.ID, "check open returns", err))
			continue
		}
		if open {
			continue
		}

		changed, err := s.itemRepo.MarkEligible(ctx, item.ID, now)
		if err != nil {
			errs = multierr.Append(errs, s.itemFailed(item.ID, "mark eligible", err))
			continue
		}
		if changed {
			marked++
		}
	}

	if marked > 0 {
		s.log.Info().Int("items", marked).Msg("items became eligible for payout")
	}
	return marked, errs
}

// ProcessReturnOutcomes excludes the items of refunded returns from payout.
func (s *EligibilityServiceImpl) ProcessReturnOutcomes(ctx context.Context) (int, error) {
	returns, err := s.returnRepo.ListRefundedWithLiveItems(ctx, s.policy.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list refunded returns: %w", err)
	}

	var (
		excluded int
		errs     error
	)
	for i := range returns {
		r := &returns[i]
		n, err := s.excludeStandalone(ctx, r)
		if err != nil {
			s.log.Error().Err(err).Str("return_id", r.ID.String()).Msg("exclude returned items failed")
			errs = multierr.Append(errs, fmt.Errorf("return %s: %w", r.ID, err))
			continue
		}
		excluded += n
	}
	return excluded, errs
}

func (s *EligibilityServiceImpl) excludeStandalone(ctx context.Context, r *domain.ReturnRequest) (int, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	n, err := s.ExcludeItemsInTx(ctx, dbTx, r.StoreID, r.ItemIDs, "return "+r.ID.String())
	if err != nil {
		return 0, err
	}
	if err := dbTx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return n, nil
}

// ExcludeItemsInTx flips payoutExcluded on each live item and takes their
// combined net out of the store's pending balance. Items of other stores,
// paid-out items and already excluded items are skipped.
func (s *EligibilityServiceImpl) ExcludeItemsInTx(ctx context.Context, tx pgx.Tx, storeID uuid.UUID, itemIDs []uuid.UUID, reason string) (int, error) {
	items, err := s.itemRepo.ListByIDs(ctx, itemIDs)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("list items: %w", err))
	}

	now := s.now()
	var (
		count   int
		total   int64
		orderID uuid.UUID
	)
	for i := range items {
		item := &items[i]
		if item.StoreID != storeID || item.PayoutExcluded || item.IsPayout {
			continue
		}
		changed, err := s.itemRepo.Exclude(ctx, tx, item.ID, now)
		if err != nil {
			return 0, apperror.InternalError(fmt.Errorf("exclude item %s: %w", item.ID, err))
		}
		if !changed {
			continue
		}
		count++
		total += item.NetAmount()
		orderID = item.StoreOrderID
	}

	if total > 0 {
		refund := domain.NewStoreMovement(domain.StoreTxRefund, total, now).ForOrder(orderID)
		refund.Note = reason
		if _, err := s.storeWallets.ApplyInTx(ctx, tx, storeID, refund); err != nil {
			return 0, err
		}
	}

	if count > 0 {
		s.log.Info().
			Str("store_id", storeID.String()).
			Int("items", count).
			Int64("pending_refunded", total).
			Str("reason", reason).
			Msg("items excluded from payout")
	}
	return count, nil
}

// SyncDeliveredAt copies the order delivery time onto items that miss it.
func (s *EligibilityServiceImpl) SyncDeliveredAt(ctx context.Context) (int, error) {
	rows, err := s.itemRepo.ListMissingDeliveredAt(ctx, s.policy.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list items missing delivered_at: %w", err)
	}

	var (
		synced int
		errs   error
	)
	for _, row := range rows {
		changed, err := s.itemRepo.SetDeliveredAt(ctx, row.ItemID, row.DeliveredAt)
		if err != nil {
			errs = multierr.Append(errs, s.itemFailed(row.ItemID, "set delivered_at", err))
			continue
		}
		if changed {
			synced++
		}
	}
	return synced, errs
}

// ReconcileShippingFees records the carrier's real fee of delivered orders
// and books the gap to the estimate against the party the policy names.
func (s *EligibilityServiceImpl) ReconcileShippingFees(ctx context.Context) (int, error) {
	orders, err := s.orderRepo.ListFeeUnreconciled(ctx, s.policy.SweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("list unreconciled orders: %w", err)
	}

	var (
		reconciled int
		errs       error
	)
	for i := range orders {
		order := &orders[i]
		created, err := s.reconcileOrder(ctx, order)
		if err != nil {
			s.log.Error().Err(err).Str("order_id", order.ID.String()).Msg("shipping fee reconciliation failed")
			errs = multierr.Append(errs, fmt.Errorf("order %s: %w", order.ID, err))
			continue
		}
		if created {
			reconciled++
		}
	}
	return reconciled, errs
}

func (s *EligibilityServiceImpl) reconcileOrder(ctx context.Context, order *domain.StoreOrder) (bool, error) {
	delta, ok := order.ShippingFeeDelta()
	if !ok {
		return false, nil
	}

	now := s.now()
	fee := &domain.ShippingOrderFee{
		ID:           uuid.New(),
		StoreID:      order.StoreID,
		StoreOrderID: order.ID,
		EstimatedFee: order.ShippingFeeEstimated,
		RealFee:      *order.ShippingFeeReal,
		Delta:        delta,
		CreatedAt:    now,
	}
	if s.policy.ShippingDeltaPolicy == config.ShippingDeltaShop {
		fee.ChargedTo = domain.FeePartyShop
		fee.Amount = delta
	} else {
		fee.ChargedTo = domain.FeePartyPlatform
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	created, err := s.feeRepo.Create(ctx, dbTx, fee)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("create shipping fee: %w", err))
	}
	if !created {
		return false, nil
	}

	if delta != 0 {
		note := fmt.Sprintf("shipping fee delta for order %s", order.OrderCode)
		if fee.ChargedTo == domain.FeePartyShop {
			adj := domain.NewStoreMovement(domain.StoreTxAdjustment, delta, now).ForOrder(order.ID)
			adj.Note = note
			if _, err := s.storeWallets.ApplyInTx(ctx, dbTx, order.StoreID, adj); err != nil {
				return false, err
			}
		} else {
			row := platformRow(domain.PlatformTxShippingFeeAdjust, -delta, note)
			row.OrderID = &order.ID
			row.StoreID = &order.StoreID
			if err := s.platform.RecordInTx(ctx, dbTx, row); err != nil {
				return false, err
			}
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return false, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Int64("delta", delta).
		Str("charged_to", string(fee.ChargedTo)).
		Msg("shipping fee reconciled")
	return true, nil
}

func (s *EligibilityServiceImpl) itemFailed(itemID uuid.UUID, step string, err error) error {
	s.log.Error().Err(err).Str("item_id", itemID.String()).Str("step", step).Msg("eligibility item failed")
	return fmt.Errorf("item %s: %s: %w", itemID, step, err)
}
