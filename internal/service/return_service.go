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
)

// ReturnServiceImpl implements ports.ReturnService.
type ReturnServiceImpl struct {
	returnRepo  ports.ReturnRepository
	orderRepo   ports.OrderRepository
	itemRepo    ports.OrderItemRepository
	returnFees  ports.ReturnShippingFeeRepository
	wallets     ports.WalletService
	eligibility ports.EligibilityService
	platform    ports.PlatformWalletService
	transactor  ports.DBTransactor
	policy      config.PolicyConfig
	now         func() time.Time
	log         zerolog.Logger
}

// NewReturnService creates a new ReturnServiceImpl.
func NewReturnService(
	returnRepo ports.ReturnRepository,
	orderRepo ports.OrderRepository,
	itemRepo ports.OrderItemRepository,
	returnFees ports.ReturnShippingFeeRepository,
	wallets ports.WalletService,
	eligibility ports.EligibilityService,
	platform ports.PlatformWalletService,
	transactor ports.DBTransactor,
	policy config.PolicyConfig,
	log zerolog.Logger,
) *ReturnServiceImpl {
	return &ReturnServiceImpl{
		returnRepo:  returnRepo,
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		returnFees:  returnFees,
		wallets:     wallets,
		eligibility: eligibility,
		platform:    platform,
		transactor:  transactor,
		policy:      policy,
		now:         func() time.Time { return time.Now().UTC() },
		log:         log.With().Str("component", "returns").Logger(),
	}
}

// returnStep describes one guarded change of a return.
type returnStep struct {
	name   string
	actors []domain.ActorKind
	// path is applied in order; every edge must be in the transition table.
	// An empty path edits the return without moving it.
	path   []domain.ReturnStatus
	guard  func(r *domain.ReturnRequest) error
	edit   func(r *domain.ReturnRequest)
	refund bool
	after  func(ctx context.Context, tx pgx.Tx, r *domain.ReturnRequest) error
}

// CreateReturn opens a return for some lines of a delivered order. The
// customer may return an item until its payout hold window ends.
func (s *ReturnServiceImpl) CreateReturn(ctx context.Context, req ports.CreateReturnRequest) (*domain.ReturnRequest, error) {
	itemIDs := uniqueIDs(req.ItemIDs)
	if len(itemIDs) == 0 {
		return nil, apperror.Validation("at least one item is required")
	}

	order, err := s.orderRepo.GetByID(ctx, req.StoreOrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	if order.CustomerID != req.CustomerID {
		return nil, apperror.ErrForbiddenActor()
	}
	if !order.IsDelivered() {
		return nil, apperror.Validation("order has not been delivered")
	}
	now := s.now()
	if order.HoldWindowElapsed(s.policy.HoldWindow, now) {
		return nil, apperror.ErrReturnWindowClosed()
	}

	items, err := s.itemRepo.ListByIDs(ctx, itemIDs)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list items: %w", err))
	}
	if len(items) != len(itemIDs) {
		return nil, apperror.ErrNotFound("order item")
	}
	var refund int64
	for i := range items {
		item := &items[i]
		if item.StoreOrderID != order.ID {
			return nil, apperror.Validation(fmt.Sprintf("item %s does not belong to the order", item.ID))
		}
		if item.IsPayout || item.PayoutExcluded {
			return nil, apperror.Validation(fmt.Sprintf("item %s can no longer be returned", item.ID))
		}
		refund += item.LineTotal
	}

	open, err := s.returnRepo.HasOpenForItems(ctx, itemIDs)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check open returns: %w", err))
	}
	if open {
		return nil, apperror.ErrOpenReturnExists()
	}

	r := &domain.ReturnRequest{
		ID:           uuid.New(),
		CustomerID:   order.CustomerID,
		StoreID:      order.StoreID,
		StoreOrderID: order.ID,
		ItemIDs:      itemIDs,
		Reason:       req.Reason,
		RefundAmount: refund,
		Status:       domain.ReturnPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.returnRepo.Create(ctx, dbTx, r); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create return: %w", err))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("return_id", r.ID.String()).
		Str("order_id", order.ID.String()).
		Int("items", len(itemIDs)).
		Int64("refund_amount", refund).
		Msg("return created")
	return r, nil
}

func (s *ReturnServiceImpl) ApproveReturn(ctx context.Context, returnID uuid.UUID, actor domain.Actor, coveredBy domain.FeeParty) (*domain.ReturnRequest, error) {
	if coveredBy == "" {
		coveredBy = domain.FeePartyShop
	}
	switch coveredBy {
	case domain.FeePartyShop, domain.FeePartyCustomer, domain.FeePartyPlatform:
	default:
		return nil, apperror.Validation(fmt.Sprintf("unsupported covered_by %q", coveredBy))
	}
	return s.run(ctx, returnID, actor, approveStep(coveredBy, domain.ActorShop, domain.ActorAdmin))
}

func approveStep(coveredBy domain.FeeParty, actors ...domain.ActorKind) returnStep {
	return returnStep{
		name:   "approve",
		actors: actors,
		path:   []domain.ReturnStatus{domain.ReturnApproved},
		edit:   func(r *domain.ReturnRequest) { r.CoveredBy = coveredBy },
	}
}

func (s *ReturnServiceImpl) RejectReturn(ctx context.Context, returnID uuid.UUID, actor domain.Actor, reason string) (*domain.ReturnRequest, error) {
	if reason == "" {
		return nil, apperror.Validation("reason is required")
	}
	return s.run(ctx, returnID, actor, returnStep{
		name:   "reject",
		actors: []domain.ActorKind{domain.ActorShop, domain.ActorAdmin},
		path:   []domain.ReturnStatus{domain.ReturnRejected},
		edit:   func(r *domain.ReturnRequest) { r.RejectReason = reason },
	})
}

// RefundWithoutReturn lets the shop refund without getting the goods back.
func (s *ReturnServiceImpl) RefundWithoutReturn(ctx context.Context, returnID uuid.UUID, actor domain.Actor) (*domain.ReturnRequest, error) {
	return s.run(ctx, returnID, actor, returnStep{
		name:   "refund without return",
		actors: []domain.ActorKind{domain.ActorShop, domain.ActorAdmin},
		path:   []domain.ReturnStatus{domain.ReturnRefunded},
		refund: true,
	})
}

func (s *ReturnServiceImpl) CancelReturn(ctx context.Context, returnID uuid.UUID, actor domain.Actor) (*domain.ReturnRequest, error) {
	return s.run(ctx, returnID, actor, returnStep{
		name:   "cancel",
		actors: []domain.ActorKind{domain.ActorCustomer, domain.ActorAdmin},
		path:   []domain.ReturnStatus{domain.ReturnCanceled},
	})
}

// AttachReturnShipment records the carrier booking of an approved return and
// its fee. Who pays the fee follows the approval's coveredBy.
func (s *ReturnServiceImpl) AttachReturnShipment(ctx context.Context, returnID uuid.UUID, actor domain.Actor, carrierOrderCode string, fee int64) (*domain.ReturnRequest, error) {
	if carrierOrderCode == "" {
		return nil, apperror.Validation("carrier_order_code is required")
	}
	if fee < 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	return s.run(ctx, returnID, actor, returnStep{
		name:   "attach shipment",
		actors: []domain.ActorKind{domain.ActorCustomer, domain.ActorShop, domain.ActorAdmin},
		guard: func(r *domain.ReturnRequest) error {
			if r.Status != domain.ReturnApproved {
				return apperror.ErrInvalidStateTransition(string(r.Status), string(domain.ReturnShipping))
			}
			if r.HasCarrierShipment() {
				return apperror.Validation("return shipment already attached")
			}
			return nil
		},
		edit: func(r *domain.ReturnRequest) { r.CarrierOrderCode = carrierOrderCode },
		after: func(ctx context.Context, tx pgx.Tx, r *domain.ReturnRequest) error {
			err := s.returnFees.Create(ctx, tx, &domain.ReturnShippingFee{
				ID:              uuid.New(),
				ReturnRequestID: r.ID,
				StoreID:         r.StoreID,
				Amount:          fee,
				PaidByShop:      r.CoveredBy == domain.FeePartyShop,
				CreatedAt:       r.UpdatedAt,
			})
			if err != nil {
				return apperror.InternalError(fmt.Errorf("create return fee: %w", err))
			}
			return nil
		},
	})
}

// ConfirmReceived is the shop accepting the returned goods; the customer is
// refunded in the same transaction.
func (s *ReturnServiceImpl) ConfirmReceived(ctx context.Context, returnID uuid.UUID, actor domain.Actor) (*domain.ReturnRequest, error) {
	return s.run(ctx, returnID, actor, returnStep{
		name:   "confirm received",
		actors: []domain.ActorKind{domain.ActorShop, domain.ActorAdmin},
		path:   []domain.ReturnStatus{domain.ReturnReceived, domain.ReturnRefunded},
		refund: true,
	})
}

func (s *ReturnServiceImpl) OpenDispute(ctx context.Context, returnID uuid.UUID, actor domain.Actor, reason string) (*domain.ReturnRequest, error) {
	if reason == "" {
		return nil, apperror.Validation("reason is required")
	}
	return s.run(ctx, returnID, actor, returnStep{
		name:   "open dispute",
		actors: []domain.ActorKind{domain.ActorShop, domain.ActorAdmin},
		path:   []domain.ReturnStatus{domain.ReturnDispute},
		edit:   func(r *domain.ReturnRequest) { r.DisputeReason = reason },
	})
}

func (s *ReturnServiceImpl) EscalateDispute(ctx context.Context, returnID uuid.UUID, actor domain.Actor) (*domain.ReturnRequest, error) {
	return s.run(ctx, returnID, actor, returnStep{
		name:   "escalate dispute",
		actors: []domain.ActorKind{domain.ActorCustomer, domain.ActorAdmin},
		path:   []domain.ReturnStatus{domain.ReturnDisputeEscalated},
	})
}

// ResolveDispute is the admin's decision. A decision for the customer refunds.
func (s *ReturnServiceImpl) ResolveDispute(ctx context.Context, returnID uuid.UUID, actor domain.Actor, inFavorOfCustomer bool, note string) (*domain.ReturnRequest, error) {
	to := domain.ReturnDisputeResolvedShop
	if inFavorOfCustomer {
		to = domain.ReturnDisputeResolvedCustomer
	}
	return s.run(ctx, returnID, actor, returnStep{
		name:   "resolve dispute",
		actors: []domain.ActorKind{domain.ActorAdmin},
		path:   []domain.ReturnStatus{to},
		edit:   func(r *domain.ReturnRequest) { r.ResolutionNote = note },
		refund: inFavorOfCustomer,
	})
}

func (s *ReturnServiceImpl) CompleteReturn(ctx context.Context, returnID uuid.UUID, actor domain.Actor) (*domain.ReturnRequest, error) {
	return s.run(ctx, returnID, actor, returnStep{
		name:   "complete",
		actors: []domain.ActorKind{domain.ActorShop, domain.ActorAdmin, domain.ActorSystem},
		path:   []domain.ReturnStatus{domain.ReturnDone},
	})
}

// run locks the return, checks the actor and every edge of the path, applies
// the step and writes the result with a compare-and-set on the status read.
func (s *ReturnServiceImpl) run(ctx context.Context, returnID uuid.UUID, actor domain.Actor, step returnStep) (*domain.ReturnRequest, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	r, err := s.returnRepo.GetByIDForUpdate(ctx, dbTx, returnID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock return: %w", err))
	}
	if r == nil {
		return nil, apperror.ErrNotFound("return request")
	}
	if err := authorize(r, actor, step.actors); err != nil {
		return nil, err
	}

	from := r.Status
	prev := from
	for _, to := range step.path {
		if !domain.CanTransition(prev, to) {
			return nil, apperror.ErrInvalidStateTransition(string(prev), string(to))
		}
		prev = to
	}
	if step.guard != nil {
		if err := step.guard(r); err != nil {
			return nil, err
		}
	}

	now := s.now()
	if step.edit != nil {
		step.edit(r)
	}
	for _, to := range step.path {
		r.MoveTo(to, now)
	}
	r.UpdatedAt = now

	if step.refund {
		if err := s.refundInTx(ctx, dbTx, r); err != nil {
			return nil, err
		}
	}
	if step.after != nil {
		if err := step.after(ctx, dbTx, r); err != nil {
			return nil, err
		}
	}

	ok, err := s.returnRepo.UpdateIfStatus(ctx, dbTx, r, from)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update return: %w", err))
	}
	if !ok {
		return nil, apperror.ErrInvalidStateTransition(string(from), string(r.Status))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("return_id", r.ID.String()).
		Str("step", step.name).
		Str("actor", actor.String()).
		Str("from", string(from)).
		Str("to", string(r.Status)).
		Msg("return updated")
	return r, nil
}

// refundInTx pays the customer back and takes the returned items out of
// payout. Lock order: customer wallet, store wallet, platform wallet.
func (s *ReturnServiceImpl) refundInTx(ctx context.Context, tx pgx.Tx, r *domain.ReturnRequest) error {
	note := "return " + r.ID.String()

	var custody *domain.PlatformTransaction
	if r.RefundAmount > 0 {
		var err error
		_, custody, err = s.wallets.RefundInTx(ctx, tx, r.CustomerID, r.RefundAmount, r.StoreOrderID, note)
		if err != nil {
			return err
		}
	}

	if _, err := s.eligibility.ExcludeItemsInTx(ctx, tx, r.StoreID, r.ItemIDs, note); err != nil {
		return err
	}

	if custody != nil {
		custody.StoreID = &r.StoreID
		if err := s.platform.RecordInTx(ctx, tx, custody); err != nil {
			return err
		}
	}
	return nil
}

func authorize(r *domain.ReturnRequest, actor domain.Actor, allowed []domain.ActorKind) error {
	for _, kind := range allowed {
		if actor.Kind != kind {
			continue
		}
		switch kind {
		case domain.ActorCustomer:
			if actor.ID == r.CustomerID {
				return nil
			}
		case domain.ActorShop:
			if actor.ID == r.StoreID {
				return nil
			}
		default:
			return nil
		}
	}
	return apperror.ErrForbiddenActor()
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
