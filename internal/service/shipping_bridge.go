package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

// ShippingBridgeImpl implements ports.ShippingBridge. A carrier order code
// belongs either to a return parcel or to an outbound order; returns are
// looked up first.
type ShippingBridgeImpl struct {
	orderRepo   ports.OrderRepository
	returnRepo  ports.ReturnRepository
	returnFees  ports.ReturnShippingFeeRepository
	carrier     ports.CarrierClient
	transactor  ports.DBTransactor
	batchSize   int
	concurrency int
	now         func() time.Time
	log         zerolog.Logger
}

// NewShippingBridge creates a new ShippingBridgeImpl.
func NewShippingBridge(
	orderRepo ports.OrderRepository,
	returnRepo ports.ReturnRepository,
	returnFees ports.ReturnShippingFeeRepository,
	carrier ports.CarrierClient,
	transactor ports.DBTransactor,
	batchSize int,
	concurrency int,
	log zerolog.Logger,
) *ShippingBridgeImpl {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ShippingBridgeImpl{
		orderRepo:   orderRepo,
		returnRepo:  returnRepo,
		returnFees:  returnFees,
		carrier:     carrier,
		transactor:  transactor,
		batchSize:   batchSize,
		concurrency: concurrency,
		now:         func() time.Time { return time.Now().UTC() },
		log:         log.With().Str("component", "shipping").Logger(),
	}
}

// ApplyCarrierUpdate applies one status observation. Statuses that change
// nothing for the order or return are accepted and ignored.
func (b *ShippingBridgeImpl) ApplyCarrierUpdate(ctx context.Context, update domain.CarrierUpdate) error {
	if update.OrderCode == "" {
		return apperror.Validation("order_code is required")
	}
	if update.ObservedAt.IsZero() {
		update.ObservedAt = b.now()
	}

	r, err := b.returnRepo.GetByCarrierOrderCode(ctx, update.OrderCode)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get return by carrier code: %w", err))
	}
	if r != nil {
		return b.applyToReturn(ctx, r, update)
	}

	order, err := b.orderRepo.GetByCarrierOrderCode(ctx, update.OrderCode)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get order by carrier code: %w", err))
	}
	if order == nil {
		return apperror.ErrNotFound("shipment")
	}
	return b.applyToOrder(ctx, order, update)
}

func (b *ShippingBridgeImpl) applyToOrder(ctx context.Context, order *domain.StoreOrder, update domain.CarrierUpdate) error {
	status := update.Status()
	logger := b.log.With().
		Str("order_id", order.ID.String()).
		Str("carrier_code", update.OrderCode).
		Str("status", string(status)).
		Logger()

	if status.PickedUp() && status != domain.ShipmentDelivered {
		changed, err := b.orderRepo.MarkShipping(ctx, order.ID, update.ObservedAt)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("mark order shipping: %w", err))
		}
		if changed {
			logger.Info().Msg("order shipping")
		}
	}

	if status == domain.ShipmentDelivered {
		changed, err := b.orderRepo.MarkDelivered(ctx, order.ID, update.ObservedAt)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("mark order delivered: %w", err))
		}
		if changed {
			logger.Info().Time("delivered_at", update.ObservedAt).Msg("order delivered")
		}
	}

	if update.TotalFee != nil && *update.TotalFee >= 0 {
		changed, err := b.orderRepo.SetRealShippingFee(ctx, order.ID, *update.TotalFee)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("set real shipping fee: %w", err))
		}
		if changed {
			logger.Debug().Int64("fee", *update.TotalFee).Msg("real shipping fee recorded")
		}
	}

	if status == domain.ShipmentUnknown {
		logger.Warn().Str("raw_status", update.RawStatus).Msg("unmapped carrier status")
	}
	return nil
}

// applyToReturn moves an approved return to SHIPPING once the carrier has
// the parcel and stamps the arrival at the shop. Both can land in one update.
func (b *ShippingBridgeImpl) applyToReturn(ctx context.Context, r *domain.ReturnRequest, update domain.CarrierUpdate) error {
	status := update.Status()
	if !status.PickedUp() {
		if status != domain.ShipmentReadyToPick && status != domain.ShipmentPicking {
			b.log.Warn().
				Str("return_id", r.ID.String()).
				Str("status", string(status)).
				Str("raw_status", update.RawStatus).
				Msg("return parcel status not handled")
		}
		return nil
	}

	dbTx, err := b.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	locked, err := b.returnRepo.GetByIDForUpdate(ctx, dbTx, r.ID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock return: %w", err))
	}
	if locked == nil {
		return apperror.ErrNotFound("return request")
	}

	from := locked.Status
	now := b.now()
	changed := false

	if locked.Status == domain.ReturnApproved {
		locked.MoveTo(domain.ReturnShipping, now)
		if _, err := b.returnFees.MarkPicked(ctx, dbTx, locked.ID, update.ObservedAt); err != nil {
			return apperror.InternalError(fmt.Errorf("mark return fee picked: %w", err))
		}
		changed = true
	}
	if status == domain.ShipmentDelivered && locked.Status == domain.ReturnShipping && locked.DeliveredToShopAt == nil {
		at := update.ObservedAt
		locked.DeliveredToShopAt = &at
		locked.UpdatedAt = now
		changed = true
	}
	if !changed {
		return nil
	}

	ok, err := b.returnRepo.UpdateIfStatus(ctx, dbTx, locked, from)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("update return: %w", err))
	}
	if !ok {
		return apperror.ErrInvalidStateTransition(string(from), string(locked.Status))
	}
	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	b.log.Info().
		Str("return_id", locked.ID.String()).
		Str("from", string(from)).
		Str("to", string(locked.Status)).
		Bool("at_shop", locked.DeliveredToShopAt != nil).
		Msg("return parcel updated")
	return nil
}

// SyncCarrierStatuses polls the carrier for every parcel still moving and
// applies what it reports. Returns the number of parcels applied.
func (b *ShippingBridgeImpl) SyncCarrierStatuses(ctx context.Context) (int, error) {
	orders, err := b.orderRepo.ListInTransit(ctx, b.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list orders in transit: %w", err)
	}
	returns, err := b.returnRepo.ListOpenShipments(ctx, b.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list open return shipments: %w", err)
	}

	codes := make([]string, 0, len(orders)+len(returns))
	for i := range returns {
		codes = append(codes, returns[i].CarrierOrderCode)
	}
	for i := range orders {
		codes = append(codes, orders[i].CarrierOrderCode)
	}
	if len(codes) == 0 {
		return 0, nil
	}

	pool, err := ants.NewPool(b.concurrency)
	if err != nil {
		return 0, fmt.Errorf("create carrier sync pool: %w", err)
	}
	defer pool.Release()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
		errs    error
	)
	record := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = multierr.Append(errs, err)
			return
		}
		applied++
	}

	for _, code := range codes {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			record(b.syncOne(ctx, code))
		}); err != nil {
			wg.Done()
			record(fmt.Errorf("submit %s: %w", code, err))
		}
	}
	wg.Wait()

	return applied, errs
}

func (b *ShippingBridgeImpl) syncOne(ctx context.Context, code string) error {
	update, err := b.carrier.GetParcelStatus(ctx, code)
	if err != nil {
		b.log.Warn().Err(err).Str("carrier_code", code).Msg("carrier status poll failed")
		return fmt.Errorf("poll %s: %w", code, err)
	}
	if err := b.ApplyCarrierUpdate(ctx, *update); err != nil {
		b.log.Error().Err(err).Str("carrier_code", code).Msg("apply carrier status failed")
		return fmt.Errorf("apply %s: %w", code, err)
	}
	return nil
}
