package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/apperror"

	"go.uber.org/multierr"
)

// AutoApprovePendingReturns approves returns the shop left unanswered. The
// shop pays the return parcel.
func (s *ReturnServiceImpl) AutoApprovePendingReturns(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.policy.AutoApproveAfter)
	return s.sweep(ctx, "auto approve", ports.ReturnSweepFilter{
		Status:        domain.ReturnPending,
		UpdatedBefore: cutoff,
	}, func(*domain.ReturnRequest) returnStep {
		step := approveStep(domain.FeePartyShop, domain.ActorSystem)
		step.guard = untouchedSince(cutoff)
		return step
	})
}

// AutoCancelUnshippedReturns cancels approved returns the customer never sent.
func (s *ReturnServiceImpl) AutoCancelUnshippedReturns(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.policy.AutoCancelUnshippedAfter)
	return s.sweep(ctx, "auto cancel", ports.ReturnSweepFilter{
		Status:             domain.ReturnApproved,
		UpdatedBefore:      cutoff,
		HasCarrierShipment: flag(false),
	}, func(*domain.ReturnRequest) returnStep {
		return returnStep{
			name:   "auto cancel",
			actors: []domain.ActorKind{domain.ActorSystem},
			path:   []domain.ReturnStatus{domain.ReturnCanceled},
			guard: func(r *domain.ReturnRequest) error {
				if r.HasCarrierShipment() {
					return stale(r)
				}
				return untouchedSince(cutoff)(r)
			},
		}
	})
}

// AutoRefundForUnresponsiveShop refunds the customer when the parcel reached
// the shop and the shop neither confirmed nor disputed in time.
func (s *ReturnServiceImpl) AutoRefundForUnresponsiveShop(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.policy.AutoRefundAfter)
	return s.sweep(ctx, "auto refund", ports.ReturnSweepFilter{
		Status:          domain.ReturnShipping,
		UpdatedBefore:   cutoff,
		DeliveredToShop: flag(true),
	}, func(*domain.ReturnRequest) returnStep {
		return returnStep{
			name:   "auto refund",
			actors: []domain.ActorKind{domain.ActorSystem},
			path:   []domain.ReturnStatus{domain.ReturnAutoRefunded},
			refund: true,
			guard: func(r *domain.ReturnRequest) error {
				if r.DeliveredToShopAt == nil || r.DeliveredToShopAt.After(cutoff) {
					return stale(r)
				}
				return nil
			},
		}
	})
}

// AutoHandleGhnPickupTimeout deals with booked return parcels the carrier
// has not picked up. Each timeout counts a missed pickup and restarts the
// wait; the carrier keeps the booking and reattempts on its own schedule, so
// nothing is sent to it. Once MaxPickupAttempts is used the return is canceled.
func (s *ReturnServiceImpl) AutoHandleGhnPickupTimeout(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.policy.PickupTimeout)
	return s.sweep(ctx, "pickup timeout", ports.ReturnSweepFilter{
		Status:             domain.ReturnApproved,
		UpdatedBefore:      cutoff,
		HasCarrierShipment: flag(true),
	}, func(listed *domain.ReturnRequest) returnStep {
		attempts := listed.PickupAttempts
		step := returnStep{
			name:   "count missed pickup",
			actors: []domain.ActorKind{domain.ActorSystem},
			guard: func(r *domain.ReturnRequest) error {
				if r.PickupAttempts != attempts || !r.HasCarrierShipment() {
					return stale(r)
				}
				return untouchedSince(cutoff)(r)
			},
			edit: func(r *domain.ReturnRequest) { r.PickupAttempts = attempts + 1 },
		}
		if attempts+1 >= s.policy.MaxPickupAttempts {
			step.name = "pickup timeout cancel"
			step.path = []domain.ReturnStatus{domain.ReturnCanceled}
		}
		return step
	})
}

// sweep runs one step per listed return. A return that moved on since it
// was listed is skipped quietly; other failures are collected and retried
// on the next tick.
func (s *ReturnServiceImpl) sweep(
	ctx context.Context,
	name string,
	filter ports.ReturnSweepFilter,
	stepFor func(r *domain.ReturnRequest) returnStep,
) (int, error) {
	filter.Limit = s.policy.SweepBatchSize
	returns, err := s.returnRepo.ListForSweep(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%s: list returns: %w", name, err)
	}

	var (
		done int
		errs error
	)
	for i := range returns {
		r := &returns[i]
		if _, err := s.run(ctx, r.ID, domain.SystemActor, stepFor(r)); err != nil {
			if apperror.HasCode(err, apperror.CodeInvalidStateTransition) {
				s.log.Debug().Str("return_id", r.ID.String()).Str("pass", name).Msg("return changed since listed, skipped")
				continue
			}
			s.log.Error().Err(err).Str("return_id", r.ID.String()).Str("pass", name).Msg("return sweep failed")
			errs = multierr.Append(errs, fmt.Errorf("%s: return %s: %w", name, r.ID, err))
			continue
		}
		done++
	}

	if done > 0 {
		s.log.Info().Str("pass", name).Int("returns", done).Msg("return sweep applied")
	}
	return done, errs
}

func untouchedSince(cutoff time.Time) func(r *domain.ReturnRequest) error {
	return func(r *domain.ReturnRequest) error {
		if r.UpdatedAt.After(cutoff) {
			return stale(r)
		}
		return nil
	}
}

func stale(r *domain.ReturnRequest) error {
	return apperror.ErrInvalidStateTransition(string(r.Status), string(r.Status))
}

func flag(b bool) *bool { return &b }
