package memory

import (
	"context"
	"fmt"
	"sort"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReturnRepo struct{ s *Store }

func cloneReturn(r domain.ReturnRequest) *domain.ReturnRequest {
	r.ItemIDs = append([]uuid.UUID(nil), r.ItemIDs...)
	return &r
}

func (r *ReturnRepo) Create(_ context.Context, _ pgx.Tx, ret *domain.ReturnRequest) error {
	return r.s.write(func(d *state) error {
		if _, ok := d.returns[ret.ID]; ok {
			return fmt.Errorf("insert return: duplicate id %s", ret.ID)
		}
		d.returns[ret.ID] = *cloneReturn(*ret)
		return nil
	})
}

func (r *ReturnRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ReturnRequest, error) {
	var out *domain.ReturnRequest
	r.s.read(func(d *state) {
		if ret, ok := d.returns[id]; ok {
			out = cloneReturn(ret)
		}
	})
	return out, nil
}

func (r *ReturnRepo) GetByIDForUpdate(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*domain.ReturnRequest, error) {
	return r.GetByID(ctx, id)
}

// GetByCarrierOrderCode returns the most recent return booked under code.
func (r *ReturnRepo) GetByCarrierOrderCode(_ context.Context, code string) (*domain.ReturnRequest, error) {
	if code == "" {
		return nil, nil
	}
	var out *domain.ReturnRequest
	r.s.read(func(d *state) {
		for _, ret := range d.returns {
			if ret.CarrierOrderCode != code {
				continue
			}
			if out == nil || ret.CreatedAt.After(out.CreatedAt) {
				out = cloneReturn(ret)
			}
		}
	})
	return out, nil
}

func (r *ReturnRepo) HasOpenForItems(_ context.Context, itemIDs []uuid.UUID) (bool, error) {
	var found bool
	r.s.read(func(d *state) {
		for _, ret := range d.returns {
			if !ret.Status.IsOpen() {
				continue
			}
			for _, id := range itemIDs {
				if ret.Covers(id) {
					found = true
					return
				}
			}
		}
	})
	return found, nil
}

func (r *ReturnRepo) list(keep func(d *state, ret domain.ReturnRequest) bool, limit int) []domain.ReturnRequest {
	var out []domain.ReturnRequest
	r.s.read(func(d *state) {
		for _, ret := range d.returns {
			if keep(d, ret) {
				out = append(out, *cloneReturn(ret))
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	return truncate(out, limit)
}

func (r *ReturnRepo) ListForSweep(_ context.Context, f ports.ReturnSweepFilter) ([]domain.ReturnRequest, error) {
	return r.list(func(_ *state, ret domain.ReturnRequest) bool {
		if ret.Status != f.Status || ret.UpdatedAt.After(f.UpdatedBefore) {
			return false
		}
		if f.HasCarrierShipment != nil && ret.HasCarrierShipment() != *f.HasCarrierShipment {
			return false
		}
		if f.DeliveredToShop != nil && (ret.DeliveredToShopAt != nil) != *f.DeliveredToShop {
			return false
		}
		return true
	}, f.Limit), nil
}

func (r *ReturnRepo) ListRefundedWithLiveItems(_ context.Context, limit int) ([]domain.ReturnRequest, error) {
	refunded := make(map[domain.ReturnStatus]bool, len(domain.RefundOutcomes))
	for _, st := range domain.RefundOutcomes {
		refunded[st] = true
	}
	return r.list(func(d *state, ret domain.ReturnRequest) bool {
		if !refunded[ret.Status] || ret.RefundedAt == nil {
			return false
		}
		for _, id := range ret.ItemIDs {
			if item, ok := d.items[id]; ok && !item.PayoutExcluded && !item.IsPayout {
				return true
			}
		}
		return false
	}, limit), nil
}

func (r *ReturnRepo) ListOpenShipments(_ context.Context, limit int) ([]domain.ReturnRequest, error) {
	return r.list(func(_ *state, ret domain.ReturnRequest) bool {
		if !ret.HasCarrierShipment() {
			return false
		}
		return ret.Status == domain.ReturnApproved ||
			(ret.Status == domain.ReturnShipping && ret.DeliveredToShopAt == nil)
	}, limit), nil
}

func (r *ReturnRepo) UpdateIfStatus(_ context.Context, _ pgx.Tx, ret *domain.ReturnRequest, from domain.ReturnStatus) (bool, error) {
	var changed bool
	err := r.s.write(func(d *state) error {
		stored, ok := d.returns[ret.ID]
		if !ok || stored.Status != from {
			return nil
		}
		d.returns[ret.ID] = *cloneReturn(*ret)
		changed = true
		return nil
	})
	return changed, err
}

var _ ports.ReturnRepository = (*ReturnRepo)(nil)
