package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepo struct{ s *Store }

func (r *OrderRepo) Create(_ context.Context, o *domain.StoreOrder) error {
	return r.s.autocommit(func(d *state) error {
		if _, ok := d.orders[o.ID]; ok {
			return fmt.Errorf("insert store order: duplicate id %s", o.ID)
		}
		d.orders[o.ID] = *o
		return nil
	})
}

func (r *OrderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.StoreOrder, error) {
	var out *domain.StoreOrder
	r.s.read(func(d *state) {
		if o, ok := d.orders[id]; ok {
			out = &o
		}
	})
	return out, nil
}

func (r *OrderRepo) GetByCarrierOrderCode(_ context.Context, code string) (*domain.StoreOrder, error) {
	var out *domain.StoreOrder
	r.s.read(func(d *state) {
		for _, o := range d.orders {
			if code != "" && o.CarrierOrderCode == code {
				out = &o
				return
			}
		}
	})
	return out, nil
}

func (r *OrderRepo) ListInTransit(_ context.Context, limit int) ([]domain.StoreOrder, error) {
	var out []domain.StoreOrder
	r.s.read(func(d *state) {
		for _, o := range d.orders {
			if o.CarrierOrderCode == "" {
				continue
			}
			if o.Status == domain.OrderStatusConfirmed || o.Status == domain.OrderStatusShipping {
				out = append(out, o)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.Before(out[j].UpdatedAt) })
	return truncate(out, limit), nil
}

func (r *OrderRepo) ListFeeUnreconciled(_ context.Context, limit int) ([]domain.StoreOrder, error) {
	var out []domain.StoreOrder
	r.s.read(func(d *state) {
		for _, o := range d.orders {
			if o.Status != domain.OrderStatusDelivered || o.ShippingFeeReal == nil {
				continue
			}
			if !d.hasShippingFee(o.ID) {
				out = append(out, o)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return timeOrZero(out[i].DeliveredAt).Before(timeOrZero(out[j].DeliveredAt)) })
	return truncate(out, limit), nil
}

func (r *OrderRepo) MarkShipping(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	var changed bool
	err := r.s.autocommit(func(d *state) error {
		o, ok := d.orders[id]
		if !ok || (o.Status != domain.OrderStatusPending && o.Status != domain.OrderStatusConfirmed) {
			return nil
		}
		o.Status = domain.OrderStatusShipping
		o.UpdatedAt = at
		d.orders[id] = o
		changed = true
		return nil
	})
	return changed, err
}

func (r *OrderRepo) MarkPaid(_ context.Context, _ pgx.Tx, id uuid.UUID, at time.Time) (bool, error) {
	var changed bool
	err := r.s.write(func(d *state) error {
		o, ok := d.orders[id]
		if !ok || o.PaidAt != nil {
			return nil
		}
		o.PaidAt = &at
		o.UpdatedAt = at
		d.orders[id] = o
		changed = true
		return nil
	})
	return changed, err
}

func (r *OrderRepo) MarkDelivered(_ context.Context, id uuid.UUID, deliveredAt time.Time) (bool, error) {
	var changed bool
	err := r.s.autocommit(func(d *state) error {
		o, ok := d.orders[id]
		if !ok || o.Status == domain.OrderStatusDelivered || o.Status == domain.OrderStatusCanceled {
			return nil
		}
		o.Status = domain.OrderStatusDelivered
		o.DeliveredAt = &deliveredAt
		o.UpdatedAt = deliveredAt
		d.orders[id] = o
		changed = true
		return nil
	})
	return changed, err
}

func (r *OrderRepo) SetRealShippingFee(_ context.Context, id uuid.UUID, fee int64) (bool, error) {
	var changed bool
	err := r.s.autocommit(func(d *state) error {
		o, ok := d.orders[id]
		if !ok || d.hasShippingFee(id) {
			return nil
		}
		o.ShippingFeeReal = &fee
		o.UpdatedAt = time.Now().UTC()
		d.orders[id] = o
		changed = true
		return nil
	})
	return changed, err
}

type OrderItemRepo struct{ s *Store }

func (r *OrderItemRepo) Create(_ context.Context, i *domain.StoreOrderItem) error {
	return r.s.autocommit(func(d *state) error {
		if _, ok := d.items[i.ID]; ok {
			return fmt.Errorf("insert order item: duplicate id %s", i.ID)
		}
		d.items[i.ID] = *i
		return nil
	})
}

func (r *OrderItemRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.StoreOrderItem, error) {
	var out *domain.StoreOrderItem
	r.s.read(func(d *state) {
		if i, ok := d.items[id]; ok {
			out = &i
		}
	})
	return out, nil
}

func (r *OrderItemRepo) filter(keep func(i domain.StoreOrderItem) bool) []domain.StoreOrderItem {
	var out []domain.StoreOrderItem
	r.s.read(func(d *state) {
		for _, i := range d.items {
			if keep(i) {
				out = append(out, i)
			}
		}
	})
	sort.Slice(out, func(a, b int) bool {
		if out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].ID.String() < out[b].ID.String()
		}
		return out[a].CreatedAt.Before(out[b].CreatedAt)
	})
	return out
}

func (r *OrderItemRepo) ListByOrder(_ context.Context, orderID uuid.UUID) ([]domain.StoreOrderItem, error) {
	return r.filter(func(i domain.StoreOrderItem) bool { return i.StoreOrderID == orderID }), nil
}

func (r *OrderItemRepo) ListByIDs(_ context.Context, ids []uuid.UUID) ([]domain.StoreOrderItem, error) {
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return r.filter(func(i domain.StoreOrderItem) bool { return want[i.ID] }), nil
}

func (r *OrderItemRepo) ListAwaitingEligibility(_ context.Context, deliveredBefore time.Time, limit int) ([]domain.StoreOrderItem, error) {
	var out []domain.StoreOrderItem
	delivered := make(map[uuid.UUID]time.Time)
	r.s.read(func(d *state) {
		for _, i := range d.items {
			if !i.AwaitingEligibility() {
				continue
			}
			o, ok := d.orders[i.StoreOrderID]
			if !ok || !o.IsDelivered() || o.DeliveredAt.After(deliveredBefore) {
				continue
			}
			delivered[i.ID] = *o.DeliveredAt
			out = append(out, i)
		}
	})
	sort.Slice(out, func(a, b int) bool {
		da, db := delivered[out[a].ID], delivered[out[b].ID]
		if !da.Equal(db) {
			return da.Before(db)
		}
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.Before(out[b].CreatedAt)
		}
		return out[a].ID.String() < out[b].ID.String()
	})
	return truncate(out, limit), nil
}

func (r *OrderItemRepo) ListMissingDeliveredAt(_ context.Context, limit int) ([]ports.DeliveredAtBackfill, error) {
	var out []ports.DeliveredAtBackfill
	r.s.read(func(d *state) {
		for _, i := range d.items {
			if i.DeliveredAt != nil {
				continue
			}
			if o, ok := d.orders[i.StoreOrderID]; ok && o.DeliveredAt != nil {
				out = append(out, ports.DeliveredAtBackfill{ItemID: i.ID, DeliveredAt: *o.DeliveredAt})
			}
		}
	})
	return truncate(out, limit), nil
}

func (r *OrderItemRepo) ListBillable(_ context.Context, _ pgx.Tx, storeID uuid.UUID) ([]domain.StoreOrderItem, error) {
	return r.filter(func(i domain.StoreOrderItem) bool { return i.StoreID == storeID && i.Billable() }), nil
}

func (r *OrderItemRepo) ListStoresWithBillable(_ context.Context) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, i := range r.filter(func(i domain.StoreOrderItem) bool { return i.Billable() }) {
		if !seen[i.StoreID] {
			seen[i.StoreID] = true
			ids = append(ids, i.StoreID)
		}
	}
	return ids, nil
}

// update applies fn to the item when guard holds and reports whether it did.
func (r *OrderItemRepo) update(commit func(func(d *state) error) error, id uuid.UUID, guard func(i domain.StoreOrderItem) bool, fn func(i *domain.StoreOrderItem)) (bool, error) {
	var changed bool
	err := commit(func(d *state) error {
		i, ok := d.items[id]
		if !ok || !guard(i) {
			return nil
		}
		fn(&i)
		d.items[id] = i
		changed = true
		return nil
	})
	return changed, err
}

func (r *OrderItemRepo) MarkEligible(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	return r.update(r.s.autocommit, id,
		func(i domain.StoreOrderItem) bool { return i.AwaitingEligibility() },
		func(i *domain.StoreOrderItem) {
			i.EligibleForPayout = true
			i.UpdatedAt = at
		})
}

func (r *OrderItemRepo) SetDeliveredAt(_ context.Context, id uuid.UUID, deliveredAt time.Time) (bool, error) {
	return r.update(r.s.autocommit, id,
		func(i domain.StoreOrderItem) bool { return i.DeliveredAt == nil },
		func(i *domain.StoreOrderItem) {
			i.DeliveredAt = &deliveredAt
			i.UpdatedAt = time.Now().UTC()
		})
}

func (r *OrderItemRepo) MarkPaidOut(_ context.Context, _ pgx.Tx, id uuid.UUID, billID uuid.UUID, at time.Time) (bool, error) {
	return r.update(r.s.write, id,
		func(i domain.StoreOrderItem) bool { return i.Billable() },
		func(i *domain.StoreOrderItem) {
			i.IsPayout = true
			i.PayoutBillID = &billID
			i.UpdatedAt = at
		})
}

func (r *OrderItemRepo) Exclude(_ context.Context, _ pgx.Tx, id uuid.UUID, at time.Time) (bool, error) {
	return r.update(r.s.write, id,
		func(i domain.StoreOrderItem) bool { return !i.PayoutExcluded && !i.IsPayout },
		func(i *domain.StoreOrderItem) {
			i.PayoutExcluded = true
			i.EligibleForPayout = false
			i.UpdatedAt = at
		})
}

func (d *state) hasShippingFee(orderID uuid.UUID) bool {
	for _, f := range d.shippingFees {
		if f.StoreOrderID == orderID {
			return true
		}
	}
	return false
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

var (
	_ ports.OrderRepository     = (*OrderRepo)(nil)
	_ ports.OrderItemRepository = (*OrderItemRepo)(nil)
)
