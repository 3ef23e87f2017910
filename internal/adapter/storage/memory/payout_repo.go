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

type PayoutBillRepo struct{ s *Store }

func (r *PayoutBillRepo) Create(_ context.Context, _ pgx.Tx, b *domain.PayoutBill) error {
	return r.s.write(func(d *state) error {
		for _, existing := range d.bills {
			if existing.BillCode == b.BillCode {
				return fmt.Errorf("insert payout bill: duplicate bill code %s", b.BillCode)
			}
			if existing.StoreID == b.StoreID && existing.Status.IsOpen() && b.Status.IsOpen() {
				return fmt.Errorf("insert payout bill: store %s already has an open bill", b.StoreID)
			}
		}
		d.bills[b.ID] = *b
		return nil
	})
}

func (r *PayoutBillRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.PayoutBill, error) {
	var out *domain.PayoutBill
	r.s.read(func(d *state) {
		if b, ok := d.bills[id]; ok {
			out = &b
		}
	})
	return out, nil
}

func (r *PayoutBillRepo) GetByIDForUpdate(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*domain.PayoutBill, error) {
	return r.GetByID(ctx, id)
}

func (r *PayoutBillRepo) GetOpenByStore(_ context.Context, _ pgx.Tx, storeID uuid.UUID) (*domain.PayoutBill, error) {
	var out *domain.PayoutBill
	r.s.read(func(d *state) {
		for _, b := range d.bills {
			if b.StoreID == storeID && b.Status.IsOpen() {
				out = &b
				return
			}
		}
	})
	return out, nil
}

func (r *PayoutBillRepo) List(_ context.Context, params ports.PayoutBillListParams) ([]domain.PayoutBill, int64, error) {
	var all []domain.PayoutBill
	r.s.read(func(d *state) {
		for _, b := range d.bills {
			if params.StoreID != nil && b.StoreID != *params.StoreID {
				continue
			}
			if params.Status != nil && b.Status != *params.Status {
				continue
			}
			all = append(all, b)
		}
	})
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	page, size := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	start := (page - 1) * size
	if start >= len(all) {
		return nil, int64(len(all)), nil
	}
	end := min(start+size, len(all))
	return all[start:end], int64(len(all)), nil
}

func (r *PayoutBillRepo) UpdateTotals(_ context.Context, _ pgx.Tx, b *domain.PayoutBill) error {
	return r.s.write(func(d *state) error {
		stored, ok := d.bills[b.ID]
		if !ok {
			return fmt.Errorf("payout bill not found: %s", b.ID)
		}
		stored.TotalGross = b.TotalGross
		stored.TotalPlatformFee = b.TotalPlatformFee
		stored.TotalShippingOrderFee = b.TotalShippingOrderFee
		stored.TotalReturnShippingFee = b.TotalReturnShippingFee
		stored.TotalNetPayout = b.TotalNetPayout
		stored.FromDate = b.FromDate
		stored.ToDate = b.ToDate
		stored.UpdatedAt = b.UpdatedAt
		d.bills[b.ID] = stored
		return nil
	})
}

func (r *PayoutBillRepo) UpdateStatus(_ context.Context, _ pgx.Tx, b *domain.PayoutBill, from domain.PayoutBillStatus) (bool, error) {
	var changed bool
	err := r.s.write(func(d *state) error {
		stored, ok := d.bills[b.ID]
		if !ok || stored.Status != from {
			return nil
		}
		stored.Status = b.Status
		stored.TransferReference = b.TransferReference
		stored.ReceiptImageURL = b.ReceiptImageURL
		stored.AdminNote = b.AdminNote
		stored.PaidAt = b.PaidAt
		stored.PaidBy = b.PaidBy
		stored.UpdatedAt = b.UpdatedAt
		d.bills[b.ID] = stored
		changed = true
		return nil
	})
	return changed, err
}

func (r *PayoutBillRepo) CreateItem(_ context.Context, _ pgx.Tx, i *domain.PayoutBillItem) error {
	return r.s.write(func(d *state) error {
		for _, existing := range d.billItems {
			if existing.OrderItemID == i.OrderItemID {
				return fmt.Errorf("insert payout bill item: order item %s already billed", i.OrderItemID)
			}
		}
		d.billItems = append(d.billItems, *i)
		return nil
	})
}

func (r *PayoutBillRepo) CreateShippingFee(_ context.Context, _ pgx.Tx, f *domain.PayoutShippingOrderFee) error {
	return r.s.write(func(d *state) error {
		d.billShippingFees = append(d.billShippingFees, *f)
		return nil
	})
}

func (r *PayoutBillRepo) CreateReturnShippingFee(_ context.Context, _ pgx.Tx, f *domain.PayoutReturnShippingFee) error {
	return r.s.write(func(d *state) error {
		d.billReturnFees = append(d.billReturnFees, *f)
		return nil
	})
}

func (r *PayoutBillRepo) ListItems(_ context.Context, billID uuid.UUID) ([]domain.PayoutBillItem, error) {
	var out []domain.PayoutBillItem
	r.s.read(func(d *state) {
		for _, i := range d.billItems {
			if i.BillID == billID {
				out = append(out, i)
			}
		}
	})
	return out, nil
}

func (r *PayoutBillRepo) ListShippingFees(_ context.Context, billID uuid.UUID) ([]domain.PayoutShippingOrderFee, error) {
	var out []domain.PayoutShippingOrderFee
	r.s.read(func(d *state) {
		for _, f := range d.billShippingFees {
			if f.BillID == billID {
				out = append(out, f)
			}
		}
	})
	return out, nil
}

func (r *PayoutBillRepo) ListReturnShippingFees(_ context.Context, billID uuid.UUID) ([]domain.PayoutReturnShippingFee, error) {
	var out []domain.PayoutReturnShippingFee
	r.s.read(func(d *state) {
		for _, f := range d.billReturnFees {
			if f.BillID == billID {
				out = append(out, f)
			}
		}
	})
	return out, nil
}

type ShippingOrderFeeRepo struct{ s *Store }

func (r *ShippingOrderFeeRepo) Create(_ context.Context, _ pgx.Tx, f *domain.ShippingOrderFee) (bool, error) {
	var created bool
	err := r.s.write(func(d *state) error {
		if d.hasShippingFee(f.StoreOrderID) {
			return nil
		}
		d.shippingFees[f.ID] = *f
		created = true
		return nil
	})
	return created, err
}

func (r *ShippingOrderFeeRepo) ListUnbilled(_ context.Context, _ pgx.Tx, storeID uuid.UUID) ([]domain.ShippingOrderFee, error) {
	var out []domain.ShippingOrderFee
	r.s.read(func(d *state) {
		for _, f := range d.shippingFees {
			if f.StoreID == storeID && f.BillID == nil && f.ChargedTo == domain.FeePartyShop && f.Amount != 0 {
				out = append(out, f)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ShippingOrderFeeRepo) AttachToBill(_ context.Context, _ pgx.Tx, id uuid.UUID, billID uuid.UUID) (bool, error) {
	var changed bool
	err := r.s.write(func(d *state) error {
		f, ok := d.shippingFees[id]
		if !ok || f.BillID != nil {
			return nil
		}
		f.BillID = &billID
		d.shippingFees[id] = f
		changed = true
		return nil
	})
	return changed, err
}

type ReturnShippingFeeRepo struct{ s *Store }

func (r *ReturnShippingFeeRepo) Create(_ context.Context, _ pgx.Tx, f *domain.ReturnShippingFee) error {
	return r.s.write(func(d *state) error {
		for _, existing := range d.returnFees {
			if existing.ReturnRequestID == f.ReturnRequestID {
				return fmt.Errorf("insert return fee: return %s already has a fee", f.ReturnRequestID)
			}
		}
		d.returnFees[f.ID] = *f
		return nil
	})
}

func (r *ReturnShippingFeeRepo) GetByReturnID(_ context.Context, returnID uuid.UUID) (*domain.ReturnShippingFee, error) {
	var out *domain.ReturnShippingFee
	r.s.read(func(d *state) {
		for _, f := range d.returnFees {
			if f.ReturnRequestID == returnID {
				out = &f
				return
			}
		}
	})
	return out, nil
}

func (r *ReturnShippingFeeRepo) MarkPicked(_ context.Context, _ pgx.Tx, returnID uuid.UUID, at time.Time) (bool, error) {
	var changed bool
	err := r.s.write(func(d *state) error {
		for id, f := range d.returnFees {
			if f.ReturnRequestID != returnID || f.Picked {
				continue
			}
			f.Picked = true
			f.PickedAt = &at
			d.returnFees[id] = f
			changed = true
		}
		return nil
	})
	return changed, err
}

func (r *ReturnShippingFeeRepo) ListUnbilled(_ context.Context, _ pgx.Tx, storeID uuid.UUID) ([]domain.ReturnShippingFee, error) {
	var out []domain.ReturnShippingFee
	r.s.read(func(d *state) {
		for _, f := range d.returnFees {
			if f.StoreID == storeID && f.Picked && f.PaidByShop && f.BillID == nil {
				out = append(out, f)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return timeOrZero(out[i].PickedAt).Before(timeOrZero(out[j].PickedAt)) })
	return out, nil
}

func (r *ReturnShippingFeeRepo) AttachToBill(_ context.Context, _ pgx.Tx, id uuid.UUID, billID uuid.UUID) (bool, error) {
	var changed bool
	err := r.s.write(func(d *state) error {
		f, ok := d.returnFees[id]
		if !ok || f.BillID != nil {
			return nil
		}
		f.BillID = &billID
		d.returnFees[id] = f
		changed = true
		return nil
	})
	return changed, err
}

var (
	_ ports.PayoutBillRepository        = (*PayoutBillRepo)(nil)
	_ ports.ShippingOrderFeeRepository  = (*ShippingOrderFeeRepo)(nil)
	_ ports.ReturnShippingFeeRepository = (*ReturnShippingFeeRepo)(nil)
)
