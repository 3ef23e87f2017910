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
	"go.uber.org/multierr"
)

// PayoutServiceImpl implements ports.PayoutService.
type PayoutServiceImpl struct {
	billRepo       ports.PayoutBillRepository
	itemRepo       ports.OrderItemRepository
	storeWalletRep ports.StoreWalletRepository
	shippingFees   ports.ShippingOrderFeeRepository
	returnFees     ports.ReturnShippingFeeRepository
	storeWallets   ports.StoreWalletService
	platform       ports.PlatformWalletService
	encSvc         ports.EncryptionService
	audit          ports.AuditService
	transactor     ports.DBTransactor
	log            zerolog.Logger
}

// NewPayoutService creates a new PayoutServiceImpl.
func NewPayoutService(
	billRepo ports.PayoutBillRepository,
	itemRepo ports.OrderItemRepository,
	storeWalletRep ports.StoreWalletRepository,
	shippingFees ports.ShippingOrderFeeRepository,
	returnFees ports.ReturnShippingFeeRepository,
	storeWallets ports.StoreWalletService,
	platform ports.PlatformWalletService,
	encSvc ports.EncryptionService,
	audit ports.AuditService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *PayoutServiceImpl {
	return &PayoutServiceImpl{
		billRepo:       billRepo,
		itemRepo:       itemRepo,
		storeWalletRep: storeWalletRep,
		shippingFees:   shippingFees,
		returnFees:     returnFees,
		storeWallets:   storeWallets,
		platform:       platform,
		encSvc:         encSvc,
		audit:          audit,
		transactor:     transactor,
		log:            log.With().Str("component", "payout").Logger(),
	}
}

// CreateBillForStore bills every eligible item of the store. It fails when
// the store already has an open bill.
func (s *PayoutServiceImpl) CreateBillForStore(ctx context.Context, storeID uuid.UUID) (*domain.PayoutBill, error) {
	bill, _, err := s.createBill(ctx, storeID, false)
	return bill, err
}

// GetOrCreateBillForStore returns the store's open bill, or creates one.
func (s *PayoutServiceImpl) GetOrCreateBillForStore(ctx context.Context, storeID uuid.UUID) (*domain.PayoutBill, error) {
	bill, _, err := s.createBill(ctx, storeID, true)
	return bill, err
}

func (s *PayoutServiceImpl) createBill(ctx context.Context, storeID uuid.UUID, reuseOpen bool) (*domain.PayoutBill, bool, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// The store wallet row lock serializes bill generation per store.
	wallet, err := s.storeWalletRep.GetByStoreIDForUpdate(ctx, dbTx, storeID)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("lock store wallet: %w", err))
	}
	if wallet == nil {
		return nil, false, apperror.ErrNothingToBill()
	}

	open, err := s.billRepo.GetOpenByStore(ctx, dbTx, storeID)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("get open bill: %w", err))
	}
	if open != nil {
		if reuseOpen {
			return open, false, nil
		}
		return nil, false, apperror.ErrOpenBillExists()
	}

	items, err := s.itemRepo.ListBillable(ctx, dbTx, storeID)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("list billable items: %w", err))
	}
	if len(items) == 0 {
		return nil, false, apperror.ErrNothingToBill()
	}

	now := time.Now().UTC()
	bill := &domain.PayoutBill{
		ID:        uuid.New(),
		BillCode:  domain.NewBillCode(),
		StoreID:   storeID,
		Status:    domain.PayoutBillPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.billRepo.Create(ctx, dbTx, bill); err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("create bill: %w", err))
	}

	billed, err := s.attachItems(ctx, dbTx, bill, items, now)
	if err != nil {
		return nil, false, err
	}
	if billed == 0 {
		return nil, false, apperror.ErrNothingToBill()
	}
	if err := s.attachFees(ctx, dbTx, bill, now); err != nil {
		return nil, false, err
	}

	bill.Recalculate()
	if err := s.billRepo.UpdateTotals(ctx, dbTx, bill); err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("update bill totals: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("bill_id", bill.ID.String()).
		Str("bill_code", bill.BillCode).
		Str("store_id", storeID.String()).
		Int("items", billed).
		Int64("net", bill.TotalNetPayout).
		Msg("payout bill created")

	return bill, true, nil
}

// attachItems claims each item for the bill. An item another writer claimed
// first is skipped.
func (s *PayoutServiceImpl) attachItems(ctx context.Context, tx pgx.Tx, bill *domain.PayoutBill, items []domain.StoreOrderItem, now time.Time) (int, error) {
	var billed int
	for i := range items {
		item := &items[i]
		ok, err := s.itemRepo.MarkPaidOut(ctx, tx, item.ID, bill.ID, now)
		if err != nil {
			return 0, apperror.InternalError(fmt.Errorf("mark item %s paid out: %w", item.ID, err))
		}
		if !ok {
			s.log.Warn().Str("item_id", item.ID.String()).Msg("item no longer billable, skipped")
			continue
		}

		snap := domain.SnapshotItem(bill.ID, item, now)
		if err := s.billRepo.CreateItem(ctx, tx, &snap); err != nil {
			return 0, apperror.InternalError(fmt.Errorf("snapshot item %s: %w", item.ID, err))
		}
		bill.TotalGross += item.LineTotal
		bill.TotalPlatformFee += item.PlatformFeeAmount
		widenPeriod(bill, item)
		billed++
	}
	return billed, nil
}

func widenPeriod(bill *domain.PayoutBill, item *domain.StoreOrderItem) {
	at := item.CreatedAt
	if item.DeliveredAt != nil {
		at = *item.DeliveredAt
	}
	if bill.FromDate.IsZero() || at.Before(bill.FromDate) {
		bill.FromDate = at
	}
	if at.After(bill.ToDate) {
		bill.ToDate = at
	}
}

func (s *PayoutServiceImpl) attachFees(ctx context.Context, tx pgx.Tx, bill *domain.PayoutBill, now time.Time) error {
	shipping, err := s.shippingFees.ListUnbilled(ctx, tx, bill.StoreID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("list shipping fees: %w", err))
	}
	for _, fee := range shipping {
		ok, err := s.shippingFees.AttachToBill(ctx, tx, fee.ID, bill.ID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("attach shipping fee %s: %w", fee.ID, err))
		}
		if !ok {
			continue
		}
		if err := s.billRepo.CreateShippingFee(ctx, tx, &domain.PayoutShippingOrderFee{
			ID:            uuid.New(),
			BillID:        bill.ID,
			ShippingFeeID: fee.ID,
			StoreOrderID:  fee.StoreOrderID,
			Amount:        fee.Amount,
			CreatedAt:     now,
		}); err != nil {
			return apperror.InternalError(fmt.Errorf("snapshot shipping fee %s: %w", fee.ID, err))
		}
		bill.TotalShippingOrderFee += fee.Amount
	}

	returns, err := s.returnFees.ListUnbilled(ctx, tx, bill.StoreID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("list return fees: %w", err))
	}
	for _, fee := range returns {
		ok, err := s.returnFees.AttachToBill(ctx, tx, fee.ID, bill.ID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("attach return fee %s: %w", fee.ID, err))
		}
		if !ok {
			continue
		}
		if err := s.billRepo.CreateReturnShippingFee(ctx, tx, &domain.PayoutReturnShippingFee{
			ID:                  uuid.New(),
			BillID:              bill.ID,
			ReturnShippingFeeID: fee.ID,
			ReturnRequestID:     fee.ReturnRequestID,
			Amount:              fee.Amount,
			CreatedAt:           now,
		}); err != nil {
			return apperror.InternalError(fmt.Errorf("snapshot return fee %s: %w", fee.ID, err))
		}
		bill.TotalReturnShippingFee += fee.Amount
	}
	return nil
}

// GenerateBillsForAllStores runs the payout cycle: every store with billable
// items gets its open bill, created if needed.
func (s *PayoutServiceImpl) GenerateBillsForAllStores(ctx context.Context) (int, error) {
	stores, err := s.itemRepo.ListStoresWithBillable(ctx)
	if err != nil {
		return 0, fmt.Errorf("list stores with billable items: %w", err)
	}

	var (
		created int
		errs    error
	)
	for _, storeID := range stores {
		bill, isNew, err := s.createBill(ctx, storeID, true)
		if err != nil {
			if apperror.HasCode(err, apperror.CodeNothingToBill) {
				continue
			}
			s.log.Error().Err(err).Str("store_id", storeID.String()).Msg("bill generation failed")
			errs = multierr.Append(errs, fmt.Errorf("store %s: %w", storeID, err))
			continue
		}
		if !isNew {
			continue
		}
		created++
		s.audit.Log(ctx, &domain.AuditLog{
			ID:           uuid.New(),
			Action:       domain.AuditActionGenerateBill,
			ResourceType: "payout_bill",
			ResourceID:   bill.ID.String(),
			Details:      fmt.Sprintf(`{"store_id":%q,"net":%d}`, storeID, bill.TotalNetPayout),
			IPAddress:    domain.SystemActor.String(),
			CreatedAt:    time.Now().UTC(),
		})
	}
	return created, errs
}

// MoveBillToReview parks a pending bill for an admin check.
func (s *PayoutServiceImpl) MoveBillToReview(ctx context.Context, billID uuid.UUID, adminID uuid.UUID, note string) (*domain.PayoutBill, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	bill, err := s.billRepo.GetByIDForUpdate(ctx, dbTx, billID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock bill: %w", err))
	}
	if bill == nil {
		return nil, apperror.ErrNotFound("payout bill")
	}
	switch bill.Status {
	case domain.PayoutBillPending:
	case domain.PayoutBillPaid:
		return nil, apperror.ErrBillAlreadyPaid()
	default:
		return nil, apperror.ErrInvalidStateTransition(string(bill.Status), string(domain.PayoutBillReview))
	}

	bill.Status = domain.PayoutBillReview
	if note != "" {
		bill.AdminNote = note
	}
	bill.UpdatedAt = time.Now().UTC()
	ok, err := s.billRepo.UpdateStatus(ctx, dbTx, bill, domain.PayoutBillPending)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update bill status: %w", err))
	}
	if !ok {
		return nil, apperror.ErrInvalidStateTransition(string(domain.PayoutBillPending), string(domain.PayoutBillReview))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("bill_id", bill.ID.String()).Str("admin_id", adminID.String()).Msg("payout bill moved to review")
	return bill, nil
}

// MarkBillAsPaid settles a bill after the admin made the bank transfer:
// pending moves to available on the store wallet and the money leaves
// platform custody, all in one transaction.
func (s *PayoutServiceImpl) MarkBillAsPaid(ctx context.Context, req ports.MarkBillPaidRequest) (*domain.PayoutBill, error) {
	if req.TransferReference == "" {
		return nil, apperror.Validation("transfer_reference is required")
	}
	sealedRef, err := s.encSvc.Encrypt(req.TransferReference)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt transfer reference: %w", err))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	bill, err := s.billRepo.GetByIDForUpdate(ctx, dbTx, req.BillID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock bill: %w", err))
	}
	if bill == nil {
		return nil, apperror.ErrNotFound("payout bill")
	}
	switch bill.Status {
	case domain.PayoutBillPending, domain.PayoutBillReview:
	case domain.PayoutBillPaid:
		return nil, apperror.ErrBillAlreadyPaid()
	default:
		return nil, apperror.ErrInvalidStateTransition(string(bill.Status), string(domain.PayoutBillPaid))
	}

	now := time.Now().UTC()
	if err := s.settleStore(ctx, dbTx, bill, now); err != nil {
		return nil, err
	}
	if err := s.settlePlatform(ctx, dbTx, bill, now); err != nil {
		return nil, err
	}

	from := bill.Status
	bill.Status = domain.PayoutBillPaid
	bill.TransferReference = sealedRef
	bill.ReceiptImageURL = req.ReceiptImageURL
	if req.AdminNote != "" {
		bill.AdminNote = req.AdminNote
	}
	bill.PaidAt = &now
	bill.PaidBy = &req.AdminID
	bill.UpdatedAt = now
	ok, err := s.billRepo.UpdateStatus(ctx, dbTx, bill, from)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update bill status: %w", err))
	}
	if !ok {
		return nil, apperror.ErrInvalidStateTransition(string(from), string(domain.PayoutBillPaid))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("bill_id", bill.ID.String()).
		Str("store_id", bill.StoreID.String()).
		Str("admin_id", req.AdminID.String()).
		Int64("net", bill.TotalNetPayout).
		Msg("payout bill paid")

	bill.TransferReference = req.TransferReference
	return bill, nil
}

func (s *PayoutServiceImpl) settleStore(ctx context.Context, tx pgx.Tx, bill *domain.PayoutBill, now time.Time) error {
	var moves []*domain.StoreWalletTransaction
	if bill.TotalNetPayout != 0 {
		moves = append(moves, domain.NewStoreMovement(domain.StoreTxReleasePending, bill.TotalNetPayout, now).ForBill(bill.ID))
	}
	// Shipping-order deltas were charged to pending when reconciled; return
	// shipping is charged here.
	if bill.TotalReturnShippingFee != 0 {
		moves = append(moves, domain.NewStoreMovement(domain.StoreTxAdjustment, bill.TotalReturnShippingFee, now).ForBill(bill.ID))
	}
	for _, m := range moves {
		m.Note = "bill " + bill.BillCode
		if _, err := s.storeWallets.ApplyInTx(ctx, tx, bill.StoreID, m); err != nil {
			return err
		}
	}
	return nil
}

func (s *PayoutServiceImpl) settlePlatform(ctx context.Context, tx pgx.Tx, bill *domain.PayoutBill, now time.Time) error {
	note := "bill " + bill.BillCode
	rows := []*domain.PlatformTransaction{
		platformRow(domain.PlatformTxPayoutStore, -bill.TotalNetPayout, note),
		platformRow(domain.PlatformTxPlatformFee, -bill.TotalPlatformFee, note),
	}
	if d := bill.ShippingDeductions(); d != 0 {
		rows = append(rows, platformRow(domain.PlatformTxShippingFeeAdjust, -d, note))
	}
	for _, r := range rows {
		r.BillID = &bill.ID
		r.StoreID = &bill.StoreID
		r.CreatedAt = now
	}
	return s.platform.RecordInTx(ctx, tx, rows...)
}

// GetBill returns the bill with its frozen lines and the transfer reference in clear.
func (s *PayoutServiceImpl) GetBill(ctx context.Context, billID uuid.UUID) (*ports.PayoutBillDetail, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get bill: %w", err))
	}
	if bill == nil {
		return nil, apperror.ErrNotFound("payout bill")
	}

	if bill.TransferReference != "" {
		ref, err := s.encSvc.Decrypt(bill.TransferReference)
		if err != nil {
			s.log.Warn().Err(err).Str("bill_id", bill.ID.String()).Msg("cannot decrypt transfer reference")
		} else {
			bill.TransferReference = ref
		}
	}

	items, err := s.billRepo.ListItems(ctx, billID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list bill items: %w", err))
	}
	shipping, err := s.billRepo.ListShippingFees(ctx, billID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list bill shipping fees: %w", err))
	}
	returns, err := s.billRepo.ListReturnShippingFees(ctx, billID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list bill return fees: %w", err))
	}

	return &ports.PayoutBillDetail{
		Bill:               bill,
		Items:              items,
		ShippingFees:       shipping,
		ReturnShippingFees: returns,
	}, nil
}

func (s *PayoutServiceImpl) ListBills(ctx context.Context, params ports.PayoutBillListParams) ([]domain.PayoutBill, int64, error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list bills: %w", err))
	}
	return bills, total, nil
}
