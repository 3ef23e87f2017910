package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/internal/core/ports/mocks"
	"marketplace-settlement/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// eligibleStore sets up a paid, delivered order whose items passed the hold window.
func eligibleStore(t *testing.T, w *world, prices ...int64) (uuid.UUID, *domain.StoreOrder, []*domain.StoreOrderItem) {
	t.Helper()
	storeID := uuid.New()
	o, items := w.order(uuid.New(), storeID, prices...)
	var total int64
	for _, p := range prices {
		total += p
	}
	w.pay(o, total, domain.PaymentMethodGateway)
	delivered := time.Now().UTC().Add(-8 * 24 * time.Hour)
	w.deliver(o, delivered)
	_, err := w.eligibility.EvaluateEligibility(w.ctx)
	require.NoError(t, err)
	return storeID, o, items
}

func TestPayout_BillTotalsAndSettlement(t *testing.T) {
	w := newWorld(t)
	storeID, _, items := eligibleStore(t, w, 500_000, 300_000)

	bill, err := w.payouts.CreateBillForStore(w.ctx, storeID)
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutBillPending, bill.Status)
	assert.True(t, strings.HasPrefix(bill.BillCode, "PB-"))
	assert.Equal(t, int64(800_000), bill.TotalGross)
	assert.Equal(t, int64(40_000), bill.TotalPlatformFee)
	assert.Equal(t, int64(760_000), bill.TotalNetPayout)
	for _, it := range items {
		got := w.item(it.ID)
		assert.True(t, got.IsPayout)
		assert.Equal(t, &bill.ID, got.PayoutBillID)
	}

	adminID := uuid.New()
	paid, err := w.payouts.MarkBillAsPaid(w.ctx, ports.MarkBillPaidRequest{
		BillID:            bill.ID,
		AdminID:           adminID,
		TransferReference: "VCB-0001",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutBillPaid, paid.Status)
	assert.Equal(t, "VCB-0001", paid.TransferReference)
	assert.Equal(t, &adminID, paid.PaidBy)

	sw := w.storeWallet(storeID)
	assert.Equal(t, int64(0), sw.PendingBalance)
	assert.Equal(t, int64(760_000), sw.AvailableBalance)
	assert.Equal(t, int64(760_000), sw.TotalRevenue)
	assert.Equal(t, int64(0), w.platformBalance(), "custody fully paid out")

	stored, err := w.db.PayoutBills().GetByID(w.ctx, bill.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "VCB-0001", stored.TransferReference)

	detail, err := w.payouts.GetBill(w.ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, "VCB-0001", detail.Bill.TransferReference)
	assert.Len(t, detail.Items, 2)

	_, err = w.payouts.MarkBillAsPaid(w.ctx, ports.MarkBillPaidRequest{BillID: bill.ID, AdminID: adminID, TransferReference: "VCB-0002"})
	assert.True(t, apperror.HasCode(err, apperror.CodeBillAlreadyPaid))
	assert.Equal(t, int64(760_000), w.storeWallet(storeID).AvailableBalance)
}

func TestPayout_OneOpenBillPerStore(t *testing.T) {
	w := newWorld(t)
	storeID, _, _ := eligibleStore(t, w, 100_000)

	_, err := w.payouts.CreateBillForStore(w.ctx, storeID)
	require.NoError(t, err)

	_, err = w.payouts.CreateBillForStore(w.ctx, storeID)
	assert.True(t, apperror.HasCode(err, apperror.CodeOpenBillExists))

	_, err = w.payouts.CreateBillForStore(w.ctx, uuid.New())
	assert.True(t, apperror.HasCode(err, apperror.CodeNothingToBill))
}

func TestPayout_ConcurrentGetOrCreateYieldsOneBill(t *testing.T) {
	w := newWorld(t)
	storeID, _, _ := eligibleStore(t, w, 100_000, 200_000)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = map[uuid.UUID]int{}
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bill, err := w.payouts.GetOrCreateBillForStore(w.ctx, storeID)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			ids[bill.ID]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, 1)
	bills, total, err := w.payouts.ListBills(w.ctx, ports.PayoutBillListParams{StoreID: &storeID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(300_000), bills[0].TotalGross)
}

func TestPayout_ReviewThenPay(t *testing.T) {
	w := newWorld(t)
	storeID, _, _ := eligibleStore(t, w, 100_000)
	bill, err := w.payouts.CreateBillForStore(w.ctx, storeID)
	require.NoError(t, err)

	reviewed, err := w.payouts.MoveBillToReview(w.ctx, bill.ID, uuid.New(), "check bank details")
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutBillReview, reviewed.Status)

	_, err = w.payouts.MoveBillToReview(w.ctx, bill.ID, uuid.New(), "")
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidStateTransition))

	_, err = w.payouts.MarkBillAsPaid(w.ctx, ports.MarkBillPaidRequest{BillID: bill.ID, AdminID: uuid.New()})
	assert.True(t, apperror.HasCode(err, "VAL_001"), "transfer reference required")

	paid, err := w.payouts.MarkBillAsPaid(w.ctx, ports.MarkBillPaidRequest{BillID: bill.ID, AdminID: uuid.New(), TransferReference: "TCB-9"})
	require.NoError(t, err)
	assert.Equal(t, "check bank details", paid.AdminNote)

	_, err = w.payouts.MoveBillToReview(w.ctx, bill.ID, uuid.New(), "")
	assert.True(t, apperror.HasCode(err, apperror.CodeBillAlreadyPaid))

	// Paying closed the bill; new eligible items may be billed again.
	_, err = w.payouts.CreateBillForStore(w.ctx, storeID)
	assert.True(t, apperror.HasCode(err, apperror.CodeNothingToBill))
}

func TestPayout_ShippingDeductions(t *testing.T) {
	w := newWorld(t)
	storeID, o, _ := eligibleStore(t, w, 400_000)
	_, err := w.db.Orders().SetRealShippingFee(w.ctx, o.ID, 40_000)
	require.NoError(t, err)
	_, err = w.eligibility.ReconcileShippingFees(w.ctx)
	require.NoError(t, err)
	require.Equal(t, int64(380_000-10_000), w.storeWallet(storeID).PendingBalance)

	bill, err := w.payouts.CreateBillForStore(w.ctx, storeID)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), bill.TotalShippingOrderFee)
	assert.Equal(t, int64(400_000-20_000-10_000), bill.TotalNetPayout)

	_, err = w.payouts.MarkBillAsPaid(w.ctx, ports.MarkBillPaidRequest{BillID: bill.ID, AdminID: uuid.New(), TransferReference: "ref"})
	require.NoError(t, err)
	sw := w.storeWallet(storeID)
	assert.Equal(t, int64(0), sw.PendingBalance)
	assert.Equal(t, int64(370_000), sw.AvailableBalance)
}

func TestPayout_GenerateForAllStores(t *testing.T) {
	w := newWorld(t)
	eligibleStore(t, w, 100_000)
	eligibleStore(t, w, 50_000, 50_000)

	n, err := w.payouts.GenerateBillsForAllStores(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, w.audit.entries, 2)
	assert.Equal(t, domain.AuditActionGenerateBill, w.audit.entries[0].Action)

	n, err = w.payouts.GenerateBillsForAllStores(w.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPayout_MarkPaid_EncryptionFailureTouchesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	enc := mocks.NewMockEncryptionService(ctrl)
	transactor := mocks.NewMockDBTransactor(ctrl)
	svc := NewPayoutService(mocks.NewMockPayoutBillRepository(ctrl), mocks.NewMockOrderItemRepository(ctrl),
		mocks.NewMockStoreWalletRepository(ctrl), mocks.NewMockShippingOrderFeeRepository(ctrl),
		mocks.NewMockReturnShippingFeeRepository(ctrl), mocks.NewMockStoreWalletService(ctrl),
		mocks.NewMockPlatformWalletService(ctrl), enc, mocks.NewMockAuditService(ctrl), transactor, newTestLogger())

	enc.EXPECT().Encrypt("ref").Return("", errors.New("hsm offline"))

	_, err := svc.MarkBillAsPaid(context.Background(), ports.MarkBillPaidRequest{BillID: uuid.New(), TransferReference: "ref"})
	assert.True(t, apperror.HasCode(err, "SYS_002"))
}

func TestPayout_MarkPaid_CanceledBill(t *testing.T) {
	ctrl := gomock.NewController(t)
	enc := mocks.NewMockEncryptionService(ctrl)
	bills := mocks.NewMockPayoutBillRepository(ctrl)
	transactor := mocks.NewMockDBTransactor(ctrl)
	svc := NewPayoutService(bills, mocks.NewMockOrderItemRepository(ctrl),
		mocks.NewMockStoreWalletRepository(ctrl), mocks.NewMockShippingOrderFeeRepository(ctrl),
		mocks.NewMockReturnShippingFeeRepository(ctrl), mocks.NewMockStoreWalletService(ctrl),
		mocks.NewMockPlatformWalletService(ctrl), enc, mocks.NewMockAuditService(ctrl), transactor, newTestLogger())

	billID := uuid.New()
	enc.EXPECT().Encrypt("ref").Return("sealed", nil)
	transactor.EXPECT().Begin(gomock.Any()).Return(mockTx{}, nil)
	bills.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), billID).Return(&domain.PayoutBill{ID: billID, Status: domain.PayoutBillCanceled}, nil)

	_, err := svc.MarkBillAsPaid(context.Background(), ports.MarkBillPaidRequest{BillID: billID, TransferReference: "ref"})
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidStateTransition))
}
