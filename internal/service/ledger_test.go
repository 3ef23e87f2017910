package service

import (
	"testing"
	"time"

	"marketplace-settlement/internal/core/domain"
	"marketplace-settlement/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertLedgerBalanced checks that every stored balance equals the sum of its
// transaction rows.
func assertLedgerBalanced(t *testing.T, w *world, walletIDs []uuid.UUID, storeIDs []uuid.UUID) {
	t.Helper()

	for _, id := range walletIDs {
		rows, err := w.db.WalletTransactions().ListByWallet(w.ctx, id)
		require.NoError(t, err)
		var sum int64
		for _, r := range rows {
			sum += r.Amount
		}
		assert.Equal(t, w.walletBalance(id), sum, "customer wallet %s", id)
	}

	for _, storeID := range storeIDs {
		sw := w.storeWallet(storeID)
		rows, err := w.db.StoreWalletTransactions().ListByWallet(w.ctx, sw.ID)
		require.NoError(t, err)
		var available, pending, deposit int64
		for _, r := range rows {
			available += r.AvailableDelta
			pending += r.PendingDelta
			deposit += r.DepositDelta
		}
		assert.Equal(t, sw.AvailableBalance, available, "store %s available", storeID)
		assert.Equal(t, sw.PendingBalance, pending, "store %s pending", storeID)
		assert.Equal(t, sw.DepositBalance, deposit, "store %s deposit", storeID)
	}

	p, err := w.db.PlatformWallet().Get(w.ctx)
	require.NoError(t, err)
	rows, err := w.db.PlatformTransactions().ListByWallet(w.ctx, p.ID)
	require.NoError(t, err)
	var sum int64
	for _, r := range rows {
		sum += r.Amount
	}
	assert.Equal(t, p.Balance, sum, "platform wallet")
}

func TestLedger_BalancesMatchTransactionsAfterMixedActivity(t *testing.T) {
	s := newReturnScenario(t)
	w := s.world
	assertLedgerBalanced(t, w, []uuid.UUID{s.wallet.ID}, []uuid.UUID{s.storeID})

	r := s.open(t)
	_, err := s.returns.RefundWithoutReturn(s.ctx, r.ID, s.shop)
	require.NoError(t, err)
	_, err = w.eligibility.ProcessReturnOutcomes(w.ctx)
	require.NoError(t, err)

	_, err = w.wallets.Withdraw(w.ctx, ports.WalletMutation{WalletID: s.wallet.ID, Amount: 100_000, Note: "cash out"})
	require.NoError(t, err)

	second, _ := w.order(s.wallet.CustomerID, s.storeID, 150_000)
	w.pay(second, 150_000, domain.PaymentMethodWallet)
	w.deliver(second, s.delivered)

	_, err = w.wallets.ApplyPaymentEvent(w.ctx, domain.PaymentEvent{
		ExternalRef: "gw-retry",
		OrderID:     s.order.ID,
		Amount:      400_000,
		Status:      domain.PaymentEventPaid,
		Method:      domain.PaymentMethodGateway,
	})
	require.NoError(t, err)

	_, err = w.db.Orders().SetRealShippingFee(w.ctx, s.order.ID, 35_000)
	require.NoError(t, err)
	_, err = w.eligibility.ReconcileShippingFees(w.ctx)
	require.NoError(t, err)
	assertLedgerBalanced(t, w, []uuid.UUID{s.wallet.ID}, []uuid.UUID{s.storeID})

	w.at(s.delivered.Add(8 * 24 * time.Hour))
	_, err = w.eligibility.EvaluateEligibility(w.ctx)
	require.NoError(t, err)
	bill, err := w.payouts.CreateBillForStore(w.ctx, s.storeID)
	require.NoError(t, err)
	_, err = w.payouts.MarkBillAsPaid(w.ctx, ports.MarkBillPaidRequest{BillID: bill.ID, AdminID: uuid.New(), TransferReference: "VCB-77"})
	require.NoError(t, err)

	_, err = w.storeWallets.Deposit(w.ctx, s.storeID, 50_000, "security deposit")
	require.NoError(t, err)
	_, err = w.storeWallets.Withdraw(w.ctx, s.storeID, 20_000, "cash out")
	require.NoError(t, err)

	assertLedgerBalanced(t, w, []uuid.UUID{s.wallet.ID}, []uuid.UUID{s.storeID})
	assert.Equal(t, int64(50_000), w.walletBalance(s.wallet.ID))
}
