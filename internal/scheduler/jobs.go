package scheduler

import (
	"context"
	"time"

	"marketplace-settlement/config"
	"marketplace-settlement/internal/core/ports"
)

// Job names, also used as lock keys, metric labels and interval override keys.
const (
	JobSyncDeliveredAt = "sync_delivered_at"
	JobReturnOutcomes  = "return_outcomes"
	JobEligibility     = "eligibility"
	JobShippingFees    = "shipping_fee_reconcile"
	JobAutoApprove     = "return_auto_approve"
	JobAutoCancel      = "return_auto_cancel_unshipped"
	JobAutoRefund      = "return_auto_refund"
	JobPickupTimeout   = "return_pickup_timeout"
	JobPayoutCycle     = "payout_cycle"
	JobCarrierSync     = "carrier_sync"
)

// SettlementJobs builds the background passes of the settlement core, one
// independently scheduled job per pass.
// bridge may be nil when no carrier is configured; the sync job is then left out.
func SettlementJobs(
	cfg config.SchedulerConfig,
	eligibility ports.EligibilityService,
	returns ports.ReturnService,
	payouts ports.PayoutService,
	bridge ports.ShippingBridge,
) []Job {
	job := func(name string, family time.Duration, run func(ctx context.Context) (int, error)) Job {
		return Job{Name: name, Interval: cfg.Interval(name, family), Run: run}
	}

	jobs := []Job{
		job(JobSyncDeliveredAt, cfg.EligibilityInterval, eligibility.SyncDeliveredAt),
		job(JobReturnOutcomes, cfg.EligibilityInterval, eligibility.ProcessReturnOutcomes),
		job(JobEligibility, cfg.EligibilityInterval, eligibility.EvaluateEligibility),
		job(JobShippingFees, cfg.EligibilityInterval, eligibility.ReconcileShippingFees),

		job(JobAutoApprove, cfg.ReturnTimeoutInterval, returns.AutoApprovePendingReturns),
		job(JobAutoCancel, cfg.ReturnTimeoutInterval, returns.AutoCancelUnshippedReturns),
		job(JobAutoRefund, cfg.ReturnTimeoutInterval, returns.AutoRefundForUnresponsiveShop),
		job(JobPickupTimeout, cfg.ReturnTimeoutInterval, returns.AutoHandleGhnPickupTimeout),

		job(JobPayoutCycle, cfg.PayoutCycleInterval, payouts.GenerateBillsForAllStores),
	}
	if bridge != nil {
		jobs = append(jobs, job(JobCarrierSync, cfg.CarrierSyncInterval, bridge.SyncCarrierStatuses))
	}
	return jobs
}
