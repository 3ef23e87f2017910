package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-settlement/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func jobByName(t *testing.T, jobs []Job, name string) Job {
	t.Helper()
	for _, j := range jobs {
		if j.Name == name {
			return j
		}
	}
	t.Fatalf("job %s not found", name)
	return Job{}
}

func TestSettlementJobs_CarrierSyncOptional(t *testing.T) {
	ctrl := gomock.NewController(t)
	eligibility := mocks.NewMockEligibilityService(ctrl)
	returns := mocks.NewMockReturnService(ctrl)
	payouts := mocks.NewMockPayoutService(ctrl)

	jobs := SettlementJobs(testConfig(), eligibility, returns, payouts, nil)
	assert.Len(t, jobs, 9)

	jobs = SettlementJobs(testConfig(), eligibility, returns, payouts, mocks.NewMockShippingBridge(ctrl))
	require.Len(t, jobs, 10)
	assert.Equal(t, testConfig().CarrierSyncInterval, jobByName(t, jobs, JobCarrierSync).Interval)
}

func TestSettlementJobs_OnePassPerJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	eligibility := mocks.NewMockEligibilityService(ctrl)
	returns := mocks.NewMockReturnService(ctrl)
	cfg := testConfig()
	cfg.PassIntervals = map[string]time.Duration{JobAutoRefund: 10 * time.Minute}

	jobs := SettlementJobs(cfg, eligibility, returns, mocks.NewMockPayoutService(ctrl), nil)

	seen := map[string]bool{}
	for _, j := range jobs {
		assert.False(t, seen[j.Name], "duplicate job %s", j.Name)
		seen[j.Name] = true
	}
	assert.Equal(t, cfg.EligibilityInterval, jobByName(t, jobs, JobSyncDeliveredAt).Interval)
	assert.Equal(t, cfg.ReturnTimeoutInterval, jobByName(t, jobs, JobAutoApprove).Interval)
	assert.Equal(t, 10*time.Minute, jobByName(t, jobs, JobAutoRefund).Interval)

	eligibility.EXPECT().ProcessReturnOutcomes(gomock.Any()).Return(0, errors.New("db down"))
	eligibility.EXPECT().EvaluateEligibility(gomock.Any()).Return(5, nil)

	_, err := jobByName(t, jobs, JobReturnOutcomes).Run(context.Background())
	require.Error(t, err)
	n, err := jobByName(t, jobs, JobEligibility).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestSettlementJobs_ReturnPassesAreSeparate(t *testing.T) {
	ctrl := gomock.NewController(t)
	returns := mocks.NewMockReturnService(ctrl)
	jobs := SettlementJobs(testConfig(), mocks.NewMockEligibilityService(ctrl), returns, mocks.NewMockPayoutService(ctrl), nil)

	returns.EXPECT().AutoApprovePendingReturns(gomock.Any()).Return(1, nil)
	returns.EXPECT().AutoHandleGhnPickupTimeout(gomock.Any()).Return(2, nil)

	n, err := jobByName(t, jobs, JobAutoApprove).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = jobByName(t, jobs, JobPickupTimeout).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
