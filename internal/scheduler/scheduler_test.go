package scheduler

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"marketplace-settlement/config"
	rediscache "marketplace-settlement/internal/adapter/storage/redis"
	"marketplace-settlement/internal/core/ports/mocks"
	"marketplace-settlement/pkg/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		EligibilityInterval:   5 * time.Second,
		ReturnTimeoutInterval: time.Minute,
		PayoutCycleInterval:   24 * time.Hour,
		CarrierSyncInterval:   time.Minute,
		DistributedLock:       true,
		LockTTL:               time.Minute,
	}
}

type fixture struct {
	sched *Scheduler
	reg   *prometheus.Registry
	redis *miniredis.Miniredis
	lock  *rediscache.JobLock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	lock := rediscache.NewJobLock(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	reg := prometheus.NewRegistry()
	s, err := New(testConfig(), lock, metrics.NewJobMetrics(reg), zerolog.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Stop() })
	return &fixture{sched: s, reg: reg, redis: mr, lock: lock}
}

func (f *fixture) runs(t *testing.T, job, result string) float64 {
	t.Helper()
	mfs, err := f.reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != "settlement_job_runs_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelsMatch(m, map[string]string{"job": job, "result": result}) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func labelsMatch(m *dto.Metric, want map[string]string) bool {
	got := map[string]string{}
	for _, lp := range m.GetLabel() {
		got[lp.GetName()] = lp.GetValue()
	}
	for k, v := range want {
		if got[k] != v {
			return false
		}
	}
	return true
}

func TestRunJob_ReleasesLockAndRecordsRun(t *testing.T) {
	f := newFixture(t)
	var called int32
	job := Job{Name: "eligibility", Interval: time.Second, Run: func(ctx context.Context) (int, error) {
		atomic.AddInt32(&called, 1)
		assert.True(t, f.redis.Exists("mkt:joblock:eligibility"), "lock held while running")
		return 3, nil
	}}

	f.sched.runJob(job)

	assert.Equal(t, int32(1), atomic.LoadInt32(&called))
	assert.False(t, f.redis.Exists("mkt:joblock:eligibility"))
	assert.Equal(t, 1.0, f.runs(t, "eligibility", "success"))
}

func TestRunJob_SkipsWhenAnotherInstanceHoldsLock(t *testing.T) {
	f := newFixture(t)
	token, ok, err := f.lock.Acquire(context.Background(), "payout_cycle", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	job := Job{Name: "payout_cycle", Interval: time.Hour, Run: func(context.Context) (int, error) {
		t.Error("job must not run while locked")
		return 0, nil
	}}
	f.sched.runJob(job)

	assert.Equal(t, 1.0, f.runs(t, "payout_cycle", "skipped"))
	assert.True(t, f.redis.Exists("mkt:joblock:payout_cycle"), "other owner keeps its lock")
	require.NoError(t, f.lock.Release(context.Background(), "payout_cycle", token))
}

func TestRunJob_FailureIsCounted(t *testing.T) {
	f := newFixture(t)
	f.sched.runJob(Job{Name: "carrier_sync", Interval: time.Second, Run: func(context.Context) (int, error) {
		return 1, errors.New("carrier down")
	}})
	assert.Equal(t, 1.0, f.runs(t, "carrier_sync", "failure"))
	assert.False(t, f.redis.Exists("mkt:joblock:carrier_sync"))
}

func TestRunJob_LockStoreDown(t *testing.T) {
	f := newFixture(t)
	f.redis.SetError("ERR lock store unavailable")
	f.sched.runJob(Job{Name: "eligibility", Interval: time.Second, Run: func(context.Context) (int, error) {
		t.Error("job must not run without the lock")
		return 0, nil
	}})
	assert.Equal(t, 1.0, f.runs(t, "eligibility", "failure"))
}

func TestNew_LockDisabledByConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	lock := mocks.NewMockJobLock(ctrl) // no calls expected
	cfg := testConfig()
	cfg.DistributedLock = false

	s, err := New(cfg, lock, nil, zerolog.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Stop() })

	ran := false
	s.runJob(Job{Name: "x", Interval: time.Second, Run: func(context.Context) (int, error) {
		ran = true
		return 0, nil
	}})
	assert.True(t, ran)
}

func TestScheduler_RunsRegisteredJobs(t *testing.T) {
	f := newFixture(t)
	var ticks int32
	require.NoError(t, f.sched.Register(Job{
		Name:     "tick",
		Interval: 20 * time.Millisecond,
		Run: func(context.Context) (int, error) {
			atomic.AddInt32(&ticks, 1)
			return 1, nil
		},
	}))
	f.sched.Start()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&ticks) >= 2 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, f.sched.Stop())
}

func TestScheduler_RegisterValidates(t *testing.T) {
	f := newFixture(t)
	noop := func(context.Context) (int, error) { return 0, nil }

	assert.Error(t, f.sched.Register(Job{Interval: time.Second, Run: noop}))
	assert.Error(t, f.sched.Register(Job{Name: "x", Run: noop}))
	assert.Error(t, f.sched.Register(Job{Name: "x", Interval: time.Second}))
}
