package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobMetrics_RecordsRunsAndDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewJobMetrics(reg)

	m.ObserveRun("eligibility.evaluate", 250*time.Millisecond, nil)
	m.ObserveRun("eligibility.evaluate", 10*time.Millisecond, errors.New("boom"))
	m.AddItems("eligibility.evaluate", 3)
	m.AddItems("eligibility.evaluate", 0)
	m.ObserveSkip("eligibility.evaluate")

	mfs, err := reg.Gather()
	require.NoError(t, err)

	assert.Equal(t, 1.0, counterValue(t, mfs, "settlement_job_runs_total", map[string]string{"job": "eligibility.evaluate", "result": "success"}))
	assert.Equal(t, 1.0, counterValue(t, mfs, "settlement_job_runs_total", map[string]string{"job": "eligibility.evaluate", "result": "failure"}))
	assert.Equal(t, 1.0, counterValue(t, mfs, "settlement_job_runs_total", map[string]string{"job": "eligibility.evaluate", "result": "skipped"}))
	assert.Equal(t, 3.0, counterValue(t, mfs, "settlement_job_items_total", map[string]string{"job": "eligibility.evaluate"}))

	hist := findMetric(t, mfs, "settlement_job_duration_seconds", map[string]string{"job": "eligibility.evaluate"})
	assert.Equal(t, uint64(2), hist.GetHistogram().GetSampleCount())
	assert.Greater(t, hist.GetHistogram().GetSampleSum(), 0.0)
}

func TestJobMetrics_EmptyJobName(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewJobMetrics(reg)

	m.ObserveRun("", time.Millisecond, nil)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Equal(t, 1.0, counterValue(t, mfs, "settlement_job_runs_total", map[string]string{"job": "unknown", "result": "success"}))
}

func TestJobMetrics_NilSafe(t *testing.T) {
	var m *JobMetrics
	m.ObserveRun("x", time.Second, nil)
	m.AddItems("x", 1)
	m.ObserveSkip("x")

	noop := NewJobMetrics(nil)
	noop.ObserveRun("x", time.Second, nil)
	noop.AddItems("x", 1)
	noop.ObserveSkip("x")
}

func counterValue(t *testing.T, mfs []*dto.MetricFamily, name string, labels map[string]string) float64 {
	t.Helper()
	return findMetric(t, mfs, name, labels).GetCounter().GetValue()
}

func findMetric(t *testing.T, mfs []*dto.MetricFamily, name string, labels map[string]string) *dto.Metric {
	t.Helper()
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if hasLabels(metric.GetLabel(), labels) {
				return metric
			}
		}
	}
	t.Fatalf("metric %s%v not found", name, labels)
	return nil
}

func hasLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	matched := 0
	for _, p := range pairs {
		if v, ok := want[p.GetName()]; ok && v == p.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
