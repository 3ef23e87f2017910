package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "settlement"

// JobMetrics records runs of the background passes.
type JobMetrics struct {
	duration *prometheus.HistogramVec
	runs     *prometheus.CounterVec
	items    *prometheus.CounterVec
}

// NewJobMetrics registers the job metrics on reg. A nil registerer yields a
// no-op recorder.
func NewJobMetrics(reg prometheus.Registerer) *JobMetrics {
	if reg == nil {
		return &JobMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_duration_seconds",
		Help:      "Duration of background settlement passes in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"job"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_runs_total",
		Help:      "Background pass executions by outcome.",
	}, []string{"job", "result"})
	items := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_items_total",
		Help:      "Entities touched by background passes.",
	}, []string{"job"})
	reg.MustRegister(duration, runs, items)
	return &JobMetrics{duration: duration, runs: runs, items: items}
}

// ObserveRun records one pass execution.
func (m *JobMetrics) ObserveRun(job string, took time.Duration, err error) {
	if m == nil || m.duration == nil {
		return
	}
	label := jobLabel(job)
	m.duration.WithLabelValues(label).Observe(took.Seconds())
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.runs.WithLabelValues(label, result).Inc()
}

// ObserveSkip records a tick that did not run because another instance held the job.
func (m *JobMetrics) ObserveSkip(job string) {
	if m == nil || m.runs == nil {
		return
	}
	m.runs.WithLabelValues(jobLabel(job), "skipped").Inc()
}

// AddItems counts entities a pass changed.
func (m *JobMetrics) AddItems(job string, n int) {
	if m == nil || m.items == nil || n <= 0 {
		return
	}
	m.items.WithLabelValues(jobLabel(job)).Add(float64(n))
}

func jobLabel(job string) string {
	if job == "" {
		return "unknown"
	}
	return job
}
