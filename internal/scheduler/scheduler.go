package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"marketplace-settlement/config"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/pkg/metrics"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// Job is one periodic background pass. Run returns how many entities it changed.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) (int, error)
}

// Scheduler runs jobs on fixed intervals. A job never overlaps itself: a
// tick that would start while the previous run is still going is pushed
// back. With a JobLock configured, only one instance runs a job at a time.
type Scheduler struct {
	cron    gocron.Scheduler
	lock    ports.JobLock
	lockTTL time.Duration
	metrics *metrics.JobMetrics
	log     zerolog.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
	stopErr  error
}

// New creates a scheduler. lock may be nil to run without cross-instance exclusion.
func New(cfg config.SchedulerConfig, lock ports.JobLock, m *metrics.JobMetrics, log zerolog.Logger) (*Scheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	if !cfg.DistributedLock {
		lock = nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:    cron,
		lock:    lock,
		lockTTL: cfg.LockTTL,
		metrics: m,
		log:     log.With().Str("component", "scheduler").Logger(),
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Register adds jobs to the schedule. Call before Start.
func (s *Scheduler) Register(jobs ...Job) error {
	for _, job := range jobs {
		if job.Name == "" || job.Run == nil {
			return errors.New("job needs a name and a run func")
		}
		if job.Interval <= 0 {
			return fmt.Errorf("job %s: interval must be positive", job.Name)
		}
		_, err := s.cron.NewJob(
			gocron.DurationJob(job.Interval),
			gocron.NewTask(s.runJob, job),
			gocron.WithName(job.Name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return fmt.Errorf("register job %s: %w", job.Name, err)
		}
		s.log.Info().Str("job", job.Name).Dur("interval", job.Interval).Msg("job registered")
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Int("jobs", len(s.cron.Jobs())).Msg("scheduler started")
}

// Stop cancels running passes and waits for them to return. Safe to call twice.
func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() {
		s.cancel()
		if err := s.cron.Shutdown(); err != nil {
			s.stopErr = fmt.Errorf("shutdown scheduler: %w", err)
			return
		}
		s.log.Info().Msg("scheduler stopped")
	})
	return s.stopErr
}

// runJob executes one tick. Failures are logged and counted; the next tick retries.
func (s *Scheduler) runJob(job Job) {
	ctx := s.ctx
	logger := s.log.With().Str("job", job.Name).Logger()

	if s.lock != nil {
		token, ok, err := s.lock.Acquire(ctx, job.Name, s.lockTTL)
		if err != nil {
			logger.Error().Err(err).Msg("job lock unavailable, tick skipped")
			s.metrics.ObserveRun(job.Name, 0, err)
			return
		}
		if !ok {
			logger.Debug().Msg("job held by another instance")
			s.metrics.ObserveSkip(job.Name)
			return
		}
		defer func() {
			if err := s.lock.Release(context.WithoutCancel(ctx), job.Name, token); err != nil {
				logger.Warn().Err(err).Msg("release job lock")
			}
		}()
	}

	start := time.Now()
	n, err := job.Run(ctx)
	took := time.Since(start)

	s.metrics.ObserveRun(job.Name, took, err)
	s.metrics.AddItems(job.Name, n)

	if err != nil {
		logger.Error().Err(err).Int("items", n).Dur("took", took).Msg("job finished with errors")
		return
	}
	if n > 0 {
		logger.Info().Int("items", n).Dur("took", took).Msg("job finished")
	} else {
		logger.Debug().Dur("took", took).Msg("job idle")
	}
}
