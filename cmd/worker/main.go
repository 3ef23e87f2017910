package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace-settlement/config"
	httpHandler "marketplace-settlement/internal/adapter/http/handler"
	redisStorage "marketplace-settlement/internal/adapter/storage/redis"
	"marketplace-settlement/internal/app"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/internal/scheduler"
	"marketplace-settlement/pkg/logger"
	"marketplace-settlement/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load(os.Getenv("MKT_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty).With().Str("service", "worker").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize")
	}
	defer a.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sched, err := scheduler.New(cfg.Scheduler, redisStorage.NewJobLock(a.Redis), metrics.NewJobMetrics(reg), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheduler")
	}

	var bridge ports.ShippingBridge
	if a.CarrierActive {
		bridge = a.Bridge
	} else {
		log.Warn().Msg("carrier.token is empty, carrier status polling disabled")
	}
	if err := sched.Register(scheduler.SettlementJobs(cfg.Scheduler, a.Eligibility, a.Returns, a.Payouts, bridge)...); err != nil {
		log.Fatal().Err(err).Msg("Failed to register jobs")
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.GET("/health", httpHandler.HealthCheck(a.HealthCheckers...))
	router.GET("/metrics", httpHandler.Metrics(reg))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.WorkerPort)
	srv := &http.Server{Addr: addr, Handler: router, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()

	sched.Start()
	log.Info().Str("metrics_addr", addr).Bool("distributed_lock", cfg.Scheduler.DistributedLock).Msg("worker started")

	<-ctx.Done()
	log.Info().Msg("worker shutting down")

	if err := sched.Stop(); err != nil {
		log.Error().Err(err).Msg("scheduler stop")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("metrics server forced to shutdown")
	}
}
