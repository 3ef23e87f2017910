// Package app assembles the settlement core from configuration.
package app

import (
	"context"
	"fmt"

	"marketplace-settlement/config"
	"marketplace-settlement/internal/adapter/carrier"
	pgStorage "marketplace-settlement/internal/adapter/storage/postgres"
	redisStorage "marketplace-settlement/internal/adapter/storage/redis"
	"marketplace-settlement/internal/core/ports"
	"marketplace-settlement/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// App holds the connections and services shared by the api and the worker.
type App struct {
	Pool  *pgxpool.Pool
	Redis *goredis.Client

	Signatures    *service.HMACSignatureService
	Tokens        *service.JWTTokenService
	Audit         ports.AuditService
	Wallets       *service.WalletServiceImpl
	StoreWallets  *service.StoreWalletServiceImpl
	Platform      *service.PlatformWalletServiceImpl
	Eligibility   *service.EligibilityServiceImpl
	Payouts       *service.PayoutServiceImpl
	Returns       *service.ReturnServiceImpl
	Bridge        *service.ShippingBridgeImpl
	CarrierActive bool

	HealthCheckers []ports.HealthChecker
}

// New connects to PostgreSQL and Redis, applies the schema, bootstraps the
// platform wallet and wires every service.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pgStorage.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	a, err := wire(ctx, cfg, pool, rdb, log)
	if err != nil {
		_ = rdb.Close()
		pool.Close()
		return nil, err
	}
	return a, nil
}

func wire(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, rdb *goredis.Client, log zerolog.Logger) (*App, error) {
	transactor := pgStorage.NewTransactor(pool)
	orders := pgStorage.NewOrderRepo(pool)
	items := pgStorage.NewOrderItemRepo(pool)
	returnsRepo := pgStorage.NewReturnRepo(pool)
	shippingFees := pgStorage.NewShippingOrderFeeRepo(pool)
	returnFees := pgStorage.NewReturnShippingFeeRepo(pool)
	platformTxs := pgStorage.NewPlatformTransactionRepo(pool)

	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		return nil, fmt.Errorf("init encryption: %w", err)
	}

	platform := service.NewPlatformWalletService(pgStorage.NewPlatformWalletRepo(pool), platformTxs, transactor, log)
	if _, err := platform.Bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("bootstrap platform wallet: %w", err)
	}

	storeWallets := service.NewStoreWalletService(pgStorage.NewStoreWalletRepo(pool), pgStorage.NewStoreWalletTransactionRepo(pool), transactor, log)
	wallets := service.NewWalletService(
		pgStorage.NewWalletRepo(pool),
		pgStorage.NewWalletTransactionRepo(pool),
		platformTxs,
		orders,
		items,
		pgStorage.NewIdempotencyRepo(pool),
		redisStorage.NewIdempotencyCache(rdb),
		storeWallets,
		platform,
		transactor,
		log,
	)
	eligibility := service.NewEligibilityService(orders, items, returnsRepo, shippingFees, storeWallets, platform, transactor, cfg.Policy, log)
	audit := service.NewAuditService(pgStorage.NewAuditRepository(pool), log)
	payouts := service.NewPayoutService(pgStorage.NewPayoutBillRepo(pool), items, pgStorage.NewStoreWalletRepo(pool),
		shippingFees, returnFees, storeWallets, platform, encSvc, audit, transactor, log)
	returns := service.NewReturnService(returnsRepo, orders, items, returnFees, wallets, eligibility, platform, transactor, cfg.Policy, log)

	// An explicit nil interface when no carrier is configured; the bridge
	// still applies webhook pushes.
	var carrierClient ports.CarrierClient
	if cfg.Carrier.Token != "" {
		carrierClient = carrier.NewGHNClient(cfg.Carrier, log)
	}
	bridge := service.NewShippingBridge(orders, returnsRepo, returnFees, carrierClient, transactor,
		cfg.Policy.SweepBatchSize, cfg.Scheduler.CarrierSyncConcurrency, log)

	return &App{
		Pool:           pool,
		Redis:          rdb,
		Signatures:     service.NewHMACSignatureService(),
		Tokens:         service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer),
		Audit:          audit,
		Wallets:        wallets,
		StoreWallets:   storeWallets,
		Platform:       platform,
		Eligibility:    eligibility,
		Payouts:        payouts,
		Returns:        returns,
		Bridge:         bridge,
		CarrierActive:  carrierClient != nil,
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
	}, nil
}

// Close releases the connections.
func (a *App) Close() {
	_ = a.Redis.Close()
	a.Pool.Close()
}
