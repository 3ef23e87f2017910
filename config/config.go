package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	AES       AESConfig       `mapstructure:"aes"`
	Log       LogConfig       `mapstructure:"log"`
	Policy    PolicyConfig    `mapstructure:"policy"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Carrier   CarrierConfig   `mapstructure:"carrier"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
}

type ServerConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	WorkerPort int    `mapstructure:"worker_port"` // worker's /health and /metrics
	Mode       string `mapstructure:"mode"`        // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key, seals bill transfer references
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// ShippingDeltaPolicy decides who absorbs the gap between the estimated and
// the real carrier fee of a delivered order.
type ShippingDeltaPolicy string

const (
	ShippingDeltaShop     ShippingDeltaPolicy = "shop"
	ShippingDeltaPlatform ShippingDeltaPolicy = "platform"
)

// PolicyConfig holds the settlement windows and timeouts.
type PolicyConfig struct {
	HoldWindow               time.Duration       `mapstructure:"hold_window"`
	AutoApproveAfter         time.Duration       `mapstructure:"auto_approve_after"`
	AutoCancelUnshippedAfter time.Duration       `mapstructure:"auto_cancel_unshipped_after"`
	AutoRefundAfter          time.Duration       `mapstructure:"auto_refund_after"`
	PickupTimeout            time.Duration       `mapstructure:"pickup_timeout"`
	MaxPickupAttempts        int                 `mapstructure:"max_pickup_attempts"`
	ShippingDeltaPolicy      ShippingDeltaPolicy `mapstructure:"shipping_delta_policy"`
	SweepBatchSize           int                 `mapstructure:"sweep_batch_size"`
}

// SchedulerConfig holds the cadence of every background pass. The eligibility
// and return-timeout intervals are the defaults of their pass families;
// PassIntervals overrides a single pass by job name.
type SchedulerConfig struct {
	EligibilityInterval    time.Duration            `mapstructure:"eligibility_interval"`
	ReturnTimeoutInterval  time.Duration            `mapstructure:"return_timeout_interval"`
	PayoutCycleInterval    time.Duration            `mapstructure:"payout_cycle_interval"`
	CarrierSyncInterval    time.Duration            `mapstructure:"carrier_sync_interval"`
	PassIntervals          map[string]time.Duration `mapstructure:"pass_intervals"`
	CarrierSyncConcurrency int                      `mapstructure:"carrier_sync_concurrency"`
	DistributedLock        bool                     `mapstructure:"distributed_lock"`
	LockTTL                time.Duration            `mapstructure:"lock_ttl"`
}

// Interval returns the override for pass, or fallback.
func (c SchedulerConfig) Interval(pass string, fallback time.Duration) time.Duration {
	if d, ok := c.PassIntervals[pass]; ok && d > 0 {
		return d
	}
	return fallback
}

type CarrierConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	ShopID  string        `mapstructure:"shop_id"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type WebhookConfig struct {
	PaymentSecret string `mapstructure:"payment_secret"` // HMAC key shared with the payment gateway
	CarrierToken  string `mapstructure:"carrier_token"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MKT_.
// Nested keys use underscore: MKT_DATABASE_HOST, MKT_POLICY_HOLD_WINDOW, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.worker_port", 9091)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "marketplace")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "marketplace-settlement")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("policy.hold_window", "168h")
	v.SetDefault("policy.auto_approve_after", "48h")
	v.SetDefault("policy.auto_cancel_unshipped_after", "168h")
	v.SetDefault("policy.auto_refund_after", "72h")
	v.SetDefault("policy.pickup_timeout", "72h")
	v.SetDefault("policy.max_pickup_attempts", 2)
	v.SetDefault("policy.shipping_delta_policy", string(ShippingDeltaShop))
	v.SetDefault("policy.sweep_batch_size", 500)

	v.SetDefault("scheduler.eligibility_interval", "5s")
	v.SetDefault("scheduler.return_timeout_interval", "1m")
	v.SetDefault("scheduler.payout_cycle_interval", "24h")
	v.SetDefault("scheduler.carrier_sync_interval", "1m")
	v.SetDefault("scheduler.carrier_sync_concurrency", 8)
	v.SetDefault("scheduler.distributed_lock", true)
	v.SetDefault("scheduler.lock_ttl", "10m")

	v.SetDefault("carrier.base_url", "https://dev-online-gateway.ghn.vn")
	v.SetDefault("carrier.token", "")
	v.SetDefault("carrier.shop_id", "")
	v.SetDefault("carrier.timeout", "10s")

	v.SetDefault("webhook.payment_secret", "")
	v.SetDefault("webhook.carrier_token", "")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MKT_DATABASE_HOST -> database.host
	v.SetEnvPrefix("MKT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Policy.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects policy values that would stall or corrupt settlement.
func (p PolicyConfig) Validate() error {
	if p.HoldWindow <= 0 {
		return fmt.Errorf("policy.hold_window must be positive")
	}
	if p.MaxPickupAttempts < 1 {
		return fmt.Errorf("policy.max_pickup_attempts must be at least 1")
	}
	switch p.ShippingDeltaPolicy {
	case ShippingDeltaShop, ShippingDeltaPlatform:
	default:
		return fmt.Errorf("policy.shipping_delta_policy %q is not supported", p.ShippingDeltaPolicy)
	}
	return nil
}
