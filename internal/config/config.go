// Package config holds the typed process configuration read from the
// environment. A .env file, when present, is loaded by the entry point before
// Load runs.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageSQLite   = "sqlite"
	StorageDynamoDB = "dynamodb"
)

type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"startlabx.db"`

	JWTSecret string `env:"JWT_SECRET"`

	OfferExpiryWindow  time.Duration `env:"OFFER_EXPIRY_WINDOW" envDefault:"720h"`
	OwnershipCacheTTL  time.Duration `env:"OWNERSHIP_CACHE_TTL" envDefault:"1m"`
	NotificationBuffer int           `env:"NOTIFICATION_BUFFER" envDefault:"256"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Redis    RedisConfig
	DynamoDB DynamoDBConfig
}

// RedisConfig enables notification fan-out when Addr is set.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// DynamoDBConfig is used when StorageDriver is "dynamodb". Local DynamoDB does
// not validate credentials, but the AWS SDK requires them.
type DynamoDBConfig struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`

	OffersTable        string `env:"EQUITY_OFFERS_TABLE" envDefault:"equity_offers"`
	CapTableTable      string `env:"CAP_TABLE_TABLE" envDefault:"cap_table_entries"`
	AllocationsTable   string `env:"CAP_TABLE_ALLOCATIONS_TABLE" envDefault:"cap_table_allocations"`
	StartupsTable      string `env:"STARTUPS_TABLE" envDefault:"startups"`
	NotificationsTable string `env:"NOTIFICATIONS_TABLE" envDefault:"notifications"`
}

// ParseEnv fills target from the environment.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the process configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	case StorageDynamoDB:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.OfferExpiryWindow <= 0 {
		return fmt.Errorf("OFFER_EXPIRY_WINDOW must be positive")
	}
	if c.NotificationBuffer < 1 {
		return fmt.Errorf("NOTIFICATION_BUFFER must be at least 1")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
