package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Store    StoreConfig
	Worker   WorkerConfig
	Notify   NotifyConfig
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"3000"`
	Env  string `env:"ENV" envDefault:"development"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"DB_NAME" envDefault:"tender_engine"`
}

// StoreConfig selects the record store. The memory driver keeps everything
// in process and skips the database entirely.
type StoreConfig struct {
	Driver string `env:"STORE_DRIVER" envDefault:"postgres"`
}

type WorkerConfig struct {
	RecheckInterval time.Duration `env:"RECHECK_INTERVAL" envDefault:"60s"`
}

type NotifyConfig struct {
	// WebhookURL receives notifications as JSON. Empty means log only.
	WebhookURL          string        `env:"NOTIFY_WEBHOOK_URL"`
	Timeout             time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`
	MinistryRecipientID string        `env:"MINISTRY_RECIPIENT_ID" envDefault:"procurement-committee"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}
	return Parse()
}

// Parse builds the config from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q: want %s or %s", c.Store.Driver, StoreDriverPostgres, StoreDriverMemory)
	}
	if c.Worker.RecheckInterval <= 0 {
		return fmt.Errorf("RECHECK_INTERVAL must be positive, got %s", c.Worker.RecheckInterval)
	}
	if c.Notify.Timeout <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT must be positive, got %s", c.Notify.Timeout)
	}
	if c.Notify.MinistryRecipientID == "" {
		return fmt.Errorf("MINISTRY_RECIPIENT_ID must not be empty")
	}
	return nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}
