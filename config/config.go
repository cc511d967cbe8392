package config

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Source drivers.
const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverNone     = "none"
)

var (
	identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)
	digitsRe     = regexp.MustCompile(`^\d{6,15}$`)
)

type Config struct {
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      string        `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	SourceDriver    string        `envconfig:"SOURCE_DRIVER" default:"supabase"`
	SupabaseURL     string        `envconfig:"SUPABASE_URL"`
	SupabaseAnonKey string        `envconfig:"SUPABASE_ANON_KEY"`
	DBConnStr       string        `envconfig:"DB_CONN"`
	ProductsTable   string        `envconfig:"PRODUCTS_TABLE" default:"products"`
	FeaturedLimit   int           `envconfig:"FEATURED_LIMIT" default:"3"`
	SourceTimeout   time.Duration `envconfig:"SOURCE_TIMEOUT" default:"0s"`

	WhatsAppNumber string `envconfig:"WHATSAPP_NUMBER"`
	HandoffBaseURL string `envconfig:"HANDOFF_BASE_URL" default:"https://wa.me/"`
}

// LoadConfig reads the given dotenv files (missing ones are skipped), then the
// process environment, and validates the result.
func LoadConfig(dotenv ...string) (*Config, error) {
	for _, file := range dotenv {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	cfg.SourceDriver = strings.ToLower(strings.TrimSpace(cfg.SourceDriver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Env() Environment {
	return ParseEnvironment(c.Environment)
}

func (c *Config) Addr() string {
	return ":" + c.ServerPort
}

func (c *Config) Validate() error {
	switch c.SourceDriver {
	case DriverSupabase:
		if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
			return fmt.Errorf("SUPABASE_URL and SUPABASE_ANON_KEY are required for the %s driver", DriverSupabase)
		}
	case DriverPostgres, DriverSQLite:
		if c.DBConnStr == "" {
			return fmt.Errorf("DB_CONN is required for the %s driver", c.SourceDriver)
		}
	case DriverNone:
	default:
		return fmt.Errorf("unknown SOURCE_DRIVER %q", c.SourceDriver)
	}
	if !identifierRe.MatchString(c.ProductsTable) {
		return fmt.Errorf("PRODUCTS_TABLE %q is not a valid table name", c.ProductsTable)
	}
	if c.FeaturedLimit < 1 {
		return fmt.Errorf("FEATURED_LIMIT must be positive")
	}
	if c.SourceTimeout < 0 {
		return fmt.Errorf("SOURCE_TIMEOUT must not be negative")
	}
	if c.WhatsAppNumber != "" && !digitsRe.MatchString(c.WhatsAppNumber) {
		return fmt.Errorf("WHATSAPP_NUMBER must be 6 to 15 digits without separators")
	}
	if c.HandoffBaseURL == "" {
		return fmt.Errorf("HANDOFF_BASE_URL is required")
	}
	return nil
}
