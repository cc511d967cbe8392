package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SOURCE_DRIVER", "none")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "products", cfg.ProductsTable)
	assert.Equal(t, 3, cfg.FeaturedLimit)
	assert.Equal(t, time.Duration(0), cfg.SourceTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://wa.me/", cfg.HandoffBaseURL)
	assert.Equal(t, Development, cfg.Env())
}

func TestLoadConfigReadsDotenv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("SOURCE_DRIVER=SQLite\nDB_CONN=file:test.db\nPORT=9090\n"), 0o600))
	t.Setenv("SOURCE_DRIVER", "")
	t.Setenv("DB_CONN", "")
	t.Setenv("PORT", "")
	os.Unsetenv("SOURCE_DRIVER")
	os.Unsetenv("DB_CONN")
	os.Unsetenv("PORT")

	cfg, err := LoadConfig(file, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.SourceDriver)
	assert.Equal(t, "file:test.db", cfg.DBConnStr)
	assert.Equal(t, "9090", cfg.ServerPort)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			SourceDriver:    DriverSupabase,
			SupabaseURL:     "https://example.supabase.co",
			SupabaseAnonKey: "key",
			ProductsTable:   "products",
			FeaturedLimit:   3,
			HandoffBaseURL:  "https://wa.me/",
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "valid", mutate: func(*Config) {}, ok: true},
		{name: "supabase without key", mutate: func(c *Config) { c.SupabaseAnonKey = "" }},
		{name: "postgres without dsn", mutate: func(c *Config) { c.SourceDriver = DriverPostgres }},
		{name: "postgres with dsn", mutate: func(c *Config) { c.SourceDriver = DriverPostgres; c.DBConnStr = "postgres://x" }, ok: true},
		{name: "none", mutate: func(c *Config) { c.SourceDriver = DriverNone; c.SupabaseURL = "" }, ok: true},
		{name: "unknown driver", mutate: func(c *Config) { c.SourceDriver = "mysql" }},
		{name: "table injection", mutate: func(c *Config) { c.ProductsTable = "products; drop table x" }},
		{name: "zero limit", mutate: func(c *Config) { c.FeaturedLimit = 0 }},
		{name: "negative timeout", mutate: func(c *Config) { c.SourceTimeout = -time.Second }},
		{name: "formatted number", mutate: func(c *Config) { c.WhatsAppNumber = "+91 98765 43210" }},
		{name: "plain number", mutate: func(c *Config) { c.WhatsAppNumber = "919876543210" }, ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, Production, ParseEnvironment(" Production "))
	assert.Equal(t, Staging, ParseEnvironment("staging"))
	assert.Equal(t, Development, ParseEnvironment("qa"))
	assert.True(t, Production.IsProduction())
}
