// Package source reads product rows from wherever the storefront keeps them:
// a hosted Supabase table, a Postgres database or a local SQLite file.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"storefront/config"
	"storefront/models"
)

// ErrNotConfigured is returned by Unavailable for every query.
var ErrNotConfigured = errors.New("product source is not configured")

// Source answers SELECT * FROM products [LIMIT n]. A limit of zero means no limit.
type Source interface {
	Products(ctx context.Context, limit int) ([]models.Product, error)
}

// Pinger is implemented by sources that can check connectivity without reading rows.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Unavailable stands in when no backend is configured.
type Unavailable struct {
	Reason string
}

func (u Unavailable) Products(context.Context, int) ([]models.Product, error) {
	if u.Reason == "" {
		return nil, ErrNotConfigured
	}
	return nil, fmt.Errorf("%w: %s", ErrNotConfigured, u.Reason)
}

// Open builds the source selected by cfg.SourceDriver. The caller owns the
// returned source and should Close it when it implements io.Closer.
func Open(cfg *config.Config, client *http.Client) (Source, error) {
	switch cfg.SourceDriver {
	case config.DriverSupabase:
		return NewSupabase(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.ProductsTable, client)
	case config.DriverPostgres, config.DriverSQLite:
		return OpenSQL(cfg.SourceDriver, cfg.DBConnStr, cfg.ProductsTable)
	case config.DriverNone:
		return Unavailable{Reason: "SOURCE_DRIVER=none"}, nil
	default:
		return nil, fmt.Errorf("unknown source driver %q", cfg.SourceDriver)
	}
}
