// Package acquire fetches the product set for a page: one query to the
// configured source, falling back to the compiled-in catalog when the source
// fails or has no rows.
package acquire

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"storefront/catalog"
	"storefront/models"
	"storefront/source"
)

// Query describes one page's data needs.
type Query struct {
	Name     string
	Limit    int
	Fallback func() []models.Product
}

// Featured is the landing page query: the first limit rows, defaulting to
// the three built-in shoes.
func Featured(limit int) Query {
	return Query{Name: "featured", Limit: limit, Fallback: catalog.Featured}
}

// Catalog is the shop page query: every row, defaulting to the built-in shop list.
func Catalog() Query {
	return Query{Name: "catalog", Fallback: catalog.Shop}
}

type Result struct {
	Query    string
	Products []models.Product
	Outcome  Outcome
}

func (r Result) FromFallback() bool {
	_, ok := r.Outcome.(Ok)
	return !ok
}

// Source is "remote" or "fallback".
func (r Result) Source() string {
	return r.Outcome.Label()
}

type Pipeline struct {
	source  source.Source
	logger  zerolog.Logger
	timeout time.Duration
}

type Option func(*Pipeline)

func WithLogger(l zerolog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithTimeout bounds each query. Zero leaves the transport's own timeouts in charge.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.timeout = d }
}

func New(src source.Source, opts ...Option) *Pipeline {
	p := &Pipeline{source: src, logger: log.Logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Acquire performs exactly one source query and never fails: errors are
// logged and replaced by the query's fallback list.
func (p *Pipeline) Acquire(ctx context.Context, q Query) Result {
	records, err := p.fetch(ctx, q.Limit)
	outcome := Classify(records, err)

	var fallback []models.Product
	if _, ok := outcome.(Ok); !ok && q.Fallback != nil {
		fallback = q.Fallback()
	}

	switch o := outcome.(type) {
	case Failed:
		p.logger.Error().Err(o.Reason).Str("query", q.Name).Int("limit", q.Limit).
			Msg("fetching products failed, serving fallback catalog")
	case Empty:
		p.logger.Info().Str("query", q.Name).Msg("product source returned no rows, serving fallback catalog")
	case Ok:
		for i, rec := range o.Records {
			if missing := rec.Missing(); len(missing) > 0 {
				p.logger.Warn().Str("query", q.Name).Int("index", i).Str("id", rec.ID.String()).
					Str("missing", strings.Join(missing, ",")).Msg("product record is incomplete")
			}
		}
	}

	return Result{
		Query:    q.Name,
		Products: Resolve(outcome, fallback),
		Outcome:  outcome,
	}
}

func (p *Pipeline) fetch(ctx context.Context, limit int) (records []models.Product, err error) {
	if p.source == nil {
		return nil, source.ErrNotConfigured
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			records, err = nil, fmt.Errorf("product source panicked: %v", r)
		}
	}()
	return p.source.Products(ctx, limit)
}
