package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"storefront/acquire"
	"storefront/config"
	"storefront/handlers"
	"storefront/handoff"
	"storefront/middleware"
	logx "storefront/pkg/logger"
	"storefront/server"
	"storefront/source"
	"storefront/views"
)

type app struct {
	cfg      *config.Config
	source   source.Source
	pipeline *acquire.Pipeline
}

func (a *app) Close() error {
	if c, ok := a.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func setup(envFile string) (*app, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, err
	}
	logx.Init(logx.LoggerOpts{Environment: cfg.Env()})

	if cfg.SourceDriver == config.DriverSupabase {
		info, err := source.InspectAnonKey(cfg.SupabaseAnonKey)
		if err != nil {
			return nil, fmt.Errorf("SUPABASE_ANON_KEY: %w", err)
		}
		if info.Expired(time.Now()) {
			logx.Warn().Time("expired_at", info.ExpiresAt).Msg("supabase anon key has expired, pages will use the fallback catalog")
		}
	}

	src, err := source.Open(cfg, &http.Client{})
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:      cfg,
		source:   src,
		pipeline: acquire.New(src, acquire.WithLogger(*logx.L()), acquire.WithTimeout(cfg.SourceTimeout)),
	}, nil
}

func runServe(cmd *cobra.Command, envFile string) error {
	a, err := setup(envFile)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if pinger, ok := a.source.(source.Pinger); ok {
		if err := pinger.Ping(ctx); err != nil {
			logx.Warn().Err(err).Str("driver", a.cfg.SourceDriver).Msg("product source unreachable, pages will use the fallback catalog")
		}
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handlers.Register(mux, handlers.Deps{
		Source:        a.source,
		Pipeline:      a.pipeline,
		Views:         renderer,
		Handoff:       handoff.Builder{BaseURL: a.cfg.HandoffBaseURL, Number: a.cfg.WhatsAppNumber},
		FeaturedLimit: a.cfg.FeaturedLimit,
	})
	handler := middleware.Chain(mux,
		middleware.RequestID(*logx.L()),
		middleware.Logging(),
		middleware.Recover(),
	)

	logx.Info().Str("driver", a.cfg.SourceDriver).Str("env", a.cfg.Env().String()).Msg("starting storefront")
	err = server.New(a.cfg.Addr(), handler, a.cfg.ShutdownTimeout, *logx.L()).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
