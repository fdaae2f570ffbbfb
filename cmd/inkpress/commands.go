// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"inkpress/internal/cache"
	"inkpress/internal/config"
	"inkpress/internal/content"
	"inkpress/internal/database"
	"inkpress/internal/handlers"
	"inkpress/internal/middleware"
	"inkpress/internal/router"
	"inkpress/internal/search"
	"inkpress/internal/seed"
	"inkpress/internal/store"
)

// app carries what every subcommand needs after the root pre-run.
type app struct {
	envFile string
	cfg     *config.Config
}

func rootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "inkpress",
		Short:         "Headless CMS with an embedded record store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(a.envFile); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			a.cfg = cfg
			setupLogger(cfg)
			slog.Info("configuration loaded", "env", cfg.Env, "driver", cfg.StoreDriver)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending schema migrations and print the schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.migrate(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the demo data set into an empty store, or recount article totals",
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.seed(cmd.Context())
			},
		},
	)
	return root
}

// setupLogger outputs text in development and JSON everywhere else.
func setupLogger(cfg *config.Config) {
	var h slog.Handler
	if cfg.IsDev() {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(h))
}

// openService opens (and migrates) the store and builds the content service.
func (a *app) openService(ctx context.Context) (*content.Service, *database.Handle, error) {
	h := database.NewHandle(a.cfg.StoreDriver, a.cfg.DSN())
	db, err := h.Open(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return content.NewService(store.New(db)), h, nil
}

func (a *app) migrate(ctx context.Context) error {
	h := database.NewHandle(a.cfg.StoreDriver, a.cfg.DSN())
	db, err := h.Open(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer h.Close()

	v, err := database.SchemaVersion(ctx, db, h.Driver())
	if err != nil {
		return err
	}
	slog.Info("schema up to date", "version", v)
	return nil
}

func (a *app) seed(ctx context.Context) error {
	svc, h, err := a.openService(ctx)
	if err != nil {
		return err
	}
	defer h.Close()

	seeded, err := seed.Demo(ctx, svc)
	if err != nil {
		return err
	}
	if seeded {
		slog.Info("demo data inserted", "admin", seed.AdminEmail)
		return nil
	}
	// Already populated: repair any drifted article counts instead.
	if err := svc.RecountArticleCounts(ctx); err != nil {
		return err
	}
	slog.Info("article counts recomputed")
	return nil
}

// connectValkey returns nil when Valkey is not configured or unreachable.
// History and analytics are best-effort, so the server runs without them.
func (a *app) connectValkey(ctx context.Context) *redis.Client {
	if !a.cfg.ValkeyEnabled() {
		slog.Warn("valkey not configured, search history and analytics disabled")
		return nil
	}
	client, err := cache.ConnectValkey(ctx, a.cfg.ValkeyHost, a.cfg.ValkeyPort, a.cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, search history and analytics disabled", "error", err)
		return nil
	}
	return client
}

func (a *app) serve(ctx context.Context) error {
	svc, h, err := a.openService(ctx)
	if err != nil {
		return err
	}
	defer h.Close()

	if a.cfg.SeedDemo {
		if _, err := seed.Demo(ctx, svc); err != nil {
			return err
		}
	}

	var (
		history    *cache.History
		popular    *cache.Popular
		engineOpts []search.EngineOption
	)
	if client := a.connectValkey(ctx); client != nil {
		defer client.Close()
		history = cache.NewHistory(client, "")
		popular = cache.NewPopular(client, "")
		engineOpts = append(engineOpts,
			search.WithHistory(search.RecorderFunc(history.Add)),
			search.WithAnalytics(search.RecorderFunc(popular.Track)),
		)
	}
	engine := search.NewEngine(svc, engineOpts...)
	defer engine.Close()

	var limiter *middleware.RateLimiter
	if a.cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(a.cfg.RateLimitRPS, a.cfg.RateLimitBurst)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr:         a.cfg.Addr(),
		Handler:      router.New(handlers.NewAPI(svc, engine, history, popular), limiter),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}
	slog.Info("shutdown signal received")

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	slog.Info("server stopped gracefully")
	return nil
}
