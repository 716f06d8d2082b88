package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/futbolpath/futbolpath/internal/api"
	"github.com/futbolpath/futbolpath/internal/config"
	"github.com/futbolpath/futbolpath/internal/db"
	"github.com/futbolpath/futbolpath/internal/db/migrations"
	"github.com/futbolpath/futbolpath/internal/dbpool"
	"github.com/futbolpath/futbolpath/internal/graph"
	"github.com/futbolpath/futbolpath/internal/service"
	"github.com/futbolpath/futbolpath/internal/store"
	"github.com/futbolpath/futbolpath/internal/watch"
)

const shutdownTimeout = 15 * time.Second

// entityStore is what the server needs from either backend.
type entityStore interface {
	service.EntityStore
	api.HealthChecker
}

type backend struct {
	store  entityStore
	sqlite *store.SQLiteStore
	close  func()
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the futbolpath API server",
		Long:  "Run the futbolpath API server. Configuration is read from the environment.",
		Args:  cobra.NoArgs,
		// The server does not talk to itself through the client.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, cfg.NewLogger())
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	log.WithFields(logrus.Fields{
		"version":     config.Version,
		"data_source": cfg.DataSource,
	}).Info("starting futbolpath")

	be, err := openBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer be.close()

	policy, err := graph.ParseSelfLoopPolicy(cfg.SelfLoopPolicy)
	if err != nil {
		return err
	}

	cache := graph.NewCache(be.store, graph.WithLogger(log), graph.WithSelfLoopPolicy(policy))
	limits := graph.Limits{MaxDepth: cfg.MaxSearchDepth, Timeout: cfg.SearchTimeout}

	g, gctx := errgroup.WithContext(ctx)

	apiSrv := &http.Server{
		Addr: cfg.Addr(),
		Handler: api.NewRouter(gctx, &api.RouterDeps{
			Log:         log,
			Paths:       service.NewPathService(cache, be.store, limits, log),
			Search:      service.NewSearchService(be.store, log),
			Graph:       cache,
			Store:       be.store,
			CORSOrigins: cfg.CORSOrigins,
			Version:     config.Version,
			EnableHSTS:  cfg.EnableHSTS,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.SearchTimeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	diagSrv := &http.Server{
		Addr:              cfg.MetricsAddr(),
		Handler:           api.NewDiagnosticsRouter(cfg.EnablePprof),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error { return listen(apiSrv, "api", log) })
	g.Go(func() error { return listen(diagSrv, "diagnostics", log) })

	if cfg.EagerGraphBuild {
		g.Go(func() error {
			warmGraph(gctx, cache, log)
			return nil
		})
	}

	if cfg.WatchDataFile && be.sqlite != nil {
		w := watch.NewDataFileWatcher(cfg.SQLitePath, 0, func(ctx context.Context) {
			be.sqlite.DropIdleConns()
			cache.Invalidate()
			warmGraph(ctx, cache, log)
		}, log)

		g.Go(func() error { return w.Run(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()

		return errors.Join(apiSrv.Shutdown(shutdownCtx), diagSrv.Shutdown(shutdownCtx))
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	log.Info("server stopped")

	return nil
}

func openBackend(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*backend, error) {
	if cfg.DataSource == config.DataSourcePostgres {
		pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value(), cfg.DBMaxConns)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}

		if err := pool.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
			log.WithError(err).Warn("pool metrics unavailable")
		}

		if cfg.RunMigrations {
			if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
				pool.Close()
				return nil, err
			}

			log.WithField("schema_version", db.SchemaVersion()).Info("postgres schema up to date")
		}

		return &backend{store: store.NewPostgresStore(pool, log), close: pool.Close}, nil
	}

	s, err := store.OpenSQLite(ctx, cfg.SQLitePath, log)
	if err != nil {
		return nil, err
	}

	return &backend{
		store:  s,
		sqlite: s,
		close: func() {
			if err := s.Close(); err != nil {
				log.WithError(err).Warn("closing sqlite store")
			}
		},
	}, nil
}

func listen(srv *http.Server, name string, log *logrus.Logger) error {
	log.WithFields(logrus.Fields{"server": name, "addr": srv.Addr}).Info("listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server: %w", name, err)
	}

	return nil
}

// warmGraph builds the graph ahead of the first query. A failure is logged
// and the next query retries the build.
func warmGraph(ctx context.Context, cache *graph.Cache, log *logrus.Logger) {
	if _, err := cache.Get(ctx); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("graph warm-up failed")
	}
}
