// Package app assembles the entity stores, their remote backend, the local
// mirror and the connectivity monitor from a Config.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"fieldservice/internal/adapter/persistence/mirror"
	"fieldservice/internal/adapter/persistence/repository"
	"fieldservice/internal/cache"
	"fieldservice/internal/config"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/infrastructure/connectivity"
	"fieldservice/internal/infrastructure/database"
	"fieldservice/internal/resilience"
	"fieldservice/internal/usecase"
)

type App struct {
	Config   config.Config
	Registry *usecase.Registry
	Pipeline *usecase.PipelineUseCase
	Queue    *mirror.SQLiteSyncQueue
	Monitor  *connectivity.Monitor

	logger  *slog.Logger
	closers []func() error
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{Config: cfg, logger: logger}

	mirrorDB, err := database.OpenSQLite(cfg.MirrorPath)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, mirrorDB.Close)
	if err := mirror.Migrate(ctx, mirrorDB); err != nil {
		_ = a.Close()
		return nil, err
	}

	remotes, err := a.remoteCollections(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Monitor = connectivity.NewMonitor(true, logger)
	a.Queue = mirror.NewSQLiteSyncQueue(mirrorDB)
	classifier := resilience.NewClassifier(a.Monitor.IsOnline)
	deps := usecase.StoreDeps{
		Cache: cache.NewCoordinator(cache.Options{FreshnessWindow: cfg.FreshnessWindow, Logger: logger}),
		Executor: resilience.NewExecutor(classifier, resilience.RetryPolicy{
			MaxRetries: cfg.MaxRetries,
			BaseDelay:  cfg.RetryBaseDelay,
		}, logger),
		Queue:        a.Queue,
		Connectivity: a.Monitor,
		Logger:       logger,
	}
	a.Registry = usecase.NewRegistry(remotes, mirrors(mirrorDB), deps)
	a.Pipeline = usecase.NewPipelineUseCase(a.Registry, logger)
	return a, nil
}

// Start refreshes the stores on reconnect and, when a probe URL is
// configured, probes connectivity until ctx is done.
func (a *App) Start(ctx context.Context) {
	a.Registry.WatchConnectivity(ctx)
	if a.Config.ProbeURL == "" {
		return
	}
	go a.Monitor.Run(ctx, connectivity.Prober{URL: a.Config.ProbeURL}, a.Config.ProbeInterval)
}

func (a *App) Close() error {
	if a.Registry != nil {
		a.Registry.Close()
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func mirrors(db *sql.DB) usecase.Mirrors {
	return usecase.Mirrors{
		Customers: mirror.NewSQLiteStore[entities.Customer](db, entities.DataTypeCustomers),
		Estimates: mirror.NewSQLiteStore[entities.Estimate](db, entities.DataTypeEstimates),
		Jobs:      mirror.NewSQLiteStore[entities.Job](db, entities.DataTypeJobs),
		Invoices:  mirror.NewSQLiteStore[entities.Invoice](db, entities.DataTypeInvoices),
	}
}

func (a *App) remoteCollections(ctx context.Context) (usecase.Collections, error) {
	tables := a.Config.Tables
	switch a.Config.RemoteBackend {
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, a.Config.AWS)
		if err != nil {
			return usecase.Collections{}, err
		}
		return usecase.Collections{
			Customers: repository.NewDynamoCollection[entities.Customer](ddb, tables.Customers),
			Estimates: repository.NewDynamoCollection[entities.Estimate](ddb, tables.Estimates),
			Jobs:      repository.NewDynamoCollection[entities.Job](ddb, tables.Jobs),
			Invoices:  repository.NewDynamoCollection[entities.Invoice](ddb, tables.Invoices),
		}, nil

	case config.BackendPostgres:
		// An unreachable server at startup is not fatal: each collection
		// then opens its own pool on first use.
		dsn := a.Config.PostgresDSN
		db, err := database.OpenPostgres(ctx, dsn)
		if err != nil {
			a.logger.Warn("postgres unreachable at startup; connecting lazily", "err", err)
			db = nil
		} else {
			a.closers = append(a.closers, db.Close)
		}
		customers := repository.NewPostgresCollection[entities.Customer](db, dsn, tables.Customers)
		estimates := repository.NewPostgresCollection[entities.Estimate](db, dsn, tables.Estimates)
		jobs := repository.NewPostgresCollection[entities.Job](db, dsn, tables.Jobs)
		invoices := repository.NewPostgresCollection[entities.Invoice](db, dsn, tables.Invoices)
		a.closers = append(a.closers, customers.Close, estimates.Close, jobs.Close, invoices.Close)
		return usecase.Collections{Customers: customers, Estimates: estimates, Jobs: jobs, Invoices: invoices}, nil
	}
	return usecase.Collections{}, fmt.Errorf("%w: unknown REMOTE_BACKEND %q", config.ErrInvalidConfig, a.Config.RemoteBackend)
}
