package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"fieldservice/internal/cache"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/lifecycle"
	"fieldservice/internal/usecase/interfaces"
)

// Collections groups the remote accessor of every entity collection.
type Collections struct {
	Customers interfaces.IRemoteCollection[entities.Customer]
	Estimates interfaces.IRemoteCollection[entities.Estimate]
	Jobs      interfaces.IRemoteCollection[entities.Job]
	Invoices  interfaces.IRemoteCollection[entities.Invoice]
}

// Mirrors groups the local mirror of every entity collection. Nil members
// disable mirroring for that collection.
type Mirrors struct {
	Customers interfaces.IKeyValueStore[entities.Customer]
	Estimates interfaces.IKeyValueStore[entities.Estimate]
	Jobs      interfaces.IKeyValueStore[entities.Job]
	Invoices  interfaces.IKeyValueStore[entities.Invoice]
}

// ISnapshotSource feeds the pipeline with the current entity collections.
type ISnapshotSource interface {
	RefreshAll(ctx context.Context, forceRefresh bool) error
	Snapshot() lifecycle.Snapshot
}

// ISessionUseCase controls the data loaded for the signed-in user.
type ISessionUseCase interface {
	RefreshAll(ctx context.Context, forceRefresh bool) error
	ResetSession()
}

// Registry holds the four entity stores of a session and the coordinator
// they share.
type Registry struct {
	Customers *EntityStore[entities.Customer]
	Estimates *EntityStore[entities.Estimate]
	Jobs      *EntityStore[entities.Job]
	Invoices  *EntityStore[entities.Invoice]

	cache  *cache.Coordinator
	conn   interfaces.IConnectivity
	logger *slog.Logger

	mu          sync.Mutex
	unsubscribe func()
}

var (
	_ ISnapshotSource = (*Registry)(nil)
	_ ISessionUseCase = (*Registry)(nil)
)

func NewRegistry(remotes Collections, mirrors Mirrors, deps StoreDeps) *Registry {
	deps = deps.withDefaults()
	return &Registry{
		Customers: NewEntityStore(entities.DataTypeCustomers, remotes.Customers, mirrors.Customers, deps),
		Estimates: NewEntityStore(entities.DataTypeEstimates, remotes.Estimates, mirrors.Estimates, deps),
		Jobs:      NewEntityStore(entities.DataTypeJobs, remotes.Jobs, mirrors.Jobs, deps),
		Invoices:  NewEntityStore(entities.DataTypeInvoices, remotes.Invoices, mirrors.Invoices, deps),
		cache:     deps.Cache,
		conn:      deps.Connectivity,
		logger:    deps.Logger.With("component", "registry"),
	}
}

// Fetch fetches one collection by data type.
func (r *Registry) Fetch(ctx context.Context, dt entities.DataType, forceRefresh bool) error {
	switch dt {
	case entities.DataTypeCustomers:
		return r.Customers.Fetch(ctx, forceRefresh)
	case entities.DataTypeEstimates:
		return r.Estimates.Fetch(ctx, forceRefresh)
	case entities.DataTypeJobs:
		return r.Jobs.Fetch(ctx, forceRefresh)
	case entities.DataTypeInvoices:
		return r.Invoices.Fetch(ctx, forceRefresh)
	}
	return fmt.Errorf("unknown data type %q", dt)
}

// RefreshAll fetches every collection and joins the failures.
func (r *Registry) RefreshAll(ctx context.Context, forceRefresh bool) error {
	var errs []error
	for _, dt := range entities.DataTypes {
		if err := r.Fetch(ctx, dt, forceRefresh); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", dt, err))
		}
	}
	return errors.Join(errs...)
}

func (r *Registry) Snapshot() lifecycle.Snapshot {
	return lifecycle.Snapshot{
		Customers: r.Customers.Records(),
		Estimates: r.Estimates.Records(),
		Jobs:      r.Jobs.Records(),
		Invoices:  r.Invoices.Records(),
	}
}

// ResetSession forgets everything loaded for the current user.
func (r *Registry) ResetSession() {
	r.Customers.Reset()
	r.Estimates.Reset()
	r.Jobs.Reset()
	r.Invoices.Reset()
	r.cache.InvalidateAll()
	r.logger.Info("session reset")
}

// WatchConnectivity refetches every collection whenever connectivity comes
// back. The returned function stops watching. Calling it again while already
// watching keeps the existing subscription.
func (r *Registry) WatchConnectivity(ctx context.Context) func() {
	if r.conn == nil {
		return func() {}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unsubscribe != nil {
		r.logger.Debug("already watching connectivity")
		return r.Close
	}
	r.unsubscribe = r.conn.Subscribe(func(online bool) {
		if !online {
			r.logger.Info("went offline")
			return
		}
		r.logger.Info("went online; refreshing")
		if err := r.RefreshAll(ctx, false); err != nil {
			r.logger.Warn("refresh after reconnect failed", "err", err)
		}
	})
	return r.Close
}

// Close stops watching connectivity.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}
