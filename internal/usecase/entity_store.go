package usecase

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"fieldservice/internal/cache"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/resilience"
	"fieldservice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidRecordID = errors.New("invalid record id")
	ErrNoRecords       = errors.New("no records to add")
)

// degradedPrefix starts the notice shown when a store serves mirrored data
// instead of a fresh fetch.
const degradedPrefix = "Showing saved data: "

// IEntityStore exposes one entity collection to presentation code.
type IEntityStore[T entities.Record[T]] interface {
	DataType() entities.DataType
	Fetch(ctx context.Context, forceRefresh bool) error
	Add(ctx context.Context, records ...T) ([]T, error)
	Update(ctx context.Context, id string, patch entities.Patch) error
	Delete(ctx context.Context, id string) error
	Snapshot() StoreState[T]
}

// StoreState is a copy of a store's observable state.
type StoreState[T any] struct {
	Records []T
	Loading bool
	Error   *resilience.Error
	Notice  string
}

// StoreDeps are the collaborators shared by every entity store.
type StoreDeps struct {
	Cache        *cache.Coordinator
	Executor     *resilience.Executor
	Queue        interfaces.ISyncQueue
	Connectivity interfaces.IConnectivity
	Now          func() time.Time
	NewID        func() string
	Logger       *slog.Logger
}

func (d StoreDeps) withDefaults() StoreDeps {
	if d.Cache == nil {
		d.Cache = cache.NewCoordinator(cache.Options{Logger: d.Logger})
	}
	if d.Executor == nil {
		d.Executor = resilience.NewExecutor(nil, resilience.DefaultRetryPolicy(), d.Logger)
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.NewID == nil {
		d.NewID = uuid.NewString
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}

// EntityStore owns the in-memory copy of one entity collection. Fetches are
// gated by the cache coordinator and fall back to the local mirror; while
// offline, mutations are applied locally and queued for sync.
type EntityStore[T entities.Record[T]] struct {
	dataType entities.DataType
	remote   interfaces.IRemoteCollection[T]
	mirror   interfaces.IKeyValueStore[T]
	deps     StoreDeps
	logger   *slog.Logger

	mu      sync.Mutex
	records []T
	loading bool
	err     *resilience.Error
	notice  string
	painted bool
}

var _ IEntityStore[entities.Customer] = (*EntityStore[entities.Customer])(nil)

func NewEntityStore[T entities.Record[T]](dataType entities.DataType, remote interfaces.IRemoteCollection[T], mirror interfaces.IKeyValueStore[T], deps StoreDeps) *EntityStore[T] {
	deps = deps.withDefaults()
	return &EntityStore[T]{
		dataType: dataType,
		remote:   remote,
		mirror:   mirror,
		deps:     deps,
		logger:   deps.Logger.With("component", "store", "data_type", string(dataType)),
		records:  []T{},
	}
}

func (s *EntityStore[T]) DataType() entities.DataType { return s.dataType }

func (s *EntityStore[T]) key() string { return string(s.dataType) }

func (s *EntityStore[T]) online() bool {
	return s.deps.Connectivity == nil || s.deps.Connectivity.IsOnline()
}

// Fetch loads the collection from the remote store unless the cache
// coordinator says the data is fresh or a fetch is already in flight. A
// failed fetch with mirrored data available is not an error: the store
// serves the mirror and sets a notice instead.
//
// A result that returns after a confirmed mutation invalidated the
// collection is discarded. The local records already hold the mutation and
// the ledger stays stale, so the next Fetch goes to the remote again.
func (s *EntityStore[T]) Fetch(ctx context.Context, forceRefresh bool) error {
	s.paintFromMirror(ctx)

	if !s.online() {
		return s.serveOffline(ctx)
	}

	if !s.deps.Cache.ShouldFetch(s.key(), forceRefresh) {
		return nil
	}

	gen := s.deps.Cache.Generation(s.key())
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.logger.Debug("fetch start", "force", forceRefresh)

	records, err := resilience.WithRetry(ctx, s.deps.Executor, s.remote.Select)
	if err == nil {
		if records == nil {
			records = []T{}
		}
		s.mu.Lock()
		s.loading = false
		if !s.deps.Cache.MarkCompleteIf(s.key(), gen) {
			s.mu.Unlock()
			s.logger.Debug("fetch result discarded; collection changed during fetch")
			return nil
		}
		s.records = records
		s.err = nil
		s.notice = ""
		s.mu.Unlock()
		s.writeMirror(ctx, records)
		s.logger.Debug("fetch done", "count", len(records))
		return nil
	}

	s.deps.Cache.MarkFailed(s.key())
	stdErr := s.deps.Executor.Classifier().Standardize(err)

	saved, ok := s.readMirror(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if ok && len(saved) > 0 {
		s.records = saved
		s.err = nil
		s.notice = degradedPrefix + stdErr.Message
		s.logger.Warn("fetch failed; serving mirror", "category", stdErr.Category, "count", len(saved))
		return nil
	}
	s.err = stdErr
	s.notice = ""
	s.logger.Error("fetch failed", "category", stdErr.Category, "err", stdErr.Err)
	return stdErr
}

// paintFromMirror fills an empty store from the mirror once, before the
// first network call.
func (s *EntityStore[T]) paintFromMirror(ctx context.Context) {
	s.mu.Lock()
	if s.painted || len(s.records) > 0 {
		s.painted = true
		s.mu.Unlock()
		return
	}
	s.painted = true
	s.mu.Unlock()

	saved, ok := s.readMirror(ctx)
	if !ok || len(saved) == 0 {
		return
	}
	s.mu.Lock()
	if len(s.records) == 0 {
		s.records = saved
	}
	s.mu.Unlock()
}

func (s *EntityStore[T]) serveOffline(ctx context.Context) error {
	saved, ok := s.readMirror(ctx)
	offline := s.deps.Executor.Classifier().Standardize(resilience.ErrOffline)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if !ok {
		s.err = offline
		return offline
	}
	if len(saved) > 0 {
		s.records = saved
	}
	s.err = nil
	s.notice = degradedPrefix + offline.Message
	return nil
}

// Add creates records. Records without an id get a client-side one so a
// retried insert cannot create duplicates.
//
// Offline, each record is queued before it is applied locally. If queueing
// stops partway, the records already queued are applied and returned along
// with the error, so the local copy always matches the queue.
func (s *EntityStore[T]) Add(ctx context.Context, records ...T) ([]T, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	prepared := make([]T, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.RecordID()) == "" {
			r = r.WithRecordID(s.deps.NewID())
		}
		prepared = append(prepared, r)
	}

	if !s.online() {
		queued := 0
		var qErr error
		for _, r := range prepared {
			if qErr = s.enqueue(ctx, entities.SyncActionCreate, r); qErr != nil {
				break
			}
			queued++
		}
		if queued > 0 {
			s.applyLocal(ctx, func(cur []T) []T { return append(cur, prepared[:queued]...) })
			s.logger.Info("queued offline create", "count", queued)
		}
		if qErr != nil {
			return prepared[:queued], s.mutationFailed("enqueue create", qErr)
		}
		return prepared, nil
	}

	inserted, err := resilience.WithRetry(ctx, s.deps.Executor, func(ctx context.Context) ([]T, error) {
		return s.remote.Insert(ctx, prepared)
	})
	if err != nil {
		return nil, s.mutationFailed("add", err)
	}
	if len(inserted) == 0 {
		inserted = prepared
	}
	s.applyConfirmed(ctx, func(cur []T) []T { return append(cur, inserted...) })
	return inserted, nil
}

// Update applies patch to the record with id. The id field is never
// patched and updated_at is stamped by the store.
func (s *EntityStore[T]) Update(ctx context.Context, id string, patch entities.Patch) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRecordID
	}
	normalized, err := patch.Normalized(s.deps.Now())
	if err != nil {
		return err
	}

	apply := func(cur []T) []T {
		for i, r := range cur {
			if r.RecordID() != id {
				continue
			}
			patched, err := entities.ApplyPatch(r, normalized)
			if err != nil {
				s.logger.Warn("local patch failed", "id", id, "err", err)
				continue
			}
			cur[i] = patched
		}
		return cur
	}

	if !s.online() {
		if err := s.enqueue(ctx, entities.SyncActionUpdate, map[string]any{"id": id, "patch": map[string]any(normalized)}); err != nil {
			return s.mutationFailed("enqueue update", err)
		}
		s.applyLocal(ctx, apply)
		s.logger.Info("queued offline update", "id", id)
		return nil
	}

	if err := s.deps.Executor.Do(ctx, func(ctx context.Context) error {
		return s.remote.Update(ctx, id, normalized)
	}); err != nil {
		return s.mutationFailed("update", err)
	}
	s.applyConfirmed(ctx, apply)
	return nil
}

func (s *EntityStore[T]) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRecordID
	}
	remove := func(cur []T) []T {
		return slices.DeleteFunc(cur, func(r T) bool { return r.RecordID() == id })
	}

	if !s.online() {
		if err := s.enqueue(ctx, entities.SyncActionDelete, map[string]any{"id": id}); err != nil {
			return s.mutationFailed("enqueue delete", err)
		}
		s.applyLocal(ctx, remove)
		s.logger.Info("queued offline delete", "id", id)
		return nil
	}

	if err := s.deps.Executor.Do(ctx, func(ctx context.Context) error {
		return s.remote.Delete(ctx, id)
	}); err != nil {
		return s.mutationFailed("delete", err)
	}
	s.applyConfirmed(ctx, remove)
	return nil
}

// Snapshot returns a copy of the current state.
func (s *EntityStore[T]) Snapshot() StoreState[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StoreState[T]{
		Records: slices.Clone(s.records),
		Loading: s.loading,
		Error:   s.err,
		Notice:  s.notice,
	}
}

// Records returns a copy of the in-memory collection.
func (s *EntityStore[T]) Records() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records)
}

// Reset drops the in-memory state. The mirror is left untouched.
func (s *EntityStore[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = []T{}
	s.loading = false
	s.err = nil
	s.notice = ""
	s.painted = false
}

func (s *EntityStore[T]) enqueue(ctx context.Context, action entities.SyncAction, data any) error {
	if s.deps.Queue == nil {
		return resilience.ErrOffline
	}
	return s.deps.Queue.Enqueue(ctx, entities.SyncOperation{
		Type:      s.dataType,
		Operation: action,
		Data:      data,
		QueuedAt:  s.deps.Now().UTC(),
	})
}

// applyLocal mutates the in-memory collection and mirrors the result.
func (s *EntityStore[T]) applyLocal(ctx context.Context, fn func(cur []T) []T) {
	s.mu.Lock()
	s.records = fn(s.records)
	s.err = nil
	snapshot := slices.Clone(s.records)
	s.mu.Unlock()
	s.writeMirror(ctx, snapshot)
}

// applyConfirmed is applyLocal for a change the remote store accepted. The
// ledger entry is dropped under the same lock as the local write, so an
// in-flight fetch either lands before the change or is discarded.
func (s *EntityStore[T]) applyConfirmed(ctx context.Context, fn func(cur []T) []T) {
	s.mu.Lock()
	s.records = fn(s.records)
	s.err = nil
	s.deps.Cache.Invalidate(s.key())
	snapshot := slices.Clone(s.records)
	s.mu.Unlock()
	s.writeMirror(ctx, snapshot)
}

func (s *EntityStore[T]) mutationFailed(op string, err error) *resilience.Error {
	stdErr := s.deps.Executor.Classifier().Standardize(err)
	s.mu.Lock()
	s.err = stdErr
	s.mu.Unlock()
	s.logger.Error(op+" failed", "category", stdErr.Category, "err", stdErr.Err)
	return stdErr
}

// readMirror reports ok=false when there is no mirror or it cannot be read.
func (s *EntityStore[T]) readMirror(ctx context.Context) ([]T, bool) {
	if s.mirror == nil {
		return nil, false
	}
	records, err := s.mirror.ReadAll(ctx)
	if err != nil {
		s.logger.Warn("mirror read failed", "err", err)
		return nil, false
	}
	if records == nil {
		records = []T{}
	}
	return records, true
}

func (s *EntityStore[T]) writeMirror(ctx context.Context, records []T) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.WriteAll(ctx, records); err != nil {
		s.logger.Warn("mirror write failed", "err", err)
	}
}
