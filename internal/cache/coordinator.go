// Package cache keeps the fetch ledger that decides when an entity
// collection must be fetched again.
package cache

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultFreshnessWindow is how long a completed fetch keeps its data fresh.
const DefaultFreshnessWindow = 5 * time.Minute

// Entry is the ledger row kept per data-type key.
type Entry struct {
	LastFetch  time.Time
	InProgress bool
}

// Options configures a Coordinator. Zero values select the defaults.
type Options struct {
	FreshnessWindow time.Duration
	Now             func() time.Time
	Logger          *slog.Logger
}

// Coordinator gates fetches per data-type key: at most one fetch in flight,
// and no fetch while the last successful one is still fresh.
//
// Every invalidation advances a generation counter. A fetch that captured an
// older generation cannot mark its key fresh.
type Coordinator struct {
	mu     sync.Mutex
	ledger map[string]Entry
	window time.Duration
	now    func() time.Time
	logger *slog.Logger

	seq    uint64
	gens   map[string]uint64
	allGen uint64
}

func NewCoordinator(opts Options) *Coordinator {
	c := &Coordinator{}
	c.Init(opts)
	return c
}

// Init (re)configures the coordinator and empties the ledger.
func (c *Coordinator) Init(opts Options) {
	window := opts.FreshnessWindow
	if window <= 0 {
		window = DefaultFreshnessWindow
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ledger = map[string]Entry{}
	c.seq++
	c.gens = map[string]uint64{}
	c.allGen = c.seq
	c.window = window
	c.now = now
	c.logger = logger.With("component", "cache")
}

// ShouldFetch reports whether a fetch for key may start now. A true result
// marks the key in flight; the caller must then call MarkComplete or
// MarkFailed exactly once.
func (c *Coordinator) ShouldFetch(key string, forceRefresh bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.ledger[key]
	if forceRefresh {
		entry.InProgress = true
		c.ledger[key] = entry
		c.logger.Debug("fetch forced", "data_type", key)
		return true
	}
	if ok && entry.InProgress {
		c.logger.Debug("fetch suppressed; already in flight", "data_type", key)
		return false
	}
	if ok && c.now().Sub(entry.LastFetch) < c.window {
		c.logger.Debug("fetch suppressed; cache fresh", "data_type", key, "last_fetch", entry.LastFetch)
		return false
	}
	entry.InProgress = true
	c.ledger[key] = entry
	return true
}

// MarkComplete records a successful fetch.
func (c *Coordinator) MarkComplete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ledger[key] = Entry{LastFetch: c.now(), InProgress: false}
}

// Generation returns the invalidation generation of key. Capture it when a
// fetch starts and hand it to MarkCompleteIf when the fetch returns.
func (c *Coordinator) Generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation(key)
}

func (c *Coordinator) generation(key string) uint64 {
	return max(c.gens[key], c.allGen)
}

// MarkCompleteIf records a successful fetch only if key has not been
// invalidated since gen was read. It reports whether the fetch was recorded.
// A superseded fetch leaves the key stale and no longer in flight.
func (c *Coordinator) MarkCompleteIf(key string, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation(key) != gen {
		if entry, ok := c.ledger[key]; ok {
			entry.InProgress = false
			c.ledger[key] = entry
		}
		c.logger.Debug("fetch superseded by invalidation", "data_type", key)
		return false
	}
	c.ledger[key] = Entry{LastFetch: c.now(), InProgress: false}
	return true
}

// MarkFailed clears the in-flight flag but keeps the previous timestamp, so
// a failure never counts as fresh data.
func (c *Coordinator) MarkFailed(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := c.ledger[key]
	entry.InProgress = false
	c.ledger[key] = entry
}

// Invalidate drops the ledger entry; the next ShouldFetch returns true.
func (c *Coordinator) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.ledger, key)
	c.seq++
	c.gens[key] = c.seq
	c.logger.Debug("cache invalidated", "data_type", key)
}

// InvalidateAll clears the ledger. Used on session boundaries.
func (c *Coordinator) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ledger = map[string]Entry{}
	c.seq++
	c.allGen = c.seq
	c.logger.Debug("cache invalidated", "data_type", "*")
}

// Reset is InvalidateAll under the lifecycle name used by callers that
// recycle a coordinator between sessions.
func (c *Coordinator) Reset() {
	c.InvalidateAll()
}

// Lookup returns the ledger entry for key, if any.
func (c *Coordinator) Lookup(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.ledger[key]
	return entry, ok
}
