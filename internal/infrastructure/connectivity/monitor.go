// Package connectivity tracks whether the remote data store is reachable.
package connectivity

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fieldservice/internal/usecase/interfaces"
)

const defaultProbeTimeout = 5 * time.Second

// Monitor holds the online flag and notifies subscribers on transitions.
// Callbacks run synchronously on the goroutine that changed the state.
type Monitor struct {
	mu          sync.Mutex
	online      bool
	nextID      int
	subscribers map[int]func(online bool)
	logger      *slog.Logger
}

var _ interfaces.IConnectivity = (*Monitor)(nil)

func NewMonitor(initiallyOnline bool, logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		online:      initiallyOnline,
		subscribers: map[int]func(bool){},
		logger:      logger.With("component", "connectivity"),
	}
}

func (m *Monitor) IsOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *Monitor) Subscribe(fn func(online bool)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

// Set records the current state. Subscribers are called only when the state
// actually changes.
func (m *Monitor) Set(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	fns := make([]func(bool), 0, len(m.subscribers))
	for id := 0; id < m.nextID; id++ {
		if fn, ok := m.subscribers[id]; ok {
			fns = append(fns, fn)
		}
	}
	m.mu.Unlock()

	if online {
		m.logger.Info("went online")
	} else {
		m.logger.Warn("went offline")
	}
	for _, fn := range fns {
		fn(online)
	}
}

// Prober checks reachability with an HTTP HEAD request. Any response,
// whatever its status, counts as online.
type Prober struct {
	URL    string
	Client *http.Client
}

func (p Prober) Probe(ctx context.Context) bool {
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: defaultProbeTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.URL, nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}

// Run probes immediately and then every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context, prober Prober, interval time.Duration) {
	m.Set(prober.Probe(ctx))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Set(prober.Probe(ctx))
		}
	}
}
