// Package cache guarda os snapshots do dashboard em memória por um tempo fixo
package cache

import (
	"sync"
	"time"

	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
)

type entry struct {
	snapshot *domain.DashboardSnapshot
	storedAt time.Time
}

// SnapshotCache é um cache com TTL fixo. A última escrita vence.
type SnapshotCache struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
	entries map[string]entry
}

type Option func(*SnapshotCache)

// WithClock troca o relógio usado para calcular a expiração
func WithClock(now func() time.Time) Option {
	return func(c *SnapshotCache) {
		c.now = now
	}
}

func NewSnapshotCache(ttl time.Duration, opts ...Option) *SnapshotCache {
	c := &SnapshotCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get devolve o snapshot da chave se ele ainda estiver dentro do TTL
func (c *SnapshotCache) Get(key string) (*domain.DashboardSnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	return e.snapshot, true
}

func (c *SnapshotCache) Set(key string, snapshot *domain.DashboardSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{snapshot: snapshot, storedAt: c.now()}
}
