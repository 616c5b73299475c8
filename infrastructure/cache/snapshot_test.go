package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-dashboard-api/internal/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestSnapshotCache(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := NewSnapshotCache(5*time.Minute, WithClock(clock.Now))

	_, ok := c.Get("channel")
	assert.False(t, ok)

	first := &domain.DashboardSnapshot{ID: "first"}
	c.Set("channel", first)

	got, ok := c.Get("channel")
	require.True(t, ok)
	assert.Equal(t, "first", got.ID)

	// regravar a chave reinicia o TTL
	clock.Advance(4 * time.Minute)
	c.Set("channel", &domain.DashboardSnapshot{ID: "second"})
	got, ok = c.Get("channel")
	require.True(t, ok)
	assert.Equal(t, "second", got.ID)

	clock.Advance(5 * time.Minute)
	_, ok = c.Get("channel")
	assert.False(t, ok)
}

func TestSnapshotCache_ConcurrentAccess(t *testing.T) {
	c := NewSnapshotCache(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Set("k", &domain.DashboardSnapshot{ID: "x"})
		}()
		go func() {
			defer wg.Done()
			c.Get("k")
		}()
	}
	wg.Wait()

	_, ok := c.Get("k")
	assert.True(t, ok)
}
