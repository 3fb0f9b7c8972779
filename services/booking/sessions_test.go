package booking

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"premierlodge/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionCache is a map-backed stand-in for the Redis mirror.
type fakeSessionCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{data: make(map[string]string)}
}

func (f *fakeSessionCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeSessionCache) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeSessionCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var deleted int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			deleted++
		}
	}
	return redis.NewIntResult(deleted, nil)
}

func pendingSession(ref string) models.PendingPaymentSession {
	return models.PendingPaymentSession{
		Reference:   ref,
		BookingID:   "b1",
		GuestID:     "g1",
		AmountMinor: 50000,
		Currency:    "NGN",
		OpenedAt:    time.Now(),
	}
}

func TestSessionRegistryResolveSettled(t *testing.T) {
	t.Parallel()

	r := NewSessionRegistry(nil)

	var settled, abandoned int32
	r.Add(pendingSession("TXN1"),
		func() { atomic.AddInt32(&settled, 1) },
		func() { atomic.AddInt32(&abandoned, 1) },
	)

	_, ok := r.Pending("TXN1")
	assert.True(t, ok)

	require.NoError(t, r.Resolve("TXN1", true))
	assert.Equal(t, int32(1), atomic.LoadInt32(&settled))
	assert.Equal(t, int32(0), atomic.LoadInt32(&abandoned))

	_, ok = r.Pending("TXN1")
	assert.False(t, ok, "a resolved session is no longer pending")
}

func TestSessionRegistryResolveUnknownReference(t *testing.T) {
	t.Parallel()

	r := NewSessionRegistry(nil)
	assert.ErrorIs(t, r.Resolve("missing", true), ErrUnknownReference)
}

func TestSessionRegistryPendingSurvivesRestart(t *testing.T) {
	t.Parallel()

	cache := newFakeSessionCache()

	first := NewSessionRegistry(cache)
	first.Add(pendingSession("TXN3"), func() {}, func() {})

	// A fresh registry over the same cache models a restarted process: its
	// in-memory map is empty but the mirror still holds the session.
	second := NewSessionRegistry(cache)
	session, ok := second.Pending("TXN3")
	require.True(t, ok, "an unresolved session must be visible after a restart")
	assert.Equal(t, "TXN3", session.Reference)
	assert.Equal(t, int64(50000), session.AmountMinor)
	assert.Equal(t, "NGN", session.Currency)
}

func TestSessionRegistryResolvedSessionNotPendingAfterRestart(t *testing.T) {
	t.Parallel()

	cache := newFakeSessionCache()

	first := NewSessionRegistry(cache)
	first.Add(pendingSession("TXN4"), func() {}, func() {})
	require.NoError(t, first.Resolve("TXN4", true))

	second := NewSessionRegistry(cache)
	_, ok := second.Pending("TXN4")
	assert.False(t, ok, "resolving drops the mirror entry as well")
}

func TestSessionRegistryCallbackRunsOnce(t *testing.T) {
	t.Parallel()

	r := NewSessionRegistry(nil)

	var fired int32
	r.Add(pendingSession("TXN2"),
		func() { atomic.AddInt32(&fired, 1) },
		func() { atomic.AddInt32(&fired, 1) },
	)

	const racers = 16
	var wg sync.WaitGroup
	var resolved int32
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(settle bool) {
			defer wg.Done()
			if err := r.Resolve("TXN2", settle); err == nil {
				atomic.AddInt32(&resolved, 1)
			}
		}(i%2 == 0)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&resolved), "only one resolution wins")
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired), "the callback fires exactly once")
}
