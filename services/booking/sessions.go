package booking

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"premierlodge/models"
	"premierlodge/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	sessionKeyPrefix = "paymentSession:"
	sessionTTL       = 30 * time.Minute
)

// sessionCache is the slice of the Redis client the registry uses.
// *redis.Client satisfies it.
type sessionCache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// pendingPayment pairs a cached session with its resolution callbacks. The
// sync.Once guarantees the orchestrator state is reset exactly once per
// session, whichever callback fires.
type pendingPayment struct {
	session   models.PendingPaymentSession
	once      sync.Once
	onSettle  func()
	onAbandon func()
}

// SessionRegistry tracks online payments between launch and resolution. The
// in-memory map owns the callbacks; Redis mirrors the session payload so the
// reminder worker and other replicas can observe it across restarts.
type SessionRegistry struct {
	mu      sync.Mutex
	pending map[string]*pendingPayment
	cache   sessionCache
	logger  *zap.Logger
}

func NewSessionRegistry(cache sessionCache) *SessionRegistry {
	return &SessionRegistry{
		pending: make(map[string]*pendingPayment),
		cache:   cache,
		logger:  utils.GetLogger(),
	}
}

// Add registers a launched payment session.
func (r *SessionRegistry) Add(session models.PendingPaymentSession, onSettle, onAbandon func()) {
	r.mu.Lock()
	r.pending[session.Reference] = &pendingPayment{
		session:   session,
		onSettle:  onSettle,
		onAbandon: onAbandon,
	}
	r.mu.Unlock()

	if r.cache == nil {
		return
	}
	data, err := json.Marshal(session)
	if err != nil {
		r.logger.Error("failed to marshal payment session", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.cache.Set(ctx, sessionKeyPrefix+session.Reference, data, sessionTTL).Err(); err != nil {
		r.logger.Warn("failed to cache payment session", zap.String("reference", session.Reference), zap.Error(err))
	}
}

// Resolve fires the settle or abandon callback for a reference. The callback
// runs at most once even if both outcomes are reported.
func (r *SessionRegistry) Resolve(reference string, settled bool) error {
	r.mu.Lock()
	entry, ok := r.pending[reference]
	if ok {
		delete(r.pending, reference)
	}
	r.mu.Unlock()

	if !ok {
		return ErrUnknownReference
	}

	entry.once.Do(func() {
		if settled {
			entry.onSettle()
		} else {
			entry.onAbandon()
		}
	})

	if r.cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := r.cache.Del(ctx, sessionKeyPrefix+reference).Err(); err != nil {
			r.logger.Warn("failed to drop cached payment session", zap.String("reference", reference), zap.Error(err))
		}
	}
	return nil
}

// Pending reports whether a reference is still awaiting resolution. A miss in
// the in-memory map falls back to the Redis mirror, so a reminder enqueued
// before a restart still sees the unresolved session.
func (r *SessionRegistry) Pending(reference string) (models.PendingPaymentSession, bool) {
	r.mu.Lock()
	entry, ok := r.pending[reference]
	r.mu.Unlock()
	if ok {
		return entry.session, true
	}

	if r.cache == nil {
		return models.PendingPaymentSession{}, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	data, err := r.cache.Get(ctx, sessionKeyPrefix+reference).Result()
	if err == redis.Nil {
		return models.PendingPaymentSession{}, false
	}
	if err != nil {
		r.logger.Warn("failed to read cached payment session", zap.String("reference", reference), zap.Error(err))
		return models.PendingPaymentSession{}, false
	}

	var session models.PendingPaymentSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		r.logger.Error("failed to decode cached payment session", zap.String("reference", reference), zap.Error(err))
		return models.PendingPaymentSession{}, false
	}
	return session, true
}
