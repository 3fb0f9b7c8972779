package async

import (
	"context"
	"net/http"
	"sync"

	"premierlodge/models"
	"premierlodge/services/notification"
	"premierlodge/utils"

	"go.uber.org/zap"
)

// Mutation wraps a write operation with the same lifecycle discipline as
// Query but keeps no cached data. The call is bound once; the input is passed
// per invocation so one instance serves many distinct inputs.
type Mutation[I, T any] struct {
	mu       sync.Mutex
	loading  bool
	err      string
	call     func(ctx context.Context, input I) (models.Envelope[T], error)
	notifier notification.Notifier
	logger   *zap.Logger
}

func NewMutation[I, T any](call func(ctx context.Context, input I) (models.Envelope[T], error), notifier notification.Notifier, logger *zap.Logger) *Mutation[I, T] {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &Mutation[I, T]{call: call, notifier: notifier, logger: logger}
}

// Loading reports whether a call is in flight.
func (m *Mutation[I, T]) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Err returns the failure message of the last settled call, if any.
func (m *Mutation[I, T]) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Do runs the bound call with input. Loading is false after Do returns, on
// every path; a returned transport error synthesizes a status-500 failed
// envelope and follows the failure path.
func (m *Mutation[I, T]) Do(ctx context.Context, input I, opts ...Option[T]) models.Envelope[T] {
	var cb callbacks[T]
	for _, opt := range opts {
		opt(&cb)
	}

	m.mu.Lock()
	m.loading = true
	m.err = ""
	m.mu.Unlock()

	env, err := m.call(ctx, input)
	if err != nil {
		m.logger.Warn("mutation call failed", zap.Error(err))
		env = models.Failure[T](err.Error(), http.StatusInternalServerError)
	}

	if env.Success {
		m.mu.Lock()
		m.loading = false
		m.err = ""
		m.mu.Unlock()
		if cb.successNotice != "" && m.notifier != nil {
			m.notifier.Success(cb.successNotice)
		}
		if cb.onSuccess != nil {
			cb.onSuccess(env.Data)
		}
	} else {
		m.mu.Lock()
		m.loading = false
		m.err = env.Message
		m.mu.Unlock()
		if cb.errorNotice && m.notifier != nil {
			m.notifier.Error(env.Message)
		}
		if cb.onError != nil {
			cb.onError(env.Message)
		}
	}
	return env
}
