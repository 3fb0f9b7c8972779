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

// State is the observable lifecycle of one wrapped operation. Loading=true
// implies Err is empty and Data still holds the previous completed value.
type State[T any] struct {
	Data    *T
	Loading bool
	Err     string
}

// Query wraps one request with an idle/pending/settled lifecycle and optional
// notices. It provides no de-duplication or cancellation: two concurrent
// Execute calls race and the last to settle wins the final state. Preventing
// concurrent submissions is the caller's job.
type Query[T any] struct {
	mu       sync.Mutex
	state    State[T]
	notifier notification.Notifier
	logger   *zap.Logger
}

func NewQuery[T any](notifier notification.Notifier, logger *zap.Logger) *Query[T] {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &Query[T]{notifier: notifier, logger: logger}
}

// State returns a snapshot of the current lifecycle state.
func (q *Query[T]) State() State[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Execute runs call and commits the result. A returned transport error is
// converted into a synthetic failed envelope with status 500 and takes the
// same failure path as a server-reported failure. Loading is false after
// Execute returns, on every path.
func (q *Query[T]) Execute(ctx context.Context, call func(ctx context.Context) (models.Envelope[T], error), opts ...Option[T]) models.Envelope[T] {
	var cb callbacks[T]
	for _, opt := range opts {
		opt(&cb)
	}

	q.mu.Lock()
	q.state.Loading = true
	q.state.Err = ""
	q.mu.Unlock()

	env, err := call(ctx)
	if err != nil {
		q.logger.Warn("query call failed", zap.Error(err))
		env = models.Failure[T](err.Error(), http.StatusInternalServerError)
	}

	if env.Success {
		q.mu.Lock()
		q.state = State[T]{Data: env.Data, Loading: false}
		q.mu.Unlock()
		if cb.successNotice != "" && q.notifier != nil {
			q.notifier.Success(cb.successNotice)
		}
		if cb.onSuccess != nil {
			cb.onSuccess(env.Data)
		}
	} else {
		q.mu.Lock()
		q.state = State[T]{Loading: false, Err: env.Message}
		q.mu.Unlock()
		if cb.errorNotice && q.notifier != nil {
			q.notifier.Error(env.Message)
		}
		if cb.onError != nil {
			cb.onError(env.Message)
		}
	}
	return env
}
