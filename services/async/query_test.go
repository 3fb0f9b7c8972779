package async

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"premierlodge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type spyNotifier struct {
	mu        sync.Mutex
	successes []string
	errs      []string
	infos     []string
}

func (n *spyNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *spyNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errs = append(n.errs, message)
}

func (n *spyNotifier) Info(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.infos = append(n.infos, message)
}

func TestQuerySuccessCommitsData(t *testing.T) {
	t.Parallel()

	notifier := &spyNotifier{}
	q := NewQuery[int](notifier, zap.NewNop())

	value := 42
	env := q.Execute(context.Background(), func(ctx context.Context) (models.Envelope[int], error) {
		return models.Envelope[int]{Success: true, Data: &value, Status: http.StatusOK}, nil
	}, WithSuccessNotice[int]("loaded"))

	assert.True(t, env.Success)
	st := q.State()
	assert.False(t, st.Loading)
	assert.Empty(t, st.Err)
	require.NotNil(t, st.Data)
	assert.Equal(t, 42, *st.Data)
	assert.Equal(t, []string{"loaded"}, notifier.successes)
}

func TestQueryTransportErrorBecomesStatus500Failure(t *testing.T) {
	t.Parallel()

	notifier := &spyNotifier{}
	q := NewQuery[int](notifier, zap.NewNop())

	env := q.Execute(context.Background(), func(ctx context.Context) (models.Envelope[int], error) {
		return models.Envelope[int]{}, errors.New("connection refused")
	}, WithErrorNotice[int]())

	assert.False(t, env.Success)
	assert.Equal(t, http.StatusInternalServerError, env.Status)
	assert.Equal(t, "connection refused", env.Message)

	st := q.State()
	assert.False(t, st.Loading, "loading must settle on the error path")
	assert.Equal(t, "connection refused", st.Err)
	assert.Nil(t, st.Data)
	assert.Equal(t, []string{"connection refused"}, notifier.errs)
}

func TestQueryKeepsStaleDataWhileLoading(t *testing.T) {
	t.Parallel()

	q := NewQuery[int](nil, zap.NewNop())

	first := 1
	q.Execute(context.Background(), func(ctx context.Context) (models.Envelope[int], error) {
		return models.Envelope[int]{Success: true, Data: &first}, nil
	})

	second := 2
	q.Execute(context.Background(), func(ctx context.Context) (models.Envelope[int], error) {
		// While the refetch is in flight the previous value is still visible.
		st := q.State()
		assert.True(t, st.Loading)
		assert.Empty(t, st.Err)
		require.NotNil(t, st.Data)
		assert.Equal(t, 1, *st.Data)
		return models.Envelope[int]{Success: true, Data: &second}, nil
	})

	st := q.State()
	assert.False(t, st.Loading)
	require.NotNil(t, st.Data)
	assert.Equal(t, 2, *st.Data)
}

func TestQueryFailureDropsData(t *testing.T) {
	t.Parallel()

	q := NewQuery[int](nil, zap.NewNop())

	first := 1
	q.Execute(context.Background(), func(ctx context.Context) (models.Envelope[int], error) {
		return models.Envelope[int]{Success: true, Data: &first}, nil
	})
	q.Execute(context.Background(), func(ctx context.Context) (models.Envelope[int], error) {
		return models.Failure[int]("Room unavailable", http.StatusConflict), nil
	})

	st := q.State()
	assert.False(t, st.Loading)
	assert.Nil(t, st.Data)
	assert.Equal(t, "Room unavailable", st.Err)
}

func TestQueryCallbacks(t *testing.T) {
	t.Parallel()

	q := NewQuery[int](nil, zap.NewNop())

	var gotData *int
	var gotMessage string
	value := 7
	q.Execute(context.Background(), func(ctx context.Context) (models.Envelope[int], error) {
		return models.Envelope[int]{Success: true, Data: &value}, nil
	}, OnSuccess(func(data *int) { gotData = data }))
	require.NotNil(t, gotData)
	assert.Equal(t, 7, *gotData)

	q.Execute(context.Background(), func(ctx context.Context) (models.Envelope[int], error) {
		return models.Failure[int]("nope", http.StatusBadRequest), nil
	}, OnError[int](func(message string) { gotMessage = message }))
	assert.Equal(t, "nope", gotMessage)
}
