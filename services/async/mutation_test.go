package async

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"premierlodge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMutationSuccess(t *testing.T) {
	t.Parallel()

	notifier := &spyNotifier{}
	m := NewMutation(func(ctx context.Context, input string) (models.Envelope[string], error) {
		out := "created:" + input
		return models.Envelope[string]{Success: true, Data: &out, Status: http.StatusCreated}, nil
	}, notifier, zap.NewNop())

	env := m.Do(context.Background(), "room-1", WithSuccessNotice[string]("Room created"))
	assert.True(t, env.Success)
	require.NotNil(t, env.Data)
	assert.Equal(t, "created:room-1", *env.Data)
	assert.False(t, m.Loading())
	assert.Empty(t, m.Err())
	assert.Equal(t, []string{"Room created"}, notifier.successes)
}

func TestMutationTransportErrorSettles(t *testing.T) {
	t.Parallel()

	notifier := &spyNotifier{}
	m := NewMutation(func(ctx context.Context, input string) (models.Envelope[string], error) {
		return models.Envelope[string]{}, errors.New("timeout")
	}, notifier, zap.NewNop())

	env := m.Do(context.Background(), "room-1", WithErrorNotice[string]())
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusInternalServerError, env.Status)
	assert.False(t, m.Loading(), "loading must settle on the error path")
	assert.Equal(t, "timeout", m.Err())
	assert.Equal(t, []string{"timeout"}, notifier.errs)
}

func TestMutationErrClearsOnNextSuccess(t *testing.T) {
	t.Parallel()

	fail := true
	m := NewMutation(func(ctx context.Context, input int) (models.Envelope[int], error) {
		if fail {
			return models.Failure[int]("rejected", http.StatusBadRequest), nil
		}
		return models.Envelope[int]{Success: true, Data: &input}, nil
	}, nil, zap.NewNop())

	m.Do(context.Background(), 1)
	assert.Equal(t, "rejected", m.Err())

	fail = false
	m.Do(context.Background(), 2)
	assert.Empty(t, m.Err())
	assert.False(t, m.Loading())
}
