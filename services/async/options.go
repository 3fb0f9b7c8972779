package async

// callbacks configure optional per-call side effects.
type callbacks[T any] struct {
	successNotice string
	errorNotice   bool
	onSuccess     func(data *T)
	onError       func(message string)
}

// Option configures a single Execute call.
type Option[T any] func(*callbacks[T])

// WithSuccessNotice emits msg through the notifier when the call succeeds.
func WithSuccessNotice[T any](msg string) Option[T] {
	return func(cb *callbacks[T]) { cb.successNotice = msg }
}

// WithErrorNotice emits the failure message through the notifier.
func WithErrorNotice[T any]() Option[T] {
	return func(cb *callbacks[T]) { cb.errorNotice = true }
}

// OnSuccess registers a callback invoked after a successful commit.
func OnSuccess[T any](fn func(data *T)) Option[T] {
	return func(cb *callbacks[T]) { cb.onSuccess = fn }
}

// OnError registers a callback invoked after a failure commit.
func OnError[T any](fn func(message string)) Option[T] {
	return func(cb *callbacks[T]) { cb.onError = fn }
}
