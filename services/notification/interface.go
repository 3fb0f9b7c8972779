package notification

// Notifier is the single channel through which every user-visible outcome is
// reported. Nothing in the gateway retries automatically; a failed step
// surfaces here and nowhere else.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}
