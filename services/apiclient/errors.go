package apiclient

import "fmt"

// RequestError is raised for any non-2xx response. It is distinct from the
// response envelope: callers that want envelope semantics must catch it
// explicitly and branch on Envelope.Success, never on HTTP status alone.
type RequestError struct {
	Status     int
	StatusText string
	Data       any
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %d %s", e.Status, e.StatusText)
}
