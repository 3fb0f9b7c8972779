package models

// Envelope is the uniform wrapper every remote call resolves to. Success is
// the field callers branch on; a non-2xx HTTP status surfaces as a transport
// error instead, never as an Envelope.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// Failure builds a failed envelope with no data.
func Failure[T any](message string, status int) Envelope[T] {
	return Envelope[T]{Success: false, Message: message, Status: status}
}
