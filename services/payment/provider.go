package payment

import (
	"context"
	"errors"
	"math"
)

// Session is the handshake input for one online payment. It is only ever
// constructed when a non-empty server-issued reference exists.
type Session struct {
	PublicKey   string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	AmountMinor int64
	Currency    string
	Reference   string
}

var (
	ErrMissingReference = errors.New("payment session has no reference")
	ErrInvalidAmount    = errors.New("payment amount must be positive")
)

// Validate checks the session invariants before any provider call.
func (s Session) Validate() error {
	if s.Reference == "" {
		return ErrMissingReference
	}
	if s.AmountMinor <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// MinorUnits converts a decimal amount into integer minor units (e.g. kobo,
// cents), rounded to the nearest integer.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Provider is an external payment integration (adapter pattern). The concrete
// provider is injected into the orchestrator, never resolved ambiently.
type Provider interface {
	Name() string
	NewCheckout(ctx context.Context, s Session) (Checkout, error)
}

// Checkout is one provider-side payment attempt. The two handshake methods
// are optional capabilities: the orchestrator calls InitialiseTransaction and
// then Open in that order, skipping whichever the checkout does not implement.
type Checkout interface {
	Reference() string
}

type TransactionInitializer interface {
	InitialiseTransaction(ctx context.Context) error
}

type Opener interface {
	Open(ctx context.Context) error
}
