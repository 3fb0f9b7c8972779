package booking

import "errors"

var (
	// ErrSubmissionInFlight rejects a second submission while one is in progress.
	ErrSubmissionInFlight = errors.New("a booking submission is already in progress")

	// ErrCreateFailed reports a server-rejected create call.
	ErrCreateFailed = errors.New("booking creation failed")

	// ErrMissingPaymentReference aborts the online path when the create
	// response carried no server-issued reference.
	ErrMissingPaymentReference = errors.New("no payment reference was issued for this booking")

	// ErrProviderUnavailable aborts the online path when no payment provider
	// was injected.
	ErrProviderUnavailable = errors.New("payment provider is not available")

	// ErrUnknownReference reports a payment outcome for a session the
	// registry does not know.
	ErrUnknownReference = errors.New("no pending payment session for reference")
)
