package billing

import "errors"

var (
	// ErrInvalidRequest covers non-positive amounts, unsupported
	// currencies and unknown plan kinds before any provider call.
	ErrInvalidRequest = errors.New("invalid payment request")

	// ErrProviderUnavailable wraps network/auth failures from an
	// external payment API. Handlers surface it as a generic failure
	// without leaking provider internals.
	ErrProviderUnavailable = errors.New("payment provider unavailable")

	// ErrPaymentNotFound means no payment record matches the given
	// transaction id or provider reference.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrUserNotFound means the payment's owning user no longer resolves.
	ErrUserNotFound = errors.New("user not found")
)
