package ctrl

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

// Policy failures of the login and session paths. These are result
// values, not infrastructure errors: handlers map each to a specific
// user-facing reason, and none of them is retried.
var (
	// ErrInvalidCode deliberately carries no detail; it must not leak
	// whether a similar code exists.
	ErrInvalidCode = errors.New("invalid_code")

	ErrAccountDisabled = errors.New("account_disabled")
	ErrAccountExpired  = errors.New("account_expired")

	// ErrDeviceMismatch enforces the single-device policy: a bound
	// record only accepts the fingerprint it was bound to.
	ErrDeviceMismatch = errors.New("device_mismatch")

	ErrSessionMismatch = errors.New("session_mismatch")
	ErrSessionExpired  = errors.New("session_expired")
	ErrReauthRequired  = errors.New("reauth_required")
	ErrAccountNotFound = errors.New("account_not_found")
)
