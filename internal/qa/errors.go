package qa

import "errors"

// Error taxonomy shared by all services. Handlers map these to HTTP statuses
// with errors.Is; services wrap them with context via fmt.Errorf and %w.
var (
	// ErrValidation marks malformed or missing caller input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced entity that does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrAccessDenied marks a valid id owned by another tenant. Transport must
	// present it exactly like ErrNotFound so cross-tenant ids are never
	// confirmed to exist.
	ErrAccessDenied = errors.New("access denied")
	// ErrForbidden marks a feature that is disabled for the tenant.
	ErrForbidden = errors.New("forbidden")
	// ErrGeneration marks a failed or timed-out AI generation. No answer row
	// exists when it is returned.
	ErrGeneration = errors.New("generation failed")
)
