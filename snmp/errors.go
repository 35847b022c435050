package snmp

import "errors"

// Error kinds surfaced by this package. All failures are synchronous and
// wrap one of these sentinels, so callers branch with errors.Is.
var (
	// ErrMalformedIdentifier is returned when a raw identifier cannot be
	// decoded into a numeric tuple.
	ErrMalformedIdentifier = errors.New("malformed object identifier")

	// ErrUnsupportedOperation is returned when symbol resolution is
	// requested on an identifier that carries no symbolic identity.
	// This is a usage error, not a transient condition.
	ErrUnsupportedOperation = errors.New("unsupported identifier operation")

	// ErrNotNumeric is returned when a numeric coercion is requested on a
	// value that cannot yield a number, such as an identifier-typed value.
	ErrNotNumeric = errors.New("value is not numeric")
)
