package probe

import "errors"

var (
	// ErrBlankPath indicates an endpoint path was blank after trimming
	// whitespace and leading slashes.
	ErrBlankPath = errors.New("probe: path must not be blank")

	// ErrStatusCode indicates a configured status code is outside the
	// valid HTTP range.
	ErrStatusCode = errors.New("probe: status code out of range")
)
