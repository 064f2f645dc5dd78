package check

import "errors"

var (
	// ErrBlankName indicates a check name was empty or whitespace-only.
	ErrBlankName = errors.New("check: name must not be blank")

	// ErrNilFunc indicates a check was built without a function.
	ErrNilFunc = errors.New("check: func must not be nil")

	// ErrCheckTimeout indicates a single check exceeded the configured
	// per-check timeout.
	ErrCheckTimeout = errors.New("check: check timed out")

	// ErrCheckPanic indicates a check panicked during evaluation.
	ErrCheckPanic = errors.New("check: check panicked")
)
