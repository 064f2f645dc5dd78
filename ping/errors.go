package ping

import "errors"

var (
	// ErrNilClient indicates a probe was built over a nil client or
	// connection handle.
	ErrNilClient = errors.New("ping: nil client")
)
