package check

import (
	"context"
	"strings"
)

// Predicate reports whether the component a check guards is currently
// passing. The context carries the deadline and cancellation of the
// surrounding evaluation; predicates that perform I/O should honor it.
type Predicate func(ctx context.Context) bool

// PingFunc is an error-returning variant of Predicate for probes that
// naturally produce errors, such as database pings or HTTP calls. A nil
// return is a passing outcome; a non-nil error is a failing outcome and
// is kept on the Result for logging.
type PingFunc func(ctx context.Context) error

// Check is an immutable named boolean check. Build one with New or
// NewPing; the zero value is not usable.
type Check struct {
	name string
	run  func(ctx context.Context) (bool, error)
}

// New creates a check from a boolean predicate. The name identifies the
// check in reports; it is trimmed of surrounding whitespace and must be
// non-empty afterwards.
func New(name string, fn Predicate) (Check, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Check{}, ErrBlankName
	}
	if fn == nil {
		return Check{}, ErrNilFunc
	}

	return Check{
		name: name,
		run: func(ctx context.Context) (bool, error) {
			return fn(ctx), nil
		},
	}, nil
}

// NewPing creates a check from an error-returning probe function.
func NewPing(name string, fn PingFunc) (Check, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Check{}, ErrBlankName
	}
	if fn == nil {
		return Check{}, ErrNilFunc
	}

	return Check{
		name: name,
		run: func(ctx context.Context) (bool, error) {
			err := fn(ctx)
			return err == nil, err
		},
	}, nil
}

// MustNew is like New but panics on error. Intended for registration
// blocks with literal names.
func MustNew(name string, fn Predicate) Check {
	c, err := New(name, fn)
	if err != nil {
		panic(err)
	}
	return c
}

// MustNewPing is like NewPing but panics on error.
func MustNewPing(name string, fn PingFunc) Check {
	c, err := NewPing(name, fn)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the check's identifier as it will appear in reports.
func (c Check) Name() string {
	return c.name
}

func (c Check) valid() bool {
	return c.name != "" && c.run != nil
}
