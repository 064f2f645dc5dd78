package check

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// AggregatorConfig configures evaluation behavior.
type AggregatorConfig struct {
	// CheckTimeout bounds each individual check. Zero means unbounded:
	// the aggregator waits for every check to resolve, so slow
	// dependencies surface as slow probes rather than false failures.
	// Default: 0
	CheckTimeout time.Duration

	// Parallel runs checks concurrently. The report still lists outcomes
	// in registration order.
	// Default: false
	Parallel bool

	// MaxParallel caps in-flight checks when Parallel is set.
	// Zero means no cap.
	MaxParallel int

	// Tracer, when non-nil, records one span per check.
	Tracer trace.Tracer
}

// Aggregator evaluates a fixed collection of checks into a Report.
//
// The collection is copied out of the Set at construction time: an
// Aggregator is immutable and safe for any number of concurrent
// Evaluate calls, each of which runs every check independently.
type Aggregator struct {
	config AggregatorConfig
	checks []Check
}

// NewAggregator creates an aggregator over a snapshot of set. A nil or
// empty set is valid and evaluates to an empty, passing report.
func NewAggregator(set *Set, config ...AggregatorConfig) *Aggregator {
	cfg := AggregatorConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}

	return &Aggregator{
		config: cfg,
		checks: set.Checks(),
	}
}

// Names returns the names of the aggregated checks in evaluation order.
func (a *Aggregator) Names() []string {
	names := make([]string, len(a.checks))
	for i, c := range a.checks {
		names[i] = c.name
	}
	return names
}

// Len returns the number of aggregated checks.
func (a *Aggregator) Len() int {
	return len(a.checks)
}

// Evaluate runs every check and records each outcome in registration
// order. It never aborts early: a failing check does not stop its
// siblings, and the report always holds one result per check.
func (a *Aggregator) Evaluate(ctx context.Context) Report {
	if len(a.checks) == 0 {
		return Report{}
	}

	results := make([]Result, len(a.checks))

	if a.config.Parallel {
		var g errgroup.Group
		if a.config.MaxParallel > 0 {
			g.SetLimit(a.config.MaxParallel)
		}

		for i, c := range a.checks {
			i, c := i, c
			g.Go(func() error {
				results[i] = a.runCheck(ctx, c)
				return nil
			})
		}

		g.Wait()
	} else {
		for i, c := range a.checks {
			results[i] = a.runCheck(ctx, c)
		}
	}

	return Report{results: results}
}

// runCheck resolves a single check, bounding it with CheckTimeout when
// one is configured and recording a span when a tracer is configured.
func (a *Aggregator) runCheck(ctx context.Context, c Check) Result {
	start := time.Now()

	var span trace.Span
	if a.config.Tracer != nil {
		ctx, span = a.config.Tracer.Start(ctx, "check."+c.name,
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attribute.String("check.name", c.name)),
		)
	}

	var res Result
	if a.config.CheckTimeout > 0 {
		res = a.runBounded(ctx, c)
	} else {
		res = a.runDirect(ctx, c)
	}
	res.Name = c.name
	res.Duration = time.Since(start)

	if span != nil {
		span.SetAttributes(attribute.Bool("check.ok", res.OK))
		if res.Err != nil {
			span.RecordError(res.Err)
		}
		if res.OK {
			span.SetStatus(codes.Ok, "")
		} else {
			span.SetStatus(codes.Error, "check failed")
		}
		span.End()
	}

	return res
}

// runDirect resolves the check on the calling goroutine, waiting without
// bound for it to return. A panic inside the check is recorded as a
// failed outcome rather than propagated.
func (a *Aggregator) runDirect(ctx context.Context, c Check) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{OK: false, Err: fmt.Errorf("%w: %v", ErrCheckPanic, r)}
		}
	}()

	ok, err := c.run(ctx)
	return Result{OK: ok, Err: err}
}

// runBounded resolves the check under CheckTimeout. On expiry the outcome
// is recorded as failed with ErrCheckTimeout and the check's goroutine is
// left to finish on its own.
func (a *Aggregator) runBounded(ctx context.Context, c Check) Result {
	ctx, cancel := context.WithTimeout(ctx, a.config.CheckTimeout)
	defer cancel()

	resultCh := make(chan Result, 1)

	go func() {
		resultCh <- a.runDirect(ctx, c)
	}()

	select {
	case res := <-resultCh:
		return res
	case <-ctx.Done():
		err := ctx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			err = ErrCheckTimeout
		}
		return Result{OK: false, Err: err}
	}
}
