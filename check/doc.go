// Package check provides named boolean checks and their aggregation.
//
// This package implements the evaluation core behind liveness and readiness
// probes. A check pairs a name with a predicate; a Set collects checks in
// registration order, keeping the first check registered under each name;
// an Aggregator evaluates a Set into a Report whose JSON form preserves
// that order.
//
// # Defining Checks
//
// Checks are built from a boolean predicate or from an error-returning
// probe function:
//
//	db, err := check.New("db", func(ctx context.Context) bool {
//	    return pool.Healthy()
//	})
//
//	redis, err := check.NewPing("redis", ping.Redis(client))
//
// Names must be non-blank; construction fails otherwise.
//
// # Collecting and Evaluating
//
// A Set is a configuration-time builder. Hand it to an Aggregator, which
// snapshots the collection and is then safe for concurrent evaluation:
//
//	set := check.NewSet(db, redis)
//	agg := check.NewAggregator(set)
//
//	report := agg.Evaluate(ctx)
//	body, _ := json.Marshal(report) // {"db":true,"redis":true}
//
// Evaluation never aborts early: every check runs, every outcome is
// recorded, and a panicking or timed-out check is reported as failed
// without disturbing the others.
package check
