// Package probe exposes liveness and readiness endpoints backed by named
// boolean checks.
//
// A Probe owns two endpoints: health (liveness) answers whether the
// process should keep running, ready (readiness) answers whether it
// should receive traffic. Each endpoint evaluates its own check
// collection and responds with a flat JSON object mapping check names to
// outcomes, in registration order, under a status code chosen by the
// overall result.
//
// # Basic Usage
//
//	ready := check.NewSet(
//	    check.MustNewPing("db", ping.SQL(db)),
//	    check.MustNewPing("redis", ping.Redis(rdb)),
//	)
//
//	p, err := probe.New(probe.Config{ReadyChecks: ready})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("/", appHandler)
//	http.ListenAndServe(":8080", p.Middleware(mux))
//
// GET /ready then answers 200 {"db":true,"redis":true} while both
// dependencies respond, and 500 with the failing names mapped to false
// otherwise. GET /health answers from its own collection; with no checks
// registered it is a bare process-up probe answering 200 {}.
//
// # Dispatch
//
// Middleware and Handle match on exact request path, ready before
// health. Requests that match neither endpoint, or match a disabled one,
// fall through to the host's own routing untouched. HealthHandler and
// ReadyHandler skip dispatch entirely for hosts that mount endpoints on
// their own router; RegisterMux and RegisterGin do that mounting.
package probe
