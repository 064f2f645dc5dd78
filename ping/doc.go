// Package ping provides ready-made probe functions for common
// dependencies: HTTP endpoints, TCP listeners, SQL databases, Redis,
// Vault and process memory.
//
// Every constructor returns a check.PingFunc, so wiring a dependency
// into a probe is one line:
//
//	set := check.NewSet(
//	    check.MustNewPing("db", ping.SQL(db)),
//	    check.MustNewPing("redis", ping.Redis(rdb)),
//	    check.MustNewPing("upstream", ping.HTTP("http://auth:8080/health", nil)),
//	)
//
// Probes honor the evaluation context and return nil on success; the
// returned error is kept on the check result for logging.
package ping
