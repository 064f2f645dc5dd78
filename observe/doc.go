// Package observe provides the structured logging used across probekit.
//
// It is a pure instrumentation library: no execution, no transport, no I/O
// beyond writing log lines. Hosts either take the built-in JSON logger or
// adapt their own with NewZapLogger.
package observe
