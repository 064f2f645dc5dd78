// Package guard provides HTTP middleware for protecting probe endpoints.
//
// Health and readiness endpoints leak topology: check names reveal which
// dependencies a service has and which are down. When probes are exposed
// beyond the pod boundary, wrap them:
//
//	protected := guard.APIKey(guard.APIKeyConfig{
//	    Keys: []string{os.Getenv("PROBE_KEY")},
//	})(p.Middleware(mux))
//
// APIKey admits requests carrying a configured key in a header; Bearer
// admits requests carrying a valid HMAC-signed JWT. Rejected requests
// receive 401 with a JSON error body and never reach the probe.
package guard
