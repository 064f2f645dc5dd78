package guard

import "net/http"

// Middleware is the standard wrapping shape shared by all guards.
type Middleware func(http.Handler) http.Handler

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
