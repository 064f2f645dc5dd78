package guard

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"
)

// APIKeyConfig configures the API key guard.
type APIKeyConfig struct {
	// Header is the header carrying the key.
	// Default: "X-API-Key"
	Header string

	// Keys are the accepted keys. With no keys configured every request
	// is rejected.
	Keys []string
}

// APIKey returns middleware admitting only requests whose key header
// matches one of the configured keys. Comparison is constant-time over
// SHA-256 digests.
func APIKey(config APIKeyConfig) Middleware {
	header := config.Header
	if header == "" {
		header = "X-API-Key"
	}

	hashes := make([][sha256.Size]byte, len(config.Keys))
	for i, key := range config.Keys {
		hashes[i] = sha256.Sum256([]byte(key))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := strings.TrimSpace(r.Header.Get(header))
			if provided == "" {
				unauthorized(w)
				return
			}

			providedHash := sha256.Sum256([]byte(provided))
			for i := range hashes {
				if subtle.ConstantTimeCompare(hashes[i][:], providedHash[:]) == 1 {
					next.ServeHTTP(w, r)
					return
				}
			}

			unauthorized(w)
		})
	}
}
