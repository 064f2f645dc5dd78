package guard

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// BearerConfig configures the bearer token guard.
type BearerConfig struct {
	// Secret is the HMAC secret tokens must verify against.
	Secret []byte

	// Issuer, when set, must match the token's iss claim.
	Issuer string

	// Audience, when set, must be present in the token's aud claim.
	Audience string
}

// Bearer returns middleware admitting only requests bearing a valid
// HMAC-signed JWT in the Authorization header.
func Bearer(config BearerConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header || tokenString == "" {
				unauthorized(w)
				return
			}
			tokenString = strings.TrimSpace(tokenString)

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return config.Secret, nil
			})
			if err != nil || !token.Valid {
				unauthorized(w)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w)
				return
			}

			if config.Issuer != "" {
				if iss, ok := claims["iss"].(string); !ok || iss != config.Issuer {
					unauthorized(w)
					return
				}
			}

			if config.Audience != "" && !containsAudience(claims, config.Audience) {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func containsAudience(claims jwt.MapClaims, target string) bool {
	switch aud := claims["aud"].(type) {
	case string:
		return aud == target
	case []interface{}:
		for _, a := range aud {
			if s, ok := a.(string); ok && s == target {
				return true
			}
		}
	}
	return false
}
