package ping

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/vault/api"

	"github.com/jonwraymond/probekit/check"
)

// Vault returns a probe that queries Vault's health endpoint and passes
// only when the server is initialized and unsealed.
func Vault(client *api.Client) check.PingFunc {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrNilClient
		}

		health, err := client.Sys().HealthWithContext(ctx)
		if err != nil {
			return fmt.Errorf("vault health: %w", err)
		}
		if !health.Initialized {
			return errors.New("vault not initialized")
		}
		if health.Sealed {
			return errors.New("vault sealed")
		}
		return nil
	}
}
