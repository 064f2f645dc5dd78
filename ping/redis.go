package ping

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jonwraymond/probekit/check"
)

// Redis returns a probe that sends PING over an existing client.
// UniversalClient covers single-node, cluster and failover clients.
func Redis(client redis.UniversalClient) check.PingFunc {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrNilClient
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		return nil
	}
}
