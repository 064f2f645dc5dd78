package ping

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jonwraymond/probekit/check"
)

// SQL returns a probe that pings a database handle. The handle's pool
// settings apply; the probe itself adds no timeout beyond the
// evaluation context.
func SQL(db *sql.DB) check.PingFunc {
	return func(ctx context.Context) error {
		if db == nil {
			return ErrNilClient
		}
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping database: %w", err)
		}
		return nil
	}
}
