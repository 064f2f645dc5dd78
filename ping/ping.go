package ping

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jonwraymond/probekit/check"
)

// HTTP returns a probe that issues a GET against url and passes on any
// 2xx response. A nil client falls back to http.DefaultClient; pass a
// client with its own Timeout to bound the request independently of the
// evaluation context.
func HTTP(url string, client *http.Client) check.PingFunc {
	return func(ctx context.Context) error {
		c := client
		if c == nil {
			c = http.DefaultClient
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}

		resp, err := c.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return fmt.Errorf("unexpected status: %d", resp.StatusCode)
		}
		return nil
	}
}

// TCP returns a probe that dials addr and passes when the connection is
// accepted. The timeout bounds each dial; zero leaves it to the
// evaluation context.
func TCP(addr string, timeout time.Duration) check.PingFunc {
	return func(ctx context.Context) error {
		dialer := net.Dialer{Timeout: timeout}

		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return fmt.Errorf("dial %s: %w", addr, err)
		}
		return conn.Close()
	}
}
