package ping

import (
	"context"
	"fmt"
	"runtime"

	"github.com/jonwraymond/probekit/check"
)

// MemoryConfig configures the memory probe.
type MemoryConfig struct {
	// CriticalThreshold is the fraction of MaxAlloc above which the
	// probe fails. Values outside (0, 1) fall back to the default.
	// Default: 0.95
	CriticalThreshold float64

	// MaxAlloc is the allocation budget in bytes. Zero measures against
	// the runtime's current Sys value.
	MaxAlloc uint64
}

// Memory returns a probe over the process's heap usage. It fails once
// allocated memory crosses the critical threshold of the budget.
func Memory(config ...MemoryConfig) check.PingFunc {
	cfg := MemoryConfig{CriticalThreshold: 0.95}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.CriticalThreshold <= 0 || cfg.CriticalThreshold >= 1 {
			cfg.CriticalThreshold = 0.95
		}
	}

	return func(ctx context.Context) error {
		var stats runtime.MemStats
		runtime.ReadMemStats(&stats)

		maxAlloc := cfg.MaxAlloc
		if maxAlloc == 0 {
			maxAlloc = stats.Sys
		}
		if maxAlloc == 0 {
			return nil
		}

		usage := float64(stats.Alloc) / float64(maxAlloc)
		if usage >= cfg.CriticalThreshold {
			return fmt.Errorf("memory usage critical: %.1f%% of %d bytes", usage*100, maxAlloc)
		}
		return nil
	}
}
