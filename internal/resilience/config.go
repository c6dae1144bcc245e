package resilience

import (
	"time"

	"github.com/sells-group/npd-cli/internal/config"
)

// PolicyFromSearch builds the retry policy for the live search adapter.
// Retries counts extra attempts after the first call.
func PolicyFromSearch(c config.SearchConfig) RetryPolicy {
	p := DefaultRetryPolicy()
	if c.Retries >= 0 {
		p.Attempts = c.Retries + 1
	}
	p.OnRetry = LogRetries("search")
	return p
}

// BreakerFromSearch builds the search breaker config. Zero values keep defaults.
func BreakerFromSearch(c config.SearchConfig) BreakerConfig {
	b := DefaultBreakerConfig()
	if c.BreakerThreshold > 0 {
		b.Threshold = c.BreakerThreshold
	}
	if c.BreakerResetSecs > 0 {
		b.Cooldown = time.Duration(c.BreakerResetSecs) * time.Second
	}
	return b
}
