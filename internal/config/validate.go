package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// Validate checks the settings a command mode depends on. Supported
// modes are "analyze", "live" and "serve".
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "analyze":
	case "live":
		errs = append(errs, c.Search.validate()...)
	case "serve":
		errs = append(errs, c.Search.validate()...)
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be > 0 and <= 65535")
		}
		if c.Server.RequestTimeoutSecs <= 0 {
			errs = append(errs, "server.request_timeout_secs must be > 0")
		}
		if c.Server.MaxBodyBytes <= 0 {
			errs = append(errs, "server.max_body_bytes must be > 0")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (s SearchConfig) validate() []string {
	var errs []string
	if s.BaseURL == "" {
		errs = append(errs, "search.base_url is required")
	}
	if s.MaxResults < 1 || s.MaxResults > 20 {
		errs = append(errs, fmt.Sprintf("search.max_results must be between 1 and 20, got %d", s.MaxResults))
	}
	if s.SearchDepth != "basic" && s.SearchDepth != "advanced" {
		errs = append(errs, "search.search_depth must be basic or advanced")
	}
	if s.TimeoutSecs <= 0 {
		errs = append(errs, "search.timeout_secs must be > 0")
	}
	if s.Retries < 0 {
		errs = append(errs, "search.retries must be >= 0")
	}
	if s.RatePerSec <= 0 {
		errs = append(errs, "search.rate_per_sec must be > 0")
	}
	if s.MaxSignals < s.MinCleanSignals {
		errs = append(errs, "search.max_signals must be >= search.min_clean_signals")
	}
	return errs
}
