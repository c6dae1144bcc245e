// Package scorer computes opportunity scores, competition density tiers and
// the decision-ready / low-signal flags for product briefs.
package scorer

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/npd-cli/internal/config"
)

// DefaultScorerConfig returns a config.ScorerConfig with the standard
// coefficients for both scoring modes.
func DefaultScorerConfig() config.ScorerConfig {
	return config.ScorerConfig{
		// Batch: hits * 1.2 / proxy / 10.
		BatchMultiplier: 1.2,
		BatchDivisor:    10,
		ScoreCap:        9.9,

		// Live: intensity weighted over normalized frequency.
		LiveFloor:        3.0,
		IntensityWeight:  1.2,
		IntensityCap:     10,
		FrequencyWeight:  0.5,
		FrequencyDivisor: 5,
		FrequencyCap:     10,
		Jitter:           2,

		// Flags.
		BatchDecisionScore: 8.0,
		LiveDecisionScore:  7.5,
		BatchLowSignalHits: 3,
		LiveLowIntensity:   5,
		LiveLowFrequency:   10,

		// Evidence.
		BatchBuzzRatio: 0.25,
		LiveBuzzRatio:  0.3,

		// Volume.
		BackfillBase:       4.0,
		BackfillSpread:     3.0,
		BatchBackfillScore: 1.5,
		MinBriefs:          5,
		MaxLiveBriefs:      7,
		MaxBatchBriefs:     18,
	}
}

type namedValue struct {
	name  string
	value float64
}

// ValidateConfig checks that a ScorerConfig is internally consistent.
func ValidateConfig(c config.ScorerConfig) error {
	var errs []string

	// Multipliers and divisors must be positive.
	positive := []namedValue{
		{"batch_multiplier", c.BatchMultiplier},
		{"batch_divisor", c.BatchDivisor},
		{"score_cap", c.ScoreCap},
		{"intensity_weight", c.IntensityWeight},
		{"intensity_cap", c.IntensityCap},
		{"frequency_divisor", c.FrequencyDivisor},
		{"frequency_cap", c.FrequencyCap},
	}
	for _, f := range positive {
		if f.value <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be > 0", f.name))
		}
	}

	nonNegative := []namedValue{
		{"live_floor", c.LiveFloor},
		{"frequency_weight", c.FrequencyWeight},
		{"jitter", c.Jitter},
		{"backfill_base", c.BackfillBase},
		{"backfill_spread", c.BackfillSpread},
		{"batch_backfill_score", c.BatchBackfillScore},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", f.name))
		}
	}

	if c.LiveFloor >= c.ScoreCap {
		errs = append(errs, "live_floor must be < score_cap")
	}
	if c.BatchBackfillScore > c.ScoreCap {
		errs = append(errs, "batch_backfill_score must be <= score_cap")
	}
	if c.BatchDecisionScore > c.ScoreCap || c.LiveDecisionScore > c.ScoreCap {
		errs = append(errs, "decision scores must be <= score_cap")
	}

	// Buzz ratios are fractions of hits.
	if c.BatchBuzzRatio < 0 || c.BatchBuzzRatio > 1 {
		errs = append(errs, "batch_buzz_ratio must be between 0 and 1")
	}
	if c.LiveBuzzRatio < 0 || c.LiveBuzzRatio > 1 {
		errs = append(errs, "live_buzz_ratio must be between 0 and 1")
	}

	// Volume.
	if c.MinBriefs < 0 {
		errs = append(errs, "min_briefs must be >= 0")
	}
	if c.MaxLiveBriefs < c.MinBriefs {
		errs = append(errs, "max_live_briefs must be >= min_briefs")
	}
	if c.MaxBatchBriefs < c.MinBriefs {
		errs = append(errs, "max_batch_briefs must be >= min_briefs")
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
