package scorer

import (
	"math"
	"math/rand/v2"

	"github.com/sells-group/npd-cli/internal/config"
	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/taxonomy"
)

// Rand is the random source used for live tie-break jitter and backfill
// scores. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Scorer applies one ScorerConfig. It holds no per-run state.
type Scorer struct {
	cfg config.ScorerConfig
	rnd Rand
}

// New creates a Scorer. A nil rnd uses the process-wide generator.
func New(cfg config.ScorerConfig, rnd Rand) *Scorer {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Scorer{cfg: cfg, rnd: rnd}
}

// Config returns the coefficients in use.
func (s *Scorer) Config() config.ScorerConfig { return s.cfg }

// Batch scores an aggregated mention count against a competition proxy.
// Zero hits always score zero.
func (s *Scorer) Batch(hits, proxy float64) float64 {
	if hits <= 0 || math.IsNaN(hits) {
		return 0
	}
	if proxy <= 0 || math.IsNaN(proxy) {
		proxy = taxonomy.DefaultCompetitionProxy
	}
	raw := hits * s.cfg.BatchMultiplier / proxy / s.cfg.BatchDivisor
	return round1(math.Min(raw, s.cfg.ScoreCap))
}

// Live scores one live signal from its pain intensity and frequency. The
// result always lies in [LiveFloor, ScoreCap].
func (s *Scorer) Live(intensity, frequency float64) float64 {
	friction := math.Min(nonNegative(intensity), s.cfg.IntensityCap)
	freq := math.Min(nonNegative(frequency)/s.cfg.FrequencyDivisor, s.cfg.FrequencyCap)
	raw := friction*s.cfg.IntensityWeight + freq*s.cfg.FrequencyWeight + s.rnd.Float64()*s.cfg.Jitter
	return round1(clamp(raw, s.cfg.LiveFloor, s.cfg.ScoreCap))
}

// Backfill returns the score for a synthetic exploratory brief. Live runs
// get a randomized mid-range score; batch runs get the fixed
// BatchBackfillScore.
func (s *Scorer) Backfill(mode model.Mode) float64 {
	if mode != model.ModeLive {
		return round1(clamp(s.cfg.BatchBackfillScore, 0, s.cfg.ScoreCap))
	}
	raw := s.cfg.BackfillBase + s.rnd.Float64()*s.cfg.BackfillSpread
	return round1(clamp(raw, s.cfg.LiveFloor, s.cfg.ScoreCap))
}

// LowSignalBatch reports whether an aggregated hit count is too thin to act on.
func (s *Scorer) LowSignalBatch(hits float64) bool {
	return hits < s.cfg.BatchLowSignalHits
}

// LowSignalLive reports whether a live signal is weak on both axes.
func (s *Scorer) LowSignalLive(intensity, frequency float64) bool {
	return intensity < s.cfg.LiveLowIntensity && frequency < s.cfg.LiveLowFrequency
}

// DecisionReady reports whether a brief can go straight to R&D. Low-signal
// briefs are never decision ready.
func (s *Scorer) DecisionReady(mode model.Mode, score float64, lowSignal bool) bool {
	if lowSignal {
		return false
	}
	if mode == model.ModeLive {
		return score > s.cfg.LiveDecisionScore
	}
	return score > s.cfg.BatchDecisionScore
}

// Buzz estimates social mentions from a hit count.
func (s *Scorer) Buzz(mode model.Mode, hits float64) int {
	ratio := s.cfg.BatchBuzzRatio
	if mode == model.ModeLive {
		ratio = s.cfg.LiveBuzzRatio
	}
	return int(math.Floor(nonNegative(hits) * ratio))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
