// Package pipeline turns raw consumer-friction signals into ranked product
// briefs: guardrail, classify, score, resolve format, deduplicate, assemble.
package pipeline

import (
	"cmp"
	"slices"

	"go.uber.org/zap"

	"github.com/sells-group/npd-cli/internal/metrics"
	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/scorer"
	"github.com/sells-group/npd-cli/internal/taxonomy"
)

// Engine runs analyses against one taxonomy and scorer. It holds no
// per-run state and is safe for concurrent use.
type Engine struct {
	tax    *taxonomy.Taxonomy
	scorer *scorer.Scorer
}

// NewEngine creates an Engine.
func NewEngine(tax *taxonomy.Taxonomy, sc *scorer.Scorer) *Engine {
	return &Engine{tax: tax, scorer: sc}
}

// Taxonomy returns the catalog the engine scores against.
func (e *Engine) Taxonomy() *taxonomy.Taxonomy { return e.tax }

// RunAnalysis scores export rows. Each signal's FrequencyCount is its
// mention weight. Output is deterministic for a given input.
func (e *Engine) RunAnalysis(brand model.Brand, signals []model.RawSignal) (*model.AnalysisResult, error) {
	res, err := e.run(brand, model.ModeBatch, signals)
	if err != nil {
		return nil, err
	}
	res.Stats.DatasetsAnalyzed = 1
	return res, nil
}

// RunLivePulse scores live signals by pain intensity and frequency. The
// caller sets Source on the result.
func (e *Engine) RunLivePulse(brand model.Brand, signals []model.RawSignal) (*model.LivePulseResult, error) {
	res, err := e.run(brand, model.ModeLive, signals)
	if err != nil {
		return nil, err
	}
	raw := make([]model.RawSignal, len(signals))
	copy(raw, signals)
	return &model.LivePulseResult{AnalysisResult: *res, RawSignals: raw}, nil
}

func (e *Engine) run(brand model.Brand, mode model.Mode, signals []model.RawSignal) (*model.AnalysisResult, error) {
	profile, err := e.tax.Profile(brand)
	if err != nil {
		return nil, err
	}
	cfg := e.scorer.Config()
	asm := assembler{
		tax:     e.tax,
		profile: profile,
		scorer:  e.scorer,
		mode:    mode,
		formats: newFormatResolver(e.tax, profile),
	}
	log := zap.L().With(zap.String("brand", string(brand)), zap.String("mode", string(mode)))

	stats := model.RunStats{TotalRows: len(signals)}

	// Guardrail, classification and scoring.
	drafts := make([]draft, 0, len(signals))
	for _, sig := range signals {
		if !Passes(profile.Guardrail, sig.Issue, sig.RawText) {
			stats.Rejected++
			log.Debug("pipeline: guardrail rejected signal", zap.String("id", sig.ID))
			continue
		}
		d := asm.draft(sig)
		if !d.matched {
			stats.Unmatched++
		}
		drafts = append(drafts, d)
	}
	metrics.RecordSignals(string(brand), stats.Rejected, len(drafts)-stats.Unmatched, stats.Unmatched)

	if len(drafts) == 0 {
		log.Info("pipeline: no qualifying signals", zap.Int("rows", stats.TotalRows), zap.Int("rejected", stats.Rejected))
		metrics.RecordRun(string(brand), string(mode), nil)
		return &model.AnalysisResult{
			Brand:  brand,
			Mode:   mode,
			Briefs: []model.ProductBrief{},
			NoData: true,
			Stats:  stats,
		}, nil
	}

	// Rank first so higher-scoring signals get first pick of formats.
	slices.SortStableFunc(drafts, func(x, y draft) int { return cmp.Compare(y.score, x.score) })
	drafts = asm.formats.foldFormats(drafts)

	cands := make([]candidate, 0, len(drafts))
	seen := make(map[string]bool)
	for _, d := range drafts {
		c := asm.candidate(d)
		seen[c.DedupKey] = true
		cands = append(cands, c)
	}

	cands = asm.aggregate(cands)
	sortCandidates(cands)
	cands, used := asm.diversify(cands)

	before := len(cands)
	cands = asm.backfill(cands, seen, used, cfg.MinBriefs)
	stats.Backfilled = len(cands) - before

	sortCandidates(cands)
	limit := cfg.MaxBatchBriefs
	if mode == model.ModeLive {
		limit = cfg.MaxLiveBriefs
	}
	if len(cands) > limit {
		cands = cands[:limit]
	}

	briefs := make([]model.ProductBrief, 0, len(cands))
	byType := make(map[string]int)
	for _, c := range cands {
		briefs = append(briefs, c.ProductBrief)
		byType[string(c.OpportunityType)]++
		if c.OpportunityType == model.OpportunityOptimization {
			stats.OptimizationCount++
		} else {
			stats.BlueOceanCount++
		}
		if c.SignalStrength > 0 {
			stats.HighIntensityGaps++
		}
	}
	metrics.RecordRun(string(brand), string(mode), byType)

	log.Info("pipeline: analysis complete",
		zap.Int("rows", stats.TotalRows),
		zap.Int("rejected", stats.Rejected),
		zap.Int("unmatched", stats.Unmatched),
		zap.Int("briefs", len(briefs)),
		zap.Int("backfilled", stats.Backfilled),
	)

	return &model.AnalysisResult{
		Brand:  brand,
		Mode:   mode,
		Briefs: briefs,
		NoData: len(briefs) == 0,
		Stats:  stats,
	}, nil
}

// sortCandidates orders by opportunity score, highest first. Ties keep
// their current order.
func sortCandidates(cands []candidate) {
	slices.SortStableFunc(cands, func(x, y candidate) int {
		return cmp.Compare(y.OpportunityScore, x.OpportunityScore)
	})
}
