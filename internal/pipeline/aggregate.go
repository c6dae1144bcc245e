package pipeline

import (
	"fmt"
	"slices"

	"github.com/sells-group/npd-cli/internal/model"
)

// aggregate folds candidates sharing a dedup key into one brief. The
// highest-scoring candidate represents the group; its evidence counts are
// replaced by the group totals. Groups keep first-seen order.
func (a assembler) aggregate(cands []candidate) []candidate {
	var order []string
	groups := make(map[string][]candidate)
	for _, c := range cands {
		if _, ok := groups[c.DedupKey]; !ok {
			order = append(order, c.DedupKey)
		}
		groups[c.DedupKey] = append(groups[c.DedupKey], c)
	}

	out := make([]candidate, 0, len(order))
	for _, key := range order {
		out = append(out, a.merge(groups[key]))
	}
	return out
}

func (a assembler) merge(group []candidate) candidate {
	best := group[0]
	var hits float64
	var buzz int
	for _, c := range group {
		if c.OpportunityScore > best.OpportunityScore {
			best = c
		}
		hits += c.Evidence.MarketplaceHits
		buzz += c.Evidence.BuzzMentions
	}

	best.Ingredients = slices.Clone(best.Ingredients)
	best.Evidence.MarketplaceHits = hits
	best.Evidence.BuzzMentions = buzz
	best.SignalStrength = hits

	if a.mode == model.ModeLive {
		best.Evidence.FormulaString = fmt.Sprintf("Aggregated from %d signal(s): %s hits, %d mentions", len(group), trimFloat(hits), buzz)
		return best
	}

	// Batch scores are a function of volume, so the group is rescored on
	// its total.
	best.OpportunityScore = a.scorer.Batch(hits, best.proxy)
	best.IsLowSignal = a.scorer.LowSignalBatch(hits)
	best.IsDecisionReady = a.scorer.DecisionReady(a.mode, best.OpportunityScore, best.IsLowSignal)
	best.Evidence.FormulaString = batchFormula(hits, best.proxy)
	return best
}
