package pipeline

import (
	"math"

	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/scorer"
	"github.com/sells-group/npd-cli/internal/taxonomy"
)

const (
	backfillWhiteSpaceSuffix = " — Exploratory gap based on category trends"
	backfillFormula          = "Backfilled from category intelligence"
)

// backfill pads a thin result with exploratory briefs drawn from catalog
// pains not seen in this run, until min is reached or the catalog runs out.
// Backfilled briefs carry no real signal volume. In batch mode they never
// score above the weakest observed brief.
func (a assembler) backfill(cands []candidate, seen, used map[string]bool, min int) []candidate {
	ceiling := math.Inf(1)
	if a.mode == model.ModeBatch {
		for _, c := range cands {
			ceiling = math.Min(ceiling, c.OpportunityScore)
		}
	}

	for _, p := range a.profile.Pains() {
		if len(cands) >= min {
			break
		}
		if seen[p.Label] {
			continue
		}
		seen[p.Label] = true

		format, ok := a.formats.fallback(used)
		if !ok {
			format = a.formats.align(p.Format)
		}
		used[format] = true

		c := a.backfillCandidate(p, format)
		c.OpportunityScore = math.Min(c.OpportunityScore, ceiling)
		cands = append(cands, c)
	}
	return cands
}

func (a assembler) backfillCandidate(p taxonomy.PainDefinition, format string) candidate {
	proxy := a.profile.CompetitionProxy(p.SubSector)
	var keyword string
	if len(p.Keywords) > 0 {
		keyword = p.Keywords[0]
	}

	return candidate{
		CandidateBrief: model.CandidateBrief{
			ProductBrief: model.ProductBrief{
				ConceptName:      p.Concept,
				DynamicName:      sanitizeProductName(p.Actives[0]+" "+format, &p, format),
				WhiteSpace:       p.Label + backfillWhiteSpaceSuffix,
				SignalStrength:   0,
				OpportunityScore: a.scorer.Backfill(a.mode),
				NoveltyRationale: p.Positioning,
				Ingredients:      append([]string(nil), p.Actives...),
				Citation:         genericJustification(p.Label, format),
				Persona:          p.Persona,
				Positioning:      p.Positioning,
				Format:           format,
				MRPRange:         a.profile.MRPFor(format, p.SubSector),
				IsExploratory:    true,
				IsLowSignal:      true,
				IsDecisionReady:  false,
				OpportunityType:  model.OpportunityBlueOcean,
				Evidence: model.EvidencePanel{
					CompetitionDensity: scorer.CompetitionDensity(proxy),
					FormulaString:      backfillFormula,
				},
			},
			DedupKey: p.Label,
		},
		proxy:     proxy,
		subSector: p.SubSector,
		keyword:   keyword,
	}
}
