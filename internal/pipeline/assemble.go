package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/scorer"
	"github.com/sells-group/npd-cli/internal/taxonomy"
)

const (
	unmatchedPersona     = "Consumer from live channels."
	unmatchedPositioning = "Address friction from social/trends."
	unmatchedNovelty     = "Live signal — validate with R&D."
	gapSuffix            = " — Gap in current market solutions"
)

// draft is one accepted signal after classification and scoring, before
// its format is resolved.
type draft struct {
	signal  model.RawSignal
	matched bool
	match   Match
	pain    taxonomy.PainDefinition

	proxy      float64
	density    model.CompetitionDensity
	baseFormat string
	format     string
	swapped    bool
	score      float64
}

// label is the pain label, or the trimmed issue text when unmatched.
func (d draft) label() string {
	if d.matched {
		return d.match.Label
	}
	return strings.TrimSpace(d.signal.Issue)
}

// painRef returns the catalog entry when matched.
func (d draft) painRef() *taxonomy.PainDefinition {
	if !d.matched {
		return nil
	}
	return &d.pain
}

// candidate is a CandidateBrief plus the inputs aggregation needs.
type candidate struct {
	model.CandidateBrief
	proxy     float64
	subSector string
	keyword   string
}

// assembler turns drafts into candidate briefs for one brand and mode.
type assembler struct {
	tax     *taxonomy.Taxonomy
	profile *taxonomy.BrandProfile
	scorer  *scorer.Scorer
	mode    model.Mode
	formats formatResolver
}

// draft classifies and scores an accepted signal.
func (a assembler) draft(sig model.RawSignal) draft {
	d := draft{signal: sig}
	d.match, d.matched = Classify(a.profile, sig.Issue)
	if d.matched {
		d.pain, _ = a.profile.Lookup(d.match.Label)
	} else {
		d.pain = taxonomy.PainDefinition{
			Concept: strings.TrimSpace(sig.Issue),
			Format:  a.profile.DefaultFormat,
		}
	}

	d.proxy = a.profile.CompetitionProxy(d.pain.SubSector)
	d.density = scorer.CompetitionDensity(d.proxy)
	d.baseFormat = a.formats.align(d.pain.Format)

	if a.mode == model.ModeLive {
		d.score = a.scorer.Live(sig.PainIntensity, sig.FrequencyCount)
	} else {
		d.score = a.scorer.Batch(sig.FrequencyCount, d.proxy)
	}
	return d
}

// candidate builds the per-signal brief once the format is settled.
func (a assembler) candidate(d draft) candidate {
	label := d.label()
	pain := d.painRef()

	keyword := label
	if d.matched {
		keyword = d.match.Keyword
	}

	opType := model.OpportunityBlueOcean
	if d.matched && a.profile.IsEstablished(label) && !d.swapped {
		opType = model.OpportunityOptimization
	}

	persona, positioning, novelty := unmatchedPersona, unmatchedPositioning, unmatchedNovelty
	ingredients := []string{}
	if d.matched {
		persona, positioning, novelty = d.pain.Persona, d.pain.Positioning, d.pain.Positioning
		ingredients = append(ingredients, d.pain.Actives...)
	}
	if d.swapped {
		novelty += fmt.Sprintf(" Format pivoted from %s → %s (High competition in %s).", d.baseFormat, d.format, d.baseFormat)
	}

	snippet := sanitizeSnippet(d.signal.RawText, label, d.format)
	hits := nonNegative(d.signal.FrequencyCount)

	var lowSignal bool
	var formula string
	evidence := model.EvidencePanel{
		MarketplaceHits:    hits,
		BuzzMentions:       a.scorer.Buzz(a.mode, hits),
		CompetitionDensity: d.density,
		SourceURL:          d.signal.SourceURL,
	}
	if a.mode == model.ModeLive {
		lowSignal = a.scorer.LowSignalLive(d.signal.PainIntensity, d.signal.FrequencyCount)
		formula = fmt.Sprintf("(Friction × Sentiment %.1f) × %.1f / %s",
			d.signal.PainIntensity/10, a.scorer.Config().IntensityWeight, trimFloat(d.proxy))
		evidence.EvidenceSnippet = snippet
	} else {
		lowSignal = a.scorer.LowSignalBatch(hits)
		formula = batchFormula(hits, d.proxy)
	}
	evidence.FormulaString = formula

	return candidate{
		CandidateBrief: model.CandidateBrief{
			ProductBrief: model.ProductBrief{
				ConceptName:      d.pain.Concept,
				DynamicName:      productName(a.tax, keyword, d.format, pain),
				WhiteSpace:       a.whiteSpace(label),
				SignalStrength:   hits,
				OpportunityScore: d.score,
				NoveltyRationale: novelty,
				Ingredients:      ingredients,
				Citation:         extractSnippet(snippet),
				Persona:          persona,
				Positioning:      positioning,
				Format:           d.format,
				MRPRange:         a.profile.MRPFor(d.format, d.pain.SubSector),
				IsExploratory:    !d.matched || !a.profile.IsEstablished(label),
				IsLowSignal:      lowSignal,
				IsDecisionReady:  a.scorer.DecisionReady(a.mode, d.score, lowSignal),
				Evidence:         evidence,
				OpportunityType:  opType,
			},
			DedupKey: label,
		},
		proxy:     d.proxy,
		subSector: d.pain.SubSector,
		keyword:   keyword,
	}
}

// whiteSpace renders the gap description. Live briefs name the incumbent
// hassle when one is catalogued.
func (a assembler) whiteSpace(label string) string {
	if a.mode != model.ModeLive {
		return label
	}
	if h, ok := a.tax.Hassle(label); ok {
		return fmt.Sprintf("%s (%s)", label, h)
	}
	return label + gapSuffix
}

func batchFormula(hits, proxy float64) string {
	return fmt.Sprintf("(%s mentions / %s competition)", trimFloat(hits), trimFloat(proxy))
}

// trimFloat prints up to two decimals without trailing zeros.
func trimFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
