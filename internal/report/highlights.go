package report

import (
	"fmt"
	"strings"

	"github.com/sells-group/npd-cli/internal/model"
)

// Highlight is one headline point derived from the top brief.
type Highlight struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Highlights summarises the highest-scoring brief as pain point, market gap
// and recommendation. It returns nil when there are no briefs.
func Highlights(brand model.Brand, briefs []model.ProductBrief) []Highlight {
	if len(briefs) == 0 {
		return nil
	}
	top := briefs[0]
	for _, b := range briefs[1:] {
		if b.OpportunityScore > top.OpportunityScore {
			top = b
		}
	}

	var competition string
	switch top.Evidence.CompetitionDensity {
	case model.DensityLow:
		competition = "low competition density — a clear Blue Ocean"
	case model.DensityMedium:
		competition = "moderate competition, with room to differentiate"
	default:
		competition = "high competition, requiring a strong unique value proposition"
	}

	action := "exploratory R&D validation"
	if top.IsDecisionReady {
		action = "immediate R&D initiation"
	}

	return []Highlight{
		{
			Label: "Pain Point",
			Text: fmt.Sprintf("Top consumer friction detected for %s: \"%s\". Signal strength: %s/10 with %d Reddit mentions and %s marketplace data points.",
				brand, top.WhiteSpace, num(top.SignalStrength), top.Evidence.BuzzMentions, num(top.Evidence.MarketplaceHits)),
		},
		{
			Label: "Market Gap",
			Text: fmt.Sprintf("\"%s\" targets an unserved segment with %s. %s marketplace rows confirm consumer demand is real and unmet. Opportunity score: %s/10.",
				top.DynamicName, competition, num(top.Evidence.MarketplaceHits), num(top.OpportunityScore)),
		},
		{
			Label: "Recommendation",
			Text: fmt.Sprintf("Prioritise %s for \"%s\" — %s with %s. Suggested MRP: %s. Positioning: %s",
				action, top.DynamicName, top.Format, strings.Join(top.Ingredients[:min(3, len(top.Ingredients))], ", "), top.MRPRange, top.Positioning),
		},
	}
}
