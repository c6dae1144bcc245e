package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/scorer"
	"github.com/sells-group/npd-cli/internal/taxonomy"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func newTestEngine(r float64) *Engine {
	return NewEngine(taxonomy.Default(), scorer.New(scorer.DefaultScorerConfig(), fixedRand(r)))
}

func profileFor(t *testing.T, b model.Brand) *taxonomy.BrandProfile {
	t.Helper()
	p, err := taxonomy.Default().Profile(b)
	require.NoError(t, err)
	return p
}

func row(id, text string, impact float64) model.RawSignal {
	return model.RawSignal{ID: id, Issue: text, RawText: text, FrequencyCount: impact}
}

func live(id, issue, text string, intensity, freq float64) model.RawSignal {
	return model.RawSignal{
		ID:             id,
		Issue:          issue,
		RawText:        text,
		PainIntensity:  intensity,
		FrequencyCount: freq,
		SourceURL:      "https://reddit.com/r/test/" + id,
	}
}

// highCompetitionTaxonomy is a minimal catalog where every pain sits in a
// saturated sub-sector, forcing format swaps.
const highCompetitionTaxonomy = `
formats:
  dna:
    edible: [Gummy, Squeeze Pouch, Oral Dissolving Strip, Fortified Jam, Effervescent Milk-Drops, Nutri-Mix]
  dna_default:
    edible: Nutri-Mix
  alternatives:
    Gummy: [Squeeze Pouch, Oral Dissolving Strip, Fortified Jam, Effervescent Milk-Drops]
  diversity_order: [Gummy, Squeeze Pouch, Nutri-Mix]
brands:
  - name: Little Joys
    mrp_range: "₹499 – ₹999"
    default_format: Gummy
    format_dna: edible
    competition:
      Crowded: 0.9
    established:
      - {label: Alpha Pain, keywords: [alpha], actives: [A1], format: Gummy, sub_sector: Crowded, positioning: "Alpha positioning."}
      - {label: Beta Pain, keywords: [beta], actives: [B1], format: Gummy, sub_sector: Crowded}
    exploratory:
      - {label: Gamma Pain, keywords: [gamma], actives: [G1], format: Gummy, sub_sector: Crowded}
      - {label: Delta Pain, keywords: [delta], actives: [D1], format: Gummy, sub_sector: Crowded}
      - {label: Epsilon Pain, keywords: [epsilon], actives: [E1], format: Gummy, sub_sector: Crowded}
`

func parseTaxonomy(t *testing.T, data string) *taxonomy.Taxonomy {
	t.Helper()
	tax, err := taxonomy.Parse([]byte(data))
	require.NoError(t, err)
	return tax
}
