// Package taxonomy holds the static per-brand catalog of consumer pains,
// format rules and naming tables used by the brief pipeline.
package taxonomy

import (
	_ "embed"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/npd-cli/internal/model"
)

//go:embed taxonomy.yaml
var embedded []byte

// DefaultCompetitionProxy is used when a sub-sector has no entry in the
// brand's competition table.
const DefaultCompetitionProxy = 0.7

// FormatDNA names the product-category family a brand may ship in.
type FormatDNA string

// Format families.
const (
	DNAEdible  FormatDNA = "edible"
	DNATopical FormatDNA = "topical"
)

// PainDefinition is one catalogued consumer friction point.
type PainDefinition struct {
	Label       string   `yaml:"label"`
	Keywords    []string `yaml:"keywords"`
	Concept     string   `yaml:"concept"`
	Actives     []string `yaml:"actives"`
	Persona     string   `yaml:"persona"`
	Positioning string   `yaml:"positioning"`
	Format      string   `yaml:"format"`
	SubSector   string   `yaml:"sub_sector"`
}

// Guardrail is a brand-safety filter definition. An empty allow-list
// admits any topic.
type Guardrail struct {
	AllowedTopics []string `yaml:"allowed_topics"`
	BlockedTerms  []string `yaml:"blocked_terms"`
}

// PriceTier overrides the brand MRP for matching formats or sub-sectors.
type PriceTier struct {
	Range      string   `yaml:"range"`
	Formats    []string `yaml:"formats"`
	SubSectors []string `yaml:"sub_sectors"`
}

func (p *PriceTier) matches(format, subSector string) bool {
	if p == nil || p.Range == "" {
		return false
	}
	return containsFold(p.Formats, format) || containsFold(p.SubSectors, subSector)
}

// Pricing holds optional price tiers. Premium is checked before Snack.
type Pricing struct {
	Premium *PriceTier `yaml:"premium,omitempty"`
	Snack   *PriceTier `yaml:"snack,omitempty"`
}

// BrandProfile is the read-only catalog entry for one brand.
type BrandProfile struct {
	Brand         model.Brand        `yaml:"name"`
	Categories    []string           `yaml:"categories"`
	MRPRange      string             `yaml:"mrp_range"`
	DefaultFormat string             `yaml:"default_format"`
	FormatDNA     FormatDNA          `yaml:"format_dna"`
	SearchQuery   string             `yaml:"search_query"`
	Competition   map[string]float64 `yaml:"competition"`
	Pricing       Pricing            `yaml:"pricing"`
	Guardrail     Guardrail          `yaml:"guardrail"`
	Established   []PainDefinition   `yaml:"established"`
	Exploratory   []PainDefinition   `yaml:"exploratory"`
}

// Pains returns every pain in classifier priority order: established
// pains first, then exploratory, each in catalog order.
func (b *BrandProfile) Pains() []PainDefinition {
	out := make([]PainDefinition, 0, len(b.Established)+len(b.Exploratory))
	out = append(out, b.Established...)
	return append(out, b.Exploratory...)
}

// Lookup finds a pain by label, preferring the established pool.
func (b *BrandProfile) Lookup(label string) (PainDefinition, bool) {
	for _, p := range b.Established {
		if p.Label == label {
			return p, true
		}
	}
	for _, p := range b.Exploratory {
		if p.Label == label {
			return p, true
		}
	}
	return PainDefinition{}, false
}

// IsEstablished reports whether the brand already sells against label.
func (b *BrandProfile) IsEstablished(label string) bool {
	for _, p := range b.Established {
		if p.Label == label {
			return true
		}
	}
	return false
}

// CompetitionProxy returns the 0-1 saturation estimate for a sub-sector.
func (b *BrandProfile) CompetitionProxy(subSector string) float64 {
	if p, ok := b.Competition[subSector]; ok {
		return p
	}
	return DefaultCompetitionProxy
}

// MRPFor returns the price band for a format and sub-sector.
func (b *BrandProfile) MRPFor(format, subSector string) string {
	switch {
	case b.Pricing.Premium.matches(format, subSector):
		return b.Pricing.Premium.Range
	case b.Pricing.Snack.matches(format, subSector):
		return b.Pricing.Snack.Range
	default:
		return b.MRPRange
	}
}

// NameRule maps a trigger keyword to a problem-statement product name.
type NameRule struct {
	Keyword string `yaml:"keyword"`
	Name    string `yaml:"name"`
}

// FormatRules drives brand-DNA alignment and format diversification.
type FormatRules struct {
	DNA            map[FormatDNA][]string          `yaml:"dna"`
	Remap          map[FormatDNA]map[string]string `yaml:"remap"`
	DNADefault     map[FormatDNA]string            `yaml:"dna_default"`
	Alternatives   map[string][]string             `yaml:"alternatives"`
	DiversityOrder []string                        `yaml:"diversity_order"`
}

// Taxonomy is the full catalog. It is immutable after Parse returns and
// safe for concurrent readers.
type Taxonomy struct {
	Formats FormatRules       `yaml:"formats"`
	Names   []NameRule        `yaml:"names"`
	Hassles map[string]string `yaml:"hassles"`
	Brands  []BrandProfile    `yaml:"brands"`

	byBrand map[model.Brand]*BrandProfile
}

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
)

// Default returns the embedded catalog, parsed once per process.
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		t, err := Parse(embedded)
		if err != nil {
			panic(eris.Wrap(err, "taxonomy: embedded catalog is invalid"))
		}
		defaultTax = t
	})
	return defaultTax
}

// LoadFile reads a replacement catalog from a YAML file.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "taxonomy: read %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, eris.Wrap(err, "taxonomy: parse")
	}
	if err := t.validate(); err != nil {
		return nil, err
	}

	t.byBrand = make(map[model.Brand]*BrandProfile, len(t.Brands))
	for i := range t.Brands {
		t.byBrand[t.Brands[i].Brand] = &t.Brands[i]
	}
	return &t, nil
}

func (t *Taxonomy) validate() error {
	var errs []string
	for _, dna := range slices.Sorted(maps.Keys(t.Formats.DNADefault)) {
		if def := t.Formats.DNADefault[dna]; !slices.Contains(t.Formats.DNA[dna], def) {
			errs = append(errs, "dna_default "+def+" is not in format_dna "+string(dna))
		}
	}
	seenBrand := make(map[model.Brand]bool)
	for _, b := range t.Brands {
		if _, err := model.ParseBrand(string(b.Brand)); err != nil {
			errs = append(errs, "unknown brand "+string(b.Brand))
			continue
		}
		if seenBrand[b.Brand] {
			errs = append(errs, "duplicate brand "+string(b.Brand))
		}
		seenBrand[b.Brand] = true

		allowed, ok := t.Formats.DNA[b.FormatDNA]
		if !ok {
			errs = append(errs, string(b.Brand)+": unknown format_dna "+string(b.FormatDNA))
		}
		switch {
		case b.DefaultFormat == "":
			errs = append(errs, string(b.Brand)+": default_format is required")
		case ok && !slices.Contains(allowed, b.DefaultFormat):
			errs = append(errs, string(b.Brand)+": default_format "+b.DefaultFormat+" is not in format_dna "+string(b.FormatDNA))
		}

		seenLabel := make(map[string]bool)
		for _, p := range b.Pains() {
			if p.Label == "" {
				errs = append(errs, string(b.Brand)+": pain without label")
				continue
			}
			if seenLabel[p.Label] {
				errs = append(errs, string(b.Brand)+": duplicate label "+p.Label)
			}
			seenLabel[p.Label] = true
			if len(p.Actives) == 0 {
				errs = append(errs, string(b.Brand)+": "+p.Label+" has no actives")
			}
		}
		for sector, proxy := range b.Competition {
			if proxy <= 0 || proxy > 1 {
				errs = append(errs, string(b.Brand)+": competition proxy for "+sector+" must be in (0,1]")
			}
		}
	}
	if len(errs) > 0 {
		return eris.Errorf("taxonomy: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Profile returns the catalog entry for a brand.
func (t *Taxonomy) Profile(b model.Brand) (*BrandProfile, error) {
	p, ok := t.byBrand[b]
	if !ok {
		return nil, eris.Errorf("taxonomy: no profile for brand %q", b)
	}
	return p, nil
}

// Hassle returns the incumbent-solution complaint recorded for a pain.
func (t *Taxonomy) Hassle(label string) (string, bool) {
	h, ok := t.Hassles[label]
	return h, ok
}

// ProblemName resolves a trigger keyword to a problem-statement name.
// Exact keyword matches win over the first rule whose keyword is contained
// in the trigger.
func (t *Taxonomy) ProblemName(trigger string) (string, bool) {
	trigger = strings.ToLower(strings.TrimSpace(trigger))
	if trigger == "" {
		return "", false
	}
	for _, r := range t.Names {
		if r.Keyword == trigger {
			return r.Name, true
		}
	}
	for _, r := range t.Names {
		if strings.Contains(trigger, r.Keyword) {
			return r.Name, true
		}
	}
	return "", false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
