package pipeline

import (
	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/taxonomy"
)

// formatResolver applies one brand's format DNA.
type formatResolver struct {
	rules   taxonomy.FormatRules
	profile *taxonomy.BrandProfile
	allowed map[string]bool
}

func newFormatResolver(tax *taxonomy.Taxonomy, profile *taxonomy.BrandProfile) formatResolver {
	allowed := make(map[string]bool)
	for _, f := range tax.Formats.DNA[profile.FormatDNA] {
		allowed[f] = true
	}
	return formatResolver{rules: tax.Formats, profile: profile, allowed: allowed}
}

// align maps a format onto the brand's allowed set: unchanged when already
// allowed, else the DNA substitution table, else the DNA default, else the brand default.
func (r formatResolver) align(format string) string {
	if r.allowed[format] {
		return format
	}
	if sub, ok := r.rules.Remap[r.profile.FormatDNA][format]; ok && r.allowed[sub] {
		return sub
	}
	if def, ok := r.rules.DNADefault[r.profile.FormatDNA]; ok && r.allowed[def] {
		return def
	}
	return r.profile.DefaultFormat
}

// resolve picks the format for one brief. Under High competition the
// aligned format is swapped for the first brand-allowed disruptive
// alternative not already in used. The bool reports a swap.
func (r formatResolver) resolve(format string, density model.CompetitionDensity, used map[string]bool) (string, bool) {
	aligned := r.align(format)
	if density != model.DensityHigh {
		return aligned, false
	}

	var alts []string
	for _, f := range r.rules.Alternatives[aligned] {
		if r.allowed[f] {
			alts = append(alts, f)
		}
	}
	if len(alts) == 0 {
		return aligned, false
	}
	for _, f := range alts {
		if !used[f] {
			return f, f != aligned
		}
	}
	return alts[0], alts[0] != aligned
}

// fallback returns the first brand-allowed format from the diversity order
// that is not in used.
func (r formatResolver) fallback(used map[string]bool) (string, bool) {
	for _, f := range r.rules.DiversityOrder {
		if r.allowed[f] && !used[f] {
			return f, true
		}
	}
	return "", false
}

// foldFormats resolves formats over drafts in rank order, threading the
// set of formats already claimed as the accumulator. Earlier drafts get
// first pick of the preferred alternative.
func (r formatResolver) foldFormats(drafts []draft) []draft {
	out := make([]draft, 0, len(drafts))
	used := map[string]bool{}
	for _, d := range drafts {
		d.format, d.swapped = r.resolve(d.baseFormat, d.density, used)
		used[d.format] = true
		out = append(out, d)
	}
	return out
}
