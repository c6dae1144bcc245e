package pipeline

import "github.com/sells-group/npd-cli/internal/taxonomy"

// diversify walks briefs in rank order and moves any brief whose format was
// already claimed to the first unused brand-allowed fallback format,
// rebuilding its name and price band. When every fallback is taken the
// duplicate format stays. Returns the claimed set for backfill.
func (a assembler) diversify(cands []candidate) ([]candidate, map[string]bool) {
	used := make(map[string]bool)
	out := make([]candidate, 0, len(cands))
	for _, c := range cands {
		c.Format = a.formats.align(c.Format)
		if used[c.Format] {
			if alt, ok := a.formats.fallback(used); ok {
				c = a.reformat(c, alt)
			}
		}
		used[c.Format] = true
		out = append(out, c)
	}
	return out, used
}

func (a assembler) reformat(c candidate, format string) candidate {
	pain := a.painFor(c)
	c.Format = format
	c.DynamicName = productName(a.tax, c.keyword, format, pain)
	c.MRPRange = a.profile.MRPFor(format, c.subSector)
	return c
}

func (a assembler) painFor(c candidate) *taxonomy.PainDefinition {
	if p, ok := a.profile.Lookup(c.DedupKey); ok {
		return &p
	}
	return nil
}
