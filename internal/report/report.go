// Package report renders analysis results as Markdown: a per-brief technical
// draft, the audit-grade executive summary and the full decision report.
package report

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/sells-group/npd-cli/internal/config"
	"github.com/sells-group/npd-cli/internal/model"
)

const (
	badgeReady     = "✅ Decision Ready"
	badgeLowSignal = "⚠️ Low Signal — R&D Required"

	maxSnippetRunes = 300
)

// Reporter renders results. Weight is the mention multiplier quoted in the
// score logic paragraph.
type Reporter struct {
	Weight float64
	Now    func() time.Time
}

// New creates a Reporter for the given scorer coefficients.
func New(cfg config.ScorerConfig) *Reporter {
	return &Reporter{Weight: cfg.BatchMultiplier, Now: time.Now}
}

// Summary is the audit-grade executive summary of a result.
type Summary struct {
	DataIntegrity    string   `json:"dataIntegrity"`
	OpportunityLogic string   `json:"opportunityLogic"`
	FormatCompliance string   `json:"formatCompliance"`
	HighPriority     []string `json:"highPriority"`
}

// Summarize builds the executive summary. High priority lists the top three
// data-backed briefs by score, or the first two briefs when every brief is
// low signal.
func (r *Reporter) Summarize(res *model.AnalysisResult) Summary {
	var backed []model.ProductBrief
	var formats []string
	for _, b := range res.Briefs {
		if !b.IsLowSignal {
			backed = append(backed, b)
		}
		if !slices.Contains(formats, b.Format) {
			formats = append(formats, b.Format)
		}
	}
	low := len(res.Briefs) - len(backed)

	top := slices.Clone(backed)
	slices.SortStableFunc(top, func(a, b model.ProductBrief) int {
		return cmp.Compare(b.OpportunityScore, a.OpportunityScore)
	})
	if len(top) == 0 {
		top = res.Briefs[:min(2, len(res.Briefs))]
	}
	top = top[:min(3, len(top))]

	priority := make([]string, 0, len(top))
	for _, b := range top {
		priority = append(priority, fmt.Sprintf("%s (Opportunity: %s)", b.DynamicName, num(b.OpportunityScore)))
	}

	return Summary{
		DataIntegrity: fmt.Sprintf(
			"%d of %d concepts are derived from CSV keyword clusters. %d \"Low Signal\" concepts are flagged to prevent R&D waste.",
			len(backed), len(res.Briefs), low),
		OpportunityLogic: fmt.Sprintf(
			"Scores are weighted against Sector Competition Proxies using the formula (Mentions × %s) / Competition Proxy. "+
				"A score of 9.0 in Little Joys (Blue Ocean) represents a higher launch priority than a 9.0 in Man Matters Hair (Red Ocean).",
			num(r.Weight)),
		FormatCompliance: fmt.Sprintf(
			"All concepts prioritize modern formats (%s) selected to solve for Indian User Compliance — Heat, Humidity, and Sugar-aversion.",
			strings.Join(formats, ", ")),
		HighPriority: priority,
	}
}

// Badge returns the decision badge for a brief, or "".
func Badge(b model.ProductBrief) string {
	switch {
	case b.IsDecisionReady:
		return badgeReady
	case b.IsLowSignal:
		return badgeLowSignal
	default:
		return ""
	}
}

// Markdown renders the full decision report: one section per brief in
// result order, then the executive summary.
func (r *Reporter) Markdown(res *model.AnalysisResult) string {
	var sb strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&sb, format, args...)
		sb.WriteByte('\n')
	}

	line("# %s — NPD Decision Pipeline Report", res.Brand)
	line("**Generated:** %s", r.now().Format("2 January 2006"))
	line("**Consumer Touchpoints Analyzed:** %d | **High-Intensity Gaps:** %d", res.Stats.TotalRows, res.Stats.HighIntensityGaps)
	line("")
	line("---")
	line("")

	for _, b := range res.Briefs {
		heading := b.DynamicName
		if badge := Badge(b); badge != "" {
			heading = badge + " | " + heading
		}
		line("## %s", heading)
		line("_Reference: %s_", b.ConceptName)
		line("")
		line("| Field | Detail |")
		line("|-------|--------|")
		line("| **White Space** | %s |", cell(b.WhiteSpace))
		line("| **Target Consumer** | %s |", cell(b.Persona))
		line("| **Format** | %s |", cell(b.Format))
		line("| **Active Ingredients** | %s |", cell(strings.Join(b.Ingredients, ", ")))
		line("| **Suggested MRP** | %s |", cell(b.MRPRange))
		line("| **Opportunity Score** | %s/10 |", num(b.OpportunityScore))
		line("| **Marketplace Hits** | %s rows |", num(b.Evidence.MarketplaceHits))
		line("| **Reddit Buzz** | %d mentions |", b.Evidence.BuzzMentions)
		line("| **Competition Density** | %s |", b.Evidence.CompetitionDensity)
		line("| **Formula** | %s |", cell(b.Evidence.FormulaString))
		line("")
		line("**Competitive Positioning:** %s", b.Positioning)
		line("")
		line("**Consumer Evidence:** _\"%s\"_", b.Citation)
		line("")
		line("---")
		line("")
	}

	s := r.Summarize(res)
	line("## Strategic Executive Summary (Audit Grade)")
	line("")
	line("### Data Integrity")
	line("%s", s.DataIntegrity)
	line("")
	line("### Opportunity Score Logic")
	line("%s", s.OpportunityLogic)
	line("")
	line("### Format Compliance")
	line("%s", s.FormatCompliance)
	line("")
	line("### High-Priority Recommendations")
	for _, p := range s.HighPriority {
		line("- **%s**", p)
	}
	return sb.String()
}

// Draft renders one brief as a technical product brief for R&D hand-off.
func Draft(b model.ProductBrief) string {
	var sb strings.Builder
	w := func(s string) {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	w("# Product Brief — " + b.DynamicName)
	w(fmt.Sprintf("**Reference Concept:** %s | **White Space:** %s", b.ConceptName, b.WhiteSpace))
	w("")
	w("## 1. Target Ingredient Profile")
	if len(b.Ingredients) == 0 {
		w("- _To be defined based on R&D validation_")
	}
	for _, ing := range b.Ingredients {
		w("- " + ing)
	}
	w("")
	w("## 2. Competitive Gap Analysis")
	w(fmt.Sprintf("- **Competition Density:** %s", b.Evidence.CompetitionDensity))
	opType := string(b.OpportunityType)
	if opType == "" {
		opType = "N/A"
	}
	w("- **Opportunity Type:** " + opType)
	w("- **Positioning:** " + b.Positioning)
	w("")
	w("## 3. Suggested USP (Unique Selling Proposition)")
	w(b.NoveltyRationale)
	w("")
	w("## 4. Target Consumer")
	w(b.Persona)
	w("")
	w("## 5. Format & MRP")
	w(fmt.Sprintf("- **Format:** %s | **MRP Range:** %s", b.Format, b.MRPRange))
	w("")
	w("## 6. Evidence")
	if b.Evidence.EvidenceSnippet != "" {
		w(`"` + truncate(b.Evidence.EvidenceSnippet, maxSnippetRunes) + `"`)
	} else {
		w(`"` + b.Citation + `"`)
	}
	if b.Evidence.SourceURL != "" {
		w("")
		sb.WriteString("**Source:** " + b.Evidence.SourceURL)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (r *Reporter) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// num formats a float the shortest way that round-trips: 9.9, 6, 0.25.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// cell escapes pipes so free text cannot break a table row.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
