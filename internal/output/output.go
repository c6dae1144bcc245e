// Package output renders analysis results for the terminal: a colored
// table, indented JSON or the Markdown decision report.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/rotisserie/eris"

	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/report"
	"github.com/sells-group/npd-cli/internal/taxonomy"
)

// Format is an output rendering.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatMarkdown, FormatHTML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", eris.Errorf("output: unknown format %q (want table, json, markdown or html)", s)
	}
}

// UseColors reports whether color should be emitted to the terminal.
func UseColors() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb" && !color.NoColor
}

// Printer writes results in the chosen format.
type Printer struct {
	out       io.Writer
	format    Format
	useColors bool
	reporter  *report.Reporter
}

// NewPrinter creates a Printer. rep renders the Markdown format.
func NewPrinter(out io.Writer, format Format, useColors bool, rep *report.Reporter) *Printer {
	return &Printer{out: out, format: format, useColors: useColors, reporter: rep}
}

// Analysis prints a batch result.
func (p *Printer) Analysis(res *model.AnalysisResult) error {
	switch p.format {
	case FormatJSON:
		return p.json(res)
	case FormatMarkdown, FormatHTML:
		return p.document(res)
	default:
		p.heading(res, "")
		return p.briefs(res)
	}
}

// Live prints a live scan result, including where its signals came from.
func (p *Printer) Live(res *model.LivePulseResult) error {
	switch p.format {
	case FormatJSON:
		return p.json(res)
	case FormatMarkdown, FormatHTML:
		return p.document(&res.AnalysisResult)
	default:
		p.heading(&res.AnalysisResult, res.Source)
		return p.briefs(&res.AnalysisResult)
	}
}

// Brands prints the brand catalog: categories, pain pools and the
// competition proxy per sub-sector.
func (p *Printer) Brands(tax *taxonomy.Taxonomy) error {
	if p.format == FormatJSON {
		return p.json(tax.Brands)
	}

	t := NewTable(p.out, []string{"Brand", "Categories", "Established", "Exploratory", "Competition", "MRP"})
	for _, b := range tax.Brands {
		t.AddRow(
			string(b.Brand),
			strings.Join(b.Categories, ", "),
			strconv.Itoa(len(b.Established)),
			strconv.Itoa(len(b.Exploratory)),
			proxies(b.Competition),
			b.MRPRange,
		)
	}
	return t.Render()
}

// document writes the decision report as Markdown or HTML.
func (p *Printer) document(res *model.AnalysisResult) error {
	doc := p.reporter.Markdown(res)
	if p.format == FormatHTML {
		var err error
		if doc, err = p.reporter.HTML(res); err != nil {
			return err
		}
	}
	_, err := io.WriteString(p.out, doc)
	return err
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return eris.Wrap(err, "output: encode json")
	}
	return nil
}

func (p *Printer) heading(res *model.AnalysisResult, source string) {
	title := fmt.Sprintf("%s (%s)", res.Brand, res.Mode)
	if source != "" {
		title += " source=" + source
	}
	fmt.Fprintln(p.out, p.paint(title, color.Bold))
	s := res.Stats
	fmt.Fprintf(p.out, "rows=%d rejected=%d unmatched=%d gaps=%d backfilled=%d blue_ocean=%d optimization=%d\n\n",
		s.TotalRows, s.Rejected, s.Unmatched, s.HighIntensityGaps, s.Backfilled, s.BlueOceanCount, s.OptimizationCount)
}

func (p *Printer) briefs(res *model.AnalysisResult) error {
	if res.NoData || len(res.Briefs) == 0 {
		fmt.Fprintln(p.out, p.paint("No briefs: no usable signals for this brand.", color.FgYellow))
		return nil
	}

	t := NewTable(p.out, []string{"#", "Brief", "Format", "Score", "Hits", "Density", "Type", "Status"})
	for i, b := range res.Briefs {
		t.AddRow(
			strconv.Itoa(i+1),
			b.DynamicName,
			b.Format,
			strconv.FormatFloat(b.OpportunityScore, 'f', 1, 64),
			strconv.FormatFloat(b.Evidence.MarketplaceHits, 'f', -1, 64),
			string(b.Evidence.CompetitionDensity),
			string(b.OpportunityType),
			p.status(b),
		)
	}
	return t.Render()
}

func (p *Printer) status(b model.ProductBrief) string {
	switch {
	case b.IsDecisionReady:
		return p.paint("ready", color.FgGreen)
	case b.IsLowSignal:
		return p.paint("low signal", color.FgYellow)
	case b.IsExploratory:
		return p.paint("exploratory", color.FgCyan)
	default:
		return "-"
	}
}

func (p *Printer) paint(s string, attrs ...color.Attribute) string {
	if !p.useColors {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func proxies(m map[string]float64) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, strconv.FormatFloat(m[k], 'f', -1, 64)))
	}
	return strings.Join(parts, " ")
}
