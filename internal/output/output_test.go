package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/report"
	"github.com/sells-group/npd-cli/internal/scorer"
	"github.com/sells-group/npd-cli/internal/taxonomy"
)

func sampleResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Brand: model.BrandBeBodywise,
		Mode:  model.ModeBatch,
		Briefs: []model.ProductBrief{
			{
				DynamicName:      "The Strawberry Skin Eraser — Roll-on",
				Format:           "Roll-on",
				OpportunityScore: 9.9,
				IsDecisionReady:  true,
				OpportunityType:  model.OpportunityBlueOcean,
				Evidence:         model.EvidencePanel{MarketplaceHits: 40, CompetitionDensity: model.DensityLow},
			},
			{
				DynamicName:      "The Period Pain Fix — Gummy",
				Format:           "Gummy",
				OpportunityScore: 0.24,
				IsLowSignal:      true,
				OpportunityType:  model.OpportunityOptimization,
				Evidence:         model.EvidencePanel{MarketplaceHits: 2, CompetitionDensity: model.DensityMedium},
			},
		},
		Stats: model.RunStats{TotalRows: 12, Rejected: 1, HighIntensityGaps: 1},
	}
}

func newTestPrinter(buf *bytes.Buffer, f Format) *Printer {
	return NewPrinter(buf, f, false, report.New(scorer.DefaultScorerConfig()))
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"table":      FormatTable,
		"JSON":       FormatJSON,
		" markdown ": FormatMarkdown,
		"md":         FormatMarkdown,
		"html":       FormatHTML,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestAnalysis_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := newTestPrinter(&buf, FormatTable).Analysis(sampleResult()); err != nil {
		t.Fatalf("Analysis: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Be Bodywise (batch)",
		"rows=12 rejected=1",
		"The Strawberry Skin Eraser — Roll-on",
		"9.9",
		"ready",
		"low signal",
		"Blue Ocean",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("colors disabled but found escape codes: %q", out)
	}
}

func TestAnalysis_NoData(t *testing.T) {
	var buf bytes.Buffer
	res := &model.AnalysisResult{Brand: model.BrandLittleJoys, Mode: model.ModeBatch, NoData: true}
	if err := newTestPrinter(&buf, FormatTable).Analysis(res); err != nil {
		t.Fatalf("Analysis: %v", err)
	}
	if !strings.Contains(buf.String(), "No briefs") {
		t.Errorf("expected no-data notice, got %q", buf.String())
	}
}

func TestAnalysis_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := newTestPrinter(&buf, FormatJSON).Analysis(sampleResult()); err != nil {
		t.Fatalf("Analysis: %v", err)
	}

	var got model.AnalysisResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got.Briefs) != 2 || got.Briefs[0].DynamicName != "The Strawberry Skin Eraser — Roll-on" {
		t.Errorf("unexpected briefs: %+v", got.Briefs)
	}
	if !strings.Contains(buf.String(), `"redditBuzz"`) {
		t.Errorf("expected wire field names, got %s", buf.String())
	}
}

func TestAnalysis_Markdown(t *testing.T) {
	var buf bytes.Buffer
	if err := newTestPrinter(&buf, FormatMarkdown).Analysis(sampleResult()); err != nil {
		t.Fatalf("Analysis: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "# Be Bodywise — NPD Decision Pipeline Report") {
		t.Errorf("unexpected markdown: %q", buf.String())
	}
}

func TestAnalysis_HTML(t *testing.T) {
	var buf bytes.Buffer
	if err := newTestPrinter(&buf, FormatHTML).Analysis(sampleResult()); err != nil {
		t.Fatalf("Analysis: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "<!doctype html>") {
		t.Errorf("unexpected html: %q", buf.String())
	}
}

func TestLive_TableShowsSource(t *testing.T) {
	var buf bytes.Buffer
	res := &model.LivePulseResult{AnalysisResult: *sampleResult(), Source: "live+sample"}
	res.Mode = model.ModeLive

	if err := newTestPrinter(&buf, FormatTable).Live(res); err != nil {
		t.Fatalf("Live: %v", err)
	}
	if !strings.Contains(buf.String(), "Be Bodywise (live) source=live+sample") {
		t.Errorf("missing source heading: %q", buf.String())
	}
}

func TestLive_JSON(t *testing.T) {
	var buf bytes.Buffer
	res := &model.LivePulseResult{AnalysisResult: *sampleResult(), Source: "sample"}

	if err := newTestPrinter(&buf, FormatJSON).Live(res); err != nil {
		t.Fatalf("Live: %v", err)
	}
	if !strings.Contains(buf.String(), `"source": "sample"`) {
		t.Errorf("missing source field: %s", buf.String())
	}
}

func TestBrands(t *testing.T) {
	var buf bytes.Buffer
	if err := newTestPrinter(&buf, FormatTable).Brands(taxonomy.Default()); err != nil {
		t.Fatalf("Brands: %v", err)
	}
	out := buf.String()
	for _, b := range model.Brands() {
		if !strings.Contains(out, string(b)) {
			t.Errorf("brands table missing %q", b)
		}
	}
}

func TestPaint(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable, true, nil)
	got := p.paint("ready", 32)
	if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "ready") {
		t.Errorf("expected colored text, got %q", got)
	}

	p.useColors = false
	if got := p.paint("ready", 32); got != "ready" {
		t.Errorf("paint without colors = %q", got)
	}
}

func TestProxies(t *testing.T) {
	got := proxies(map[string]float64{"Skin": 0.85, "Acne": 0.6})
	if got != "Acne=0.6 Skin=0.85" {
		t.Errorf("proxies = %q", got)
	}
}
