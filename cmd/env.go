package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/npd-cli/internal/config"
	"github.com/sells-group/npd-cli/internal/ingest"
	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/pipeline"
	"github.com/sells-group/npd-cli/internal/report"
	"github.com/sells-group/npd-cli/internal/resilience"
	"github.com/sells-group/npd-cli/internal/scorer"
	"github.com/sells-group/npd-cli/internal/taxonomy"
	"github.com/sells-group/npd-cli/pkg/tavily"
)

// appEnv bundles what every command needs to run an analysis.
type appEnv struct {
	Engine   *pipeline.Engine
	Reporter *report.Reporter
}

// initEnv builds the taxonomy, scorer and engine from config.
func initEnv(c *config.Config) (*appEnv, error) {
	tax := taxonomy.Default()
	if c.Taxonomy.File != "" {
		t, err := taxonomy.LoadFile(c.Taxonomy.File)
		if err != nil {
			return nil, eris.Wrap(err, "load taxonomy")
		}
		tax = t
		zap.L().Info("custom taxonomy loaded", zap.String("file", c.Taxonomy.File))
	}

	if err := scorer.ValidateConfig(c.Scorer); err != nil {
		return nil, err
	}

	return &appEnv{
		Engine:   pipeline.NewEngine(tax, scorer.New(c.Scorer, nil)),
		Reporter: report.New(c.Scorer),
	}, nil
}

// initListener wires live search. Without an API key, or offline, the
// listener serves the built-in sample set.
func initListener(c *config.Config, tax *taxonomy.Taxonomy, offline bool) *ingest.Listener {
	var client tavily.Client
	switch {
	case offline:
		zap.L().Info("offline mode: using sample signals")
	case c.Search.APIKey == "":
		zap.L().Warn("search.api_key not set, using sample signals")
	default:
		client = tavily.NewClient(c.Search.APIKey,
			tavily.WithBaseURL(c.Search.BaseURL),
			tavily.WithRateLimit(c.Search.RatePerSec),
			tavily.WithRetryPolicy(resilience.PolicyFromSearch(c.Search)),
		)
	}
	return ingest.NewListener(client, tax, c.Search)
}

// parseBrands resolves a --brand value; "all" selects every brand.
func parseBrands(s string) ([]model.Brand, error) {
	if s == "all" {
		return model.Brands(), nil
	}
	b, err := model.ParseBrand(s)
	if err != nil {
		return nil, err
	}
	return []model.Brand{b}, nil
}

// writeDrafts writes one Markdown product brief per brief into dir.
func writeDrafts(dir string, brand model.Brand, briefs []model.ProductBrief) error {
	if dir == "" || len(briefs) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return eris.Wrap(err, "create drafts dir")
	}
	for i, b := range briefs {
		name := filepath.Join(dir, draftFileName(brand, i+1))
		if err := os.WriteFile(name, []byte(report.Draft(b)+"\n"), 0o644); err != nil {
			return eris.Wrapf(err, "write draft %s", name)
		}
	}
	zap.L().Info("drafts written", zap.String("dir", dir), zap.Int("count", len(briefs)))
	return nil
}

func draftFileName(brand model.Brand, rank int) string {
	return fmt.Sprintf("%s-%02d.md", brand.Slug(), rank)
}
