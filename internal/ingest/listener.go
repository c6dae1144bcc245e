package ingest

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/npd-cli/internal/config"
	"github.com/sells-group/npd-cli/internal/metrics"
	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/pipeline"
	"github.com/sells-group/npd-cli/internal/resilience"
	"github.com/sells-group/npd-cli/internal/taxonomy"
	"github.com/sells-group/npd-cli/pkg/tavily"
)

// Signal sources reported on a live scan.
const (
	SourceLive       = "live"
	SourceLiveSample = "live+sample"
	SourceSample     = "sample"
)

// minContentLen is the shortest snippet kept from a search result.
const minContentLen = 30

// Scan is the signal set a Listener produced and where it came from.
type Scan struct {
	Signals []model.RawSignal
	Source  string
}

// Listener gathers live friction signals for a brand from web search,
// falling back to the curated sample set whenever search is unavailable,
// fails or returns too little.
type Listener struct {
	client  tavily.Client
	tax     *taxonomy.Taxonomy
	cfg     config.SearchConfig
	breaker *resilience.Breaker
}

// NewListener creates a Listener. A nil client always serves samples.
func NewListener(client tavily.Client, tax *taxonomy.Taxonomy, cfg config.SearchConfig) *Listener {
	return &Listener{
		client:  client,
		tax:     tax,
		cfg:     cfg,
		breaker: resilience.NewBreaker(resilience.BreakerFromSearch(cfg)),
	}
}

// Listen returns signals for brand. Search failures never surface as
// errors; only an unknown brand does.
func (l *Listener) Listen(ctx context.Context, brand model.Brand) (Scan, error) {
	profile, err := l.tax.Profile(brand)
	if err != nil {
		return Scan{}, err
	}
	log := zap.L().With(zap.String("brand", string(brand)))

	scan := l.listen(ctx, profile, log)
	metrics.RecordLiveSearch(string(brand), scan.Source)
	log.Info("ingest: live scan complete", zap.String("source", scan.Source), zap.Int("signals", len(scan.Signals)))
	return scan, nil
}

func (l *Listener) listen(ctx context.Context, profile *taxonomy.BrandProfile, log *zap.Logger) Scan {
	fallback := Scan{Signals: l.samples(profile), Source: SourceSample}
	if l.client == nil {
		return fallback
	}

	resp, err := resilience.Call(ctx, l.breaker, func(ctx context.Context) (*tavily.SearchResponse, error) {
		if l.cfg.TimeoutSecs > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(l.cfg.TimeoutSecs)*time.Second)
			defer cancel()
		}
		return l.client.Search(ctx, profile.SearchQuery,
			tavily.WithMaxResults(l.cfg.MaxResults),
			tavily.WithSearchDepth(l.cfg.SearchDepth),
			tavily.WithAnswer(true),
		)
	})
	if err != nil {
		log.Warn("ingest: live search failed, using samples", zap.Error(err))
		return fallback
	}
	if resp == nil {
		log.Warn("ingest: live search returned no response, using samples")
		return fallback
	}

	live := l.fromResults(profile, resp.Results)
	if len(live) >= l.cfg.MinCleanSignals {
		return Scan{Signals: capSignals(live, l.cfg.MaxSignals), Source: SourceLive}
	}

	log.Warn("ingest: too few clean live signals, topping up with samples", zap.Int("clean", len(live)))
	if len(live) == 0 {
		fallback.Signals = capSignals(fallback.Signals, l.cfg.MaxSignals)
		return fallback
	}
	return Scan{
		Signals: capSignals(append(live, fallback.Signals...), l.cfg.MaxSignals),
		Source:  SourceLiveSample,
	}
}

// fromResults converts search hits to signals, dropping noisy titles,
// thin snippets and anything the brand guardrail rejects.
func (l *Listener) fromResults(profile *taxonomy.BrandProfile, results []tavily.Result) []model.RawSignal {
	var out []model.RawSignal
	for _, r := range results {
		title := CleanTitle(StripHTML(r.Title))
		text := StripHTML(r.Content)
		if text == "" {
			text = StripHTML(r.Title)
		}

		if IsBadTitle(title) || len(text) <= minContentLen {
			continue
		}
		if !pipeline.Passes(profile.Guardrail, title, text) {
			continue
		}

		out = append(out, model.RawSignal{
			ID:             newSignalID(),
			Issue:          title,
			PainIntensity:  PainIntensity(text),
			FrequencyCount: Frequency(text),
			SourceURL:      strings.TrimSpace(r.URL),
			RawText:        text,
			SourceMeta:     "Reddit/Live Web",
		})
	}
	return out
}

func (l *Listener) samples(profile *taxonomy.BrandProfile) []model.RawSignal {
	all := SampleSignals(profile.Brand)
	out := all[:0]
	for _, s := range all {
		if pipeline.Passes(profile.Guardrail, s.Issue, s.RawText) {
			out = append(out, s)
		}
	}
	return out
}

func capSignals(s []model.RawSignal, max int) []model.RawSignal {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}
