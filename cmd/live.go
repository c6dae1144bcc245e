package main

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/npd-cli/internal/ingest"
	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/output"
	"github.com/sells-group/npd-cli/internal/pipeline"
)

var (
	liveBrand   string
	liveFormat  string
	liveOffline bool
	liveDrafts  string
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Scan live web signals and build briefs",
	Long: `Searches the web for consumer frustration posts for a brand, cleans and
scores them, and prints the resulting briefs. Without search.api_key, or with
--offline, the curated sample signals are used instead.

Examples:
  npd-cli live --brand man-matters
  npd-cli live --brand all --format json
  npd-cli live --brand little-joys --offline --format markdown`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("live"); err != nil {
			return err
		}
		format, err := output.ParseFormat(liveFormat)
		if err != nil {
			return err
		}
		brands, err := parseBrands(liveBrand)
		if err != nil {
			return err
		}

		env, err := initEnv(cfg)
		if err != nil {
			return err
		}
		listener := initListener(cfg, env.Engine.Taxonomy(), liveOffline)

		results, err := runLive(cmd.Context(), env.Engine, listener, brands)
		if err != nil {
			return err
		}

		printer := output.NewPrinter(cmd.OutOrStdout(), format, output.UseColors(), env.Reporter)
		for _, res := range results {
			if err := writeDrafts(liveDrafts, res.Brand, res.Briefs); err != nil {
				return err
			}
			if err := printer.Live(res); err != nil {
				return err
			}
		}
		return nil
	},
}

// runLive scans brands concurrently. Results keep the order of brands.
func runLive(ctx context.Context, engine *pipeline.Engine, listener *ingest.Listener, brands []model.Brand) ([]*model.LivePulseResult, error) {
	results := make([]*model.LivePulseResult, len(brands))

	g, gctx := errgroup.WithContext(ctx)
	for i, brand := range brands {
		g.Go(func() error {
			scan, err := listener.Listen(gctx, brand)
			if err != nil {
				return eris.Wrapf(err, "live: listen %s", brand)
			}
			res, err := engine.RunLivePulse(brand, scan.Signals)
			if err != nil {
				return eris.Wrapf(err, "live: pulse %s", brand)
			}
			res.Source = scan.Source
			results[i] = res

			zap.L().Info("live pulse complete",
				zap.String("brand", string(brand)),
				zap.String("source", scan.Source),
				zap.Int("briefs", len(res.Briefs)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func init() {
	liveCmd.Flags().StringVar(&liveBrand, "brand", "", `brand name, slug or "all" (required)`)
	liveCmd.Flags().StringVar(&liveFormat, "format", "table", "output format: table, json, markdown or html")
	liveCmd.Flags().BoolVar(&liveOffline, "offline", false, "skip web search and use sample signals")
	liveCmd.Flags().StringVar(&liveDrafts, "drafts", "", "directory to write per-brief Markdown drafts")
	_ = liveCmd.MarkFlagRequired("brand")
	rootCmd.AddCommand(liveCmd)
}
