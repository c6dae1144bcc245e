package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/npd-cli/internal/ingest"
	"github.com/sells-group/npd-cli/internal/model"
	"github.com/sells-group/npd-cli/internal/output"
)

var (
	analyzeBrand  string
	analyzeFile   string
	analyzeFormat string
	analyzeDrafts string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a CSV or XLSX export into product briefs",
	Long: `Reads a social or marketplace export, maps each row to a signal and runs
the batch scoring pipeline for one brand.

The content column is the first header containing body, text, comment,
review, content, title, selftext or description. The impact column is the
first containing score, upvotes, likes, ups, votes or points.

Examples:
  npd-cli analyze --brand man-matters --file reddit.csv
  npd-cli analyze --brand "Little Joys" --file reviews.xlsx --format markdown
  npd-cli analyze --brand be-bodywise --file export.csv --drafts ./drafts`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("analyze"); err != nil {
			return err
		}
		format, err := output.ParseFormat(analyzeFormat)
		if err != nil {
			return err
		}
		brand, err := model.ParseBrand(analyzeBrand)
		if err != nil {
			return err
		}

		env, err := initEnv(cfg)
		if err != nil {
			return err
		}

		tbl, err := readExport(cmd.Context(), analyzeFile)
		if err != nil {
			return err
		}
		signals := tbl.Signals()
		zap.L().Info("export loaded",
			zap.String("file", analyzeFile),
			zap.Int("rows", len(signals)),
		)

		res, err := env.Engine.RunAnalysis(brand, signals)
		if err != nil {
			return eris.Wrap(err, "analyze")
		}

		if err := writeDrafts(analyzeDrafts, brand, res.Briefs); err != nil {
			return err
		}
		return output.NewPrinter(cmd.OutOrStdout(), format, output.UseColors(), env.Reporter).Analysis(res)
	},
}

// readExport parses a .xlsx workbook or, for any other extension, a CSV.
func readExport(ctx context.Context, path string) (*ingest.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ingest.ReadXLSXFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "open export")
	}
	defer f.Close() //nolint:errcheck

	return ingest.ReadCSV(ctx, f)
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeBrand, "brand", "", "brand name or slug (required)")
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "path to a .csv or .xlsx export (required)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "table", "output format: table, json, markdown or html")
	analyzeCmd.Flags().StringVar(&analyzeDrafts, "drafts", "", "directory to write per-brief Markdown drafts")
	_ = analyzeCmd.MarkFlagRequired("brand")
	_ = analyzeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(analyzeCmd)
}
