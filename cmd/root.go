package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/npd-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "npd-cli",
	Short: "Signal-to-brief new product development pipeline",
	Long:  "Turns consumer-friction signals from exports or live web search into ranked, scored product briefs for Man Matters, Be Bodywise and Little Joys.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
