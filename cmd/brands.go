package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/npd-cli/internal/output"
)

var brandsFormat string

var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List brands, categories, pain pools and competition proxies",
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := output.ParseFormat(brandsFormat)
		if err != nil {
			return err
		}
		env, err := initEnv(cfg)
		if err != nil {
			return err
		}
		return output.NewPrinter(cmd.OutOrStdout(), format, output.UseColors(), env.Reporter).Brands(env.Engine.Taxonomy())
	},
}

func init() {
	brandsCmd.Flags().StringVar(&brandsFormat, "format", "table", "output format: table or json")
	rootCmd.AddCommand(brandsCmd)
}
