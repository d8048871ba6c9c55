package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/study-triage/internal/categorize"
	"github.com/pdiddy/study-triage/internal/report"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the active category table",
	Long: `Categories prints the category table scan would use: the built-in table,
or the file given with --categories. With --format yaml the output is a
table file that can be edited and passed back with --categories.`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().String("format", "text", "output format: text or yaml")

	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	table, err := categorize.ResolveTable(viper.GetString(keyCategories))
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "text", "":
		return report.RenderTable(cmd.OutOrStdout(), table)
	case "yaml", "yml":
		return categorize.WriteTable(cmd.OutOrStdout(), table)
	default:
		return fmt.Errorf("unsupported format %q: use text or yaml", format)
	}
}
