// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/study-triage/internal/categorize"
	"github.com/pdiddy/study-triage/internal/log"
	"github.com/pdiddy/study-triage/internal/pdftext"
	"github.com/pdiddy/study-triage/internal/report"
	"github.com/pdiddy/study-triage/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan <pdf>",
	Short: "List the lines of a PDF that mention each research category",
	Long: `Scan extracts the text of a PDF, page by page, and checks every line
against the keywords of each category. A line is listed under every
category it mentions. Matching is case-insensitive; with --match substring
(the default) a keyword also matches inside longer words ("age" in
"average"), with --match word it must stand alone.

Exit status is 2 when the file cannot be opened and 3 when it cannot be
parsed as a PDF. No report is printed in either case.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String(keyFormat, string(types.FormatText), "report format: text, yaml, or json")
	_ = viper.BindPFlag(keyFormat, scanCmd.Flags().Lookup(keyFormat))

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return scan(cmd.OutOrStdout(), pdftext.NewPDFExtractor(log.Default), args[0], cfg)
}

// scan runs one document end to end: resolve the table, extract, match,
// render. Nothing is written to w unless extraction succeeds.
func scan(w io.Writer, x pdftext.Extractor, pdfPath string, cfg types.Config) error {
	table, err := categorize.ResolveTable(cfg.CategoriesFile)
	if err != nil {
		return err
	}

	text, err := x.Extract(pdfPath)
	if err != nil {
		return err
	}

	result := categorize.NewMatcher(table, cfg.Match).Match(text)
	log.Default.Infof("%s: %d matching lines across %d categories", pdfPath, result.Total(), len(result.Categories))

	return report.Render(w, result, cfg.Format)
}
