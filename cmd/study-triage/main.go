// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the study-triage CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/study-triage/internal/log"
	"github.com/pdiddy/study-triage/internal/pdftext"
	"github.com/pdiddy/study-triage/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Settings keys shared by flags, the config file, and STUDY_TRIAGE_* env vars.
const (
	keyCategories = "categories"
	keyMatch      = "match"
	keyFormat     = "format"
	keyLogLevel   = "log-level"
)

// Process exit statuses. Cobra usage errors and anything unclassified exit 1.
const (
	exitFailure    = 1
	exitFileAccess = 2
	exitParse      = 3
)

// configErr records a failure to read an explicitly requested config file.
// It is reported from PersistentPreRunE so that it exits like other errors.
var configErr error

// rootCmd is the base command for the study-triage CLI.
var rootCmd = &cobra.Command{
	Use:   "study-triage",
	Short: "Flag lines of a clinical-study PDF by research-reporting category",
	Long: `study-triage extracts the text of a PDF and lists, for each research-reporting
category (study design, population, outcome measures, ...), the lines that
mention one of the category's keywords. It is meant for quick manual triage
of papers before a systematic review.

Use "scan" to triage a PDF and "categories" to inspect or export the
category table.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		level := viper.GetString(keyLogLevel)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = log.LevelDebug
		}
		if err := log.SetLevel(level); err != nil {
			return err
		}
		if f := viper.ConfigFileUsed(); f != "" {
			log.Default.Infof("using config file %s", f)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./study-triage.yaml or ~/.config/study-triage/config.yaml)")
	pf.String(keyCategories, "", "YAML category table (default: built-in 16-category table)")
	pf.String(keyMatch, string(types.MatchSubstring), "keyword matching: substring or word")
	pf.String(keyLogLevel, log.LevelWarn, "diagnostic log level: debug, info, warn, or error")
	pf.BoolP("verbose", "v", false, "shorthand for --log-level debug")

	for _, key := range []string{keyCategories, keyMatch, keyLogLevel} {
		_ = viper.BindPFlag(key, pf.Lookup(key))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("study-triage")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "study-triage"))
		}
	}

	viper.SetEnvPrefix("STUDY_TRIAGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		configErr = fmt.Errorf("reading config file %s: %w", cfgFile, err)
	}
}

// loadConfig resolves the scan settings from viper.
func loadConfig() (types.Config, error) {
	match, err := types.ParseMatchMode(viper.GetString(keyMatch))
	if err != nil {
		return types.Config{}, err
	}
	format, err := types.ParseOutputFormat(viper.GetString(keyFormat))
	if err != nil {
		return types.Config{}, err
	}
	return types.Config{
		CategoriesFile: viper.GetString(keyCategories),
		Match:          match,
		Format:         format,
		LogLevel:       viper.GetString(keyLogLevel),
	}, nil
}

// exitCode maps the error returned by a command to a process exit status.
func exitCode(err error) int {
	var ferr *pdftext.FileAccessError
	if errors.As(err, &ferr) {
		return exitFileAccess
	}
	var perr *pdftext.ParseError
	if errors.As(err, &perr) {
		return exitParse
	}
	return exitFailure
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
