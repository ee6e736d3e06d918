// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-explorer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-explorer/internal/dataset"
	"github.com/pdiddy/paper-explorer/internal/explore"
	"github.com/pdiddy/paper-explorer/internal/secrets"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the paper-explorer CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-explorer",
	Short: "Faceted explorer for a research-paper survey catalog",
	Long: `paper-explorer loads a fixed catalog of research-paper records and lets
you slice it: free-text search, facet filters, sorting, CSV export, and a
local web UI with synchronized table and card views.

The dataset is loaded once per invocation; all filtering happens in memory.
The catalog subcommand additionally maintains a SQLite full-text index for
relevance-ranked queries.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-explorer.yaml or ~/.config/paper-explorer/config.yaml)")
	rootCmd.PersistentFlags().String("data", "", "dataset file, JSON or YAML (default: data/papers.json)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-explorer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-explorer"))
		}
	}

	viper.SetEnvPrefix("PAPER_EXPLORER")
	viper.AutomaticEnv()

	viper.SetDefault("dataset.path", filepath.Join("data", "papers.json"))
	viper.SetDefault("serve.addr", ":7033")
	viper.SetDefault("catalog.db_path", filepath.Join("data", "catalog.db"))
	viper.SetDefault("catalog.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// datasetPath resolves the dataset file from the --data flag or config.
func datasetPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("data"); path != "" {
		return path
	}
	return viper.GetString("dataset.path")
}

// loadRecords loads and normalizes the dataset once.
func loadRecords(cmd *cobra.Command) ([]types.Record, error) {
	return dataset.Load(datasetPath(cmd))
}

// addFilterFlags registers the filter/sort flags shared by the commands
// that operate on the filtered view.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "free-text search across all fields")
	cmd.Flags().Bool("sa1", false, "require SA level 1 (perception)")
	cmd.Flags().Bool("sa2", false, "require SA level 2 (comprehension)")
	cmd.Flags().Bool("sa3", false, "require SA level 3 (projection)")
	cmd.Flags().String("training", "all", "training filter: all, yes, or no")
	cmd.Flags().String("model", "all", "model-based-support category, or all")
	cmd.Flags().StringSlice("scenario", nil, "restrict to scenario/domain buckets (repeatable)")
	cmd.Flags().String("sort", "year_desc", "sort key: year_desc, year_asc, title_asc, title_desc")
}

// stateFromFlags builds the filter state the filter flags describe.
func stateFromFlags(cmd *cobra.Command) explore.State {
	s := explore.NewState()
	s.Query, _ = cmd.Flags().GetString("query")
	s.SA1, _ = cmd.Flags().GetBool("sa1")
	s.SA2, _ = cmd.Flags().GetBool("sa2")
	s.SA3, _ = cmd.Flags().GetBool("sa3")

	training, _ := cmd.Flags().GetString("training")
	s.Training = explore.ParseTrainingFilter(training)

	if model, _ := cmd.Flags().GetString("model"); model != "" {
		s.ModelBased = model
	}

	scenarios, _ := cmd.Flags().GetStringSlice("scenario")
	for _, sc := range scenarios {
		if sc = strings.TrimSpace(sc); sc != "" {
			s.Scenarios[sc] = struct{}{}
		}
	}

	sortKey, _ := cmd.Flags().GetString("sort")
	s.Sort = explore.ParseSortKey(sortKey)
	return s
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
