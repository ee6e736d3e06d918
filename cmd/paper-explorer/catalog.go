// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-explorer/internal/catalog"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the SQLite full-text index (index, query)",
	Long: `Catalog maintains a SQLite FTS5 index over the survey records for
relevance-ranked full-text queries, as a complement to the substring
search of the in-memory explorer.`,
}

// --- index subcommand ---

var catalogIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the full-text index from the dataset",
	RunE:  runCatalogIndex,
}

func runCatalogIndex(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(cmd)
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Rebuild(context.Background(), records, os.Stdout)
	return err
}

// --- query subcommand ---

var catalogQueryCmd = &cobra.Command{
	Use:   "query [terms]",
	Short: "Query the full-text index",
	Long: `Query runs an FTS5 match over the indexed records and prints them in
relevance order. The index must have been built with "catalog index".`,
	RunE: runCatalogQuery,
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	if query == "" {
		return fmt.Errorf("query required: paper-explorer catalog query <terms>")
	}

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	results, err := store.Search(context.Background(), query, limit)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	total, err := store.Count(context.Background())
	if err != nil {
		return err
	}
	formatView(results, total, os.Stdout)
	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("catalog.db_path")
	}
	return types.CatalogConfig{
		DBPath:     dbPath,
		MaxResults: viper.GetInt("catalog.max_results"),
	}
}

func init() {
	catalogCmd.PersistentFlags().String("db", "", "index database file (default data/catalog.db)")
	catalogQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")

	catalogCmd.AddCommand(catalogIndexCmd)
	catalogCmd.AddCommand(catalogQueryCmd)
	rootCmd.AddCommand(catalogCmd)
}
