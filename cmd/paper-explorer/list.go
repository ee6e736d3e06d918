// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-explorer/internal/explore"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered, sorted view as a table",
	Long: `List applies the filter flags to the dataset and prints the resulting
view as a human-readable table, in the selected sort order. The same flags
drive the export command, so list is the dry run for an export.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(cmd)
	if err != nil {
		return err
	}

	state := stateFromFlags(cmd)
	view := explore.Recompute(records, state)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	formatView(view, len(records), os.Stdout)
	return nil
}

// formatView writes the view as an aligned table with a status line.
func formatView(view []types.Record, total int, w io.Writer) {
	if len(view) == 0 {
		fmt.Fprintf(w, "No papers match.\n0 / %d papers shown\n", total)
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-24s  %-4s  %-11s  %-8s  %s\n",
		"Rank", "Paper", "Scenario", "Year", "SA1/SA2/SA3", "Training", "Model-Based")
	fmt.Fprintln(w, strings.Repeat("-", 118))

	for i, rec := range view {
		year := ""
		if rec.Year != 0 {
			year = fmt.Sprintf("%d", rec.Year)
		}
		sa := fmt.Sprintf("%s/%s/%s", rec.SA1.Token(), rec.SA2.Token(), rec.SA3.Token())
		fmt.Fprintf(w, "%-4d  %-50s  %-24s  %-4s  %-11s  %-8s  %s\n",
			i+1, truncate(rec.Paper, 50), truncate(rec.ScenarioDomain, 24), year,
			sa, rec.TrainingIncluded.Token(), truncate(rec.ModelBasedSupport, 20))
	}

	fmt.Fprintf(w, "\n%d / %d papers shown\n", len(view), total)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().Bool("json", false, "output the view as JSON")
	rootCmd.AddCommand(listCmd)
}
