// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-explorer/internal/explore"
	"github.com/pdiddy/paper-explorer/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered view as CSV",
	Long: `Export applies the filter flags to the dataset and writes the resulting
view as CSV: one header row of column labels, then one row per visible
record in the current sort order. Use --out - to write to stdout.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(cmd)
	if err != nil {
		return err
	}

	state := stateFromFlags(cmd)
	view := explore.Recompute(records, state)

	out, _ := cmd.Flags().GetString("out")
	if out == "-" {
		return export.WriteCSV(os.Stdout, view)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, view); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exported %d records to %s\n", len(view), out)
	return nil
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().String("out", export.DefaultFilename, "output file, or - for stdout")
	rootCmd.AddCommand(exportCmd)
}
