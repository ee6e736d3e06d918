// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-explorer/internal/dataset"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Print the scenario/domain facet list with record counts",
	RunE:  runFacets,
}

func runFacets(cmd *cobra.Command, args []string) error {
	records, err := loadRecords(cmd)
	if err != nil {
		return err
	}

	scenarios := dataset.Scenarios(records)
	counts := dataset.FacetCounts(records)

	for _, sc := range scenarios {
		fmt.Fprintf(os.Stdout, "%4d  %s\n", counts[sc], sc)
	}
	fmt.Fprintf(os.Stdout, "\n%d facets across %d records\n", len(scenarios), len(records))
	return nil
}

func init() {
	rootCmd.AddCommand(facetsCmd)
}
