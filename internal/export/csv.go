// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes the current view as CSV. It consumes the view,
// not the full dataset: what you see is what you export, in the current
// sort order.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

// DefaultFilename is the download name offered by the web UI.
const DefaultFilename = "filtered_papers.csv"

// Columns is the fixed export column order with human-readable labels.
var Columns = []string{
	"Paper (Title — Author, Year)",
	"Scenario/Domain",
	"Swarm Type",
	"Human Role",
	"SA1",
	"SA2",
	"SA3",
	"Training",
	"Training Type",
	"Model-Based",
	"Interface/Visualization",
	"Evaluation Metrics",
	"Key Contribution",
	"Main Limitation",
	"Relevance to PhD",
}

// Row returns one record's fields in Columns order. Tri-state flags are
// serialized as their single-letter tokens, never as raw booleans.
func Row(rec types.Record) []string {
	return []string{
		rec.Paper,
		rec.ScenarioDomain,
		rec.SwarmType,
		rec.HumanRole,
		rec.SA1.Token(),
		rec.SA2.Token(),
		rec.SA3.Token(),
		rec.TrainingIncluded.Token(),
		rec.TrainingType,
		rec.ModelBasedSupport,
		rec.InterfaceVisualization,
		rec.EvaluationMetricsRaw,
		rec.KeyContribution,
		rec.MainLimitation,
		rec.RelevanceToPhD,
	}
}

// WriteCSV writes the header row followed by one row per view record.
func WriteCSV(w io.Writer, view []types.Record) error {
	if err := writeRow(w, Columns); err != nil {
		return err
	}
	for _, rec := range view {
		if err := writeRow(w, Row(rec)); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, fields []string) error {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escape(f)
	}
	if _, err := fmt.Fprintln(w, strings.Join(escaped, ",")); err != nil {
		return fmt.Errorf("writing CSV row: %w", err)
	}
	return nil
}

// escape quotes a field if and only if it contains a comma, a quote, or a
// newline, doubling any internal quotes. Everything else is emitted bare.
func escape(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
