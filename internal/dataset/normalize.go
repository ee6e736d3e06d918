// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset loads the survey dataset and normalizes its loosely-typed
// records into canonical form.
package dataset

import (
	"fmt"
	"strings"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

// Normalize coerces one raw dataset entry into a canonical Record. Missing
// or malformed fields degrade to the neutral value for their type: text
// fields to "", the year to 0, tri-state flags to unknown, the metrics list
// to empty. Normalize never fails and is idempotent: feeding a normalized
// record back through produces the same record.
//
// The returned Record has no ID; NormalizeAll assigns unique IDs across the
// whole dataset.
func Normalize(raw map[string]any) types.Record {
	rec := types.Record{
		Paper:                  normString(raw["paper"]),
		Title:                  normString(raw["title"]),
		Authors:                normString(raw["authors"]),
		Year:                   normYear(raw["year"]),
		ScenarioDomain:         normString(raw["scenario_domain"]),
		SwarmType:              normString(raw["swarm_type"]),
		HumanRole:              normString(raw["human_role"]),
		SA1:                    normTriState(raw["sa1"]),
		SA2:                    normTriState(raw["sa2"]),
		SA3:                    normTriState(raw["sa3"]),
		TrainingIncluded:       normTriState(raw["training_included"]),
		TrainingType:           normString(raw["training_type"]),
		ModelBasedSupport:      normString(raw["model_based_support"]),
		InterfaceVisualization: normString(raw["interface_visualization"]),
		EvaluationMetricsRaw:   normString(raw["evaluation_metrics_raw"]),
		EvaluationMetrics:      normStrings(raw["evaluation_metrics"]),
		KeyContribution:        normString(raw["key_contribution"]),
		MainLimitation:         normString(raw["main_limitation"]),
		RelevanceToPhD:         normString(raw["relevance_to_phd"]),
	}

	if rec.Paper == "" {
		rec.Paper = composeLabel(rec)
	}
	return rec
}

// NormalizeAll normalizes every raw entry and assigns each record a unique
// slug ID. When two records derive the same slug, later ones get an ordinal
// suffix ("-2", "-3", ...), so expansion tracking never conflates records.
func NormalizeAll(raws []map[string]any) []types.Record {
	records := make([]types.Record, 0, len(raws))
	taken := make(map[string]int, len(raws))

	for _, raw := range raws {
		rec := Normalize(raw)
		base := slugBase(rec)
		taken[base]++
		if n := taken[base]; n > 1 {
			rec.ID = fmt.Sprintf("%s-%d", base, n)
		} else {
			rec.ID = base
		}
		records = append(records, rec)
	}
	return records
}

// slugBase derives the slug from the display label, falling back to
// title/authors/year, and finally to "paper" so no record ends up keyless.
func slugBase(rec types.Record) string {
	base := types.Slug(rec.Paper)
	if base == "" {
		base = types.Slug(fmt.Sprintf("%s-%s-%d", rec.Title, rec.Authors, rec.Year))
	}
	if base == "" {
		base = "paper"
	}
	return base
}

// composeLabel builds a "Title — Authors, Year" label from the parts the
// record does have.
func composeLabel(rec types.Record) string {
	label := rec.Title
	if rec.Authors != "" {
		if label != "" {
			label += " — "
		}
		label += rec.Authors
	}
	if rec.Year != 0 {
		if label != "" {
			label += ", "
		}
		label += fmt.Sprintf("%d", rec.Year)
	}
	return label
}

func normString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// normTriState maps exactly true to yes and exactly false to no. Anything
// else — absent, null, 0, "" — is unknown, never an arbitrary falsy value.
// The canonical string forms map to themselves so normalization is
// idempotent over its own output.
func normTriState(v any) types.TriState {
	switch t := v.(type) {
	case bool:
		if t {
			return types.TriYes
		}
		return types.TriNo
	case string:
		switch types.TriState(t) {
		case types.TriYes:
			return types.TriYes
		case types.TriNo:
			return types.TriNo
		}
	}
	return types.TriUnknown
}

// normYear accepts the numeric types JSON and YAML decoders produce.
// Anything else means the year is unreported and becomes zero.
func normYear(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func normStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		// Already-normalized records round-trip as []string.
		if ss, ok := v.([]string); ok {
			out := make([]string, 0, len(ss))
			for _, s := range ss {
				if t := strings.TrimSpace(s); t != "" {
					out = append(out, t)
				}
			}
			return out
		}
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := normString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
