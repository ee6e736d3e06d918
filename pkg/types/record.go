// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared record and configuration structures for
// paper-explorer.
package types

import "strings"

// TriState is a three-valued flag: a survey field can be affirmed, denied,
// or simply not reported by the paper.
type TriState string

const (
	TriYes     TriState = "yes"
	TriNo      TriState = "no"
	TriUnknown TriState = "unknown"
)

// Token returns the single-letter form used in table cells and CSV export:
// "Y", "N", or "—" for unknown.
func (t TriState) Token() string {
	switch t {
	case TriYes:
		return "Y"
	case TriNo:
		return "N"
	default:
		return "—"
	}
}

// Record is one canonical paper entry in the survey catalog. Records are
// built once at load time by the normalizer and never mutated afterwards.
// Every text field is trimmed and non-null; tri-state fields are always one
// of the three TriState values.
type Record struct {
	// ID is a slug derived from the paper label (or title/authors/year),
	// unique within one loaded dataset.
	ID string `json:"id" yaml:"id"`

	// Paper is the display label, "Title — Author, Year".
	Paper string `json:"paper" yaml:"paper"`

	// Title is the bare paper title.
	Title string `json:"title" yaml:"title"`

	// Authors is the author list as free text.
	Authors string `json:"authors" yaml:"authors"`

	// Year is the publication year; zero when the dataset does not report one.
	Year int `json:"year" yaml:"year"`

	// ScenarioDomain is the application scenario or domain facet value.
	ScenarioDomain string `json:"scenario_domain" yaml:"scenario_domain"`

	// SwarmType describes the robot swarm studied.
	SwarmType string `json:"swarm_type" yaml:"swarm_type"`

	// HumanRole describes the operator's role in the study.
	HumanRole string `json:"human_role" yaml:"human_role"`

	// SA1, SA2, SA3 report whether the paper addresses situational-awareness
	// levels 1 (perception), 2 (comprehension), and 3 (projection).
	SA1 TriState `json:"sa1" yaml:"sa1"`
	SA2 TriState `json:"sa2" yaml:"sa2"`
	SA3 TriState `json:"sa3" yaml:"sa3"`

	// TrainingIncluded reports whether operator training was part of the study.
	TrainingIncluded TriState `json:"training_included" yaml:"training_included"`

	// TrainingType describes the training protocol, when one is reported.
	TrainingType string `json:"training_type" yaml:"training_type"`

	// ModelBasedSupport is the model-based operator-support category
	// (e.g. "None", "Conceptual", "Formal").
	ModelBasedSupport string `json:"model_based_support" yaml:"model_based_support"`

	// InterfaceVisualization describes the operator interface.
	InterfaceVisualization string `json:"interface_visualization" yaml:"interface_visualization"`

	// EvaluationMetricsRaw is the evaluation-metrics text as written.
	EvaluationMetricsRaw string `json:"evaluation_metrics_raw" yaml:"evaluation_metrics_raw"`

	// EvaluationMetrics is the derived list of short metric tags.
	EvaluationMetrics []string `json:"evaluation_metrics" yaml:"evaluation_metrics"`

	// KeyContribution summarizes the paper's main contribution.
	KeyContribution string `json:"key_contribution" yaml:"key_contribution"`

	// MainLimitation summarizes the paper's main limitation.
	MainLimitation string `json:"main_limitation" yaml:"main_limitation"`

	// RelevanceToPhD is the reviewer's note on relevance to the thesis.
	RelevanceToPhD string `json:"relevance_to_phd" yaml:"relevance_to_phd"`
}

// SearchText returns the concatenation of every free-text field, lowercased,
// joined by single spaces. The free-text predicate matches against this.
func (r Record) SearchText() string {
	parts := []string{
		r.Paper, r.Title, r.Authors, r.ScenarioDomain, r.SwarmType, r.HumanRole,
		r.TrainingType, r.ModelBasedSupport, r.InterfaceVisualization,
		r.EvaluationMetricsRaw, strings.Join(r.EvaluationMetrics, " "),
		r.KeyContribution, r.MainLimitation, r.RelevanceToPhD,
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Slug lowercases s, collapses every run of non-alphanumeric characters to a
// single hyphen, and strips leading and trailing hyphens. Slug is a pure
// function of its input; the same text always yields the same slug.
func Slug(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte('-')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
