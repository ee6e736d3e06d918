// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explore

import (
	"strings"

	"github.com/pdiddy/paper-explorer/internal/dataset"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

// Matches reports whether the record passes every active filter. All
// predicates AND together; each one is pure, so evaluation order cannot
// change the result. Unknown tri-state values fail the SA toggles and both
// non-neutral training selections.
func Matches(rec types.Record, s State) bool {
	if s.SA1 && rec.SA1 != types.TriYes {
		return false
	}
	if s.SA2 && rec.SA2 != types.TriYes {
		return false
	}
	if s.SA3 && rec.SA3 != types.TriYes {
		return false
	}

	if s.Training == TrainingYes && rec.TrainingIncluded != types.TriYes {
		return false
	}
	if s.Training == TrainingNo && rec.TrainingIncluded != types.TriNo {
		return false
	}

	if s.ModelBased != ModelBasedAll && rec.ModelBasedSupport != s.ModelBased {
		return false
	}

	if len(s.Scenarios) > 0 && !s.HasScenario(scenarioBucket(rec)) {
		return false
	}

	if query := strings.ToLower(strings.TrimSpace(s.Query)); query != "" {
		if !strings.Contains(rec.SearchText(), query) {
			return false
		}
	}

	return true
}

// scenarioBucket maps a record to its facet bucket; empty scenario fields
// land in the unspecified bucket so selecting it actually matches them.
func scenarioBucket(rec types.Record) string {
	if rec.ScenarioDomain == "" {
		return dataset.UnspecifiedFacet
	}
	return rec.ScenarioDomain
}
