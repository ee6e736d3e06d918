// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

// UnspecifiedFacet is the bucket for records whose scenario field is empty.
const UnspecifiedFacet = "—"

// Scenarios returns the distinct scenario/domain values across the dataset,
// sorted with locale-aware comparison. Derived once per load, not per
// filter change.
func Scenarios(records []types.Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range records {
		sc := rec.ScenarioDomain
		if sc == "" {
			sc = UnspecifiedFacet
		}
		if _, ok := seen[sc]; ok {
			continue
		}
		seen[sc] = struct{}{}
		out = append(out, sc)
	}

	collate.New(language.Und).SortStrings(out)
	return out
}

// ModelCategories returns the distinct model-based-support categories in
// the dataset, locale-sorted. Empty values are skipped; the "all" choice is
// the selector's own neutral value, not a data category.
func ModelCategories(records []types.Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range records {
		mb := rec.ModelBasedSupport
		if mb == "" {
			continue
		}
		if _, ok := seen[mb]; ok {
			continue
		}
		seen[mb] = struct{}{}
		out = append(out, mb)
	}

	collate.New(language.Und).SortStrings(out)
	return out
}

// FacetCounts returns how many records fall into each scenario bucket,
// keyed the same way as Scenarios.
func FacetCounts(records []types.Record) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		sc := rec.ScenarioDomain
		if sc == "" {
			sc = UnspecifiedFacet
		}
		counts[sc]++
	}
	return counts
}
