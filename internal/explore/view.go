// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explore

import "github.com/pdiddy/paper-explorer/pkg/types"

// Recompute derives the current view: the records passing every active
// filter, in the order the sort key dictates. It is a pure function of
// (dataset, state) with no dependency on any previous view; the dataset is
// small enough that recomputing on every keystroke stays well under a
// frame.
func Recompute(records []types.Record, s State) []types.Record {
	filtered := make([]types.Record, 0, len(records))
	for _, rec := range records {
		if Matches(rec, s) {
			filtered = append(filtered, rec)
		}
	}
	return SortRecords(filtered, s.Sort)
}
