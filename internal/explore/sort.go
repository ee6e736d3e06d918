// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explore

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

// SortRecords returns a new slice ordered by the sort key; the input is
// never mutated. Records with equal keys keep their original relative
// order (sort.SliceStable), and a missing year sorts as zero rather than
// dropping the record. Title comparison is locale-aware.
func SortRecords(records []types.Record, key SortKey) []types.Record {
	out := make([]types.Record, len(records))
	copy(out, records)

	switch key {
	case SortYearAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	case SortTitleAsc:
		c := collate.New(language.Und)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortTitleDesc:
		c := collate.New(language.Und)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) > 0
		})
	default: // SortYearDesc
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	}
	return out
}
