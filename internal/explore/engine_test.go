// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explore

import (
	"testing"

	"github.com/pdiddy/paper-explorer/pkg/types"
)

func testRecords() []types.Record {
	return []types.Record{
		{ID: "sar-2021", Title: "Search Swarms", Year: 2021, ScenarioDomain: "Search and Rescue", SA1: types.TriYes},
		{ID: "agri-2019", Title: "Crop Drones", Year: 2019, ScenarioDomain: "Agriculture", SA1: types.TriNo},
		{ID: "map-2020", Title: "Mapping Teams", Year: 2020, ScenarioDomain: "Mapping", SA1: types.TriYes},
	}
}

func viewIDs(view []types.Record) []string {
	ids := make([]string, len(view))
	for i, rec := range view {
		ids[i] = rec.ID
	}
	return ids
}

func TestNewEngineInitialView(t *testing.T) {
	e := NewEngine(testRecords())
	snap := e.Snapshot()

	if snap.Total != 3 || len(snap.View) != 3 {
		t.Fatalf("total = %d, view = %d, want 3/3", snap.Total, len(snap.View))
	}
	// Default order: newest first.
	want := []string{"sar-2021", "map-2020", "agri-2019"}
	for i, id := range viewIDs(snap.View) {
		if id != want[i] {
			t.Fatalf("initial view = %v, want %v", viewIDs(snap.View), want)
		}
	}
	if len(snap.Chips) != 0 {
		t.Errorf("neutral state produced chips: %v", snap.Chips)
	}
	if len(snap.Scenarios) != 3 {
		t.Errorf("scenarios = %v", snap.Scenarios)
	}
}

func TestEngineApplyFilters(t *testing.T) {
	e := NewEngine(testRecords())
	e.Apply(SetSA{Level: 1, On: true})

	snap := e.Snapshot()
	want := []string{"sar-2021", "map-2020"}
	got := viewIDs(snap.View)
	if len(got) != len(want) {
		t.Fatalf("view = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("view = %v, want %v", got, want)
		}
	}
	if len(snap.Chips) != 1 || snap.Chips[0].Value != "SA1" {
		t.Errorf("chips = %v", snap.Chips)
	}
}

// Expansion state survives filter changes: hiding a record never collapses
// it, and toggling twice restores the original state.
func TestEngineExpansionIndependentOfFilters(t *testing.T) {
	e := NewEngine(testRecords())

	e.ToggleExpansion("agri-2019")
	e.Apply(SetSA{Level: 1, On: true}) // filters agri-2019 out

	if !e.Snapshot().Expanded["agri-2019"] {
		t.Error("expansion lost when record filtered out")
	}

	e.Apply(SetSA{Level: 1, On: false})
	if !e.Snapshot().Expanded["agri-2019"] {
		t.Error("expansion lost when record reappeared")
	}

	e.ToggleExpansion("agri-2019")
	if e.Snapshot().Expanded["agri-2019"] {
		t.Error("second toggle did not collapse")
	}
}

func TestEngineSetStateDropsUnknownScenarios(t *testing.T) {
	e := NewEngine(testRecords())

	s := NewState()
	s.Scenarios["Mapping"] = struct{}{}
	s.Scenarios["Underwater"] = struct{}{} // not in the dataset
	e.SetState(s)

	snap := e.Snapshot()
	if !snap.State.HasScenario("Mapping") {
		t.Error("known scenario dropped")
	}
	if snap.State.HasScenario("Underwater") {
		t.Error("unknown scenario kept")
	}
	if got := viewIDs(snap.View); len(got) != 1 || got[0] != "map-2020" {
		t.Errorf("view = %v, want [map-2020]", got)
	}
}

func TestEngineClearAll(t *testing.T) {
	e := NewEngine(testRecords())
	e.Apply(SetQuery{Query: "crop"}, SetSort{Key: SortTitleAsc})
	e.ToggleExpansion("sar-2021")

	e.ClearAll()

	snap := e.Snapshot()
	if len(snap.View) != snap.Total {
		t.Errorf("view = %d records, want full dataset %d", len(snap.View), snap.Total)
	}
	if snap.State.Sort != SortYearDesc {
		t.Errorf("sort = %q, want default", snap.State.Sort)
	}
	if len(snap.Expanded) != 0 {
		t.Errorf("expansion survived clear: %v", snap.Expanded)
	}
}

// Snapshots are isolated copies: mutating the engine afterwards must not
// change data a caller already holds.
func TestEngineSnapshotIsolation(t *testing.T) {
	e := NewEngine(testRecords())
	snap := e.Snapshot()

	e.Apply(SetQuery{Query: "crop"})
	e.ToggleExpansion("map-2020")

	if len(snap.View) != 3 {
		t.Errorf("earlier snapshot view changed: %d records", len(snap.View))
	}
	if snap.Expanded["map-2020"] {
		t.Error("earlier snapshot expansion changed")
	}
	if snap.State.Query != "" {
		t.Errorf("earlier snapshot state changed: %q", snap.State.Query)
	}
}
