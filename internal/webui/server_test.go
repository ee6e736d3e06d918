// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package webui

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pdiddy/paper-explorer/internal/explore"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

func testServer() *Server {
	records := []types.Record{
		{ID: "sar-2021", Paper: "Search Swarms — Doe, 2021", Title: "Search Swarms", Year: 2021,
			ScenarioDomain: "Search and Rescue", SA1: types.TriYes},
		{ID: "agri-2019", Paper: "Crop Drones — Lee, 2019", Title: "Crop Drones", Year: 2019,
			ScenarioDomain: "Agriculture", SA1: types.TriNo},
	}
	return NewServer(explore.NewEngine(records))
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestStateQueryRoundTrip(t *testing.T) {
	s := explore.NewState()
	s = explore.Apply(s, explore.SetQuery{Query: "drone fleet"})
	s = explore.Apply(s, explore.SetSA{Level: 1, On: true})
	s = explore.Apply(s, explore.SetSA{Level: 3, On: true})
	s = explore.Apply(s, explore.SetTraining{Training: explore.TrainingYes})
	s = explore.Apply(s, explore.SetModelBased{Category: "Formal"})
	s = explore.Apply(s, explore.SetScenario{Scenario: "Search and Rescue", Selected: true})
	s = explore.Apply(s, explore.SetSort{Key: explore.SortTitleAsc})

	got := StateFromQuery(QueryFromState(s))

	if got.Query != s.Query || got.SA1 != s.SA1 || got.SA2 != s.SA2 || got.SA3 != s.SA3 {
		t.Errorf("round trip lost query/SA: %+v", got)
	}
	if got.Training != s.Training || got.ModelBased != s.ModelBased || got.Sort != s.Sort {
		t.Errorf("round trip lost selectors: %+v", got)
	}
	if !got.HasScenario("Search and Rescue") || len(got.Scenarios) != 1 {
		t.Errorf("round trip lost scenarios: %v", got.Scenarios)
	}
}

func TestStateFromQueryDefaults(t *testing.T) {
	got := StateFromQuery(url.Values{})

	if got.Query != "" || got.SA1 || got.SA2 || got.SA3 {
		t.Errorf("defaults wrong: %+v", got)
	}
	if got.Training != explore.TrainingAll || got.ModelBased != explore.ModelBasedAll {
		t.Errorf("defaults wrong: %+v", got)
	}
	if got.Sort != explore.SortYearDesc {
		t.Errorf("sort = %q, want default", got.Sort)
	}
}

func TestExplorerPageRenders(t *testing.T) {
	rec := get(t, testServer(), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Search Swarms") || !strings.Contains(body, "Crop Drones") {
		t.Error("records missing from page")
	}
	if !strings.Contains(body, "2 / 2 papers shown") {
		t.Error("status line missing")
	}
}

func TestExplorerPageFilters(t *testing.T) {
	body := get(t, testServer(), "/?sa1=on&sort=year_desc").Body.String()

	if !strings.Contains(body, "Search Swarms") {
		t.Error("matching record missing")
	}
	if strings.Contains(body, "Crop Drones") {
		t.Error("filtered record still rendered")
	}
	if !strings.Contains(body, "1 / 2 papers shown") {
		t.Error("status line wrong")
	}
	// The active filter shows up as a removable chip.
	if !strings.Contains(body, "SA1") {
		t.Error("chip missing")
	}
}

// Record text is data, never markup.
func TestExplorerPageEscapesRecordText(t *testing.T) {
	records := []types.Record{{
		ID:    "evil",
		Paper: `<script>alert("x")</script>`,
		Title: "Evil",
	}}
	s := NewServer(explore.NewEngine(records))

	body := get(t, s, "/").Body.String()
	if strings.Contains(body, `<script>alert`) {
		t.Error("record text rendered unescaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("escaped form missing")
	}
}

func TestToggleRedirectsAndExpands(t *testing.T) {
	s := testServer()

	back := url.QueryEscape("sa1=on&sort=year_desc")
	rec := get(t, s, "/toggle?id=sar-2021&back="+back)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/?") || !strings.Contains(loc, "sa1=on") {
		t.Errorf("redirect location = %q", loc)
	}
	if !s.engine.Snapshot().Expanded["sar-2021"] {
		t.Error("record not expanded")
	}

	get(t, s, "/toggle?id=sar-2021&back="+back)
	if s.engine.Snapshot().Expanded["sar-2021"] {
		t.Error("second toggle did not collapse")
	}
}

func TestClearResetsState(t *testing.T) {
	s := testServer()
	get(t, s, "/?q=crop&sa1=on")

	rec := get(t, s, "/clear")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}

	snap := s.engine.Snapshot()
	if snap.State.Query != "" || snap.State.SA1 {
		t.Errorf("state not reset: %+v", snap.State)
	}
	if len(snap.View) != snap.Total {
		t.Error("view not reset to full dataset")
	}
}

func TestExportHeadersAndContent(t *testing.T) {
	rec := get(t, testServer(), "/export.csv?sa1=on&sort=year_desc")

	if got := rec.Header().Get("Content-Type"); got != "text/csv; charset=utf-8" {
		t.Errorf("content type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "filtered_papers.csv") {
		t.Errorf("content disposition = %q", got)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Search Swarms — Doe, 2021") {
		t.Error("matching record missing from export")
	}
	if strings.Contains(body, "Crop Drones") {
		t.Error("filtered record exported")
	}
}

func TestAPIView(t *testing.T) {
	rec := get(t, testServer(), "/api/view.json?q=crop")

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("content type = %q", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"agri-2019"`) || strings.Contains(body, `"sar-2021"`) {
		t.Errorf("view = %s", body)
	}
}

func TestErrorServerRendersFailureState(t *testing.T) {
	s := NewErrorServer(errors.New("no such file"))

	body := get(t, s, "/").Body.String()
	if !strings.Contains(body, "Failed to load dataset") {
		t.Error("load error not surfaced")
	}
	if !strings.Contains(body, "dataset unavailable") {
		t.Error("status line missing")
	}
}

func TestUnknownPathIs404(t *testing.T) {
	if rec := get(t, testServer(), "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
