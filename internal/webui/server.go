// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package webui renders the explorer as a server-side web page. It is the
// only package with a rendering target: filter state round-trips through
// query parameters, every mutation lands on the shared engine, and each
// response is a full re-render of the current snapshot.
package webui

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/pdiddy/paper-explorer/internal/explore"
	"github.com/pdiddy/paper-explorer/internal/export"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

// Server serves the explorer UI over one process-wide engine.
type Server struct {
	engine  *explore.Engine
	loadErr error
}

// NewServer builds a server around a loaded engine.
func NewServer(engine *explore.Engine) *Server {
	return &Server{engine: engine}
}

// NewErrorServer builds a server that renders a terminal load-failure
// state: visible status message, empty table and cards. No partial dataset
// is ever shown.
func NewErrorServer(loadErr error) *Server {
	return &Server{
		engine:  explore.NewEngine(nil),
		loadErr: loadErr,
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleExplorer)
	mux.HandleFunc("/toggle", s.handleToggle)
	mux.HandleFunc("/clear", s.handleClear)
	mux.HandleFunc("/export.csv", s.handleExport)
	mux.HandleFunc("/api/view.json", s.handleAPIView)
	return mux
}

// StateFromQuery decodes the filter state carried in request parameters.
// Absent parameters decode to the neutral value, never to undefined.
func StateFromQuery(v url.Values) explore.State {
	s := explore.NewState()
	s.Query = v.Get("q")
	s.SA1 = v.Get("sa1") != ""
	s.SA2 = v.Get("sa2") != ""
	s.SA3 = v.Get("sa3") != ""
	s.Training = explore.ParseTrainingFilter(v.Get("training"))
	if mb := v.Get("model"); mb != "" {
		s.ModelBased = mb
	}
	for _, sc := range v["sc"] {
		if sc != "" {
			s.Scenarios[sc] = struct{}{}
		}
	}
	s.Sort = explore.ParseSortKey(v.Get("sort"))
	return s
}

// QueryFromState is the inverse of StateFromQuery: it encodes exactly the
// non-neutral dimensions so chip and toggle links reproduce the state.
func QueryFromState(s explore.State) url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set("q", s.Query)
	}
	if s.SA1 {
		v.Set("sa1", "on")
	}
	if s.SA2 {
		v.Set("sa2", "on")
	}
	if s.SA3 {
		v.Set("sa3", "on")
	}
	if s.Training != explore.TrainingAll {
		v.Set("training", string(s.Training))
	}
	if s.ModelBased != explore.ModelBasedAll {
		v.Set("model", s.ModelBased)
	}
	for _, c := range explore.ActiveChips(s) {
		if c.Kind == explore.ChipScenario {
			v.Add("sc", c.Value)
		}
	}
	v.Set("sort", string(s.Sort))
	return v
}

// chipView is one rendered chip with its removal link.
type chipView struct {
	Label     string
	Value     string
	RemoveURL string
}

// facetView is one scenario checkbox.
type facetView struct {
	Name     string
	Selected bool
}

// rowView is one record plus its presentation flags.
type rowView struct {
	types.Record
	Open      bool
	ToggleURL string
}

type pageData struct {
	Rows            []rowView
	Chips           []chipView
	Facets          []facetView
	ModelCategories []string
	State           explore.State
	SortKey         string
	TrainingKey     string
	ModelKey        string
	Status          string
	ExportURL       string
	Err             string
}

func (s *Server) page(snap explore.Snapshot) pageData {
	back := QueryFromState(snap.State).Encode()

	rows := make([]rowView, len(snap.View))
	for i, rec := range snap.View {
		rows[i] = rowView{
			Record:    rec,
			Open:      snap.Expanded[rec.ID],
			ToggleURL: "/toggle?id=" + url.QueryEscape(rec.ID) + "&back=" + url.QueryEscape(back),
		}
	}

	chips := make([]chipView, len(snap.Chips))
	for i, c := range snap.Chips {
		removed := explore.RemoveChip(snap.State, c.Kind, c.Value)
		chips[i] = chipView{
			Label:     c.Label,
			Value:     c.Value,
			RemoveURL: "/?" + QueryFromState(removed).Encode(),
		}
	}

	facets := make([]facetView, len(snap.Scenarios))
	for i, sc := range snap.Scenarios {
		facets[i] = facetView{Name: sc, Selected: snap.State.HasScenario(sc)}
	}

	data := pageData{
		Rows:            rows,
		Chips:           chips,
		Facets:          facets,
		ModelCategories: snap.ModelCategories,
		State:           snap.State,
		SortKey:         string(snap.State.Sort),
		TrainingKey:     string(snap.State.Training),
		ModelKey:        snap.State.ModelBased,
		Status:          fmt.Sprintf("%d / %d papers shown", len(snap.View), snap.Total),
		ExportURL:       "/export.csv?" + back,
	}
	if s.loadErr != nil {
		data.Err = fmt.Sprintf("Failed to load dataset: %v", s.loadErr)
		data.Status = "dataset unavailable"
	}
	return data
}

// syncState applies request parameters to the engine when the request
// carries any; a bare "/" keeps whatever the process-wide state already is.
func (s *Server) syncState(r *http.Request) {
	if s.loadErr != nil || r.URL.RawQuery == "" {
		return
	}
	s.engine.SetState(StateFromQuery(r.URL.Query()))
}

func (s *Server) handleExplorer(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.syncState(r)
	render(w, tmplExplorer, s.page(s.engine.Snapshot()))
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if id := q.Get("id"); id != "" {
		s.engine.ToggleExpansion(id)
	}

	back := ""
	if parsed, err := url.ParseQuery(q.Get("back")); err == nil {
		back = parsed.Encode()
	}
	http.Redirect(w, r, "/?"+back, http.StatusFound)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.engine.ClearAll()
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.syncState(r)
	snap := s.engine.Snapshot()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.DefaultFilename+`"`)
	if err := export.WriteCSV(w, snap.View); err != nil {
		log.Printf("csv export: %v", err)
	}
}

// GET /api/view.json
func (s *Server) handleAPIView(w http.ResponseWriter, r *http.Request) {
	s.syncState(r)
	snap := s.engine.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap.View)
}

func render(w http.ResponseWriter, tmplStr string, data any) {
	t, err := template.New("page").Funcs(funcMap).Parse(tmplBase + tmplStr)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		log.Printf("template error: %v", err)
	}
}

// ListenAndServe runs the UI until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("paper-explorer on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}
