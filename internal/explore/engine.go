// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explore

import (
	"sync"

	"github.com/pdiddy/paper-explorer/internal/dataset"
	"github.com/pdiddy/paper-explorer/pkg/types"
)

// Engine owns the process-wide explorer state: the immutable dataset, the
// derived facet list, the filter state, the expansion set, and the current
// view. Every mutation recomputes the view before the lock is released, so
// no presentation ever observes a torn intermediate state. The mutex exists
// because Go's HTTP server calls handlers concurrently; the engine itself
// has no other concurrency.
type Engine struct {
	mu        sync.Mutex
	records   []types.Record
	scenarios []string
	modelCats []string
	state     State
	expanded  Expansion
	view      []types.Record
}

// NewEngine builds the engine around a normalized dataset: facets are
// derived once, the filter state starts neutral, and the first view is the
// whole dataset in default order.
func NewEngine(records []types.Record) *Engine {
	e := &Engine{
		records:   records,
		scenarios: dataset.Scenarios(records),
		modelCats: dataset.ModelCategories(records),
		state:     NewState(),
		expanded:  NewExpansion(),
	}
	e.view = Recompute(e.records, e.state)
	return e
}

// Snapshot is a consistent read of everything a presentation needs.
type Snapshot struct {
	// View is the filtered, sorted record sequence.
	View []types.Record

	// State is the filter state the view was derived from.
	State State

	// Chips are the active-filter descriptors for that state.
	Chips []Chip

	// Scenarios is the full facet list (derived from data, not the view).
	Scenarios []string

	// ModelCategories are the known model-based-support categories.
	ModelCategories []string

	// Expanded maps record IDs to their expansion flag.
	Expanded map[string]bool

	// Total is the dataset cardinality, for the "<visible> / <total>" line.
	Total int
}

// Snapshot returns a copy of the current engine state. The view slice and
// maps are fresh copies; callers can hold them across later mutations.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	view := make([]types.Record, len(e.view))
	copy(view, e.view)

	expanded := make(map[string]bool, len(e.expanded))
	for id := range e.expanded {
		expanded[id] = true
	}

	return Snapshot{
		View:            view,
		State:           e.state.Clone(),
		Chips:           ActiveChips(e.state),
		Scenarios:       append([]string(nil), e.scenarios...),
		ModelCategories: append([]string(nil), e.modelCats...),
		Expanded:        expanded,
		Total:           len(e.records),
	}
}

// Apply runs the actions through the reducer and recomputes the view.
func (e *Engine) Apply(actions ...Action) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, a := range actions {
		e.state = Apply(e.state, a)
	}
	e.view = Recompute(e.records, e.state)
}

// SetState replaces the filter state wholesale (the web UI round-trips the
// full state through the request) and recomputes the view. Scenario
// selections outside the derived facet list are dropped to keep the
// invariant that the selection is a subset of the facets.
func (e *Engine) SetState(s State) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s = s.Clone()
	for sc := range s.Scenarios {
		if !e.knownScenario(sc) {
			delete(s.Scenarios, sc)
		}
	}
	e.state = s
	e.view = Recompute(e.records, e.state)
}

func (e *Engine) knownScenario(sc string) bool {
	for _, known := range e.scenarios {
		if known == sc {
			return true
		}
	}
	return false
}

// ToggleExpansion flips the detail panel for one record ID. Filter state
// and view are unaffected.
func (e *Engine) ToggleExpansion(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.expanded.Toggle(id)
}

// ClearAll resets filters, sort, and expansion, then recomputes.
func (e *Engine) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = NewState()
	e.expanded.Clear()
	e.view = Recompute(e.records, e.state)
}
