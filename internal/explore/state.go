// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package explore is the filter/sort/view engine behind every presentation
// surface. It is pure data in, pure data out: nothing in this package knows
// about HTTP, templates, or terminals.
package explore

// SortKey selects the view ordering.
type SortKey string

const (
	SortYearDesc  SortKey = "year_desc"
	SortYearAsc   SortKey = "year_asc"
	SortTitleAsc  SortKey = "title_asc"
	SortTitleDesc SortKey = "title_desc"
)

// ParseSortKey maps a user-supplied string to a SortKey, falling back to
// the default ordering (year, newest first).
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortYearAsc, SortTitleAsc, SortTitleDesc:
		return SortKey(s)
	default:
		return SortYearDesc
	}
}

// TrainingFilter selects records by their training-included flag.
type TrainingFilter string

const (
	TrainingAll TrainingFilter = "all"
	TrainingYes TrainingFilter = "yes"
	TrainingNo  TrainingFilter = "no"
)

// ParseTrainingFilter maps a user-supplied string to a TrainingFilter,
// falling back to "all".
func ParseTrainingFilter(s string) TrainingFilter {
	switch TrainingFilter(s) {
	case TrainingYes, TrainingNo:
		return TrainingFilter(s)
	default:
		return TrainingAll
	}
}

// ModelBasedAll is the neutral value of the model-based-support selector.
const ModelBasedAll = "all"

// State is the complete set of filter and sort selections. No field is
// ever undefined: absence of a restriction is the neutral value for that
// field ("" query, false toggles, "all" selectors, empty scenario set).
type State struct {
	// Query is the free-text search string.
	Query string

	// SA1, SA2, SA3 require the corresponding situational-awareness flag
	// to be exactly affirmed when set.
	SA1, SA2, SA3 bool

	// Training filters on the training-included flag.
	Training TrainingFilter

	// ModelBased is ModelBasedAll or one exact support category.
	ModelBased string

	// Scenarios is the set of selected scenario buckets; empty means no
	// restriction. Always a subset of the derived facet list.
	Scenarios map[string]struct{}

	// Sort is the active view ordering.
	Sort SortKey
}

// NewState returns the neutral state: no filters, default sort.
func NewState() State {
	return State{
		Training:   TrainingAll,
		ModelBased: ModelBasedAll,
		Scenarios:  map[string]struct{}{},
		Sort:       SortYearDesc,
	}
}

// Clone returns a deep copy; the scenario set is never shared.
func (s State) Clone() State {
	out := s
	out.Scenarios = make(map[string]struct{}, len(s.Scenarios))
	for sc := range s.Scenarios {
		out.Scenarios[sc] = struct{}{}
	}
	return out
}

// HasScenario reports whether the scenario bucket is selected.
func (s State) HasScenario(sc string) bool {
	_, ok := s.Scenarios[sc]
	return ok
}

// Action is one filter-state mutation. All mutations flow through Apply so
// that state transitions stay in one place and tests can drive arbitrary
// states without a rendering surface.
type Action interface {
	apply(State) State
}

// Apply returns the state after the action. The input is cloned first;
// actions never alias the caller's scenario set.
func Apply(s State, a Action) State {
	return a.apply(s.Clone())
}

// SetQuery replaces the free-text query.
type SetQuery struct{ Query string }

func (a SetQuery) apply(s State) State {
	s.Query = a.Query
	return s
}

// SetSA sets one situational-awareness toggle. Level is 1, 2, or 3; other
// levels leave the state unchanged.
type SetSA struct {
	Level int
	On    bool
}

func (a SetSA) apply(s State) State {
	switch a.Level {
	case 1:
		s.SA1 = a.On
	case 2:
		s.SA2 = a.On
	case 3:
		s.SA3 = a.On
	}
	return s
}

// SetTraining sets the training selector.
type SetTraining struct{ Training TrainingFilter }

func (a SetTraining) apply(s State) State {
	s.Training = a.Training
	return s
}

// SetModelBased sets the model-based-support selector.
type SetModelBased struct{ Category string }

func (a SetModelBased) apply(s State) State {
	if a.Category == "" {
		s.ModelBased = ModelBasedAll
	} else {
		s.ModelBased = a.Category
	}
	return s
}

// SetScenario adds or removes one scenario bucket from the selection.
type SetScenario struct {
	Scenario string
	Selected bool
}

func (a SetScenario) apply(s State) State {
	if a.Selected {
		s.Scenarios[a.Scenario] = struct{}{}
	} else {
		delete(s.Scenarios, a.Scenario)
	}
	return s
}

// SetSort sets the view ordering.
type SetSort struct{ Key SortKey }

func (a SetSort) apply(s State) State {
	s.Sort = ParseSortKey(string(a.Key))
	return s
}

// Clear resets every filter to neutral and the sort to the default.
type Clear struct{}

func (Clear) apply(State) State {
	return NewState()
}
