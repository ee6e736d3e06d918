// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explore

// Expansion is the set of record IDs currently showing their detail panel.
// It is independent of the view: re-filtering never collapses an expanded
// record, and toggling an ID that is filtered out is harmless — the panel
// simply reappears open when the record does.
type Expansion map[string]struct{}

// NewExpansion returns an empty expansion set.
func NewExpansion() Expansion {
	return Expansion{}
}

// Toggle flips membership for id.
func (e Expansion) Toggle(id string) {
	if _, ok := e[id]; ok {
		delete(e, id)
	} else {
		e[id] = struct{}{}
	}
}

// IsExpanded reports whether id is expanded.
func (e Expansion) IsExpanded(id string) bool {
	_, ok := e[id]
	return ok
}

// Clear collapses everything.
func (e Expansion) Clear() {
	for id := range e {
		delete(e, id)
	}
}

// Len returns the number of expanded records.
func (e Expansion) Len() int {
	return len(e)
}
