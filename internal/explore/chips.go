// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package explore

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ChipKind identifies which filter dimension a chip represents.
type ChipKind string

const (
	ChipQuery      ChipKind = "q"
	ChipSA1        ChipKind = "sa1"
	ChipSA2        ChipKind = "sa2"
	ChipSA3        ChipKind = "sa3"
	ChipTraining   ChipKind = "training"
	ChipModelBased ChipKind = "model"
	ChipScenario   ChipKind = "scenario"
)

// Chip is one removable token for an active filter dimension. Chips are a
// projection of State — never a second source of truth — and carry enough
// information (Kind, Value) to reverse exactly the dimension they stand for.
type Chip struct {
	Kind  ChipKind
	Label string
	Value string
}

// ActiveChips derives the ordered chip list from the state: query first,
// then the SA toggles, the two selectors, and one chip per selected
// scenario in locale order.
func ActiveChips(s State) []Chip {
	var chips []Chip

	if q := strings.TrimSpace(s.Query); q != "" {
		chips = append(chips, Chip{Kind: ChipQuery, Label: "Search", Value: q})
	}
	if s.SA1 {
		chips = append(chips, Chip{Kind: ChipSA1, Label: "SA", Value: "SA1"})
	}
	if s.SA2 {
		chips = append(chips, Chip{Kind: ChipSA2, Label: "SA", Value: "SA2"})
	}
	if s.SA3 {
		chips = append(chips, Chip{Kind: ChipSA3, Label: "SA", Value: "SA3"})
	}
	if s.Training != TrainingAll {
		chips = append(chips, Chip{Kind: ChipTraining, Label: "Training", Value: strings.ToUpper(string(s.Training))})
	}
	if s.ModelBased != ModelBasedAll {
		chips = append(chips, Chip{Kind: ChipModelBased, Label: "Model", Value: s.ModelBased})
	}

	if len(s.Scenarios) > 0 {
		selected := make([]string, 0, len(s.Scenarios))
		for sc := range s.Scenarios {
			selected = append(selected, sc)
		}
		collate.New(language.Und).SortStrings(selected)
		for _, sc := range selected {
			chips = append(chips, Chip{Kind: ChipScenario, Label: "Scenario", Value: sc})
		}
	}

	return chips
}

// RemoveChip returns the state with exactly the chip's dimension reset to
// neutral; every other dimension, including the sort key, is untouched.
func RemoveChip(s State, kind ChipKind, value string) State {
	switch kind {
	case ChipQuery:
		return Apply(s, SetQuery{})
	case ChipSA1:
		return Apply(s, SetSA{Level: 1})
	case ChipSA2:
		return Apply(s, SetSA{Level: 2})
	case ChipSA3:
		return Apply(s, SetSA{Level: 3})
	case ChipTraining:
		return Apply(s, SetTraining{Training: TrainingAll})
	case ChipModelBased:
		return Apply(s, SetModelBased{Category: ModelBasedAll})
	case ChipScenario:
		return Apply(s, SetScenario{Scenario: value, Selected: false})
	}
	return s.Clone()
}
