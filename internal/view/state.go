// Package view holds the browsing state shared by the TUI screens and the
// pure transition function that moves between them.
package view

import "github.com/blackwell-systems/wingetpick/internal/catalog"

// Mode is the screen currently shown.
type Mode int

const (
	// ModeCategories lists categories with their package counts.
	ModeCategories Mode = iota
	// ModePrograms lists packages, narrowed by category and search.
	ModePrograms
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeCategories:
		return "categories"
	case ModePrograms:
		return "programs"
	default:
		return "unknown"
	}
}

// State is the browsing state. The zero value is the initial state:
// category list, no active category, empty search.
type State struct {
	Mode           Mode
	ActiveCategory string // "" when no category is active
	Search         string
}

// Event is an input to Update.
type Event interface {
	isEvent()
}

// SelectCategory opens the package list for one category.
type SelectCategory struct {
	Category string
}

// Back returns to the category list and clears the active category.
type Back struct{}

// ToggleView flips between the two screens. The active category is kept,
// so toggling back to the package list shows the same category.
type ToggleView struct{}

// SetSearch replaces the search term.
type SetSearch struct {
	Term string
}

func (SelectCategory) isEvent() {}
func (Back) isEvent()           {}
func (ToggleView) isEvent()     {}
func (SetSearch) isEvent()      {}

// Update returns the state that results from applying e to s.
func Update(s State, e Event) State {
	switch e := e.(type) {
	case SelectCategory:
		s.Mode = ModePrograms
		s.ActiveCategory = e.Category
	case Back:
		if s.Mode == ModePrograms {
			s.Mode = ModeCategories
			s.ActiveCategory = ""
		}
	case ToggleView:
		if s.Mode == ModeCategories {
			s.Mode = ModePrograms
		} else {
			s.Mode = ModeCategories
		}
	case SetSearch:
		s.Search = e.Term
	}
	return s
}

// Visible returns the packages the package list should show for s.
func Visible(c *catalog.Catalog, s State) []catalog.Package {
	return c.Filter(s.Search, s.ActiveCategory)
}
