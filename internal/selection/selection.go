// Package selection tracks which package identifiers the user has picked.
package selection

// Set is an immutable set of package identifiers. Identifiers keep the
// order in which they were first added so generated commands are stable.
// The zero value is an empty set.
type Set struct {
	ids []string
}

// New returns a set containing ids, dropping repeats.
func New(ids ...string) Set {
	var s Set
	for _, id := range ids {
		if !s.IsSelected(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

// Toggle returns a new set with id removed if it was present, or appended
// if it was not. The receiver is left unchanged.
func (s Set) Toggle(id string) Set {
	for i, existing := range s.ids {
		if existing == id {
			next := make([]string, 0, len(s.ids)-1)
			next = append(next, s.ids[:i]...)
			next = append(next, s.ids[i+1:]...)
			return Set{ids: next}
		}
	}

	next := make([]string, len(s.ids), len(s.ids)+1)
	copy(next, s.ids)
	return Set{ids: append(next, id)}
}

// IsSelected reports whether id is in the set.
func (s Set) IsSelected(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Len returns the number of selected identifiers.
func (s Set) Len() int {
	return len(s.ids)
}

// IDs returns the selected identifiers in insertion order.
func (s Set) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Clear returns an empty set.
func (s Set) Clear() Set {
	return Set{}
}

// Equal reports whether both sets hold the same identifiers in the same order.
func (s Set) Equal(other Set) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}
