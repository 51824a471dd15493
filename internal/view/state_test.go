package view

import (
	"testing"

	"github.com/blackwell-systems/wingetpick/internal/catalog"
)

func TestUpdate(t *testing.T) {
	tests := []struct {
		name  string
		start State
		event Event
		want  State
	}{
		{
			name:  "select category opens programs",
			start: State{},
			event: SelectCategory{Category: "Development"},
			want:  State{Mode: ModePrograms, ActiveCategory: "Development"},
		},
		{
			name:  "back clears category",
			start: State{Mode: ModePrograms, ActiveCategory: "Development", Search: "git"},
			event: Back{},
			want:  State{Mode: ModeCategories, Search: "git"},
		},
		{
			name:  "back on categories is a no-op",
			start: State{Mode: ModeCategories, ActiveCategory: "Gaming"},
			event: Back{},
			want:  State{Mode: ModeCategories, ActiveCategory: "Gaming"},
		},
		{
			name:  "toggle from categories keeps category",
			start: State{Mode: ModeCategories, ActiveCategory: "Gaming"},
			event: ToggleView{},
			want:  State{Mode: ModePrograms, ActiveCategory: "Gaming"},
		},
		{
			name:  "toggle from programs keeps category",
			start: State{Mode: ModePrograms, ActiveCategory: "System"},
			event: ToggleView{},
			want:  State{Mode: ModeCategories, ActiveCategory: "System"},
		},
		{
			name:  "set search leaves navigation alone",
			start: State{Mode: ModePrograms, ActiveCategory: "System"},
			event: SetSearch{Term: ".net"},
			want:  State{Mode: ModePrograms, ActiveCategory: "System", Search: ".net"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Update(tt.start, tt.event); got != tt.want {
				t.Errorf("Update(%+v, %T) = %+v, want %+v", tt.start, tt.event, got, tt.want)
			}
		})
	}
}

func TestUpdate_DoesNotMutateInput(t *testing.T) {
	start := State{Mode: ModePrograms, ActiveCategory: "Development"}
	_ = Update(start, Back{})
	if start.Mode != ModePrograms || start.ActiveCategory != "Development" {
		t.Errorf("Update mutated its input: %+v", start)
	}
}

func TestNavigation_Development(t *testing.T) {
	c := catalog.MustLoad()

	s := Update(State{}, SelectCategory{Category: "Development"})
	if s.Mode != ModePrograms {
		t.Fatalf("mode = %v, want programs", s.Mode)
	}

	visible := Visible(c, s)
	if len(visible) == 0 {
		t.Fatal("no Development packages visible")
	}
	for _, pkg := range visible {
		if pkg.Category != "Development" {
			t.Errorf("visible package %s has category %q", pkg.ID, pkg.Category)
		}
	}

	s = Update(s, Back{})
	if s.Mode != ModeCategories || s.ActiveCategory != "" {
		t.Errorf("after Back state = %+v, want categories with no active category", s)
	}
	if got := len(Visible(c, s)); got != c.Len() {
		t.Errorf("Visible after Back = %d packages, want full catalog %d", got, c.Len())
	}
}

func TestModeString(t *testing.T) {
	if ModeCategories.String() != "categories" || ModePrograms.String() != "programs" {
		t.Errorf("unexpected mode names %q %q", ModeCategories, ModePrograms)
	}
	if Mode(42).String() != "unknown" {
		t.Errorf("Mode(42).String() = %q", Mode(42).String())
	}
}
