package catalog

import (
	"strings"
	"testing"
)

func TestCategories_FirstOccurrenceOrder(t *testing.T) {
	c := testCatalog(t)

	got := c.Categories()
	want := []string{"Utilities", "Development", "Web Browsers", "Multimedia"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestSortedCategories(t *testing.T) {
	c := testCatalog(t)

	got := c.SortedCategories()
	want := []string{"Development", "Multimedia", "Utilities", "Web Browsers"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("SortedCategories() = %v, want %v", got, want)
	}

	// Sorting for display must not disturb the canonical order.
	if c.Categories()[0] != "Utilities" {
		t.Error("SortedCategories() changed Categories() order")
	}
}

func TestCountInCategory(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		category string
		want     int
	}{
		{"Development", 3},
		{"Utilities", 1},
		{"Web Browsers", 1},
		{"Gaming", 0},
	}

	for _, tt := range tests {
		if got := c.CountInCategory(tt.category); got != tt.want {
			t.Errorf("CountInCategory(%q) = %d, want %d", tt.category, got, tt.want)
		}
	}
}

func TestCountInCategory_MatchesFilter(t *testing.T) {
	c := MustLoad()

	for _, cat := range c.Categories() {
		if got, want := c.CountInCategory(cat), len(c.Filter("", cat)); got != want {
			t.Errorf("CountInCategory(%q) = %d, Filter size = %d", cat, got, want)
		}
	}
}

func TestCategoryCounts(t *testing.T) {
	c := MustLoad()

	total := 0
	for _, cc := range c.CategoryCounts() {
		total += cc.Count
	}
	if total != c.Len() {
		t.Errorf("sum of CategoryCounts = %d, want %d", total, c.Len())
	}

	counts := c.CategoryCounts()
	if counts[1].Category != "Development" || counts[1].Count != 5 {
		t.Errorf("CategoryCounts()[1] = %+v, want Development/5", counts[1])
	}
}
