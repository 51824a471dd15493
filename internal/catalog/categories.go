package catalog

import "sort"

// Categories returns the distinct category labels in order of first
// appearance in the catalog.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, pkg := range c.packages {
		if _, ok := seen[pkg.Category]; ok {
			continue
		}
		seen[pkg.Category] = struct{}{}
		out = append(out, pkg.Category)
	}
	return out
}

// SortedCategories returns the category labels in alphabetical order.
// Display only; Categories is the canonical ordering.
func (c *Catalog) SortedCategories() []string {
	out := c.Categories()
	sort.Strings(out)
	return out
}

// CountInCategory returns how many packages belong to category.
func (c *Catalog) CountInCategory(category string) int {
	n := 0
	for _, pkg := range c.packages {
		if pkg.Category == category {
			n++
		}
	}
	return n
}

// CategoryCounts returns every category with its package count, in the
// order given by Categories.
func (c *Catalog) CategoryCounts() []CategoryCount {
	cats := c.Categories()
	out := make([]CategoryCount, len(cats))
	for i, cat := range cats {
		out[i] = CategoryCount{Category: cat, Count: c.CountInCategory(cat)}
	}
	return out
}
