package catalog

import "strings"

// Filter returns the packages whose name contains search (ignoring case) and,
// when category is non-empty, whose category equals it exactly. An empty
// search matches every package. Results keep catalog order.
func (c *Catalog) Filter(search, category string) []Package {
	needle := strings.ToLower(search)

	out := make([]Package, 0, len(c.packages))
	for _, pkg := range c.packages {
		if category != "" && pkg.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(pkg.Name), needle) {
			continue
		}
		out = append(out, pkg)
	}
	return out
}
