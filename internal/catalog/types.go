package catalog

// Package is a single installable program offered by the catalog.
type Package struct {
	Name     string `yaml:"name"`     // display name, not guaranteed unique
	ID       string `yaml:"id"`       // winget package identifier, e.g. "Git.Git"
	Category string `yaml:"category"` // e.g. "Development", "Utilities"
}

// CategoryCount pairs a category label with the number of packages in it.
type CategoryCount struct {
	Category string
	Count    int
}
