// Package catalog holds the fixed list of winget packages that wingetpick
// offers, along with the filtering and category helpers used by the CLI and
// the TUI.
//
// The default catalog is compiled into the binary from seed.yaml. A Catalog
// never changes after construction; every accessor returns copies so callers
// cannot mutate the shared list.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

var (
	// ErrDuplicateID is returned when two records share a package identifier.
	ErrDuplicateID = errors.New("duplicate package id")

	// ErrEmptyID is returned when a record has no package identifier.
	ErrEmptyID = errors.New("empty package id")

	// ErrUnknownPackage is returned when an identifier is not in the catalog.
	ErrUnknownPackage = errors.New("package not in catalog")
)

// Catalog is an immutable, ordered list of packages.
type Catalog struct {
	packages []Package
	byID     map[string]int
}

type seedFile struct {
	Packages []Package `yaml:"packages"`
}

// Load returns the catalog compiled into the binary.
func Load() (*Catalog, error) {
	return Parse(seedYAML)
}

// MustLoad is like Load but panics if the embedded seed is invalid.
// The seed is covered by tests, so this only fails on a broken build.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a YAML seed document into a Catalog.
func Parse(data []byte) (*Catalog, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}
	return New(seed.Packages)
}

// New builds a Catalog from records, preserving their order.
// Identifiers must be non-empty and unique.
func New(pkgs []Package) (*Catalog, error) {
	c := &Catalog{
		packages: make([]Package, len(pkgs)),
		byID:     make(map[string]int, len(pkgs)),
	}
	copy(c.packages, pkgs)

	for i, pkg := range c.packages {
		if pkg.ID == "" {
			return nil, fmt.Errorf("record %d (%q): %w", i, pkg.Name, ErrEmptyID)
		}
		if prev, ok := c.byID[pkg.ID]; ok {
			return nil, fmt.Errorf("%s (records %d and %d): %w", pkg.ID, prev, i, ErrDuplicateID)
		}
		c.byID[pkg.ID] = i
	}

	return c, nil
}

// Len returns the number of packages.
func (c *Catalog) Len() int {
	return len(c.packages)
}

// All returns every package in catalog order.
func (c *Catalog) All() []Package {
	out := make([]Package, len(c.packages))
	copy(out, c.packages)
	return out
}

// Lookup returns the package with the given identifier.
func (c *Catalog) Lookup(id string) (Package, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Package{}, false
	}
	return c.packages[i], true
}

// Resolve looks up id, returning ErrUnknownPackage with the closest
// identifiers attached to the message when it is missing.
func (c *Catalog) Resolve(id string) (Package, error) {
	if pkg, ok := c.Lookup(id); ok {
		return pkg, nil
	}
	if hints := c.Suggest(id, 3); len(hints) > 0 {
		return Package{}, fmt.Errorf("%s: %w (did you mean %s?)", id, ErrUnknownPackage, strings.Join(hints, ", "))
	}
	return Package{}, fmt.Errorf("%s: %w", id, ErrUnknownPackage)
}

// idSource adapts the catalog identifiers to fuzzy.Source.
type idSource []Package

func (s idSource) String(i int) string { return s[i].ID }
func (s idSource) Len() int            { return len(s) }

// Suggest returns up to n package identifiers that fuzzily match query,
// best match first. Matching ignores case.
func (c *Catalog) Suggest(query string, n int) []string {
	if query == "" || n <= 0 {
		return nil
	}

	lowered := make(idSource, len(c.packages))
	for i, pkg := range c.packages {
		lowered[i] = Package{ID: strings.ToLower(pkg.ID)}
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), lowered)
	var out []string
	for _, m := range matches {
		out = append(out, c.packages[m.Index].ID)
		if len(out) == n {
			break
		}
	}
	return out
}
