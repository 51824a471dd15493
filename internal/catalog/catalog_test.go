package catalog

import (
	"errors"
	"strings"
	"testing"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := New([]Package{
		{Name: "7-Zip", ID: "7zip.7zip", Category: "Utilities"},
		{Name: "Git", ID: "Git.Git", Category: "Development"},
		{Name: "GitHub Desktop", ID: "GitHub.GitHubDesktop", Category: "Development"},
		{Name: "Google Chrome", ID: "Google.Chrome", Category: "Web Browsers"},
		{Name: "VLC", ID: "VideoLAN.VLC", Category: "Multimedia"},
		{Name: "Visual Studio Code", ID: "Microsoft.VisualStudioCode", Category: "Development"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestLoad_EmbeddedSeed(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Len() != 37 {
		t.Errorf("Len() = %d, want 37", c.Len())
	}

	first := c.All()[0]
	if first.Name != "7-Zip" || first.ID != "7zip.7zip" || first.Category != "Utilities" {
		t.Errorf("first package = %+v, want 7-Zip/7zip.7zip/Utilities", first)
	}

	want := []string{"Utilities", "Development", "Gaming", "Web Browsers", "System", "Multimedia"}
	got := c.Categories()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestNew_RejectsDuplicateID(t *testing.T) {
	_, err := New([]Package{
		{Name: "Git", ID: "Git.Git", Category: "Development"},
		{Name: "Git again", ID: "Git.Git", Category: "Utilities"},
	})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("New() error = %v, want ErrDuplicateID", err)
	}
}

func TestNew_RejectsEmptyID(t *testing.T) {
	_, err := New([]Package{{Name: "Nameless", Category: "Utilities"}})
	if !errors.Is(err, ErrEmptyID) {
		t.Errorf("New() error = %v, want ErrEmptyID", err)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("packages: [unterminated")); err == nil {
		t.Error("Parse() expected error for malformed YAML")
	}
}

func TestNew_CopiesInput(t *testing.T) {
	pkgs := []Package{{Name: "Git", ID: "Git.Git", Category: "Development"}}
	c, err := New(pkgs)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	pkgs[0].Name = "mutated"
	all := c.All()
	all[0].Category = "mutated"

	got, _ := c.Lookup("Git.Git")
	if got.Name != "Git" || got.Category != "Development" {
		t.Errorf("catalog was mutated through caller slices: %+v", got)
	}
}

func TestLookup(t *testing.T) {
	c := testCatalog(t)

	pkg, ok := c.Lookup("Google.Chrome")
	if !ok {
		t.Fatal("Lookup(Google.Chrome) not found")
	}
	if pkg.Name != "Google Chrome" {
		t.Errorf("Lookup name = %q, want Google Chrome", pkg.Name)
	}

	if _, ok := c.Lookup("google.chrome"); ok {
		t.Error("Lookup should treat identifiers as exact, case-sensitive keys")
	}
}

func TestResolve_UnknownSuggests(t *testing.T) {
	c := testCatalog(t)

	_, err := c.Resolve("chrome")
	if !errors.Is(err, ErrUnknownPackage) {
		t.Fatalf("Resolve() error = %v, want ErrUnknownPackage", err)
	}
	if !strings.Contains(err.Error(), "Google.Chrome") {
		t.Errorf("Resolve() error %q should suggest Google.Chrome", err)
	}
}

func TestResolve_NoSuggestion(t *testing.T) {
	c := testCatalog(t)

	_, err := c.Resolve("zzzzzz")
	if !errors.Is(err, ErrUnknownPackage) {
		t.Fatalf("Resolve() error = %v, want ErrUnknownPackage", err)
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("Resolve() error %q should not carry a suggestion", err)
	}
}

func TestSuggest(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name  string
		query string
		n     int
		want  string
	}{
		{name: "subsequence", query: "vscode", n: 3, want: "Microsoft.VisualStudioCode"},
		{name: "case insensitive", query: "VLC", n: 2, want: "VideoLAN.VLC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Suggest(tt.query, tt.n)
			if len(got) == 0 || len(got) > tt.n {
				t.Fatalf("Suggest(%q, %d) = %v", tt.query, tt.n, got)
			}
			found := false
			for _, id := range got {
				if id == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("Suggest(%q) = %v, want it to include %s", tt.query, got, tt.want)
			}
		})
	}

	if got := c.Suggest("", 3); got != nil {
		t.Errorf("Suggest(\"\") = %v, want nil", got)
	}
}
