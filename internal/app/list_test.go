package app

import (
	"strings"
	"testing"
)

func TestList_All(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"7-Zip", "7zip.7zip", "Google Chrome", "37 of 37 programs"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestList_Category(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "list", "--category", "Development")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Git.Git") {
		t.Errorf("expected Git.Git in Development:\n%s", out)
	}
	if strings.Contains(out, "Google.Chrome") {
		t.Errorf("did not expect Google.Chrome in Development:\n%s", out)
	}
	if !strings.Contains(out, "5 of 37 programs") {
		t.Errorf("expected count line, got:\n%s", out)
	}
}

func TestList_SearchIsCaseInsensitive(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "list", "--search", "CHROME")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Google.Chrome") {
		t.Errorf("expected Google.Chrome, got:\n%s", out)
	}
}

func TestList_NoMatches(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "list", "--category", "Gaming", "--search", "git")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "No programs found.") {
		t.Errorf("expected empty message, got:\n%s", out)
	}
}

func TestList_UnknownCategory(t *testing.T) {
	isolate(t)

	_, err := runCLI(t, "list", "--category", "development")
	if err == nil {
		t.Fatal("expected error for category with wrong case")
	}
	if !strings.Contains(err.Error(), "Development") {
		t.Errorf("expected available categories in error, got %v", err)
	}
}

func TestCategories(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "categories")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	utilities := strings.Index(out, "Utilities")
	development := strings.Index(out, "Development")
	if utilities < 0 || development < 0 {
		t.Fatalf("missing categories:\n%s", out)
	}
	if utilities > development {
		t.Errorf("expected first-occurrence order (Utilities before Development):\n%s", out)
	}
	if !strings.Contains(out, "5 programs") {
		t.Errorf("expected Development count, got:\n%s", out)
	}
}

func TestCategories_Sorted(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "categories", "--sorted")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if strings.Index(out, "Development") > strings.Index(out, "Utilities") {
		t.Errorf("expected alphabetical order with --sorted:\n%s", out)
	}
}
