// Package output provides terminal output utilities for wingetpick's
// non-interactive commands.
//
// This package includes:
//   - Table rendering for catalog packages, categories and command history
//   - Human-readable relative times
//
// Tables use box-drawing rules and ANSI color codes only when stdout is a
// terminal and NO_COLOR is unset.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/wingetpick/internal/catalog"
	"github.com/blackwell-systems/wingetpick/internal/store"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderPackageTable renders packages in the order given.
func RenderPackageTable(packages []catalog.Package) string {
	if len(packages) == 0 {
		return "No programs found.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-30s %-38s %s\n", "Program", "Package ID", "Category"))
	sb.WriteString(strings.Repeat("─", 84))
	sb.WriteString("\n")

	for _, pkg := range packages {
		// Pad before colorizing so escape codes do not skew alignment.
		id := fmt.Sprintf("%-38s", truncate(pkg.ID, 38))
		sb.WriteString(fmt.Sprintf("%-30s %s %s\n",
			truncate(pkg.Name, 30),
			colorize(colorCyan, id),
			pkg.Category))
	}

	sb.WriteString(fmt.Sprintf("\n%d programs\n", len(packages)))
	return sb.String()
}

// RenderCategoryTable renders category counts in the order given.
func RenderCategoryTable(counts []catalog.CategoryCount) string {
	if len(counts) == 0 {
		return "No categories found.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-24s %s\n", "Category", "Programs"))
	sb.WriteString(strings.Repeat("─", 34))
	sb.WriteString("\n")

	for _, cc := range counts {
		sb.WriteString(fmt.Sprintf("%-24s %s\n",
			truncate(cc.Category, 24),
			formatProgramCount(cc.Count)))
	}

	return sb.String()
}

// RenderHistoryTable renders copied commands, newest first as returned by
// the store.
func RenderHistoryTable(entries []*store.HistoryEntry) string {
	if len(entries) == 0 {
		return "No commands copied yet.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-15s %-9s %s\n", "ID", "Copied", "Programs", "Command"))
	sb.WriteString(strings.Repeat("─", 96))
	sb.WriteString("\n")

	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%-5d %-15s %-9d %s\n",
			e.ID,
			formatRelativeTime(e.CreatedAt),
			e.PackageCount(),
			colorize(colorGray, truncate(e.Command, 64))))
	}

	return sb.String()
}

// RenderCommand renders a generated install command with a short header.
func RenderCommand(command string, copied bool) string {
	var sb strings.Builder
	sb.WriteString(colorize(colorBold, command))
	sb.WriteString("\n")
	if copied {
		sb.WriteString(colorize(colorGreen, "✓ Command copied!"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatProgramCount returns "1 program" or "N programs".
func formatProgramCount(n int) string {
	if n == 1 {
		return "1 program"
	}
	return fmt.Sprintf("%d programs", n)
}

// formatRelativeTime converts a timestamp to relative time (e.g., "2 days ago").
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 30*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Local().Format("2006-01-02")
	}
}

// truncate truncates a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
