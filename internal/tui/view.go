package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/wingetpick/internal/view"
)

// chromeLines is the number of lines used around the list: header, search,
// back hint, button, help and spacing.
const chromeLines = 12

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.state.Mode == view.ModeCategories {
		b.WriteString(m.renderCategories())
	} else {
		b.WriteString(m.renderPrograms())
	}

	if m.lastCommand != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Muted.Render("Command: "))
		b.WriteString(m.theme.Text.Render(m.lastCommand))
		b.WriteString("\n")
	}

	if m.toast != nil {
		b.WriteString("\n")
		b.WriteString(m.renderToast())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("Winget Installer")

	catTab, progTab := m.theme.Tab, m.theme.Tab
	if m.state.Mode == view.ModeCategories {
		catTab = m.theme.TabOn
	} else {
		progTab = m.theme.TabOn
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		catTab.Render("Categories"),
		progTab.Render("Programs"),
	)

	count := m.theme.Muted.Render(fmt.Sprintf("%d selected", m.selection.Len()))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", tabs, "  ", count)
}

func (m Model) renderCategories() string {
	counts := m.catalog.CategoryCounts()
	if len(counts) == 0 {
		return m.theme.Muted.Render("No categories.") + "\n"
	}

	start, end := window(m.cursor, len(counts), m.listHeight())
	var b strings.Builder
	for i := start; i < end; i++ {
		cc := counts[i]
		pointer, name := "  ", m.theme.Text.Render(fmt.Sprintf("%-24s", cc.Category))
		if i == m.cursor {
			pointer = m.theme.Cursor.Render("▸ ")
			name = m.theme.Cursor.Render(fmt.Sprintf("%-24s", cc.Category))
		}
		b.WriteString(pointer + name + " " + m.theme.Muted.Render(programCount(cc.Count)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderPrograms() string {
	var b strings.Builder

	if m.state.ActiveCategory != "" {
		b.WriteString(m.theme.Muted.Render("← Back to Categories (esc)  "))
		b.WriteString(m.theme.Title.Render(m.state.ActiveCategory))
		b.WriteString("\n")
	}

	b.WriteString(m.renderSearch())
	b.WriteString("\n\n")

	rows := m.visible()
	if len(rows) == 0 {
		b.WriteString(m.theme.Muted.Render("No programs match."))
		b.WriteString("\n")
	}

	start, end := window(m.cursor, len(rows), m.listHeight())
	for i := start; i < end; i++ {
		pkg := rows[i]

		box := "[ ]"
		if m.selection.IsSelected(pkg.ID) {
			box = m.theme.Checked.Render("[x]")
		}

		pointer := "  "
		name := m.theme.Text.Render(fmt.Sprintf("%-32s", pkg.Name))
		if i == m.cursor {
			pointer = m.theme.Cursor.Render("▸ ")
			name = m.theme.Cursor.Render(fmt.Sprintf("%-32s", pkg.Name))
		}

		b.WriteString(pointer + box + " " + name + " " + m.theme.ID.Render(pkg.ID))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	label := "Copy Winget Command for Selected Programs"
	if m.selection.Len() == 0 {
		b.WriteString(m.theme.Disabled.Render(label))
	} else {
		b.WriteString(m.theme.Button.Render(fmt.Sprintf("%s (%d)", label, m.selection.Len())))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderSearch() string {
	if m.state.Search == "" && !m.searching {
		return m.theme.Search.Render(m.theme.Muted.Render("Search for a program... (/)"))
	}
	text := m.state.Search
	if m.searching {
		text += "█"
	}
	return m.theme.Search.Render(text)
}

func (m Model) renderToast() string {
	title := m.theme.Success.Render(m.toast.Title)
	if m.toast.IsErr {
		title = m.theme.Error.Render(m.toast.Title)
	}
	body := title
	if m.toast.Body != "" {
		width := m.width - 6
		if width < 20 {
			width = 20
		}
		body += "\n" + m.theme.Muted.Width(width).Render(m.toast.Body)
	}
	return m.theme.Toast.Render(body)
}

func (m Model) renderHelp() string {
	var pairs [][2]string
	switch {
	case m.searching:
		pairs = [][2]string{{"type", "filter"}, {"enter/esc", "done"}, {"ctrl+u", "clear"}}
	case m.state.Mode == view.ModeCategories:
		pairs = [][2]string{{"↑/↓", "move"}, {"enter", "open"}, {"tab", "programs"}, {"t", "theme"}, {"q", "quit"}}
	default:
		pairs = [][2]string{
			{"space", "select"}, {"enter", "copy one"}, {"y", "copy selected"},
			{"/", "search"}, {"x", "clear"}, {"esc", "back"}, {"tab", "categories"}, {"q", "quit"},
		}
	}

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = m.theme.Key.Render(p[0]) + " " + m.theme.Muted.Render(p[1])
	}
	return strings.Join(parts, m.theme.Muted.Render(" · "))
}

func (m Model) listHeight() int {
	h := m.height - chromeLines
	if h < 5 {
		return 5
	}
	return h
}

// window returns the [start, end) slice of n rows to show so that cursor
// stays visible within height rows.
func window(cursor, n, height int) (int, int) {
	if n <= height {
		return 0, n
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}

func programCount(n int) string {
	if n == 1 {
		return "1 program"
	}
	return fmt.Sprintf("%d programs", n)
}
