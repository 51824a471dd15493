package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/wingetpick/internal/catalog"
	"github.com/blackwell-systems/wingetpick/internal/view"
)

func keyName(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return " "
	}
	return msg.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := keyName(msg)
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.searching {
		return m.handleSearchKey(msg, key)
	}

	switch key {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		return m.apply(view.ToggleView{}), nil
	case "t":
		if m.theme.Name == "dark" {
			m.theme = ThemeByName("light")
		} else {
			m.theme = ThemeByName("dark")
		}
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil
	case "home", "g":
		m.cursor = 0
		return m, nil
	case "end", "G":
		m.cursor = m.rowCount() - 1
		m.clampCursor()
		return m, nil
	}

	if m.state.Mode == view.ModeCategories {
		return m.handleCategoryKey(key)
	}
	return m.handleProgramKey(key)
}

func (m Model) handleCategoryKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", "right", "l":
		cats := m.catalog.Categories()
		if len(cats) == 0 {
			return m, nil
		}
		return m.apply(view.SelectCategory{Category: cats[m.cursor]}), nil
	}
	return m, nil
}

func (m Model) handleProgramKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "left", "h", "backspace":
		return m.apply(view.Back{}), nil
	case "/":
		m.searching = true
		return m, nil
	case " ":
		if pkg, ok := m.current(); ok {
			m.selection = m.selection.Toggle(pkg.ID)
		}
		return m, nil
	case "enter", "c":
		if pkg, ok := m.current(); ok {
			return m, m.copySingle(pkg)
		}
		return m, nil
	case "y":
		return m.copySelected()
	case "x":
		if m.selection.Len() == 0 {
			return m, nil
		}
		m.selection = m.selection.Clear()
		return m.showToast(toast{Title: "Selection cleared"})
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg, key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "enter":
		m.searching = false
		return m, nil
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil
	case "backspace":
		r := []rune(m.state.Search)
		if len(r) == 0 {
			return m, nil
		}
		return m.apply(view.SetSearch{Term: string(r[:len(r)-1])}), nil
	case "ctrl+u":
		return m.apply(view.SetSearch{Term: ""}), nil
	case " ":
		return m.apply(view.SetSearch{Term: m.state.Search + " "}), nil
	}

	if msg.Type == tea.KeyRunes {
		return m.apply(view.SetSearch{Term: m.state.Search + string(msg.Runes)}), nil
	}
	return m, nil
}

func (m Model) current() (catalog.Package, bool) {
	rows := m.visible()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return catalog.Package{}, false
	}
	return rows[m.cursor], true
}
