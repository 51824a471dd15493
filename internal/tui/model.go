// Package tui is the interactive package browser.
//
// The Model follows Bubble Tea's model/update/view loop. Navigation state
// lives in view.State and changes only through view.Update; the selection
// is an immutable selection.Set replaced on every toggle. Clipboard writes
// run as commands and report back with copiedMsg.
package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/blackwell-systems/wingetpick/internal/catalog"
	"github.com/blackwell-systems/wingetpick/internal/clipboard"
	"github.com/blackwell-systems/wingetpick/internal/selection"
	"github.com/blackwell-systems/wingetpick/internal/view"
	"github.com/blackwell-systems/wingetpick/internal/winget"
)

const defaultToastDuration = 3 * time.Second

// Options configures a Model.
type Options struct {
	Catalog       *catalog.Catalog
	Clipboard     clipboard.Writer
	History       HistoryRecorder // optional
	Logger        *log.Logger     // optional
	Theme         string          // "dark" or "light"
	ToastDuration time.Duration
	Now           func() time.Time
}

// Model is the Bubble Tea model for the browser.
type Model struct {
	catalog  *catalog.Catalog
	clip     clipboard.Writer
	history  HistoryRecorder
	logger   *log.Logger
	now      func() time.Time
	toastFor time.Duration

	state     view.State
	selection selection.Set
	cursor    int
	searching bool

	toast       *toast
	toastSeq    int
	lastCommand string // shown inline when the clipboard write failed

	theme    Theme
	width    int
	height   int
	quitting bool
}

// New returns a Model in the initial state: category list, nothing selected.
func New(opts Options) Model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = defaultToastDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return Model{
		catalog:  opts.Catalog,
		clip:     opts.Clipboard,
		history:  opts.History,
		logger:   opts.Logger,
		now:      opts.Now,
		toastFor: opts.ToastDuration,
		theme:    ThemeByName(opts.Theme),
		width:    100,
		height:   32,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current navigation state.
func (m Model) State() view.State {
	return m.state
}

// Selection returns the current selection.
func (m Model) Selection() selection.Set {
	return m.selection
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case copiedMsg:
		if msg.Err != nil {
			m.lastCommand = msg.Command
			return m.showToast(clipboardToast(msg.Err))
		}
		m.lastCommand = ""
		return m.showToast(toast{
			Title: "Command copied!",
			Body:  fmt.Sprintf("%s has been copied to your clipboard.", msg.Command),
		})

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil

	case ThemeChangedMsg:
		m.theme = ThemeByName(msg.Theme)
		m.logger.Debug("theme changed", "theme", m.theme.Name)
		return m, nil
	}

	return m, nil
}

func (m Model) showToast(t toast) (Model, tea.Cmd) {
	m.toastSeq++
	m.toast = &t
	return m, expireToast(m.toastSeq, m.toastFor)
}

// apply runs a navigation event through view.Update and keeps the cursor
// inside the resulting list.
func (m Model) apply(e view.Event) Model {
	before := m.state
	m.state = view.Update(m.state, e)
	if m.state != before {
		m.cursor = 0
	}
	m.clampCursor()
	m.logger.Debug("view", "mode", m.state.Mode, "category", m.state.ActiveCategory, "search", m.state.Search)
	return m
}

func (m Model) visible() []catalog.Package {
	return view.Visible(m.catalog, m.state)
}

func (m Model) rowCount() int {
	if m.state.Mode == view.ModeCategories {
		return len(m.catalog.Categories())
	}
	return len(m.visible())
}

func (m *Model) clampCursor() {
	n := m.rowCount()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// copySingle copies the install command for one package.
func (m Model) copySingle(pkg catalog.Package) tea.Cmd {
	return copyCmd(m.clip, m.history, m.logger, m.now, winget.SingleCommand(pkg.ID), []string{pkg.ID})
}

// copySelected copies the combined command, or shows the empty-selection
// notice without touching any state but the toast.
func (m Model) copySelected() (Model, tea.Cmd) {
	ids := m.selection.IDs()
	command, err := winget.MultiCommand(ids)
	if errors.Is(err, winget.ErrNoSelection) {
		return m.showToast(toast{
			Title: "No programs selected",
			Body:  "Please select at least one program.",
			IsErr: true,
		})
	}
	if err != nil {
		return m.showToast(toast{Title: "Cannot build command", Body: err.Error(), IsErr: true})
	}
	return m, copyCmd(m.clip, m.history, m.logger, m.now, command, ids)
}
