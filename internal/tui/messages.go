package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/blackwell-systems/wingetpick/internal/clipboard"
)

// HistoryRecorder stores copied commands. *store.Store satisfies it.
type HistoryRecorder interface {
	RecordCommand(command string, packageIDs []string, at time.Time) (int64, error)
}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	Command string
	Err     error
}

// toastExpiredMsg clears the toast with the matching sequence number.
type toastExpiredMsg struct {
	seq int
}

// ThemeChangedMsg switches the active theme, e.g. after the config file
// was edited.
type ThemeChangedMsg struct {
	Theme string
}

// copyCmd writes command to the clipboard off the update loop and records
// it in history on success. History failures are logged, not shown.
func copyCmd(w clipboard.Writer, history HistoryRecorder, logger *log.Logger, now func() time.Time, command string, ids []string) tea.Cmd {
	return func() tea.Msg {
		if err := w.Write(command); err != nil {
			logger.Warn("clipboard write failed", "err", err)
			return copiedMsg{Command: command, Err: err}
		}
		logger.Debug("copied command", "packages", len(ids))

		if history != nil {
			if _, err := history.RecordCommand(command, ids, now()); err != nil {
				logger.Error("record history", "err", err)
			}
		}
		return copiedMsg{Command: command}
	}
}

func expireToast(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// toast is a transient notice shown under the list.
type toast struct {
	Title string
	Body  string
	IsErr bool
}

func clipboardToast(err error) toast {
	if errors.Is(err, clipboard.ErrUnavailable) {
		return toast{Title: "Clipboard unavailable", Body: "Copy the command shown below manually.", IsErr: true}
	}
	return toast{Title: "Copy failed", Body: err.Error(), IsErr: true}
}
