package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/wingetpick/internal/config"
)

// Run starts the browser on the terminal and blocks until the user quits.
// If configPath is non-empty, edits to that file's ui.theme are applied
// while the browser is open.
func Run(ctx context.Context, opts Options, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if configPath != "" {
		w, err := config.NewFileWatcher(configPath, 0)
		if err != nil {
			m.logger.Warn("config watch disabled", "err", err)
		} else {
			go func() {
				err := w.Run(ctx, func() {
					theme, err := config.ReadTheme(configPath)
					if err != nil {
						m.logger.Warn("reload theme", "err", err)
						return
					}
					if theme != "" {
						p.Send(ThemeChangedMsg{Theme: theme})
					}
				})
				if err != nil {
					m.logger.Warn("config watcher stopped", "err", err)
				}
			}()
		}
	}

	m.logger.Info("browser started", "packages", opts.Catalog.Len())
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
