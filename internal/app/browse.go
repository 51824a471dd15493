package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/wingetpick/internal/catalog"
	"github.com/blackwell-systems/wingetpick/internal/config"
	"github.com/blackwell-systems/wingetpick/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive program browser",
	Long: `Open the interactive browser. Pick a category, select programs with
space, and press y to copy one winget command for all of them.

Keys:
  enter      open category / copy command for the highlighted program
  space      select or unselect the highlighted program
  y          copy the command for all selected programs
  /          search by name
  tab        switch between categories and programs
  esc        leave search / back to categories
  x          clear the selection
  t          switch dark and light theme
  q          quit

Edits to ui.theme in the config file are applied while the browser is open.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	RootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, cleanup := newLogger(cfg)
	defer cleanup()

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	clip, err := newClipboard(cfg.Clipboard.Method)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Catalog:       cat,
		Clipboard:     clip,
		Logger:        logger,
		Theme:         cfg.UI.Theme,
		ToastDuration: time.Duration(cfg.UI.ToastSeconds) * time.Second,
	}

	st, err := openHistory(cfg)
	if err != nil {
		// History is optional; the browser still works without it.
		logger.Warn("history disabled", "err", err)
	} else if st != nil {
		defer st.Close()
		opts.History = st
	}

	cfgFile, err := config.File(configPath)
	if err != nil {
		logger.Warn("config watch disabled", "err", err)
		cfgFile = ""
	}

	logger.Debug("starting browser", "theme", cfg.UI.Theme, "clipboard", cfg.Clipboard.Method, "history", cfg.History.Enabled)
	if err := tui.Run(cmd.Context(), opts, cfgFile); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
