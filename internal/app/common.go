package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/blackwell-systems/wingetpick/internal/catalog"
	"github.com/blackwell-systems/wingetpick/internal/clipboard"
	"github.com/blackwell-systems/wingetpick/internal/config"
	"github.com/blackwell-systems/wingetpick/internal/selection"
	"github.com/blackwell-systems/wingetpick/internal/store"
)

// newClipboard is swapped out in tests.
var newClipboard = clipboard.New

// loadConfig reads the config file and environment, then applies the
// global flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if dbPath != "" {
		cfg.History.Path = dbPath
	}
	if noHistory {
		cfg.History.Enabled = false
	}
	if debug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newLogger returns a logger writing to the configured log file, or to
// stderr if the file cannot be opened. Call cleanup when done.
func newLogger(cfg config.Config) (logger *log.Logger, cleanup func()) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}

	var w io.Writer = os.Stderr
	cleanup = func() {}
	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err == nil {
			if f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
				w = f
				cleanup = func() { f.Close() }
			}
		}
	}
	if w == os.Stderr && level < log.WarnLevel {
		level = log.WarnLevel
	}

	logger = log.NewWithOptions(w, log.Options{
		Prefix:          "wingetpick",
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, cleanup
}

// openHistory opens the history database, or returns nil if history is
// disabled.
func openHistory(cfg config.Config) (*store.Store, error) {
	if !cfg.History.Enabled {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	st, err := store.Open(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	return st, nil
}

// resolveIDs maps command-line names to catalog identifiers. Each name may
// be an alias or an identifier; repeats are dropped, keeping first order.
func resolveIDs(cat *catalog.Catalog, aliases *config.AliasConfig, names []string) ([]string, error) {
	var sel selection.Set
	for _, name := range names {
		pkg, err := cat.Resolve(aliases.Resolve(name))
		if err != nil {
			return nil, err
		}
		if !sel.IsSelected(pkg.ID) {
			sel = sel.Toggle(pkg.ID)
		}
	}
	return sel.IDs(), nil
}

// loadAliases reads the alias file from the config directory. A missing
// directory or file is not an error.
func loadAliases() (*config.AliasConfig, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return config.LoadAliases(dir)
}

// checkCategory returns an error listing the valid categories if category
// is not one of them.
func checkCategory(cat *catalog.Catalog, category string) error {
	if category == "" {
		return nil
	}
	for _, c := range cat.Categories() {
		if c == category {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q (available: %s)", category, strings.Join(cat.Categories(), ", "))
}
