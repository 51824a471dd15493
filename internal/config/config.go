package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds wingetpick settings.
type Config struct {
	UI        UIConfig        `mapstructure:"ui"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	History   HistoryConfig   `mapstructure:"history"`
	Log       LogConfig       `mapstructure:"log"`
}

// UIConfig holds presentation settings for the TUI.
type UIConfig struct {
	Theme        string `mapstructure:"theme"` // "dark" or "light"
	ToastSeconds int    `mapstructure:"toast_seconds"`
}

// ClipboardConfig selects how commands are copied.
type ClipboardConfig struct {
	Method string `mapstructure:"method"` // auto, system, osc52, none
}

// HistoryConfig controls the copied-command history database.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DataDir returns ~/.wingetpick, creating it if needed.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".wingetpick")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create wingetpick directory: %w", err)
	}
	return dir, nil
}

// File returns the config file path: explicit if non-empty, otherwise
// $WINGETPICK_CONFIG, otherwise config.toml under Dir().
func File(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv("WINGETPICK_CONFIG"); env != "" {
		return env, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads configuration from the config file (if it exists) and the
// environment. Env var overrides use the prefix WINGETPICK_, e.g.
// WINGETPICK_UI_THEME=light.
func Load(path string) (Config, error) {
	dataDir, err := DataDir()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.toast_seconds", 3)
	v.SetDefault("clipboard.method", "auto")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(dataDir, "history.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(dataDir, "wingetpick.log"))

	v.SetEnvPrefix("WINGETPICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file, err := File(path)
	if err != nil {
		return Config{}, err
	}
	if _, statErr := os.Stat(file); statErr == nil {
		v.SetConfigFile(file)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	} else if path != "" {
		return Config{}, fmt.Errorf("config file %s: %w", file, statErr)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be dark or light, got %q", c.UI.Theme)
	}
	if c.UI.ToastSeconds <= 0 {
		return fmt.Errorf("ui.toast_seconds must be positive, got %d", c.UI.ToastSeconds)
	}
	switch strings.ToLower(c.Clipboard.Method) {
	case "auto", "system", "osc52", "none":
	default:
		return fmt.Errorf("clipboard.method must be auto, system, osc52 or none, got %q", c.Clipboard.Method)
	}
	return nil
}

// ReadTheme returns ui.theme from the config file at path, or "" if the
// file is missing or does not set it. Used to pick up live theme edits.
func ReadTheme(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("read config %s: %w", path, err)
	}
	return v.GetString("ui.theme"), nil
}
