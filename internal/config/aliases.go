// Package config loads wingetpick settings, user aliases, and watches the
// config file for changes.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the wingetpick config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/wingetpick if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "wingetpick"), nil
}

// AliasConfig maps short names typed on the command line to winget package
// identifiers, e.g. "code" -> "Microsoft.VisualStudioCode". Keys are stored
// lower-cased; identifiers are kept exactly as written.
type AliasConfig struct {
	Aliases map[string]string
}

// Resolve returns the package identifier for name if it is an alias, and
// name itself otherwise.
func (a *AliasConfig) Resolve(name string) string {
	if a == nil {
		return name
	}
	if id, ok := a.Aliases[strings.ToLower(name)]; ok {
		return id
	}
	return name
}

// LoadAliases reads {dir}/aliases, one "alias = package.Id" per line.
// A missing file yields an empty config. Blank lines, "#" comments and
// malformed lines are skipped.
func LoadAliases(dir string) (*AliasConfig, error) {
	cfg := &AliasConfig{
		Aliases: make(map[string]string),
	}

	f, err := os.Open(filepath.Join(dir, "aliases"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		alias := strings.TrimSpace(line[:idx])
		id := strings.TrimSpace(line[idx+1:])
		if alias == "" || id == "" || strings.ContainsAny(id, " \t") {
			continue
		}

		cfg.Aliases[strings.ToLower(alias)] = id
	}

	if err := scanner.Err(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
