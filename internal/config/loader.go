package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// whitelistSet is a precomputed lookup table for fast whitelist membership checks.
var whitelistSet map[string]bool

func init() {
	whitelistSet = make(map[string]bool, len(WhitelistedVars))
	for _, v := range WhitelistedVars {
		whitelistSet[v] = true
	}
}

// ProjectFile is the per-directory config file name.
const ProjectFile = ".reltime"

// GlobalPath returns $XDG_CONFIG_HOME/reltime/config, falling back to
// ~/.config/reltime/config. It returns "" when neither can be determined.
func GlobalPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "reltime", "config")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "reltime", "config")
}

// LoadFile parses a KEY=VALUE config file at the given path.
//
// Lines are processed according to these rules:
//   - Empty lines and lines starting with # are skipped.
//   - Lines without an = sign are skipped.
//   - Leading and trailing whitespace is trimmed from both key and value.
//   - Matching single or double quotes around the value are removed.
//   - Keys not present in WhitelistedVars are silently ignored.
func LoadFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	result := make(map[string]string)
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !whitelistSet[key] {
			continue
		}
		result[key] = unquote(strings.TrimSpace(value))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return result, nil
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// LoadWithPrecedence assembles a Config by merging sources in order of
// increasing priority:
//
//  1. Built-in defaults
//  2. Global config file (globalPath)
//  3. Project config file (projectPath)
//  4. Explicit config file (explicitPath)
//  5. CLI overrides (cliOverrides map)
//
// Any path that is empty is skipped. Missing global and project files are
// not errors; an explicit file must exist.
func LoadWithPrecedence(globalPath, projectPath, explicitPath string, cliOverrides map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	if err := applyOptional(cfg, globalPath, "global config"); err != nil {
		return nil, err
	}
	if err := applyOptional(cfg, projectPath, "project config"); err != nil {
		return nil, err
	}

	if explicitPath != "" {
		m, err := LoadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("explicit config: %w", err)
		}
		ApplyMapToConfig(cfg, m)
		cfg.ConfigFile = explicitPath
	}

	if len(cliOverrides) > 0 {
		ApplyMapToConfig(cfg, cliOverrides)
	}

	return cfg, nil
}

func applyOptional(cfg *Config, path, label string) error {
	if path == "" {
		return nil
	}
	m, err := LoadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%s: %w", label, err)
	}
	ApplyMapToConfig(cfg, m)
	return nil
}

// ApplyMapToConfig sets fields on cfg from the key-value pairs in m.
// Keys must use the WhitelistedVars naming convention (e.g., "OFFSET").
// Unknown keys are silently ignored. Empty values leave the field unchanged.
func ApplyMapToConfig(cfg *Config, m map[string]string) {
	for key, value := range m {
		if value == "" {
			continue
		}
		switch key {
		case "LOCALES":
			cfg.Locales = SplitList(value)
		case "OFFSET":
			cfg.Offset = value
		case "FORMAT":
			cfg.Format = strings.ToLower(value)
		case "VERBOSE":
			cfg.Verbose = parseBool(value)
		case "SKIP_SAME_WEEKDAY":
			cfg.SkipSameWeekday = parseBool(value)
		case "SKIP_CURRENT_MONTH":
			cfg.SkipCurrentMonth = parseBool(value)
		case "SKIP_SAME_DATE":
			cfg.SkipSameDate = parseBool(value)
		}
	}
}

// parseBool interprets common boolean representations.
// "true", "1", "yes" (case-insensitive) return true; everything else returns false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
