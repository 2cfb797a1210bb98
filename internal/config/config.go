// Package config defines the reltime configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/CodexForgeBR/reltime/internal/expr"
	"github.com/CodexForgeBR/reltime/internal/instant"
	"github.com/CodexForgeBR/reltime/internal/locale"
)

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [7]string{
	"LOCALES",
	"OFFSET",
	"FORMAT",
	"VERBOSE",
	"SKIP_SAME_WEEKDAY",
	"SKIP_CURRENT_MONTH",
	"SKIP_SAME_DATE",
}

// Output formats for resolved instants.
const (
	FormatRFC3339 = "rfc3339"
	FormatJSON    = "json"
	FormatUnix    = "unix"
)

// Formats lists the accepted FORMAT values.
var Formats = []string{FormatRFC3339, FormatJSON, FormatUnix}

// Config holds every configuration field for the reltime CLI.
type Config struct {
	// Locales in priority order, as tags or language names. Empty selects
	// every compiled-in locale.
	Locales []string

	// Offset is a fixed UTC offset ("+02:00", "Z"). Empty keeps the
	// reference instant's own zone, which is local when it is now.
	Offset string

	// Format is one of Formats.
	Format string

	// Runtime flags.
	Verbose bool

	// Same-day resolution policy.
	SkipSameWeekday  bool
	SkipCurrentMonth bool
	SkipSameDate     bool

	// CLI-only flags (not loaded from config files).
	ConfigFile string
	RelativeTo string
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		Format: FormatRFC3339,
	}
}

// Policy returns the resolution policy selected by the skip flags.
func (c *Config) Policy() expr.Policy {
	return expr.Policy{
		SkipSameWeekday:  c.SkipSameWeekday,
		SkipCurrentMonth: c.SkipCurrentMonth,
		SkipSameDate:     c.SkipSameDate,
	}
}

// LocaleSet resolves Locales into tables.
func (c *Config) LocaleSet() (locale.Set, error) {
	return locale.Select(c.Locales)
}

// Location resolves Offset into a location.
func (c *Config) Location() (*time.Location, error) {
	return instant.ParseOffset(c.Offset)
}

// Validate reports the first field that cannot be used.
func (c *Config) Validate() error {
	if !validFormat(c.Format) {
		return fmt.Errorf("invalid format %q (use %s)", c.Format, strings.Join(Formats, ", "))
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.LocaleSet(); err != nil {
		return err
	}
	return nil
}

func validFormat(f string) bool {
	for _, v := range Formats {
		if f == v {
			return true
		}
	}
	return false
}

// SplitList splits a comma-separated value, dropping blank items.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
