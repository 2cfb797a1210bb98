// Package cli provides flag binding and validation for the reltime CLI.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/reltime/internal/config"
	"github.com/CodexForgeBR/reltime/internal/instant"
)

// BindFlags registers the persistent flags shared by every subcommand.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to check flag values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.PersistentFlags()

	// Reference instant & zone
	flags.StringVarP(&cfg.RelativeTo, "relative-to", "r", "", "Reference instant (RFC 3339, default now)")
	flags.StringVar(&cfg.Offset, "offset", "", "Fixed UTC offset for resolution (±HH:MM or Z, default: zone of the reference)")

	// Language
	flags.StringSliceVarP(&cfg.Locales, "locale", "l", nil, "Locales to match keywords in, in priority order")

	// Output
	flags.StringVar(&cfg.Format, "format", config.FormatRFC3339, "Output format: "+strings.Join(config.Formats, ", "))
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Show resolution details on stderr")

	// Same-day policy
	flags.BoolVar(&cfg.SkipSameWeekday, "skip-same-weekday", false, "A weekday named on that weekday means next week")
	flags.BoolVar(&cfg.SkipCurrentMonth, "skip-current-month", false, "A month named in that month means next year")
	flags.BoolVar(&cfg.SkipSameDate, "skip-same-date", false, "A year-less date named on that date means next year")

	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")
}

// BuildCLIOverrides creates a map of CLI flag overrides from the config.
// Uses Changed() to only include flags explicitly set by the user,
// ensuring config file values are not overridden by flag defaults.
func BuildCLIOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)
	flags := cmd.Flags()

	stringFlags := map[string]struct {
		key string
		val string
	}{
		"offset": {"OFFSET", cfg.Offset},
		"format": {"FORMAT", cfg.Format},
		"locale": {"LOCALES", strings.Join(cfg.Locales, ",")},
	}
	for flag, mapping := range stringFlags {
		if flags.Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	boolFlags := map[string]struct {
		key string
		val bool
	}{
		"verbose":            {"VERBOSE", cfg.Verbose},
		"skip-same-weekday":  {"SKIP_SAME_WEEKDAY", cfg.SkipSameWeekday},
		"skip-current-month": {"SKIP_CURRENT_MONTH", cfg.SkipCurrentMonth},
		"skip-same-date":     {"SKIP_SAME_DATE", cfg.SkipSameDate},
	}
	for flag, mapping := range boolFlags {
		if flags.Changed(flag) {
			overrides[mapping.key] = strconv.FormatBool(mapping.val)
		}
	}

	return overrides
}

// ValidateFlags checks flag values after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	if cfg.RelativeTo != "" {
		if _, err := instant.Parse(cfg.RelativeTo); err != nil {
			return fmt.Errorf("--relative-to: %w", err)
		}
	}

	if cmd.Flags().Changed("offset") {
		if _, err := instant.ParseOffset(cfg.Offset); err != nil {
			return fmt.Errorf("--offset: %w", err)
		}
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = strings.ToLower(cfg.Format)
	}

	return cfg.Validate()
}
