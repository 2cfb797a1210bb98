// Package cli provides help text and usage formatting for the reltime CLI.
package cli

import (
	"github.com/spf13/cobra"
)

// Subcommands inherit the template, so they fall back to cobra's usage.
const helpTemplate = `{{if .HasParent}}{{with (or .Long .Short)}}{{.}}

{{end}}{{.UsageString}}{{else}}reltime - Resolve natural time expressions to concrete instants

USAGE
  reltime <command> <expression> [flags]

COMMANDS
  min <expr>                           Earliest instant the expression denotes
  max <expr>                           Latest instant the expression denotes
  range <expr>                         Both bounds
  next <expr> [-n N]                   Upcoming occurrences of a recurring expression
  cron <expr> [--quartz]               Cron spec for a recurring expression
  ics <expr> [--summary <text>]        iCalendar event for the expression
  describe <instant>                   Most natural expression ending at an instant
  file <path>                          Resolve every entry of a YAML or JSON document
  wait <expr>                          Block until the expression's minimum is reached
  schema                               JSON Schema of the expression format

EXPRESSIONS
  Keywords:  today, tomorrow, now, this week, next week, this month
  Weekdays:  monday ... sunday            Months:  january ... december
  Time:      HH:MM or HH:MM:SS            Date:    D/M or D/M/YYYY
  Both:      D/M[/YYYY] HH:MM[:SS]        Instant: RFC 3339 (2025-07-29T10:30:05Z)
  Keywords match case-insensitively in every selected locale.

FLAGS
  Reference:
    -r, --relative-to <instant>          Reference instant (default: now)
    --offset <±HH:MM|Z>                  Fixed UTC offset (default: zone of the reference)

  Language:
    -l, --locale <tag,...>               Locales in priority order (default: all compiled in)

  Output:
    --format <rfc3339|json|unix>         Output format (default: rfc3339)
    -v, --verbose                        Show resolution details on stderr

  Same-day Policy:
    --skip-same-weekday                  "monday" on a Monday means next Monday
    --skip-current-month                 "july" in July means next July
    --skip-same-date                     "29/7" on 29 July means next year

  Configuration:
    --config <path>                      Path to additional config file

  Help & Version:
    -h, --help                           Show this help text
    --version                            Show version, commit, build date

CONFIG FILES
  $XDG_CONFIG_HOME/reltime/config, then ./.reltime, then --config.
  KEY=VALUE lines: LOCALES, OFFSET, FORMAT, VERBOSE,
  SKIP_SAME_WEEKDAY, SKIP_CURRENT_MONTH, SKIP_SAME_DATE.

EXIT CODES
  0   Success              Expression resolved and printed
  1   Error                Invalid arguments, file not found, misconfiguration
  2   Unrecognized         Text matched no numeric form or keyword
  3   InvalidDate          Well-formed date that does not exist
  4   InvalidTime          Hour, minute or second out of range
  130 Interrupted          SIGINT or SIGTERM received during wait

EXAMPLES
  # Start and end of next week
  reltime range next week

  # Next Monday in Swedish, relative to a fixed instant
  reltime min -l sv -r 2025-07-30T10:30:05Z måndag

  # Unix seconds for a time of day
  reltime max --format unix 17:30

  # Crontab line for every Friday
  reltime cron friday

For more information, see: https://github.com/CodexForgeBR/reltime
{{end}}`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
