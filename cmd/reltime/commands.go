package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/reltime/internal/banner"
	"github.com/CodexForgeBR/reltime/internal/calendar"
	"github.com/CodexForgeBR/reltime/internal/codec"
	"github.com/CodexForgeBR/reltime/internal/config"
	"github.com/CodexForgeBR/reltime/internal/expr"
	"github.com/CodexForgeBR/reltime/internal/instant"
	"github.com/CodexForgeBR/reltime/internal/logging"
	"github.com/CodexForgeBR/reltime/internal/schedule"
	"github.com/CodexForgeBR/reltime/internal/schema"
	sighandler "github.com/CodexForgeBR/reltime/internal/signal"
)

func (a *app) boundCommand(use, short string, b bound) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <expression>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, rng, err := a.resolve(args)
			if err != nil {
				return err
			}
			return writeBound(a.stdout, e, rng, b, a.cfg.Format)
		},
	}
}

func (a *app) nextCommand() *cobra.Command {
	var count int
	var via string

	cmd := &cobra.Command{
		Use:   "next <expression>",
		Short: "Upcoming occurrences of a recurring expression",
		Long:  "Lists the next occurrences of an expression. The first is its resolution; the rest follow its recurrence. Non-recurring expressions have one.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("-n must be at least 1, got %d", count)
			}
			e, rng, err := a.resolve(args)
			if err != nil {
				return err
			}

			var ranges []expr.Range
			switch via {
			case "rrule":
				ranges, err = schedule.Occurrences(a.resolver, e, a.ref, count)
			case "cron":
				ranges, err = fireRanges(schedule.NextAfter, e, rng, count)
			case "quartz":
				ranges, err = fireRanges(schedule.NextFire, e, rng, count)
			default:
				return fmt.Errorf("--via must be rrule, cron or quartz, got: %s", via)
			}
			if err != nil {
				return err
			}

			if logging.Verbose() {
				banner.PrintOccurrences(a.stderr, e.String(), ranges)
			}
			return writeOccurrences(a.stdout, e, ranges, a.cfg.Format)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of occurrences")
	cmd.Flags().StringVar(&via, "via", "rrule", "Recurrence engine: rrule, cron or quartz")
	return cmd
}

// fireRanges lists fire times from a cron-style engine starting at the
// resolved minimum. Each range ends where its own occurrence does.
func fireRanges(next schedule.NextFunc, e expr.Expression, first expr.Range, n int) ([]expr.Range, error) {
	times, err := schedule.FireTimes(next, e, first.Min, n)
	if err != nil {
		return nil, err
	}
	out := make([]expr.Range, len(times))
	for i, t := range times {
		out[i] = expr.Range{Min: t, Max: schedule.SpanEnd(e, t)}
	}
	return out, nil
}

func writeOccurrences(w io.Writer, e expr.Expression, ranges []expr.Range, format string) error {
	if format == config.FormatJSON {
		results := make([]result, len(ranges))
		for i, r := range ranges {
			results[i] = newResult(e, r, boundRange)
		}
		return writeJSON(w, results)
	}
	for _, r := range ranges {
		if _, err := fmt.Fprintln(w, formatRange(r, format)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) cronCommand() *cobra.Command {
	var quartz bool

	cmd := &cobra.Command{
		Use:   "cron <expression>",
		Short: "Cron spec for a recurring expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, e, _, err := a.parse(args)
			if err != nil {
				return err
			}
			project := schedule.CronSpec
			if quartz {
				project = schedule.QuartzSpec
			}
			spec, err := project(e)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, spec)
			return err
		},
	}
	cmd.Flags().BoolVar(&quartz, "quartz", false, "Emit a seven-field Quartz spec with seconds and year")
	return cmd
}

func (a *app) icsCommand() *cobra.Command {
	var opts calendar.Options

	cmd := &cobra.Command{
		Use:   "ics <expression>",
		Short: "iCalendar event for the expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, rng, err := a.resolve(args)
			if err != nil {
				return err
			}
			opts.Now = a.now()
			out, err := calendar.Export(e, rng, opts)
			if err != nil {
				return err
			}
			_, err = io.WriteString(a.stdout, out)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.Summary, "summary", "", "Event title (default: the expression)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Event description")
	cmd.Flags().StringVar(&opts.UID, "uid", "", "Event UID (default: derived from the start)")
	return cmd
}

func (a *app) describeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <instant>",
		Short: "Most natural expression ending at an instant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := instant.Parse(args[0])
			if err != nil {
				return err
			}
			e := expr.Describe(at, a.ref)
			text := expr.Localize(e, a.locales.Primary())

			if logging.Verbose() {
				banner.PrintDescription(a.stderr, at, e)
			}
			if a.cfg.Format == config.FormatJSON {
				return writeJSON(a.stdout, struct {
					Instant    time.Time `json:"instant"`
					Expression string    `json:"expression"`
					Kind       string    `json:"kind"`
				}{at, text, expr.KindOf(e)})
			}
			_, err = fmt.Fprintln(a.stdout, text)
			return err
		},
	}
}

func (a *app) fileCommand() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Resolve every entry of a YAML or JSON document",
		Long:  "Reads a mapping of names to expressions (\"-\" reads stdin) and resolves each entry in document order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			c := codec.Codec{Locales: a.locales}
			doc, err := c.DecodeDocument(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			logging.Debug(fmt.Sprintf("%d entries in %s", len(doc), args[0]))

			if normalize {
				out, err := c.EncodeDocument(doc)
				if err != nil {
					return err
				}
				_, err = a.stdout.Write(out)
				return err
			}
			return a.writeDocument(doc)
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Rewrite the document with canonical English expressions instead of resolving it")
	return cmd
}

func (a *app) writeDocument(doc codec.Document) error {
	if a.cfg.Format == config.FormatJSON {
		results := make([]result, len(doc))
		for i, entry := range doc {
			results[i] = newResult(entry.Expression, a.resolver.Resolve(entry.Expression, a.ref), boundRange)
			results[i].Name = entry.Name
		}
		return writeJSON(a.stdout, results)
	}
	for _, entry := range doc {
		rng := a.resolver.Resolve(entry.Expression, a.ref)
		if _, err := fmt.Fprintf(a.stdout, "%s\t%s\n", entry.Name, formatRange(rng, a.cfg.Format)); err != nil {
			return err
		}
	}
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func (a *app) waitCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "wait <expression>",
		Short: "Block until the expression's minimum is reached",
		Long:  "Resolves the expression and sleeps until its minimum, printing a countdown on stderr. SIGINT or SIGTERM ends the wait with exit code 130.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, rng, err := a.resolve(args)
			if err != nil {
				return err
			}
			target := rng.Min

			ctx, stop := sighandler.WithInterrupt(cmd.Context(), func(sig os.Signal) {
				logging.Warn("Received " + sig.String())
			})
			defer stop()

			w := schedule.Waiter{Label: e.String()}
			if !quiet {
				w.Progress = a.stderr
			}
			if err := w.Wait(ctx, target); err != nil {
				if isInterrupt(err) {
					banner.PrintInterruptedBanner(a.stderr, target, time.Until(target))
				}
				return fmt.Errorf("wait for %s: %w", e, err)
			}

			banner.PrintReachedBanner(a.stderr, e.String(), target)
			return writeBound(a.stdout, e, rng, boundMin, a.cfg.Format)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the countdown")
	return cmd
}

func (a *app) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "JSON Schema of the expression format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := schema.JSON(a.locales)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, string(out))
			return err
		},
	}
}
