package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/reltime/internal/banner"
	"github.com/CodexForgeBR/reltime/internal/cli"
	"github.com/CodexForgeBR/reltime/internal/config"
	"github.com/CodexForgeBR/reltime/internal/exitcode"
	"github.com/CodexForgeBR/reltime/internal/expr"
	"github.com/CodexForgeBR/reltime/internal/instant"
	"github.com/CodexForgeBR/reltime/internal/locale"
	"github.com/CodexForgeBR/reltime/internal/logging"
	"github.com/CodexForgeBR/reltime/internal/parser"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	prev := logging.SetOutput(stderr)
	defer logging.SetOutput(prev)

	a := &app{
		cfg:    config.NewDefaultConfig(),
		stdout: stdout,
		stderr: stderr,
		now:    time.Now,
	}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	code := exitcode.FromError(err)
	if err != nil && code != exitcode.Interrupted {
		logging.Error(err.Error())
	}
	if code != exitcode.Success {
		logging.Debug(fmt.Sprintf("exit %d (%s)", code, exitcode.Name(code)))
	}
	return code
}

// app carries the merged configuration and the state every command
// resolves against.
type app struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	locales  locale.Set
	ref      time.Time
	resolver expr.Resolver
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "reltime",
		Short:             "Resolve natural time expressions to concrete instants",
		Long:              "reltime turns expressions such as \"tomorrow\", \"monday\" or \"25/12 17:00\" into the earliest and latest instants they denote.",
		Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	cli.BindFlags(root, a.cfg)
	cli.SetCustomHelp(root)

	root.AddCommand(
		a.boundCommand("min", "Earliest instant the expression denotes", boundMin),
		a.boundCommand("max", "Latest instant the expression denotes", boundMax),
		a.boundCommand("range", "Both bounds of the expression", boundRange),
		a.nextCommand(),
		a.cronCommand(),
		a.icsCommand(),
		a.describeCommand(),
		a.fileCommand(),
		a.waitCommand(),
		a.schemaCommand(),
	)
	return root
}

// setup merges config files under the parsed flags and fixes the
// reference instant for the run.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := cli.ValidateFlags(cmd, a.cfg); err != nil {
		return err
	}

	cliOverrides := cli.BuildCLIOverrides(cmd, a.cfg)
	finalCfg, err := config.LoadWithPrecedence(config.GlobalPath(), config.ProjectFile, a.cfg.ConfigFile, cliOverrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := finalCfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Merge CLI-only flags (not in config files)
	finalCfg.ConfigFile = a.cfg.ConfigFile
	finalCfg.RelativeTo = a.cfg.RelativeTo
	a.cfg = finalCfg

	logging.SetVerbose(a.cfg.Verbose)

	a.locales, err = a.cfg.LocaleSet()
	if err != nil {
		return err
	}
	// Without --offset the reference keeps its own zone.
	var loc *time.Location
	if a.cfg.Offset != "" {
		if loc, err = a.cfg.Location(); err != nil {
			return err
		}
	}
	a.ref, err = instant.Reference(a.cfg.RelativeTo, loc, a.now)
	if err != nil {
		return fmt.Errorf("--relative-to: %w", err)
	}
	a.resolver = expr.Resolver{Policy: a.cfg.Policy()}

	logging.Debug(fmt.Sprintf("reference %s, locales %s, policy %+v",
		a.ref.Format(time.RFC3339Nano), strings.Join(a.locales.Names(), ", "), a.resolver.Policy))
	return nil
}

// parse reads an expression from command arguments joined by spaces.
func (a *app) parse(args []string) (string, expr.Expression, *locale.Table, error) {
	text := strings.Join(args, " ")
	e, table, err := parser.ParseLocalized(text, a.locales)
	if err != nil {
		return text, nil, nil, err
	}
	return text, e, table, nil
}

// resolve parses args and resolves them, showing the resolution under
// --verbose.
func (a *app) resolve(args []string) (expr.Expression, expr.Range, error) {
	text, e, table, err := a.parse(args)
	if err != nil {
		return nil, expr.Range{}, err
	}
	rng := a.resolver.Resolve(e, a.ref)

	if logging.Verbose() {
		r := banner.Resolution{
			Input:      text,
			Expression: e,
			Reference:  a.ref,
			Range:      rng,
		}
		if table != nil {
			r.Locale = table.Name()
		}
		banner.PrintResolution(a.stderr, r)
	}
	return e, rng, nil
}

func isInterrupt(err error) bool {
	return errors.Is(err, context.Canceled)
}
