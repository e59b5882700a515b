// Package main provides the entry point for the millisecond CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sgaunet/bullets"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sgaunet/millisecond/internal/logger"
	"github.com/sgaunet/millisecond/internal/output"
	"github.com/sgaunet/millisecond/internal/timeutil"
	"github.com/sgaunet/millisecond/internal/ui"
	"github.com/sgaunet/millisecond/internal/units"
	"github.com/sgaunet/millisecond/pkg/config"
	"github.com/sgaunet/millisecond/pkg/duration"
)

var errMissingValue = errors.New("a value is required unless --interactive is set")

// flagValues holds the raw command-line flags.
type flagValues struct {
	logLevel    string
	configPath  string
	unit        string
	style       string
	output      string
	noMerge     bool
	components  bool
	interactive bool
}

// settings is the configuration after command-line flags have been applied.
type settings struct {
	unit  units.Unit
	opts  output.Options
	value string
}

func newRootCmd() *cobra.Command {
	var f flagValues

	cmd := &cobra.Command{
		Use:   "millisecond [value]",
		Short: "Convert a duration into years, days, hours, minutes and seconds",
		Long: `millisecond breaks a duration given in a single unit down into
years, days, hours, minutes, seconds, milliseconds, microseconds and nanoseconds
and prints it as "1y 17d 5h 10m 48s" or "1 year 17 days 5 hours 10 minutes 48 seconds".

A year is always 365 days.`,
		Example: `  millisecond 33023448000
  millisecond --unit ns --style long 1800
  millisecond -u d 366 -o yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMillisecond(cmd, &f, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&f.logLevel, "log-level", "l", "info",
		"Set log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&f.configPath, "config", "",
		"Config file (default ~/.config/millisecond/config.yml)")
	cmd.Flags().StringVarP(&f.unit, "unit", "u", "",
		"Input unit: ns, us, ms, s, m, h, d, y (default from config, else ms)")
	cmd.Flags().StringVarP(&f.style, "style", "s", "",
		"Output style: short or long (default from config, else short)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "",
		"Output format: text or yaml (default from config, else text)")
	cmd.Flags().BoolVar(&f.noMerge, "no-merge", false,
		"Print seconds and milliseconds as separate components")
	cmd.Flags().BoolVarP(&f.components, "components", "c", false,
		"Print one component per line")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false,
		"Prompt for the value, unit and style")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runMillisecond(cmd *cobra.Command, f *flagValues, args []string) error {
	start := time.Now()
	log := logger.NewLoggerTo(cmd.ErrOrStderr(), f.logLevel)

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log.Debug(fmt.Sprintf("Configuration loaded: unit=%s style=%s merge=%t output=%s",
		cfg.Unit, cfg.Style, cfg.MergeEnabled(), cfg.Output))

	s, err := resolveSettings(cmd.Flags(), f, cfg, args)
	if err != nil {
		return err
	}

	if f.interactive {
		if err := promptSettings(log, cmd.Flags(), &s); err != nil {
			return err
		}
	}

	if s.value == "" {
		return errMissingValue
	}

	d, err := units.Decompose(s.unit, s.value)
	if err != nil {
		return fmt.Errorf("failed to convert %q %s: %w", s.value, s.unit, err)
	}
	log.Debug(fmt.Sprintf("Decomposed %s %s into %d components", s.value, s.unit, len(d.Components(false))))

	if err := output.Write(cmd.OutOrStdout(), d, s.opts); err != nil {
		return err
	}

	log.Debug("Rendered in " + timeutil.Since(start))
	return nil
}

// resolveSettings merges configuration and flags; an explicitly set flag wins.
func resolveSettings(flags *pflag.FlagSet, f *flagValues, cfg *config.Config, args []string) (settings, error) {
	s := settings{opts: output.Options{Merge: cfg.MergeEnabled(), Components: f.components}}

	name := cfg.Unit
	if flags.Changed("unit") {
		name = f.unit
	}
	unit, err := units.Parse(name)
	if err != nil {
		return s, fmt.Errorf("invalid --unit: %w", err)
	}
	s.unit = unit

	name = cfg.Style
	if flags.Changed("style") {
		name = f.style
	}
	style, err := duration.ParseStyle(name)
	if err != nil {
		return s, fmt.Errorf("invalid --style: %w", err)
	}
	s.opts.Style = style

	name = cfg.Output
	if flags.Changed("output") {
		name = f.output
	}
	format, err := output.ParseFormat(name)
	if err != nil {
		return s, fmt.Errorf("invalid --output: %w", err)
	}
	s.opts.Format = format

	if flags.Changed("no-merge") {
		s.opts.Merge = !f.noMerge
	}

	if len(args) == 1 {
		s.value = args[0]
	}

	return s, nil
}

// promptSettings asks for the unit and style unless given as flags, and for
// the value when no argument was passed.
func promptSettings(log *bullets.Logger, flags *pflag.FlagSet, s *settings) error {
	prompter := ui.NewPrompter()

	if !flags.Changed("unit") {
		unit, err := prompter.SelectUnit(s.unit)
		if err != nil {
			return err
		}
		s.unit = unit
	}

	if !flags.Changed("style") {
		style, err := prompter.SelectStyle(s.opts.Style)
		if err != nil {
			return err
		}
		s.opts.Style = style
	}

	if s.value == "" {
		value, err := prompter.AskValue(s.unit)
		if err != nil {
			return err
		}
		s.value = value
	}

	log.Debug(fmt.Sprintf("Interactive selection: unit=%s style=%s", s.unit, s.opts.Style))
	return nil
}
