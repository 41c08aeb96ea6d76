package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/randomizedcoder/adt-complexity-bench/internal/complexity"
	"github.com/randomizedcoder/adt-complexity-bench/internal/config"
	"github.com/randomizedcoder/adt-complexity-bench/internal/report"
)

// app is the state shared by every subcommand, filled in by the root
// command's PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	cfg     config.Config
	logger  *slog.Logger
	catalog *complexity.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{catalog: complexity.Default()}

	root := &cobra.Command{
		Use:   "adtbench",
		Short: "Stack, Queue and Linked List complexity explorer and benchmark",
		Long: `adtbench compares the theoretical complexity of Stack, Queue and
Linked List operations with measured timings across input sizes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable styled output")

	root.AddCommand(
		newDemoCmd(a),
		newCatalogCmd(a),
		newBenchCmd(a),
		newExportCmd(a),
		newMenuCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.noColor {
		cfg.Output.Color = "never"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Log)
	a.logger.Debug("configuration loaded", "path", a.configPath, "sizes", cfg.Bench.Sizes)
	return nil
}

func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lc.SlogLevel()}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// reportOptions decides styled output for w: always, never, or auto when
// w is a terminal.
func (a *app) reportOptions(w io.Writer) report.Options {
	opts := report.Options{Analyzer: a.cfg.Growth.Analyzer()}
	switch a.cfg.Output.Color {
	case "always":
		opts.Styled = true
	case "auto":
		if f, ok := w.(*os.File); ok {
			opts.Styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	return opts
}
