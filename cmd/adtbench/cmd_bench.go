package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/randomizedcoder/adt-complexity-bench/internal/bench"
	"github.com/randomizedcoder/adt-complexity-bench/internal/cancel"
	"github.com/randomizedcoder/adt-complexity-bench/internal/chart"
	"github.com/randomizedcoder/adt-complexity-bench/internal/metrics"
	"github.com/randomizedcoder/adt-complexity-bench/internal/report"
)

// benchFlags override the bench and output sections of the config.
type benchFlags struct {
	sizes       []int
	iterations  int
	warmup      int
	keys        []string
	tolerance   float64
	csv         string
	metricsFile string
	plot        bool
}

func (f *benchFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntSliceVar(&f.sizes, "sizes", nil, "input sizes, e.g. 100,200,400,800")
	fs.IntVar(&f.iterations, "iterations", 0, "timed iterations per size")
	fs.IntVar(&f.warmup, "warmup", -1, "untimed iterations per size")
	fs.StringSliceVar(&f.keys, "key", nil, "benchmark keys to run, e.g. linked_list_search (default all)")
	fs.Float64Var(&f.tolerance, "tolerance", 0, "relative growth tolerance, e.g. 0.3")
	fs.StringVar(&f.csv, "csv", "", "write chart data as CSV to this file")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics in textfile format to this file")
	fs.BoolVar(&f.plot, "plot", false, "draw a terminal plot per key")
}

// apply copies every flag that was set onto the loaded config.
func (f *benchFlags) apply(a *app) error {
	b := &a.cfg.Bench
	if f.sizes != nil {
		b.Sizes = f.sizes
	}
	if f.iterations != 0 {
		b.Iterations = f.iterations
	}
	if f.warmup >= 0 {
		b.Warmup = f.warmup
	}
	if f.keys != nil {
		b.Workloads = f.keys
	}
	if f.tolerance != 0 {
		a.cfg.Growth.Tolerance = f.tolerance
	}
	if f.csv != "" {
		a.cfg.Output.CSV = f.csv
	}
	if f.metricsFile != "" {
		a.cfg.Output.MetricsFile = f.metricsFile
	}
	return a.cfg.Validate()
}

func newBenchCmd(a *app) *cobra.Command {
	var flags benchFlags
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure operations across input sizes and analyze growth",
		Long: `bench times every selected operation at each input size, excluding the
structure's pre-population from the timing window, then reports each
result and the growth ratio between consecutive sizes.

Interrupting a sweep stops it between measurements; the partial results
are still reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(a); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			h, sweepErr := a.sweep(ctx)
			if h == nil {
				return sweepErr
			}
			if err := a.writeOutputs(cmd.OutOrStdout(), h, flags.plot); err != nil {
				return err
			}
			return sweepErr
		},
	}
	flags.register(cmd)
	return cmd
}

// sweep runs the configured workloads. On cancellation it returns the
// harness with its partial results together with the error.
func (a *app) sweep(ctx context.Context) (*bench.Harness, error) {
	workloads, err := bench.SelectWorkloads(a.cfg.Bench.Workloads)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	rec := metrics.New()
	h, err := bench.New(a.cfg.Bench.Harness(),
		bench.WithLogger(a.logger),
		bench.WithCatalog(a.catalog),
		bench.WithCanceler(cancel.NewContext(ctx)),
		bench.WithRecorder(rec),
		bench.WithWorkloads(workloads...),
	)
	if err != nil {
		return nil, err
	}

	err = h.RunAll(nil)
	if err != nil && !errors.Is(err, bench.ErrCanceled) {
		return nil, err
	}

	if path := a.cfg.Output.MetricsFile; path != "" {
		if werr := rec.WriteTextfile(path); werr != nil {
			return h, errors.Join(err, werr)
		}
		a.logger.Info("metrics written", "path", path)
	}
	return h, err
}

// writeOutputs prints the report, optional plots and the CSV file.
func (a *app) writeOutputs(out io.Writer, h *bench.Harness, plot bool) error {
	if err := report.Benchmarks(out, h, a.reportOptions(out)); err != nil {
		return err
	}

	charts := make([]chart.Chart, 0, len(h.Keys()))
	for _, key := range h.Keys() {
		charts = append(charts, chart.FromSeries(h.Series(key)))
	}
	if plot {
		for _, c := range charts {
			fmt.Fprintln(out)
			if err := chart.Plot(out, c, a.cfg.Output.PlotWidth); err != nil {
				return err
			}
		}
	}

	if path := a.cfg.Output.CSV; path != "" {
		err := writeFile(path, func(w io.Writer) error {
			return chart.WriteCSV(w, charts...)
		})
		if err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		a.logger.Info("chart data written", "path", path, "keys", len(charts))
	}
	return nil
}
