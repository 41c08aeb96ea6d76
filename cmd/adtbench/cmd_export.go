package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/randomizedcoder/adt-complexity-bench/internal/bench"
	"github.com/randomizedcoder/adt-complexity-bench/internal/docexport"
	"github.com/randomizedcoder/adt-complexity-bench/internal/growth"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		output   string
		title    string
		runBench bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the findings document as Markdown",
		Long: `export writes the complexity catalog as a Markdown document. With
--bench it first runs the configured sweep and adds the growth verdicts.
An interrupted sweep still writes the document with the keys measured so
far and then exits with the interruption error.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := docexport.Document{Title: title, Catalog: a.catalog}
			var sweepErr error
			if runBench {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				h, err := a.sweep(ctx)
				if h == nil {
					return err
				}
				// An interrupted sweep still exports what it measured.
				sweepErr = err
				doc.RunID = h.RunID()
				doc.Findings = a.findings(h)
			}

			if output == "" || output == "-" {
				if err := docexport.Write(cmd.OutOrStdout(), doc); err != nil {
					return err
				}
				return sweepErr
			}
			err := writeFile(output, func(w io.Writer) error {
				return docexport.Write(w, doc)
			})
			if err != nil {
				return err
			}
			return sweepErr
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "destination file, - for stdout")
	cmd.Flags().StringVar(&title, "title", "", "document title")
	cmd.Flags().BoolVar(&runBench, "bench", false, "run the configured sweep and include its growth verdicts")
	return cmd
}

// findings summarizes every key of h with at least two sizes.
func (a *app) findings(h *bench.Harness) []growth.Verdict {
	an := a.cfg.Growth.Analyzer()
	var out []growth.Verdict
	for _, key := range h.Keys() {
		ratios, err := an.ForKey(h, key)
		if errors.Is(err, growth.ErrTooFewResults) {
			a.logger.Warn("skipping key without growth data", "key", key)
			continue
		}
		if err != nil {
			a.logger.Error("growth analysis failed", "key", key, "error", err)
			continue
		}
		out = append(out, growth.Summarize(ratios))
	}
	return out
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
