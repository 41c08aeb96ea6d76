package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/randomizedcoder/adt-complexity-bench/internal/bench"
	"github.com/randomizedcoder/adt-complexity-bench/internal/growth"
)

// Source is the read side of the harness results collection.
type Source interface {
	Keys() []string
	Results(key string) []bench.Result
	Failures() []bench.Failure
}

// Benchmarks writes, per key, every result and every growth ratio, then
// the verdict and any failures. Keys with failures but no results are
// listed in the failures section only.
func Benchmarks(w io.Writer, src Source, opts Options) error {
	a := opts.analyzer()
	keys := src.Keys()
	if len(keys) == 0 {
		if _, err := fmt.Fprintln(w, opts.muted("No benchmark results.")); err != nil {
			return err
		}
	}
	for _, key := range keys {
		results := src.Results(key)
		if err := Key(w, key, results, a.Ratios(results), opts); err != nil {
			return err
		}
	}
	return Failures(w, src.Failures(), opts)
}

// Key writes the section of one key.
func Key(w io.Writer, key string, results []bench.Result, ratios []growth.Ratio, opts Options) error {
	heading := key
	if len(results) > 0 && results[0].Cataloged {
		heading += " (predicted " + results[0].Predicted.String() + ")"
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", opts.title(heading)); err != nil {
		return err
	}

	rt := opts.newTable("size", "iters", "mean", "median", "stddev", "min", "max", "95% CI")
	for _, r := range results {
		rt.Row(
			strconv.Itoa(r.Size),
			strconv.Itoa(r.Iterations),
			r.Mean.String(),
			r.Median.String(),
			r.StdDev.String(),
			r.Min.String(),
			r.Max.String(),
			interval(r),
		)
	}
	if _, err := fmt.Fprintln(w, rt.Render()); err != nil {
		return err
	}

	if len(ratios) == 0 {
		_, err := fmt.Fprintln(w, opts.muted("growth: fewer than two sizes"))
		return err
	}

	gt := opts.newTable("sizes", "size x", "time x", "median x", "implied", "in band",
		"expected x", "deviation", "fits", "significant")
	for _, r := range ratios {
		expected, deviation, fits := "-", "-", "-"
		if r.Cataloged {
			expected = formatRatio(r.Expected)
			deviation = fmt.Sprintf("%+.0f%%", r.Deviation*100)
			fits = opts.verdict(r.Fits)
		}
		gt.Row(
			fmt.Sprintf("%d -> %d", r.FromSize, r.ToSize),
			formatRatio(r.SizeRatio),
			formatRatio(r.TimeRatio),
			formatRatio(r.MedianRatio),
			r.Implied.String(),
			opts.verdict(r.InBand),
			expected,
			deviation,
			fits,
			opts.verdict(r.Significant),
		)
	}
	if _, err := fmt.Fprintln(w, gt.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, growth.Summarize(ratios).String())
	return err
}

// Failures writes the failure list, or nothing when there are none.
func Failures(w io.Writer, failures []bench.Failure, opts Options) error {
	if len(failures) == 0 {
		return nil
	}
	heading := fmt.Sprintf("\n%d failed measurement(s)", len(failures))
	if opts.Styled {
		heading = Styles.Error.Render(heading)
	}
	if _, err := fmt.Fprintln(w, heading); err != nil {
		return err
	}
	ft := opts.newTable("key", "size", "iteration", "error")
	for _, f := range failures {
		ft.Row(f.Key, strconv.Itoa(f.Size), strconv.Itoa(f.Iteration), f.Err.Error())
	}
	_, err := fmt.Fprintln(w, ft.Render())
	return err
}

// interval renders the benchmath confidence interval around the median.
func interval(r bench.Result) string {
	if len(r.Samples) == 0 {
		return "-"
	}
	s := r.Summary()
	if len(s.Warnings) > 0 {
		return "n/a"
	}
	return fmt.Sprintf("[%v, %v]", time.Duration(s.Lo), time.Duration(s.Hi))
}

func formatRatio(v float64) string {
	return "x" + strconv.FormatFloat(v, 'f', 2, 64)
}
