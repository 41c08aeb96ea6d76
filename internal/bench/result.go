package bench

import (
	"math"
	"slices"
	"strconv"
	"time"

	"golang.org/x/perf/benchmath"

	"github.com/randomizedcoder/adt-complexity-bench/internal/complexity"
)

// SummaryConfidence is the confidence level of Result.Summary intervals.
const SummaryConfidence = 0.95

// Result holds one (workload, size) measurement.
type Result struct {
	// Key is "<structure>_<operation>".
	Key       string
	Structure string
	Operation string

	// Size is the number of elements the structure held before the op.
	Size int

	// Iterations is the number of timed samples.
	Iterations int

	// Samples are the per-iteration elapsed times, in run order.
	Samples []time.Duration

	Mean   time.Duration
	Median time.Duration
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration

	// Predicted is the catalog's worst-case class, valid when Cataloged.
	Predicted complexity.Class
	Cataloged bool

	// RunID identifies the Run or RunAll call that produced the result.
	RunID string
}

// newResult fills in the statistics for samples.
func newResult(w Workload, size int, samples []time.Duration) Result {
	r := Result{
		Key:        w.Key(),
		Structure:  w.Structure,
		Operation:  w.Operation,
		Size:       size,
		Iterations: len(samples),
		Samples:    samples,
	}
	if len(samples) == 0 {
		return r
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	r.Min = sorted[0]
	r.Max = sorted[len(sorted)-1]
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		r.Median = sorted[mid]
	} else {
		r.Median = (sorted[mid-1] + sorted[mid]) / 2
	}

	var sum float64
	for _, s := range samples {
		sum += float64(s)
	}
	mean := sum / float64(len(samples))
	r.Mean = time.Duration(math.Round(mean))

	if len(samples) > 1 {
		var sq float64
		for _, s := range samples {
			d := float64(s) - mean
			sq += d * d
		}
		r.StdDev = time.Duration(math.Round(math.Sqrt(sq / float64(len(samples)-1))))
	}
	return r
}

// Sample converts the samples to a benchmath sample in nanoseconds.
func (r Result) Sample() *benchmath.Sample {
	vals := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		vals[i] = float64(s.Nanoseconds())
	}
	// NewSample sorts vals in place; it is a private copy.
	return benchmath.NewSample(vals, &benchmath.DefaultThresholds)
}

// Summary returns a distribution-free center (median) and confidence
// interval for the samples, in nanoseconds. Its Warnings explain when
// there are too few samples for the requested confidence.
func (r Result) Summary() benchmath.Summary {
	return benchmath.AssumeNothing.Summary(r.Sample(), SummaryConfidence)
}

// Failure records a measurement that did not complete.
type Failure struct {
	Key       string
	Structure string
	Operation string
	Size      int

	// Iteration is the 0-based repetition that failed, counting warmup.
	Iteration int

	Err   error
	RunID string
}

func (f Failure) Error() string {
	return f.Key + " (n=" + strconv.Itoa(f.Size) + "): " + f.Err.Error()
}

func (f Failure) Unwrap() error { return f.Err }

// Series is the chart contract for one key: (size, mean) points ordered
// by size, plus the catalog class for the theoretical curve.
type Series struct {
	Key       string
	Predicted complexity.Class
	Cataloged bool
	Sizes     []int
	Means     []time.Duration
	StdDevs   []time.Duration
}
