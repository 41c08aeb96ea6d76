// Package growth compares measured timing growth with Big-O predictions.
//
// For each consecutive pair of results of one key (ordered by size) the
// analyzer reports the raw time ratio mean(n2)/mean(n1) next to the size
// ratio n2/n1, then classifies the observed ratio against the ratio every
// candidate class predicts for the same sizes:
//
//	O(1)       1
//	O(log n)   log2(n2) / log2(n1)
//	O(n)       n2 / n1
//	O(n log n) n2·log2(n2) / (n1·log2(n1))
//	O(n²)      (n2 / n1)²
//
// The implied class is the candidate nearest in log space. A class fits a
// pair when |observed/expected - 1| <= Tolerance. The verdict is a
// heuristic; raw ratios are always reported so the reader can judge the
// fit.
package growth

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"golang.org/x/perf/benchmath"

	"github.com/randomizedcoder/adt-complexity-bench/internal/bench"
	"github.com/randomizedcoder/adt-complexity-bench/internal/complexity"
)

// DefaultTolerance is the relative band around an expected ratio (±30%).
const DefaultTolerance = 0.30

// ErrTooFewResults is returned when a key has fewer than two sizes.
var ErrTooFewResults = errors.New("growth: at least two results are required")

// Candidates are the classes observed ratios are classified against.
var Candidates = []complexity.Class{
	complexity.Constant,
	complexity.Logarithmic,
	complexity.Linear,
	complexity.Linearithmic,
	complexity.Quadratic,
}

// Source provides results ordered by size. *bench.Harness implements it.
type Source interface {
	Results(key string) []bench.Result
}

// Ratio is the growth between two consecutive sizes of one key.
type Ratio struct {
	Key      string
	FromSize int
	ToSize   int

	// SizeRatio is ToSize/FromSize.
	SizeRatio float64

	// TimeRatio is mean(ToSize)/mean(FromSize). It is +Inf when only the
	// smaller size measured zero and 1 when both did.
	TimeRatio float64

	// MedianRatio is the same ratio over medians, less sensitive to a
	// single slow iteration.
	MedianRatio float64

	// Defined reports whether TimeRatio is finite and positive. Undefined
	// ratios imply Constant (0) or the steepest candidate (+Inf) and are
	// never in band.
	Defined bool

	// Implied is the candidate class nearest to TimeRatio in log space;
	// InBand reports whether TimeRatio also lies within its band.
	Implied complexity.Class
	InBand  bool

	// Predicted is the catalog's worst case for the key, valid when
	// Cataloged. Expected is the ratio it predicts for this pair and
	// Deviation is TimeRatio/Expected - 1.
	Predicted complexity.Class
	Cataloged bool
	Expected  float64
	Deviation float64
	Fits      bool

	// Significant reports whether the two sample sets differ at the
	// benchmath default alpha (Mann-Whitney U, no distribution assumed).
	Significant bool
	P           float64
}

// Analyzer classifies growth ratios. The zero value uses DefaultTolerance.
type Analyzer struct {
	// Tolerance is the relative half-width of every expected band.
	Tolerance float64
}

// New returns an Analyzer with the given tolerance.
func New(tolerance float64) (*Analyzer, error) {
	if tolerance <= 0 || math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		return nil, fmt.Errorf("growth: tolerance must be positive, got %v", tolerance)
	}
	return &Analyzer{Tolerance: tolerance}, nil
}

func (a *Analyzer) tolerance() float64 {
	if a == nil || a.Tolerance <= 0 {
		return DefaultTolerance
	}
	return a.Tolerance
}

// Expected returns the ratio class c predicts from size n1 to n2.
func Expected(c complexity.Class, n1, n2 int) float64 {
	return c.Ratio(n1, n2)
}

// Within reports whether observed lies within tolerance of expected.
func Within(observed, expected, tolerance float64) bool {
	if expected <= 0 || math.IsInf(observed, 0) || math.IsNaN(observed) {
		return false
	}
	return math.Abs(observed/expected-1) <= tolerance
}

// Classify returns the candidate whose expected ratio from n1 to n2 is
// nearest to observed in log space. Ties go to the slower-growing class.
func Classify(observed float64, n1, n2 int) complexity.Class {
	switch {
	case math.IsNaN(observed) || observed <= 0:
		return Candidates[0]
	case math.IsInf(observed, 1):
		return Candidates[len(Candidates)-1]
	}
	best, bestDist := Candidates[0], math.Inf(1)
	lo := math.Log(observed)
	for _, c := range Candidates {
		if d := math.Abs(lo - math.Log(Expected(c, n1, n2))); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func ratio(num, den float64) float64 {
	switch {
	case den > 0:
		return num / den
	case num > 0:
		return math.Inf(1)
	}
	return 1 // nothing measurable at either size
}

// Ratios computes one Ratio per consecutive pair. results need not be
// sorted; they must share one key.
func (a *Analyzer) Ratios(results []bench.Result) []Ratio {
	if len(results) < 2 {
		return nil
	}
	rs := slices.Clone(results)
	slices.SortFunc(rs, func(x, y bench.Result) int { return cmp.Compare(x.Size, y.Size) })

	tol := a.tolerance()
	out := make([]Ratio, 0, len(rs)-1)
	for i := 1; i < len(rs); i++ {
		prev, cur := rs[i-1], rs[i]
		r := Ratio{
			Key:         cur.Key,
			FromSize:    prev.Size,
			ToSize:      cur.Size,
			SizeRatio:   float64(cur.Size) / float64(prev.Size),
			TimeRatio:   ratio(float64(cur.Mean), float64(prev.Mean)),
			MedianRatio: ratio(float64(cur.Median), float64(prev.Median)),
			Predicted:   cur.Predicted,
			Cataloged:   cur.Cataloged,
		}
		r.Defined = r.TimeRatio > 0 && !math.IsInf(r.TimeRatio, 0)
		r.Implied = Classify(r.TimeRatio, r.FromSize, r.ToSize)
		r.InBand = r.Defined && Within(r.TimeRatio, Expected(r.Implied, r.FromSize, r.ToSize), tol)

		if r.Cataloged {
			r.Expected = Expected(r.Predicted, r.FromSize, r.ToSize)
			r.Deviation = r.TimeRatio/r.Expected - 1
			r.Fits = r.Defined && Within(r.TimeRatio, r.Expected, tol)
		}

		if len(prev.Samples) > 0 && len(cur.Samples) > 0 {
			c := benchmath.AssumeNothing.Compare(prev.Sample(), cur.Sample())
			r.P = c.P
			r.Significant = !math.IsNaN(c.P) && c.P < c.Alpha
		}
		out = append(out, r)
	}
	return out
}

// ForKey computes the ratios for one key of src.
func (a *Analyzer) ForKey(src Source, key string) ([]Ratio, error) {
	results := src.Results(key)
	if len(results) < 2 {
		return nil, fmt.Errorf("%w: %s has %d", ErrTooFewResults, key, len(results))
	}
	return a.Ratios(results), nil
}

// Verdict aggregates the ratios of one key.
type Verdict struct {
	Key   string
	Pairs int

	// Implied is the most frequently implied class, Agreement the number
	// of pairs implying it. Ties go to the class implied at larger sizes.
	Implied   complexity.Class
	Agreement int

	// Fits counts pairs inside the predicted class's band.
	Predicted complexity.Class
	Cataloged bool
	Fits      int
}

// Matches reports whether the dominant implied class is the predicted one.
func (v Verdict) Matches() bool {
	return v.Cataloged && v.Pairs > 0 && v.Implied == v.Predicted
}

func (v Verdict) String() string {
	if v.Pairs == 0 {
		return v.Key + ": no ratios"
	}
	s := fmt.Sprintf("%s: implies %s (%d/%d pairs)", v.Key, v.Implied, v.Agreement, v.Pairs)
	if v.Cataloged {
		s += fmt.Sprintf(", predicted %s fits %d/%d", v.Predicted, v.Fits, v.Pairs)
	}
	return s
}

// Summarize builds the Verdict for ratios of a single key.
func Summarize(ratios []Ratio) Verdict {
	var v Verdict
	if len(ratios) == 0 {
		return v
	}
	v.Key = ratios[0].Key
	v.Pairs = len(ratios)
	v.Predicted, v.Cataloged = ratios[0].Predicted, ratios[0].Cataloged

	counts := make(map[complexity.Class]int)
	for _, r := range ratios {
		counts[r.Implied]++
		if r.Fits {
			v.Fits++
		}
	}
	// Walk from the largest sizes down so ties favor them.
	for i := len(ratios) - 1; i >= 0; i-- {
		c := ratios[i].Implied
		if counts[c] > v.Agreement {
			v.Implied, v.Agreement = c, counts[c]
		}
	}
	return v
}
