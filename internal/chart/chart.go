// Package chart turns harness series into plot data: the empirical
// (size, mean) points of a key next to canonical Big-O curves scaled to
// the first empirical point, so both share one axis.
package chart

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/randomizedcoder/adt-complexity-bench/internal/bench"
	"github.com/randomizedcoder/adt-complexity-bench/internal/complexity"
)

// DefaultClasses are the reference curves drawn when none are requested.
var DefaultClasses = []complexity.Class{complexity.Constant, complexity.Linear, complexity.Quadratic}

// Point is one plotted value in nanoseconds.
type Point struct {
	Size  int
	Nanos float64
}

// Curve is a theoretical series, scaled so that it passes through the
// first empirical point.
type Curve struct {
	Class  complexity.Class
	Points []Point
}

// Chart is the plot data of one key.
type Chart struct {
	Key       string
	Predicted complexity.Class
	Cataloged bool
	Empirical []Point
	Curves    []Curve
}

// Curve returns the reference curve of class, if the chart has one.
func (c Chart) Curve(class complexity.Class) (Curve, bool) {
	i := slices.IndexFunc(c.Curves, func(cv Curve) bool { return cv.Class == class })
	if i < 0 {
		return Curve{}, false
	}
	return c.Curves[i], true
}

// FromSeries builds a Chart. The predicted class is always included among
// the curves; classes defaults to DefaultClasses.
func FromSeries(s bench.Series, classes ...complexity.Class) Chart {
	if len(classes) == 0 {
		classes = DefaultClasses
	}
	classes = slices.Clone(classes)
	if s.Cataloged && !slices.Contains(classes, s.Predicted) {
		classes = append(classes, s.Predicted)
	}
	slices.Sort(classes)

	c := Chart{Key: s.Key, Predicted: s.Predicted, Cataloged: s.Cataloged}
	for i, size := range s.Sizes {
		c.Empirical = append(c.Empirical, Point{Size: size, Nanos: float64(s.Means[i])})
	}
	if len(c.Empirical) == 0 {
		return c
	}

	first := c.Empirical[0]
	for _, class := range classes {
		scale := first.Nanos / class.Eval(float64(first.Size))
		cv := Curve{Class: class}
		for _, p := range c.Empirical {
			cv.Points = append(cv.Points, Point{Size: p.Size, Nanos: scale * class.Eval(float64(p.Size))})
		}
		c.Curves = append(c.Curves, cv)
	}
	return c
}

// WriteCSV writes charts in long format: key,size,series,nanos. The
// series column is "measured" or a class such as "O(n)".
func WriteCSV(w io.Writer, charts ...Chart) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"key", "size", "series", "nanos"}); err != nil {
		return err
	}
	row := func(key string, p Point, series string) error {
		return cw.Write([]string{key, strconv.Itoa(p.Size), series, strconv.FormatFloat(p.Nanos, 'f', 1, 64)})
	}
	for _, c := range charts {
		for _, p := range c.Empirical {
			if err := row(c.Key, p, "measured"); err != nil {
				return err
			}
		}
		for _, cv := range c.Curves {
			for _, p := range cv.Points {
				if err := row(c.Key, p, cv.Class.String()); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// Plot draws horizontal bars of the measured means, each followed by the
// predicted curve's value at the same size. width is the longest bar.
func Plot(w io.Writer, c Chart, width int) error {
	if width < 1 {
		width = 40
	}
	if _, err := fmt.Fprintln(w, c.Key); err != nil {
		return err
	}
	if len(c.Empirical) == 0 {
		_, err := fmt.Fprintln(w, "  (no data)")
		return err
	}

	peak := 0.0
	for _, p := range c.Empirical {
		peak = max(peak, p.Nanos)
	}
	predicted, hasPredicted := c.Curve(c.Predicted)
	hasPredicted = hasPredicted && c.Cataloged

	label := len(strconv.Itoa(c.Empirical[len(c.Empirical)-1].Size))
	for i, p := range c.Empirical {
		n := 0
		if peak > 0 {
			n = int(math.Round(p.Nanos / peak * float64(width)))
		}
		line := fmt.Sprintf("  %*d | %-*s %v", label, p.Size, width, strings.Repeat("#", n),
			time.Duration(p.Nanos))
		if hasPredicted {
			line += fmt.Sprintf("  (%s: %v)", c.Predicted, time.Duration(predicted.Points[i].Nanos))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
