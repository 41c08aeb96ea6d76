package chart_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/adt-complexity-bench/internal/bench"
	"github.com/randomizedcoder/adt-complexity-bench/internal/chart"
	"github.com/randomizedcoder/adt-complexity-bench/internal/complexity"
)

func series() bench.Series {
	return bench.Series{
		Key:       "linked_list_search",
		Predicted: complexity.Linear,
		Cataloged: true,
		Sizes:     []int{100, 200, 400},
		Means:     []time.Duration{1000, 2100, 3900},
		StdDevs:   []time.Duration{10, 10, 10},
	}
}

func TestFromSeries_ScalesToFirstPoint(t *testing.T) {
	c := chart.FromSeries(series())

	require.Len(t, c.Empirical, 3)
	assert.Equal(t, chart.Point{Size: 200, Nanos: 2100}, c.Empirical[1])

	linear, ok := c.Curve(complexity.Linear)
	require.True(t, ok)
	assert.Equal(t, []chart.Point{
		{Size: 100, Nanos: 1000},
		{Size: 200, Nanos: 2000},
		{Size: 400, Nanos: 4000},
	}, linear.Points)

	constant, ok := c.Curve(complexity.Constant)
	require.True(t, ok)
	for _, p := range constant.Points {
		assert.Equal(t, 1000.0, p.Nanos)
	}

	quadratic, ok := c.Curve(complexity.Quadratic)
	require.True(t, ok)
	assert.InDelta(t, 16000, quadratic.Points[2].Nanos, 1e-9)
}

func TestFromSeries_AddsPredictedClass(t *testing.T) {
	s := series()
	s.Predicted = complexity.Logarithmic
	c := chart.FromSeries(s, complexity.Linear)

	require.Len(t, c.Curves, 2)
	assert.Equal(t, complexity.Logarithmic, c.Curves[0].Class)
	assert.Equal(t, complexity.Linear, c.Curves[1].Class)
}

func TestFromSeries_Empty(t *testing.T) {
	c := chart.FromSeries(bench.Series{Key: "k"})
	assert.Empty(t, c.Empirical)
	assert.Empty(t, c.Curves)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, chart.WriteCSV(&buf, chart.FromSeries(series(), complexity.Linear)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+3+3)
	assert.Equal(t, []string{"key", "size", "series", "nanos"}, rows[0])
	assert.Equal(t, []string{"linked_list_search", "100", "measured", "1000.0"}, rows[1])
	assert.Equal(t, []string{"linked_list_search", "400", "O(n)", "4000.0"}, rows[6])
}

func TestPlot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, chart.Plot(&buf, chart.FromSeries(series()), 10))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "linked_list_search", lines[0])
	assert.Equal(t, "  100 | ###        1µs  (O(n): 1µs)", lines[1])
	assert.Equal(t, "  400 | ########## 3.9µs  (O(n): 4µs)", lines[3])
}

func TestPlot_NoData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, chart.Plot(&buf, chart.Chart{Key: "k"}, 0))
	assert.Equal(t, "k\n  (no data)\n", buf.String())
}
