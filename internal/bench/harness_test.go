package bench_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/adt-complexity-bench/internal/bench"
	"github.com/randomizedcoder/adt-complexity-bench/internal/cancel"
	"github.com/randomizedcoder/adt-complexity-bench/internal/clock"
	"github.com/randomizedcoder/adt-complexity-bench/internal/complexity"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() bench.Config {
	cfg := bench.DefaultConfig()
	cfg.Iterations = 5
	cfg.Warmup = 0
	cfg.CollectGarbage = false
	cfg.Sizes = []int{10, 100}
	return cfg
}

// linearWorkload advances the manual clock heavily during setup and by n
// nanoseconds inside the op.
func linearWorkload(m *clock.Manual, structure, op string) bench.Workload {
	return bench.Workload{
		Structure: structure,
		Operation: op,
		Setup: func(n int) (bench.Op, error) {
			m.Advance(time.Hour)
			return func() error {
				m.Advance(time.Duration(n))
				return nil
			}, nil
		},
	}
}

type recorded struct {
	results  []bench.Result
	failures []bench.Failure
}

func (r *recorded) Record(res bench.Result)       { r.results = append(r.results, res) }
func (r *recorded) RecordFailure(f bench.Failure) { r.failures = append(r.failures, f) }

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  bench.Config
	}{
		{"zero iterations", bench.Config{Iterations: 0, Sizes: []int{1}}},
		{"negative warmup", bench.Config{Iterations: 1, Warmup: -1, Sizes: []int{1}}},
		{"no sizes", bench.Config{Iterations: 1}},
		{"zero size", bench.Config{Iterations: 1, Sizes: []int{10, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bench.New(tt.cfg)
			assert.ErrorIs(t, err, bench.ErrInvalidConfig)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := bench.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.Iterations)
	assert.Equal(t, []int{100, 500, 1000, 5000, 10000}, cfg.Sizes)
}

func TestMeasure_ExcludesSetup(t *testing.T) {
	m := clock.NewManual(0)
	w := linearWorkload(m, "fake", "scan")
	h, err := bench.New(testConfig(), bench.WithClock(m), bench.WithLogger(quietLogger()),
		bench.WithWorkloads(w))
	require.NoError(t, err)

	results, err := h.Run("fake", "scan", []int{10, 1000})
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.Equal(t, 5, r.Iterations)
		for _, s := range r.Samples {
			if s != time.Duration(r.Size) {
				t.Errorf("expected sample %v at n=%d, got %v", time.Duration(r.Size), r.Size, s)
			}
		}
		assert.Equal(t, time.Duration(r.Size), r.Mean)
		assert.Equal(t, time.Duration(r.Size), r.Median)
		assert.Zero(t, r.StdDev)
		assert.False(t, r.Cataloged)
	}
}

func TestMeasure_Warmup(t *testing.T) {
	m := clock.NewManual(0)
	calls := 0
	w := bench.Workload{Structure: "fake", Operation: "count", Setup: func(n int) (bench.Op, error) {
		return func() error { calls++; m.Advance(time.Microsecond); return nil }, nil
	}}
	cfg := testConfig()
	cfg.Warmup = 3
	h, err := bench.New(cfg, bench.WithClock(m), bench.WithLogger(quietLogger()), bench.WithWorkloads(w))
	require.NoError(t, err)

	r, f := h.Measure(w, 1)
	require.Nil(t, f)
	assert.Equal(t, 8, calls)
	assert.Len(t, r.Samples, 5)
}

func TestResultStatistics(t *testing.T) {
	m := clock.NewManual(0)
	durations := []time.Duration{4, 1, 3, 2}
	i := 0
	w := bench.Workload{Structure: "fake", Operation: "stats", Setup: func(int) (bench.Op, error) {
		d := durations[i%len(durations)]
		i++
		return func() error { m.Advance(d); return nil }, nil
	}}
	cfg := testConfig()
	cfg.Iterations = 4
	h, err := bench.New(cfg, bench.WithClock(m), bench.WithLogger(quietLogger()), bench.WithWorkloads(w))
	require.NoError(t, err)

	r, f := h.Measure(w, 1)
	require.Nil(t, f)
	assert.Equal(t, []time.Duration{4, 1, 3, 2}, r.Samples)
	assert.Equal(t, time.Duration(1), r.Min)
	assert.Equal(t, time.Duration(4), r.Max)
	assert.Equal(t, time.Duration(3), r.Mean) // 2.5 rounds away from zero
	assert.Equal(t, time.Duration(2), r.Median)
	assert.Equal(t, time.Duration(1), r.StdDev)
}

func TestFailureContinuesSweep(t *testing.T) {
	m := clock.NewManual(0)
	errBoom := errors.New("boom")
	failing := bench.Workload{Structure: "fake", Operation: "fail", Setup: func(n int) (bench.Op, error) {
		return func() error {
			if n == 100 {
				return errBoom
			}
			return nil
		}, nil
	}}
	panicking := bench.Workload{Structure: "fake", Operation: "panic", Setup: func(int) (bench.Op, error) {
		return func() error { panic("kaboom") }, nil
	}}
	badSetup := bench.Workload{Structure: "fake", Operation: "setup", Setup: func(int) (bench.Op, error) {
		return nil, errBoom
	}}
	ok := linearWorkload(m, "fake", "ok")

	rec := &recorded{}
	h, err := bench.New(testConfig(), bench.WithClock(m), bench.WithLogger(quietLogger()),
		bench.WithRecorder(rec), bench.WithWorkloads(failing, panicking, badSetup, ok))
	require.NoError(t, err)

	require.NoError(t, h.RunAll(nil))

	// fail: n=10 succeeds, n=100 fails. panic and setup fail at both sizes.
	failures := h.Failures()
	require.Len(t, failures, 5)
	assert.ErrorIs(t, failures[0], errBoom)
	assert.Equal(t, 100, failures[0].Size)
	assert.Equal(t, 0, failures[0].Iteration)
	assert.ErrorIs(t, failures[1], bench.ErrPanic)
	assert.ErrorIs(t, failures[3], errBoom)
	assert.Contains(t, failures[3].Error(), "fake_setup (n=10)")
	for _, f := range failures {
		assert.Equal(t, h.RunID(), f.RunID)
	}

	assert.Len(t, h.Results("fake_fail"), 1)
	assert.Empty(t, h.Results("fake_panic"))
	assert.Len(t, h.Results("fake_ok"), 2)
	assert.Equal(t, []string{"fake_fail", "fake_ok"}, h.Keys())

	assert.Len(t, rec.results, 3)
	assert.Len(t, rec.failures, 5)
}

// cancelAfter fires once Done has been polled n times.
type cancelAfter struct{ n int }

func (c *cancelAfter) Done() bool {
	c.n--
	return c.n < 0
}

func (c *cancelAfter) Cancel() { c.n = 0 }

var _ cancel.Canceler = (*cancelAfter)(nil)

func TestRunAll_CanceledKeepsPartialResults(t *testing.T) {
	m := clock.NewManual(0)
	h, err := bench.New(testConfig(), bench.WithClock(m), bench.WithLogger(quietLogger()),
		bench.WithCanceler(&cancelAfter{n: 3}),
		bench.WithWorkloads(linearWorkload(m, "fake", "a"), linearWorkload(m, "fake", "b")))
	require.NoError(t, err)

	err = h.RunAll([]int{10, 100})
	require.ErrorIs(t, err, bench.ErrCanceled)
	assert.Len(t, h.Results("fake_a"), 2)
	assert.Len(t, h.Results("fake_b"), 1)
}

func TestRunAll_CanceledReportsCause(t *testing.T) {
	m := clock.NewManual(0)
	c := cancel.NewContext(context.Background())
	h, err := bench.New(testConfig(), bench.WithClock(m), bench.WithLogger(quietLogger()),
		bench.WithCanceler(c),
		bench.WithWorkloads(linearWorkload(m, "fake", "a")))
	require.NoError(t, err)

	deadline := errors.New("deadline reached")
	c.CancelWith(deadline)

	err = h.RunAll(nil)
	require.ErrorIs(t, err, bench.ErrCanceled)
	assert.ErrorIs(t, err, deadline)
	assert.Contains(t, err.Error(), "after 0 of 2 measurements")
	assert.Empty(t, h.Results("fake_a"))
}

func TestRun_UnknownWorkload(t *testing.T) {
	h, err := bench.New(testConfig(), bench.WithLogger(quietLogger()))
	require.NoError(t, err)

	_, err = h.Run("heap", "push", nil)
	assert.ErrorIs(t, err, bench.ErrUnknownWorkload)
}

func TestRun_InvalidSizes(t *testing.T) {
	h, err := bench.New(testConfig(), bench.WithLogger(quietLogger()))
	require.NoError(t, err)

	_, err = h.Run("stack", "push", []int{0})
	assert.ErrorIs(t, err, bench.ErrInvalidConfig)
}

func TestResults_OrderedAndReplaced(t *testing.T) {
	m := clock.NewManual(0)
	h, err := bench.New(testConfig(), bench.WithClock(m), bench.WithLogger(quietLogger()),
		bench.WithWorkloads(linearWorkload(m, "fake", "scan")))
	require.NoError(t, err)

	_, err = h.Run("fake", "scan", []int{1000, 10})
	require.NoError(t, err)
	first := h.RunID()
	_, err = h.Run("fake", "scan", []int{100, 10})
	require.NoError(t, err)
	assert.NotEqual(t, first, h.RunID())

	rs := h.Results("fake_scan")
	require.Len(t, rs, 3)
	assert.Equal(t, []int{10, 100, 1000}, []int{rs[0].Size, rs[1].Size, rs[2].Size})
	assert.Equal(t, h.RunID(), rs[0].RunID)
	assert.Equal(t, first, rs[2].RunID)

	s := h.Series("fake_scan")
	assert.Equal(t, []int{10, 100, 1000}, s.Sizes)
	assert.Equal(t, []time.Duration{10, 100, 1000}, s.Means)

	h.Reset()
	assert.Empty(t, h.Keys())
	assert.Empty(t, h.RunID())
}

func TestDefaultWorkloads_RunAndAttachCatalog(t *testing.T) {
	cfg := testConfig()
	cfg.Iterations = 2
	h, err := bench.New(cfg, bench.WithLogger(quietLogger()))
	require.NoError(t, err)

	require.NoError(t, h.RunAll([]int{1, 50}))
	assert.Empty(t, h.Failures())
	assert.Len(t, h.Keys(), len(bench.DefaultWorkloads()))

	for _, w := range h.Workloads() {
		rec, err := complexity.Default().Get(w.Structure, w.Operation)
		require.NoError(t, err, w.Key())
		for _, r := range h.Results(w.Key()) {
			assert.True(t, r.Cataloged, w.Key())
			assert.Equal(t, rec.Worst, r.Predicted, w.Key())
		}
	}
}

func TestRegister_Normalizes(t *testing.T) {
	m := clock.NewManual(0)
	h, err := bench.New(testConfig(), bench.WithClock(m), bench.WithLogger(quietLogger()))
	require.NoError(t, err)

	n := len(h.Workloads())
	h.Register(linearWorkload(m, "Linked List", "Search"))
	assert.Len(t, h.Workloads(), n)

	w, err := h.Workload("linked-list", "search")
	require.NoError(t, err)
	assert.Equal(t, "linked_list_search", w.Key())
}

func TestSummary(t *testing.T) {
	m := clock.NewManual(0)
	cfg := testConfig()
	cfg.Iterations = 10
	h, err := bench.New(cfg, bench.WithClock(m), bench.WithLogger(quietLogger()),
		bench.WithWorkloads(linearWorkload(m, "fake", "scan")))
	require.NoError(t, err)

	rs, err := h.Run("fake", "scan", []int{500})
	require.NoError(t, err)
	s := rs[0].Summary()
	assert.Equal(t, 500.0, s.Center)
	assert.Equal(t, 500.0, s.Lo)
	assert.Equal(t, 500.0, s.Hi)
}

func TestSelectWorkloads(t *testing.T) {
	all, err := bench.SelectWorkloads(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(bench.DefaultWorkloads()))

	ws, err := bench.SelectWorkloads([]string{"queue_search", "Stack_Push"})
	require.NoError(t, err)
	require.Len(t, ws, 2)
	assert.Equal(t, "queue_search", ws[0].Key())
	assert.Equal(t, "stack_push", ws[1].Key())

	_, err = bench.SelectWorkloads([]string{"heap_push"})
	assert.ErrorIs(t, err, bench.ErrUnknownWorkload)
}
