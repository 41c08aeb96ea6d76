package bench

import (
	"cmp"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/randomizedcoder/adt-complexity-bench/internal/cancel"
	"github.com/randomizedcoder/adt-complexity-bench/internal/clock"
	"github.com/randomizedcoder/adt-complexity-bench/internal/complexity"
)

// progressInterval is the minimum time between two progress log lines.
const progressInterval = 2 * time.Second

// Recorder receives every completed measurement and failure.
// The Prometheus exporter in internal/metrics implements it.
type Recorder interface {
	Record(Result)
	RecordFailure(Failure)
}

type nopRecorder struct{}

func (nopRecorder) Record(Result)         {}
func (nopRecorder) RecordFailure(Failure) {}

// Option configures a Harness.
type Option func(*Harness)

// WithClock sets the clock that bounds timing windows.
func WithClock(c clock.Clock) Option {
	return func(h *Harness) { h.clock = c }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// WithCanceler sets the stop signal polled between measurements.
func WithCanceler(c cancel.Canceler) Option {
	return func(h *Harness) { h.canceler = c }
}

// WithCatalog sets the catalog used to attach predicted classes.
func WithCatalog(c *complexity.Catalog) Option {
	return func(h *Harness) { h.catalog = c }
}

// WithRecorder sets the measurement recorder.
func WithRecorder(r Recorder) Option {
	return func(h *Harness) { h.recorder = r }
}

// WithWorkloads replaces the default workloads.
func WithWorkloads(ws ...Workload) Option {
	return func(h *Harness) {
		h.workloads = nil
		h.index = make(map[string]int)
		for _, w := range ws {
			h.Register(w)
		}
	}
}

// Harness runs workloads and owns the results collection.
type Harness struct {
	cfg       Config
	clock     clock.Clock
	logger    *slog.Logger
	canceler  cancel.Canceler
	catalog   *complexity.Catalog
	recorder  Recorder
	workloads []Workload
	index     map[string]int // key -> position in workloads

	results  map[string][]Result // key -> results ordered by size
	failures []Failure
	runID    string
}

// New creates a Harness with the default workloads.
// Returns an error wrapping ErrInvalidConfig if cfg does not validate.
func New(cfg Config, opts ...Option) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &Harness{
		cfg:      cfg,
		clock:    clock.Default(),
		logger:   slog.Default(),
		canceler: cancel.Never{},
		catalog:  complexity.Default(),
		recorder: nopRecorder{},
		index:    make(map[string]int),
		results:  make(map[string][]Result),
	}
	for _, w := range DefaultWorkloads() {
		h.Register(w)
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Config returns the harness configuration.
func (h *Harness) Config() Config { return h.cfg }

// Register adds a workload, replacing any workload with the same key.
func (h *Harness) Register(w Workload) {
	w.Structure = complexity.Normalize(w.Structure)
	w.Operation = complexity.Normalize(w.Operation)
	if i, ok := h.index[w.Key()]; ok {
		h.workloads[i] = w
		return
	}
	h.index[w.Key()] = len(h.workloads)
	h.workloads = append(h.workloads, w)
}

// Workloads returns the registered workloads in registration order.
func (h *Harness) Workloads() []Workload {
	return slices.Clone(h.workloads)
}

// Workload looks up a registered workload.
func (h *Harness) Workload(structure, operation string) (Workload, error) {
	key := Key(structure, operation)
	i, ok := h.index[key]
	if !ok {
		return Workload{}, fmt.Errorf("%w: %s", ErrUnknownWorkload, key)
	}
	return h.workloads[i], nil
}

// timeOp runs op inside the timing window. A panic becomes an error;
// the deferred recover runs after the window closes.
func (h *Harness) timeOp(op Op) (elapsed time.Duration, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	start := h.clock.Now()
	err = op()
	elapsed = h.clock.Now() - start
	return elapsed, err
}

// setup runs w.Setup, converting a panic into an error.
func setup(w Workload, size int) (op Op, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w during setup: %v", ErrPanic, r)
		}
	}()
	op, err = w.Setup(size)
	if err == nil && op == nil {
		err = fmt.Errorf("setup returned a nil op")
	}
	return op, err
}

// Measure times w at one input size without touching the results
// collection. On failure it returns the failing iteration.
func (h *Harness) Measure(w Workload, size int) (Result, *Failure) {
	total := h.cfg.Warmup + h.cfg.Iterations
	samples := make([]time.Duration, 0, h.cfg.Iterations)

	for i := 0; i < total; i++ {
		op, err := setup(w, size)
		if err != nil {
			return Result{}, h.failure(w, size, i, fmt.Errorf("setup: %w", err))
		}
		if h.cfg.CollectGarbage {
			runtime.GC()
		}
		elapsed, err := h.timeOp(op)
		if err != nil {
			return Result{}, h.failure(w, size, i, err)
		}
		if i >= h.cfg.Warmup {
			samples = append(samples, elapsed)
		}
	}

	r := newResult(w, size, samples)
	r.RunID = h.runID
	if rec, err := h.catalog.Get(w.Structure, w.Operation); err == nil {
		r.Predicted = rec.Worst
		r.Cataloged = true
	}
	return r, nil
}

func (h *Harness) failure(w Workload, size, iteration int, err error) *Failure {
	return &Failure{
		Key:       w.Key(),
		Structure: w.Structure,
		Operation: w.Operation,
		Size:      size,
		Iteration: iteration,
		Err:       err,
		RunID:     h.runID,
	}
}

// store inserts r keeping the key's results ordered by size. A result for
// an already measured size replaces the old one.
func (h *Harness) store(r Result) {
	rs := h.results[r.Key]
	i, found := slices.BinarySearchFunc(rs, r.Size, func(e Result, size int) int {
		return cmp.Compare(e.Size, size)
	})
	if found {
		rs[i] = r
	} else {
		rs = slices.Insert(rs, i, r)
	}
	h.results[r.Key] = rs
}

// sweep measures every workload at every size, recording failures and
// continuing. It stops between measurements when the canceler fires.
func (h *Harness) sweep(workloads []Workload, sizes []int) error {
	if err := validateSizes(sizes); err != nil {
		return err
	}
	h.runID = uuid.NewString()
	log := h.logger.With("run_id", h.runID)
	log.Info("benchmark sweep starting",
		"workloads", len(workloads),
		"sizes", sizes,
		"iterations", h.cfg.Iterations,
		"warmup", h.cfg.Warmup,
	)

	progress := clock.NewThrottle(h.clock, progressInterval, 1)
	total := len(workloads) * len(sizes)
	done, failed := 0, 0
	for _, w := range workloads {
		for _, size := range sizes {
			if h.canceler.Done() {
				log.Warn("benchmark sweep canceled", "completed", done, "total", total)
				if c, ok := h.canceler.(interface{ Cause() error }); ok && c.Cause() != nil {
					return fmt.Errorf("%w after %d of %d measurements: %w", ErrCanceled, done, total, c.Cause())
				}
				return fmt.Errorf("%w after %d of %d measurements", ErrCanceled, done, total)
			}

			r, f := h.Measure(w, size)
			done++
			if f != nil {
				failed++
				h.failures = append(h.failures, *f)
				h.recorder.RecordFailure(*f)
				log.Warn("measurement failed",
					"key", f.Key, "size", f.Size, "iteration", f.Iteration, "error", f.Err)
				continue
			}
			h.store(r)
			h.recorder.Record(r)
			log.Debug("measurement complete",
				"key", r.Key, "size", r.Size, "mean", r.Mean, "median", r.Median)

			if progress.Ready() {
				log.Info("benchmark progress", "completed", done, "total", total)
			}
		}
	}

	log.Info("benchmark sweep complete", "measurements", done, "failures", failed)
	return nil
}

// Run measures one workload at each size. Failures are recorded, not
// returned; the error is non-nil only for an unknown workload, invalid
// sizes or cancellation.
func (h *Harness) Run(structure, operation string, sizes []int) ([]Result, error) {
	w, err := h.Workload(structure, operation)
	if err != nil {
		return nil, err
	}
	if sizes == nil {
		sizes = h.cfg.Sizes
	}
	err = h.sweep([]Workload{w}, sizes)
	return h.Results(w.Key()), err
}

// RunAll measures every registered workload at each size (Config.Sizes
// when sizes is nil). On cancellation the results gathered so far stay
// in the collection and the error wraps ErrCanceled.
func (h *Harness) RunAll(sizes []int) error {
	if sizes == nil {
		sizes = h.cfg.Sizes
	}
	return h.sweep(h.workloads, sizes)
}

// Results returns the results for key ordered by size.
func (h *Harness) Results(key string) []Result {
	return slices.Clone(h.results[key])
}

// Keys returns the keys that have results, in workload registration order.
// Keys of workloads no longer registered follow in sorted order.
func (h *Harness) Keys() []string {
	keys := make([]string, 0, len(h.results))
	seen := make(map[string]bool, len(h.results))
	for _, w := range h.workloads {
		if _, ok := h.results[w.Key()]; ok {
			keys = append(keys, w.Key())
			seen[w.Key()] = true
		}
	}
	var rest []string
	for k := range h.results {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(keys, rest...)
}

// Failures returns every recorded failure in occurrence order.
func (h *Harness) Failures() []Failure {
	return slices.Clone(h.failures)
}

// RunID returns the ID of the most recent sweep, or "" before the first.
func (h *Harness) RunID() string { return h.runID }

// Series returns the chart contract for key.
func (h *Harness) Series(key string) Series {
	rs := h.results[key]
	s := Series{
		Key:     key,
		Sizes:   make([]int, len(rs)),
		Means:   make([]time.Duration, len(rs)),
		StdDevs: make([]time.Duration, len(rs)),
	}
	for i, r := range rs {
		s.Sizes[i] = r.Size
		s.Means[i] = r.Mean
		s.StdDevs[i] = r.StdDev
		s.Predicted, s.Cataloged = r.Predicted, r.Cataloged
	}
	return s
}

// Reset discards all results and failures.
func (h *Harness) Reset() {
	h.results = make(map[string][]Result)
	h.failures = nil
	h.runID = ""
}
