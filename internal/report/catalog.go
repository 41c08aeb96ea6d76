package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/randomizedcoder/adt-complexity-bench/internal/complexity"
)

// Complexity writes the complexity table of one structure.
func Complexity(w io.Writer, cat *complexity.Catalog, structure string, opts Options) error {
	records, err := cat.Operations(structure)
	if err != nil {
		return err
	}
	return recordTable(w, complexity.DisplayName(complexity.Normalize(structure))+" operations", records, opts)
}

// AllComplexity writes the table of every structure, then the array
// baseline.
func AllComplexity(w io.Writer, cat *complexity.Catalog, opts Options) error {
	for _, s := range cat.Structures() {
		if err := Complexity(w, cat, s, opts); err != nil {
			return err
		}
	}
	if base := cat.ArrayBaseline(); len(base) > 0 {
		if err := recordTable(w, "Array operations (baseline)", base, opts); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, opts.muted("* amortized"))
	return err
}

func recordTable(w io.Writer, title string, records []complexity.Record, opts Options) error {
	t := opts.newTable("operation", "best", "average", "worst", "space", "explanation")
	for _, r := range records {
		t.Row(r.Operation, r.Best.String(), r.Average.String(), r.WorstLabel(), r.Space.String(), r.Explanation)
	}
	_, err := fmt.Fprintf(w, "\n%s\n%s\n", opts.title(title), t.Render())
	return err
}

// Comparison writes how every structure performs one operation kind.
func Comparison(w io.Writer, cat *complexity.Catalog, operation string, opts Options) error {
	byStructure := cat.Compare(operation)
	if len(byStructure) == 0 {
		return fmt.Errorf("%w %q for any structure", complexity.ErrUnknownOperation, operation)
	}
	t := opts.newTable("structure", "operation", "average", "worst")
	for _, s := range cat.Structures() {
		r, ok := byStructure[s]
		if !ok {
			continue
		}
		t.Row(complexity.DisplayName(s), r.Operation, r.Average.String(), r.WorstLabel())
	}
	title := "Comparing " + complexity.Normalize(operation) + " across structures"
	_, err := fmt.Fprintf(w, "\n%s\n%s\n", opts.title(title), t.Render())
	return err
}

// Prediction writes the estimated operation counts of p.
func Prediction(w io.Writer, p complexity.Prediction, opts Options) error {
	t := opts.newTable("case", "complexity", "estimated ops")
	for _, c := range []struct {
		name string
		e    complexity.Estimate
	}{
		{"best", p.Best},
		{"average", p.Average},
		{"worst", p.Worst},
	} {
		t.Row(c.name, c.e.Class.String(), strconv.Itoa(c.e.EstimatedOps))
	}
	title := fmt.Sprintf("%s %s with n=%d", complexity.DisplayName(p.Structure), p.Operation, p.InputSize)
	_, err := fmt.Fprintf(w, "\n%s\n%s\nspace: %s\n", opts.title(title), t.Render(), p.Space)
	return err
}

// Explain writes one record in prose.
func Explain(w io.Writer, r complexity.Record, opts Options) error {
	_, err := fmt.Fprintf(w, "\n%s\n  best %s, average %s, worst %s, space %s\n  %s\n",
		opts.title(complexity.DisplayName(r.Structure)+" "+r.Operation),
		r.Best, r.Average, r.WorstLabel(), r.Space, r.Explanation)
	return err
}

// Recommendations writes structure suggestions for a use case.
func Recommendations(w io.Writer, useCase string, recs []complexity.Recommendation, opts Options) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", opts.title("Recommendations for: "+useCase)); err != nil {
		return err
	}
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, "  - %s: %s\n", complexity.DisplayName(r.Structure), r.Reason); err != nil {
			return err
		}
	}
	return nil
}
