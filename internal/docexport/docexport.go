// Package docexport writes the findings document: a Markdown summary with
// the static complexity comparison table, the per-structure tables and,
// when a sweep was run, the measured growth verdicts.
package docexport

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/randomizedcoder/adt-complexity-bench/internal/complexity"
	"github.com/randomizedcoder/adt-complexity-bench/internal/growth"
)

// DefaultTitle is used when Document.Title is empty.
const DefaultTitle = "Data Structures and Complexity Analysis"

//go:embed document.md.tmpl
var documentTemplate string

var tmpl = template.Must(template.New("document").Funcs(template.FuncMap{
	"cell":    cell,
	"display": complexity.DisplayName,
	"date":    func(t time.Time) string { return t.Format("2006-01-02") },
}).Parse(documentTemplate))

// Document is the content of one export.
type Document struct {
	Title     string
	Generated time.Time
	Catalog   *complexity.Catalog

	// RunID and Findings come from a sweep; both may be empty.
	RunID    string
	Findings []growth.Verdict
}

// ComparisonRow is one line of the cross-structure table.
type ComparisonRow struct {
	Kind    string
	Records []complexity.Record // one per structure, in catalog order
}

type view struct {
	Document
	Structures []string
	Comparison []ComparisonRow
	Tables     map[string][]complexity.Record
	Baseline   []complexity.Record
}

// comparisonKinds are the generic operations compared across structures.
var comparisonKinds = []string{"insert", "delete", "search"}

// Write renders d as Markdown.
func Write(w io.Writer, d Document) error {
	if d.Catalog == nil {
		d.Catalog = complexity.Default()
	}
	if d.Title == "" {
		d.Title = DefaultTitle
	}
	if d.Generated.IsZero() {
		d.Generated = time.Now()
	}

	v := view{
		Document:   d,
		Structures: d.Catalog.Structures(),
		Tables:     make(map[string][]complexity.Record),
		Baseline:   d.Catalog.ArrayBaseline(),
	}
	for _, s := range v.Structures {
		recs, err := d.Catalog.Operations(s)
		if err != nil {
			return err
		}
		v.Tables[s] = recs
	}
	for _, kind := range comparisonKinds {
		byStructure := d.Catalog.Compare(kind)
		row := ComparisonRow{Kind: kind}
		for _, s := range v.Structures {
			row.Records = append(row.Records, byStructure[s])
		}
		v.Comparison = append(v.Comparison, row)
	}

	if err := tmpl.Execute(w, v); err != nil {
		return fmt.Errorf("docexport: %w", err)
	}
	return nil
}

// cell escapes a Markdown table cell.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
