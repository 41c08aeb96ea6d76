package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randomizedcoder/adt-complexity-bench/internal/complexity"
	"github.com/randomizedcoder/adt-complexity-bench/internal/report"
)

// quickSizes keep the menu's benchmark under a few seconds.
var quickSizes = []int{100, 200, 400, 800}

const menuText = `
 1) Stack demo
 2) Queue demo
 3) Linked List demo
 4) Complexity tables
 5) Compare an operation
 6) Predict operation count
 7) Explain an operation
 8) Quick benchmark
 9) Recommend a structure
 0) Exit
`

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu over the demos, catalog and benchmark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &menu{
				app: a,
				in:  bufio.NewScanner(cmd.InOrStdin()),
				out: cmd.OutOrStdout(),
			}
			return m.run(cmd)
		},
	}
}

type menu struct {
	app *app
	in  *bufio.Scanner
	out io.Writer
}

// prompt prints label and reads one trimmed line. ok is false at EOF.
func (m *menu) prompt(label string) (line string, ok bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) run(cmd *cobra.Command) error {
	for {
		fmt.Fprint(m.out, menuText)
		choice, ok := m.prompt("choice: ")
		if !ok || choice == "0" || strings.EqualFold(choice, "q") {
			fmt.Fprintln(m.out, "bye")
			return m.in.Err()
		}

		var err error
		switch choice {
		case "1":
			err = demoStack(m.out)
		case "2":
			err = demoQueue(m.out)
		case "3":
			err = demoList(m.out)
		case "4":
			err = report.AllComplexity(m.out, m.app.catalog, m.app.reportOptions(m.out))
		case "5":
			err = m.compare()
		case "6":
			err = m.predict()
		case "7":
			err = m.explain()
		case "8":
			err = m.quickBench(cmd)
		case "9":
			err = m.recommend()
		default:
			fmt.Fprintf(m.out, "unknown choice %q\n", choice)
			continue
		}
		// Input mistakes are reported and the menu continues.
		if err != nil {
			fmt.Fprintf(m.out, "error: %v\n", err)
		}
	}
}

func (m *menu) compare() error {
	op, ok := m.prompt("operation (insert, delete, search): ")
	if !ok {
		return nil
	}
	return report.Comparison(m.out, m.app.catalog, op, m.app.reportOptions(m.out))
}

func (m *menu) structure() (string, bool) {
	s, ok := m.prompt("structure (stack, queue, linked_list): ")
	return complexity.Normalize(s), ok
}

func (m *menu) predict() error {
	s, ok := m.structure()
	if !ok {
		return nil
	}
	op, ok := m.prompt("operation: ")
	if !ok {
		return nil
	}
	raw, ok := m.prompt("input size n: ")
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fmt.Errorf("input size must be a non-negative integer, got %q", raw)
	}
	p, err := m.app.catalog.Predict(s, n, op)
	if err != nil {
		return err
	}
	return report.Prediction(m.out, p, m.app.reportOptions(m.out))
}

func (m *menu) explain() error {
	s, ok := m.structure()
	if !ok {
		return nil
	}
	op, ok := m.prompt("operation: ")
	if !ok {
		return nil
	}
	r, err := m.app.catalog.Get(s, op)
	if err != nil {
		return err
	}
	return report.Explain(m.out, r, m.app.reportOptions(m.out))
}

func (m *menu) recommend() error {
	useCase, ok := m.prompt("use case (e.g. undo, scheduling, frequent middle inserts): ")
	if !ok {
		return nil
	}
	return report.Recommendations(m.out, useCase, complexity.Recommend(useCase), m.app.reportOptions(m.out))
}

// quickBench runs the configured workloads at quickSizes without touching
// the loaded configuration.
func (m *menu) quickBench(cmd *cobra.Command) error {
	quick := *m.app
	quick.cfg.Bench.Sizes = quickSizes
	quick.cfg.Bench.Iterations = min(quick.cfg.Bench.Iterations, 5)

	h, err := quick.sweep(cmd.Context())
	if h == nil {
		return err
	}
	if werr := quick.writeOutputs(m.out, h, false); werr != nil {
		return werr
	}
	return err
}
