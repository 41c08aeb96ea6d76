// Package report renders harness results, growth ratios and catalog data
// as terminal text.
//
// Every renderer takes an Options value. Styled output uses lipgloss colors
// and rounded borders; plain output uses ASCII borders and no escape codes,
// for pipes, files and tests. The caller decides which (the CLI checks
// whether stdout is a terminal).
package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/randomizedcoder/adt-complexity-bench/internal/growth"
)

// Palette
var (
	ColorAccent  = lipgloss.Color("#20B9B4")
	ColorBorder  = lipgloss.Color("#16858E")
	ColorSuccess = lipgloss.Color("#2CD7C7")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#5C7A84")
)

// Styles are the pre-configured styles used in styled mode.
var Styles = struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Border  lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Header:  lipgloss.NewStyle().Bold(true).Foreground(ColorAccent).Padding(0, 1),
	Cell:    lipgloss.NewStyle().Padding(0, 1),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Border:  lipgloss.NewStyle().Foreground(ColorBorder),
}

var plainCell = lipgloss.NewStyle().Padding(0, 1)

// Options control rendering.
type Options struct {
	// Styled enables colors and rounded borders.
	Styled bool

	// Analyzer classifies growth ratios. Nil uses the zero Analyzer.
	Analyzer *growth.Analyzer
}

func (o Options) analyzer() *growth.Analyzer {
	if o.Analyzer == nil {
		return &growth.Analyzer{}
	}
	return o.Analyzer
}

func (o Options) title(s string) string {
	if o.Styled {
		return Styles.Title.Render(s)
	}
	return s
}

func (o Options) muted(s string) string {
	if o.Styled {
		return Styles.Muted.Render(s)
	}
	return s
}

// verdict renders a yes/no cell, colored in styled mode.
func (o Options) verdict(ok bool) string {
	s := "no"
	if ok {
		s = "yes"
	}
	if !o.Styled {
		return s
	}
	if ok {
		return Styles.Success.Render(s)
	}
	return Styles.Warning.Render(s)
}

// newTable builds a table with the option's border and header styles.
func (o Options) newTable(headers ...string) *table.Table {
	t := table.New().Headers(headers...)
	if !o.Styled {
		return t.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(row, col int) lipgloss.Style { return plainCell })
	}
	return t.Border(lipgloss.RoundedBorder()).
		BorderStyle(Styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Styles.Header
			}
			return Styles.Cell
		})
}
