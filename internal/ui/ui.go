// Package ui renders cargo-stitch's human-facing output: aligned tables
// and the colored accents used by doctor checks.
package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Pass renders a passing check result.
func Pass(msg string) string { return successStyle.Render(msg) }

// Fail renders a failing check result.
func Fail(msg string) string { return failureStyle.Render(msg) }

// Dim renders de-emphasized detail text.
func Dim(msg string) string { return dimStyle.Render(msg) }

// Table renders rows of data in aligned columns.
type Table struct {
	w *tabwriter.Writer
}

// NewTable creates a table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = headerStyle.Render(h)
	}
	_, _ = fmt.Fprintln(tw, strings.Join(cells, "\t"))
	return &Table{w: tw}
}

// Row appends a row of values. The number of values should match the
// number of headers.
func (t *Table) Row(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Flush writes the buffered output.
func (t *Table) Flush() error {
	return t.w.Flush()
}
