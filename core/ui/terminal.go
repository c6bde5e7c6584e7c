// Package ui - Terminal output for the catalogue
// Headers, tables and price trees with optional colors.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor,
		verbosity: 1,
	}
}

// Out exposes the underlying writer for code that prints on its own.
func (w *Writer) Out() io.Writer {
	return w.out
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...any) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(Green, "✓ "), msg)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(Yellow, "⚠ "), msg)
}

// Error prints an error
func (w *Writer) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(Red, "✗ "), msg)
}

// Info prints an info message
func (w *Writer) Info(format string, args ...any) {
	if w.verbosity < 1 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println("%s%s", w.color(Blue, "ℹ "), msg)
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...any) {
	if w.verbosity < 2 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Dim, "  "+msg))
}

// Block prints a multi-line value indented under the current section
func (w *Writer) Block(text string) {
	for _, line := range strings.Split(text, "\n") {
		w.Println("    %s", line)
	}
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	format := ""
	for i, w := range t.widths {
		if i > 0 {
			format += " │ "
		}
		format += fmt.Sprintf("%%-%ds", w)
	}

	headerArgs := make([]any, len(t.headers))
	for i, h := range t.headers {
		headerArgs[i] = h
	}
	t.w.Println("%s", t.w.color(Bold, strings.TrimRight(fmt.Sprintf(format, headerArgs...), " ")))

	sep := ""
	for i, w := range t.widths {
		if i > 0 {
			sep += "─┼─"
		}
		sep += strings.Repeat("─", w)
	}
	t.w.Println("%s", sep)

	for _, row := range t.rows {
		args := make([]any, len(row))
		for i, cell := range row {
			args[i] = cell
		}
		t.w.Println("%s", strings.TrimRight(fmt.Sprintf(format, args...), " "))
	}
}

// PriceLine is one row of a rendered price tree
type PriceLine struct {
	Name  string
	Depth int
	Price string
	Group bool
}

// PriceTree renders a bill of materials followed by its total
type PriceTree struct {
	w        *Writer
	Lines    []PriceLine
	Total    string
	Currency string
}

// NewPriceTree creates a price tree view
func (w *Writer) NewPriceTree(currency string) *PriceTree {
	return &PriceTree{w: w, Currency: currency}
}

// Add appends a row
func (p *PriceTree) Add(name string, depth int, price string, group bool) {
	p.Lines = append(p.Lines, PriceLine{Name: name, Depth: depth, Price: price, Group: group})
}

// Render prints every row, then the total
func (p *PriceTree) Render() {
	for _, l := range p.Lines {
		indent := strings.Repeat("  ", l.Depth)
		name := l.Name
		if l.Group {
			name = p.w.color(Bold, name)
		}
		p.w.Println("%s%s  %s", indent, name, p.w.color(Dim, l.Price+" "+p.Currency))
	}
	p.w.Println("%s", strings.Repeat("─", 40))
	p.w.Println("%s%s", p.w.color(Bold, "Total: "), p.w.color(Green, p.Total+" "+p.Currency))
}
