package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format selects how command results are printed.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an --output flag value.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", raw)
	}
}

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	headerColor  = color.New(color.FgWhite, color.Bold)
)

// ToneColor maps a status tone to the color its rows are printed in.
// Unknown tones are printed plain.
func ToneColor(tone string) *color.Color {
	switch tone {
	case "success":
		return successColor
	case "warning":
		return warnColor
	case "info":
		return infoColor
	default:
		return nil
	}
}

// Printer writes command results in the selected format.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	format Format
}

// NewPrinter returns a Printer writing results to out and failures to errOut.
func NewPrinter(out, errOut io.Writer, format Format) *Printer {
	return &Printer{out: out, errOut: errOut, format: format}
}

// Format returns the selected output format.
func (p *Printer) Format() Format {
	return p.format
}

func (p *Printer) Success(format string, a ...any) {
	successColor.Fprintf(p.out, "✓ "+format+"\n", a...)
}

func (p *Printer) Error(format string, a ...any) {
	errorColor.Fprintf(p.errOut, "✗ "+format+"\n", a...)
}

func (p *Printer) Info(format string, a ...any) {
	infoColor.Fprintf(p.out, format+"\n", a...)
}

func (p *Printer) Warn(format string, a ...any) {
	warnColor.Fprintf(p.out, "⚠ "+format+"\n", a...)
}

// Render prints v as JSON or YAML, or calls table for the table format.
func (p *Printer) Render(v any, table func() *Table) error {
	switch p.format {
	case FormatJSON:
		return p.JSON(v)
	case FormatYAML:
		return p.YAML(v)
	default:
		table().Render(p.out)
		return nil
	}
}

func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML prints v using its JSON field names, so API and CLI documents match.
func (p *Printer) YAML(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}

	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

type row struct {
	cells []string
	style *color.Color
}

type Table struct {
	headers []string
	rows    []row
}

func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, row{cells: cells})
}

// AddStyledRow adds a row printed in style. A nil style prints plain.
func (t *Table) AddStyledRow(style *color.Color, cells ...string) {
	t.rows = append(t.rows, row{cells: cells, style: style})
}

func (t *Table) Render(w io.Writer) {
	// Calculate column widths
	widths := make([]int, len(t.headers))
	for i, header := range t.headers {
		widths[i] = len(header)
	}

	for _, r := range t.rows {
		for i, cell := range r.cells {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, header := range t.headers {
		headerColor.Fprintf(w, "%-*s  ", widths[i], header)
	}
	fmt.Fprintln(w)

	for i := range t.headers {
		fmt.Fprint(w, strings.Repeat("-", widths[i])+"  ")
	}
	fmt.Fprintln(w)

	for _, r := range t.rows {
		for i, cell := range r.cells {
			if i >= len(widths) {
				break
			}
			padded := fmt.Sprintf("%-*s  ", widths[i], cell)
			if r.style != nil {
				r.style.Fprint(w, padded)
				continue
			}
			fmt.Fprint(w, padded)
		}
		fmt.Fprintln(w)
	}
}
