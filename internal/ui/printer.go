package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/mdconv/internal/format"
)

// Printer writes human readable command output.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a printer that styles output when w is a color terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w, color: ColorEnabled(w)}
}

// NewPlainPrinter creates a printer that never styles output.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{out: w}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// Println writes an unstyled line.
func (p *Printer) Println(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success writes a line marked as successful.
func (p *Printer) Success(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.render(SuccessStyle, "✓ "+fmt.Sprintf(format, args...)))
}

// Failure writes a line marked as failed.
func (p *Printer) Failure(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.render(FailureStyle, "✗ "+fmt.Sprintf(format, args...)))
}

// Warning writes a highlighted line.
func (p *Printer) Warning(format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.render(WarningStyle, fmt.Sprintf(format, args...)))
}

// FormatTable writes descriptors as aligned columns, one per line.
func (p *Printer) FormatTable(descriptors []*format.Descriptor) {
	if len(descriptors) == 0 {
		fmt.Fprintln(p.out, p.render(MutedStyle, "No formats registered."))
		return
	}

	header := []string{"NAME", "VERSION", "TYPE", "MIME TYPE", "SCHEMA"}
	rows := make([][]string, 0, len(descriptors))
	for _, d := range descriptors {
		schema := "-"
		if d.IsXML() && d.XSDURL() != "" {
			schema = d.XSDURL()
		}
		rows = append(rows, []string{d.Name(), d.Version(), d.Type().String(), d.MimeType(), schema})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := len([]rune(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	fmt.Fprintln(p.out, p.render(HeadingStyle, joinRow(header, widths)))
	for _, row := range rows {
		fmt.Fprintln(p.out, joinRow(row, widths))
	}
}

func joinRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 {
			padded[i] = cell
			continue
		}
		padded[i] = cell + strings.Repeat(" ", widths[i]-len([]rune(cell)))
	}
	return strings.Join(padded, "  ")
}
