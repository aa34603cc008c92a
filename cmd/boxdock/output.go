package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorTeal   = lipgloss.Color("#20B9B4")
	colorBright = lipgloss.Color("#2CD7C7")
	colorSlate  = lipgloss.Color("#2C4A54")
	colorAmber  = lipgloss.Color("#F4D03F")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorBright)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorSlate)
	warnStyle   = lipgloss.NewStyle().Foreground(colorAmber)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSlate).Padding(0, 1)
)

// printer writes command results. Output is styled only when it goes to a
// terminal, so piped output stays plain and parseable.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer) *printer {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &printer{w: w, styled: styled}
}

func (p *printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p *printer) title(text string) {
	fmt.Fprintln(p.w, p.render(titleStyle, text))
}

func (p *printer) field(label, value string) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(headerStyle, label+":"), value)
}

func (p *printer) warn(text string) {
	fmt.Fprintln(p.w, p.render(warnStyle, text))
}

func (p *printer) text(s string) {
	fmt.Fprint(p.w, s)
	if !strings.HasSuffix(s, "\n") {
		fmt.Fprintln(p.w)
	}
}

// table prints rows in aligned columns. Columns are padded before styling
// so escape codes do not skew the widths.
func (p *printer) table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], len(cell))
			}
		}
	}

	var b strings.Builder
	b.WriteString(p.line(headers, widths, headerStyle))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(p.line(row, widths, lipgloss.NewStyle()))
	}

	if p.styled {
		fmt.Fprintln(p.w, boxStyle.Render(b.String()))
		return
	}
	fmt.Fprintln(p.w, b.String())
}

func (p *printer) line(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		padded := cell
		if i < len(cells)-1 && i < len(widths) {
			padded = fmt.Sprintf("%-*s", widths[i], cell)
		}
		if cell == "-" {
			parts[i] = p.render(mutedStyle, padded)
		} else {
			parts[i] = p.render(style, padded)
		}
	}
	return strings.Join(parts, "  ")
}

// formatNum prints v rounded to four decimals without trailing zeros.
func formatNum(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
