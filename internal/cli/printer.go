package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles holds lipgloss styles for terminal output
type Styles struct {
	Number  lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Key     lipgloss.Style
	Dim     lipgloss.Style
}

// Printer writes command output, styling it only when writing to a terminal
type Printer struct {
	w      io.Writer
	errW   io.Writer
	styles *Styles
}

// NewPrinter creates a new Printer. Colors are enabled when isTTY is true.
func NewPrinter(w io.Writer, isTTY bool) *Printer {
	styles := &Styles{
		Number:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")), // Bright cyan
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),            // Yellow
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),            // Green
		Key:     lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}

	if !isTTY {
		styles.Number = lipgloss.NewStyle()
		styles.Warning = lipgloss.NewStyle()
		styles.Success = lipgloss.NewStyle()
		styles.Key = lipgloss.NewStyle()
		styles.Dim = lipgloss.NewStyle()
	}

	return &Printer{
		w:      w,
		errW:   w,
		styles: styles,
	}
}

// WithStderr sets a separate writer for warnings
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Printf writes a formatted line fragment
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Println writes its arguments followed by a newline
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// Success writes a highlighted confirmation line
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Warn writes a warning line to the warning writer
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), fmt.Sprintf(format, args...))
}

// Number renders a quantity in the highlight style
func (p *Printer) Number(n int) string {
	return p.styles.Number.Render(fmt.Sprintf("%d", n))
}

// Field writes one "Key: value" line
func (p *Printer) Field(key, value string) {
	fmt.Fprintf(p.w, "%s: %s\n", p.styles.Key.Render(key), value)
}

// Separator writes the divider printed between records
func (p *Printer) Separator() {
	fmt.Fprintln(p.w, p.styles.Dim.Render("---"))
}
