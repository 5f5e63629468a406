// Package ui holds the terminal presentation of the CLI: status lines,
// confirmation prompts and Markdown previews.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#6C7A89")
)

// Styles are the text styles used for status output.
var Styles = struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(colorSuccess),
	Warning: lipgloss.NewStyle().Foreground(colorWarning),
	Error:   lipgloss.NewStyle().Foreground(colorError),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
}

const (
	iconOK   = "✓"
	iconSkip = "•"
	iconFail = "✗"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes status lines. Styling is applied only when Color is set.
type Printer struct {
	Out   io.Writer
	Color bool
}

// NewPrinter styles output when out is a terminal.
func NewPrinter(out io.Writer) *Printer {
	f, _ := out.(*os.File)
	return &Printer{Out: out, Color: IsTerminal(f)}
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.Color {
		return text
	}
	return s.Render(text)
}

// Title prints a bold heading line.
func (p *Printer) Title(format string, args ...any) {
	fmt.Fprintln(p.Out, p.style(Styles.Title, fmt.Sprintf(format, args...)))
}

// Success prints a line marked as done.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", p.style(Styles.Success, iconOK), fmt.Sprintf(format, args...))
}

// Skipped prints a muted line for work that was not needed.
func (p *Printer) Skipped(format string, args ...any) {
	fmt.Fprintln(p.Out, p.style(Styles.Muted, iconSkip+" "+fmt.Sprintf(format, args...)))
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", p.style(Styles.Warning, "!"), fmt.Sprintf(format, args...))
}

// Error prints a failure line.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", p.style(Styles.Error, iconFail), fmt.Sprintf(format, args...))
}
