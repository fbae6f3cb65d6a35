package utils

import (
	"fmt"
	"io"
	"os"
)

// Color output helpers
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// Printer writes user-facing status lines to a writer
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) print(color, symbol, msg string, args ...interface{}) {
	line := fmt.Sprintf(msg, args...)
	if p.color {
		fmt.Fprintf(p.w, "%s%s %s%s\n", color, symbol, line, ColorReset)
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", symbol, line)
}

// Success prints a success message
func (p *Printer) Success(msg string, args ...interface{}) {
	p.print(ColorGreen, "✓", msg, args...)
}

// Error prints an error message
func (p *Printer) Error(msg string, args ...interface{}) {
	p.print(ColorRed, "✗", msg, args...)
}

// Info prints an info message
func (p *Printer) Info(msg string, args ...interface{}) {
	p.print(ColorCyan, "ℹ", msg, args...)
}

// Warning prints a warning message
func (p *Printer) Warning(msg string, args ...interface{}) {
	p.print(ColorYellow, "⚠", msg, args...)
}

// Plain prints a line without decoration
func (p *Printer) Plain(msg string, args ...interface{}) {
	fmt.Fprintf(p.w, msg+"\n", args...)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
