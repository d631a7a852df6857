package printer

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Success prints a success message in green with a checkmark prefix.
func Success(format string, a ...any) {
	green.Printf("✓ "+format, a...)
}

// Info prints an informational message in the default color.
func Info(format string, a ...any) {
	fmt.Printf(format, a...)
}

// Heading prints a section heading in cyan.
func Heading(format string, a ...any) {
	cyan.Printf(format, a...)
}

// Warning prints a warning message in yellow.
func Warning(format string, a ...any) {
	yellow.Printf("⚠️  "+format, a...)
}

// Error prints an error message in red to stderr and returns a plain
// error for Cobra (not printed again due to SilenceErrors).
func Error(format string, a ...any) error {
	red.Fprintf(os.Stderr, format+"\n", a...)
	return fmt.Errorf(format, a...)
}
