// Package common provides small leveled logging helpers shared by the CLI
// and the display backends. It is independent of the solver's display.Sink
// protocol: this package is for operator-facing diagnostics, Sink is for the
// solving animation.
package common

import (
	"fmt"
	"os"
)

// VerboseEnabled controls whether Verbose output is shown. Set from the
// CLI's --verbose flag.
var VerboseEnabled = false

// Info prints a message to stdout (always shown, regardless of verbose mode).
func Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Println(message)
}

// Verbose prints a message only when verbose mode is enabled.
func Verbose(format string, args ...interface{}) {
	if VerboseEnabled {
		message := fmt.Sprintf("[verbose] "+format, args...)
		fmt.Println(message)
	}
}

// Warning prints a warning message to stdout (always shown).
func Warning(format string, args ...interface{}) {
	message := fmt.Sprintf("warning: "+format, args...)
	fmt.Println(message)
}

// Error prints an error message to stderr (always shown).
func Error(format string, args ...interface{}) {
	message := fmt.Sprintf("error: "+format, args...)
	fmt.Fprintln(os.Stderr, message)
}
