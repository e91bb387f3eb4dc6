// Package logger provides colorized package-level logging functions.
package logger

import (
	"github.com/fatih/color"
)

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in yellow.
var Warn = color.New(color.FgYellow).PrintfFunc()

// Error logs error messages in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs diagnostic messages in cyan when enabled, otherwise is a no-op.
// Assigned by Init based on the --debug flag.
var Debug func(format string, a ...any)

func init() {
	Init(false)
}

// Init enables or disables debug logging.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
