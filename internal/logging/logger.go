// Package logging provides colored, leveled diagnostics for the reltime CLI.
//
// Every line goes to stderr so stdout carries only resolved instants and
// can be piped. Debug output is suppressed unless verbose mode is enabled
// via SetVerbose(true). Colors follow fatih/color, which honors NO_COLOR.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	verbose bool
)

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	sectionPrefix = color.New(color.FgCyan).SprintFunc()
	debugPrefix   = color.New(color.FgMagenta).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Verbose reports whether Debug output is enabled.
func Verbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput redirects all log lines to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func emit(line string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, line)
}

// Info prints an informational message in blue.
func Info(msg string) {
	emit(infoPrefix("[INFO]") + " " + msg)
}

// Success prints a success message in green.
func Success(msg string) {
	emit(successPrefix("[SUCCESS]") + " " + msg)
}

// Warn prints a warning in yellow.
func Warn(msg string) {
	emit(warnPrefix("[WARN]") + " " + msg)
}

// Error prints an error in red.
func Error(msg string) {
	emit(errorPrefix("[ERROR]") + " " + msg)
}

// Section prints a header in cyan between separator lines.
func Section(msg string) {
	sep := sectionPrefix("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	emit(sep)
	emit(sectionPrefix("[RELTIME]") + " " + msg)
	emit(sep)
}

// Debug prints a message only when verbose mode is enabled.
func Debug(msg string) {
	if !Verbose() {
		return
	}
	emit(debugPrefix("[DEBUG]") + " " + msg)
}

// FormatDuration converts a duration in seconds to a human-readable string.
//
// Examples:
//
//	FormatDuration(0)     => "0s"
//	FormatDuration(90)    => "1m 30s"
//	FormatDuration(3661)  => "1h 1m 1s"
//	FormatDuration(90061) => "1d 1h 1m 1s"
func FormatDuration(seconds int) string {
	if seconds < 0 {
		return "-" + FormatDuration(-seconds)
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	if seconds < 86400 {
		return fmt.Sprintf("%dh %dm %ds", seconds/3600, (seconds%3600)/60, seconds%60)
	}
	return fmt.Sprintf("%dd %dh %dm %ds", seconds/86400, (seconds%86400)/3600, (seconds%3600)/60, seconds%60)
}
