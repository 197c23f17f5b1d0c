// Package logging provides structured, colorful logging utilities for worker
// provisioning operations, ensuring consistent log formatting and visual
// clarity across all workerctl components.
//
// Implements a unified logging interface that standardizes log output from the
// CLI pipeline and from invoked external tools (Docker CLI, compose plugin).
// Uses color-coded log levels and consistent timestamp formatting to improve
// operational visibility during provisioning runs.
//
// LOGGING FEATURES:
//   - Color-coded levels: DEBUG (purple), INFO (blue), WARN (yellow), ERROR (red), SUCCESS (green)
//   - Process capture: Routes Docker CLI output through the unified system with a source prefix
//   - Flexible output: Configurable log levels and output suppression for scripted usage
//
// Used throughout the provisioning pipeline so that preflight checks, template
// emission, config bootstrap, and stack launch all share one log format.
package logging

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	// Logger for INFO/SUCCESS messages (stdout by default, follows Unix conventions)
	stdoutLogger = log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})

	// Logger for WARN/ERROR/DEBUG messages (stderr by default, follows Unix conventions)
	stderrLogger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
)

// setupCustomStyles creates custom color styling for log levels with distinct
// colors for each level to improve visual parsing of provisioning output.
//
// Colors are chosen to work in both light and dark terminals while keeping
// the output readable when redirected to a file.
func setupCustomStyles() *log.Styles {
	styles := log.DefaultStyles()

	// DEBUG: light purple
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))

	// INFO: light blue
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("#42E7FF"))

	// WARN: light yellow
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))

	// ERROR: light red/pink
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))

	return styles
}

// init sets up custom color styling on package initialization for consistent
// visual formatting across all workerctl output.
func init() {
	styles := setupCustomStyles()
	stdoutLogger.SetStyles(styles)
	stderrLogger.SetStyles(styles)
}

// Info logs informational messages for pipeline progress and status updates.
// Uses stdout following Unix conventions.
func Info(format string, v ...any) {
	stdoutLogger.Info(fmt.Sprintf(format, v...))
}

// Warn logs warning messages for non-critical issues requiring attention.
// Uses stderr following Unix conventions.
func Warn(format string, v ...any) {
	stderrLogger.Warn(fmt.Sprintf(format, v...))
}

// Error logs error messages for failures in provisioning operations.
// Uses stderr following Unix conventions.
func Error(format string, v ...any) {
	stderrLogger.Error(fmt.Sprintf(format, v...))
}

// Success logs successful operations in green using INFO level with custom
// styling. Uses stdout following Unix conventions. Implements a custom
// SUCCESS level that respects INFO level filtering.
func Success(format string, v ...any) {
	// Success uses INFO level internally, so honor INFO suppression
	if stdoutLogger.GetLevel() > log.InfoLevel {
		return
	}

	styles := setupCustomStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Foreground(lipgloss.Color("#60F281")) // Light green

	tempLogger := log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	tempLogger.SetStyles(styles)

	tempLogger.Info(fmt.Sprintf(format, v...))
}

// Debug logs detailed debugging information for development and troubleshooting.
// Uses stderr following Unix conventions.
func Debug(format string, v ...any) {
	stderrLogger.Debug(fmt.Sprintf(format, v...))
}

// SetLevel configures the minimum logging level for filtering log output.
// Accepts standard level strings (DEBUG, INFO, WARN, ERROR) and applies
// filtering to both output streams. Unknown levels fall back to INFO.
func SetLevel(level string) {
	var logLevel log.Level
	switch level {
	case "DEBUG":
		logLevel = log.DebugLevel
	case "INFO":
		logLevel = log.InfoLevel
	case "WARN":
		logLevel = log.WarnLevel
	case "ERROR":
		logLevel = log.ErrorLevel
	default:
		logLevel = log.InfoLevel
	}

	stdoutLogger.SetLevel(logLevel)
	stderrLogger.SetLevel(logLevel)
}

// SuppressOutput disables INFO/WARN/DEBUG logs while keeping ERROR logs
// visible. Used when the summary is emitted as JSON so machine-readable
// output is not interleaved with progress logs.
func SuppressOutput() {
	stdoutLogger.SetLevel(log.ErrorLevel)
	stderrLogger.SetLevel(log.ErrorLevel)
}

// ============================================================================
// PROCESS LOG INTEGRATION - Capture and reformat external tool output
// ============================================================================

// ProcessWriter captures output from invoked external tools (docker, compose)
// and routes each line through the unified logging system with a source
// prefix, keeping provisioning logs in one consistent format.
type ProcessWriter struct {
	reader *io.PipeReader
	writer *io.PipeWriter
}

// NewProcessWriter creates a writer that reformats external tool output.
// The source name (e.g. "docker") prefixes every captured line.
func NewProcessWriter(source string) *ProcessWriter {
	r, w := io.Pipe()
	pw := &ProcessWriter{
		reader: r,
		writer: w,
	}

	// Process captured lines in the background for the life of the command
	go pw.processLines(source)

	return pw
}

// Write implements io.Writer for capturing external process output.
func (pw *ProcessWriter) Write(p []byte) (n int, err error) {
	return pw.writer.Write(p)
}

// Close closes the writer and stops line processing.
func (pw *ProcessWriter) Close() error {
	return pw.writer.Close()
}

// processLines re-emits each captured line through the colored logger at
// DEBUG level so verbose tool output is available when troubleshooting but
// silent during normal runs.
func (pw *ProcessWriter) processLines(source string) {
	scanner := bufio.NewScanner(pw.reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		Debug("(%s) %s", source, line)
	}
}
