// Package logging provides centralized log level validation for workerctl.
//
// This file defines the canonical set of valid log levels used by the CLI
// flag handling and configuration validation. Centralizing validation keeps
// the accepted levels in one place.
//
// SUPPORTED LOG LEVELS:
//   - DEBUG: Detailed debugging information, including captured tool output
//   - INFO:  General progress information about provisioning steps
//   - WARN:  Warning conditions that should be noted but don't stop the run
//   - ERROR: Error conditions that abort the run
//
// All log level strings are case-sensitive and must be uppercase.
package logging

import "fmt"

// ValidLogLevels defines the canonical set of supported log levels. This map
// is the single source of truth for log level validation in CLI flag
// processing and configuration checks.
var ValidLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

// IsValidLogLevel checks if the provided log level string is supported.
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[level]
}

// ValidateLogLevel validates a log level string and returns an error if
// invalid. Used by CLI flag processing to catch bad levels early with a
// clear error message.
func ValidateLogLevel(level string) error {
	if !IsValidLogLevel(level) {
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}
