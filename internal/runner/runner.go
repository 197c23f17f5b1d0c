// Package runner provides a thin abstraction over external process execution
// for workerctl. All Docker CLI interaction goes through the Runner interface
// so pipeline components can be exercised in tests with a fake runner instead
// of a live Docker daemon.
//
// The system implementation streams process output through the logging
// package at DEBUG level, keeping provisioning logs in one format.
package runner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/0xLogan-x/allora-worker/internal/logging"
)

// Runner executes external commands. Implementations must honor context
// cancellation for long-running commands like compose builds.
type Runner interface {
	// Run executes a command, discarding output except for logging.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes a command and returns its combined trimmed output.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// LookPath reports whether an executable is available on PATH.
	LookPath(name string) (string, error)
}

// SystemRunner executes commands against the host system via os/exec.
type SystemRunner struct{}

// NewSystemRunner returns a Runner backed by the host system.
func NewSystemRunner() *SystemRunner {
	return &SystemRunner{}
}

// Run executes the command, routing stdout and stderr through the unified
// logging system with the command name as the source prefix.
func (r *SystemRunner) Run(ctx context.Context, name string, args ...string) error {
	logging.Debug("exec: %s %s", name, strings.Join(args, " "))

	pw := logging.NewProcessWriter(name)
	defer pw.Close()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// Output executes the command and returns its combined output with
// surrounding whitespace trimmed.
func (r *SystemRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	logging.Debug("exec: %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// LookPath resolves an executable on PATH.
func (r *SystemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
