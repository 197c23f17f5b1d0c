// Package commands provides the CLI command structure for workerctl.
//
// This package implements the root command for the worker provisioning tool.
// workerctl is intentionally a single-command pipeline: preflight checks,
// credential collection, workspace scaffolding, compose generation, config
// bootstrap, and stack launch run in one linear pass with fail-fast error
// handling.
//
// COMMAND ARCHITECTURE:
//   - Root Command: Full provisioning pipeline with flag and prompt input
//   - Flag System: Worker identity, credentials, launch behavior, output
//   - Validation Pipeline: Pre-execution flag validation before any state change
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xLogan-x/allora-worker/cmd/workerctl/config"
	"github.com/0xLogan-x/allora-worker/cmd/workerctl/display"
	"github.com/0xLogan-x/allora-worker/internal/logging"
	"github.com/0xLogan-x/allora-worker/internal/prompt"
	"github.com/0xLogan-x/allora-worker/internal/provision"
	"github.com/0xLogan-x/allora-worker/internal/runner"
	"github.com/0xLogan-x/allora-worker/internal/version"
)

// Root command for workerctl
var RootCmd = &cobra.Command{
	Use:   "workerctl",
	Short: "Provision Allora inference worker nodes on this host",
	Long: `workerctl provisions blockchain inference worker nodes.

It collects operator credentials, scaffolds a per-worker data directory,
generates a Docker Compose stack with a sample inference microservice,
bootstraps the worker configuration document, and launches the stack.

Running workerctl again with a different index adds another worker to the
same stack; shared artifacts (.env, config.json, the inference skeleton)
are created once and reused.`,
	Version:      version.WorkerctlVersion,
	SilenceUsage: true, // Don't show usage on errors
	Example: `  # Fully interactive provisioning of worker 1
  workerctl

  # Non-interactive provisioning
  WORKERCTL_API_KEY=CG-xxx workerctl --index=1 --mnemonic-file=./mnemonic

  # Generate everything but do not launch the stack
  workerctl --index=2 --no-launch

  # Launch and wait for the inference service to answer
  workerctl --index=1 --wait --wait-timeout=180

  # Machine-readable summary
  workerctl --index=1 --no-launch --output=json`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The banner would corrupt machine-readable output
		if config.Global.Output != "json" {
			display.Banner(version.WorkerctlVersion)
		}
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Configure logging level immediately after flags are parsed
		logging.SetLevel(config.Global.LogLevel)

		// JSON output must stay parseable, so progress logs are suppressed
		if config.Global.Output == "json" {
			logging.SuppressOutput()
		}

		return config.ValidateConfig()
	},
	RunE: runProvision,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	SetupFlags(RootCmd)
}

// runProvision assembles pipeline options from flags and environment, runs
// the provisioning pipeline, and prints the summary.
func runProvision(cmd *cobra.Command, args []string) error {
	// Ctrl+C aborts long compose builds cleanly
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	mnemonic := ""
	if config.Global.MnemonicFile != "" {
		data, err := os.ReadFile(config.Global.MnemonicFile)
		if err != nil {
			return fmt.Errorf("failed to read mnemonic file: %w", err)
		}
		mnemonic = string(data)
	}

	apiKey := config.Global.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(config.APIKeyEnvVar)
	}

	opts := provision.Options{
		Index:         config.Global.Index,
		Mnemonic:      mnemonic,
		APIKey:        apiKey,
		WalletKeyName: config.Global.WalletKeyName,
		BaseDir:       config.Global.BaseDir,
		Network:       config.Global.Network,
		Launch:        !config.Global.NoLaunch,
		Wait:          config.Global.Wait,
		WaitTimeout:   time.Duration(config.Global.WaitTimeout) * time.Second,
		Runner:        runner.NewSystemRunner(),
		Prompter:      prompt.New(),
	}

	summary, err := provision.Run(ctx, opts)
	if err != nil {
		return err
	}

	return display.Summary(summary, config.Global.Output)
}
