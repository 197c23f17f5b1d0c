// Package commands contains Cobra CLI command definitions for workerctl.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/0xLogan-x/allora-worker/cmd/workerctl/config"
)

// SetupFlags configures all command line flags for the provisioning pipeline
func SetupFlags(cmd *cobra.Command) {
	// Worker identity flags
	cmd.Flags().StringVar(&config.Global.Index, "index", "",
		"Worker index used to namespace the data directory and service (prompted when omitted)")
	cmd.Flags().StringVar(&config.Global.MnemonicFile, "mnemonic-file", "",
		"Path to a file holding the wallet mnemonic (prompted without echo when omitted)")
	cmd.Flags().StringVar(&config.Global.APIKey, "api-key", "",
		"Inference data API key (falls back to "+config.APIKeyEnvVar+", then prompts)")
	cmd.Flags().StringVar(&config.Global.WalletKeyName, "wallet-key-name", "",
		"Wallet key name written into config.json when the field is unset")

	// Workspace flags
	cmd.Flags().StringVar(&config.Global.BaseDir, "base-dir", config.Global.BaseDir,
		"Directory where generated artifacts are written")
	cmd.Flags().StringVar(&config.Global.Network, "network", config.Global.Network,
		"Shared Docker network joined by all generated services (created when missing)")

	// Launch flags
	cmd.Flags().BoolVar(&config.Global.NoLaunch, "no-launch", false,
		"Generate all artifacts but skip docker compose up")
	cmd.Flags().BoolVar(&config.Global.Wait, "wait", false,
		"After launch, wait for the inference service to answer its health probe")
	cmd.Flags().IntVar(&config.Global.WaitTimeout, "wait-timeout", config.Global.WaitTimeout,
		"Health wait budget in seconds (used with --wait)")

	// Output flags
	cmd.Flags().StringVarP(&config.Global.Output, "output", "o", config.Global.Output,
		"Summary format: table, json")
	cmd.Flags().StringVar(&config.Global.LogLevel, "log-level", config.Global.LogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
}
