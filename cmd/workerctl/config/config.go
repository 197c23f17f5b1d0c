// Package config provides configuration management for the workerctl CLI.
//
// This package holds the global CLI state populated from command line flags,
// environment variables, and interactive prompts. Flag values are validated
// before the provisioning pipeline runs so invalid input aborts before any
// filesystem or Docker state is touched.
//
// CONFIGURATION SOURCES (highest precedence first):
//   - Command line flags (--index, --api-key, ...)
//   - Environment variables (WORKERCTL_API_KEY)
//   - Interactive prompts for anything still missing
package config

import (
	internalconfig "github.com/0xLogan-x/allora-worker/internal/config"
)

const (
	// DefaultWaitTimeout bounds the post-launch inference health wait
	DefaultWaitTimeout = 120 // seconds

	// APIKeyEnvVar names the environment variable consulted for the data
	// API key before prompting
	APIKeyEnvVar = "WORKERCTL_API_KEY"
)

// Config holds all CLI configuration values
type Config struct {
	Index         string // Worker index; prompted when empty
	MnemonicFile  string // File holding the wallet mnemonic; prompted when empty
	APIKey        string // Data API key; env/prompt fallback when empty
	WalletKeyName string // Wallet key name for config bootstrap

	BaseDir string // Provisioning root directory
	Network string // Shared Docker network name

	NoLaunch    bool   // Skip docker compose up
	Wait        bool   // Poll inference health after launch
	WaitTimeout int    // Health wait budget in seconds
	Output      string // Summary format: table or json
	LogLevel    string // Log level: DEBUG, INFO, WARN, ERROR
}

// Global configuration instance
var Global = Config{
	BaseDir:     internalconfig.DefaultBaseDir,
	Network:     internalconfig.DefaultDockerNetwork,
	WaitTimeout: DefaultWaitTimeout,
	Output:      "table",
	LogLevel:    internalconfig.DefaultLogLevel,
}
