// Package config provides common default configuration values shared across
// workerctl components (workspace scaffolding, compose generation, config
// bootstrap). This centralizes configuration management and ensures the
// generated artifacts agree on names and paths.
package config

const (
	// DefaultBaseDir is the default provisioning root directory
	// All generated artifacts land under this directory
	DefaultBaseDir = "."

	// DefaultLogLevel is the default log level for all components
	// INFO provides good balance of visibility without verbose debug output
	DefaultLogLevel = "INFO"

	// DefaultDockerNetwork is the shared Docker network joined by every
	// generated service; created idempotently before the stack launches
	DefaultDockerNetwork = "allora-net"

	// DataDirPrefix namespaces per-worker data directories (worker-data-<index>)
	DataDirPrefix = "worker-data-"

	// WorkerServicePrefix namespaces compose services (worker-<index>)
	WorkerServicePrefix = "worker-"

	// ComposeFileName is the generated compose manifest at the base directory
	ComposeFileName = "docker-compose.yaml"

	// EnvFileName is the generated environment file at the base directory
	EnvFileName = ".env"

	// WorkerConfigFileName is the bootstrapped worker configuration document
	WorkerConfigFileName = "config.json"

	// InitScriptName is the generated wallet-init helper script
	InitScriptName = "init.config"

	// InferenceDirName holds the generated sample inference service skeleton
	InferenceDirName = "inference"

	// MnemonicFileName stores the wallet mnemonic inside the worker data dir
	MnemonicFileName = "mnemonic"

	// InferenceServicePort is the port the sample inference service listens on
	InferenceServicePort = 8000
)

const (
	// SecretFileMode restricts secret files to the owning operator
	SecretFileMode = 0o600

	// DataDirMode restricts worker data directories to the owning operator
	DataDirMode = 0o700
)
