// Package workspace manages the on-disk layout for provisioned workers.
//
// Each worker gets a private data directory (worker-data-<index>) with
// owner-only permissions holding its mnemonic, while shared artifacts (.env,
// compose manifest, config document, inference skeleton) live at the base
// directory and are created once then reused by later runs.
//
// The package enforces the create-once invariants from the provisioning
// contract: an existing data directory aborts the run untouched, and secret
// files are written exactly once with restrictive permissions.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xLogan-x/allora-worker/internal/config"
	"github.com/0xLogan-x/allora-worker/internal/logging"
)

// Layout describes where a single worker's artifacts live relative to the
// provisioning base directory.
type Layout struct {
	BaseDir string // Provisioning root for all generated artifacts
	Index   string // Worker index, digits only (validated upstream)
}

// DataDir returns the worker's private data directory path.
func (l Layout) DataDir() string {
	return filepath.Join(l.BaseDir, config.DataDirPrefix+l.Index)
}

// MnemonicPath returns the path of the worker's mnemonic secret file.
func (l Layout) MnemonicPath() string {
	return filepath.Join(l.DataDir(), config.MnemonicFileName)
}

// ServiceName returns the compose service name for this worker.
func (l Layout) ServiceName() string {
	return config.WorkerServicePrefix + l.Index
}

// ComposePath returns the shared compose manifest path.
func (l Layout) ComposePath() string {
	return filepath.Join(l.BaseDir, config.ComposeFileName)
}

// EnvPath returns the shared environment file path.
func (l Layout) EnvPath() string {
	return filepath.Join(l.BaseDir, config.EnvFileName)
}

// WorkerConfigPath returns the shared worker configuration document path.
func (l Layout) WorkerConfigPath() string {
	return filepath.Join(l.BaseDir, config.WorkerConfigFileName)
}

// InferenceDir returns the shared inference service skeleton directory.
func (l Layout) InferenceDir() string {
	return filepath.Join(l.BaseDir, config.InferenceDirName)
}

// InitScriptPath returns the generated wallet-init helper script path.
func (l Layout) InitScriptPath() string {
	return filepath.Join(l.BaseDir, config.InitScriptName)
}

// EnsureDataDir creates the worker's private data directory with owner-only
// permissions. Fails if the directory already exists: a second run with the
// same index must never overwrite a provisioned worker's state.
func (l Layout) EnsureDataDir() error {
	dir := l.DataDir()

	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("worker data directory %s already exists; refusing to overwrite", dir)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check worker data directory %s: %w", dir, err)
	}

	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return fmt.Errorf("failed to create base directory: %w", err)
	}
	if err := os.Mkdir(dir, config.DataDirMode); err != nil {
		return fmt.Errorf("failed to create worker data directory %s: %w", dir, err)
	}

	logging.Info("Created worker data directory %s", dir)
	return nil
}

// WriteMnemonic stores the wallet mnemonic inside the worker data directory
// with owner-only file permissions. Write-once: the data directory is fresh
// by the time this runs, so no existence check is needed.
func (l Layout) WriteMnemonic(phrase string) error {
	path := l.MnemonicPath()
	if err := os.WriteFile(path, []byte(strings.TrimSpace(phrase)+"\n"), config.SecretFileMode); err != nil {
		return fmt.Errorf("failed to write mnemonic file: %w", err)
	}
	logging.Debug("Wrote mnemonic to %s", path)
	return nil
}

// EnsureEnvFile writes the shared environment file on first run and leaves
// it untouched afterwards, keeping the API key write-once like the mnemonic.
// Returns true when the file was created by this call.
func (l Layout) EnsureEnvFile(apiKey string, params config.ChainParams) (bool, error) {
	path := l.EnvPath()

	if _, err := os.Stat(path); err == nil {
		logging.Info("Reusing existing environment file %s", path)
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check environment file %s: %w", path, err)
	}

	var b strings.Builder
	b.WriteString("# Generated by workerctl; edit with care.\n")
	fmt.Fprintf(&b, "TOKEN_API_KEY=%s\n", strings.TrimSpace(apiKey))
	fmt.Fprintf(&b, "ALLORA_NODE_RPC=%s\n", params.NodeRPC)
	fmt.Fprintf(&b, "ALLORA_CHAIN_ID=%s\n", params.ChainID)
	fmt.Fprintf(&b, "INFERENCE_PORT=%d\n", config.InferenceServicePort)

	if err := os.WriteFile(path, []byte(b.String()), config.SecretFileMode); err != nil {
		return false, fmt.Errorf("failed to write environment file: %w", err)
	}

	logging.Info("Created environment file %s", path)
	return true, nil
}
