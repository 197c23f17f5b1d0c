// Package workerconfig: configuration bootstrap and in-place wallet patching.
package workerconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/0xLogan-x/allora-worker/internal/config"
	"github.com/0xLogan-x/allora-worker/internal/logging"
)

// Wallet fields patched during bootstrap, addressed as gjson/sjson paths.
const (
	walletKeyNamePath  = "wallet.addressKeyName"
	walletMnemonicPath = "wallet.addressRestoreMnemonic"
)

// Ensure creates the configuration document with fixed defaults when it does
// not exist yet. An existing document is left untouched so operator edits
// survive reprovisioning. Returns true when the file was created.
func Ensure(path string, params config.ChainParams) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		logging.Info("Reusing existing worker config %s", path)
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check worker config %s: %w", path, err)
	}

	doc := DefaultDocument(params)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal default worker config: %w", err)
	}

	if err := atomicWrite(path, append(data, '\n')); err != nil {
		return false, err
	}

	logging.Info("Created worker config %s with %d topic entries", path, len(doc.Worker))
	return true, nil
}

// WalletStatus reports which wallet identity fields still need population.
type WalletStatus struct {
	NeedsKeyName  bool
	NeedsMnemonic bool
}

// InspectWallet checks the wallet record for missing identity fields.
// A field counts as missing when it is absent, JSON null, or empty.
func InspectWallet(path string) (WalletStatus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WalletStatus{}, fmt.Errorf("failed to read worker config %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return WalletStatus{}, fmt.Errorf("worker config %s is not valid JSON", path)
	}

	return WalletStatus{
		NeedsKeyName:  fieldMissing(data, walletKeyNamePath),
		NeedsMnemonic: fieldMissing(data, walletMnemonicPath),
	}, nil
}

func fieldMissing(data []byte, path string) bool {
	result := gjson.GetBytes(data, path)
	if !result.Exists() || result.Type == gjson.Null {
		return true
	}
	return strings.TrimSpace(result.String()) == ""
}

// PatchWallet populates missing wallet identity fields in place. Each field
// is set with sjson against the full document, then the document is written
// to a temp file and renamed over the original. Fields already populated are
// never overwritten.
func PatchWallet(path, keyName, mnemonic string) error {
	status, err := InspectWallet(path)
	if err != nil {
		return err
	}
	if !status.NeedsKeyName && !status.NeedsMnemonic {
		logging.Debug("Wallet fields already populated in %s", path)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read worker config %s: %w", path, err)
	}

	if status.NeedsKeyName {
		if data, err = sjson.SetBytes(data, walletKeyNamePath, keyName); err != nil {
			return fmt.Errorf("failed to set wallet key name: %w", err)
		}
		logging.Info("Set wallet key name in %s", path)
	}
	if status.NeedsMnemonic {
		if data, err = sjson.SetBytes(data, walletMnemonicPath, strings.TrimSpace(mnemonic)); err != nil {
			return fmt.Errorf("failed to set wallet mnemonic: %w", err)
		}
		logging.Info("Set wallet mnemonic in %s", path)
	}

	return atomicWrite(path, data)
}

// atomicWrite writes data to a temp file beside path and renames it over the
// original. The document holds the wallet mnemonic, so it gets the same
// owner-only permissions as the other secret files.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp config: %w", err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(config.SecretFileMode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to restrict temp config permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp config: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace worker config: %w", err)
	}
	return nil
}
