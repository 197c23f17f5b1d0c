// Package validate provides input validation for worker provisioning inputs,
// ensuring operator-supplied credentials and identifiers are well formed
// before any filesystem or Docker state is touched.
//
// VALIDATION COVERAGE:
//   - Worker Index: Decimal-digit identifiers used to namespace directories
//     and compose services
//   - Mnemonic: BIP-39 seed phrase format and checksum validation
//   - API Key: Required non-empty credential checking
//
// Used by CLI flag processing and interactive prompts so both entry points
// enforce identical rules.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	bip39 "github.com/tyler-smith/go-bip39"
)

// workerIndexRegex matches decimal-digit worker indices. Leading zeros are
// allowed since the index is only used as a name suffix, never as arithmetic.
var workerIndexRegex = regexp.MustCompile(`^[0-9]+$`)

// WorkerIndexFormat validates worker indices against naming requirements.
// The index namespaces the data directory (worker-data-<index>) and the
// compose service (worker-<index>), so it must be digits only to produce
// valid directory and container names.
func WorkerIndexFormat(index string) error {
	if index == "" {
		return fmt.Errorf("worker index cannot be empty")
	}

	if !workerIndexRegex.MatchString(index) {
		return fmt.Errorf("worker index '%s' must contain only digits [0-9]", index)
	}

	return nil
}

// Mnemonic validates a wallet mnemonic phrase. The phrase must be non-empty
// and pass the BIP-39 wordlist and checksum validation, since an invalid
// phrase would only fail later inside the worker container when the signing
// key is derived from it.
func Mnemonic(phrase string) error {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return fmt.Errorf("mnemonic cannot be empty")
	}

	if !bip39.IsMnemonicValid(phrase) {
		return fmt.Errorf("mnemonic is not a valid BIP-39 phrase (check word count and spelling)")
	}

	return nil
}

// APIKey validates the inference data API key. Only presence is checked;
// the key is opaque to this tool and verified by the upstream data provider.
func APIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("API key cannot be empty")
	}
	return nil
}
