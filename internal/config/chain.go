// Package config: chain connection parameters for the generated worker
// configuration. Values come from compiled-in defaults with environment
// variable overrides (WORKERCTL_*) processed via envconfig, so operators can
// point generated workers at a different RPC endpoint or tune gas settings
// without editing generated files.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// ChainParams holds the wallet/chain settings written into the bootstrapped
// worker configuration document. Defaults target the Allora testnet.
type ChainParams struct {
	NodeRPC       string  `envconfig:"NODE_RPC" default:"https://allora-rpc.testnet.allora.network/"`
	ChainID       string  `envconfig:"CHAIN_ID" default:"allora-testnet-1"`
	Gas           string  `envconfig:"GAS" default:"auto"`
	GasAdjustment float64 `envconfig:"GAS_ADJUSTMENT" default:"1.5"`
	MaxRetries    int     `envconfig:"MAX_RETRIES" default:"5"`
	RetryDelay    int     `envconfig:"RETRY_DELAY" default:"1"`
	SubmitTx      bool    `envconfig:"SUBMIT_TX" default:"true"`
}

// LoadChainParams resolves chain parameters from defaults and WORKERCTL_*
// environment overrides. Returns an error when an override cannot be parsed
// into the target field type (e.g. a non-numeric WORKERCTL_MAX_RETRIES).
func LoadChainParams() (ChainParams, error) {
	var params ChainParams
	if err := envconfig.Process("workerctl", &params); err != nil {
		return ChainParams{}, fmt.Errorf("failed to process chain parameter overrides: %w", err)
	}
	return params, nil
}
