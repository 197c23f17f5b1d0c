// Package workerconfig manages the worker configuration document
// (config.json) consumed by the offchain worker node containers.
//
// The document has two parts: a wallet record (key name, mnemonic, RPC
// endpoint, gas and retry settings) and a fixed list of ten worker entries,
// one per default topic. The document is created once with defaults and
// reused afterwards; only missing wallet fields are ever patched, using a
// read-modify-write pattern (read whole document, set one field via sjson,
// write to a temp file, rename over the original).
package workerconfig

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/0xLogan-x/allora-worker/internal/config"
)

// WalletConfig is the wallet record of the configuration document. Field
// names follow the offchain node's expected JSON schema.
type WalletConfig struct {
	AddressKeyName         string  `json:"addressKeyName"`
	AddressRestoreMnemonic string  `json:"addressRestoreMnemonic"`
	AlloraHomeDir          string  `json:"alloraHomeDir"`
	Gas                    string  `json:"gas"`
	GasAdjustment          float64 `json:"gasAdjustment"`
	NodeRPC                string  `json:"nodeRpc"`
	MaxRetries             int     `json:"maxRetries"`
	Delay                  int     `json:"delay"`
	SubmitTx               bool    `json:"submitTx"`
}

// WorkerParameters holds the per-topic inference fetch settings. The
// endpoint is a template: the node substitutes {Token} at poll time.
type WorkerParameters struct {
	InferenceEndpoint string `json:"InferenceEndpoint"`
	Token             string `json:"Token"`
}

// WorkerEntry describes one topic the worker polls and responds to.
type WorkerEntry struct {
	TopicID                 uint64           `json:"topicId"`
	InferenceEntrypointName string           `json:"inferenceEntrypointName"`
	LoopSeconds             int              `json:"loopSeconds"`
	Parameters              WorkerParameters `json:"parameters"`
}

// Document is the root configuration document.
type Document struct {
	Wallet WalletConfig  `json:"wallet"`
	Worker []WorkerEntry `json:"worker"`
}

// DefaultTopicTokens maps default topic ids 1..10 (by position) to the token
// symbol each topic predicts. These are the documented defaults; operators
// edit config.json directly to target other topics.
var DefaultTopicTokens = [10]string{
	"ETH", "ETH", "BTC", "BTC", "SOL", "SOL", "ETH", "BNB", "ARB", "BTC",
}

const (
	// defaultEntrypoint is the offchain node entrypoint used for every
	// default topic entry.
	defaultEntrypoint = "api-worker-reputer"

	// defaultLoopSeconds is the poll interval for every default topic entry.
	defaultLoopSeconds = 5
)

// DefaultDocument builds the fixed default configuration: wallet settings
// from the resolved chain parameters and exactly ten worker entries covering
// topic ids 1 through 10. Wallet identity fields start empty and are patched
// during bootstrap.
func DefaultDocument(params config.ChainParams) Document {
	endpoint := fmt.Sprintf("http://inference:%d/inference/{Token}", config.InferenceServicePort)

	workers := make([]WorkerEntry, 0, len(DefaultTopicTokens))
	for i, token := range DefaultTopicTokens {
		workers = append(workers, WorkerEntry{
			TopicID:                 uint64(i + 1),
			InferenceEntrypointName: defaultEntrypoint,
			LoopSeconds:             defaultLoopSeconds,
			Parameters: WorkerParameters{
				InferenceEndpoint: endpoint,
				Token:             token,
			},
		})
	}

	return Document{
		Wallet: WalletConfig{
			Gas:           params.Gas,
			GasAdjustment: params.GasAdjustment,
			NodeRPC:       params.NodeRPC,
			MaxRetries:    params.MaxRetries,
			Delay:         params.RetryDelay,
			SubmitTx:      params.SubmitTx,
		},
		Worker: workers,
	}
}

// Load parses the configuration document from disk.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read worker config %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to parse worker config %s: %w", path, err)
	}
	return doc, nil
}
