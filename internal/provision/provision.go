// Package provision orchestrates the worker provisioning pipeline.
//
// The pipeline is strictly linear and fail-fast: preflight checks, input
// collection and validation, workspace scaffolding, shared network setup,
// template emission, configuration bootstrap, and finally stack launch.
// Validation happens before anything touches disk, so an invalid index or
// credential aborts the run without leaving partial state behind.
package provision

import (
	"context"
	"fmt"
	"time"

	"github.com/0xLogan-x/allora-worker/internal/compose"
	"github.com/0xLogan-x/allora-worker/internal/config"
	"github.com/0xLogan-x/allora-worker/internal/logging"
	"github.com/0xLogan-x/allora-worker/internal/preflight"
	"github.com/0xLogan-x/allora-worker/internal/prompt"
	"github.com/0xLogan-x/allora-worker/internal/render"
	"github.com/0xLogan-x/allora-worker/internal/runner"
	"github.com/0xLogan-x/allora-worker/internal/validate"
	"github.com/0xLogan-x/allora-worker/internal/workerconfig"
	"github.com/0xLogan-x/allora-worker/internal/workspace"
)

// Options configures a provisioning run. Empty credential fields are
// collected interactively through the Prompter.
type Options struct {
	Index         string // Worker index; prompted when empty
	Mnemonic      string // Wallet mnemonic; prompted (no echo) when empty
	APIKey        string // Inference data API key; prompted when empty
	WalletKeyName string // Wallet key name for config bootstrap; prompted when needed

	BaseDir string // Provisioning root directory
	Network string // Shared Docker network name

	Launch      bool          // Run docker compose up after generation
	Wait        bool          // Poll the inference service after launch
	WaitTimeout time.Duration // Health-wait budget

	Runner   runner.Runner
	Prompter *prompt.Prompter
}

// Summary reports what a provisioning run produced, for display.
type Summary struct {
	Index           string   `json:"index"`
	ServiceName     string   `json:"serviceName"`
	DataDir         string   `json:"dataDir"`
	ComposeFile     string   `json:"composeFile"`
	ConfigFile      string   `json:"configFile"`
	EnvFile         string   `json:"envFile"`
	EnvCreated      bool     `json:"envCreated"`
	ConfigCreated   bool     `json:"configCreated"`
	SkeletonCreated bool     `json:"skeletonCreated"`
	WorkerServices  []string `json:"workerServices"`
	Launched        bool     `json:"launched"`
	Healthy         bool     `json:"healthy"`
}

// Run executes the full provisioning pipeline and returns a summary of the
// artifacts produced. Any failure aborts immediately with a wrapped error.
func Run(ctx context.Context, opts Options) (*Summary, error) {
	// Step 1: external dependencies, before any input is collected
	if err := preflight.Check(ctx, opts.Runner); err != nil {
		return nil, err
	}

	// Step 2: input collection and validation, before any file is created
	index, mnemonic, apiKey, err := collectInputs(opts)
	if err != nil {
		return nil, err
	}

	params, err := config.LoadChainParams()
	if err != nil {
		return nil, err
	}

	layout := workspace.Layout{BaseDir: opts.BaseDir, Index: index}
	summary := &Summary{
		Index:       index,
		ServiceName: layout.ServiceName(),
		DataDir:     layout.DataDir(),
		ComposeFile: layout.ComposePath(),
		ConfigFile:  layout.WorkerConfigPath(),
		EnvFile:     layout.EnvPath(),
	}

	// Step 3: workspace scaffolding
	if err := layout.EnsureDataDir(); err != nil {
		return nil, err
	}
	if err := layout.WriteMnemonic(mnemonic); err != nil {
		return nil, err
	}
	if summary.EnvCreated, err = layout.EnsureEnvFile(apiKey, params); err != nil {
		return nil, err
	}

	// Step 4: shared network
	if err := compose.EnsureNetwork(ctx, opts.Runner, opts.Network); err != nil {
		return nil, err
	}

	// Step 5: template emission
	manifest, _, err := compose.Ensure(layout.ComposePath(), opts.Network)
	if err != nil {
		return nil, err
	}
	manifest.AddWorker(index, opts.Network)
	if err := manifest.Save(layout.ComposePath()); err != nil {
		return nil, err
	}
	summary.WorkerServices = manifest.WorkerServices()

	if summary.SkeletonCreated, err = render.WriteInferenceSkeleton(layout.InferenceDir()); err != nil {
		return nil, err
	}
	if _, err := render.WriteInitScript(layout.InitScriptPath()); err != nil {
		return nil, err
	}

	// Step 6: configuration bootstrap
	if summary.ConfigCreated, err = workerconfig.Ensure(layout.WorkerConfigPath(), params); err != nil {
		return nil, err
	}
	if err := bootstrapWallet(opts, layout, index, mnemonic); err != nil {
		return nil, err
	}

	// Step 7: launch
	if opts.Launch {
		if err := compose.Up(ctx, opts.Runner, opts.BaseDir); err != nil {
			return nil, err
		}
		summary.Launched = true

		if opts.Wait {
			if err := compose.WaitHealthy(ctx, compose.DefaultHealthURL(), opts.WaitTimeout); err != nil {
				return nil, err
			}
			summary.Healthy = true
		}
	}

	logging.Success("Worker %s provisioned", index)
	return summary, nil
}

// collectInputs resolves the worker index, mnemonic, and API key from
// options or interactive prompts, validating each before returning.
func collectInputs(opts Options) (index, mnemonic, apiKey string, err error) {
	index = opts.Index
	if index == "" {
		if index, err = opts.Prompter.Line("Worker index"); err != nil {
			return "", "", "", err
		}
	}
	if err = validate.WorkerIndexFormat(index); err != nil {
		return "", "", "", fmt.Errorf("invalid worker index: %w", err)
	}

	mnemonic = opts.Mnemonic
	if mnemonic == "" {
		if mnemonic, err = opts.Prompter.Secret("Wallet mnemonic"); err != nil {
			return "", "", "", err
		}
	}
	if err = validate.Mnemonic(mnemonic); err != nil {
		return "", "", "", fmt.Errorf("invalid mnemonic: %w", err)
	}

	apiKey = opts.APIKey
	if apiKey == "" {
		if apiKey, err = opts.Prompter.Secret("Data API key"); err != nil {
			return "", "", "", err
		}
	}
	if err = validate.APIKey(apiKey); err != nil {
		return "", "", "", fmt.Errorf("invalid API key: %w", err)
	}

	return index, mnemonic, apiKey, nil
}

// bootstrapWallet patches missing wallet identity fields into the
// configuration document. The key name is prompted only when the document
// actually needs one and no flag value was supplied.
func bootstrapWallet(opts Options, layout workspace.Layout, index, mnemonic string) error {
	status, err := workerconfig.InspectWallet(layout.WorkerConfigPath())
	if err != nil {
		return err
	}
	if !status.NeedsKeyName && !status.NeedsMnemonic {
		return nil
	}

	keyName := opts.WalletKeyName
	if status.NeedsKeyName && keyName == "" {
		keyName, err = opts.Prompter.LineDefault("Wallet key name", config.WorkerServicePrefix+index)
		if err != nil {
			return err
		}
		if err := validate.ValidateRequiredString(keyName, "wallet key name"); err != nil {
			return err
		}
	}

	return workerconfig.PatchWallet(layout.WorkerConfigPath(), keyName, mnemonic)
}
