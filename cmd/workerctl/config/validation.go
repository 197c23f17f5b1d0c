// Package config: pre-run validation of CLI flag values.
package config

import (
	"fmt"

	"github.com/0xLogan-x/allora-worker/internal/logging"
	"github.com/0xLogan-x/allora-worker/internal/validate"
)

// ValidateConfig validates the global CLI configuration after flag parsing.
// Only flag-supplied values are checked here; credentials collected
// interactively are validated inside the provisioning pipeline with the same
// rules.
func ValidateConfig() error {
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		return err
	}

	if Global.Output != "table" && Global.Output != "json" {
		return fmt.Errorf("invalid output format: %s (must be table or json)", Global.Output)
	}

	if err := validate.ValidateRequiredString(Global.BaseDir, "base directory"); err != nil {
		return err
	}
	if err := validate.ValidateRequiredString(Global.Network, "network name"); err != nil {
		return err
	}

	if Global.Index != "" {
		if err := validate.WorkerIndexFormat(Global.Index); err != nil {
			return fmt.Errorf("invalid --index: %w", err)
		}
	}

	if Global.Wait && Global.NoLaunch {
		return fmt.Errorf("--wait requires launching the stack (remove --no-launch)")
	}
	if Global.WaitTimeout <= 0 {
		return fmt.Errorf("--wait-timeout must be positive, got %d", Global.WaitTimeout)
	}

	return nil
}
