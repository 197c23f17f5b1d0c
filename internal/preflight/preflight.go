// Package preflight verifies that the external tools workerctl depends on
// are present and responsive before any provisioning state is created.
//
// CHECKS PERFORMED:
//   - docker binary available on PATH
//   - compose plugin responds (docker compose version)
//   - Docker daemon reachable (docker info)
//
// Failures abort the run immediately with a labeled error so the operator
// knows which dependency is missing, matching the tool's fail-fast error
// handling: nothing is written to disk until every check passes.
package preflight

import (
	"context"
	"fmt"

	"github.com/0xLogan-x/allora-worker/internal/logging"
	"github.com/0xLogan-x/allora-worker/internal/runner"
)

// Check verifies every external dependency in order and returns the first
// failure. Order matters: a missing binary produces a clearer message than
// the daemon-connection error the later checks would surface.
func Check(ctx context.Context, r runner.Runner) error {
	logging.Info("Running preflight checks")

	if _, err := r.LookPath("docker"); err != nil {
		return fmt.Errorf("preflight: docker is not installed or not on PATH: %w", err)
	}
	logging.Debug("docker binary found")

	if err := r.Run(ctx, "docker", "compose", "version"); err != nil {
		return fmt.Errorf("preflight: docker compose plugin is not available: %w", err)
	}
	logging.Debug("docker compose plugin responds")

	if err := r.Run(ctx, "docker", "info"); err != nil {
		return fmt.Errorf("preflight: docker daemon is not reachable (is it running?): %w", err)
	}
	logging.Debug("docker daemon reachable")

	logging.Success("Preflight checks passed")
	return nil
}
