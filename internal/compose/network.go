// Package compose: shared Docker network management. The generated stack
// joins one external network so that independently provisioned workers and
// the inference service can resolve each other by container name.
package compose

import (
	"context"
	"fmt"

	"github.com/0xLogan-x/allora-worker/internal/logging"
	"github.com/0xLogan-x/allora-worker/internal/runner"
)

// EnsureNetwork idempotently creates the shared Docker network. An existing
// network is reused; only a failed create aborts the run.
func EnsureNetwork(ctx context.Context, r runner.Runner, name string) error {
	if _, err := r.Output(ctx, "docker", "network", "inspect", name); err == nil {
		logging.Debug("Docker network %s already exists", name)
		return nil
	}

	if err := r.Run(ctx, "docker", "network", "create", name); err != nil {
		return fmt.Errorf("failed to create docker network %s: %w", name, err)
	}

	logging.Info("Created docker network %s", name)
	return nil
}

// Up launches the generated stack in the background, building the inference
// image on first run. The compose project directory is the provisioning base
// directory so relative paths in the manifest resolve correctly.
func Up(ctx context.Context, r runner.Runner, baseDir string) error {
	logging.Info("Launching stack with docker compose")

	err := r.Run(ctx, "docker", "compose", "--project-directory", baseDir, "up", "-d", "--build")
	if err != nil {
		return fmt.Errorf("docker compose up failed: %w", err)
	}

	logging.Success("Stack launched")
	return nil
}
