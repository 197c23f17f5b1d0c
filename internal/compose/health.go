// Package compose: post-launch health probing of the inference service.
package compose

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/0xLogan-x/allora-worker/internal/config"
	"github.com/0xLogan-x/allora-worker/internal/logging"
)

// healthProbeInterval is the wait between probe attempts. Container builds
// dominate startup time, so sub-second polling buys nothing.
const healthProbeInterval = 5 * time.Second

// DefaultHealthURL returns the probe endpoint for the locally published
// inference service port. ETH is probed because every default topic set
// includes it.
func DefaultHealthURL() string {
	return fmt.Sprintf("http://localhost:%d/inference/ETH", config.InferenceServicePort)
}

// WaitHealthy polls the inference service until it answers with HTTP 200 or
// the timeout expires. Retries are handled by the resty client so transient
// connection-refused errors during container startup are absorbed.
func WaitHealthy(ctx context.Context, url string, timeout time.Duration) error {
	logging.Info("Waiting up to %s for inference service at %s", timeout, url)

	attempts := int(timeout / healthProbeInterval)
	if attempts < 1 {
		attempts = 1
	}

	client := resty.New().
		SetTimeout(healthProbeInterval).
		SetRetryCount(attempts).
		SetRetryWaitTime(healthProbeInterval).
		SetRetryMaxWaitTime(healthProbeInterval).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() != 200
		})

	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("inference service did not become healthy within %s: %w", timeout, err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("inference service did not become healthy within %s (last status %d)", timeout, resp.StatusCode())
	}

	logging.Success("Inference service is healthy")
	return nil
}
