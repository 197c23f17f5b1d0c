// Package compose generates and maintains the Docker Compose stack for
// provisioned workers.
//
// The manifest is typed (marshaled with gopkg.in/yaml.v3) rather than
// templated text so that repeated runs can merge: the first run creates the
// shared inference and updater services, and every run adds one
// worker-<index> service without disturbing services provisioned earlier.
//
// MANIFEST SHAPE:
//   - inference: sample inference microservice, built from ./inference
//   - updater:   periodic model refresh loop, same build as inference
//   - worker-N:  one offchain worker node per provisioned index
//
// All services join one shared external Docker network which is created
// idempotently before launch.
package compose

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/0xLogan-x/allora-worker/internal/config"
	"github.com/0xLogan-x/allora-worker/internal/logging"
)

// WorkerImage is the published offchain worker node image referenced by
// every generated worker service.
const WorkerImage = "alloranetwork/allora-offchain-node:latest"

// Healthcheck mirrors the compose healthcheck block for a service.
type Healthcheck struct {
	Test     []string `yaml:"test,flow"`
	Interval string   `yaml:"interval,omitempty"`
	Timeout  string   `yaml:"timeout,omitempty"`
	Retries  int      `yaml:"retries,omitempty"`
}

// Build mirrors the compose build block for locally built services.
type Build struct {
	Context string `yaml:"context"`
}

// Service mirrors the subset of the compose service schema the generated
// stack uses. Unused fields are omitted from the output entirely.
type Service struct {
	Image         string       `yaml:"image,omitempty"`
	Build         *Build       `yaml:"build,omitempty"`
	ContainerName string       `yaml:"container_name,omitempty"`
	Command       []string     `yaml:"command,omitempty,flow"`
	EnvFile       []string     `yaml:"env_file,omitempty,flow"`
	Environment   []string     `yaml:"environment,omitempty"`
	Ports         []string     `yaml:"ports,omitempty,flow"`
	Volumes       []string     `yaml:"volumes,omitempty"`
	Networks      []string     `yaml:"networks,omitempty,flow"`
	DependsOn     []string     `yaml:"depends_on,omitempty,flow"`
	Restart       string       `yaml:"restart,omitempty"`
	Healthcheck   *Healthcheck `yaml:"healthcheck,omitempty"`
}

// NetworkRef mirrors a top-level compose network entry. The shared network
// is always external: workerctl creates it with the Docker CLI so multiple
// stacks on one host can share it.
type NetworkRef struct {
	External bool `yaml:"external"`
}

// Manifest is the root compose document.
type Manifest struct {
	Services map[string]Service    `yaml:"services"`
	Networks map[string]NetworkRef `yaml:"networks,omitempty"`
}

// NewManifest builds the initial manifest containing the shared inference
// and updater services attached to the given external network.
func NewManifest(network string) *Manifest {
	inferencePort := fmt.Sprintf("%d", config.InferenceServicePort)

	return &Manifest{
		Services: map[string]Service{
			"inference": {
				Build:         &Build{Context: "./" + config.InferenceDirName},
				ContainerName: "inference",
				EnvFile:       []string{config.EnvFileName},
				Ports:         []string{inferencePort + ":" + inferencePort},
				Networks:      []string{network},
				Restart:       "unless-stopped",
				Healthcheck: &Healthcheck{
					Test:     []string{"CMD", "curl", "-f", fmt.Sprintf("http://localhost:%s/inference/ETH", inferencePort)},
					Interval: "10s",
					Timeout:  "5s",
					Retries:  12,
				},
			},
			"updater": {
				Build:         &Build{Context: "./" + config.InferenceDirName},
				ContainerName: "updater",
				EnvFile:       []string{config.EnvFileName},
				Command:       []string{"sh", "-c", "while true; do python -u /app/update.py; sleep 60; done"},
				Networks:      []string{network},
				DependsOn:     []string{"inference"},
				Restart:       "unless-stopped",
			},
		},
		Networks: map[string]NetworkRef{
			network: {External: true},
		},
	}
}

// Load parses an existing manifest from disk.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read compose manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse compose manifest %s: %w", path, err)
	}
	if m.Services == nil {
		m.Services = make(map[string]Service)
	}
	return &m, nil
}

// Ensure loads the manifest at path, or builds a fresh one when the file
// does not exist yet. Returns whether a new manifest was created.
func Ensure(path, network string) (*Manifest, bool, error) {
	if _, err := os.Stat(path); err == nil {
		m, err := Load(path)
		if err != nil {
			return nil, false, err
		}
		logging.Info("Merging into existing compose manifest %s", path)
		return m, false, nil
	} else if !os.IsNotExist(err) {
		return nil, false, fmt.Errorf("failed to check compose manifest %s: %w", path, err)
	}

	logging.Info("Creating compose manifest %s", path)
	return NewManifest(network), true, nil
}

// AddWorker adds (or replaces) the worker service for the given index. The
// worker mounts its private data directory and the shared configuration
// document, and starts only after the inference service is up.
func (m *Manifest) AddWorker(index, network string) string {
	name := config.WorkerServicePrefix + index
	dataDir := "./" + config.DataDirPrefix + index

	m.Services[name] = Service{
		Image:         WorkerImage,
		ContainerName: name,
		EnvFile:       []string{config.EnvFileName},
		Environment:   []string{"WORKER_INDEX=" + index},
		Volumes: []string{
			dataDir + ":/data",
			"./" + config.WorkerConfigFileName + ":/data/config.json",
		},
		Networks:  []string{network},
		DependsOn: []string{"inference"},
		Restart:   "unless-stopped",
	}

	return name
}

// WorkerServices returns the names of all worker-<index> services present in
// the manifest, in no particular order.
func (m *Manifest) WorkerServices() []string {
	var names []string
	for name := range m.Services {
		if len(name) > len(config.WorkerServicePrefix) &&
			name[:len(config.WorkerServicePrefix)] == config.WorkerServicePrefix {
			names = append(names, name)
		}
	}
	return names
}

// Save writes the manifest using the read-modify-write pattern: marshal to a
// temp file in the target directory, then rename over the original so a
// crash mid-write never leaves a truncated manifest behind.
func (m *Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal compose manifest: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".compose-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp manifest: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp manifest: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace compose manifest: %w", err)
	}

	logging.Debug("Wrote compose manifest %s", path)
	return nil
}
