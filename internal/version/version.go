// Package version provides centralized version information for the allora-worker
// tooling. Versions follow semantic versioning (semver) conventions.
package version

// WorkerctlVersion holds the current workerctl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const WorkerctlVersion = "0.1.0-dev"
