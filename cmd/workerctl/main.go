// Package main provides the entry point for workerctl, the Allora worker
// provisioning tool.
//
// workerctl turns one interactive session (worker index, wallet mnemonic,
// data API key) into a running Docker Compose stack: a per-worker offchain
// node service, a sample inference microservice, and a periodic model
// updater, all joined to a shared Docker network and driven by a
// bootstrapped JSON worker configuration.
package main

import (
	"os"

	"github.com/0xLogan-x/allora-worker/cmd/workerctl/commands"
)

// Main entry point
func main() {
	commands.SetupCommands()

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
