// Package main is the entry point for the skilldex CLI.
package main

import (
	"os"

	"github.com/skilldex-labs/skilldex-cli/internal/adapters/driving/cli"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.2.3" ./cmd/skilldex
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
