// ABOUTME: Main entry point for the insight CLI
// ABOUTME: Sets up the Cobra root command and executes
package main

import (
	"fmt"
	"os"

	"github.com/cryptoinsight/insight/cmd/insight/commands"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Set version info for commands
	commands.SetVersion(version, commit, date)

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
