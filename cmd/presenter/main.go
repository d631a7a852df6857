package main

import (
	"os"

	"pdf-presenter/cmd/presenter/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	// Errors are already printed by the command layer.
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
