// Package main is the entry point for the gcontainer CLI.
//
// gcontainer reads GKE node pool management settings from a local catalog
// or from a saved API response and renders them in either shape.
//
// Commands: show, convert, parse, compare, version.
//
// For detailed usage information, run:
//
//	gcontainer --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/gcontainer/cmd/gcontainer/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
