// Package main provides the entry point for the shelfmap CLI tool.
package main

import "github.com/shelfmap/shelfmap/cmd/shelfmap/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
