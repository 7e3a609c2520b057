// Package main is the single-binary entrypoint for TrainQuest.
// One binary, local state, zero accounts.
package main

import "github.com/trainquest/trainquest/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
