// Package cli implements the TrainQuest command-line interface using Cobra.
// Each subcommand maps to one tracker operation (log, stats, gacha, etc.).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trainquest",
	Short: "TrainQuest — habit tracking that plays like a game",
	Long: `TrainQuest turns kids' training sessions into an adventure.
Log study and exercise sessions, earn XP and coins, walk the quest map,
collect buddy skins, and open treasure chests. Everything lives on your
machine — zero network, zero accounts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
