// Package main provides the encounter_agent CLI, which plans diverse encounter lineups for a party.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "encounter_agent",
	Short:        "Encounter Diversifier",
	Long:         "Encounter Diversifier samples encounter budgets around a party's difficulty thresholds and fills each with a few distinct, diverse adversary lineups.",
	SilenceUsage: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug log events to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
