package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridwire",
	Short: "gridwire routes signal wires on a puzzle board",
	Long: `gridwire is the autorouter for grid-based signal puzzles: it reads a
board design, routes every connection with the 8-way constrained pathfinder,
and renders the result.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}
