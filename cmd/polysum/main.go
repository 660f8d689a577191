// Package main provides the entry point for the polysum summarizer CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/polysum/internal/server"
)

var rootCmd = &cobra.Command{
	Use:     "polysum",
	Short:   "Offline multi-agent text summarizer",
	Long:    "polysum condenses text with a deterministic pipeline of heuristic agents: reasoning, verification, simplification, critique and refinement.",
	Version: server.Version,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
