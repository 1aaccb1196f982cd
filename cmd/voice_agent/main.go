// Package main provides the entry point for the Voice Mirror HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "voice_agent",
	Short: "Voice Mirror HTTP API Server",
	Long:  "Voice Mirror learns a user's writing voice from submitted samples and rewrites arbitrary text in that voice via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
