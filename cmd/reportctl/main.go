// Package main provides reportctl, a command-line companion to the report
// server for rendering reports offline and checking rendered output.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reportctl",
	Short: "Render and inspect interview reports",
	Long:  "reportctl renders an interview report from a request JSON file using the same pipeline as the HTTP server, and inspects rendered PDFs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
