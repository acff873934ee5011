// Package main provides the entry point for the talent-match CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_match",
	Short: "Talent benchmark scoring engine",
	Long:  "Talent Match scores an employee population against a benchmark cohort of high performers across a catalog of psychometric and competency traits, producing a ranked, hierarchical match-rate report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
