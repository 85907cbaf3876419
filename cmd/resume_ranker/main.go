// Package main provides the entry point for the resume ranking CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_ranker",
	Short: "Rank candidate resumes against a job description",
	Long:  "Resume Ranker scores a batch of candidate resumes against a job description with pluggable scoring engines, or tailors a single resume toward a posting.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
