package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_agent",
	Short: "Command-driven resume tailoring agent",
	Long: `resume_agent tailors a structured resume document to a job posting.

It plans tool actions from a natural-language command, applies content and
style edits, scores the result against the posting, and records every applied
version on an undo/redo timeline.`,
}

func main() {
	// Load .env file if present (ignore errors, env vars may be set directly)
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
