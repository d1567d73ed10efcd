package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/agent"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/config"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/db"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/history"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/observability"
)

var runCommand = &cobra.Command{
	Use:   "run [command]",
	Short: "Execute one tailoring run against a resume",
	Long: `Plans and executes tool actions from a natural-language command, for example:

  resume_agent run "add skills: Go, Kubernetes and change color to #1a73e8" --resume resume.json --job job.txt

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAgentCmd,
}

var (
	runConfigPath  string
	runResume      string
	runJob         string
	runJobURL      string
	runUserID      string
	runAPIKey      string
	runDatabaseURL string
	runOutput      string
	runUseBrowser  bool
	runVerbose     bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to resume JSON document")
	runCommand.Flags().StringVarP(&runJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	runCommand.Flags().StringVar(&runJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	runCommand.Flags().StringVar(&runUserID, "user-id", "", "User UUID for version history (optional, history is skipped without it)")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Path to write the tailored resume JSON (optional)")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for version persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

// resolveRunConfig loads the config file (when given), applies explicitly set
// CLI flags on top, and fills remaining gaps from the environment.
func resolveRunConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if runConfigPath != "" {
		loaded, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// CLI flags override config file values, but only when explicitly set.
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = runJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = runJobURL
	}
	if cmd.Flags().Changed("user-id") {
		cfg.UserID = runUserID
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	// Bool flags always win: unset and false are indistinguishable in JSON.
	if runUseBrowser {
		cfg.UseBrowser = true
	}
	if runVerbose {
		cfg.Verbose = true
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if cfg.Resume == "" {
		return cfg, fmt.Errorf("a resume document is required (use --resume or the config file)")
	}

	return cfg, nil
}

func runAgentCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}

	doc, err := loadResumeDocument(cfg.Resume)
	if err != nil {
		return err
	}

	jobText := ""
	if cfg.Job != "" {
		if jobText, err = loadJobText(cfg.Job); err != nil {
			return err
		}
	}

	rt, cleanup, err := newRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	userID := uuid.Nil
	if cfg.UserID != "" {
		if userID, err = uuid.Parse(cfg.UserID); err != nil {
			return fmt.Errorf("invalid user ID %q: %w", cfg.UserID, err)
		}
	}

	// Version history needs both a database and a user identity.
	if cfg.DatabaseURL != "" && userID != uuid.Nil {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		rt.Versions = database
		rt.History = history.NewService(database)
	}

	result, runErr := rt.Run(ctx, agent.Request{
		UserID:         userID,
		Command:        strings.Join(args, " "),
		Resume:         doc,
		JobURL:         cfg.JobURL,
		JobDescription: jobText,
	})
	if runErr != nil && result == nil {
		return runErr
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAgentResult(result)
	printer.PrintDiffs(result.Diffs)
	if result.ATSReport != nil {
		printer.PrintScoreReport(result.ATSReport)
	}

	if runOutput != "" {
		if err := os.WriteFile(runOutput, []byte(result.Artifacts["resume.json"]), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Tailored resume written to %s\n", runOutput)
	}

	if runErr != nil {
		// The run itself finished; persistence failed.
		return fmt.Errorf("run completed with a commit failure: %w", runErr)
	}
	return nil
}
