package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/config"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/server"
)

var (
	serveAddr       string
	serveAPIKey     string
	serveUseBrowser bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for tailoring runs, scoring, and version history.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	cfg := config.Config{
		APIKey:     serveAPIKey,
		UseBrowser: serveUseBrowser,
		Verbose:    serveVerbose,
	}
	cfg = cfg.MergeWithDefaults(config.Config{APIKey: os.Getenv("GEMINI_API_KEY")})

	rt, cleanup, err := newRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	srv, err := server.New(server.Config{
		Addr:        serveAddr,
		DatabaseURL: databaseURL,
		Runtime:     rt,
		Engine:      rt.Engine,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
