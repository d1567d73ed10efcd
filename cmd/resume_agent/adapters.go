package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/agent"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/config"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/ingestion"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/llm"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/scoring"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// urlScraper adapts job ingestion to the agent's Scraper interface.
type urlScraper struct {
	useBrowser bool
	verbose    bool
}

func (s *urlScraper) Scrape(ctx context.Context, url string) (*types.JobPosting, error) {
	return ingestion.IngestFromURL(ctx, url, ingestion.Options{
		UseBrowser: s.useBrowser,
		Verbose:    s.verbose,
	})
}

// llmSuggester adapts an LLM client to the agent's Suggester interface.
type llmSuggester struct {
	client llm.Client
}

func (s *llmSuggester) Suggest(ctx context.Context, resumeText, jobText string, missing []string) ([]types.Action, error) {
	return llm.SuggestActions(ctx, s.client, resumeText, jobText, missing)
}

// newRuntime wires an agent runtime from the merged configuration. The
// returned cleanup closes the LLM client when one was created. Version and
// history persistence are wired separately by callers that open a database.
func newRuntime(ctx context.Context, cfg config.Config) (*agent.Runtime, func(), error) {
	rt := &agent.Runtime{
		Scraper: &urlScraper{useBrowser: cfg.UseBrowser, verbose: cfg.Verbose},
		Engine:  scoring.NewEngine(),
		Verbose: cfg.Verbose,
	}
	cleanup := func() {}

	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		rt.Suggester = &llmSuggester{client: client}
		cleanup = func() { _ = client.Close() }
	}

	return rt, cleanup, nil
}

// loadResumeDocument reads a resume JSON file into a generic document.
func loadResumeDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}

	return doc, nil
}

// loadJobText reads a job description text file.
func loadJobText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	return string(data), nil
}
