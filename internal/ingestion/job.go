// Package ingestion turns job posting pages into structured postings for
// scoring and planning.
package ingestion

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/fetch"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// Options configures job ingestion.
type Options struct {
	UseBrowser bool
	Verbose    bool
}

// IngestFromURL fetches a posting page, extracts its text, and parses it
// into structured fields. On structured-parse failure the posting still
// carries the raw text blob, never an empty result.
func IngestFromURL(ctx context.Context, urlStr string, opts Options) (*types.JobPosting, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job posting: %w", err)
	}

	text, err := fetch.ExtractJobText(result.HTML)
	if err != nil {
		return nil, fmt.Errorf("failed to extract posting text: %w", err)
	}

	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		if opts.Verbose {
			log.Printf("[VERBOSE] Extracted text too short (%d chars), retrying with browser", len(text))
		}
		html, browserErr := fetch.WithBrowser(ctx, urlStr, opts.Verbose)
		if browserErr == nil {
			if rendered, renderErr := fetch.ExtractJobText(html); renderErr == nil && len(rendered) > len(text) {
				text = rendered
			}
		} else if opts.Verbose {
			log.Printf("[VERBOSE] Browser fallback failed: %v", browserErr)
		}
	}

	return ParsePosting(text), nil
}

// FromDescription wraps pasted job description text as a posting.
func FromDescription(text string) *types.JobPosting {
	return ParsePosting(text)
}

// sectionHeaders maps normalized heading text to the posting field the
// following lines belong to.
var sectionHeaders = map[string]string{
	"requirements":          "requirements",
	"required skills":       "requirements",
	"required":              "requirements",
	"what you bring":        "requirements",
	"must have":             "requirements",
	"responsibilities":      "responsibilities",
	"what you'll do":        "responsibilities",
	"what you will do":      "responsibilities",
	"the role":              "responsibilities",
	"qualifications":        "qualifications",
	"preferred":             "qualifications",
	"nice to have":          "qualifications",
	"about this job":        "about",
	"about the role":        "about",
	"about the job":         "about",
	"about the position":    "about",
	"description":           "about",
	"job description":       "about",
	"about us":              "company",
	"about the company":     "company",
	"who we are":            "company",
}

// ParsePosting splits extracted posting text into structured fields by
// recognizing common section headers. The first non-empty line is treated
// as the title. When no section is recognized the whole text lands in
// RawText so downstream consumers always have something to score against.
func ParsePosting(text string) *types.JobPosting {
	posting := &types.JobPosting{RawText: text}

	lines := strings.Split(text, "\n")
	section := ""
	structured := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if posting.JobTitle == "" && section == "" {
			posting.JobTitle = line
			continue
		}

		if name, ok := sectionHeaders[normalizeHeader(line)]; ok {
			section = name
			structured = true
			continue
		}

		item := strings.TrimLeft(line, "•-*· \t")
		switch section {
		case "requirements":
			posting.Requirements = append(posting.Requirements, item)
		case "responsibilities":
			posting.Responsibilities = append(posting.Responsibilities, item)
		case "qualifications":
			posting.Qualifications = append(posting.Qualifications, item)
		case "about":
			if posting.AboutThisJob != "" {
				posting.AboutThisJob += " "
			}
			posting.AboutThisJob += line
		case "company":
			if posting.CompanyName == "" {
				posting.CompanyName = firstSentence(line)
			}
		}
	}

	if !structured {
		// Nothing recognizable; keep only the raw blob.
		posting.Requirements = nil
		posting.Responsibilities = nil
		posting.Qualifications = nil
	}
	return posting
}

// normalizeHeader lowercases a line and strips trailing punctuation so
// "Requirements:" and "REQUIREMENTS" both match.
func normalizeHeader(line string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(line)), ":.")
}

func firstSentence(text string) string {
	if idx := strings.IndexAny(text, ".!"); idx > 0 {
		return strings.TrimSpace(text[:idx])
	}
	return strings.TrimSpace(text)
}
