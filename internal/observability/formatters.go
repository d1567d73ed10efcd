// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreReport outputs a human-readable compatibility report.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall score: %.1f / 100\n", report.Score))

	if len(report.Languages) > 0 {
		sb.WriteString("\nPer-language:\n")
		langs := make([]string, 0, len(report.Languages))
		for lang := range report.Languages {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		for _, lang := range langs {
			sub := report.Languages[lang]
			marker := ""
			if sub.RTL {
				marker = " (rtl)"
			}
			sb.WriteString(fmt.Sprintf("  %s%s: %.1f\n", lang, marker, sub.Score))
		}
	}

	if len(report.MissingKeywords) > 0 {
		sb.WriteString("\nMissing keywords:\n")
		count := min(len(report.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.MissingKeywords[i]))
		}
		if len(report.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.MissingKeywords)-maxItemsToShow))
		}
	}

	if len(report.QuickWins) > 0 {
		sb.WriteString("\nQuick wins:\n")
		count := min(len(report.QuickWins), maxItemsToShow)
		for i := 0; i < count; i++ {
			win := report.QuickWins[i]
			text := win.Text
			if len(text) > 45 {
				text = text[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s (impact %.1f)\n", text, win.Impact))
		}
	}

	p.printBox("ATS COMPATIBILITY REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDiffs outputs the change records produced by a run.
func (p *Printer) PrintDiffs(diffs []types.ChangeRecord) {
	if len(diffs) == 0 {
		p.printBox("CHANGES", "No changes applied")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Applied %d changes:\n\n", len(diffs)))

	count := min(len(diffs), maxItemsToShow)
	for i := 0; i < count; i++ {
		diff := diffs[i]
		summary := diff.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", summary))
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", diff.Scope, diff.Metadata.Pointer))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(diffs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more changes", len(diffs)-maxItemsToShow))
	}

	p.printBox("CHANGES", sb.String())
}

// PrintTimeline outputs a user's undo/redo state.
func (p *Printer) PrintTimeline(snapshot *types.TimelineSnapshot) {
	if snapshot == nil {
		return
	}

	var sb strings.Builder

	for _, entry := range snapshot.Past {
		sb.WriteString(fmt.Sprintf("  %s  score %.1f\n", entry.CreatedAt.Format("2006-01-02 15:04"), entry.ATSScore))
	}
	if snapshot.Current != nil {
		sb.WriteString(fmt.Sprintf("→ %s  score %.1f (current)\n", snapshot.Current.CreatedAt.Format("2006-01-02 15:04"), snapshot.Current.ATSScore))
	} else {
		sb.WriteString("(no versions saved)\n")
	}
	for _, entry := range snapshot.Future {
		sb.WriteString(fmt.Sprintf("  %s  score %.1f (undone)\n", entry.CreatedAt.Format("2006-01-02 15:04"), entry.ATSScore))
	}

	p.printBox("RESUME TIMELINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAgentResult outputs the executed plan with per-action outcomes.
func (p *Printer) PrintAgentResult(result *types.AgentResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	for _, outcome := range result.Actions {
		marker := "✓"
		switch outcome.Status {
		case types.ActionFailed:
			marker = "✗"
		case types.ActionSkipped:
			marker = "-"
		}
		sb.WriteString(fmt.Sprintf("%s %s", marker, outcome.Tool))
		if outcome.Source == "suggested" {
			sb.WriteString(" (suggested)")
		}
		if outcome.Message != "" {
			message := outcome.Message
			if len(message) > 40 {
				message = message[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf(": %s", message))
		}
		sb.WriteString("\n")
	}

	p.printBox("AGENT RUN", strings.TrimSuffix(sb.String(), "\n"))
}
