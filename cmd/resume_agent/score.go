package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/observability"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/scoring"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

var (
	scoreResume    string
	scoreJob       string
	scoreQuickWins bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long: `Computes a keyword-based compatibility report for a resume without
editing anything. The job description is analyzed per language, so mixed
multilingual postings are scored section by section.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume JSON document (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description text file (required)")
	scoreCmd.Flags().BoolVar(&scoreQuickWins, "quick-wins", true, "Include quick-win suggestions in the report")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	doc, err := loadResumeDocument(scoreResume)
	if err != nil {
		return err
	}

	resume, err := types.DecodeResume(doc)
	if err != nil {
		return fmt.Errorf("invalid resume document: %w", err)
	}

	jobText, err := loadJobText(scoreJob)
	if err != nil {
		return err
	}

	engine := scoring.NewEngine()
	report := engine.Score(resume, jobText, scoring.Options{GenerateQuickWins: scoreQuickWins})

	observability.NewPrinter(os.Stdout).PrintScoreReport(report)
	return nil
}
