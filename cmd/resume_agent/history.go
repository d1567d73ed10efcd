package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/db"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/history"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/observability"
)

var historyUserID string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and navigate a user's version timeline",
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the undo/redo timeline",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withHistoryService(func(ctx context.Context, svc *history.Service, userID uuid.UUID) error {
			snapshot, err := svc.GetTimeline(ctx, userID)
			if err != nil {
				return fmt.Errorf("failed to load timeline: %w", err)
			}
			observability.NewPrinter(os.Stdout).PrintTimeline(snapshot)
			return nil
		})
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Step back to the previous resume version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withHistoryService(func(ctx context.Context, svc *history.Service, userID uuid.UUID) error {
			result, err := svc.Undo(ctx, userID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(os.Stdout, "Restored version %s (score %.1f)\n",
				result.Current.ResumeVersionID, result.Current.ATSScore)
			return nil
		})
	},
}

var redoCmd = &cobra.Command{
	Use:   "redo",
	Short: "Step forward to an undone resume version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withHistoryService(func(ctx context.Context, svc *history.Service, userID uuid.UUID) error {
			result, err := svc.Redo(ctx, userID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(os.Stdout, "Restored version %s (score %.1f)\n",
				result.Current.ResumeVersionID, result.Current.ATSScore)
			return nil
		})
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved version for the user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withHistoryService(func(ctx context.Context, svc *history.Service, userID uuid.UUID) error {
			if err := svc.ClearTimeline(ctx, userID); err != nil {
				return fmt.Errorf("failed to clear timeline: %w", err)
			}
			_, _ = fmt.Fprintln(os.Stdout, "Timeline cleared")
			return nil
		})
	},
}

func init() {
	historyCmd.PersistentFlags().StringVar(&historyUserID, "user-id", "", "User UUID (required)")
	_ = historyCmd.MarkPersistentFlagRequired("user-id")

	historyCmd.AddCommand(timelineCmd, undoCmd, redoCmd, clearCmd)
	rootCmd.AddCommand(historyCmd)
}

// withHistoryService opens the database, builds a history service, and runs
// fn against it.
func withHistoryService(fn func(ctx context.Context, svc *history.Service, userID uuid.UUID) error) error {
	ctx := context.Background()

	userID, err := uuid.Parse(historyUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", historyUserID, err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	return fn(ctx, history.NewService(database), userID)
}
