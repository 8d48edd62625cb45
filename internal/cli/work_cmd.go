package cli

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/nost-not/nost/internal/cli/formatter"
)

func newStartWorkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "start-work [YYYY-MM-DD]",
		Aliases: []string{"sw"},
		Short:   "Start a work session",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workday := time.Now().Format("2006-01-02")
			if len(args) > 0 {
				if _, err := time.Parse("2006-01-02", args[0]); err != nil {
					return fmt.Errorf("invalid workday %q, expected YYYY-MM-DD", args[0])
				}
				workday = args[0]
			}

			path, err := app.Work.StartWork(context.Background(), workday)
			if err != nil {
				return err
			}

			fmt.Printf("Work session started (workday %s) in %s\n", workday, path)
			return nil
		},
	}
}

func newEndWorkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "end-work",
		Aliases: []string{"ew"},
		Short:   "Stop the active work session",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := app.Work.EndWork(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Work session stopped in %s\n", path)
			return nil
		},
	}
}

func newWorkStatsCmd(app *App) *cobra.Command {
	var inNote bool

	cmd := &cobra.Command{
		Use:     "work-stats [YYYY-MM]",
		Aliases: []string{"ws"},
		Short:   "Show worked time statistics for a month",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := time.Now().Format("2006-01")
			if len(args) > 0 {
				if !validMonth(args[0]) {
					return fmt.Errorf("invalid month %q, expected YYYY-MM", args[0])
				}
				month = args[0]
			}

			ctx := context.Background()
			stats, err := app.Work.MonthlyStats(ctx, month)
			if err != nil {
				return fmt.Errorf("computing stats for %s (is there a note for this month?): %w", month, err)
			}

			report := formatter.WorkStatsReport(stats, app.Config.Work.DailyRate, app.Config.Work.Currency)

			if inNote {
				path, err := app.Notes.GetOrCreate(ctx)
				if err != nil {
					return err
				}
				if err := appendReport(app, path, report); err != nil {
					return err
				}
				fmt.Printf("Stats appended to %s\n", path)
				return nil
			}

			fmt.Print(report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&inNote, "in-note", false, "Append the report to today's note instead of printing it")

	return cmd
}

func appendReport(app *App, path, report string) error {
	if app.AppendNote == nil {
		return fmt.Errorf("note sink is not configured")
	}
	return app.AppendNote(path, formatter.StripANSI(report))
}

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// validMonth reports whether s is a YYYY-MM month with 01 <= MM <= 12.
func validMonth(s string) bool {
	if !monthPattern.MatchString(s) {
		return false
	}
	m, err := strconv.Atoi(s[5:7])
	return err == nil && m >= 1 && m <= 12
}
