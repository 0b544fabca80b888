package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitscribe/gitscribe/internal/journal"
)

var summaryDate string

var summaryCmd = &cobra.Command{
	Use:   "summary [path]",
	Short: "Write weekly and monthly summaries from the daily logs",
	Long: `Generate the weekly and monthly summaries for the periods before the
reference date (default: today).

A summary is only written when the period has at least two active days,
and never overwrites one that already exists.

Examples:
  gitscribe summary
  gitscribe summary --date 2025-07-01
  gitscribe summary ~/projects/myapp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVar(&summaryDate, "date", "", "Reference date as YYYY-MM-DD (default: today)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	_, store, project, err := resolveTarget(args)
	if err != nil {
		return err
	}

	ref := time.Now()
	if summaryDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", summaryDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD): %w", summaryDate, err)
		}
		ref = parsed
	}

	written, err := journal.GenerateSummaries(store, project, ref)
	if err != nil {
		return err
	}

	successColor := color.New(color.FgHiGreen)
	dimColor := color.New(color.FgHiBlack)

	if len(written) == 0 {
		dimColor.Println("No summaries generated (period already covered or fewer than 2 active days).")
		return nil
	}
	for _, path := range written {
		successColor.Printf("Wrote %s\n", path)
	}
	return nil
}
