package journal

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gitscribe/gitscribe/internal/period"
)

const (
	weeklyHighlightLimit  = 10
	monthlyHighlightLimit = 15
)

// BuildWeekly folds a week's daily summaries into a WeeklyAggregate. The
// active-day count is the number of summaries, not seven; days without
// activity have no summary to count.
func BuildWeekly(summaries []DailySummary, weekStart, weekEnd time.Time) WeeklyAggregate {
	agg := WeeklyAggregate{
		WeekID:     period.FormatWeekID(weekStart),
		Start:      weekStart,
		End:        weekEnd,
		ActiveDays: len(summaries),
	}
	for _, s := range summaries {
		agg.TotalCommits += s.CommitCount
		agg.TotalFiles += s.FilesChanged
	}
	return agg
}

// BuildMonthly folds a month's daily summaries into a MonthlyAggregate,
// including the per-ISO-week commit breakdown sorted ascending by week
// number.
func BuildMonthly(summaries []DailySummary, monthDate time.Time) MonthlyAggregate {
	agg := MonthlyAggregate{
		MonthID:    period.FormatMonthID(monthDate),
		Month:      monthDate,
		ActiveDays: len(summaries),
	}

	weekCommits := make(map[int]int)
	for _, s := range summaries {
		agg.TotalCommits += s.CommitCount
		agg.TotalFiles += s.FilesChanged
		weekCommits[period.ISOWeekNumber(s.Date)] += s.CommitCount
	}

	for week, commits := range weekCommits {
		agg.Weeks = append(agg.Weeks, WeekBreakdown{Week: week, Commits: commits})
	}
	sort.Slice(agg.Weeks, func(i, j int) bool {
		return agg.Weeks[i].Week < agg.Weeks[j].Week
	})
	return agg
}

// RenderWeekly produces the weekly summary document from the aggregate and
// the daily summaries it was built from.
func RenderWeekly(project string, agg WeeklyAggregate, summaries []DailySummary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Weekly Summary - %s\n\n", agg.WeekID))
	sb.WriteString(fmt.Sprintf("**Project:** %s\n", project))
	sb.WriteString(fmt.Sprintf("**Period:** %s to %s\n\n", period.FormatDate(agg.Start), period.FormatDate(agg.End)))

	writeTotals(&sb, agg.TotalCommits, agg.TotalFiles, agg.ActiveDays)
	writeFocusRanking(&sb, summaries)
	writeDailyTable(&sb, summaries)
	writeHighlights(&sb, summaries, weeklyHighlightLimit)

	return sb.String()
}

// RenderMonthly produces the monthly summary document, mirroring the
// weekly layout plus the per-week commit table.
func RenderMonthly(project string, agg MonthlyAggregate, summaries []DailySummary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Monthly Summary - %s\n\n", agg.MonthID))
	sb.WriteString(fmt.Sprintf("**Project:** %s\n", project))
	sb.WriteString(fmt.Sprintf("**Period:** %s\n\n", agg.Month.Format("January 2006")))

	writeTotals(&sb, agg.TotalCommits, agg.TotalFiles, agg.ActiveDays)
	writeFocusRanking(&sb, summaries)

	sb.WriteString("## Weekly Breakdown\n\n")
	sb.WriteString("| Week | Commits |\n")
	sb.WriteString("| --- | --- |\n")
	for _, w := range agg.Weeks {
		sb.WriteString(fmt.Sprintf("| W%02d | %d |\n", w.Week, w.Commits))
	}
	sb.WriteString("\n")

	writeDailyTable(&sb, summaries)
	writeHighlights(&sb, summaries, monthlyHighlightLimit)

	return sb.String()
}

func writeTotals(sb *strings.Builder, commits, files, activeDays int) {
	sb.WriteString("## Totals\n\n")
	sb.WriteString(fmt.Sprintf("- Commits: %d\n", commits))
	sb.WriteString(fmt.Sprintf("- Files changed: %d\n", files))
	sb.WriteString(fmt.Sprintf("- Active days: %d\n\n", activeDays))
}

// writeFocusRanking lists focus areas descending by commit count, ties
// broken by the order they first appear across the summaries.
func writeFocusRanking(sb *strings.Builder, summaries []DailySummary) {
	totals := AggregateFocusAreas(summaries)

	var order []string
	firstSeen := make(map[string]int)
	for i, s := range summaries {
		if _, ok := firstSeen[s.FocusArea]; !ok {
			firstSeen[s.FocusArea] = i
			order = append(order, s.FocusArea)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		if totals[order[i]] != totals[order[j]] {
			return totals[order[i]] > totals[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	sb.WriteString("## Focus Areas\n\n")
	for i, label := range order {
		sb.WriteString(fmt.Sprintf("%d. %s (%d commits)\n", i+1, label, totals[label]))
	}
	sb.WriteString("\n")
}

func writeDailyTable(sb *strings.Builder, summaries []DailySummary) {
	sb.WriteString("## Daily Breakdown\n\n")
	sb.WriteString("| Date | Commits | Files | Focus |\n")
	sb.WriteString("| --- | --- | --- | --- |\n")
	for _, s := range summaries {
		sb.WriteString(fmt.Sprintf("| %s | %d | %d | %s |\n",
			period.FormatDate(s.Date), s.CommitCount, s.FilesChanged, s.FocusArea))
	}
	sb.WriteString("\n")
}

func writeHighlights(sb *strings.Builder, summaries []DailySummary, limit int) {
	sb.WriteString("## Highlights\n\n")
	for _, m := range TopCommitMessages(summaries, limit) {
		sb.WriteString(fmt.Sprintf("- %s\n", m))
	}
}
