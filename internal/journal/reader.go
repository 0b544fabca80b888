package journal

import (
	"errors"
	"time"

	"github.com/gitscribe/gitscribe/internal/period"
	"github.com/gitscribe/gitscribe/internal/vault"
)

// Store is the slice of the vault the journal needs: named text blobs with
// parent-directory creation on write.
type Store interface {
	ReadText(relPath string) (string, error)
	WriteText(relPath, text string) error
	Exists(relPath string) bool
}

// Summarize reduces one day's commits to its DailySummary. Callers must
// not invoke it for an empty commit list; days without activity have no
// summary.
func Summarize(date time.Time, commits []Commit) DailySummary {
	summary := DailySummary{
		Date:        date,
		CommitCount: len(commits),
		FocusArea:   inferFocusArea(commits),
	}
	for _, c := range commits {
		summary.FilesChanged += c.FileCount()
		summary.Messages = append(summary.Messages, firstLine(c.Message))
	}
	return summary
}

// ReadRange loads each day's log in [start, end] and reduces it to a
// DailySummary, ascending by date. Dates with no log file, an unparseable
// log, or zero commits are omitted rather than reported as errors.
func ReadRange(store Store, project string, start, end time.Time) ([]DailySummary, error) {
	var summaries []DailySummary
	for _, date := range period.DatesInRange(start, end) {
		text, err := store.ReadText(vault.DailyPath(project, date))
		if err != nil {
			if errors.Is(err, vault.ErrNotFound) {
				continue
			}
			return nil, err
		}
		commits, err := ParseDaily(text, date)
		if err != nil || len(commits) == 0 {
			continue
		}
		summaries = append(summaries, Summarize(date, commits))
	}
	return summaries, nil
}

// AggregateFocusAreas totals commit counts per focus-area label across the
// summaries.
func AggregateFocusAreas(summaries []DailySummary) map[string]int {
	totals := make(map[string]int)
	for _, s := range summaries {
		totals[s.FocusArea] += s.CommitCount
	}
	return totals
}

// TopCommitMessages flattens the summaries' message lists in the given
// order and returns the first limit entries. Summaries arrive ascending by
// date, so the result leads with the oldest messages; highlight sections
// read better when early-period context comes first.
func TopCommitMessages(summaries []DailySummary, limit int) []string {
	var messages []string
	for _, s := range summaries {
		for _, m := range s.Messages {
			if len(messages) >= limit {
				return messages
			}
			messages = append(messages, m)
		}
	}
	return messages
}
