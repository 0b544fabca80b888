package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/gitscribe/gitscribe/internal/period"
	"github.com/gitscribe/gitscribe/internal/vault"
)

// minActiveDays is the generation threshold for weekly and monthly
// summaries; a single active day makes for a noisy "summary".
const minActiveDays = 2

// CommitSource yields commit records made after a cutoff. Order is
// unspecified; the merge step re-sorts regardless.
type CommitSource interface {
	CommitsSince(since time.Time) ([]Commit, error)
}

// DailyResult reports what GenerateDaily did for one date.
type DailyResult struct {
	Path     string
	Created  bool
	UpToDate bool
}

// GenerateDaily writes (or updates) the daily log for now's date. The
// fixed order is query, read existing, merge, render, write. When every
// freshly queried commit is already recorded in the existing log the file
// is left untouched and the result reports UpToDate.
func GenerateDaily(src CommitSource, store Store, project string, now time.Time) (DailyResult, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	local, err := src.CommitsSince(dayStart)
	if err != nil {
		return DailyResult{}, fmt.Errorf("failed to query commits: %w", err)
	}

	path := vault.DailyPath(project, now)
	result := DailyResult{Path: path}

	existing, err := store.ReadText(path)
	if err != nil && !errors.Is(err, vault.ErrNotFound) {
		return DailyResult{}, err
	}
	hasExisting := err == nil

	if hasExisting {
		if ContainsAll(ExtractFingerprints(existing), local) {
			result.UpToDate = true
			return result, nil
		}
	} else {
		result.Created = true
	}

	merged := Merge(local, existing, now)
	if err := store.WriteText(path, RenderDaily(project, now, merged)); err != nil {
		return DailyResult{}, err
	}
	return result, nil
}

// GenerateSummaries writes the weekly and monthly summaries for the
// periods immediately preceding the reference date, returning the paths
// written. A period is skipped when it has fewer than two active days or
// its document already exists; summaries are write-once and never
// regenerated.
func GenerateSummaries(store Store, project string, ref time.Time) ([]string, error) {
	var written []string

	week := period.PreviousWeekRange(ref)
	weekPath := vault.WeeklyPath(project, week.Start)
	if !store.Exists(weekPath) {
		summaries, err := ReadRange(store, project, week.Start, week.End)
		if err != nil {
			return written, err
		}
		if len(summaries) >= minActiveDays {
			agg := BuildWeekly(summaries, week.Start, week.End)
			if err := store.WriteText(weekPath, RenderWeekly(project, agg, summaries)); err != nil {
				return written, err
			}
			written = append(written, weekPath)
		}
	}

	month := period.PreviousMonthRange(ref)
	monthPath := vault.MonthlyPath(project, month.Start)
	if !store.Exists(monthPath) {
		summaries, err := ReadRange(store, project, month.Start, month.End)
		if err != nil {
			return written, err
		}
		if len(summaries) >= minActiveDays {
			agg := BuildMonthly(summaries, month.Start)
			if err := store.WriteText(monthPath, RenderMonthly(project, agg, summaries)); err != nil {
				return written, err
			}
			written = append(written, monthPath)
		}
	}

	return written, nil
}
