package journal

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gitscribe/gitscribe/internal/period"
)

// ErrParseRecovery signals that an existing log did not match the ledger
// grammar and no prior commits could be recovered from it. Callers treat
// this as "no prior commits", never as a fatal failure.
var ErrParseRecovery = errors.New("no commit entries recoverable from log text")

const noActivityLine = "No commits recorded for this day."

// Ledger line grammar. Each entry is exactly four lines in this order.
var (
	ledgerTimeRe   = regexp.MustCompile(`^\*\*(\d{2}):(\d{2})\*\* - (.*)$`)
	ledgerHashRe   = regexp.MustCompile(`^- Hash: ([0-9a-fA-F]{7,64})$`)
	ledgerAuthorRe = regexp.MustCompile(`^- Author: (.*)$`)
	ledgerFilesRe  = regexp.MustCompile(`^- Files changed: (\d+)$`)

	changeHeadRe = regexp.MustCompile(`^\*\*(.+)\*\*$`)
	changeLineRe = regexp.MustCompile(`^- \[([AMD])\] (.+)$`)
)

// RenderDaily produces the canonical daily log for one date: session
// metadata, a checklist of commit messages, the per-file change list, and
// the fenced commit ledger that ParseDaily reads back.
func RenderDaily(project string, date time.Time, commits []Commit) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Daily Log - %s\n\n", period.FormatDate(date)))
	sb.WriteString(fmt.Sprintf("**Project:** %s\n", project))
	sb.WriteString(fmt.Sprintf("**Focus:** %s\n", inferFocusArea(commits)))
	sb.WriteString(fmt.Sprintf("**Duration:** %s\n\n", sessionDuration(commits)))

	if len(commits) == 0 {
		sb.WriteString(noActivityLine + "\n")
		return sb.String()
	}

	sb.WriteString("## Commits\n\n")
	for _, c := range commits {
		sb.WriteString(fmt.Sprintf("- [x] %s\n", firstLine(c.Message)))
	}
	sb.WriteString("\n")

	sb.WriteString("## Files Changed\n\n")
	for _, c := range commits {
		if len(c.FileChanges) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("**%s**\n", firstLine(c.Message)))
		for _, fc := range c.FileChanges {
			sb.WriteString(fmt.Sprintf("- [%s] %s\n", statusMarker(fc.Status), fc.Path))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Commit Log\n\n")
	sb.WriteString("```\n")
	for i, c := range commits {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("**%s** - %s\n", c.Timestamp.Format("15:04"), firstLine(c.Message)))
		sb.WriteString(fmt.Sprintf("- Hash: %s\n", c.Hash))
		sb.WriteString(fmt.Sprintf("- Author: %s\n", c.Author))
		sb.WriteString(fmt.Sprintf("- Files changed: %d\n", c.FileCount()))
	}
	sb.WriteString("```\n")

	return sb.String()
}

// ParseDaily recovers commits from a previously rendered daily log. The
// ledger stores only clock times, so timestamps are rebuilt against the
// given date. File changes are joined back to commits by exact message
// equality; duplicate messages on one day collapse onto the first match.
func ParseDaily(text string, date time.Time) ([]Commit, error) {
	lines := strings.Split(text, "\n")

	var commits []Commit
	for i := 0; i+3 < len(lines); i++ {
		tm := ledgerTimeRe.FindStringSubmatch(lines[i])
		if tm == nil {
			continue
		}
		hm := ledgerHashRe.FindStringSubmatch(lines[i+1])
		am := ledgerAuthorRe.FindStringSubmatch(lines[i+2])
		fm := ledgerFilesRe.FindStringSubmatch(lines[i+3])
		if hm == nil || am == nil || fm == nil {
			continue
		}

		hour, _ := strconv.Atoi(tm[1])
		minute, _ := strconv.Atoi(tm[2])
		count, _ := strconv.Atoi(fm[1])

		commits = append(commits, Commit{
			Hash:    hm[1],
			Message: tm[3],
			Author:  am[1],
			Timestamp: time.Date(date.Year(), date.Month(), date.Day(),
				hour, minute, 0, 0, date.Location()),
			FilesChanged: count,
		})
		i += 3
	}

	if len(commits) == 0 {
		if strings.TrimSpace(text) == "" || strings.Contains(text, noActivityLine) {
			return nil, nil
		}
		return nil, ErrParseRecovery
	}

	attachFileChanges(lines, commits)
	return commits, nil
}

// ExtractFingerprints returns the identity prefixes of every commit hash
// recorded in the log's ledger.
func ExtractFingerprints(text string) map[string]bool {
	fingerprints := make(map[string]bool)
	for _, line := range strings.Split(text, "\n") {
		if m := ledgerHashRe.FindStringSubmatch(line); m != nil {
			fingerprints[HashPrefix(m[1])] = true
		}
	}
	return fingerprints
}

// attachFileChanges walks the Files Changed section and assigns each file
// line to the first parsed commit whose message matches the bold heading
// above it.
func attachFileChanges(lines []string, commits []Commit) {
	inSection := false
	target := -1
	for _, line := range lines {
		if strings.HasPrefix(line, "## ") {
			inSection = strings.TrimPrefix(line, "## ") == "Files Changed"
			target = -1
			continue
		}
		if !inSection {
			continue
		}
		if m := changeHeadRe.FindStringSubmatch(line); m != nil {
			target = -1
			for idx, c := range commits {
				if c.Message == m[1] {
					target = idx
					break
				}
			}
			continue
		}
		if m := changeLineRe.FindStringSubmatch(line); m != nil && target >= 0 {
			commits[target].FileChanges = append(commits[target].FileChanges, FileChange{
				Path:   m[2],
				Status: markerStatus(m[1]),
			})
		}
	}
}

// focusCategories is the fixed vocabulary for focus-area inference,
// checked in order; a message counts toward the first category that
// matches it.
var focusCategories = []struct {
	Label    string
	Keywords []string
}{
	{"Testing", []string{"test", "spec", "coverage"}},
	{"Bug Fixing", []string{"fix", "bug", "hotfix", "patch"}},
	{"Feature Development", []string{"feat", "add", "implement", "introduce"}},
	{"Refactoring", []string{"refactor", "cleanup", "restructure", "simplify"}},
}

const defaultFocusArea = "Development"

// inferFocusArea picks the most frequent focus category among the commits'
// messages. Ties go to the category seen first; no match at all yields the
// generic default.
func inferFocusArea(commits []Commit) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, c := range commits {
		label := classifyMessage(c.Message)
		if label == "" {
			continue
		}
		if _, ok := firstSeen[label]; !ok {
			firstSeen[label] = i
		}
		counts[label]++
	}

	best := ""
	for label, n := range counts {
		if best == "" {
			best = label
			continue
		}
		if n > counts[best] || (n == counts[best] && firstSeen[label] < firstSeen[best]) {
			best = label
		}
	}
	if best == "" {
		return defaultFocusArea
	}
	return best
}

func classifyMessage(message string) string {
	lower := strings.ToLower(message)
	for _, cat := range focusCategories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat.Label
			}
		}
	}
	return ""
}

// sessionDuration formats the span between the earliest and latest commit
// of the day. An empty day has no duration, not a zero one.
func sessionDuration(commits []Commit) string {
	if len(commits) == 0 {
		return "N/A"
	}
	earliest := commits[0].Timestamp
	latest := commits[0].Timestamp
	for _, c := range commits[1:] {
		if c.Timestamp.Before(earliest) {
			earliest = c.Timestamp
		}
		if c.Timestamp.After(latest) {
			latest = c.Timestamp
		}
	}
	span := latest.Sub(earliest)
	hours := int(span.Hours())
	minutes := int(span.Minutes()) % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func statusMarker(s ChangeStatus) string {
	switch s {
	case StatusAdded:
		return "A"
	case StatusDeleted:
		return "D"
	default:
		return "M"
	}
}

func markerStatus(marker string) ChangeStatus {
	switch marker {
	case "A":
		return StatusAdded
	case "D":
		return StatusDeleted
	default:
		return StatusModified
	}
}

func firstLine(message string) string {
	return strings.TrimSpace(strings.Split(strings.TrimSpace(message), "\n")[0])
}
