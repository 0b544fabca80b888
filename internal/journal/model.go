package journal

import "time"

// ChangeStatus classifies what happened to a file in a commit.
type ChangeStatus string

const (
	StatusAdded    ChangeStatus = "added"
	StatusModified ChangeStatus = "modified"
	StatusDeleted  ChangeStatus = "deleted"
)

// hashPrefixLen is the number of leading hash characters used for commit
// identity. Both abbreviated and full hashes appear in parsed logs, so
// comparisons always go through this prefix.
const hashPrefixLen = 7

// FileChange is one file touched by a commit. Renames are recorded as a
// modification of the post-rename path.
type FileChange struct {
	Path   string
	Status ChangeStatus
}

// Commit is one source-control change. Identity is the hash prefix.
type Commit struct {
	Hash         string
	Message      string
	Author       string
	Timestamp    time.Time
	FileChanges  []FileChange
	FilesChanged int
}

// HashPrefix returns the stable identity prefix for a hash string.
func HashPrefix(hash string) string {
	if len(hash) > hashPrefixLen {
		return hash[:hashPrefixLen]
	}
	return hash
}

// ShortHash returns the commit's identity prefix.
func (c Commit) ShortHash() string {
	return HashPrefix(c.Hash)
}

// FileCount returns the commit's files-changed count, falling back to the
// length of the change list when no explicit count was recorded.
func (c Commit) FileCount() int {
	if c.FilesChanged > 0 {
		return c.FilesChanged
	}
	return len(c.FileChanges)
}

// DailySummary is the reduced view of one day's log. It is only ever
// produced from a log with at least one commit; a day without activity has
// no summary at all.
type DailySummary struct {
	Date         time.Time
	CommitCount  int
	FilesChanged int
	FocusArea    string
	Messages     []string
}

// WeeklyAggregate is the fold of one Monday-Sunday week of summaries.
type WeeklyAggregate struct {
	WeekID       string
	Start        time.Time
	End          time.Time
	TotalCommits int
	TotalFiles   int
	ActiveDays   int
}

// WeekBreakdown is one row of a monthly per-week commit count.
type WeekBreakdown struct {
	Week    int
	Commits int
}

// MonthlyAggregate is the fold of one calendar month of summaries.
type MonthlyAggregate struct {
	MonthID      string
	Month        time.Time
	TotalCommits int
	TotalFiles   int
	ActiveDays   int
	Weeks        []WeekBreakdown
}
