package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePreservesForeignCommits(t *testing.T) {
	// A log written by another machine holds a commit this clone cannot
	// re-derive; merging must keep it.
	date := day(2025, time.June, 11)
	local := []Commit{{
		Hash:      "abc1234f00d5678deadbeef9012345678abcdef0",
		Message:   "feat: x",
		Author:    "Jane",
		Timestamp: at(date, 9, 0),
	}}
	existing := RenderDaily("myapp", date, []Commit{{
		Hash:      "def5678beef1234cafe9012345678abcdef01234",
		Message:   "fix: y",
		Author:    "Sam",
		Timestamp: at(date, 8, 0),
	}})

	merged := Merge(local, existing, date)
	require.Len(t, merged, 2)
	assert.Equal(t, "abc1234", merged[0].ShortHash())
	assert.Equal(t, "def5678", merged[1].ShortHash())
	assert.True(t, merged[0].Timestamp.After(merged[1].Timestamp))
}

func TestMergeDeduplicatesByPrefix(t *testing.T) {
	date := day(2025, time.June, 11)
	local := sampleCommits(date)
	existing := RenderDaily("myapp", date, local)

	merged := Merge(local, existing, date)
	require.Len(t, merged, 2)

	// Abbreviated hash in the log still matches the full local hash.
	abbreviated := RenderDaily("myapp", date, []Commit{{
		Hash:      "abc1234",
		Message:   "feat: add parser",
		Author:    "Jane Doe",
		Timestamp: at(date, 14, 23),
	}})
	merged = Merge(local, abbreviated, date)
	require.Len(t, merged, 2)
}

func TestMergeSortsByTimestampDescending(t *testing.T) {
	date := day(2025, time.June, 11)
	local := []Commit{
		{Hash: "aaa1111000000", Message: "feat: a", Timestamp: at(date, 10, 0)},
		{Hash: "bbb2222000000", Message: "fix: b", Timestamp: at(date, 16, 0)},
	}
	existing := RenderDaily("myapp", date, []Commit{
		{Hash: "ccc3333000000", Message: "test: c", Author: "Sam", Timestamp: at(date, 12, 30)},
	})

	merged := Merge(local, existing, date)
	require.Len(t, merged, 3)
	// The prior commit lands between the two local ones after the sort.
	assert.Equal(t, "bbb2222", merged[0].ShortHash())
	assert.Equal(t, "ccc3333", merged[1].ShortHash())
	assert.Equal(t, "aaa1111", merged[2].ShortHash())
}

func TestMergeUnparseableExistingText(t *testing.T) {
	date := day(2025, time.June, 11)
	local := sampleCommits(date)

	merged := Merge(local, "not a log at all\njust some notes\n", date)
	require.Len(t, merged, 2)

	merged = Merge(local, "", date)
	require.Len(t, merged, 2)
}

func TestMergeIdempotent(t *testing.T) {
	date := day(2025, time.June, 11)
	local := sampleCommits(date)
	existing := RenderDaily("myapp", date, []Commit{{
		Hash:      "def5678beef1234cafe9012345678abcdef01234",
		Message:   "fix: handle empty input",
		Author:    "Jane Doe",
		Timestamp: at(date, 9, 5),
	}})

	first := Merge(local, existing, date)
	rendered := RenderDaily("myapp", date, first)
	second := Merge(first, rendered, date)

	assert.Equal(t, fingerprintSet(first), fingerprintSet(second))
}

func TestContainsAll(t *testing.T) {
	date := day(2025, time.June, 11)
	commits := sampleCommits(date)
	fingerprints := ExtractFingerprints(RenderDaily("myapp", date, commits))

	assert.True(t, ContainsAll(fingerprints, commits))
	assert.True(t, ContainsAll(fingerprints, nil))

	extra := append([]Commit{}, commits...)
	extra = append(extra, Commit{Hash: "fff9999000000", Message: "feat: new"})
	assert.False(t, ContainsAll(fingerprints, extra))
}

func fingerprintSet(commits []Commit) map[string]bool {
	set := make(map[string]bool)
	for _, c := range commits {
		set[c.ShortHash()] = true
	}
	return set
}
