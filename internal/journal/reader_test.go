package journal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitscribe/gitscribe/internal/vault"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	files map[string]string
}

func newMemStore() *memStore {
	return &memStore{files: make(map[string]string)}
}

func (m *memStore) ReadText(relPath string) (string, error) {
	text, ok := m.files[relPath]
	if !ok {
		return "", fmt.Errorf("%w: %s", vault.ErrNotFound, relPath)
	}
	return text, nil
}

func (m *memStore) WriteText(relPath, text string) error {
	m.files[relPath] = text
	return nil
}

func (m *memStore) Exists(relPath string) bool {
	_, ok := m.files[relPath]
	return ok
}

func (m *memStore) putDaily(project string, date time.Time, commits []Commit) {
	m.files[vault.DailyPath(project, date)] = RenderDaily(project, date, commits)
}

func TestSummarize(t *testing.T) {
	date := day(2025, time.June, 11)
	summary := Summarize(date, sampleCommits(date))

	assert.Equal(t, 2, summary.CommitCount)
	assert.Equal(t, 4, summary.FilesChanged)
	assert.Equal(t, "Feature Development", summary.FocusArea)
	assert.Equal(t, []string{"feat: add parser", "fix: handle empty input"}, summary.Messages)
}

func TestReadRangeSkipsMissingAndEmptyDays(t *testing.T) {
	store := newMemStore()
	project := "myapp"

	d1 := day(2025, time.June, 9)
	d3 := day(2025, time.June, 11)
	d4 := day(2025, time.June, 12)

	store.putDaily(project, d1, sampleCommits(d1))
	// June 10 has no log at all.
	store.putDaily(project, d3, nil) // placeholder log, zero commits
	store.putDaily(project, d4, sampleCommits(d4))

	summaries, err := ReadRange(store, project, d1, day(2025, time.June, 15))
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "2025-06-09", summaries[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-06-12", summaries[1].Date.Format("2006-01-02"))
}

func TestReadRangeEmptyVault(t *testing.T) {
	store := newMemStore()
	summaries, err := ReadRange(store, "myapp", day(2025, time.June, 1), day(2025, time.June, 30))
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestReadRangeSkipsUnparseableLog(t *testing.T) {
	store := newMemStore()
	d := day(2025, time.June, 9)
	store.files[vault.DailyPath("myapp", d)] = "hand-written notes, no ledger\n"

	summaries, err := ReadRange(store, "myapp", d, d)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestAggregateFocusAreas(t *testing.T) {
	summaries := []DailySummary{
		{FocusArea: "Bug Fixing", CommitCount: 3},
		{FocusArea: "Feature Development", CommitCount: 5},
		{FocusArea: "Bug Fixing", CommitCount: 2},
	}
	totals := AggregateFocusAreas(summaries)
	assert.Equal(t, map[string]int{
		"Bug Fixing":          5,
		"Feature Development": 5,
	}, totals)
}

func TestTopCommitMessagesOldestFirst(t *testing.T) {
	summaries := []DailySummary{
		{Messages: []string{"monday one", "monday two"}},
		{Messages: []string{"tuesday one"}},
		{Messages: []string{"friday one", "friday two"}},
	}

	assert.Equal(t,
		[]string{"monday one", "monday two", "tuesday one"},
		TopCommitMessages(summaries, 3))
	assert.Equal(t, 5, len(TopCommitMessages(summaries, 10)))
	assert.Empty(t, TopCommitMessages(nil, 10))
}
