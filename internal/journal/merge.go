package journal

import (
	"sort"
	"time"
)

// Merge combines freshly queried local commits with commits recovered from
// an existing log for the same date. Local commits always survive; prior
// commits are kept only when their hash prefix is not already present.
// This matters across machines: a log written elsewhere can hold commits
// this clone has never fetched, and they must not be lost on regeneration.
// The combined list is ordered by timestamp, most recent first.
func Merge(local []Commit, existingText string, date time.Time) []Commit {
	merged := make([]Commit, len(local))
	copy(merged, local)

	seen := make(map[string]bool, len(local))
	for _, c := range local {
		seen[c.ShortHash()] = true
	}

	// An existing log that does not match the ledger grammar contributes
	// nothing; the run proceeds on fresh commits alone.
	prior, _ := ParseDaily(existingText, date)
	for _, c := range prior {
		if seen[c.ShortHash()] {
			continue
		}
		seen[c.ShortHash()] = true
		merged = append(merged, c)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	return merged
}

// ContainsAll reports whether every commit in the list is already recorded
// in the fingerprint set. Callers use it to detect a no-op run before
// paying for a merge and rewrite.
func ContainsAll(fingerprints map[string]bool, commits []Commit) bool {
	for _, c := range commits {
		if !fingerprints[c.ShortHash()] {
			return false
		}
	}
	return true
}
