package git

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/gitscribe/gitscribe/internal/journal"
)

// CommitsSince returns the commits reachable from HEAD authored at or
// after the cutoff, with per-file change status. A repository with no
// commits yet yields an empty list, not an error.
func (r *Repository) CommitsSince(since time.Time) ([]journal.Commit, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	iter, err := r.repo.Log(&git.LogOptions{
		From:  head.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create log iterator: %w", err)
	}

	var commits []journal.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if c.Author.When.Before(since) {
			return fmt.Errorf("stop")
		}
		commits = append(commits, toCommit(c))
		return nil
	})
	if err != nil && err.Error() != "stop" {
		return nil, fmt.Errorf("failed to iterate commits: %w", err)
	}

	return commits, nil
}

func toCommit(c *object.Commit) journal.Commit {
	commit := journal.Commit{
		Hash:      c.Hash.String(),
		Message:   c.Message,
		Author:    c.Author.Name,
		Timestamp: c.Author.When,
	}

	var parent *object.Commit
	if c.NumParents() > 0 {
		parent, _ = c.Parent(0)
	}

	var parentTree *object.Tree
	if parent != nil {
		var err error
		parentTree, err = parent.Tree()
		if err != nil {
			return commit // Continue without diff
		}
	}

	commitTree, err := c.Tree()
	if err != nil {
		return commit
	}

	changes, err := object.DiffTree(parentTree, commitTree)
	if err != nil {
		return commit
	}

	for _, change := range changes {
		commit.FileChanges = append(commit.FileChanges, journal.FileChange{
			Path:   changePath(change),
			Status: changeStatus(change),
		})
	}
	commit.FilesChanged = len(commit.FileChanges)

	return commit
}

func changePath(change *object.Change) string {
	if change.To.Name != "" {
		return change.To.Name
	}
	return change.From.Name
}

// changeStatus maps a tree diff to the closed added/modified/deleted set.
// Renames fold into a modification of the post-rename path; the old path
// is discarded.
func changeStatus(change *object.Change) journal.ChangeStatus {
	switch {
	case change.From.Name == "":
		return journal.StatusAdded
	case change.To.Name == "":
		return journal.StatusDeleted
	default:
		return journal.StatusModified
	}
}
