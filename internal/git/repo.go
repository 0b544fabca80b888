package git

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// ErrNotARepository is returned when the target path is not inside a
// recognized git repository.
var ErrNotARepository = errors.New("not a git repository")

type Repository struct {
	repo *git.Repository
	path string
}

func OpenRepo(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := git.PlainOpen(absPath)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, absPath)
		}
		return nil, fmt.Errorf("failed to open git repository at %s: %w", absPath, err)
	}

	return &Repository{
		repo: repo,
		path: absPath,
	}, nil
}

func (r *Repository) Path() string {
	return r.path
}

// Name returns the repository's directory name, used as the default
// project name in the vault.
func (r *Repository) Name() string {
	return filepath.Base(r.path)
}
