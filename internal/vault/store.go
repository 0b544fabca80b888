package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gitscribe/gitscribe/internal/period"
)

// ErrNotFound is returned by ReadText when no file exists at the path.
var ErrNotFound = errors.New("log file not found")

// ErrVaultPathInvalid is returned by Open when the vault root does not
// exist or is not a directory.
var ErrVaultPathInvalid = errors.New("vault path does not exist")

// Store reads and writes log documents under a vault root directory.
type Store struct {
	root string
}

// Open validates the vault root and returns a store rooted there.
func Open(root string) (*Store, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vault path: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrVaultPathInvalid, absRoot)
	}
	return &Store{root: absRoot}, nil
}

func (s *Store) Root() string {
	return s.root
}

// AbsPath resolves a vault-relative path to an absolute one.
func (s *Store) AbsPath(relPath string) string {
	return filepath.Join(s.root, relPath)
}

// ReadText returns the contents of the file at the vault-relative path,
// or ErrNotFound when no such file exists.
func (s *Store) ReadText(relPath string) (string, error) {
	data, err := os.ReadFile(s.AbsPath(relPath))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, relPath)
		}
		return "", fmt.Errorf("failed to read %s: %w", relPath, err)
	}
	return string(data), nil
}

// WriteText writes text to the vault-relative path, creating parent
// directories as needed. The write goes through a temp file and rename so
// a reader never observes a torn log.
func (s *Store) WriteText(relPath, text string) error {
	outPath := s.AbsPath(relPath)
	dir := filepath.Dir(outPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	return nil
}

// Exists reports whether a file is present at the vault-relative path.
func (s *Store) Exists(relPath string) bool {
	info, err := os.Stat(s.AbsPath(relPath))
	return err == nil && !info.IsDir()
}

// DailyPath returns the vault-relative location of a project's daily log.
// The layout is load-bearing: the weekly/monthly existence checks and
// cross-machine merging both depend on it.
func DailyPath(project string, date time.Time) string {
	return filepath.Join(project, "Daily", period.FormatDate(date)+".md")
}

// WeeklyPath returns the vault-relative location of a weekly summary.
func WeeklyPath(project string, weekStart time.Time) string {
	return filepath.Join("Weekly", project, period.FormatWeekID(weekStart)+".md")
}

// MonthlyPath returns the vault-relative location of a monthly summary.
func MonthlyPath(project string, monthStart time.Time) string {
	return filepath.Join("Monthly", project, period.FormatMonthID(monthStart)+".md")
}
