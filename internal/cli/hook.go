package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/gitscribe/gitscribe/internal/git"
)

const hookMarker = "# gitscribe-hook"

var (
	hookDryRun    bool
	hookYes       bool
	hookRemoveYes bool
)

var hookCmd = &cobra.Command{
	Use:   "hook [path]",
	Short: "Install a post-commit hook that keeps the vault current",
	Long: `Install a git post-commit hook that runs 'gitscribe log' and
'gitscribe summary' after every commit, so the vault stays current
without manual runs.

Existing hook contents are preserved; gitscribe manages only its own
marker-tagged lines.

Examples:
  gitscribe hook
  gitscribe hook ~/projects/myapp --yes
  gitscribe hook --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHookInstall,
}

var hookRemoveCmd = &cobra.Command{
	Use:   "remove [path]",
	Short: "Remove the gitscribe post-commit hook lines",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHookRemove,
}

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.AddCommand(hookRemoveCmd)

	hookCmd.Flags().BoolVar(&hookDryRun, "dry-run", false, "Print the hook lines without installing them")
	hookCmd.Flags().BoolVarP(&hookYes, "yes", "y", false, "Skip confirmation prompt and install immediately")
	hookRemoveCmd.Flags().BoolVarP(&hookRemoveYes, "yes", "y", false, "Skip confirmation prompt and remove immediately")
}

func runHookInstall(cmd *cobra.Command, args []string) error {
	targetPath := "."
	if len(args) > 0 {
		targetPath = args[0]
	}
	repo, err := git.OpenRepo(targetPath)
	if err != nil {
		return err
	}

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if resolved, resolveErr := filepath.EvalSymlinks(execPath); resolveErr == nil {
		execPath = resolved
	}

	logDir := filepath.Join(gitscribeHomeDir(), "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	logPath := filepath.Join(logDir, fmt.Sprintf("hook-%s.log", sanitizeToken(repo.Name())))

	hookLines := buildHookLines(execPath, repo.Path(), logPath)

	if hookDryRun {
		fmt.Println(strings.Join(hookLines, "\n"))
		return nil
	}

	if !hookYes {
		infoColor := color.New(color.FgCyan)
		dimColor := color.New(color.FgHiBlack)
		infoColor.Println("GitScribe will install a post-commit hook in this repository.")
		dimColor.Printf("Repo: %s\n", repo.Path())
		dimColor.Printf("Log:  %s\n", logPath)

		prompt := promptui.Prompt{Label: "Install hook", IsConfirm: true}
		if _, err := prompt.Run(); err != nil {
			dimColor.Println("Canceled. No hook was installed.")
			return nil
		}
	}

	hookPath := filepath.Join(repo.Path(), ".git", "hooks", "post-commit")
	existing, err := readHookFile(hookPath)
	if err != nil {
		return err
	}

	lines := stripMarkedLines(existing)
	if len(lines) == 0 {
		lines = []string{"#!/bin/sh"}
	}
	lines = append(lines, hookLines...)

	if err := writeHookFile(hookPath, lines); err != nil {
		return err
	}

	successColor := color.New(color.FgHiGreen)
	dimColor := color.New(color.FgHiBlack)
	successColor.Println("Post-commit hook installed.")
	dimColor.Printf("Hook: %s\n", hookPath)
	dimColor.Printf("Log:  %s\n", logPath)
	return nil
}

func runHookRemove(cmd *cobra.Command, args []string) error {
	targetPath := "."
	if len(args) > 0 {
		targetPath = args[0]
	}
	repo, err := git.OpenRepo(targetPath)
	if err != nil {
		return err
	}

	hookPath := filepath.Join(repo.Path(), ".git", "hooks", "post-commit")
	existing, err := readHookFile(hookPath)
	if err != nil {
		return err
	}

	dimColor := color.New(color.FgHiBlack)
	kept := stripMarkedLines(existing)
	removed := countMarkedLines(existing)
	if removed == 0 {
		dimColor.Println("No gitscribe hook lines found in this repository.")
		return nil
	}

	if !hookRemoveYes {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Remove %d gitscribe hook line(s)", removed),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			dimColor.Println("Canceled. Hook left unchanged.")
			return nil
		}
	}

	if err := writeHookFile(hookPath, kept); err != nil {
		return err
	}

	color.New(color.FgHiGreen).Printf("Removed %d gitscribe hook line(s).\n", removed)
	return nil
}

func buildHookLines(execPath, repoPath, logPath string) []string {
	quotedExec := shellQuote(execPath)
	quotedRepo := shellQuote(repoPath)
	quotedLog := shellQuote(logPath)
	return []string{
		fmt.Sprintf("%s log %s >> %s 2>&1 %s", quotedExec, quotedRepo, quotedLog, hookMarker),
		fmt.Sprintf("%s summary %s >> %s 2>&1 %s", quotedExec, quotedRepo, quotedLog, hookMarker),
	}
}

func readHookFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hook file %s: %w", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}

func writeHookFile(path string, lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		return fmt.Errorf("failed to write hook file %s: %w", path, err)
	}
	return nil
}

func stripMarkedLines(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, hookMarker) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}

func countMarkedLines(lines []string) int {
	count := 0
	for _, line := range lines {
		if strings.Contains(line, hookMarker) {
			count++
		}
	}
	return count
}

func gitscribeHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitscribe"
	}
	return filepath.Join(homeDir, ".gitscribe")
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}

func sanitizeToken(s string) string {
	if strings.TrimSpace(s) == "" {
		return "default"
	}
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._-")
	if out == "" {
		return "default"
	}
	return out
}
