package cli

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitscribe/gitscribe/internal/config"
	"github.com/gitscribe/gitscribe/internal/git"
	"github.com/gitscribe/gitscribe/internal/journal"
	"github.com/gitscribe/gitscribe/internal/vault"
)

var logCmd = &cobra.Command{
	Use:   "log [path]",
	Short: "Write today's daily log from the repository's commits",
	Long: `Generate or update today's daily log for a repository.

Commits made today are queried from git and merged with whatever the
vault already holds for the date, so commits recorded by another machine
are preserved. If nothing new happened the file is left untouched.

Examples:
  gitscribe log                        # Current directory
  gitscribe log ~/projects/myapp
  gitscribe log --vault ~/vault --project myapp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	repo, store, project, err := resolveTarget(args)
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Reading commits..."
	s.Color("cyan")
	s.Start()

	result, err := journal.GenerateDaily(repo, store, project, time.Now())
	s.Stop()
	if err != nil {
		return err
	}

	successColor := color.New(color.FgHiGreen)
	dimColor := color.New(color.FgHiBlack)

	switch {
	case result.UpToDate:
		dimColor.Printf("Already up to date: %s\n", result.Path)
	case result.Created:
		successColor.Printf("Created %s\n", result.Path)
	default:
		successColor.Printf("Updated %s\n", result.Path)
	}
	dimColor.Printf("Vault: %s\n", store.Root())
	return nil
}

// resolveTarget opens the repository named by args (default "."), resolves
// the vault via the flag > config > env chain, and picks the project name.
func resolveTarget(args []string) (*git.Repository, *vault.Store, string, error) {
	targetPath := "."
	if len(args) > 0 {
		targetPath = args[0]
	}

	repo, err := git.OpenRepo(targetPath)
	if err != nil {
		return nil, nil, "", err
	}

	cfg, err := config.Load()
	if err != nil {
		VerboseLog("Warning: failed to load config: %v", err)
		cfg = &config.Config{}
	}

	vaultPath := cfg.ResolveVaultPath(vaultFlag)
	if vaultPath == "" {
		return nil, nil, "", fmt.Errorf("vault path is not configured\n\nUse --vault, `gitscribe configure`, or set %s", config.EnvVault)
	}
	store, err := vault.Open(vaultPath)
	if err != nil {
		return nil, nil, "", err
	}

	project := cfg.ResolveProject(projectFlag, repo.Name())
	VerboseLog("Repo: %s, vault: %s, project: %s", repo.Path(), store.Root(), project)
	return repo, store, project, nil
}
