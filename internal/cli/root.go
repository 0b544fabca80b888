package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	vaultFlag   string
	projectFlag string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "gitscribe",
	Short: "GitScribe - Turn git activity into calendar-organized logs",
	Long: `GitScribe turns your git commit history into human-readable daily,
weekly, and monthly markdown logs stored in a vault directory.

Daily logs merge with what is already on disk, so several machines can
share one vault without losing each other's commits.

Use 'gitscribe log' after a day of work and 'gitscribe summary' to roll
up the previous week and month. 'gitscribe hook' installs a post-commit
hook that does both automatically.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vaultFlag, "vault", "", "Vault root directory (overrides config and GITSCRIBE_VAULT)")
	rootCmd.PersistentFlags().StringVar(&projectFlag, "project", "", "Project name inside the vault (default: repo directory name)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func IsVerbose() bool {
	return verbose
}

func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}
