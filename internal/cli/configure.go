package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/gitscribe/gitscribe/internal/config"
)

var (
	configureVault   string
	configureProject string
	configureShow    bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Save the vault path and default project name",
	Long: `Save GitScribe settings to ` + "`~/.gitscribe/config.json`" + `.

With no flags, prompts for the vault path interactively.

Examples:
  gitscribe configure --vault ~/vault
  gitscribe configure --vault ~/vault --default-project myapp
  gitscribe configure --show`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().StringVar(&configureVault, "vault", "", "Vault root directory to save")
	configureCmd.Flags().StringVar(&configureProject, "default-project", "", "Default project name to save")
	configureCmd.Flags().BoolVar(&configureShow, "show", false, "Show the saved configuration and exit")
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dimColor := color.New(color.FgHiBlack)
	if configureShow {
		fmt.Printf("Config: %s\n", config.GetConfigPath())
		if cfg.VaultPath == "" {
			dimColor.Println("Vault path: not configured")
		} else {
			fmt.Printf("Vault path: %s\n", cfg.VaultPath)
		}
		if cfg.DefaultProject != "" {
			fmt.Printf("Default project: %s\n", cfg.DefaultProject)
		}
		return nil
	}

	vaultPath := strings.TrimSpace(configureVault)
	if vaultPath == "" && configureProject == "" {
		prompt := promptui.Prompt{
			Label:   "Vault path",
			Default: cfg.VaultPath,
			Validate: func(input string) error {
				if strings.TrimSpace(input) == "" {
					return fmt.Errorf("vault path cannot be empty")
				}
				return nil
			},
		}
		entered, err := prompt.Run()
		if err != nil {
			dimColor.Println("Canceled. Configuration unchanged.")
			return nil
		}
		vaultPath = strings.TrimSpace(entered)
	}

	if vaultPath != "" {
		absVault, err := filepath.Abs(vaultPath)
		if err != nil {
			return fmt.Errorf("failed to resolve vault path: %w", err)
		}
		if info, err := os.Stat(absVault); err != nil || !info.IsDir() {
			return fmt.Errorf("vault path does not exist: %s", absVault)
		}
		cfg.VaultPath = absVault
	}
	if configureProject != "" {
		cfg.DefaultProject = configureProject
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	successColor := color.New(color.FgHiGreen)
	successColor.Println("Configuration saved.")
	if cfg.VaultPath != "" {
		dimColor.Printf("Vault path: %s\n", cfg.VaultPath)
	}
	if cfg.DefaultProject != "" {
		dimColor.Printf("Default project: %s\n", cfg.DefaultProject)
	}
	return nil
}
