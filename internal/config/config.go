package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvVault is the environment fallback for the vault root, consulted only
// when neither a flag nor the saved config provides one.
const EnvVault = "GITSCRIBE_VAULT"

type Config struct {
	// VaultPath is the saved vault root directory.
	VaultPath string `json:"vault_path,omitempty"`

	// DefaultProject overrides the repository directory name as the
	// project folder inside the vault.
	DefaultProject string `json:"default_project,omitempty"`
}

var configPath string

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		configPath = ".gitscribe/config.json"
		return
	}
	configPath = filepath.Join(homeDir, ".gitscribe", "config.json")
}

func GetConfigPath() string {
	return configPath
}

func Load() (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Save() error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ResolveVaultPath applies the vault precedence chain: explicit flag,
// saved config, then the GITSCRIBE_VAULT environment variable. Returns ""
// when nothing is configured.
func (c *Config) ResolveVaultPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c.VaultPath != "" {
		return c.VaultPath
	}
	return os.Getenv(EnvVault)
}

// ResolveProject picks the project name: explicit flag, saved default,
// then the repository directory name.
func (c *Config) ResolveProject(flagValue, repoName string) string {
	if flagValue != "" {
		return flagValue
	}
	if c.DefaultProject != "" {
		return c.DefaultProject
	}
	return repoName
}
