package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/gauge/internal/store"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	DataDir   string `yaml:"data_dir,omitempty"`
	Precision int    `yaml:"precision"`
	History   bool   `yaml:"history"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize gauge configuration and history storage",
		Long:  "Create the configuration directory with a default config.yaml and initialize the history database.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir := resolveConfigDir()
	dataDir := flags.dataDir

	// Honor data_dir from an existing config.yaml when the flag was
	// not provided.
	if dataDir == "" {
		if s, err := loadSettings(); err == nil {
			dataDir = s.dataDir
		}
	}
	if dataDir == "" {
		dataDir = defaultDataDir
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return systemErrorf("create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := writeConfigIfMissing(configPath, dataDir); err != nil {
		return systemErrorf("write config: %w", err)
	}

	// Opening the store creates the data directory and the schema.
	s, err := store.Open(dataDir)
	if err != nil {
		return systemErrorf("initialize history storage: %w", err)
	}
	if err := s.Close(); err != nil {
		return systemErrorf("finalize history storage: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Gauge initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the
// file does not exist. If it already exists, the function returns nil
// (idempotent).
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		DataDir:   dataDir,
		Precision: defaultPrecision,
		History:   true,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
