package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Initialize writes the default configuration into the directory. It
// refuses to overwrite an existing config.yaml so repeated runs are
// safe.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	if _, err := os.Stat(configPath); err == nil {
		return nil, fmt.Errorf("%s already exists, not overwriting", configPath)
	}

	logger.Printf("Writing %s", configPath)
	if err := os.WriteFile(configPath, defaultConfigData, 0600); err != nil {
		return nil, err
	}

	logsDir := filepath.Join(dir, SessionLogsDirName)
	logger.Printf("Creating %s", logsDir)
	if err := os.MkdirAll(logsDir, 0700); err != nil {
		return nil, err
	}

	logger.Printf("Done! Start the shell with: simple-shell --config %s", dir)
	return Load(dir)
}
