package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for grmod.
type Paths struct {
	// ConfigFile is the path to the config file (~/.grmod/config.yaml).
	ConfigFile string

	// HomeDir is the grmod home directory (~/.grmod).
	HomeDir string
}

// DefaultPaths returns the default paths for grmod.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	grmodHome := filepath.Join(homeDir, ".grmod")

	return &Paths{
		ConfigFile: filepath.Join(grmodHome, "config.yaml"),
		HomeDir:    grmodHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If GRMOD_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("GRMOD_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}
