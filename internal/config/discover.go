// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./assetmirror.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "assetmirror", "assetmirror.toml")
}

// Discover finds the config file using the standard search order:
//  1. ASSETMIRROR_CONFIG environment variable
//  2. ./assetmirror.toml (current directory)
//  3. $XDG_CONFIG_HOME/assetmirror/assetmirror.toml
//  4. /etc/assetmirror/assetmirror.toml
//
// No config file anywhere is not an error: Discover returns "" and the
// caller runs on defaults.
func Discover() (string, error) {
	if envPath := os.Getenv("ASSETMIRROR_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("ASSETMIRROR_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./assetmirror.toml",
		DefaultPath(),
		"/etc/assetmirror/assetmirror.toml",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", nil
}
