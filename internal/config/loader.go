package config

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "docnav.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "docnav.yml"

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// FindConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func FindConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, ConfigFileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}

// FindProjectRoot walks up from the given directory to find a directory
// containing docnav.yaml or docnav.yml.
// Returns empty string if not found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if FindConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
	return ""
}
