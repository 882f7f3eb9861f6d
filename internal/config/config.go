package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for buildsweep.
// Nil fields mean "not set"; the CLI applies CLI > local > global
// precedence when merging.
type FileConfig struct {
	DirPatterns   []string `yaml:"dir_patterns"`
	FilePatterns  []string `yaml:"file_patterns"`
	Exclude       []string `yaml:"exclude"`
	WhitelistDirs []string `yaml:"whitelist_dirs"`
	NoConfirm     *bool    `yaml:"no_confirm"`
	NoColor       *bool    `yaml:"no_color"`
	Verbosity     *string  `yaml:"verbosity"` // quiet|info|verbose|debug
	DupeMinSize   *int64   `yaml:"dupe_min_size"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the target directory.
// It supports .buildsweep.yml/.yaml and buildsweep.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".buildsweep.yml", ".buildsweep.yaml", "buildsweep.yml", "buildsweep.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from the XDG base directory
// or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "buildsweep", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
