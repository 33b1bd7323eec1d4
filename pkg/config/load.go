package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a generation config from a YAML file. Fields absent from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	return &cfg, nil
}

// LoadProject loads a generation config from a project directory. It looks
// for city.yaml in the given directory.
func LoadProject(projectDir string) (*Config, error) {
	return Load(filepath.Join(projectDir, "city.yaml"))
}
