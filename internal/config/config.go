// Package config loads the CLI's run-time configuration from a YAML
// file. The kernel itself is configuration-free; only the CLI shell
// around it is configurable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls how the CLI runs a script: whether eval errors are
// treated as fatal. OutputDir is loaded from the file, but write_stl does
// not consult it; a relative write_stl path resolves against the
// process's working directory.
type Config struct {
	OutputDir        string `yaml:"output_dir"`
	FailOnEvalErrors bool   `yaml:"fail_on_eval_errors"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		OutputDir:        ".",
		FailOnEvalErrors: true,
	}
}

// Load reads and parses a YAML config file at path, applying Default
// for any field absent from it.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: yaml: %w", err)
	}

	return cfg, nil
}
