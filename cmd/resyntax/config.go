package main

import (
	"fmt"
	"os"

	"github.com/coregx/resyntax"
	"gopkg.in/yaml.v3"
)

// loadConfig reads a YAML configuration file. Fields missing from the file
// keep their default values. An empty path yields the defaults.
//
// Example file:
//
//	extract_literals: true
//	enable_prefilter: true
//	max_literals: 16
//	max_literal_len: 32
//	max_depth: 50
func loadConfig(path string) (resyntax.Config, error) {
	config := resyntax.DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("configuration file %q: %w", path, err)
	}
	return config, nil
}
