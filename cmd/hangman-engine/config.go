package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the shape of an optional --config YAML file. Every field is
// optional; an explicit flag always overrides the corresponding file value,
// per SPEC_FULL.md §6.3.
type fileConfig struct {
	Games      *int     `yaml:"games"`
	Tries      *int     `yaml:"tries"`
	Cache      *int     `yaml:"cache"`
	Samples    *int     `yaml:"samples"`
	TargetP    *float64 `yaml:"target-p"`
	LogLevel   *string  `yaml:"log-level"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
