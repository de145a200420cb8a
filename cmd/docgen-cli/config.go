package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config mirrors the optional docgen.yaml file. Flags take precedence over
// file values.
type config struct {
	Source           string `yaml:"source"`
	Renderer         string `yaml:"renderer"`
	Output           string `yaml:"output"`
	GenerateExamples bool   `yaml:"generateExamples"`
}

func loadConfig(path string) (config, error) {
	var cfg config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// merge overlays file values under explicitly set flags.
func (c config) merge(flags config, set map[string]bool) config {
	out := c
	if set["source"] {
		out.Source = flags.Source
	}
	if set["renderer"] {
		out.Renderer = flags.Renderer
	}
	if set["output"] {
		out.Output = flags.Output
	}
	if set["examples"] {
		out.GenerateExamples = flags.GenerateExamples
	}
	return out
}
