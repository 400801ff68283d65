/*
PURPOSE:
  Defines the configuration structure and loading logic for cmbench.
  Adheres to "Config IS Code" philosophy: the benchmark tables live in code,
  the file only tunes the run.

REQUIREMENTS:
  User-specified:
  - Allow configuration of seed, query count, pricing and which experiments run.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Output directory and formats are per-run choices.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default files fall back to DefaultConfig().
  - Validate() rejects values the cost model cannot simulate.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults reproduce the published tables (seed 42, 20 queries, $0.01/1k).

USAGE:
  cfg, err := config.Load("cmbench.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig() and Validate().

RELATED FILES:
  - internal/cli/root.go
  - internal/engine/registry.go
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the engine.
const (
	FormatText = "text"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Config represents the full configuration for cmbench.
type Config struct {
	Seed           uint64  `yaml:"seed"`
	NumQueries     int     `yaml:"num_queries"`
	CostPer1K      float64 `yaml:"cost_per_1k_tokens"`
	LatencyPer1KMS float64 `yaml:"latency_per_1k_tokens_ms"`
	OutputDir      string  `yaml:"output_dir"`
	// OutputFile is the base name of the CSV/JSON files, without extension.
	OutputFile string   `yaml:"output_file"`
	Formats    []string `yaml:"formats"`
	// Experiments lists experiment ids to run, in order.
	Experiments []string `yaml:"experiments"`
}

// DefaultExperiments is the full suite in publication order.
var DefaultExperiments = []string{
	"cost-efficiency",
	"dataset-efficiency",
	"context-scaling",
	"ablation",
	"scalability-latency",
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Seed:           42,
		NumQueries:     20,
		CostPer1K:      0.01,
		LatencyPer1KMS: 150.0,
		OutputDir:      ".",
		OutputFile:     "cmbench_results",
		Formats:        []string{FormatText, FormatCSV, FormatJSON},
		Experiments:    append([]string(nil), DefaultExperiments...),
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		found := false
		for _, name := range []string{"cmbench.yaml", "cmbench.yml"} {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a run.
// known lists the experiment ids the engine can execute.
func (c *Config) Validate(known []string) error {
	if c.NumQueries <= 0 {
		return fmt.Errorf("num_queries must be positive, got %d", c.NumQueries)
	}
	if c.CostPer1K <= 0 {
		return fmt.Errorf("cost_per_1k_tokens must be positive, got %v", c.CostPer1K)
	}
	if c.LatencyPer1KMS <= 0 {
		return fmt.Errorf("latency_per_1k_tokens_ms must be positive, got %v", c.LatencyPer1KMS)
	}
	if len(c.Experiments) == 0 {
		return fmt.Errorf("no experiments selected")
	}
	for _, id := range c.Experiments {
		if !contains(known, id) {
			return fmt.Errorf("unknown experiment %q", id)
		}
	}
	for _, f := range c.Formats {
		switch f {
		case FormatText, FormatCSV, FormatJSON:
		default:
			return fmt.Errorf("unknown output format %q", f)
		}
	}
	return nil
}

// WantsFormat reports whether format f is selected.
func (c *Config) WantsFormat(f string) bool {
	return contains(c.Formats, f)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
