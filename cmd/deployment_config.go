package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	score "github.com/score-adapter/score-adapter/score"
)

// DeploymentConfig is the model-export-time description of one deployment:
// the module identifier the program is published under, the scoring routine
// name, the artifact path, and the frozen feature schema with imputation
// defaults computed from training statistics.
type DeploymentConfig struct {
	Module   string    `yaml:"module"`
	Routine  string    `yaml:"routine"`
	Artifact string    `yaml:"artifact"`
	Features []Feature `yaml:"features"`
}

// Feature is one schema entry: declared kind plus the frozen numeric
// default (text defaults are always the empty string).
type Feature struct {
	Name    string  `yaml:"name"`
	Kind    string  `yaml:"kind"`
	Default float64 `yaml:"default"`
}

// LoadDeploymentConfig reads and validates the deployment YAML.
func LoadDeploymentConfig(path string) (*DeploymentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deployment config: %w", err)
	}
	var cfg DeploymentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse deployment config: %w", err)
	}
	if cfg.Module == "" || cfg.Routine == "" {
		return nil, fmt.Errorf("deployment config %s: module and routine are required", path)
	}
	if len(cfg.Features) == 0 {
		return nil, fmt.Errorf("deployment config %s: no features declared", path)
	}
	for _, f := range cfg.Features {
		if f.Kind != string(score.KindNumeric) && f.Kind != string(score.KindText) {
			return nil, fmt.Errorf("feature %s: unknown kind %q", f.Name, f.Kind)
		}
	}
	return &cfg, nil
}

// ImputationTable builds the frozen table in config order.
func (c *DeploymentConfig) ImputationTable() *score.ImputationTable {
	entries := make([]score.ImputationEntry, 0, len(c.Features))
	for _, f := range c.Features {
		entries = append(entries, score.ImputationEntry{
			Name:    f.Name,
			Kind:    score.Kind(f.Kind),
			Default: f.Default,
		})
	}
	return score.NewImputationTable(entries)
}
