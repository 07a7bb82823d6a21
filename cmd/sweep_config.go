package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/admission-sim/admission-sim/sim"
	"github.com/admission-sim/admission-sim/sim/bench"
)

// SweepConfig is the YAML form of a benchmark sweep. Zero-valued fields keep
// the controller's existing (flag-derived) values.
type SweepConfig struct {
	Seed       int64     `yaml:"seed"`
	Duration   uint32    `yaml:"duration"`
	WarmUp     uint32    `yaml:"warmup"`
	Mean       float64   `yaml:"mean"`
	Fractions  []float64 `yaml:"fractions"`
	NodeCounts []int     `yaml:"node_counts"`
}

// LoadSweepConfig reads and parses a YAML sweep file.
func LoadSweepConfig(path string) (*SweepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sweep config: %w", err)
	}
	var cfg SweepConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse sweep config: %w", err)
	}
	return &cfg, nil
}

// Apply overlays the sweep file's non-zero fields onto the controller.
func (c *SweepConfig) Apply(ctrl *bench.Controller) {
	if c.Seed != 0 {
		ctrl.Key = sim.NewSimulationKey(c.Seed)
	}
	if c.Duration != 0 {
		ctrl.Duration = c.Duration
	}
	if c.WarmUp != 0 {
		ctrl.WarmUp = c.WarmUp
	}
	if c.Mean != 0 {
		ctrl.Mean = c.Mean
	}
	if len(c.Fractions) != 0 {
		ctrl.Fractions = c.Fractions
	}
	if len(c.NodeCounts) != 0 {
		ctrl.NodeCounts = c.NodeCounts
	}
}
