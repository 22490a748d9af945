package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/cfs-sim/cfs-sim/sim"
	"github.com/cfs-sim/cfs-sim/sim/workload"
)

// ProcessPreset describes one process entry in the presets file.
type ProcessPreset struct {
	PID      int    `yaml:"pid"`
	Priority int    `yaml:"priority"`
	Burst    int64  `yaml:"burst"`
	Nature   string `yaml:"nature"`
}

// PresetsConfig represents the full presets file structure.
type PresetsConfig struct {
	Populations map[string][]ProcessPreset `yaml:"populations"`
}

// LoadPreset reads a named population from the presets file.
// Uses strict field checking so typos in the file cause errors instead of
// silently zeroed fields.
func LoadPreset(path string, name string) ([]workload.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets file: %w", err)
	}

	var cfg PresetsConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse presets file: %w", err)
	}

	presets, ok := cfg.Populations[name]
	if !ok {
		return nil, fmt.Errorf("preset %q not found in %s", name, path)
	}

	specs := make([]workload.Spec, 0, len(presets))
	for _, p := range presets {
		nature, err := sim.ParseNature(p.Nature)
		if err != nil {
			return nil, fmt.Errorf("preset %q, pid %d: %w", name, p.PID, err)
		}
		specs = append(specs, workload.Spec{
			PID:      p.PID,
			Priority: p.Priority,
			Burst:    p.Burst,
			Nature:   nature,
		})
	}
	return specs, nil
}
