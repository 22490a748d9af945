// Package workload produces process populations for scheduling runs:
// a canonical demo sample and a seeded random generator. Same seed, same
// generator config, same population — bit for bit.
package workload

import (
	"fmt"
	"math/rand"

	"github.com/cfs-sim/cfs-sim/sim"
)

// Spec describes one process to be seeded into a run.
type Spec struct {
	PID      int        `json:"pid" yaml:"pid"`
	Priority int        `json:"priority" yaml:"priority"`
	Burst    int64      `json:"burst" yaml:"burst"`
	Nature   sim.Nature `json:"nature" yaml:"nature"`
}

// Sample returns the canonical five-process demo population.
func Sample() []Spec {
	return []Spec{
		{PID: 1, Priority: 0, Burst: 15, Nature: sim.CPUBound},
		{PID: 2, Priority: 5, Burst: 20, Nature: sim.IOBound},
		{PID: 3, Priority: 2, Burst: 10, Nature: sim.CPUBound},
		{PID: 4, Priority: 1, Burst: 25, Nature: sim.IOBound},
		{PID: 5, Priority: 3, Burst: 12, Nature: sim.CPUBound},
	}
}

// GeneratorConfig bounds a randomly generated population.
type GeneratorConfig struct {
	Count       int     // number of processes (must be > 0)
	MaxPriority int     // priorities drawn uniformly from [0, MaxPriority]
	BurstMin    int64   // inclusive lower burst bound (must be >= 1)
	BurstMax    int64   // inclusive upper burst bound (must be >= BurstMin)
	IOFraction  float64 // probability a process is io-bound, in [0, 1]
}

// Validate checks the generator bounds.
func (c GeneratorConfig) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be > 0, got %d", c.Count)
	}
	if c.MaxPriority < 0 {
		return fmt.Errorf("max priority must be >= 0, got %d", c.MaxPriority)
	}
	if c.BurstMin < 1 {
		return fmt.Errorf("burst min must be >= 1, got %d", c.BurstMin)
	}
	if c.BurstMax < c.BurstMin {
		return fmt.Errorf("burst max must be >= burst min, got %d < %d", c.BurstMax, c.BurstMin)
	}
	if c.IOFraction < 0 || c.IOFraction > 1 {
		return fmt.Errorf("io fraction must be in [0, 1], got %v", c.IOFraction)
	}
	return nil
}

// Generate produces a deterministic population from the seed.
// PIDs are assigned 1..Count in generation order.
func Generate(seed int64, cfg GeneratorConfig) ([]Spec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	specs := make([]Spec, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		nature := sim.CPUBound
		if rng.Float64() < cfg.IOFraction {
			nature = sim.IOBound
		}
		specs = append(specs, Spec{
			PID:      i + 1,
			Priority: rng.Intn(cfg.MaxPriority + 1),
			Burst:    cfg.BurstMin + rng.Int63n(cfg.BurstMax-cfg.BurstMin+1),
			Nature:   nature,
		})
	}
	return specs, nil
}

// Build materializes specs into a fresh arena and returns the seed handles
// in spec order.
func Build(specs []Spec) (*sim.Arena, []sim.Handle, error) {
	arena := sim.NewArena()
	handles := make([]sim.Handle, 0, len(specs))
	for _, spec := range specs {
		h, err := arena.Add(spec.PID, spec.Priority, spec.Burst, spec.Nature)
		if err != nil {
			return nil, nil, err
		}
		handles = append(handles, h)
	}
	return arena, handles, nil
}
