package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/cfs-sim/cfs-sim/sim"
	"github.com/cfs-sim/cfs-sim/sim/workload"
)

var (
	// CLI flags for scheduler constants
	logLevel     string // Log verbosity level
	nice0Load    int64  // Weight numerator base
	cpuTimeSlice int64  // Logical units consumed per CPU-bound dispatch
	ioWaitTime   int64  // Logical units consumed per IO-bound dispatch before the completion charge

	// CLI flags for population selection
	presetsFilePath string  // Path to the YAML presets file
	presetName      string  // Named population from the presets file
	seed            int64   // Seed for random population generation
	procs           int     // Number of generated processes (0 = use the built-in sample)
	maxPriority     int     // Upper bound for generated priorities
	burstMin        int64   // Lower bound for generated burst times
	burstMax        int64   // Upper bound for generated burst times
	ioFraction      float64 // Fraction of generated processes that are io-bound
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cfs-sim",
	Short: "Virtual-runtime fair-share CPU scheduler simulator",
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling simulation and render the report",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.Config{
			Nice0Load:    nice0Load,
			CPUTimeSlice: cpuTimeSlice,
			IOWaitTime:   ioWaitTime,
		}

		specs, err := resolvePopulation()
		if err != nil {
			logrus.Fatalf("Unable to resolve process population: %v", err)
		}

		logrus.Infof("Starting simulation with %d processes, nice0Load=%d, cpuTimeSlice=%d, ioWaitTime=%d",
			len(specs), cfg.Nice0Load, cfg.CPUTimeSlice, cfg.IOWaitTime)

		arena, handles, err := workload.Build(specs)
		if err != nil {
			logrus.Fatalf("Invalid process population: %v", err)
		}

		s, err := sim.NewScheduler(cfg, sim.NewVirtualClock(), arena)
		if err != nil {
			logrus.Fatalf("Invalid scheduler configuration: %v", err)
		}
		s.Seed(handles)
		entries := s.Run()

		writeReport(os.Stdout, arena.Processes(), entries, s.Metrics())
		logrus.Info("Simulation complete.")
	},
}

// resolvePopulation picks the seed population: a named preset wins, then
// random generation when --procs is set, otherwise the built-in sample.
func resolvePopulation() ([]workload.Spec, error) {
	if presetName != "" {
		return LoadPreset(presetsFilePath, presetName)
	}
	if procs > 0 {
		return workload.Generate(seed, workload.GeneratorConfig{
			Count:       procs,
			MaxPriority: maxPriority,
			BurstMin:    burstMin,
			BurstMax:    burstMax,
			IOFraction:  ioFraction,
		})
	}
	return workload.Sample(), nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Fairness constants
	runCmd.Flags().Int64Var(&nice0Load, "nice0-load", 1024, "Weight numerator base")
	runCmd.Flags().Int64Var(&cpuTimeSlice, "cpu-time-slice", 1, "Logical units consumed per cpu-bound dispatch")
	runCmd.Flags().Int64Var(&ioWaitTime, "io-wait-time", 10, "Logical units consumed per io-bound dispatch before the completion charge")

	// Population selection
	runCmd.Flags().StringVar(&presetsFilePath, "presets", "presets.yaml", "Path to the population presets file")
	runCmd.Flags().StringVar(&presetName, "preset", "", "Named population from the presets file")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random population generation")
	runCmd.Flags().IntVar(&procs, "procs", 0, "Number of generated processes (0 = built-in sample population)")
	runCmd.Flags().IntVar(&maxPriority, "max-priority", 5, "Upper bound for generated priorities")
	runCmd.Flags().Int64Var(&burstMin, "burst-min", 5, "Lower bound for generated burst times")
	runCmd.Flags().Int64Var(&burstMax, "burst-max", 30, "Upper bound for generated burst times")
	runCmd.Flags().Float64Var(&ioFraction, "io-fraction", 0.4, "Fraction of generated processes that are io-bound")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
