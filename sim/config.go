package sim

import "fmt"

// Config groups the fairness constants of one scheduling run.
// They are run-time configuration, not compiled-in constants, so callers and
// tests can vary fairness granularity per run.
type Config struct {
	Nice0Load    int64 // weight numerator base (default 1024)
	CPUTimeSlice int64 // logical units consumed per CPU-bound dispatch (default 1)
	IOWaitTime   int64 // logical units consumed per IO-bound dispatch before the 1-unit completion charge (default 10)
}

// DefaultConfig returns the documented default constants.
func DefaultConfig() Config {
	return Config{
		Nice0Load:    1024,
		CPUTimeSlice: 1,
		IOWaitTime:   10,
	}
}

// Validate checks that all constants are positive.
func (c Config) Validate() error {
	if c.Nice0Load <= 0 {
		return fmt.Errorf("nice-0 load must be > 0, got %d", c.Nice0Load)
	}
	if c.CPUTimeSlice <= 0 {
		return fmt.Errorf("cpu time slice must be > 0, got %d", c.CPUTimeSlice)
	}
	if c.IOWaitTime <= 0 {
		return fmt.Errorf("io wait time must be > 0, got %d", c.IOWaitTime)
	}
	return nil
}
