package sim

// Clock supplies the logical timestamps recorded in the execution log.
// Dispatch policies advance it by the number of logical units they consume,
// so durations in the log reflect simulated, not wall-clock, time.
// Implementations must be monotone; the scheduler clamps and reports a
// defect if a reading ever runs backwards.
type Clock interface {
	Now() int64
	Advance(units int64)
}

// VirtualClock is a monotone counter clock. It is the default time source:
// deterministic, free of real delays, and therefore directly testable.
type VirtualClock struct {
	now int64
}

// NewVirtualClock creates a VirtualClock starting at tick 0.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

// Now returns the current tick.
func (c *VirtualClock) Now() int64 {
	return c.now
}

// Advance moves the clock forward by units ticks. Non-positive advances are
// ignored to keep the clock monotone.
func (c *VirtualClock) Advance(units int64) {
	if units > 0 {
		c.now += units
	}
}
