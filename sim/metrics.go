// Tracks run-wide and per-process statistics such as dispatch counts,
// charged work, and completion order.

package sim

// Metrics aggregates statistics about one scheduling run for final
// reporting. The core never formats or prints them; rendering is the
// caller's concern.
type Metrics struct {
	TotalSlices        int   // Number of execution slices recorded
	CompletedProcesses int   // Number of processes that ran to completion
	SkippedSeeds       int   // Seed entries skipped (absent reference or already complete)
	Makespan           int64 // Clock value when the ready queue drained

	CPUBoundSeeded int // Seeded processes with cpu-bound nature
	IOBoundSeeded  int // Seeded processes with io-bound nature

	DispatchCounts  map[int]int   // PID -> number of slices received
	WorkCharged     map[int]int64 // PID -> total exec units retired across all dispatches
	FinalVRuntimes  map[int]int64 // PID -> vruntime at completion
	CompletionOrder []int         // PIDs in completion order
}

// NewMetrics creates a Metrics object with all maps initialized.
func NewMetrics() *Metrics {
	return &Metrics{
		DispatchCounts:  make(map[int]int),
		WorkCharged:     make(map[int]int64),
		FinalVRuntimes:  make(map[int]int64),
		CompletionOrder: make([]int, 0),
	}
}
