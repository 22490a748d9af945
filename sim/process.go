// Defines the Process struct that models an individual process in the simulation.
// Tracks priority, remaining burst time, accumulated virtual runtime, and state.

package sim

import "fmt"

// Nature selects the dispatch policy applied to a process.
type Nature string

const (
	// CPUBound processes consume one fixed time slice of computation per dispatch.
	CPUBound Nature = "cpu-bound"
	// IOBound processes model a wait period followed by a single unit of
	// completion work per dispatch.
	IOBound Nature = "io-bound"
)

// ParseNature converts a string into a Nature.
func ParseNature(s string) (Nature, error) {
	switch Nature(s) {
	case CPUBound, IOBound:
		return Nature(s), nil
	default:
		return "", fmt.Errorf("unknown process nature %q", s)
	}
}

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateReady     ProcessState = "ready"
	StateCompleted ProcessState = "completed"
)

// Process models a single schedulable entity.
// Each process has:
// - a stable identity (PID), assigned at creation
// - a priority, immutable for the run; lower number = favored
// - remaining burst time, decremented on every dispatch
// - accumulated virtual runtime, the sole ordering key of the ready queue
//
// The scheduler mutates only VRuntime, RemainingWork, Dispatches and State;
// identity, Priority and Nature never change after creation.
type Process struct {
	PID int // Unique identifier for the process

	VRuntime      int64 // Accumulated virtual runtime (logical units); monotone non-decreasing
	RemainingWork int64 // Burst time left; 0 means the process is terminal

	Priority int    // >= 0; lower value accrues vruntime more slowly
	Nature   Nature // cpu-bound or io-bound; selects the dispatch policy

	State      ProcessState // ready, completed
	Dispatches int          // Number of execution slices this process has received
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, Prio: %d, Remaining: %d, VRuntime: %d, Nature: %s, State: %s)",
		p.PID, p.Priority, p.RemainingWork, p.VRuntime, p.Nature, p.State)
}
