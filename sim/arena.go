// Implements the Arena, a contiguous store of Process records addressed by
// stable integer handles. The ready queue and the execution log hold handles,
// never pointers, so records cannot dangle across queue mutations.

package sim

import "fmt"

// Handle addresses a Process record inside an Arena.
// Handles are indices into the arena's backing store and stay valid for the
// lifetime of the arena.
type Handle int32

// InvalidHandle is the sentinel returned by queue operations on an empty
// queue, and the value that insertion treats as an absent reference.
const InvalidHandle Handle = -1

// Arena owns all Process records of one simulation run.
type Arena struct {
	procs []Process
}

// NewArena creates an empty Arena.
func NewArena() *Arena {
	return &Arena{procs: make([]Process, 0)}
}

// Add appends a new process record and returns its handle.
// A zero burst is legal and yields a record that is already completed;
// such a process is never inserted into the ready queue.
// Uniqueness of PIDs is the caller's responsibility.
func (a *Arena) Add(pid int, priority int, burst int64, nature Nature) (Handle, error) {
	if priority < 0 {
		return InvalidHandle, fmt.Errorf("process %d: priority must be >= 0, got %d", pid, priority)
	}
	if burst < 0 {
		return InvalidHandle, fmt.Errorf("process %d: burst time must be >= 0, got %d", pid, burst)
	}
	if nature != CPUBound && nature != IOBound {
		return InvalidHandle, fmt.Errorf("process %d: unknown nature %q", pid, nature)
	}
	state := StateReady
	if burst == 0 {
		state = StateCompleted
	}
	a.procs = append(a.procs, Process{
		PID:           pid,
		Priority:      priority,
		RemainingWork: burst,
		Nature:        nature,
		State:         state,
	})
	return Handle(len(a.procs) - 1), nil
}

// Valid reports whether h addresses a record in this arena.
func (a *Arena) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(a.procs)
}

// Get returns the record addressed by h, or nil for an invalid handle.
func (a *Arena) Get(h Handle) *Process {
	if !a.Valid(h) {
		return nil
	}
	return &a.procs[h]
}

// Len returns the number of records in the arena.
func (a *Arena) Len() int {
	return len(a.procs)
}

// Processes returns the arena's backing store for reporting.
// Callers may iterate over it but MUST NOT append to or reslice it.
func (a *Arena) Processes() []Process {
	return a.procs
}
