// Pure data records describing one run's observable scheduling decisions.

package sim

// ExecutionLogEntry captures a single execution slice: one dispatch of one
// process, bounded by logical start and end timestamps. Entries are
// immutable after creation and owned by the run's log collection; their
// order is the scheduling decision sequence.
type ExecutionLogEntry struct {
	PID       int
	StartTime int64
	EndTime   int64
}

// Duration returns the logical units consumed by the slice.
func (e ExecutionLogEntry) Duration() int64 {
	return e.EndTime - e.StartTime
}
