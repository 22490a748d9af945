// Request/response DTOs for the HTTP surface. Kept separate from the sim
// types so the wire format can evolve without touching the core.

package api

// ScheduleRequest is the body of POST /api/v1/schedule.
// Config is optional; omitted fields fall back to the documented defaults.
type ScheduleRequest struct {
	Config    *ConfigRequest   `json:"config,omitempty"`
	Processes []ProcessRequest `json:"processes"`
}

// ConfigRequest overrides the fairness constants for one run.
type ConfigRequest struct {
	Nice0Load    int64 `json:"nice0_load"`
	CPUTimeSlice int64 `json:"cpu_time_slice"`
	IOWaitTime   int64 `json:"io_wait_time"`
}

// ProcessRequest describes one process to seed.
type ProcessRequest struct {
	PID      int    `json:"pid"`
	Priority int    `json:"priority"`
	Burst    int64  `json:"burst"`
	Nature   string `json:"nature"`
}

// ScheduleResponse carries the execution log and the run summary.
type ScheduleResponse struct {
	Entries []LogEntryResponse `json:"entries"`
	Summary SummaryResponse    `json:"summary"`
}

// LogEntryResponse is one execution slice in dispatch order.
type LogEntryResponse struct {
	PID      int   `json:"pid"`
	Start    int64 `json:"start"`
	End      int64 `json:"end"`
	Duration int64 `json:"duration"`
}

// SummaryResponse aggregates run-wide statistics.
type SummaryResponse struct {
	CompletedProcesses int           `json:"completed_processes"`
	TotalSlices        int           `json:"total_slices"`
	SkippedSeeds       int           `json:"skipped_seeds"`
	Makespan           int64         `json:"makespan"`
	FinalVRuntimes     map[int]int64 `json:"final_vruntimes"`
	CompletionOrder    []int         `json:"completion_order"`
}
