// Renders the process population, the execution log, and a run summary as
// console tables. Rendering lives here so the sim core stays print-free.

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	sim "github.com/cfs-sim/cfs-sim/sim"
)

// writeReport renders all three report sections in order.
func writeReport(w io.Writer, procs []sim.Process, entries []sim.ExecutionLogEntry, m *sim.Metrics) {
	writeProcessTable(w, procs)
	writeLogTable(w, entries)
	writeSummary(w, m)
}

// writeProcessTable renders the final state of every process in the arena.
func writeProcessTable(w io.Writer, procs []sim.Process) {
	fmt.Fprintln(w, "=== Processes ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Priority", "Nature", "Remaining", "VRuntime", "Slices", "State"})
	for _, p := range procs {
		table.Append([]string{
			strconv.Itoa(p.PID),
			strconv.Itoa(p.Priority),
			string(p.Nature),
			strconv.FormatInt(p.RemainingWork, 10),
			strconv.FormatInt(p.VRuntime, 10),
			strconv.Itoa(p.Dispatches),
			string(p.State),
		})
	}
	table.Render()
}

// writeLogTable renders the execution log in dispatch order.
func writeLogTable(w io.Writer, entries []sim.ExecutionLogEntry) {
	fmt.Fprintln(w, "=== Execution Log ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Start", "End", "Duration"})
	for _, e := range entries {
		table.Append([]string{
			strconv.Itoa(e.PID),
			strconv.FormatInt(e.StartTime, 10),
			strconv.FormatInt(e.EndTime, 10),
			strconv.FormatInt(e.Duration(), 10),
		})
	}
	table.SetFooter([]string{"", "", "Slices", strconv.Itoa(len(entries))})
	table.Render()
}

// writeSummary renders run-wide statistics.
func writeSummary(w io.Writer, m *sim.Metrics) {
	fmt.Fprintln(w, "=== Summary ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.AppendBulk([][]string{
		{"Completed processes", strconv.Itoa(m.CompletedProcesses)},
		{"Execution slices", strconv.Itoa(m.TotalSlices)},
		{"Skipped seeds", strconv.Itoa(m.SkippedSeeds)},
		{"CPU-bound seeded", strconv.Itoa(m.CPUBoundSeeded)},
		{"IO-bound seeded", strconv.Itoa(m.IOBoundSeeded)},
		{"Makespan (units)", strconv.FormatInt(m.Makespan, 10)},
	})
	table.Render()
}
