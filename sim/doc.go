// Package sim provides the core virtual-runtime fair-share scheduling
// simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process entity (ready → completed) and the two natures
//   - readyqueue.go: the min-vruntime priority queue driving every decision
//   - scheduler.go: the dispatch loop, vruntime accounting, and per-nature policies
//
// # Architecture
//
// Processes and log entries live in an Arena (arena.go) and are addressed by
// stable integer handles; the ReadyQueue and the execution log hold handles,
// not owning references. Timestamps come from an injectable Clock (clock.go)
// whose default implementation is a purely logical counter, so runs are
// deterministic and free of real delays. Population generation lives in the
// sim/workload sub-package; rendering and transport live outside the core,
// which only produces data (log.go, metrics.go).
package sim
