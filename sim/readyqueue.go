// Implements the ReadyQueue, which holds all processes that still have burst
// time left and are waiting for their next execution slice.

package sim

import "container/heap"

// handleHeap implements heap.Interface and orders process handles by the
// vruntime of the record they address, ascending.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type handleHeap struct {
	arena   *Arena
	handles []Handle
}

func (hh handleHeap) Len() int { return len(hh.handles) }

// Less orders by vruntime ascending; equal vruntimes are broken by lower PID
// first. The tie-break makes the pop order, and therefore the execution log,
// fully deterministic for a given seed population.
func (hh handleHeap) Less(i, j int) bool {
	pi, pj := hh.arena.Get(hh.handles[i]), hh.arena.Get(hh.handles[j])
	if pi.VRuntime != pj.VRuntime {
		return pi.VRuntime < pj.VRuntime
	}
	return pi.PID < pj.PID
}

func (hh handleHeap) Swap(i, j int) {
	hh.handles[i], hh.handles[j] = hh.handles[j], hh.handles[i]
}

func (hh *handleHeap) Push(x any) {
	hh.handles = append(hh.handles, x.(Handle))
}

func (hh *handleHeap) Pop() any {
	old := hh.handles
	n := len(old)
	item := old[n-1]
	hh.handles = old[0 : n-1]
	return item
}

// ReadyQueue is a minimum-priority container over processes keyed by
// vruntime. It holds handles into one Arena; a process must appear at most
// once at any time (the scheduler guarantees this, the queue does not check).
type ReadyQueue struct {
	h handleHeap
}

// NewReadyQueue creates an empty ReadyQueue over the given arena.
func NewReadyQueue(arena *Arena) *ReadyQueue {
	return &ReadyQueue{h: handleHeap{arena: arena, handles: make([]Handle, 0)}}
}

// Insert adds a process handle to the queue. Invalid handles are ignored,
// mirroring the skip-on-absent-reference seed semantics.
func (rq *ReadyQueue) Insert(h Handle) {
	if !rq.h.arena.Valid(h) {
		return
	}
	heap.Push(&rq.h, h)
}

// PopMin removes and returns the handle of the process with the smallest
// vruntime. Returns InvalidHandle on an empty queue.
func (rq *ReadyQueue) PopMin() Handle {
	if rq.Empty() {
		return InvalidHandle
	}
	return heap.Pop(&rq.h).(Handle)
}

// PeekMin returns the minimum handle without removing it.
// Returns InvalidHandle on an empty queue.
func (rq *ReadyQueue) PeekMin() Handle {
	if rq.Empty() {
		return InvalidHandle
	}
	return rq.h.handles[0]
}

// Len returns the number of resident processes.
func (rq *ReadyQueue) Len() int {
	return rq.h.Len()
}

// Empty is true iff no processes are resident.
func (rq *ReadyQueue) Empty() bool {
	return rq.h.Len() == 0
}
