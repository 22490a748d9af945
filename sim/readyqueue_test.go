package sim

import (
	"testing"
)

func mustAdd(t *testing.T, a *Arena, pid, priority int, burst int64, nature Nature) Handle {
	t.Helper()
	h, err := a.Add(pid, priority, burst, nature)
	if err != nil {
		t.Fatalf("Add(pid=%d): unexpected error: %v", pid, err)
	}
	return h
}

func TestReadyQueue_PopMin_ReturnsAscendingVRuntime(t *testing.T) {
	// GIVEN processes with vruntimes 30, 10, 20 inserted out of order
	arena := NewArena()
	rq := NewReadyQueue(arena)
	h1 := mustAdd(t, arena, 1, 0, 5, CPUBound)
	h2 := mustAdd(t, arena, 2, 0, 5, CPUBound)
	h3 := mustAdd(t, arena, 3, 0, 5, CPUBound)
	arena.Get(h1).VRuntime = 30
	arena.Get(h2).VRuntime = 10
	arena.Get(h3).VRuntime = 20
	rq.Insert(h1)
	rq.Insert(h2)
	rq.Insert(h3)

	// WHEN all handles are popped
	// THEN they come out in ascending vruntime order
	want := []int{2, 3, 1}
	for i, pid := range want {
		h := rq.PopMin()
		if got := arena.Get(h).PID; got != pid {
			t.Errorf("PopMin[%d]: got pid %d, want %d", i, got, pid)
		}
	}
	if !rq.Empty() {
		t.Errorf("queue not empty after popping all handles, len=%d", rq.Len())
	}
}

func TestReadyQueue_PopMin_TieBreaksByLowerPID(t *testing.T) {
	// GIVEN three processes with equal vruntime, inserted in PID order 3, 1, 2
	arena := NewArena()
	rq := NewReadyQueue(arena)
	h3 := mustAdd(t, arena, 3, 0, 5, CPUBound)
	h1 := mustAdd(t, arena, 1, 0, 5, CPUBound)
	h2 := mustAdd(t, arena, 2, 0, 5, CPUBound)
	rq.Insert(h3)
	rq.Insert(h1)
	rq.Insert(h2)

	// WHEN all handles are popped
	// THEN ties resolve lower PID first regardless of insertion order
	want := []int{1, 2, 3}
	for i, pid := range want {
		if got := arena.Get(rq.PopMin()).PID; got != pid {
			t.Errorf("PopMin[%d]: got pid %d, want %d", i, got, pid)
		}
	}
}

func TestReadyQueue_PeekMin_DoesNotRemove(t *testing.T) {
	// GIVEN a queue with one process
	arena := NewArena()
	rq := NewReadyQueue(arena)
	h := mustAdd(t, arena, 1, 0, 5, CPUBound)
	rq.Insert(h)

	// WHEN PeekMin is called twice
	first := rq.PeekMin()
	second := rq.PeekMin()

	// THEN the same handle is returned and the queue is unchanged
	if first != h || second != h {
		t.Errorf("PeekMin: got %d then %d, want %d both times", first, second, h)
	}
	if rq.Len() != 1 {
		t.Errorf("PeekMin modified queue length: got %d, want 1", rq.Len())
	}
}

func TestReadyQueue_EmptyQueue_Sentinels(t *testing.T) {
	// GIVEN an empty queue
	arena := NewArena()
	rq := NewReadyQueue(arena)

	// THEN peek and pop return the invalid-handle sentinel
	if got := rq.PeekMin(); got != InvalidHandle {
		t.Errorf("PeekMin on empty queue: got %d, want InvalidHandle", got)
	}
	if got := rq.PopMin(); got != InvalidHandle {
		t.Errorf("PopMin on empty queue: got %d, want InvalidHandle", got)
	}
	if !rq.Empty() {
		t.Error("Empty() on empty queue: got false, want true")
	}
}

func TestReadyQueue_Insert_IgnoresInvalidHandle(t *testing.T) {
	// GIVEN an empty queue
	arena := NewArena()
	rq := NewReadyQueue(arena)

	// WHEN absent references are inserted
	rq.Insert(InvalidHandle)
	rq.Insert(Handle(99))

	// THEN the queue stays empty
	if !rq.Empty() {
		t.Errorf("Insert of invalid handles changed queue length: got %d, want 0", rq.Len())
	}
}

func TestReadyQueue_InterleavedInsertPop_KeepsMinOrder(t *testing.T) {
	// GIVEN a queue where pops and inserts interleave
	arena := NewArena()
	rq := NewReadyQueue(arena)
	ha := mustAdd(t, arena, 1, 0, 5, CPUBound)
	hb := mustAdd(t, arena, 2, 0, 5, CPUBound)
	arena.Get(ha).VRuntime = 5
	arena.Get(hb).VRuntime = 7
	rq.Insert(ha)
	rq.Insert(hb)

	// WHEN the minimum is popped, grows its vruntime past the other, and reenters
	h := rq.PopMin()
	arena.Get(h).VRuntime = 9
	rq.Insert(h)

	// THEN the other process is now the minimum
	if got := arena.Get(rq.PeekMin()).PID; got != 2 {
		t.Errorf("after reinsert: min pid got %d, want 2", got)
	}
}
