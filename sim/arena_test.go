package sim

import (
	"testing"
)

func TestArena_Add_ReturnsStableHandles(t *testing.T) {
	// GIVEN an empty arena
	arena := NewArena()

	// WHEN two processes are added
	h1 := mustAdd(t, arena, 10, 1, 5, CPUBound)
	h2 := mustAdd(t, arena, 20, 2, 8, IOBound)

	// THEN handles address the records they were created for
	if got := arena.Get(h1).PID; got != 10 {
		t.Errorf("Get(h1).PID: got %d, want 10", got)
	}
	if got := arena.Get(h2).PID; got != 20 {
		t.Errorf("Get(h2).PID: got %d, want 20", got)
	}
	if arena.Len() != 2 {
		t.Errorf("Len: got %d, want 2", arena.Len())
	}
}

func TestArena_Add_RejectsInvalidSpecs(t *testing.T) {
	arena := NewArena()

	cases := []struct {
		name     string
		priority int
		burst    int64
		nature   Nature
	}{
		{"negative priority", -1, 5, CPUBound},
		{"negative burst", 0, -3, CPUBound},
		{"unknown nature", 0, 5, Nature("gpu-bound")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := arena.Add(1, tc.priority, tc.burst, tc.nature)
			if err == nil {
				t.Fatal("Add: expected error, got nil")
			}
			if h != InvalidHandle {
				t.Errorf("Add: got handle %d, want InvalidHandle", h)
			}
		})
	}
}

func TestArena_Add_ZeroBurstIsAlreadyComplete(t *testing.T) {
	// GIVEN a process created with zero burst time
	arena := NewArena()
	h := mustAdd(t, arena, 1, 0, 0, CPUBound)

	// THEN it is born in the completed state
	if got := arena.Get(h).State; got != StateCompleted {
		t.Errorf("zero-burst process state: got %s, want %s", got, StateCompleted)
	}
}

func TestArena_Get_InvalidHandle_ReturnsNil(t *testing.T) {
	arena := NewArena()
	mustAdd(t, arena, 1, 0, 5, CPUBound)

	if arena.Get(InvalidHandle) != nil {
		t.Error("Get(InvalidHandle): got record, want nil")
	}
	if arena.Get(Handle(5)) != nil {
		t.Error("Get(out of range): got record, want nil")
	}
}

func TestArena_MutationThroughHandle_IsVisible(t *testing.T) {
	// GIVEN a process record
	arena := NewArena()
	h := mustAdd(t, arena, 1, 0, 5, CPUBound)

	// WHEN it is mutated through one Get
	arena.Get(h).VRuntime = 42

	// THEN a later Get observes the mutation (handle semantics, not copies)
	if got := arena.Get(h).VRuntime; got != 42 {
		t.Errorf("VRuntime after mutation: got %d, want 42", got)
	}
}
