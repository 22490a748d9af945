// sim/scheduler.go
package sim

import (
	"github.com/sirupsen/logrus"
)

// Scheduler drives one complete simulation run: it repeatedly pops the
// minimum-vruntime process from the ready queue, dispatches it according to
// its nature, and records one execution-log entry per slice, until every
// seeded process has exhausted its burst time.
//
// A Scheduler owns exactly one ReadyQueue and one log collection; multiple
// independent runs never share state.
type Scheduler struct {
	cfg     Config
	clock   Clock
	arena   *Arena
	ready   *ReadyQueue
	log     []ExecutionLogEntry
	metrics *Metrics
}

// NewScheduler creates a Scheduler over the given arena.
// A nil clock defaults to a fresh VirtualClock.
func NewScheduler(cfg Config, clock Clock, arena *Arena) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = NewVirtualClock()
	}
	return &Scheduler{
		cfg:     cfg,
		clock:   clock,
		arena:   arena,
		ready:   NewReadyQueue(arena),
		log:     make([]ExecutionLogEntry, 0),
		metrics: NewMetrics(),
	}, nil
}

// Seed inserts the given processes into the ready queue.
// Absent references (invalid handles) are skipped, not errors. Processes
// with no remaining work are treated as already complete and are never
// inserted, so a dispatch can never drive remaining work negative.
func (s *Scheduler) Seed(handles []Handle) {
	for _, h := range handles {
		p := s.arena.Get(h)
		if p == nil {
			logrus.Warnf("seed: skipping absent process reference %d", h)
			s.metrics.SkippedSeeds++
			continue
		}
		if p.RemainingWork <= 0 {
			logrus.Warnf("seed: pid=%d has no remaining work, treating as already complete", p.PID)
			p.State = StateCompleted
			s.metrics.SkippedSeeds++
			continue
		}
		switch p.Nature {
		case CPUBound:
			s.metrics.CPUBoundSeeded++
		case IOBound:
			s.metrics.IOBoundSeeded++
		}
		s.ready.Insert(h)
	}
}

// weight computes the per-priority multiplier controlling how fast vruntime
// accrues relative to work consumed. Lower priority numbers get a larger
// weight and are favored. Used for reporting; the charge itself is computed
// in integer arithmetic.
func (s *Scheduler) weight(priority int) float64 {
	return float64(s.cfg.Nice0Load) / float64(priority+1)
}

// charge accrues vruntime for exec consumed units:
//
//	vruntime += exec * Nice0Load / weight(priority)
//
// With weight = Nice0Load/(priority+1) this cancels to exec * (priority + 1),
// and the charge must stay exactly that proportionality for every priority:
// lower-priority-number processes accumulate vruntime more slowly and get
// rescheduled sooner. Computed in integer arithmetic — routing it through the
// float weight truncates below the exact product once the quotient lands just
// under an integer.
func (s *Scheduler) charge(p *Process, exec int64) {
	p.VRuntime += exec * int64(p.Priority+1)
}

// Run executes the main loop until the ready queue is empty and returns the
// execution log in dispatch order.
func (s *Scheduler) Run() []ExecutionLogEntry {
	for !s.ready.Empty() {
		h := s.ready.PopMin()
		p := s.arena.Get(h)

		start := s.clock.Now()
		switch p.Nature {
		case CPUBound:
			s.dispatchCPUBound(h, p)
		case IOBound:
			s.dispatchIOBound(h, p)
		}
		end := s.clock.Now()
		if end < start {
			// A conforming clock never runs backwards; clamp to a
			// zero-length slice rather than emit a negative duration.
			logrus.Errorf("clock ran backwards during pid=%d dispatch (start=%d, end=%d), clamping", p.PID, start, end)
			end = start
		}

		s.log = append(s.log, ExecutionLogEntry{PID: p.PID, StartTime: start, EndTime: end})
		s.metrics.TotalSlices++
		s.metrics.DispatchCounts[p.PID]++
		p.Dispatches++

		logrus.Debugf("[tick %07d] pid=%d %s slice done, vruntime=%d, remaining=%d",
			end, p.PID, p.Nature, p.VRuntime, p.RemainingWork)
	}
	s.metrics.Makespan = s.clock.Now()
	logrus.Infof("[tick %07d] run ended: %d slices, %d processes completed",
		s.clock.Now(), s.metrics.TotalSlices, s.metrics.CompletedProcesses)
	return s.log
}

// dispatchCPUBound consumes up to one time slice of pure computation.
func (s *Scheduler) dispatchCPUBound(h Handle, p *Process) {
	exec := min(s.cfg.CPUTimeSlice, p.RemainingWork)
	p.RemainingWork -= exec
	s.charge(p, exec)
	s.clock.Advance(exec)
	s.metrics.WorkCharged[p.PID] += exec
	s.settle(h, p)
}

// dispatchIOBound consumes a full IO wait period followed by one unit of
// completion work. The wait is charged against vruntime at the same rate as
// computation, so IO-bound burst is measured in 1-unit completions while
// each of them costs IOWaitTime+1 vruntime units: the 10:1 wait-to-completion
// ratio at defaults is the intended fairness penalty. Do not optimize the
// wait charge away.
func (s *Scheduler) dispatchIOBound(h Handle, p *Process) {
	s.charge(p, s.cfg.IOWaitTime)
	s.clock.Advance(s.cfg.IOWaitTime)

	var exec int64 = 1
	p.RemainingWork -= exec
	s.charge(p, exec)
	s.clock.Advance(exec)
	s.metrics.WorkCharged[p.PID] += exec
	s.settle(h, p)
}

// settle reinserts an unfinished process or retires a completed one.
func (s *Scheduler) settle(h Handle, p *Process) {
	if p.RemainingWork > 0 {
		s.ready.Insert(h)
		return
	}
	p.State = StateCompleted
	s.metrics.CompletedProcesses++
	s.metrics.CompletionOrder = append(s.metrics.CompletionOrder, p.PID)
	s.metrics.FinalVRuntimes[p.PID] = p.VRuntime
	logrus.Infof("[tick %07d] pid=%d completed with vruntime=%d after %d slices",
		s.clock.Now(), p.PID, p.VRuntime, p.Dispatches+1)
}

// Log returns the execution log recorded so far, in dispatch order.
func (s *Scheduler) Log() []ExecutionLogEntry {
	return s.log
}

// Metrics returns the run's aggregated statistics.
func (s *Scheduler) Metrics() *Metrics {
	return s.metrics
}
