// sim/simulator.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that owns simulated time, the authoritative
// process and partition collections, and the multiprogramming gate. It
// orchestrates the MemoryManager and Scheduler once per tick in a fixed
// order, so admission always sees the completions of the same tick and the
// scheduler always sees the admissions of the same tick.
type Simulator struct {
	Clock int64
	// Processes holds every process for the run, in (arrival, id) order.
	// The set is fixed at construction; no process is created or destroyed
	// mid-run.
	Processes []*Process
	Memory    *MemoryManager
	Scheduler Scheduler
	// MaxMultiprogramming caps the processes simultaneously in
	// {ready, ready-suspended, running}.
	MaxMultiprogramming int
	// Running is the process holding the CPU, nil when idle.
	Running *Process
	// OnSnapshot receives each emitted snapshot; nil discards them.
	OnSnapshot SnapshotFunc

	completed []*Process // terminated processes in completion order
}

// tickOutcome collects the lifecycle transitions of one tick, used to decide
// snapshot emission and to annotate the snapshot.
type tickOutcome struct {
	arrived    []string
	admitted   []string
	suspended  []string
	promoted   []string
	terminated []string
}

// observable reports whether the tick must emit a snapshot: only arrivals
// and terminations are observable events, never preemption or idle ticks.
func (t tickOutcome) observable() bool {
	return len(t.arrived) > 0 || len(t.terminated) > 0
}

// NewSimulator builds a simulator over the validated configuration and the
// pre-loaded process set. Processes are re-sorted by (arrival, id) so
// admission order holds regardless of input order.
func NewSimulator(cfg Config, processes []*Process, onSnapshot SnapshotFunc) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	sorted := make([]*Process, len(processes))
	copy(sorted, processes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ArrivalTime != sorted[j].ArrivalTime {
			return sorted[i].ArrivalTime < sorted[j].ArrivalTime
		}
		return sorted[i].ID < sorted[j].ID
	})
	return &Simulator{
		Processes:           sorted,
		Memory:              NewMemoryManager(BuildPartitions(cfg.Partitions)),
		Scheduler:           NewScheduler(cfg.Scheduler),
		MaxMultiprogramming: cfg.MaxMultiprogramming,
		OnSnapshot:          onSnapshot,
	}, nil
}

// Run executes the simulation to completion and returns the final report.
// The run ends when every process has terminated, or when the remaining
// processes can never be admitted (reported, not looped on).
func (s *Simulator) Run() Report {
	s.emit(s.snapshot(tickOutcome{}, true))

	for !s.allTerminated() {
		outcome := s.tick()
		if outcome.observable() {
			s.emit(s.snapshot(outcome, false))
		}
		if s.allTerminated() {
			break
		}
		if s.stalled() {
			unadmittable := s.unadmittableIDs()
			logrus.Warnf("[tick %04d] run stalled: %v can never be admitted", s.Clock, unadmittable)
			return buildReport(s.completed, s.Clock, unadmittable)
		}
		s.Clock++
	}

	logrus.Infof("[tick %04d] simulation ended, %d processes terminated", s.Clock, len(s.completed))
	return buildReport(s.completed, s.Clock, nil)
}

// tick executes the fixed per-tick sequence: arrivals, completions from the
// previous tick, admission, scheduling, and one unit of CPU progress.
func (s *Simulator) tick() tickOutcome {
	var out tickOutcome

	// 1. Promote arrivals whose time has come to new.
	for _, p := range s.Processes {
		if p.State == StateNotArrived && p.ArrivalTime == s.Clock {
			p.apply(EventArrive)
			out.arrived = append(out.arrived, p.ID)
			logrus.Infof("[tick %04d] %s arrived (%d KB, burst %d)", s.Clock, p.ID, p.SizeKB, p.BurstTime)
		}
	}

	// 2. Retire the process that ran out of burst at the end of the
	// previous tick: release its partition before admission runs so the
	// freed partition is a candidate within this same tick.
	if s.Running != nil && s.Running.RemainingTime == 0 {
		p := s.Running
		p.apply(EventFinish)
		p.CompletionTime = s.Clock
		s.Memory.Release(p)
		s.Running = nil
		s.completed = append(s.completed, p)
		out.terminated = append(out.terminated, p.ID)
		logrus.Infof("[tick %04d] %s terminated (turnaround %d, waiting %d)",
			s.Clock, p.ID, p.TurnaroundTime(), p.WaitingTime())
	}

	// 3. Admission pass.
	s.admit(&out)

	// 4. Scheduling: SRTF re-evaluated every tick, including the tick a
	// process became ready.
	s.dispatch()

	// 5. One unit of simulated CPU time; everyone else arrived and alive
	// accumulates waiting.
	for _, p := range s.Processes {
		switch {
		case p == s.Running:
			p.RemainingTime--
		case p.State == StateNotArrived || p.State == StateTerminated:
			// no clock charged
		default:
			p.WaitingTicks++
		}
	}

	return out
}

// admit attempts admission for every new or ready-suspended process in
// (arrival, id) order. A new process with a fitting partition becomes ready;
// with a multiprogramming slot but no fit it becomes ready-suspended (counted
// but memory-less); with no slot at all it stays new and uncounted. A
// ready-suspended process already holds a slot, so promotion only needs a
// fitting partition.
func (s *Simulator) admit(out *tickOutcome) {
	candidates := make([]*Process, 0, len(s.Processes))
	for _, p := range s.Processes {
		if p.State == StateNew || p.State == StateReadySuspended {
			candidates = append(candidates, p)
		}
	}
	// s.Processes is (arrival, id) ordered, so candidates already are; the
	// explicit sort documents the admission contract.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].ArrivalTime != candidates[j].ArrivalTime {
			return candidates[i].ArrivalTime < candidates[j].ArrivalTime
		}
		return candidates[i].ID < candidates[j].ID
	})

	for _, p := range candidates {
		switch p.State {
		case StateReadySuspended:
			if s.Memory.Allocate(p) {
				p.apply(EventAdmit)
				out.promoted = append(out.promoted, p.ID)
				logrus.Infof("[tick %04d] %s promoted from suspension into partition %d",
					s.Clock, p.ID, p.Partition.Index)
			}
		case StateNew:
			if s.multiprogrammingCount() >= s.MaxMultiprogramming {
				// No slot: the process stays new, queued and uncounted.
				logrus.Debugf("[tick %04d] %s held in new queue, degree at cap", s.Clock, p.ID)
				continue
			}
			if s.Memory.Allocate(p) {
				p.apply(EventAdmit)
				out.admitted = append(out.admitted, p.ID)
				logrus.Infof("[tick %04d] %s admitted into partition %d", s.Clock, p.ID, p.Partition.Index)
			} else {
				p.apply(EventSuspend)
				out.suspended = append(out.suspended, p.ID)
				logrus.Infof("[tick %04d] %s suspended, no fitting partition", s.Clock, p.ID)
			}
		}
	}
}

// dispatch re-runs scheduler selection and applies any dispatch/preemption.
func (s *Simulator) dispatch() {
	ready := make([]*Process, 0, len(s.Processes))
	for _, p := range s.Processes {
		if p.State == StateReady {
			ready = append(ready, p)
		}
	}
	selected := s.Scheduler.Select(ready, s.Running, s.Clock)
	if selected == s.Running {
		return
	}
	if s.Running != nil {
		// Progress is preserved exactly; no restart penalty.
		s.Running.apply(EventPreempt)
		logrus.Infof("[tick %04d] %s preempted by %s (remaining %d > %d)",
			s.Clock, s.Running.ID, selected.ID, s.Running.RemainingTime, selected.RemainingTime)
	}
	selected.apply(EventDispatch)
	s.Running = selected
}

// multiprogrammingCount returns the number of processes holding a slot:
// those in {ready, ready-suspended, running}.
func (s *Simulator) multiprogrammingCount() int {
	n := 0
	for _, p := range s.Processes {
		if p.Counted() {
			n++
		}
	}
	return n
}

func (s *Simulator) allTerminated() bool {
	for _, p := range s.Processes {
		if p.State != StateTerminated {
			return false
		}
	}
	return true
}

// stalled reports whether the run can make no further progress: the CPU is
// idle, nothing is ready, no arrivals remain, and at least one process is
// still alive. At that point every partition is free (suspended processes
// hold none), the admission pass of this tick admitted nobody into a fully
// free memory, and no completion can ever free anything, so the remaining
// processes are permanently unadmittable.
func (s *Simulator) stalled() bool {
	if s.Running != nil {
		return false
	}
	alive := false
	for _, p := range s.Processes {
		switch p.State {
		case StateReady, StateNotArrived:
			return false
		case StateNew, StateReadySuspended:
			alive = true
		}
	}
	return alive
}

// unadmittableIDs lists the processes left behind by a stalled run.
func (s *Simulator) unadmittableIDs() []string {
	var ids []string
	for _, p := range s.Processes {
		if p.State != StateTerminated {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func (s *Simulator) emit(snap Snapshot) {
	if s.OnSnapshot != nil {
		s.OnSnapshot(snap)
	}
}
