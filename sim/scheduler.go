package sim

import (
	"fmt"
	"sort"
)

// Scheduler picks the process that should hold the CPU for the next tick.
// Select receives the ready set and the currently running process (nil when
// the CPU is idle) and returns the winner, or nil when there is no candidate.
// Implementations must be deterministic: equal inputs, equal choice.
type Scheduler interface {
	Select(ready []*Process, running *Process, clock int64) *Process
}

// SRTFScheduler implements preemptive shortest-remaining-time-first.
// Among all ready and running processes it picks the one with the smallest
// remaining burst time; ties break by earliest arrival, then by ID. The
// running process is displaced only when another candidate is strictly
// smaller, which the ordering guarantees because on equal remaining time the
// earlier-arrived (or lower-ID) process is already the incumbent by the time
// the tie occurs.
type SRTFScheduler struct{}

func (s *SRTFScheduler) Select(ready []*Process, running *Process, _ int64) *Process {
	candidates := make([]*Process, 0, len(ready)+1)
	candidates = append(candidates, ready...)
	if running != nil {
		candidates = append(candidates, running)
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].RemainingTime != candidates[j].RemainingTime {
			return candidates[i].RemainingTime < candidates[j].RemainingTime
		}
		if candidates[i].ArrivalTime != candidates[j].ArrivalTime {
			return candidates[i].ArrivalTime < candidates[j].ArrivalTime
		}
		return candidates[i].ID < candidates[j].ID
	})
	best := candidates[0]
	// Preemption requires strictly smaller remaining time; on a tie the
	// incumbent keeps the CPU.
	if running != nil && best != running && best.RemainingTime >= running.RemainingTime {
		return running
	}
	return best
}

// FCFSScheduler is non-preemptive first-come-first-served: the running
// process keeps the CPU until it finishes; otherwise the earliest-arrived
// ready process (ties by ID) is dispatched. Kept for comparison runs.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Select(ready []*Process, running *Process, _ int64) *Process {
	if running != nil {
		return running
	}
	var best *Process
	for _, p := range ready {
		if best == nil ||
			p.ArrivalTime < best.ArrivalTime ||
			(p.ArrivalTime == best.ArrivalTime && p.ID < best.ID) {
			best = p
		}
	}
	return best
}

// NewScheduler creates a Scheduler by name.
// Valid names: "srtf" (default), "fcfs". Empty string defaults to SRTF.
// Panics on unrecognized names.
func NewScheduler(name string) Scheduler {
	if !IsValidScheduler(name) {
		panic(fmt.Sprintf("unknown scheduler %q", name))
	}
	switch name {
	case "", "srtf":
		return &SRTFScheduler{}
	case "fcfs":
		return &FCFSScheduler{}
	default:
		panic(fmt.Sprintf("unhandled scheduler %q", name))
	}
}
