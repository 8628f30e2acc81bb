package sim

import (
	"testing"
)

func readyProc(id string, arrival, remaining int64) *Process {
	return &Process{ID: id, ArrivalTime: arrival, RemainingTime: remaining, State: StateReady}
}

func TestSRTF_PicksSmallestRemaining(t *testing.T) {
	sched := &SRTFScheduler{}
	ready := []*Process{
		readyProc("P1", 0, 5),
		readyProc("P2", 0, 3),
		readyProc("P3", 0, 8),
	}

	got := sched.Select(ready, nil, 0)
	if got == nil || got.ID != "P2" {
		t.Errorf("Select = %v, want P2", got)
	}
}

func TestSRTF_TieBreakByArrivalThenID(t *testing.T) {
	sched := &SRTFScheduler{}

	// equal remaining → earliest arrival wins
	got := sched.Select([]*Process{
		readyProc("P2", 3, 4),
		readyProc("P1", 1, 4),
	}, nil, 5)
	if got.ID != "P1" {
		t.Errorf("arrival tiebreak: Select = %s, want P1", got.ID)
	}

	// equal remaining and arrival → lexicographic ID
	got = sched.Select([]*Process{
		readyProc("Pb", 0, 4),
		readyProc("Pa", 0, 4),
	}, nil, 5)
	if got.ID != "Pa" {
		t.Errorf("ID tiebreak: Select = %s, want Pa", got.ID)
	}
}

func TestSRTF_PreemptsOnStrictlySmallerRemaining(t *testing.T) {
	sched := &SRTFScheduler{}
	running := &Process{ID: "P1", ArrivalTime: 0, RemainingTime: 6, State: StateRunning}
	ready := []*Process{readyProc("P2", 2, 3)}

	got := sched.Select(ready, running, 2)
	if got.ID != "P2" {
		t.Errorf("Select = %s, want P2 (strictly smaller remaining)", got.ID)
	}
}

func TestSRTF_NoPreemptionOnTie(t *testing.T) {
	sched := &SRTFScheduler{}
	// challenger ties on remaining time and even arrived earlier; the
	// incumbent keeps the CPU because preemption needs strict inequality
	running := &Process{ID: "P2", ArrivalTime: 1, RemainingTime: 4, State: StateRunning}
	ready := []*Process{readyProc("P1", 0, 4)}

	got := sched.Select(ready, running, 3)
	if got.ID != "P2" {
		t.Errorf("Select = %s, want incumbent P2 on tie", got.ID)
	}
}

func TestSRTF_IdleWhenNoCandidates(t *testing.T) {
	sched := &SRTFScheduler{}
	if got := sched.Select(nil, nil, 0); got != nil {
		t.Errorf("Select = %v, want nil (idle)", got)
	}
}

func TestSRTF_RunningOnlyKeepsCPU(t *testing.T) {
	sched := &SRTFScheduler{}
	running := &Process{ID: "P1", ArrivalTime: 0, RemainingTime: 9, State: StateRunning}
	if got := sched.Select(nil, running, 4); got != running {
		t.Errorf("Select = %v, want the running process", got)
	}
}

func TestFCFS_NeverPreempts(t *testing.T) {
	sched := &FCFSScheduler{}
	running := &Process{ID: "P1", ArrivalTime: 0, RemainingTime: 9, State: StateRunning}
	ready := []*Process{readyProc("P2", 1, 1)}

	if got := sched.Select(ready, running, 2); got != running {
		t.Errorf("FCFS preempted the running process")
	}
}

func TestFCFS_DispatchesEarliestArrival(t *testing.T) {
	sched := &FCFSScheduler{}
	got := sched.Select([]*Process{
		readyProc("P3", 4, 1),
		readyProc("P2", 2, 9),
		readyProc("P4", 2, 5),
	}, nil, 6)
	if got.ID != "P2" {
		t.Errorf("Select = %s, want P2 (earliest arrival, lowest ID)", got.ID)
	}
}

func TestNewScheduler_ValidNames_ReturnsCorrectType(t *testing.T) {
	if _, ok := NewScheduler("").(*SRTFScheduler); !ok {
		t.Errorf("NewScheduler(\"\"): expected *SRTFScheduler")
	}
	if _, ok := NewScheduler("srtf").(*SRTFScheduler); !ok {
		t.Errorf("NewScheduler(\"srtf\"): expected *SRTFScheduler")
	}
	if _, ok := NewScheduler("fcfs").(*FCFSScheduler); !ok {
		t.Errorf("NewScheduler(\"fcfs\"): expected *FCFSScheduler")
	}
}

func TestNewScheduler_UnknownName_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewScheduler(\"unknown\"): expected panic, got nil")
		}
	}()
	NewScheduler("unknown")
}

func TestSRTF_DoesNotReorderInput(t *testing.T) {
	sched := &SRTFScheduler{}
	ready := []*Process{
		readyProc("P1", 0, 5),
		readyProc("P2", 0, 3),
	}
	sched.Select(ready, nil, 0)

	if ready[0].ID != "P1" || ready[1].ID != "P2" {
		t.Errorf("Select mutated the caller's ready slice: %s, %s", ready[0].ID, ready[1].ID)
	}
}
