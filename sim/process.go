// Defines the Process entity: static attributes from the input record,
// dynamic lifecycle state, and the legal state-transition table.

package sim

import "fmt"

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNotArrived     ProcessState = "not-arrived"
	StateNew            ProcessState = "new"
	StateReady          ProcessState = "ready"
	StateReadySuspended ProcessState = "ready-suspended"
	StateRunning        ProcessState = "running"
	StateTerminated     ProcessState = "terminated"
)

// LifecycleEvent is a trigger that moves a process between states.
type LifecycleEvent string

const (
	// EventArrive fires when the clock reaches the process's arrival time.
	EventArrive LifecycleEvent = "arrive"
	// EventAdmit fires when best-fit finds a partition and the
	// multiprogramming degree allows admission.
	EventAdmit LifecycleEvent = "admit"
	// EventSuspend fires when an arrived process takes a multiprogramming
	// slot without obtaining memory.
	EventSuspend LifecycleEvent = "suspend"
	// EventDispatch fires when the scheduler selects the process to run.
	EventDispatch LifecycleEvent = "dispatch"
	// EventPreempt fires when a ready process with strictly smaller
	// remaining time displaces the running one.
	EventPreempt LifecycleEvent = "preempt"
	// EventFinish fires when remaining burst time reaches zero.
	EventFinish LifecycleEvent = "finish"
)

// transitions is the legal (state, event) → state table.
// Anything absent from the table is an illegal move.
var transitions = map[ProcessState]map[LifecycleEvent]ProcessState{
	StateNotArrived: {
		EventArrive: StateNew,
	},
	StateNew: {
		EventAdmit:   StateReady,
		EventSuspend: StateReadySuspended,
	},
	StateReadySuspended: {
		EventAdmit: StateReady,
	},
	StateReady: {
		EventDispatch: StateRunning,
	},
	StateRunning: {
		EventPreempt: StateReady,
		EventFinish:  StateTerminated,
	},
}

// NextState returns the state a process moves to when event fires in the
// current state. It is a pure function so transitions can be tested without
// a live engine.
func NextState(current ProcessState, event LifecycleEvent) (ProcessState, error) {
	next, ok := transitions[current][event]
	if !ok {
		return "", fmt.Errorf("illegal transition: %s on %q", event, current)
	}
	return next, nil
}

// Process models one process record and its lifecycle through the run.
type Process struct {
	ID          string // Unique identifier (e.g. "P1")
	SizeKB      int    // Memory footprint in KB
	ArrivalTime int64  // Tick at which the process enters the system
	BurstTime   int64  // Total CPU time required

	RemainingTime  int64        // CPU time still needed; BurstTime at construction, 0 at termination
	State          ProcessState // Current lifecycle state
	Partition      *Partition   // Assigned partition while resident, nil otherwise
	CompletionTime int64        // Tick of termination; meaningful only once terminated
	WaitingTicks   int64        // Ticks spent arrived but not running
}

// NewProcess constructs a process in the not-arrived state with its full
// burst outstanding.
func NewProcess(id string, sizeKB int, arrival, burst int64) *Process {
	return &Process{
		ID:            id,
		SizeKB:        sizeKB,
		ArrivalTime:   arrival,
		BurstTime:     burst,
		RemainingTime: burst,
		State:         StateNotArrived,
	}
}

// apply fires event against the transition table and mutates State.
// Illegal transitions are programmer errors in the engine, hence the panic.
func (p *Process) apply(event LifecycleEvent) {
	next, err := NextState(p.State, event)
	if err != nil {
		panic(fmt.Sprintf("process %s: %v", p.ID, err))
	}
	p.State = next
}

// Resident reports whether the process currently holds a partition.
func (p *Process) Resident() bool {
	return p.Partition != nil
}

// Counted reports whether the process occupies a multiprogramming slot.
// Ready, ready-suspended and running processes count; new and not-arrived
// ones do not.
func (p *Process) Counted() bool {
	switch p.State {
	case StateReady, StateReadySuspended, StateRunning:
		return true
	}
	return false
}

// TurnaroundTime returns completion - arrival. Valid only once terminated.
func (p *Process) TurnaroundTime() int64 {
	return p.CompletionTime - p.ArrivalTime
}

// WaitingTime returns turnaround - burst. Valid only once terminated.
func (p *Process) WaitingTime() int64 {
	return p.TurnaroundTime() - p.BurstTime
}

// String returns a human-readable summary of the process.
func (p Process) String() string {
	return fmt.Sprintf("Process(ID: %s, Size: %dKB, State: %s, Remaining: %d)",
		p.ID, p.SizeKB, p.State, p.RemainingTime)
}
