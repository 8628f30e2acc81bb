// Snapshot records: pure data describing observable system state at an event
// tick. The engine emits these through a caller-supplied callback and never
// formats text itself.

package sim

// ProcessView is one process's observable state inside a snapshot.
type ProcessView struct {
	ID            string
	State         ProcessState
	SizeKB        int
	RemainingTime int64
}

// PartitionView is one partition's observable state inside a snapshot.
type PartitionView struct {
	Index          int
	BaseKB         int
	SizeKB         int
	Reserved       bool
	OccupantID     string // empty when free
	OccupantSizeKB int    // 0 when free
	InternalFragKB int
}

// Snapshot captures the system at one event tick. The ID slices record which
// lifecycle transitions happened during the tick; a snapshot is emitted only
// when Arrived or Terminated is non-empty, plus one initial snapshot at time
// zero before the first tick.
type Snapshot struct {
	Time       int64
	Initial    bool     // state of the machine before the run starts
	Arrived    []string // not-arrived → new this tick
	Admitted   []string // new → ready this tick (obtained memory)
	Suspended  []string // new → ready-suspended this tick
	Promoted   []string // ready-suspended → ready this tick
	Terminated []string // running → terminated this tick
	RunningID  string   // process holding the CPU after scheduling, empty when idle
	Processes  []ProcessView
	Partitions []PartitionView
}

// SnapshotFunc receives each snapshot as it is emitted. The callback is the
// engine's cooperative yield point: it may block (e.g. waiting for a display
// acknowledgment) without affecting simulated time. A nil callback discards
// snapshots.
type SnapshotFunc func(Snapshot)

// snapshot assembles the current observable state. Processes appear in input
// order, partitions in declaration order.
func (s *Simulator) snapshot(tick tickOutcome, initial bool) Snapshot {
	snap := Snapshot{
		Time:       s.Clock,
		Initial:    initial,
		Arrived:    tick.arrived,
		Admitted:   tick.admitted,
		Suspended:  tick.suspended,
		Promoted:   tick.promoted,
		Terminated: tick.terminated,
	}
	if s.Running != nil {
		snap.RunningID = s.Running.ID
	}
	for _, p := range s.Processes {
		snap.Processes = append(snap.Processes, ProcessView{
			ID:            p.ID,
			State:         p.State,
			SizeKB:        p.SizeKB,
			RemainingTime: p.RemainingTime,
		})
	}
	for _, pt := range s.Memory.Partitions() {
		view := PartitionView{
			Index:          pt.Index,
			BaseKB:         pt.BaseKB,
			SizeKB:         pt.SizeKB,
			Reserved:       pt.Reserved,
			InternalFragKB: pt.InternalFragKB(),
		}
		if pt.Occupant != nil {
			view.OccupantID = pt.Occupant.ID
			view.OccupantSizeKB = pt.Occupant.SizeKB
		}
		snap.Partitions = append(snap.Partitions, view)
	}
	return snap
}
