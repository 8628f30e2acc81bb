// Implements the MemoryManager: best-fit admission into fixed partitions and
// instant release on termination.

package sim

import (
	"github.com/sirupsen/logrus"
)

// MemoryManager owns the ordered partition list and implements the best-fit
// policy over it. It never gates on the multiprogramming degree; that counter
// belongs to the Simulator.
type MemoryManager struct {
	partitions []*Partition
}

// NewMemoryManager builds a manager over the given partitions. The slice is
// shared with the Simulator, not copied: both operate on the same entities.
func NewMemoryManager(partitions []*Partition) *MemoryManager {
	return &MemoryManager{partitions: partitions}
}

// BestFit returns the unoccupied non-reserved partition whose size is the
// smallest value still >= the process size. Ties on equal size go to the
// lowest partition index. Returns nil when nothing fits, which is a normal
// outcome and not an error.
func (m *MemoryManager) BestFit(p *Process) *Partition {
	var best *Partition
	for _, pt := range m.partitions {
		if !pt.Available() || !pt.Fits(p.SizeKB) {
			continue
		}
		// strict < keeps the lowest index on equal sizes
		if best == nil || pt.SizeKB < best.SizeKB {
			best = pt
		}
	}
	return best
}

// Allocate runs best-fit for p and, on success, links process and partition.
// Returns false when no unoccupied partition is large enough.
func (m *MemoryManager) Allocate(p *Process) bool {
	pt := m.BestFit(p)
	if pt == nil {
		logrus.Debugf("no fit for %s (%d KB)", p.ID, p.SizeKB)
		return false
	}
	pt.Occupant = p
	p.Partition = pt
	logrus.Debugf("allocated partition %d (%d KB) to %s (%d KB), internal frag %d KB",
		pt.Index, pt.SizeKB, p.ID, p.SizeKB, pt.InternalFragKB())
	return true
}

// Release returns p's partition to the unoccupied state. The freed partition
// is immediately a candidate for admission within the same tick. Returns
// false if p held no partition.
func (m *MemoryManager) Release(p *Process) bool {
	if p.Partition == nil {
		return false
	}
	pt := p.Partition
	pt.Occupant = nil
	p.Partition = nil
	logrus.Debugf("released partition %d from %s", pt.Index, p.ID)
	return true
}

// Residents returns the number of occupied partitions.
func (m *MemoryManager) Residents() int {
	n := 0
	for _, pt := range m.partitions {
		if !pt.Reserved && pt.Occupant != nil {
			n++
		}
	}
	return n
}

// Partitions returns the ordered partition list.
func (m *MemoryManager) Partitions() []*Partition {
	return m.partitions
}

// LargestUsableKB returns the size of the largest non-reserved partition.
// A process bigger than this can never be admitted, occupied or not.
func (m *MemoryManager) LargestUsableKB() int {
	largest := 0
	for _, pt := range m.partitions {
		if !pt.Reserved && pt.SizeKB > largest {
			largest = pt.SizeKB
		}
	}
	return largest
}

// TotalInternalFragKB sums internal fragmentation across occupied partitions.
func (m *MemoryManager) TotalInternalFragKB() int {
	total := 0
	for _, pt := range m.partitions {
		total += pt.InternalFragKB()
	}
	return total
}
