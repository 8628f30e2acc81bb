// Defines the Partition entity: a fixed memory region whose identity never
// changes during a run; only occupancy mutates.

package sim

import "fmt"

// Partition represents one fixed memory partition.
// Partition 0 is reserved for the operating system and is never offered to
// processes.
type Partition struct {
	Index    int      // Position in the declaration order, fixed at initialization
	BaseKB   int      // Start address, cumulative over lower partitions
	SizeKB   int      // Partition size in KB
	Reserved bool     // True for the operating system partition
	Occupant *Process // Resident process, nil when free
}

// Available reports whether the partition can receive a process.
func (pt *Partition) Available() bool {
	return !pt.Reserved && pt.Occupant == nil
}

// Fits reports whether a process of sizeKB fits in this partition.
func (pt *Partition) Fits(sizeKB int) bool {
	return sizeKB <= pt.SizeKB
}

// InternalFragKB returns the unused space inside an occupied partition.
// A free partition reports 0: unoccupied space is free memory, not
// fragmentation.
func (pt *Partition) InternalFragKB() int {
	if pt.Reserved || pt.Occupant == nil {
		return 0
	}
	return pt.SizeKB - pt.Occupant.SizeKB
}

// String returns a human-readable summary of the partition.
func (pt Partition) String() string {
	content := "free"
	switch {
	case pt.Reserved:
		content = "OS"
	case pt.Occupant != nil:
		content = fmt.Sprintf("%s(%d KB)", pt.Occupant.ID, pt.Occupant.SizeKB)
	}
	return fmt.Sprintf("Partition %d [%d KB @ %d]: %s", pt.Index, pt.SizeKB, pt.BaseKB, content)
}

// BuildPartitions constructs the partition list from the declared layout,
// deriving each base address from the cumulative sizes of lower partitions.
func BuildPartitions(specs []PartitionSpec) []*Partition {
	parts := make([]*Partition, 0, len(specs))
	base := 0
	for i, spec := range specs {
		parts = append(parts, &Partition{
			Index:    i,
			BaseKB:   base,
			SizeKB:   spec.SizeKB,
			Reserved: spec.Reserved,
		})
		base += spec.SizeKB
	}
	return parts
}
