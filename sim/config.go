package sim

import "fmt"

// PartitionSpec declares one fixed partition in the memory layout.
type PartitionSpec struct {
	SizeKB   int
	Reserved bool
}

// Config groups the fixed system configuration consumed at initialization.
// It is not user-tunable at runtime: the partition table and the
// multiprogramming cap are properties of the simulated machine.
type Config struct {
	Partitions          []PartitionSpec // declaration order fixes partition indices
	MaxMultiprogramming int             // cap on processes in {ready, ready-suspended, running}
	Scheduler           string          // scheduling policy name, see ValidSchedulers
}

// DefaultConfig returns the simulated machine: a 100 KB OS partition followed
// by user partitions of 250, 150 and 50 KB, multiprogramming degree 5, SRTF.
func DefaultConfig() Config {
	return Config{
		Partitions: []PartitionSpec{
			{SizeKB: 100, Reserved: true},
			{SizeKB: 250},
			{SizeKB: 150},
			{SizeKB: 50},
		},
		MaxMultiprogramming: 5,
		Scheduler:           "srtf",
	}
}

// ValidSchedulers is the set of recognized scheduler names.
// Shared by Validate() and NewScheduler() to avoid duplication.
var ValidSchedulers = map[string]bool{"": true, "srtf": true, "fcfs": true}

// IsValidScheduler returns true if name is a recognized scheduler.
func IsValidScheduler(name string) bool {
	return ValidSchedulers[name]
}

// Validate checks the configuration for structural errors.
func (c Config) Validate() error {
	if len(c.Partitions) == 0 {
		return fmt.Errorf("no partitions declared")
	}
	usable := 0
	for i, spec := range c.Partitions {
		if spec.SizeKB <= 0 {
			return fmt.Errorf("partition %d: size must be positive, got %d", i, spec.SizeKB)
		}
		if !spec.Reserved {
			usable++
		}
	}
	if usable == 0 {
		return fmt.Errorf("all partitions are reserved; no memory available for processes")
	}
	if c.MaxMultiprogramming <= 0 {
		return fmt.Errorf("multiprogramming degree must be positive, got %d", c.MaxMultiprogramming)
	}
	if !IsValidScheduler(c.Scheduler) {
		return fmt.Errorf("unknown scheduler %q", c.Scheduler)
	}
	return nil
}
