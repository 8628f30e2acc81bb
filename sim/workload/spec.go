package workload

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/partition-sim/partition-sim/sim"
)

// MaxProcesses is the largest process set a run accepts.
const MaxProcesses = 10

// ProcessRecord is one process definition as read from an input source.
type ProcessRecord struct {
	ID      string `yaml:"id"`
	SizeKB  int    `yaml:"size_kb"`
	Arrival int64  `yaml:"arrival"`
	Burst   int64  `yaml:"burst"`
}

// Spec is the top-level YAML workload configuration.
// Loaded via LoadSpec(path).
type Spec struct {
	Processes []ProcessRecord `yaml:"processes"`
	Scheduler string          `yaml:"scheduler,omitempty"` // "srtf" (default) or "fcfs"
}

// LoadSpec reads and parses a YAML workload file and validates its records.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	return &spec, nil
}

// Validate checks every record and the set as a whole. A process larger than
// every partition is deliberately NOT rejected here: it loads fine and is
// reported by the engine as unadmittable at the end of the run.
func (s *Spec) Validate() error {
	if len(s.Processes) == 0 {
		return fmt.Errorf("no processes defined")
	}
	if len(s.Processes) > MaxProcesses {
		return fmt.Errorf("at most %d processes allowed, got %d", MaxProcesses, len(s.Processes))
	}
	if !sim.IsValidScheduler(s.Scheduler) {
		return fmt.Errorf("unknown scheduler %q", s.Scheduler)
	}
	seen := make(map[string]bool, len(s.Processes))
	for i, rec := range s.Processes {
		if err := validateRecord(rec); err != nil {
			return fmt.Errorf("process %d: %w", i+1, err)
		}
		if seen[rec.ID] {
			return fmt.Errorf("duplicate process id %q", rec.ID)
		}
		seen[rec.ID] = true
	}
	return nil
}

func validateRecord(rec ProcessRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("id must not be empty")
	}
	if rec.SizeKB <= 0 {
		return fmt.Errorf("size must be positive, got %d", rec.SizeKB)
	}
	if rec.Arrival < 0 {
		return fmt.Errorf("arrival time must not be negative, got %d", rec.Arrival)
	}
	if rec.Burst <= 0 {
		return fmt.Errorf("burst time must be positive, got %d", rec.Burst)
	}
	return nil
}

// Build materializes the records into engine processes, ordered by
// (arrival, id).
func Build(records []ProcessRecord) []*sim.Process {
	procs := make([]*sim.Process, 0, len(records))
	for _, rec := range records {
		procs = append(procs, sim.NewProcess(rec.ID, rec.SizeKB, rec.Arrival, rec.Burst))
	}
	sort.SliceStable(procs, func(i, j int) bool {
		if procs[i].ArrivalTime != procs[j].ArrivalTime {
			return procs[i].ArrivalTime < procs[j].ArrivalTime
		}
		return procs[i].ID < procs[j].ID
	})
	return procs
}
