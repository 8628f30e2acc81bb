// Final run statistics: per-process turnaround and waiting times, their
// averages, and system throughput.

package sim

// ProcessStats holds the timing results for one terminated process.
type ProcessStats struct {
	ID             string
	ArrivalTime    int64
	BurstTime      int64
	CompletionTime int64
	TurnaroundTime int64 // completion - arrival
	WaitingTime    int64 // turnaround - burst
}

// Report aggregates the end-of-run statistics. Produced by Simulator.Run;
// rendering is the caller's concern.
type Report struct {
	FinalTime     int64          // simulated time when the run ended
	Completed     int            // number of terminated processes
	PerProcess    []ProcessStats // terminated processes in completion order
	AvgTurnaround float64
	AvgWaiting    float64
	Throughput    float64 // processes terminated per unit simulated time

	// Stalled is set when the run halted because every non-terminated
	// process is permanently unfittable; Unadmittable lists them.
	Stalled      bool
	Unadmittable []string
}

// buildReport computes the final statistics from the terminated processes.
func buildReport(completed []*Process, finalTime int64, unadmittable []string) Report {
	r := Report{
		FinalTime:    finalTime,
		Completed:    len(completed),
		Stalled:      len(unadmittable) > 0,
		Unadmittable: unadmittable,
	}
	var sumTurnaround, sumWaiting int64
	for _, p := range completed {
		stats := ProcessStats{
			ID:             p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			CompletionTime: p.CompletionTime,
			TurnaroundTime: p.TurnaroundTime(),
			WaitingTime:    p.WaitingTime(),
		}
		r.PerProcess = append(r.PerProcess, stats)
		sumTurnaround += stats.TurnaroundTime
		sumWaiting += stats.WaitingTime
	}
	if len(completed) > 0 {
		r.AvgTurnaround = float64(sumTurnaround) / float64(len(completed))
		r.AvgWaiting = float64(sumWaiting) / float64(len(completed))
	}
	if finalTime > 0 {
		r.Throughput = float64(len(completed)) / float64(finalTime)
	}
	return r
}
