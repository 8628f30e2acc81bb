package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	sim "github.com/partition-sim/partition-sim/sim"
	"github.com/partition-sim/partition-sim/sim/workload"
)

func sampleSnapshot() sim.Snapshot {
	return sim.Snapshot{
		Time:       4,
		Terminated: []string{"P2"},
		Promoted:   []string{"P4"},
		RunningID:  "P1",
		Processes: []sim.ProcessView{
			{ID: "P1", State: sim.StateRunning, SizeKB: 200, RemainingTime: 3},
			{ID: "P2", State: sim.StateTerminated, SizeKB: 140},
			{ID: "P3", State: sim.StateReady, SizeKB: 40, RemainingTime: 2},
			{ID: "P5", State: sim.StateReadySuspended, SizeKB: 180, RemainingTime: 2},
		},
		Partitions: []sim.PartitionView{
			{Index: 0, SizeKB: 100, Reserved: true},
			{Index: 1, BaseKB: 100, SizeKB: 250, OccupantID: "P1", OccupantSizeKB: 200, InternalFragKB: 50},
			{Index: 2, BaseKB: 350, SizeKB: 150},
		},
	}
}

func TestRenderSnapshot_ShowsStatesAndPartitions(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, strings.NewReader(""), false)

	r.RenderSnapshot(sampleSnapshot())
	out := buf.String()

	assert.Contains(t, out, "TERMINATED: P2")
	assert.Contains(t, out, "PROMOTED: P4")
	assert.Contains(t, out, "TIME: 4")
	assert.Contains(t, out, "- RUNNING: P1")
	assert.Contains(t, out, "- READY: P3")
	assert.Contains(t, out, "- READY-SUSPENDED: P5")
	assert.Contains(t, out, "operating system")
	assert.Contains(t, out, "P1(200 KB)")
	assert.Contains(t, out, "IF: 50 KB")
	assert.Contains(t, out, "free")
	assert.NotContains(t, out, "PRESS ENTER")
}

func TestRenderSnapshot_InitialBanner(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, strings.NewReader(""), false)

	r.RenderSnapshot(sim.Snapshot{Initial: true})
	out := buf.String()

	assert.Contains(t, out, "INITIAL MEMORY STATE")
	assert.NotContains(t, out, "TIME:")
}

func TestRenderSnapshot_PauseWaitsForEnter(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, strings.NewReader("\n"), true)

	r.RenderSnapshot(sampleSnapshot())

	assert.Contains(t, buf.String(), "PRESS ENTER TO CONTINUE")
}

func TestEventBanner_FallsBackToArrivals(t *testing.T) {
	// arrivals show up alone only when nothing else happened this tick
	banner := eventBanner(sim.Snapshot{Arrived: []string{"P1", "P2"}})
	assert.Equal(t, "ARRIVED: P1, P2", banner)

	banner = eventBanner(sim.Snapshot{
		Arrived:  []string{"P1"},
		Admitted: []string{"P1"},
	})
	assert.Equal(t, "ADMITTED TO MEMORY: P1", banner)
}

func TestRenderReport_PrintsStatisticsAndStall(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, strings.NewReader(""), false)

	r.RenderReport(sim.Report{
		FinalTime: 15,
		Completed: 2,
		PerProcess: []sim.ProcessStats{
			{ID: "P2", TurnaroundTime: 4, WaitingTime: 1},
			{ID: "P1", TurnaroundTime: 13, WaitingTime: 8},
		},
		AvgTurnaround: 8.5,
		AvgWaiting:    4.5,
		Throughput:    2.0 / 15.0,
		Stalled:       true,
		Unadmittable:  []string{"P9"},
	})
	out := buf.String()

	assert.Contains(t, out, "FINAL SIMULATION STATISTICS")
	assert.Contains(t, out, "Average turnaround time: 8.50")
	assert.Contains(t, out, "Average waiting time: 4.50")
	assert.Contains(t, out, "Throughput: 0.1333 processes/tick")
	assert.Contains(t, out, "UNREACHABLE ADMISSION")
	assert.Contains(t, out, "P9")
}

func TestRenderReport_EmptyRun(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, strings.NewReader(""), false)

	r.RenderReport(sim.Report{Stalled: true, Unadmittable: []string{"P1"}})
	out := buf.String()

	assert.Contains(t, out, "No terminated processes to report.")
	assert.Contains(t, out, "P1")
}

func TestPrintBanner_ListsPartitions(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, sim.DefaultConfig())
	out := buf.String()

	assert.Contains(t, out, "CPU scheduling: SRTF")
	assert.Contains(t, out, "Multiprogramming degree: 5")
	assert.Contains(t, out, "OS(100KB), 250KB, 150KB, 50KB")
}

func TestPrintLoaded_ListsRecords(t *testing.T) {
	var buf bytes.Buffer
	PrintLoaded(&buf, []workload.ProcessRecord{
		{ID: "P1", SizeKB: 200, Arrival: 0, Burst: 5},
	})
	out := buf.String()

	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "Total: 1 processes")
}

func TestCenter_PadsNarrowStrings(t *testing.T) {
	assert.Equal(t, "  ab  ", center("ab", 6))
	assert.Equal(t, " ab  ", center("ab", 5))
	assert.Equal(t, "abcdef", center("abcdef", 4))
}
