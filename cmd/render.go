// Console rendering of engine output: snapshot tables, event banners, and
// the final statistics report. The engine only produces structured data;
// everything printable lives here.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	sim "github.com/partition-sim/partition-sim/sim"
	"github.com/partition-sim/partition-sim/sim/workload"
)

// Renderer writes snapshots and reports to a console. When pause is set it
// blocks on the input reader between snapshots, which is the engine's
// cooperative yield point and does not affect simulated time.
type Renderer struct {
	out   io.Writer
	in    *bufio.Reader
	pause bool
}

// NewRenderer builds a renderer over the given streams.
func NewRenderer(out io.Writer, in io.Reader, pause bool) *Renderer {
	return &Renderer{out: out, in: bufio.NewReader(in), pause: pause}
}

// PrintBanner shows the fixed system configuration before the run.
func PrintBanner(out io.Writer, cfg sim.Config) {
	fmt.Fprintln(out, strings.Repeat("=", 70))
	fmt.Fprintln(out, "   FIXED-PARTITION MEMORY AND PROCESS SCHEDULING SIMULATOR")
	fmt.Fprintln(out, strings.Repeat("=", 70))
	fmt.Fprintln(out, "\nSystem configuration:")
	fmt.Fprintln(out, "  - Memory allocation: fixed partitions, best-fit")
	fmt.Fprintf(out, "  - CPU scheduling: %s\n", strings.ToUpper(cfg.Scheduler))
	fmt.Fprintf(out, "  - Multiprogramming degree: %d\n", cfg.MaxMultiprogramming)
	sizes := make([]string, 0, len(cfg.Partitions))
	for _, p := range cfg.Partitions {
		label := fmt.Sprintf("%dKB", p.SizeKB)
		if p.Reserved {
			label = "OS(" + label + ")"
		}
		sizes = append(sizes, label)
	}
	fmt.Fprintf(out, "  - Partitions: %s\n\n", strings.Join(sizes, ", "))
}

// PrintLoaded shows the loaded process table.
func PrintLoaded(out io.Writer, records []workload.ProcessRecord) {
	fmt.Fprintln(out, "Loaded processes:")
	fmt.Fprintln(out, strings.Repeat("-", 60))
	fmt.Fprintf(out, "%-8s %-12s %-12s %-12s\n", "ID", "Size (KB)", "Arrival", "Burst")
	fmt.Fprintln(out, strings.Repeat("-", 60))
	for _, rec := range records {
		fmt.Fprintf(out, "%-8s %-12d %-12d %-12d\n", rec.ID, rec.SizeKB, rec.Arrival, rec.Burst)
	}
	fmt.Fprintln(out, strings.Repeat("-", 60))
	fmt.Fprintf(out, "Total: %d processes\n\n", len(records))
}

// RenderSnapshot prints one snapshot: event banner, process states by
// category, and the partition table.
func (r *Renderer) RenderSnapshot(snap sim.Snapshot) {
	if banner := eventBanner(snap); banner != "" {
		dashes := strings.Repeat("-", 16)
		fmt.Fprintf(r.out, "\n%s %s %s\n\n", dashes, banner, dashes)
	}
	if !snap.Initial {
		fmt.Fprintf(r.out, "TIME: %d\n", snap.Time)
	}

	r.renderProcessStates(snap)
	r.renderPartitionTable(snap)

	if r.pause {
		fmt.Fprintln(r.out, "\nPRESS ENTER TO CONTINUE")
		_, _ = r.in.ReadString('\n')
	}
}

// eventBanner summarizes the tick's transitions in one line.
func eventBanner(snap sim.Snapshot) string {
	if snap.Initial {
		return "INITIAL MEMORY STATE"
	}
	var parts []string
	if len(snap.Terminated) > 0 {
		parts = append(parts, "TERMINATED: "+strings.Join(snap.Terminated, ", "))
	}
	if len(snap.Admitted) > 0 {
		parts = append(parts, "ADMITTED TO MEMORY: "+strings.Join(snap.Admitted, ", "))
	}
	if len(snap.Promoted) > 0 {
		parts = append(parts, "PROMOTED: "+strings.Join(snap.Promoted, ", "))
	}
	if len(snap.Suspended) > 0 {
		parts = append(parts, "SUSPENDED: "+strings.Join(snap.Suspended, ", "))
	}
	if len(parts) == 0 && len(snap.Arrived) > 0 {
		parts = append(parts, "ARRIVED: "+strings.Join(snap.Arrived, ", "))
	}
	return strings.Join(parts, " - ")
}

func (r *Renderer) renderProcessStates(snap sim.Snapshot) {
	byState := make(map[sim.ProcessState][]string)
	for _, p := range snap.Processes {
		byState[p.State] = append(byState[p.State], p.ID)
	}
	fmt.Fprintln(r.out, "PROCESS STATES:")
	if snap.RunningID != "" {
		fmt.Fprintf(r.out, "- RUNNING: %s\n", snap.RunningID)
	} else {
		fmt.Fprintln(r.out, "- RUNNING: none")
	}
	categories := []struct {
		label string
		state sim.ProcessState
	}{
		{"READY", sim.StateReady},
		{"READY-SUSPENDED", sim.StateReadySuspended},
		{"NEW", sim.StateNew},
		{"NOT ARRIVED", sim.StateNotArrived},
		{"TERMINATED", sim.StateTerminated},
	}
	for _, cat := range categories {
		fmt.Fprintf(r.out, "- %s: %s\n", cat.label, strings.Join(byState[cat.state], ", "))
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) renderPartitionTable(snap sim.Snapshot) {
	fmt.Fprintln(r.out, "┌───────────┬────────────────────┬─────────────────┬──────────────┐")
	fmt.Fprintln(r.out, "│ PARTITION │      CONTENT       │      SIZE       │  FRAG/FREE   │")
	fmt.Fprintln(r.out, "├───────────┼────────────────────┼─────────────────┼──────────────┤")
	for _, pt := range snap.Partitions {
		content := "-"
		frag := "free"
		switch {
		case pt.Reserved:
			content = "operating system"
			frag = "IF: 0 KB"
		case pt.OccupantID != "":
			content = fmt.Sprintf("%s(%d KB)", pt.OccupantID, pt.OccupantSizeKB)
			frag = fmt.Sprintf("IF: %d KB", pt.InternalFragKB)
		}
		fmt.Fprintf(r.out, "│ %s │ %s │ %s │ %s │\n",
			center(fmt.Sprint(pt.Index), 9),
			center(content, 18),
			center(fmt.Sprintf("%d KB", pt.SizeKB), 15),
			center(frag, 12))
	}
	fmt.Fprintln(r.out, "└───────────┴────────────────────┴─────────────────┴──────────────┘")
	fmt.Fprintln(r.out)
}

// RenderReport prints the end-of-run statistics.
func (r *Renderer) RenderReport(report sim.Report) {
	fmt.Fprintln(r.out, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(r.out, "FINAL SIMULATION STATISTICS")
	fmt.Fprintln(r.out, strings.Repeat("=", 60))

	if report.Completed == 0 {
		fmt.Fprintln(r.out, "No terminated processes to report.")
	} else {
		fmt.Fprintln(r.out, "\nPer-process times:")
		fmt.Fprintln(r.out, strings.Repeat("-", 50))
		fmt.Fprintf(r.out, "%-10s %-15s %-15s\n", "Process", "Turnaround", "Waiting")
		fmt.Fprintln(r.out, strings.Repeat("-", 50))
		for _, stats := range report.PerProcess {
			fmt.Fprintf(r.out, "%-10s %-15d %-15d\n", stats.ID, stats.TurnaroundTime, stats.WaitingTime)
		}
		fmt.Fprintln(r.out, strings.Repeat("-", 50))
		fmt.Fprintln(r.out, "\nAVERAGES:")
		fmt.Fprintf(r.out, "  - Average turnaround time: %.2f\n", report.AvgTurnaround)
		fmt.Fprintf(r.out, "  - Average waiting time: %.2f\n", report.AvgWaiting)
		fmt.Fprintln(r.out, "\nSYSTEM PERFORMANCE:")
		fmt.Fprintf(r.out, "  - Jobs finished: %d\n", report.Completed)
		fmt.Fprintf(r.out, "  - Total simulated time: %d\n", report.FinalTime)
		fmt.Fprintf(r.out, "  - Throughput: %.4f processes/tick\n", report.Throughput)
	}

	if report.Stalled {
		fmt.Fprintln(r.out, "\nUNREACHABLE ADMISSION:")
		fmt.Fprintf(r.out, "  - Never admitted (no partition can ever fit them or no slot frees): %s\n",
			strings.Join(report.Unadmittable, ", "))
	}
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
}

// center pads s with spaces to width; wide strings are returned unchanged.
func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
