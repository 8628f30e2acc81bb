// Package sim provides the deterministic tick-driven simulation engine for
// fixed-partition memory allocation (best-fit) coupled with preemptive
// shortest-remaining-time-first CPU scheduling.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (not-arrived → new → ready → running → terminated) and state machine
//   - memory.go: best-fit partition admission and release
//   - simulator.go: the tick loop, the multiprogramming gate, and snapshot emission
//
// # Architecture
//
// The Simulator owns the authoritative process and partition collections and
// the simulated clock. MemoryManager and Scheduler operate on references the
// Simulator passes them; neither holds private copies of state.
//
// Observable output is structured data only:
//   - Snapshot (snapshot.go): emitted via a caller-supplied callback exactly
//     at arrival and completion ticks, never on quiet ticks
//   - Report (metrics.go): per-process turnaround/waiting plus averages and
//     throughput, produced once the run ends
//
// The engine is single-threaded and fully deterministic: identical inputs
// produce identical snapshot sequences and reports.
package sim
