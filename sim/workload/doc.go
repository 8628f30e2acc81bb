// Package workload loads and validates the process set a simulation runs on.
// Two input formats are supported: the CSV process table (id,size,arrival,burst)
// and a YAML workload spec that carries the same records plus an optional
// scheduler policy name. All validation happens here, before the engine
// starts; a workload that loads cleanly cannot fail inside the engine.
package workload
