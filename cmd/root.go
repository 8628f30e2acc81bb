package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/partition-sim/partition-sim/sim"
	"github.com/partition-sim/partition-sim/sim/workload"
)

var (
	// CLI flags for the run subcommand
	inputPath    string // CSV process table path
	workloadPath string // YAML workload spec path
	scheduler    string // scheduling policy name ("srtf", "fcfs")
	pause        bool   // wait for Enter between snapshots
	logLevel     string // log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "partition-sim",
	Short: "Tick-driven simulator for fixed-partition memory allocation and SRTF scheduling",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation over a process table",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if (inputPath == "") == (workloadPath == "") {
			logrus.Fatalf("Exactly one of --input (CSV) or --workload (YAML) is required")
		}

		var spec *workload.Spec
		if inputPath != "" {
			spec, err = workload.LoadCSV(inputPath)
		} else {
			spec, err = workload.LoadSpec(workloadPath)
		}
		if err != nil {
			logrus.Fatalf("Could not load workload: %v", err)
		}

		cfg := sim.DefaultConfig()
		if scheduler != "" {
			cfg.Scheduler = scheduler
		} else if spec.Scheduler != "" {
			cfg.Scheduler = spec.Scheduler
		}
		if !sim.IsValidScheduler(cfg.Scheduler) {
			logrus.Fatalf("Unknown scheduler %q", cfg.Scheduler)
		}

		renderer := NewRenderer(os.Stdout, os.Stdin, pause)
		PrintBanner(os.Stdout, cfg)
		PrintLoaded(os.Stdout, spec.Processes)

		s, err := sim.NewSimulator(cfg, workload.Build(spec.Processes), renderer.RenderSnapshot)
		if err != nil {
			logrus.Fatalf("Could not build simulator: %v", err)
		}

		report := s.Run()
		renderer.RenderReport(report)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&inputPath, "input", "", "Path to CSV process table (id,size,arrival,burst)")
	runCmd.Flags().StringVar(&workloadPath, "workload", "", "Path to YAML workload spec")
	runCmd.Flags().StringVar(&scheduler, "scheduler", "", "Scheduling policy (srtf, fcfs); overrides the workload spec")
	runCmd.Flags().BoolVar(&pause, "pause", false, "Wait for Enter between snapshots")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
