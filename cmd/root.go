package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/admission-sim/admission-sim/sim"
	"github.com/admission-sim/admission-sim/sim/bench"
	"github.com/admission-sim/admission-sim/sim/report"
)

var (
	seed       int64     // Seed for random traffic generation
	duration   uint32    // Generation horizon in timeslots (must stay below 65536)
	warmup     uint32    // Untimed warm-up prefix in timeslots
	mean       float64   // Mean request size and inter-arrival gap
	fractions  []float64 // Target network utilizations to sweep
	nodeCounts []int     // Node counts to sweep
	logLevel   string    // Log verbosity level
	output     string    // CSV output path ("" = stdout)
	sweepFile  string    // Optional YAML sweep configuration
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "admission-sim",
	Short: "Synthetic-workload benchmark for network admission-control schedulers",
}

// runCmd executes the benchmark sweep using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark sweep",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		controller := &bench.Controller{
			Oracle:     sim.GreedyOracle{},
			Key:        sim.NewSimulationKey(seed),
			Fractions:  fractions,
			NodeCounts: nodeCounts,
			Duration:   duration,
			WarmUp:     warmup,
			Mean:       mean,
		}

		// A sweep file overrides the matrix flags wholesale.
		if sweepFile != "" {
			sweep, err := LoadSweepConfig(sweepFile)
			if err != nil {
				logrus.Fatalf("unable to read sweep config: %v", err)
			}
			sweep.Apply(controller)
			logrus.Infof("Loaded sweep config from %s", sweepFile)
		}

		logrus.Infof("Starting sweep: %d fractions x %d node counts, duration=%d warmup=%d mean=%g seed=%d",
			len(controller.Fractions), len(controller.NodeCounts),
			controller.Duration, controller.WarmUp, controller.Mean, int64(controller.Key))

		records, err := controller.Run()
		if err != nil {
			logrus.Fatalf("sweep failed: %v", err)
		}

		var w io.Writer = os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				logrus.Fatalf("unable to create output file: %v", err)
			}
			defer f.Close()
			w = f
		}
		if err := report.WriteCSV(w, records); err != nil {
			logrus.Fatalf("unable to write results: %v", err)
		}
		report.Summarize(records).Print(os.Stderr)

		logrus.Info("Sweep complete.")
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
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random traffic generation")
	runCmd.Flags().Uint32Var(&duration, "duration", 60000, "Generation horizon in timeslots (< 65536)")
	runCmd.Flags().Uint32Var(&warmup, "warmup", 10000, "Untimed warm-up prefix in timeslots")
	runCmd.Flags().Float64Var(&mean, "mean", 10, "Mean request size and inter-arrival gap in timeslots")
	runCmd.Flags().Float64SliceVar(&fractions, "fractions",
		[]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.95, 0.99},
		"Comma-separated target network utilizations")
	runCmd.Flags().IntSliceVar(&nodeCounts, "nodes",
		[]int{1024, 512, 256, 128, 64, 32, 16},
		"Comma-separated node counts")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&output, "output", "", "CSV output path (default stdout)")
	runCmd.Flags().StringVar(&sweepFile, "sweep-config", "", "YAML sweep configuration file (overrides matrix flags)")

	rootCmd.AddCommand(runCmd)
}
