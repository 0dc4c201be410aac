package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Anuj10110/ai-timetable-generator/pkg/config"
	"github.com/Anuj10110/ai-timetable-generator/pkg/logger"
)

var (
	inputPath    string
	outputPath   string
	strategyFlag string
	maxTime      int
	optimize     bool
	exportPath   string
	exportFormat string
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	root := &cobra.Command{
		Use:   "timetable",
		Short: "University timetable generator",
		Long:  "Generates, re-schedules, and exports university timetables from a JSON problem description.",
	}

	cmdSolve := &cobra.Command{
		Use:   "solve",
		Short: "solve a timetable problem and print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cfg, logr)
		},
	}
	cmdSolve.Flags().StringVarP(&inputPath, "input", "i", "", "path to the problem JSON file (required)")
	cmdSolve.Flags().StringVarP(&outputPath, "output", "o", "", "path to write the SolveResult JSON (default: stdout)")
	cmdSolve.Flags().StringVarP(&strategyFlag, "strategy", "s", "", "Greedy, CspBacktracking, or Hybrid (default: chosen by instance size)")
	cmdSolve.Flags().IntVarP(&maxTime, "max-time", "t", 0, "solve deadline in seconds (default: scheduler.max_time_seconds)")
	cmdSolve.Flags().BoolVar(&optimize, "optimize", false, "run the graph-coloring optimizer over the result")
	cmdSolve.Flags().StringVarP(&exportPath, "export", "e", "", "also export the schedule to this path")
	cmdSolve.Flags().StringVar(&exportFormat, "export-format", "csv", "csv or pdf")
	_ = cmdSolve.MarkFlagRequired("input")
	root.AddCommand(cmdSolve)

	root.AddCommand(newRescheduleCommand(cfg, logr))

	if err := root.Execute(); err != nil {
		logr.Sugar().Fatalw("command failed", "error", err)
	}
}
