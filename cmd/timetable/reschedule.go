package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
	"github.com/Anuj10110/ai-timetable-generator/internal/loader"
	"github.com/Anuj10110/ai-timetable-generator/internal/solver"
	"github.com/Anuj10110/ai-timetable-generator/pkg/config"
)

var (
	scheduleInputPath string
	rescheduleOutput  string
)

// rescheduleOutputEnvelope wraps the repaired schedule together with
// the re-scheduler's action tally, mirroring solveOutput's shape.
type rescheduleOutputEnvelope struct {
	Schedule *domain.Schedule       `json:"schedule"`
	Stats    solver.RescheduleStats `json:"stats"`
}

func newRescheduleCommand(cfg *config.Config, logr *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reschedule",
		Short: "repair an existing schedule against newly reported faculty unavailability",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReschedule(cfg, logr)
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the problem JSON file, carrying the updated unavailabilities (required)")
	cmd.Flags().StringVar(&scheduleInputPath, "schedule", "", "path to a previously solved schedule JSON (required)")
	cmd.Flags().StringVarP(&rescheduleOutput, "output", "o", "", "path to write the repaired schedule JSON (default: stdout)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("schedule")
	return cmd
}

func runReschedule(cfg *config.Config, logr *zap.Logger) error {
	problemFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer problemFile.Close()

	problem, err := loader.Load(problemFile)
	if err != nil {
		return fmt.Errorf("loading problem: %w", err)
	}

	raw, err := os.ReadFile(scheduleInputPath)
	if err != nil {
		return fmt.Errorf("reading schedule file: %w", err)
	}
	schedule := domain.NewSchedule()
	if err := json.Unmarshal(raw, schedule); err != nil {
		return fmt.Errorf("decoding schedule: %w", err)
	}

	freePeriods := solver.FreePeriodPool(cfg.Scheduler.WorkingDays)
	matrix := solver.BuildSubstitutionMatrix(problem.Faculty)

	repaired, stats := solver.Reschedule(problem, schedule, problem.Unavailabilities, freePeriods, matrix)

	logr.Info("reschedule completed",
		zap.Int("rescheduled", stats.Rescheduled),
		zap.Int("substituted", stats.Substituted),
		zap.Int("free_periods_used", stats.FreePeriods))

	payload, err := json.MarshalIndent(rescheduleOutputEnvelope{Schedule: repaired, Stats: stats}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if rescheduleOutput == "" {
		fmt.Println(string(payload))
		return nil
	}
	return os.WriteFile(rescheduleOutput, payload, 0o644)
}
