package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
	"github.com/Anuj10110/ai-timetable-generator/internal/loader"
	"github.com/Anuj10110/ai-timetable-generator/internal/orchestrator"
	"github.com/Anuj10110/ai-timetable-generator/internal/solver"
	"github.com/Anuj10110/ai-timetable-generator/pkg/config"
	"github.com/Anuj10110/ai-timetable-generator/pkg/export"
)

// solveOutput is the JSON envelope written for a solve: a run id for
// correlating it with logs, plus the orchestrator's SolveResult.
type solveOutput struct {
	RunID  string                  `json:"run_id"`
	Result *orchestrator.SolveResult `json:"result"`
}

func runSolve(cfg *config.Config, logr *zap.Logger) error {
	runID := uuid.NewString()

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer file.Close()

	problem, err := loader.Load(file)
	if err != nil {
		return fmt.Errorf("loading problem: %w", err)
	}

	req := solver.SolveRequest{
		Strategy:       solver.Strategy(strategyFlag),
		MaxTimeSeconds: maxTime,
		Optimize:       optimize,
		UseHeuristics:  true,
	}
	if req.MaxTimeSeconds == 0 {
		req.MaxTimeSeconds = cfg.Scheduler.MaxTimeSeconds
	}

	logr.Info("starting solve", zap.String("run_id", runID), zap.String("requested_strategy", string(req.Strategy)))

	result, err := orchestrator.New(logr).Solve(problem, req)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	out := solveOutput{RunID: runID, Result: result}
	payload, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if outputPath == "" {
		fmt.Println(string(payload))
	} else if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	if exportPath != "" && result.Schedule != nil {
		if err := exportSchedule(result.Schedule); err != nil {
			return fmt.Errorf("exporting schedule: %w", err)
		}
	}

	return nil
}

func exportSchedule(schedule *domain.Schedule) error {
	dataset := export.ScheduleDataset(schedule)

	switch exportFormat {
	case "pdf":
		payload, err := export.NewPDFExporter().Render(dataset, "Timetable")
		if err != nil {
			return err
		}
		return os.WriteFile(exportPath, payload, 0o644)
	default:
		payload, err := export.NewCSVExporter().Render(dataset)
		if err != nil {
			return err
		}
		return os.WriteFile(exportPath, payload, 0o644)
	}
}
