// Package orchestrator selects a solving strategy based on problem
// size, drives the chosen solver(s) to completion, and assembles the
// external-facing SolveResult: schedule, generation statistics, and
// schedule analysis.
package orchestrator

import (
	"time"

	"go.uber.org/zap"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
	"github.com/Anuj10110/ai-timetable-generator/internal/solver"
	apperrors "github.com/Anuj10110/ai-timetable-generator/pkg/errors"
)

// Orchestrator drives a solve end to end.
type Orchestrator struct {
	logger *zap.Logger
}

// New returns an Orchestrator; a nil logger falls back to a no-op one.
func New(logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{logger: logger}
}

// Statistics is the generation-statistics block of SolveResult.
type Statistics struct {
	Strategy          solver.Strategy
	GenerationTimeS   float64
	NodesExplored     *int
	MaxDepth          *int
	ExpectedEntries   int
	TotalEntries      int
	TotalConflicts    int
	OptimizationScore float64
	IsValid           bool
}

// Partial reports §7's PartialSchedule outcome: a schedule that came
// back valid (no recorded conflicts) but placed fewer sessions than
// the problem required, which IsValid alone cannot distinguish from a
// complete solve.
func (s Statistics) Partial() bool {
	return s.IsValid && s.TotalEntries < s.ExpectedEntries
}

// SolveResult is the facade §6 specifies: a possibly-nil schedule,
// its generation statistics, and a schedule analysis.
type SolveResult struct {
	Schedule   *domain.Schedule
	Statistics Statistics
	Analysis   Analysis
}

// ChooseStrategy implements §4.7's instance-size thresholds.
func ChooseStrategy(p solver.Problem) solver.Strategy {
	size := len(p.Courses) * len(p.Faculty) * len(p.Classrooms)
	switch {
	case size <= 100:
		return solver.StrategyGreedy
	case size <= 1000:
		return solver.StrategyHybrid
	default:
		return solver.StrategyCSP
	}
}

// Solve runs req.Strategy (or the size-based default when unset)
// against p and returns the full SolveResult. It never returns an
// error across its boundary for NoSolution/Timeout/PartialSchedule —
// those surface through the SolveResult instead (a nil Schedule with
// Statistics.IsValid false for NoSolution/Timeout, Statistics.Partial()
// for PartialSchedule), per §7's propagation policy. It does return an error for InvalidInput,
// reported before any solve begins.
func (o *Orchestrator) Solve(p solver.Problem, req solver.SolveRequest) (*SolveResult, error) {
	if err := p.Validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInvalidInput.Code, apperrors.ErrInvalidInput.Status, "invalid problem input")
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = ChooseStrategy(p)
	}

	maxTime := time.Duration(req.MaxTimeSeconds) * time.Second
	if maxTime <= 0 {
		maxTime = 300 * time.Second
	}

	start := time.Now()
	var schedule *domain.Schedule
	var csp *solver.CSP

	switch strategy {
	case solver.StrategyGreedy:
		schedule = solver.Greedy(p, req)
	case solver.StrategyCSP:
		csp = solver.NewCSP(p, req, solver.CSPOptions{UseHeuristics: true, MaxTime: maxTime})
		schedule = csp.Solve()
	case solver.StrategyHybrid:
		hybridDeadline := maxTime / 2
		if hybridDeadline > 180*time.Second {
			hybridDeadline = 180 * time.Second
		}
		csp = solver.NewCSP(p, req, solver.CSPOptions{UseHeuristics: true, MaxTime: hybridDeadline})
		schedule = csp.Solve()
		if schedule == nil || !schedule.IsValid() {
			o.logger.Info("CSP produced no valid schedule within the hybrid deadline, falling back to greedy")
			schedule = solver.Greedy(p, req)
		}
	default:
		schedule = solver.Greedy(p, req)
	}

	if schedule != nil && req.Optimize {
		schedule = solver.Optimize(p, schedule)
	}

	elapsed := time.Since(start).Seconds()

	stats := Statistics{
		Strategy:        strategy,
		GenerationTimeS: elapsed,
		ExpectedEntries: len(solver.ExpandSessions(p.Courses, req.SelectedCourseIDs)),
	}
	if csp != nil {
		cspStats := csp.Stats()
		nodes := cspStats.NodesExplored
		depth := cspStats.MaxDepth
		stats.NodesExplored = &nodes
		stats.MaxDepth = &depth
	}

	if schedule != nil {
		stats.TotalEntries = len(schedule.Entries)
		stats.TotalConflicts = len(schedule.Conflicts)
		stats.OptimizationScore = schedule.OptimizationScore
		stats.IsValid = schedule.IsValid()
	}

	result := &SolveResult{Schedule: schedule, Statistics: stats}
	if schedule != nil {
		result.Analysis = Analyze(p, schedule)
	}

	switch {
	case schedule == nil:
		errorCode := apperrors.ErrNoSolution.Code
		if elapsed >= maxTime.Seconds() {
			errorCode = apperrors.ErrTimeout.Code
		}
		o.logger.Warn("solve produced no schedule",
			zap.String("strategy", string(strategy)),
			zap.String("error_code", errorCode))
	case !stats.IsValid:
		o.logger.Warn("solve produced a schedule with unresolved conflicts",
			zap.String("strategy", string(strategy)),
			zap.Int("conflicts", stats.TotalConflicts),
			zap.String("error_code", apperrors.ErrInvariantViolation.Code))
	case stats.Partial():
		o.logger.Warn("solve placed fewer sessions than the problem required",
			zap.String("strategy", string(strategy)),
			zap.Int("placed", stats.TotalEntries),
			zap.Int("expected", stats.ExpectedEntries),
			zap.String("error_code", apperrors.ErrPartialSchedule.Code))
	default:
		o.logger.Info("solve completed",
			zap.String("strategy", string(strategy)),
			zap.Int("entries", stats.TotalEntries),
			zap.Bool("valid", stats.IsValid),
			zap.Float64("score", stats.OptimizationScore))
	}

	if schedule != nil && elapsed >= maxTime.Seconds() && !stats.IsValid {
		o.logger.Warn("solve may have been cut short by its deadline",
			zap.Float64("elapsed_s", elapsed),
			zap.String("error_code", apperrors.ErrTimeout.Code))
	}

	return result, nil
}
