package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Anuj10110/ai-timetable-generator/internal/domain"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Log       LogConfig
	Scheduler SchedulerConfig
	Export    ExportConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// SchedulerConfig carries the defaults §6 gives the solving engine:
// the working week, the per-day slot template, capacity tolerance,
// break hours, the free-period pool the re-scheduler draws from, the
// default solve deadline, and the §4.7 strategy-selection thresholds.
type SchedulerConfig struct {
	WorkingDays       []domain.DayOfWeek
	SlotStartMin      int
	SlotDurationMin   int
	SlotsPerDay       int
	CapacityBuffer    float64
	BreakStartHours   []int
	FreePeriodWindows [][2]int
	MaxTimeSeconds    int
	GreedyThreshold   int
	HybridThreshold   int
}

// ExportConfig controls where generated CSV/PDF schedule exports land.
type ExportConfig struct {
	OutputDir string
}

// DefaultSlots builds the standard per-day slot template: SlotsPerDay
// consecutive SlotDurationMin-minute slots starting at SlotStartMin.
func (s SchedulerConfig) DefaultSlots(day domain.DayOfWeek) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, s.SlotsPerDay)
	start := s.SlotStartMin
	for i := 0; i < s.SlotsPerDay; i++ {
		end := start + s.SlotDurationMin
		slots = append(slots, domain.TimeSlot{
			ID:    string(day) + "-" + strconv.Itoa(start),
			Day:   day,
			Start: start,
			End:   end,
		})
		start = end
	}
	return slots
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	breakStartHours, err := parseIntList(v.GetString("SCHEDULER_BREAK_START_HOURS"))
	if err != nil {
		return nil, fmt.Errorf("parsing SCHEDULER_BREAK_START_HOURS: %w", err)
	}
	freePeriodWindows, err := parseWindowList(v.GetString("SCHEDULER_FREE_PERIOD_WINDOWS"))
	if err != nil {
		return nil, fmt.Errorf("parsing SCHEDULER_FREE_PERIOD_WINDOWS: %w", err)
	}

	cfg.Scheduler = SchedulerConfig{
		WorkingDays:       parseDays(v.GetString("SCHEDULER_WORKING_DAYS")),
		SlotStartMin:      v.GetInt("SCHEDULER_SLOT_START_MIN"),
		SlotDurationMin:   v.GetInt("SCHEDULER_SLOT_DURATION_MIN"),
		SlotsPerDay:       v.GetInt("SCHEDULER_SLOTS_PER_DAY"),
		CapacityBuffer:    v.GetFloat64("SCHEDULER_CAPACITY_BUFFER"),
		BreakStartHours:   breakStartHours,
		FreePeriodWindows: freePeriodWindows,
		MaxTimeSeconds:    v.GetInt("SCHEDULER_MAX_TIME_SECONDS"),
		GreedyThreshold:   v.GetInt("SCHEDULER_GREEDY_THRESHOLD"),
		HybridThreshold:   v.GetInt("SCHEDULER_HYBRID_THRESHOLD"),
	}

	cfg.Export = ExportConfig{
		OutputDir: v.GetString("EXPORT_OUTPUT_DIR"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SCHEDULER_WORKING_DAYS", "Monday,Tuesday,Wednesday,Thursday,Friday")
	v.SetDefault("SCHEDULER_SLOT_START_MIN", 540) // 09:00
	v.SetDefault("SCHEDULER_SLOT_DURATION_MIN", 90)
	v.SetDefault("SCHEDULER_SLOTS_PER_DAY", 6)
	v.SetDefault("SCHEDULER_CAPACITY_BUFFER", 0.1)
	v.SetDefault("SCHEDULER_BREAK_START_HOURS", "10,12,15")
	v.SetDefault("SCHEDULER_FREE_PERIOD_WINDOWS", "11-12,13-14,15-16")
	v.SetDefault("SCHEDULER_MAX_TIME_SECONDS", 300)
	v.SetDefault("SCHEDULER_GREEDY_THRESHOLD", 100)
	v.SetDefault("SCHEDULER_HYBRID_THRESHOLD", 1000)

	v.SetDefault("EXPORT_OUTPUT_DIR", "./exports")
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

func parseDays(raw string) []domain.DayOfWeek {
	names := splitAndTrim(raw)
	days := make([]domain.DayOfWeek, 0, len(names))
	for _, name := range names {
		days = append(days, domain.DayOfWeek(name))
	}
	return days
}

func parseIntList(raw string) ([]int, error) {
	parts := splitAndTrim(raw)
	result := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", part, err)
		}
		result = append(result, n)
	}
	return result, nil
}

// parseWindowList parses "11-12,13-14" into hour-pair windows.
func parseWindowList(raw string) ([][2]int, error) {
	parts := splitAndTrim(raw)
	result := make([][2]int, 0, len(parts))
	for _, part := range parts {
		bounds := strings.SplitN(part, "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid window %q: expected \"start-end\"", part)
		}
		start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid window %q: %w", part, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid window %q: %w", part, err)
		}
		result = append(result, [2]int{start, end})
	}
	return result, nil
}
