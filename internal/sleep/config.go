package sleep

import "time"

// Config holds the thresholds the clustering, selection and scoring rules
// evaluate against. Values are read-only after construction; callers that
// want non-default behavior build their own Config rather than mutating one.
type Config struct {
	// LongAwakeSplitMinutes is the gap size that separates two episodes.
	LongAwakeSplitMinutes float64

	// AwakeningMinMinutes is the minimum true duration for an awake segment
	// to count as a discrete awakening. Shorter blips still reduce
	// efficiency but are not counted.
	AwakeningMinMinutes float64

	// NapMinSpanMinutes / NapMaxSpanMinutes bound the provisional nap
	// classification applied at cluster time.
	NapMinSpanMinutes int
	NapMaxSpanMinutes int

	// PrimaryMinMinutes / PrimaryMaxMinutes bound primary-episode candidates.
	PrimaryMinMinutes int
	PrimaryMaxMinutes int

	// OutlierSpanMinutes flags episodes with an implausibly long span.
	OutlierSpanMinutes int

	// StageSumToleranceMinutes is the allowed divergence between the summed
	// per-stage minutes and the episode span before the episode is flagged
	// as inconsistent.
	StageSumToleranceMinutes int

	// NightCutoffHour attributes episodes starting before this local hour
	// to the previous calendar day.
	NightCutoffHour int

	// PrimaryWindowStartHour is the local hour at which the primary sleep
	// window opens; episodes crossing midnight qualify if they end at or
	// before PrimaryWindowEndHour.
	PrimaryWindowStartHour int
	PrimaryWindowEndHour   int

	// FallbackWindowStartHour opens the afternoon fallback tier for
	// irregular schedules (episodes starting between this hour and
	// PrimaryWindowStartHour).
	FallbackWindowStartHour int
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		LongAwakeSplitMinutes:    90,
		AwakeningMinMinutes:      2,
		NapMinSpanMinutes:        10,
		NapMaxSpanMinutes:        180,
		PrimaryMinMinutes:        180,
		PrimaryMaxMinutes:        960,
		OutlierSpanMinutes:       960,
		StageSumToleranceMinutes: 3,
		NightCutoffHour:          15,
		PrimaryWindowStartHour:   15,
		PrimaryWindowEndHour:     12,
		FallbackWindowStartHour:  12,
	}
}

// Engine evaluates the segmentation and scoring rules against a Config and
// a local timezone. All methods are pure: they never perform I/O, never
// return errors, and never panic on malformed input (bad data surfaces as
// flags on the resulting episodes instead).
type Engine struct {
	cfg Config
	loc *time.Location
}

// NewEngine builds an Engine. A nil location falls back to UTC.
func NewEngine(cfg Config, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{cfg: cfg, loc: loc}
}
