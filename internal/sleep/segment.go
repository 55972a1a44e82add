package sleep

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Stage is the canonical sleep stage vocabulary. Every raw label maps to
// exactly one of these four values.
type Stage string

const (
	StageAwake Stage = "awake"
	StageLight Stage = "light"
	StageDeep  Stage = "deep"
	StageRem   Stage = "rem"
)

// RawSegment is a single stage sample as exported by a wearable or health
// platform. Value is free text with no fixed vocabulary; Source identifies
// the reporting device and is carried through untouched.
type RawSegment struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Value     string    `json:"value"`
	Source    string    `json:"source,omitempty"`
}

// Segment is a normalized stage sample. DurationMinutes is the span rounded
// to the nearest minute.
type Segment struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	Stage           Stage     `json:"stage"`
}

// stageRule maps a label predicate to a canonical stage. Rules are evaluated
// in order; the first match wins.
type stageRule struct {
	match func(string) bool
	stage Stage
}

func containsRule(substr string, stage Stage) stageRule {
	return stageRule{
		match: func(label string) bool { return strings.Contains(label, substr) },
		stage: stage,
	}
}

// stageRules is the fixed priority order for label normalization. "awake"
// is checked first so labels like "awake in rem window" stay awake; anything
// unmatched (including "core", "light" and unknown tokens) falls through to
// light, the documented safe default.
var stageRules = []stageRule{
	containsRule("awake", StageAwake),
	containsRule("rem", StageRem),
	containsRule("deep", StageDeep),
}

// NormalizeStage maps a free-text platform label to a canonical stage.
// Total: every input yields a stage, unknown labels default to light.
func NormalizeStage(value string) Stage {
	label := strings.ToLower(value)
	for _, rule := range stageRules {
		if rule.match(label) {
			return rule.stage
		}
	}
	return StageLight
}

// ParseRawSegments normalizes raw platform samples into canonical segments
// sorted ascending by start time. Zero- or negative-duration entries are
// passed through unfiltered; downstream validation flags the fallout.
func ParseRawSegments(raw []RawSegment) []Segment {
	segments := make([]Segment, 0, len(raw))
	for _, r := range raw {
		segments = append(segments, Segment{
			Start:           r.StartDate,
			End:             r.EndDate,
			DurationMinutes: roundMinutes(r.StartDate, r.EndDate),
			Stage:           NormalizeStage(r.Value),
		})
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Start.Before(segments[j].Start)
	})
	return segments
}

// roundMinutes returns the span between two instants rounded to the nearest
// whole minute.
func roundMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}
