package sleep

import (
	"testing"
	"time"
)

func TestNormalizeStage(t *testing.T) {
	tests := []struct {
		label string
		want  Stage
	}{
		{"awake", StageAwake},
		{"Awake", StageAwake},
		{"HKCategoryValueSleepAnalysisAwake", StageAwake},
		{"rem", StageRem},
		{"REM", StageRem},
		{"asleepREM", StageRem},
		{"deep", StageDeep},
		{"HKCategoryValueSleepAnalysisAsleepDeep", StageDeep},
		{"light", StageLight},
		{"core", StageLight},
		{"asleepCore", StageLight},
		// Unknown tokens default to light, never error
		{"", StageLight},
		{"unspecified", StageLight},
		{"???", StageLight},
		{"12345", StageLight},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := NormalizeStage(tt.label); got != tt.want {
				t.Errorf("NormalizeStage(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

// Awake takes priority over rem/deep when a label matches several rules.
func TestNormalizeStage_PriorityOrder(t *testing.T) {
	if got := NormalizeStage("awake during rem"); got != StageAwake {
		t.Errorf("NormalizeStage = %q, want awake (priority over rem)", got)
	}
	if got := NormalizeStage("remDeep"); got != StageRem {
		t.Errorf("NormalizeStage = %q, want rem (priority over deep)", got)
	}
}

func TestParseRawSegments_DurationRounding(t *testing.T) {
	base := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		span time.Duration
		want int
	}{
		{"exact minutes", 30 * time.Minute, 30},
		{"rounds down", 10*time.Minute + 20*time.Second, 10},
		{"rounds up", 10*time.Minute + 40*time.Second, 11},
		{"sub-minute rounds up", 114 * time.Second, 2}, // 1.9 min
		{"zero duration", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := ParseRawSegments([]RawSegment{
				{StartDate: base, EndDate: base.Add(tt.span), Value: "light"},
			})
			if len(segs) != 1 {
				t.Fatalf("got %d segments, want 1", len(segs))
			}
			if segs[0].DurationMinutes != tt.want {
				t.Errorf("DurationMinutes = %d, want %d", segs[0].DurationMinutes, tt.want)
			}
		})
	}
}

func TestParseRawSegments_SortsByStart(t *testing.T) {
	base := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)
	raw := []RawSegment{
		{StartDate: base.Add(60 * time.Minute), EndDate: base.Add(90 * time.Minute), Value: "deep"},
		{StartDate: base, EndDate: base.Add(30 * time.Minute), Value: "light"},
		{StartDate: base.Add(30 * time.Minute), EndDate: base.Add(60 * time.Minute), Value: "rem"},
	}

	segs := ParseRawSegments(raw)
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].Start.Before(segs[i-1].Start) {
			t.Errorf("segments not sorted: [%d].Start=%v before [%d].Start=%v",
				i, segs[i].Start, i-1, segs[i-1].Start)
		}
	}
	if segs[0].Stage != StageLight || segs[1].Stage != StageRem || segs[2].Stage != StageDeep {
		t.Errorf("unexpected stage order after sort: %v %v %v", segs[0].Stage, segs[1].Stage, segs[2].Stage)
	}
}

// Garbage in (negative spans, empty labels) must still produce segments;
// cleanup is the validator's job, not the parser's.
func TestParseRawSegments_ToleratesMalformedInput(t *testing.T) {
	base := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)
	raw := []RawSegment{
		{StartDate: base, EndDate: base.Add(-10 * time.Minute), Value: ""},
		{StartDate: base, EndDate: base, Value: "whatever"},
	}

	segs := ParseRawSegments(raw)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2 (no filtering at parse stage)", len(segs))
	}
	if segs[0].DurationMinutes != -10 && segs[1].DurationMinutes != -10 {
		t.Errorf("negative duration not preserved: %+v", segs)
	}
	for _, s := range segs {
		switch s.Stage {
		case StageAwake, StageLight, StageDeep, StageRem:
		default:
			t.Errorf("non-canonical stage %q", s.Stage)
		}
	}
}

func TestParseRawSegments_Empty(t *testing.T) {
	if segs := ParseRawSegments(nil); len(segs) != 0 {
		t.Errorf("got %d segments for nil input, want 0", len(segs))
	}
}
