package sleep

import (
	"testing"
	"time"
)

func TestDurationScore(t *testing.T) {
	tests := []struct {
		hours float64
		want  int
	}{
		{8.0, 25},
		{7.0, 25},
		{9.0, 25},
		{6.7, 18},
		{6.5, 18},
		{9.3, 18},
		{9.5, 18},
		{6.0, 10},
		{6.4, 10},
		{9.8, 10},
		{10.0, 10},
		{5.0, 2},
		{5.9, 2},
		{10.5, 2},
		{11.0, 2},
		{4.5, 0},
		{0, 0},
		{12.0, 0},
	}

	for _, tt := range tests {
		if got := durationScore(tt.hours); got != tt.want {
			t.Errorf("durationScore(%.1f) = %d, want %d", tt.hours, got, tt.want)
		}
	}
}

func TestEfficiencyScore(t *testing.T) {
	tests := []struct {
		efficiency float64
		want       int
	}{
		{460.0 / 480.0, 20}, // 95.83%
		{0.95, 20},
		{0.94, 16},
		{0.90, 16},
		{0.89, 10},
		{0.85, 10},
		{0.84, 4},
		{0.80, 4},
		{0.79, 0},
		{360.0 / 480.0, 0}, // 75%
		{0, 0},
	}

	for _, tt := range tests {
		if got := efficiencyScore(tt.efficiency); got != tt.want {
			t.Errorf("efficiencyScore(%.4f) = %d, want %d", tt.efficiency, got, tt.want)
		}
	}
}

func TestDeepScore(t *testing.T) {
	tests := []struct {
		pct  float64
		want int
	}{
		{96.0 / 480.0 * 100, 10}, // 20%
		{15, 10},
		{25, 10},
		{10, 6},
		{14.9, 6},
		{25.1, 6},
		{30, 6},
		{40.0 / 480.0 * 100, 2}, // 8.3%
		{0, 2},
		{30.1, 0},
		{50, 0},
	}

	for _, tt := range tests {
		if got := deepScore(tt.pct); got != tt.want {
			t.Errorf("deepScore(%.1f) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}

func TestRemScore(t *testing.T) {
	tests := []struct {
		pct  float64
		want int
	}{
		{18, 10},
		{23, 10},
		{28, 10},
		{15, 6},
		{17.9, 6},
		{28.1, 6},
		{32, 6},
		{14.9, 2},
		{0, 2},
		{32.1, 0},
	}

	for _, tt := range tests {
		if got := remScore(tt.pct); got != tt.want {
			t.Errorf("remScore(%.1f) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}

func TestFragmentationScore(t *testing.T) {
	tests := []struct {
		name        string
		awakenings  int
		longestBout int
		want        int
	}{
		{"undisturbed", 0, 0, 10},
		{"two awakenings free", 2, 5, 10},
		{"three awakenings", 3, 5, 7},
		{"five awakenings", 5, 5, 4},
		{"long bout only", 1, 30, 4},
		{"moderate bout only", 1, 15, 7},
		{"both penalties stack", 6, 40, -2},
		{"moderate both", 3, 20, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fragmentationScore(tt.awakenings, tt.longestBout); got != tt.want {
				t.Errorf("fragmentationScore(%d, %d) = %d, want %d",
					tt.awakenings, tt.longestBout, got, tt.want)
			}
		})
	}
}

func TestRegularityScore(t *testing.T) {
	midnight := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return time.Date(2024, 1, 16, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		midpoint time.Time
		previous []time.Time
		want     int
	}{
		{"no history defaults to 3", at(3, 0), nil, 3},
		{"empty history defaults to 3", at(3, 0), []time.Time{}, 3},
		{"on the mean", at(3, 0), []time.Time{at(3, 15), at(2, 45)}, 5},
		{"30 minutes off", at(3, 0), []time.Time{at(3, 30)}, 5},
		{"60 minutes off", at(3, 0), []time.Time{at(4, 0)}, 3},
		{"120 minutes off", at(3, 0), []time.Time{at(5, 0)}, 1},
		{"far off", at(3, 0), []time.Time{at(8, 0)}, 0},
		{"wraps around midnight", at(23, 30), []time.Time{midnight.Add(30 * time.Minute)}, 3},
		{"priors straddling midnight average to midnight", midnight, []time.Time{at(23, 50), at(0, 10)}, 5},
		{"straddling priors against a noon midpoint", at(12, 0), []time.Time{at(23, 50), at(0, 10)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := regularityScore(tt.midpoint, tt.previous); got != tt.want {
				t.Errorf("regularityScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQualityTier(t *testing.T) {
	tests := []struct {
		score int
		want  Quality
	}{
		{100, QualityExcellent},
		{80, QualityExcellent},
		{79, QualityGood},
		{60, QualityGood},
		{59, QualityFair},
		{40, QualityFair},
		{39, QualityPoor},
		{0, QualityPoor},
	}

	for _, tt := range tests {
		if got := qualityTier(tt.score); got != tt.want {
			t.Errorf("qualityTier(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

// Documented end-to-end example: a solid but fragmented 500 minute night
// lands in the good band.
func TestScoreSleep_FullEpisode(t *testing.T) {
	ep := Episode{
		Type:                    EpisodePrimary,
		InBedMinutes:            500,
		ActualSleepMinutes:      460,
		AwakeMinutes:            40,
		DeepMinutes:             85,
		RemMinutes:              145,
		LightMinutes:            230,
		SleepEfficiency:         460.0 / 500.0,
		AwakeningsCount:         3,
		LongestAwakeBoutMinutes: 12,
		SleepMidpointLocal:      time.Date(2024, 1, 16, 3, 10, 0, 0, time.UTC),
	}

	result := testEngine().ScoreSleep(ep, nil)

	if result.Score < 65 || result.Score > 85 {
		t.Errorf("Score = %d, want within [65,85]", result.Score)
	}
	if result.Quality != QualityGood {
		t.Errorf("Quality = %q, want good", result.Quality)
	}
	if result.Breakdown.Duration != 25 {
		t.Errorf("Duration component = %d, want 25 (7.67h)", result.Breakdown.Duration)
	}
	if result.Breakdown.Efficiency != 16 {
		t.Errorf("Efficiency component = %d, want 16 (92%%)", result.Breakdown.Efficiency)
	}
	if result.Breakdown.Regularity != 3 {
		t.Errorf("Regularity component = %d, want neutral 3", result.Breakdown.Regularity)
	}
	if result.Breakdown.Fragmentation != 7 {
		t.Errorf("Fragmentation component = %d, want 7", result.Breakdown.Fragmentation)
	}
	if result.ActualSleepMinutes != 460 {
		t.Errorf("ActualSleepMinutes = %d, want 460", result.ActualSleepMinutes)
	}
	if result.Fragmentation.AwakeningsCount != 3 || result.Fragmentation.LongestAwakeBoutMinutes != 12 {
		t.Errorf("fragmentation echo = %+v", result.Fragmentation)
	}
}

// Scoring is total: flagged or degenerate episodes still produce a bounded
// number.
func TestScoreSleep_Total(t *testing.T) {
	tests := []struct {
		name string
		ep   Episode
	}{
		{"zero episode", Episode{}},
		{"all awake", Episode{InBedMinutes: 480, AwakeMinutes: 480, ActualSleepMinutes: 0}},
		{"negative actual sleep", Episode{InBedMinutes: 100, AwakeMinutes: 150, ActualSleepMinutes: -50}},
		{"flagged", Episode{InBedMinutes: 1200, ActualSleepMinutes: 1200, Flags: []Flag{FlagOutlierDuration}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := testEngine().ScoreSleep(tt.ep, nil)
			if result.Score < 0 || result.Score > 100 {
				t.Errorf("Score = %d, out of [0,100]", result.Score)
			}
			switch result.Quality {
			case QualityExcellent, QualityGood, QualityFair, QualityPoor:
			default:
				t.Errorf("Quality = %q, not a known tier", result.Quality)
			}
		})
	}
}

func TestScoreNap(t *testing.T) {
	tests := []struct {
		name            string
		inBed           int
		deep            int
		rem             int
		wantScore       int
		wantRestorative bool
		wantCredit      int
	}{
		{"ideal 25 minute nap", 25, 0, 0, 10, false, 0},
		{"20 minute floor of ideal band", 20, 0, 0, 10, false, 0},
		{"30 minute ceiling of ideal band", 30, 0, 0, 10, false, 0},
		{"45 minute nap", 45, 0, 0, 6, false, 0},
		{"60 minutes", 60, 0, 0, 6, false, 0},
		{"15 minute catnap", 15, 0, 0, 4, false, 0},
		{"90 minute oversleep", 90, 0, 0, 2, false, 0},
		{"too short to matter", 5, 0, 0, 0, false, 0},
		{"restorative deep nap", 25, 12, 0, 10, true, 2},
		{"restorative rem nap", 40, 0, 10, 6, true, 2},
		{"9 deep minutes not restorative", 25, 9, 9, 10, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep := Episode{
				Type:         EpisodeNap,
				InBedMinutes: tt.inBed,
				DeepMinutes:  tt.deep,
				RemMinutes:   tt.rem,
			}
			result := testEngine().ScoreNap(ep)
			if result.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", result.Score, tt.wantScore)
			}
			if result.Restorative != tt.wantRestorative {
				t.Errorf("Restorative = %v, want %v", result.Restorative, tt.wantRestorative)
			}
			if result.ReadinessCredit != tt.wantCredit {
				t.Errorf("ReadinessCredit = %d, want %d", result.ReadinessCredit, tt.wantCredit)
			}
		})
	}
}
