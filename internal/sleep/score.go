package sleep

import (
	"math"
	"time"
)

// Quality is the human-readable tier derived from the composite score.
type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityPoor      Quality = "poor"
)

// ScoreBreakdown lists the six independently-bounded components of the
// composite score.
type ScoreBreakdown struct {
	Duration      int `json:"duration"`      // 0..25
	Efficiency    int `json:"efficiency"`    // 0..20
	Deep          int `json:"deep"`          // 0..10
	Rem           int `json:"rem"`           // 0..10
	Fragmentation int `json:"fragmentation"` // -10..10
	Regularity    int `json:"regularity"`    // 0..5
}

// StagePercentages echoes the ratios the stage and efficiency components
// were computed from, as percentages rounded to one decimal.
type StagePercentages struct {
	Deep       float64 `json:"deep"`
	Rem        float64 `json:"rem"`
	Light      float64 `json:"light"`
	Efficiency float64 `json:"efficiency"`
}

// FragmentationStats echoes the raw awakening statistics behind the
// fragmentation component.
type FragmentationStats struct {
	AwakeningsCount         int `json:"awakenings_count"`
	LongestAwakeBoutMinutes int `json:"longest_awake_bout_minutes"`
}

// ScoreResult is the composite quality assessment of a primary episode.
type ScoreResult struct {
	Score              int                `json:"score"` // 0..100
	Quality            Quality            `json:"quality"`
	ActualSleepMinutes int                `json:"actual_sleep_minutes"`
	SleepHours         float64            `json:"sleep_hours"`
	Breakdown          ScoreBreakdown     `json:"breakdown"`
	Percentages        StagePercentages   `json:"percentages"`
	Fragmentation      FragmentationStats `json:"fragmentation"`
}

// ScoreSleep computes the 0-100 composite score for a primary episode.
// previousMidpoints is an optional short history of prior nights' sleep
// midpoints used by the regularity component; pass nil when no history is
// available and regularity scores neutral.
//
// ScoreSleep is total: it does not reject flagged or implausible episodes.
// Callers decide whether to trust the number via ValidateEpisode.
func (e *Engine) ScoreSleep(ep Episode, previousMidpoints []time.Time) ScoreResult {
	sleepHours := float64(ep.ActualSleepMinutes) / 60

	deepPct := stagePercent(ep.DeepMinutes, ep.ActualSleepMinutes)
	remPct := stagePercent(ep.RemMinutes, ep.ActualSleepMinutes)
	lightPct := stagePercent(ep.LightMinutes, ep.ActualSleepMinutes)

	breakdown := ScoreBreakdown{
		Duration:      durationScore(sleepHours),
		Efficiency:    efficiencyScore(ep.SleepEfficiency),
		Deep:          deepScore(deepPct),
		Rem:           remScore(remPct),
		Fragmentation: fragmentationScore(ep.AwakeningsCount, ep.LongestAwakeBoutMinutes),
		Regularity:    regularityScore(ep.SleepMidpointLocal, previousMidpoints),
	}

	total := breakdown.Duration + breakdown.Efficiency + breakdown.Deep +
		breakdown.Rem + breakdown.Fragmentation + breakdown.Regularity
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return ScoreResult{
		Score:              total,
		Quality:            qualityTier(total),
		ActualSleepMinutes: ep.ActualSleepMinutes,
		SleepHours:         round1(sleepHours),
		Breakdown:          breakdown,
		Percentages: StagePercentages{
			Deep:       round1(deepPct),
			Rem:        round1(remPct),
			Light:      round1(lightPct),
			Efficiency: round1(ep.SleepEfficiency * 100),
		},
		Fragmentation: FragmentationStats{
			AwakeningsCount:         ep.AwakeningsCount,
			LongestAwakeBoutMinutes: ep.LongestAwakeBoutMinutes,
		},
	}
}

// durationScore brackets actual sleep hours, 7-9h being optimal.
func durationScore(hours float64) int {
	switch {
	case hours >= 7 && hours <= 9:
		return 25
	case (hours >= 6.5 && hours < 7) || (hours > 9 && hours <= 9.5):
		return 18
	case (hours >= 6 && hours < 6.5) || (hours > 9.5 && hours <= 10):
		return 10
	case (hours >= 5 && hours < 6) || (hours > 10 && hours <= 11):
		return 2
	default:
		return 0
	}
}

func efficiencyScore(efficiency float64) int {
	switch {
	case efficiency >= 0.95:
		return 20
	case efficiency >= 0.90:
		return 16
	case efficiency >= 0.85:
		return 10
	case efficiency >= 0.80:
		return 4
	default:
		return 0
	}
}

// deepScore brackets the deep-sleep share of actual sleep; 15-25% is the
// target band, above 30% scores zero.
func deepScore(pct float64) int {
	switch {
	case pct >= 15 && pct <= 25:
		return 10
	case (pct >= 10 && pct < 15) || (pct > 25 && pct <= 30):
		return 6
	case pct < 10:
		return 2
	default:
		return 0
	}
}

// remScore brackets the REM share of actual sleep; 18-28% is the target band.
func remScore(pct float64) int {
	switch {
	case pct >= 18 && pct <= 28:
		return 10
	case (pct >= 15 && pct < 18) || (pct > 28 && pct <= 32):
		return 6
	case pct < 15:
		return 2
	default:
		return 0
	}
}

// fragmentationScore starts from a baseline of 10 and applies two
// independent, stacking penalties for awakening count and longest bout.
func fragmentationScore(awakenings, longestBoutMinutes int) int {
	score := 10
	if awakenings >= 5 {
		score -= 6
	} else if awakenings >= 3 {
		score -= 3
	}
	if longestBoutMinutes >= 30 {
		score -= 6
	} else if longestBoutMinutes >= 15 {
		score -= 3
	}
	if score < -10 {
		score = -10
	}
	return score
}

// regularityScore compares tonight's sleep midpoint to the mean of recent
// midpoints. Midpoints come from different nights, so each is reduced to
// minutes-after-midnight and the deviation is measured on the 24h circle.
// With no history the component scores a neutral 3.
func regularityScore(midpoint time.Time, previous []time.Time) int {
	if len(previous) == 0 {
		return 3
	}

	// Circular mean: wrap each prior onto the half-day around the first so
	// midpoints straddling midnight (23:50 and 00:10) average near midnight
	// instead of noon.
	ref := minutesAfterMidnight(previous[0])
	sum := 0.0
	for _, p := range previous {
		m := minutesAfterMidnight(p)
		if m-ref > 720 {
			m -= 1440
		} else if ref-m > 720 {
			m += 1440
		}
		sum += float64(m)
	}
	mean := math.Mod(sum/float64(len(previous))+1440, 1440)

	diff := math.Abs(float64(minutesAfterMidnight(midpoint)) - mean)
	if diff > 720 {
		diff = 1440 - diff
	}

	switch {
	case diff <= 30:
		return 5
	case diff <= 60:
		return 3
	case diff <= 120:
		return 1
	default:
		return 0
	}
}

func minutesAfterMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func qualityTier(score int) Quality {
	switch {
	case score >= 80:
		return QualityExcellent
	case score >= 60:
		return QualityGood
	case score >= 40:
		return QualityFair
	default:
		return QualityPoor
	}
}

// stagePercent guards the zero-sleep edge: an episode that was all awake
// has no stage distribution to score.
func stagePercent(stageMinutes, actualSleepMinutes int) float64 {
	if actualSleepMinutes <= 0 {
		return 0
	}
	return float64(stageMinutes) / float64(actualSleepMinutes) * 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
