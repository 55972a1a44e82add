package sleep

// NapScoreResult is the simplified assessment of a nap episode. The rubric
// is independent of the primary score: a 0-10 duration bracket plus a
// restorative signal worth a fixed readiness credit. The credit is a hint
// for consumers' readiness computations; the engine never applies it itself.
type NapScoreResult struct {
	Score           int  `json:"score"` // 0..10
	Restorative     bool `json:"restorative"`
	ReadinessCredit int  `json:"readiness_credit"` // 0 or 2
}

const (
	restorativeStageMinutes = 10
	restorativeCredit       = 2
)

// ScoreNap scores a nap episode. 20-30 minutes is the ideal length; a nap
// containing meaningful deep or REM sleep counts as restorative.
func (e *Engine) ScoreNap(ep Episode) NapScoreResult {
	restorative := ep.DeepMinutes >= restorativeStageMinutes || ep.RemMinutes >= restorativeStageMinutes

	credit := 0
	if restorative {
		credit = restorativeCredit
	}

	return NapScoreResult{
		Score:           napDurationScore(ep.InBedMinutes),
		Restorative:     restorative,
		ReadinessCredit: credit,
	}
}

func napDurationScore(inBedMinutes int) int {
	switch {
	case inBedMinutes >= 20 && inBedMinutes <= 30:
		return 10
	case inBedMinutes > 30 && inBedMinutes <= 60:
		return 6
	case inBedMinutes >= 10 && inBedMinutes < 20:
		return 4
	case inBedMinutes > 60:
		return 2
	default:
		return 0
	}
}
