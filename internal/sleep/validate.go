package sleep

// ValidationResult is the explicit trust decision for an episode. The
// scoring path never rejects input; callers apply this check before
// persisting or surfacing a score.
type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ValidateEpisode decides whether an episode's aggregates can be trusted.
func (e *Engine) ValidateEpisode(ep Episode) ValidationResult {
	if ep.HasFlag(FlagDataInconsistent) {
		return ValidationResult{Reason: "stage minutes diverge from episode span"}
	}
	if ep.HasFlag(FlagOutlierDuration) {
		return ValidationResult{Reason: "episode span exceeds plausible duration"}
	}
	if ep.Type == EpisodePrimary && ep.InBedMinutes < e.cfg.PrimaryMinMinutes {
		return ValidationResult{Reason: "primary episode shorter than minimum duration"}
	}
	return ValidationResult{Valid: true}
}
