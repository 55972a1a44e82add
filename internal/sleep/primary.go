package sleep

// SelectPrimary picks the episode that represents the main sleep period of
// the night, or nil when no episode qualifies. The input slice is not
// modified; the winner is returned as a copy re-typed to primary.
//
// Selection is two-tier: the longest candidate overlapping the primary
// window wins; failing that, the longest afternoon episode (starting between
// the fallback hour and the window open) is taken. The two tiers cover
// shift workers and late sleepers without hard-coding a single bedtime.
func (e *Engine) SelectPrimary(episodes []Episode) *Episode {
	if winner := e.longestMatch(episodes, e.primaryCandidate); winner != nil {
		return winner
	}
	return e.longestMatch(episodes, e.fallbackCandidate)
}

// primaryCandidate bounds the duration to [min, max] and requires overlap
// with the primary window.
func (e *Engine) primaryCandidate(ep Episode) bool {
	if ep.InBedMinutes < e.cfg.PrimaryMinMinutes || ep.InBedMinutes > e.cfg.PrimaryMaxMinutes {
		return false
	}
	return e.inPrimaryWindow(ep)
}

// fallbackCandidate only enforces the minimum duration; an over-long
// afternoon episode can still be selected here, carrying its
// outlier_duration flag into validation.
func (e *Engine) fallbackCandidate(ep Episode) bool {
	if ep.InBedMinutes < e.cfg.PrimaryMinMinutes {
		return false
	}
	return e.inFallbackWindow(ep)
}

// longestMatch returns a primary-typed copy of the longest episode passing
// the candidate predicate. Ties keep the episode found first.
func (e *Engine) longestMatch(episodes []Episode, candidate func(Episode) bool) *Episode {
	var winner *Episode
	for i := range episodes {
		ep := episodes[i]
		if !candidate(ep) {
			continue
		}
		if winner == nil || ep.InBedMinutes > winner.InBedMinutes {
			selected := ep
			winner = &selected
		}
	}
	if winner != nil {
		winner.Type = EpisodePrimary
	}
	return winner
}

// inPrimaryWindow reports whether the episode overlaps the evening-to-noon
// primary sleep window: it starts at or after the window open, or it crosses
// midnight and ends at or before the window close the next day.
func (e *Engine) inPrimaryWindow(ep Episode) bool {
	startLocal := ep.Start.In(e.loc)
	endLocal := ep.End.In(e.loc)

	if startLocal.Hour() >= e.cfg.PrimaryWindowStartHour {
		return true
	}

	crossesMidnight := startLocal.Format("2006-01-02") != endLocal.Format("2006-01-02")
	endsByClose := endLocal.Hour()*60+endLocal.Minute() <= e.cfg.PrimaryWindowEndHour*60
	return crossesMidnight && endsByClose
}

// inFallbackWindow covers irregular schedules: episodes starting in the
// early afternoon, before the primary window opens.
func (e *Engine) inFallbackWindow(ep Episode) bool {
	h := ep.Start.In(e.loc).Hour()
	return h >= e.cfg.FallbackWindowStartHour && h < e.cfg.PrimaryWindowStartHour
}
