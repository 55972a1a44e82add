package sleep

import (
	"time"

	"github.com/google/uuid"
)

// EpisodeType distinguishes the main overnight sleep from daytime naps.
type EpisodeType string

const (
	EpisodePrimary EpisodeType = "primary"
	EpisodeNap     EpisodeType = "nap"
)

// Flag marks a data-quality problem detected while aggregating an episode.
// Flags never abort the pipeline; ValidateEpisode turns them into an
// explicit accept/reject decision.
type Flag string

const (
	// FlagDataInconsistent is set when the summed per-stage minutes diverge
	// from the episode span beyond the configured tolerance (typically
	// untracked gaps or overlapping source segments).
	FlagDataInconsistent Flag = "data_inconsistent"

	// FlagOutlierDuration is set when the episode span is implausibly long.
	FlagOutlierDuration Flag = "outlier_duration"
)

// Episode is a contiguous bout of in-bed time reconstructed from segments,
// bounded by long awake gaps on either side.
type Episode struct {
	ID   uuid.UUID   `json:"episode_id"`
	Type EpisodeType `json:"episode_type"`

	Start time.Time `json:"episode_start"`
	End   time.Time `json:"episode_end"`

	InBedMinutes       int `json:"in_bed_minutes"`
	ActualSleepMinutes int `json:"actual_sleep_minutes"`
	AwakeMinutes       int `json:"awake_minutes"`
	LightMinutes       int `json:"light_minutes"`
	DeepMinutes        int `json:"deep_minutes"`
	RemMinutes         int `json:"rem_minutes"`

	SleepEfficiency float64 `json:"sleep_efficiency"`

	AwakeningsCount         int `json:"awakenings_count"`
	LongestAwakeBoutMinutes int `json:"longest_awake_bout_minutes"`

	// SleepMidpointLocal is the temporal midpoint of the span, expressed in
	// the engine's local timezone.
	SleepMidpointLocal time.Time `json:"sleep_midpoint_local"`

	// NightKeyLocalDate is the YYYY-MM-DD label of the night the episode
	// belongs to. Episodes starting before the night cutoff hour are
	// attributed to the previous calendar day.
	NightKeyLocalDate string `json:"night_key_local_date"`

	Segments []Segment `json:"segments"`
	Flags    []Flag    `json:"flags,omitempty"`
}

// HasFlag reports whether the episode carries the given data-quality flag.
func (e *Episode) HasFlag(f Flag) bool {
	for _, have := range e.Flags {
		if have == f {
			return true
		}
	}
	return false
}

// Cluster groups time-ordered segments into discrete episodes. Consecutive
// segments separated by less than the split gap belong to the same episode,
// regardless of stage; a gap at or above the split threshold closes the
// current episode and opens a new one.
func (e *Engine) Cluster(segments []Segment) []Episode {
	if len(segments) == 0 {
		return nil
	}

	var episodes []Episode
	cluster := []Segment{segments[0]}

	for _, seg := range segments[1:] {
		gap := seg.Start.Sub(cluster[len(cluster)-1].End).Minutes()
		if gap >= e.cfg.LongAwakeSplitMinutes {
			episodes = append(episodes, e.buildEpisode(cluster))
			cluster = []Segment{seg}
			continue
		}
		cluster = append(cluster, seg)
	}
	episodes = append(episodes, e.buildEpisode(cluster))

	return episodes
}

// buildEpisode aggregates one cluster of segments into an Episode.
func (e *Engine) buildEpisode(cluster []Segment) Episode {
	first := cluster[0]
	last := cluster[len(cluster)-1]

	ep := Episode{
		ID:       uuid.New(),
		Start:    first.Start,
		End:      last.End,
		Segments: cluster,
	}

	for _, seg := range cluster {
		switch seg.Stage {
		case StageAwake:
			ep.AwakeMinutes += seg.DurationMinutes
			// Awakening counting uses the true span: a 1.9-minute blip
			// rounds to 2 but is still below the threshold.
			if seg.End.Sub(seg.Start).Minutes() >= e.cfg.AwakeningMinMinutes {
				ep.AwakeningsCount++
				if seg.DurationMinutes > ep.LongestAwakeBoutMinutes {
					ep.LongestAwakeBoutMinutes = seg.DurationMinutes
				}
			}
		case StageDeep:
			ep.DeepMinutes += seg.DurationMinutes
		case StageRem:
			ep.RemMinutes += seg.DurationMinutes
		default:
			ep.LightMinutes += seg.DurationMinutes
		}
	}

	ep.InBedMinutes = roundMinutes(ep.Start, ep.End)
	ep.ActualSleepMinutes = ep.InBedMinutes - ep.AwakeMinutes
	if ep.InBedMinutes > 0 {
		ep.SleepEfficiency = float64(ep.ActualSleepMinutes) / float64(ep.InBedMinutes)
	}

	ep.SleepMidpointLocal = ep.Start.Add(ep.End.Sub(ep.Start) / 2).In(e.loc)
	ep.NightKeyLocalDate = e.nightKey(ep.Start)

	if ep.InBedMinutes >= e.cfg.NapMinSpanMinutes && ep.InBedMinutes <= e.cfg.NapMaxSpanMinutes {
		ep.Type = EpisodeNap
	} else {
		ep.Type = EpisodePrimary
	}

	stageSum := ep.AwakeMinutes + ep.LightMinutes + ep.DeepMinutes + ep.RemMinutes
	if abs(stageSum-ep.InBedMinutes) > e.cfg.StageSumToleranceMinutes {
		ep.Flags = append(ep.Flags, FlagDataInconsistent)
	}
	if ep.InBedMinutes > e.cfg.OutlierSpanMinutes {
		ep.Flags = append(ep.Flags, FlagOutlierDuration)
	}

	return ep
}

// nightKey labels the calendar night an episode belongs to. Starts before
// the cutoff hour (early-morning wakeups, post-midnight bedtimes) count
// toward the previous day.
func (e *Engine) nightKey(start time.Time) string {
	local := start.In(e.loc)
	if local.Hour() < e.cfg.NightCutoffHour {
		local = local.AddDate(0, 0, -1)
	}
	return local.Format("2006-01-02")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
