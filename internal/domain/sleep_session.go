package domain

import (
	"time"

	"github.com/blaisecz/sleep-scoring/internal/sleep"
	"github.com/google/uuid"
)

// SleepSession is the persisted outcome of scoring one night: the primary
// episode's aggregates plus the composite score. Sessions are derived
// records, recomputed from raw segments on demand and stored for history
// (trend views, regularity midpoints), never edited by users.
type SleepSession struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_sleep_sessions_user_night" json:"user_id"`

	// NightDate is the local calendar date the session is attributed to
	// (episodes starting before 15:00 local belong to the previous day).
	NightDate string `gorm:"type:varchar(10);not null;index:idx_sleep_sessions_user_night,sort:desc" json:"night_date"`

	EpisodeStart time.Time `gorm:"not null" json:"episode_start"`
	EpisodeEnd   time.Time `gorm:"not null" json:"episode_end"`

	InBedMinutes       int `gorm:"not null" json:"in_bed_minutes"`
	ActualSleepMinutes int `gorm:"not null" json:"actual_sleep_minutes"`
	AwakeMinutes       int `gorm:"not null" json:"awake_minutes"`
	LightMinutes       int `gorm:"not null" json:"light_minutes"`
	DeepMinutes        int `gorm:"not null" json:"deep_minutes"`
	RemMinutes         int `gorm:"not null" json:"rem_minutes"`

	SleepEfficiency         float64 `gorm:"not null" json:"sleep_efficiency"`
	AwakeningsCount         int     `gorm:"not null" json:"awakenings_count"`
	LongestAwakeBoutMinutes int     `gorm:"not null" json:"longest_awake_bout_minutes"`

	// SleepMidpoint is stored as the UTC instant of the episode midpoint;
	// the regularity component re-localizes it with LocalTimezone.
	SleepMidpoint time.Time `gorm:"not null" json:"sleep_midpoint"`

	Score         int    `gorm:"type:smallint;not null" json:"score"`
	Quality       string `gorm:"type:varchar(10);not null" json:"quality"`
	LocalTimezone string `gorm:"type:varchar(64);not null;default:'UTC'" json:"local_timezone"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepSession) TableName() string {
	return "sleep_sessions"
}

// RawSegmentRequest is one stage sample in a score request. Timestamps must
// be parseable and end must follow start; the stage value is free text and
// never rejected.
type RawSegmentRequest struct {
	// Segment start in RFC3339 format
	StartDate time.Time `json:"start_date" validate:"required" example:"2024-01-15T23:04:00Z"`
	// Segment end in RFC3339 format (must be after start_date)
	EndDate time.Time `json:"end_date" validate:"required,gtfield=StartDate" example:"2024-01-15T23:34:00Z"`
	// Platform stage label, e.g. "HKCategoryValueSleepAnalysisAsleepDeep"
	Value string `json:"value" validate:"required" example:"asleepDeep"`
	// Optional reporting device tag
	Source string `json:"source,omitempty" example:"Apple Watch"`
}

// ScoreSleepRequest is the request body for scoring a night of raw segments.
// @Description A raw wearable export: stage samples in any order.
type ScoreSleepRequest struct {
	Segments []RawSegmentRequest `json:"segments" validate:"required,min=1,dive"`
	// Optional IANA timezone override for this night (defaults to the
	// user's timezone)
	LocalTimezone *string `json:"local_timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
}

// ToRawSegments converts the request payload into engine input.
func (r *ScoreSleepRequest) ToRawSegments() []sleep.RawSegment {
	raw := make([]sleep.RawSegment, len(r.Segments))
	for i, s := range r.Segments {
		raw[i] = sleep.RawSegment{
			StartDate: s.StartDate,
			EndDate:   s.EndDate,
			Value:     s.Value,
			Source:    s.Source,
		}
	}
	return raw
}

// NapResponse reports one scored nap episode alongside the primary score.
type NapResponse struct {
	EpisodeID    uuid.UUID `json:"episode_id"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	InBedMinutes int       `json:"in_bed_minutes"`
	Score        int       `json:"score"`
	Restorative  bool      `json:"restorative"`
	// ReadinessCredit is a fixed bonus consumers may feed into a readiness
	// computation; it is not folded into any score here.
	ReadinessCredit int `json:"readiness_credit"`
}

// ScoreSleepResponse is the response body for a scored night.
// @Description The primary episode's composite score with full breakdown,
// @Description plus any naps detected in the same export.
type ScoreSleepResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	NightDate string    `json:"night_date"`

	EpisodeStart time.Time `json:"episode_start"`
	EpisodeEnd   time.Time `json:"episode_end"`

	InBedMinutes       int     `json:"in_bed_minutes"`
	ActualSleepMinutes int     `json:"actual_sleep_minutes"`
	AwakeMinutes       int     `json:"awake_minutes"`
	LightMinutes       int     `json:"light_minutes"`
	DeepMinutes        int     `json:"deep_minutes"`
	RemMinutes         int     `json:"rem_minutes"`
	SleepEfficiency    float64 `json:"sleep_efficiency"`

	Score         int                      `json:"score"`
	Quality       sleep.Quality            `json:"quality"`
	SleepHours    float64                  `json:"sleep_hours"`
	Breakdown     sleep.ScoreBreakdown     `json:"breakdown"`
	Percentages   sleep.StagePercentages   `json:"percentages"`
	Fragmentation sleep.FragmentationStats `json:"fragmentation"`

	Naps []NapResponse `json:"naps,omitempty"`
}

// SleepSessionResponse is the response body for session history endpoints.
type SleepSessionResponse struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	NightDate          string    `json:"night_date"`
	EpisodeStart       time.Time `json:"episode_start"`
	EpisodeEnd         time.Time `json:"episode_end"`
	LocalEpisodeStart  time.Time `json:"local_episode_start"`
	LocalEpisodeEnd    time.Time `json:"local_episode_end"`
	InBedMinutes       int       `json:"in_bed_minutes"`
	ActualSleepMinutes int       `json:"actual_sleep_minutes"`
	AwakeMinutes       int       `json:"awake_minutes"`
	LightMinutes       int       `json:"light_minutes"`
	DeepMinutes        int       `json:"deep_minutes"`
	RemMinutes         int       `json:"rem_minutes"`
	SleepEfficiency    float64   `json:"sleep_efficiency"`
	Score              int       `json:"score"`
	Quality            string    `json:"quality"`
	LocalTimezone      string    `json:"local_timezone"`
	CreatedAt          time.Time `json:"created_at"`
}

func (s *SleepSession) ToResponse() SleepSessionResponse {
	loc := time.UTC
	if s.LocalTimezone != "" {
		if l, err := time.LoadLocation(s.LocalTimezone); err == nil {
			loc = l
		}
	}

	return SleepSessionResponse{
		ID:                 s.ID,
		UserID:             s.UserID,
		NightDate:          s.NightDate,
		EpisodeStart:       s.EpisodeStart,
		EpisodeEnd:         s.EpisodeEnd,
		LocalEpisodeStart:  s.EpisodeStart.In(loc),
		LocalEpisodeEnd:    s.EpisodeEnd.In(loc),
		InBedMinutes:       s.InBedMinutes,
		ActualSleepMinutes: s.ActualSleepMinutes,
		AwakeMinutes:       s.AwakeMinutes,
		LightMinutes:       s.LightMinutes,
		DeepMinutes:        s.DeepMinutes,
		RemMinutes:         s.RemMinutes,
		SleepEfficiency:    s.SleepEfficiency,
		Score:              s.Score,
		Quality:            s.Quality,
		LocalTimezone:      s.LocalTimezone,
		CreatedAt:          s.CreatedAt,
	}
}

// SleepSessionListResponse is the response body for listing sessions.
type SleepSessionListResponse struct {
	Data       []SleepSessionResponse `json:"data"`
	Pagination PaginationResponse     `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// SleepSessionFilter contains filter parameters for listing sessions.
type SleepSessionFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
