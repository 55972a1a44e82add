package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blaisecz/sleep-scoring/internal/domain"
	"github.com/blaisecz/sleep-scoring/internal/repository"
	"github.com/blaisecz/sleep-scoring/internal/sleep"
	"github.com/blaisecz/sleep-scoring/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RegularityHistoryNights is how many prior nights' midpoints feed the
// regularity score component.
const RegularityHistoryNights = 3

// SleepScoreService turns raw wearable segment exports into persisted,
// scored sleep sessions.
type SleepScoreService interface {
	// ScoreNight runs the full pipeline over one export: normalize
	// segments, cluster episodes, pick the primary, score it against
	// recent history, score naps, and persist the session.
	ScoreNight(ctx context.Context, userID uuid.UUID, req *domain.ScoreSleepRequest) (*domain.ScoreSleepResponse, error)
	// ListSessions returns the user's scored session history.
	ListSessions(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error)
}

type sleepScoreService struct {
	sessionRepo repository.SleepSessionRepository
	userRepo    repository.UserRepository
	cfg         sleep.Config
}

// NewSleepScoreService creates a SleepScoreService using the default
// engine thresholds.
func NewSleepScoreService(sessionRepo repository.SleepSessionRepository, userRepo repository.UserRepository) SleepScoreService {
	return &sleepScoreService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		cfg:         sleep.DefaultConfig(),
	}
}

func (s *sleepScoreService) ScoreNight(ctx context.Context, userID uuid.UUID, req *domain.ScoreSleepRequest) (*domain.ScoreSleepResponse, error) {
	tracer := otel.Tracer("sleep-scoring-api/scoring")
	ctx, span := tracer.Start(ctx, "SleepScoreService.ScoreNight",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("segments.count", len(req.Segments)),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tzName := user.Timezone
	loc := user.Location()
	if req.LocalTimezone != nil && *req.LocalTimezone != "" {
		tzName = *req.LocalTimezone
		if l, lerr := time.LoadLocation(tzName); lerr == nil {
			loc = l
		}
	}

	engine := sleep.NewEngine(s.cfg, loc)
	segments := sleep.ParseRawSegments(req.ToRawSegments())
	episodes := engine.Cluster(segments)

	primary := engine.SelectPrimary(episodes)
	if primary == nil {
		return nil, domain.ErrNoPrimarySleep
	}
	if v := engine.ValidateEpisode(*primary); !v.Valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrEpisodeRejected, v.Reason)
	}

	// Stored midpoints are UTC instants; the regularity comparison works on
	// local wall-clock time.
	midpoints, err := s.sessionRepo.RecentMidpoints(ctx, userID, primary.NightKeyLocalDate, RegularityHistoryNights)
	if err != nil {
		return nil, err
	}
	localMidpoints := make([]time.Time, len(midpoints))
	for i, m := range midpoints {
		localMidpoints[i] = m.In(loc)
	}

	result := engine.ScoreSleep(*primary, localMidpoints)
	span.SetAttributes(
		attribute.Int("sleep.episodes", len(episodes)),
		attribute.Int("sleep.score", result.Score),
		attribute.String("sleep.quality", string(result.Quality)),
		attribute.String("sleep.night", primary.NightKeyLocalDate),
	)

	var naps []domain.NapResponse
	for _, ep := range episodes {
		if ep.ID == primary.ID || ep.Type != sleep.EpisodeNap {
			continue
		}
		if v := engine.ValidateEpisode(ep); !v.Valid {
			continue
		}
		napScore := engine.ScoreNap(ep)
		naps = append(naps, domain.NapResponse{
			EpisodeID:       ep.ID,
			Start:           ep.Start,
			End:             ep.End,
			InBedMinutes:    ep.InBedMinutes,
			Score:           napScore.Score,
			Restorative:     napScore.Restorative,
			ReadinessCredit: napScore.ReadinessCredit,
		})
	}

	// Re-submitted exports replace the night's previous session.
	if err := s.sessionRepo.DeleteByNight(ctx, userID, primary.NightKeyLocalDate); err != nil {
		return nil, err
	}

	session := &domain.SleepSession{
		UserID:                  userID,
		NightDate:               primary.NightKeyLocalDate,
		EpisodeStart:            primary.Start.UTC(),
		EpisodeEnd:              primary.End.UTC(),
		InBedMinutes:            primary.InBedMinutes,
		ActualSleepMinutes:      primary.ActualSleepMinutes,
		AwakeMinutes:            primary.AwakeMinutes,
		LightMinutes:            primary.LightMinutes,
		DeepMinutes:             primary.DeepMinutes,
		RemMinutes:              primary.RemMinutes,
		SleepEfficiency:         primary.SleepEfficiency,
		AwakeningsCount:         primary.AwakeningsCount,
		LongestAwakeBoutMinutes: primary.LongestAwakeBoutMinutes,
		SleepMidpoint:           primary.SleepMidpointLocal.UTC(),
		Score:                   result.Score,
		Quality:                 string(result.Quality),
		LocalTimezone:           tzName,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	// Attach the result payload for trace consumers
	if outJSON, jerr := json.Marshal(result); jerr == nil {
		span.SetAttributes(attribute.String("scoring.result", string(outJSON)))
	}

	return &domain.ScoreSleepResponse{
		SessionID:          session.ID,
		NightDate:          session.NightDate,
		EpisodeStart:       session.EpisodeStart,
		EpisodeEnd:         session.EpisodeEnd,
		InBedMinutes:       session.InBedMinutes,
		ActualSleepMinutes: session.ActualSleepMinutes,
		AwakeMinutes:       session.AwakeMinutes,
		LightMinutes:       session.LightMinutes,
		DeepMinutes:        session.DeepMinutes,
		RemMinutes:         session.RemMinutes,
		SleepEfficiency:    session.SleepEfficiency,
		Score:              result.Score,
		Quality:            result.Quality,
		SleepHours:         result.SleepHours,
		Breakdown:          result.Breakdown,
		Percentages:        result.Percentages,
		Fragmentation:      result.Fragmentation,
		Naps:               naps,
	}, nil
}

func (s *sleepScoreService) ListSessions(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	sessions, err := s.sessionRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(sessions) > limit
	if hasMore {
		sessions = sessions[:limit]
	}

	response := &domain.SleepSessionListResponse{
		Data: make([]domain.SleepSessionResponse, len(sessions)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}
	for i, session := range sessions {
		response.Data[i] = session.ToResponse()
	}

	if hasMore && len(sessions) > 0 {
		last := sessions[len(sessions)-1]
		cursor := &pagination.Cursor{
			ID: last.ID,
			At: last.EpisodeStart,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
