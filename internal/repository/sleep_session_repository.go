package repository

import (
	"context"
	"time"

	"github.com/blaisecz/sleep-scoring/internal/domain"
	"github.com/blaisecz/sleep-scoring/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SleepSessionRepository interface {
	Create(ctx context.Context, session *domain.SleepSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSession, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) ([]domain.SleepSession, error)
	// RecentMidpoints returns the sleep midpoints of the newest sessions
	// recorded before the given night, newest first. Feeds the regularity
	// score component.
	RecentMidpoints(ctx context.Context, userID uuid.UUID, beforeNight string, limit int) ([]time.Time, error)
	// DeleteByNight removes a previously stored session for the same night
	// so re-submitted exports replace rather than duplicate it.
	DeleteByNight(ctx context.Context, userID uuid.UUID, nightDate string) error
}

type sleepSessionRepository struct {
	db *gorm.DB
}

func NewSleepSessionRepository(db *gorm.DB) SleepSessionRepository {
	return &sleepSessionRepository{db: db}
}

func (r *sleepSessionRepository) Create(ctx context.Context, session *domain.SleepSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sleepSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSession, error) {
	var session domain.SleepSession
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *sleepSessionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) ([]domain.SleepSession, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("episode_start DESC")

	if filter.From != nil {
		query = query.Where("episode_start >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("episode_start <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: fetch records strictly older than the cursor,
			// breaking timestamp ties on id.
			query = query.Where(
				"(episode_start < ?) OR (episode_start = ? AND id < ?)",
				cursor.At, cursor.At, cursor.ID,
			)
		}
	}

	// Fetch one extra row to detect another page
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var sessions []domain.SleepSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *sleepSessionRepository) RecentMidpoints(ctx context.Context, userID uuid.UUID, beforeNight string, limit int) ([]time.Time, error) {
	var midpoints []time.Time
	err := r.db.WithContext(ctx).
		Model(&domain.SleepSession{}).
		Where("user_id = ? AND night_date < ?", userID, beforeNight).
		Order("night_date DESC").
		Limit(limit).
		Pluck("sleep_midpoint", &midpoints).Error
	if err != nil {
		return nil, err
	}
	return midpoints, nil
}

func (r *sleepSessionRepository) DeleteByNight(ctx context.Context, userID uuid.UUID, nightDate string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND night_date = ?", userID, nightDate).
		Delete(&domain.SleepSession{}).Error
}
