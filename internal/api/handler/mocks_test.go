package handler

import (
	"context"
	"time"

	"github.com/blaisecz/sleep-scoring/internal/domain"
	"github.com/blaisecz/sleep-scoring/internal/sleep"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{
		ID:        uuid.New(),
		Timezone:  req.Timezone,
		CreatedAt: time.Now(),
	}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.User{
		ID:        id,
		Timezone:  "UTC",
		CreatedAt: time.Now(),
	}, nil
}

// MockSleepScoreService is a mock implementation of SleepScoreService
type MockSleepScoreService struct {
	scoreNightFunc   func(ctx context.Context, userID uuid.UUID, req *domain.ScoreSleepRequest) (*domain.ScoreSleepResponse, error)
	listSessionsFunc func(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error)
}

func (m *MockSleepScoreService) ScoreNight(ctx context.Context, userID uuid.UUID, req *domain.ScoreSleepRequest) (*domain.ScoreSleepResponse, error) {
	if m.scoreNightFunc != nil {
		return m.scoreNightFunc(ctx, userID, req)
	}
	return &domain.ScoreSleepResponse{
		SessionID:          uuid.New(),
		NightDate:          "2024-01-15",
		EpisodeStart:       time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC),
		EpisodeEnd:         time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC),
		InBedMinutes:       480,
		ActualSleepMinutes: 460,
		Score:              75,
		Quality:            sleep.QualityGood,
	}, nil
}

func (m *MockSleepScoreService) ListSessions(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error) {
	if m.listSessionsFunc != nil {
		return m.listSessionsFunc(ctx, userID, filter)
	}
	return &domain.SleepSessionListResponse{
		Data:       []domain.SleepSessionResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}
