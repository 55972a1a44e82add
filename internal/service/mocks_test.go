package service

import (
	"context"
	"time"

	"github.com/blaisecz/sleep-scoring/internal/domain"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockSleepSessionRepository is a mock implementation of SleepSessionRepository
type MockSleepSessionRepository struct {
	sessions   map[uuid.UUID]*domain.SleepSession
	listResult []domain.SleepSession
	err        error
}

func NewMockSleepSessionRepository() *MockSleepSessionRepository {
	return &MockSleepSessionRepository{sessions: make(map[uuid.UUID]*domain.SleepSession)}
}

func (m *MockSleepSessionRepository) Create(ctx context.Context, session *domain.SleepSession) error {
	if m.err != nil {
		return m.err
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.CreatedAt = time.Now()
	m.sessions[session.ID] = session
	return nil
}

func (m *MockSleepSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

func (m *MockSleepSessionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) ([]domain.SleepSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.SleepSession, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.SleepSession
	for _, session := range m.sessions {
		if session.UserID == userID {
			result = append(result, *session)
		}
	}
	return result, nil
}

func (m *MockSleepSessionRepository) RecentMidpoints(ctx context.Context, userID uuid.UUID, beforeNight string, limit int) ([]time.Time, error) {
	if m.err != nil {
		return nil, m.err
	}
	var midpoints []time.Time
	for _, session := range m.sessions {
		if session.UserID == userID && session.NightDate < beforeNight {
			midpoints = append(midpoints, session.SleepMidpoint)
		}
	}
	if len(midpoints) > limit {
		midpoints = midpoints[:limit]
	}
	return midpoints, nil
}

func (m *MockSleepSessionRepository) DeleteByNight(ctx context.Context, userID uuid.UUID, nightDate string) error {
	if m.err != nil {
		return m.err
	}
	for id, session := range m.sessions {
		if session.UserID == userID && session.NightDate == nightDate {
			delete(m.sessions, id)
		}
	}
	return nil
}
