package daily

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nmoskvina/lexiday/internal/domain"
)

// Hand-written mocks for the consumer-defined repo interfaces.

type flashcardRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)
	PickSpotlightFunc func(ctx context.Context, userID uuid.UUID, exclude []uuid.UUID) (*domain.Flashcard, error)
}

func (m *flashcardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *flashcardRepoMock) PickSpotlight(ctx context.Context, userID uuid.UUID, exclude []uuid.UUID) (*domain.Flashcard, error) {
	return m.PickSpotlightFunc(ctx, userID, exclude)
}

// sessionStoreMock keeps sessions in memory so multi-call state machine
// tests see their own writes.
type sessionStoreMock struct {
	mu       sync.Mutex
	sessions map[string]domain.WidgetSession
	upserts  int
}

func newSessionStoreMock() *sessionStoreMock {
	return &sessionStoreMock{sessions: make(map[string]domain.WidgetSession)}
}

func (m *sessionStoreMock) Get(_ context.Context, userID uuid.UUID, date domain.DayKey) (*domain.WidgetSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[domain.WidgetSessionID(userID, date)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := sess
	return &copied, nil
}

func (m *sessionStoreMock) Upsert(_ context.Context, sess *domain.WidgetSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	m.sessions[sess.ID] = *sess
	return nil
}

type historyRepoMock struct {
	RecordCorrectFunc func(ctx context.Context, userID, flashcardID uuid.UUID, date domain.DayKey) error

	mu    sync.Mutex
	calls []uuid.UUID
}

func (m *historyRepoMock) RecordCorrect(ctx context.Context, userID, flashcardID uuid.UUID, date domain.DayKey) error {
	m.mu.Lock()
	m.calls = append(m.calls, flashcardID)
	m.mu.Unlock()
	if m.RecordCorrectFunc != nil {
		return m.RecordCorrectFunc(ctx, userID, flashcardID, date)
	}
	return nil
}

func (m *historyRepoMock) RecordCorrectCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uuid.UUID(nil), m.calls...)
}

// streakStoreMock keeps one streak row per user in memory.
type streakStoreMock struct {
	mu      sync.Mutex
	streaks map[uuid.UUID]domain.UserStreak
	upserts int
}

func newStreakStoreMock() *streakStoreMock {
	return &streakStoreMock{streaks: make(map[uuid.UUID]domain.UserStreak)}
}

func (m *streakStoreMock) Get(_ context.Context, userID uuid.UUID) (*domain.UserStreak, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	streak, ok := m.streaks[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := streak
	return &copied, nil
}

func (m *streakStoreMock) Upsert(_ context.Context, streak *domain.UserStreak) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	m.streaks[streak.UserID] = *streak
	return nil
}
