package quiz

import (
	"context"

	"github.com/google/uuid"
	"github.com/nmoskvina/lexiday/internal/domain"
)

// Hand-written mocks for the consumer-defined repo interfaces.

type flashcardRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)
	ListByTopicFunc func(ctx context.Context, topicID uuid.UUID) ([]domain.Flashcard, error)
}

func (m *flashcardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *flashcardRepoMock) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Flashcard, error) {
	return m.ListByTopicFunc(ctx, topicID)
}

type progressRepoMock struct {
	GetScoreFunc func(ctx context.Context, userID, flashcardID uuid.UUID) (int, error)
}

func (m *progressRepoMock) GetScore(ctx context.Context, userID, flashcardID uuid.UUID) (int, error) {
	return m.GetScoreFunc(ctx, userID, flashcardID)
}
