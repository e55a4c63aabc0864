package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/nmoskvina/lexiday/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestRepo_GetScore(t *testing.T) {
	t.Parallel()

	userID, cardID := uuid.New(), uuid.New()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectQuery(`(?s)SELECT mastery_score.+FROM user_progress`).
			WithArgs(userID, cardID).
			WillReturnRows(pgxmock.NewRows([]string{"mastery_score"}).AddRow(4))

		repo := New(mock)
		score, err := repo.GetScore(context.Background(), userID, cardID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score != 4 {
			t.Errorf("score = %d, want 4", score)
		}
	})

	t.Run("never studied reads as zero", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectQuery(`(?s)SELECT mastery_score.+FROM user_progress`).
			WithArgs(userID, cardID).
			WillReturnError(pgx.ErrNoRows)

		repo := New(mock)
		score, err := repo.GetScore(context.Background(), userID, cardID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score != 0 {
			t.Errorf("score = %d, want 0", score)
		}
	})

	t.Run("query failure surfaces", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectQuery(`(?s)SELECT mastery_score.+FROM user_progress`).
			WithArgs(userID, cardID).
			WillReturnError(errors.New("connection reset"))

		repo := New(mock)
		if _, err := repo.GetScore(context.Background(), userID, cardID); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestRepo_Upsert(t *testing.T) {
	t.Parallel()

	rec := &domain.ProgressRecord{
		UserID:       uuid.New(),
		FlashcardID:  uuid.New(),
		MasteryScore: 7,
		UpdatedAt:    time.Now(),
	}

	mock := newMock(t)
	mock.ExpectExec(`(?s)INSERT INTO user_progress.+ON CONFLICT \(user_id, flashcard_id\) DO UPDATE`).
		WithArgs(rec.UserID, rec.FlashcardID, 7, rec.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := New(mock)
	if err := repo.Upsert(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
