// Package progress implements the mastery score repository using
// PostgreSQL. The learning core only reads scores; writes exist for
// seeding and external review flows.
package progress

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/nmoskvina/lexiday/internal/adapter/postgres"
	"github.com/nmoskvina/lexiday/internal/domain"
)

// Repo provides mastery score persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getScoreSQL = `
SELECT mastery_score
FROM user_progress
WHERE user_id = $1 AND flashcard_id = $2`

const upsertSQL = `
INSERT INTO user_progress (user_id, flashcard_id, mastery_score, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, flashcard_id) DO UPDATE SET
    mastery_score = EXCLUDED.mastery_score,
    updated_at    = EXCLUDED.updated_at`

// GetScore returns the user's mastery score for a flashcard.
// A card the user never studied reads as zero, not as an error.
func (r *Repo) GetScore(ctx context.Context, userID, flashcardID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var score int
	err := q.QueryRow(ctx, getScoreSQL, userID, flashcardID).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, postgres.MapError(err, "user_progress", flashcardID)
	}
	return score, nil
}

// Upsert inserts or replaces a progress record.
func (r *Repo) Upsert(ctx context.Context, rec *domain.ProgressRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx, upsertSQL,
		rec.UserID, rec.FlashcardID, rec.MasteryScore, rec.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "user_progress", rec.FlashcardID)
	}
	return nil
}
