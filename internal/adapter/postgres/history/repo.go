// Package history implements the word history repository using
// PostgreSQL. The table is the permanent record of spotlight words
// answered correctly; rows are only ever inserted or reinforced.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/nmoskvina/lexiday/internal/adapter/postgres"
	"github.com/nmoskvina/lexiday/internal/domain"
)

// Repo provides word history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const recordCorrectSQL = `
INSERT INTO word_history (
    user_id, flashcard_id, first_shown_date, last_shown_date, shown_count, correct
) VALUES ($1, $2, $3, $3, 1, TRUE)
ON CONFLICT (user_id, flashcard_id) DO UPDATE SET
    last_shown_date = EXCLUDED.last_shown_date,
    shown_count     = word_history.shown_count + 1,
    correct         = TRUE`

const getSQL = `
SELECT user_id, flashcard_id, first_shown_date, last_shown_date, shown_count, correct
FROM word_history
WHERE user_id = $1 AND flashcard_id = $2`

const countForUserSQL = `
SELECT count(*)
FROM word_history
WHERE user_id = $1 AND correct`

// RecordCorrect marks a flashcard as answered correctly on the given day.
// First sighting inserts; repeats bump the counter and the last-shown day.
func (r *Repo) RecordCorrect(ctx context.Context, userID, flashcardID uuid.UUID, date domain.DayKey) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, recordCorrectSQL, userID, flashcardID, date.String()); err != nil {
		return postgres.MapError(err, "word_history", flashcardID)
	}
	return nil
}

// Get returns the history record for a (user, flashcard) pair.
// Returns domain.ErrNotFound when the card was never answered correctly.
func (r *Repo) Get(ctx context.Context, userID, flashcardID uuid.UUID) (*domain.WordHistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		rec         domain.WordHistoryRecord
		first, last time.Time
	)
	err := q.QueryRow(ctx, getSQL, userID, flashcardID).Scan(
		&rec.UserID, &rec.FlashcardID, &first, &last, &rec.ShownCount, &rec.Correct,
	)
	if err != nil {
		return nil, postgres.MapError(err, "word_history", flashcardID)
	}

	rec.FirstShownDate = domain.DayKeyFor(first, time.UTC)
	rec.LastShownDate = domain.DayKeyFor(last, time.UTC)
	return &rec, nil
}

// CountForUser returns how many distinct words the user has ever
// answered correctly in the daily spotlight.
func (r *Repo) CountForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, countForUserSQL, userID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "word_history", userID)
	}
	return count, nil
}
