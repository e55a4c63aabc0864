// Package session implements the daily spotlight session repository
// using PostgreSQL. One row per (user, calendar day), written whole on
// every state change.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/nmoskvina/lexiday/internal/adapter/postgres"
	"github.com/nmoskvina/lexiday/internal/domain"
)

// Repo provides daily session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getSQL = `
SELECT
    id, user_id, date, current_flashcard_id, attempted_ids,
    revealed, completed, completed_at, updated_at
FROM daily_sessions
WHERE user_id = $1 AND date = $2`

// upsertSQL writes the whole row; the session is small and every mutation
// already holds the full state in memory.
const upsertSQL = `
INSERT INTO daily_sessions (
    id, user_id, date, current_flashcard_id, attempted_ids,
    revealed, completed, completed_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
    current_flashcard_id = EXCLUDED.current_flashcard_id,
    attempted_ids        = EXCLUDED.attempted_ids,
    revealed             = EXCLUDED.revealed,
    completed            = EXCLUDED.completed,
    completed_at         = EXCLUDED.completed_at,
    updated_at           = EXCLUDED.updated_at`

// Get returns the session for a (user, day) pair.
// Returns domain.ErrNotFound if the day has not been started.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, date domain.DayKey) (*domain.WidgetSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		sess    domain.WidgetSession
		day     time.Time
		attempt []uuid.UUID
	)
	err := q.QueryRow(ctx, getSQL, userID, date.String()).Scan(
		&sess.ID, &sess.UserID, &day, &sess.CurrentFlashcardID, &attempt,
		&sess.Revealed, &sess.Completed, &sess.CompletedAt, &sess.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "daily_session", userID)
	}

	sess.Date = domain.DayKeyFor(day, time.UTC)
	sess.AttemptedIDs = attempt
	return &sess, nil
}

// Upsert inserts or fully replaces a session row.
func (r *Repo) Upsert(ctx context.Context, sess *domain.WidgetSession) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	attempted := sess.AttemptedIDs
	if attempted == nil {
		attempted = []uuid.UUID{}
	}

	_, err := q.Exec(ctx, upsertSQL,
		sess.ID, sess.UserID, sess.Date.String(), sess.CurrentFlashcardID,
		attempted, sess.Revealed, sess.Completed, sess.CompletedAt, sess.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "daily_session", sess.UserID)
	}
	return nil
}
