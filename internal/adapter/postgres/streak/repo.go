// Package streak implements the user streak repository using PostgreSQL.
package streak

import (
	"context"
	"time"

	"github.com/google/uuid"

	postgres "github.com/nmoskvina/lexiday/internal/adapter/postgres"
	"github.com/nmoskvina/lexiday/internal/domain"
)

// Repo provides streak persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new streak repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getSQL = `
SELECT user_id, current_streak, best_streak, last_active_date, updated_at
FROM user_streaks
WHERE user_id = $1`

const upsertSQL = `
INSERT INTO user_streaks (user_id, current_streak, best_streak, last_active_date, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE SET
    current_streak   = EXCLUDED.current_streak,
    best_streak      = EXCLUDED.best_streak,
    last_active_date = EXCLUDED.last_active_date,
    updated_at       = EXCLUDED.updated_at`

// Get returns the streak row for a user.
// Returns domain.ErrNotFound for users who never completed a day.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.UserStreak, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		streak     domain.UserStreak
		lastActive *time.Time
	)
	err := q.QueryRow(ctx, getSQL, userID).Scan(
		&streak.UserID, &streak.Current, &streak.Best, &lastActive, &streak.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_streak", userID)
	}

	if lastActive != nil {
		day := domain.DayKeyFor(*lastActive, time.UTC)
		streak.LastActiveDate = &day
	}
	return &streak, nil
}

// Upsert inserts or fully replaces a streak row.
func (r *Repo) Upsert(ctx context.Context, streak *domain.UserStreak) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var lastActive *string
	if streak.LastActiveDate != nil {
		s := streak.LastActiveDate.String()
		lastActive = &s
	}

	_, err := q.Exec(ctx, upsertSQL,
		streak.UserID, streak.Current, streak.Best, lastActive, streak.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "user_streak", streak.UserID)
	}
	return nil
}
