package daily

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nmoskvina/lexiday/internal/domain"
	"github.com/nmoskvina/lexiday/pkg/ctxutil"
)

// GotIt records a correct answer and completes the day: the card joins
// the permanent history, the session closes, and the streak advances.
// The three writes run in order without a transaction; a failure mid-way
// surfaces as an error and the next call picks up from the session state.
// Calling GotIt on an already completed day changes nothing.
func (s *Service) GotIt(ctx context.Context) (*domain.DailyState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return s.signedOut(), nil
	}

	now := s.now()
	today := domain.DayKeyFor(now, s.loc)

	sess, err := s.loadOrCreate(ctx, userID, today, now)
	if err != nil {
		return nil, err
	}

	if sess.Completed {
		return s.doneToday(ctx, sess)
	}

	if sess.CurrentFlashcardID != nil {
		if err := s.history.RecordCorrect(ctx, userID, *sess.CurrentFlashcardID, today); err != nil {
			return nil, fmt.Errorf("record word history: %w", err)
		}
		sess.AddAttempted(*sess.CurrentFlashcardID)
	}

	sess.Completed = true
	sess.Revealed = true
	sess.CompletedAt = &now
	sess.UpdatedAt = now
	if err := s.sessions.Upsert(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	streak, err := s.streaks.Get(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		streak = &domain.UserStreak{UserID: userID}
	case err != nil:
		return nil, fmt.Errorf("get streak: %w", err)
	}

	streak.Advance(today)
	streak.UpdatedAt = now
	if err := s.streaks.Upsert(ctx, streak); err != nil {
		return nil, fmt.Errorf("save streak: %w", err)
	}

	s.log.InfoContext(ctx, "daily spotlight completed",
		slog.String("user_id", userID.String()),
		slog.String("date", today.String()),
		slog.Int("streak_current", streak.Current),
	)

	return &domain.DailyState{
		Kind:          domain.DailyStateDoneToday,
		Date:          today,
		StreakCurrent: streak.Current,
		StreakBest:    streak.Best,
	}, nil
}
