package daily

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nmoskvina/lexiday/internal/domain"
)

// signedOut is the state for requests without an authenticated user.
// Every operation degrades to it instead of failing.
func (s *Service) signedOut() *domain.DailyState {
	return &domain.DailyState{
		Kind: domain.DailyStateSignedOut,
		Date: domain.DayKeyFor(s.now(), s.loc),
	}
}

// loadOrCreate fetches today's session, creating and persisting a blank
// one on first access of the day.
func (s *Service) loadOrCreate(ctx context.Context, userID uuid.UUID, today domain.DayKey, now time.Time) (*domain.WidgetSession, error) {
	sess, err := s.sessions.Get(ctx, userID, today)
	switch {
	case err == nil:
		return sess, nil
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("get session: %w", err)
	}

	sess = domain.NewWidgetSession(userID, today, now)
	if err := s.sessions.Upsert(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "daily session started",
		slog.String("user_id", userID.String()),
		slog.String("date", today.String()),
	)
	return sess, nil
}

// resolve turns a session into its current state, assigning a spotlight
// card when none is held. A current card that no longer exists upstream
// is treated as never assigned.
func (s *Service) resolve(ctx context.Context, sess *domain.WidgetSession, now time.Time) (*domain.DailyState, error) {
	if sess.Completed {
		return s.doneToday(ctx, sess)
	}

	if sess.CurrentFlashcardID != nil {
		card, err := s.cards.GetByID(ctx, *sess.CurrentFlashcardID)
		switch {
		case err == nil:
			return s.cardState(sess, card), nil
		case errors.Is(err, domain.ErrNotFound):
			sess.CurrentFlashcardID = nil
		default:
			return nil, fmt.Errorf("get current flashcard: %w", err)
		}
	}

	return s.assign(ctx, sess, now)
}

// assign picks the next spotlight card, persists the session, and returns
// the resulting state. No remaining candidate yields EXHAUSTED, which
// holds for the rest of the day because the exclusion sets only grow.
func (s *Service) assign(ctx context.Context, sess *domain.WidgetSession, now time.Time) (*domain.DailyState, error) {
	card, err := s.cards.PickSpotlight(ctx, sess.UserID, sess.AttemptedIDs)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		sess.CurrentFlashcardID = nil
		sess.Revealed = false
		sess.UpdatedAt = now
		if err := s.sessions.Upsert(ctx, sess); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
		return &domain.DailyState{
			Kind:    domain.DailyStateExhausted,
			Date:    sess.Date,
			Message: s.exhaustedMsg,
		}, nil
	case err != nil:
		return nil, fmt.Errorf("pick spotlight flashcard: %w", err)
	}

	sess.CurrentFlashcardID = &card.ID
	sess.Revealed = false
	sess.UpdatedAt = now
	if err := s.sessions.Upsert(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.InfoContext(ctx, "spotlight assigned",
		slog.String("user_id", sess.UserID.String()),
		slog.String("flashcard_id", card.ID.String()),
	)
	return s.cardState(sess, card), nil
}

func (s *Service) cardState(sess *domain.WidgetSession, card *domain.Flashcard) *domain.DailyState {
	kind := domain.DailyStateCardHidden
	if sess.Revealed {
		kind = domain.DailyStateCardRevealed
	}
	return &domain.DailyState{
		Kind:      kind,
		Date:      sess.Date,
		Flashcard: card,
	}
}

// doneToday reads the streak for display. A missing streak row shows as
// zeros rather than failing the whole read.
func (s *Service) doneToday(ctx context.Context, sess *domain.WidgetSession) (*domain.DailyState, error) {
	streak, err := s.streaks.Get(ctx, sess.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		streak = &domain.UserStreak{UserID: sess.UserID}
	case err != nil:
		return nil, fmt.Errorf("get streak: %w", err)
	}

	return &domain.DailyState{
		Kind:          domain.DailyStateDoneToday,
		Date:          sess.Date,
		StreakCurrent: streak.Current,
		StreakBest:    streak.Best,
	}, nil
}
