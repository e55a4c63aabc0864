package daily

import (
	"context"
	"errors"
	"fmt"

	"github.com/nmoskvina/lexiday/internal/domain"
	"github.com/nmoskvina/lexiday/pkg/ctxutil"
)

// Reveal flips today's card face up. Revealing an already revealed card
// is a no-op; without a current card the call behaves like GetState.
func (s *Service) Reveal(ctx context.Context) (*domain.DailyState, error) {
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
	if sess.CurrentFlashcardID == nil {
		return s.assign(ctx, sess, now)
	}

	card, err := s.cards.GetByID(ctx, *sess.CurrentFlashcardID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		sess.CurrentFlashcardID = nil
		return s.assign(ctx, sess, now)
	case err != nil:
		return nil, fmt.Errorf("get current flashcard: %w", err)
	}

	if !sess.Revealed {
		sess.Revealed = true
		sess.UpdatedAt = now
		if err := s.sessions.Upsert(ctx, sess); err != nil {
			return nil, fmt.Errorf("save session: %w", err)
		}
	}

	return s.cardState(sess, card), nil
}
