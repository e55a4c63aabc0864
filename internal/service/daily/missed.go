package daily

import (
	"context"

	"github.com/nmoskvina/lexiday/internal/domain"
	"github.com/nmoskvina/lexiday/pkg/ctxutil"
)

// Missed records that the caller did not know today's card and moves on
// to the next candidate. The missed card is excluded for the rest of the
// day but earns no history entry, so it can return on a later day.
func (s *Service) Missed(ctx context.Context) (*domain.DailyState, error) {
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
		sess.AddAttempted(*sess.CurrentFlashcardID)
		sess.CurrentFlashcardID = nil
	}

	return s.assign(ctx, sess, now)
}
