package daily

import (
	"context"

	"github.com/nmoskvina/lexiday/internal/domain"
	"github.com/nmoskvina/lexiday/pkg/ctxutil"
)

// GetState resolves the caller's spotlight state for today, lazily
// starting the day's session and assigning a card when needed.
// Idempotent: repeated calls return the same state and the same card.
func (s *Service) GetState(ctx context.Context) (*domain.DailyState, error) {
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

	return s.resolve(ctx, sess, now)
}
