// Package daily implements the daily spotlight state machine: one word a
// day per user, resolved through a closed set of states and advanced by
// reveal/missed/got-it transitions.
package daily

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nmoskvina/lexiday/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type flashcardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)
	// PickSpotlight returns a random flashcard the user has mastered,
	// never answered correctly in the spotlight, and not in exclude.
	// domain.ErrNotFound means no candidate is left.
	PickSpotlight(ctx context.Context, userID uuid.UUID, exclude []uuid.UUID) (*domain.Flashcard, error)
}

type sessionRepo interface {
	Get(ctx context.Context, userID uuid.UUID, date domain.DayKey) (*domain.WidgetSession, error)
	Upsert(ctx context.Context, session *domain.WidgetSession) error
}

type historyRepo interface {
	RecordCorrect(ctx context.Context, userID, flashcardID uuid.UUID, date domain.DayKey) error
}

type streakRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserStreak, error)
	Upsert(ctx context.Context, streak *domain.UserStreak) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

const defaultExhaustedMessage = "You've learned every word for now. New words are coming soon!"

// Config tunes the daily service. Zero values fall back to defaults.
type Config struct {
	// Location fixes which wall clock defines "today". Nil means UTC.
	Location *time.Location
	// ExhaustedMessage is shown when no spotlight candidate remains.
	ExhaustedMessage string
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// Service implements the daily spotlight business logic.
type Service struct {
	cards        flashcardRepo
	sessions     sessionRepo
	history      historyRepo
	streaks      streakRepo
	log          *slog.Logger
	loc          *time.Location
	now          func() time.Time
	exhaustedMsg string
}

// NewService creates a new Daily service.
func NewService(
	log *slog.Logger,
	cards flashcardRepo,
	sessions sessionRepo,
	history historyRepo,
	streaks streakRepo,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.ExhaustedMessage == "" {
		cfg.ExhaustedMessage = defaultExhaustedMessage
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Service{
		cards:        cards,
		sessions:     sessions,
		history:      history,
		streaks:      streaks,
		log:          log.With("service", "daily"),
		loc:          cfg.Location,
		now:          cfg.Now,
		exhaustedMsg: cfg.ExhaustedMessage,
	}
}
