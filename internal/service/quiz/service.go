package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"github.com/nmoskvina/lexiday/internal/domain"
	"github.com/nmoskvina/lexiday/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type flashcardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error)
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Flashcard, error)
}

type progressRepo interface {
	GetScore(ctx context.Context, userID, flashcardID uuid.UUID) (int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

const (
	defaultOptionCount = 4
	defaultMaxDistance = 3
)

// Options tunes question generation. Zero values fall back to defaults.
type Options struct {
	// OptionCount is the total number of options in a multiple-choice
	// question, correct answer included.
	OptionCount int
	// SimilarityMaxDistance is the exclusive edit-distance bound for the
	// look-alike distractor tier.
	SimilarityMaxDistance int
	// Rand seeds generation; nil means a self-seeded source.
	Rand *rand.Rand
}

// Service implements the adaptive quiz business logic.
type Service struct {
	cards       flashcardRepo
	progress    progressRepo
	distractors *DistractorGenerator
	rnd         *lockedRand
	log         *slog.Logger
	optionCount int
}

// NewService creates a new Quiz service.
func NewService(log *slog.Logger, cards flashcardRepo, progress progressRepo, opts Options) *Service {
	if opts.OptionCount <= 0 {
		opts.OptionCount = defaultOptionCount
	}
	if opts.SimilarityMaxDistance <= 0 {
		opts.SimilarityMaxDistance = defaultMaxDistance
	}

	gen := NewDistractorGenerator(opts.Rand, opts.SimilarityMaxDistance)

	return &Service{
		cards:       cards,
		progress:    progress,
		distractors: gen,
		rnd:         gen.rnd,
		log:         log.With("service", "quiz"),
		optionCount: opts.OptionCount,
	}
}

// QuestionForFlashcard builds a question for the given card, shaped by the
// caller's mastery of it. Distractors are drawn from the card's topic.
func (s *Service) QuestionForFlashcard(ctx context.Context, input GetQuestionInput) (*domain.QuizQuestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	card, err := s.cards.GetByID(ctx, input.FlashcardID)
	if err != nil {
		return nil, fmt.Errorf("get flashcard: %w", err)
	}

	score, err := s.progress.GetScore(ctx, userID, card.ID)
	if err != nil {
		return nil, fmt.Errorf("get mastery score: %w", err)
	}

	pool, err := s.cards.ListByTopic(ctx, card.TopicID)
	if err != nil {
		return nil, fmt.Errorf("list topic flashcards: %w", err)
	}

	question := s.Generate(*card, score, pool)

	s.log.InfoContext(ctx, "question generated",
		slog.String("flashcard_id", card.ID.String()),
		slog.Int("mastery_score", score),
		slog.String("question_type", question.Type.String()),
	)

	return &question, nil
}
