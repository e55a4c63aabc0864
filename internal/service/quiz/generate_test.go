package quiz

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/nmoskvina/lexiday/internal/domain"
	"github.com/nmoskvina/lexiday/pkg/ctxutil"
)

func testService(t *testing.T, cards flashcardRepo, progress progressRepo) *Service {
	t.Helper()
	return NewService(slog.Default(), cards, progress, Options{
		Rand: rand.New(rand.NewSource(42)),
	})
}

func standardPool(target domain.Flashcard) []domain.Flashcard {
	return []domain.Flashcard{
		target,
		newCard("bat", domain.PartOfSpeechNoun),
		newCard("rat", domain.PartOfSpeechNoun),
		newCard("hat", domain.PartOfSpeechNoun),
		newCard("dog", domain.PartOfSpeechNoun),
	}
}

func TestService_Generate_ShapeByScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  domain.QuestionType
	}{
		{0, domain.QuestionTypeMultipleChoice},
		{2, domain.QuestionTypeMultipleChoice}, // upper NEW boundary
		{3, domain.QuestionTypeScramble},       // lower FAMILIAR boundary
		{5, domain.QuestionTypeScramble},       // upper FAMILIAR boundary
		{6, domain.QuestionTypeTyping},         // lower MASTERED boundary
		{42, domain.QuestionTypeTyping},
		{-1, domain.QuestionTypeMultipleChoice}, // clamped
	}

	svc := testService(t, nil, nil)
	target := newCard("cat", domain.PartOfSpeechNoun)
	pool := standardPool(target)

	for _, tt := range tests {
		q := svc.Generate(target, tt.score, pool)
		if q.Type != tt.want {
			t.Errorf("Generate(score=%d).Type = %v, want %v", tt.score, q.Type, tt.want)
		}
	}
}

func TestService_Generate_MultipleChoice(t *testing.T) {
	t.Parallel()

	svc := testService(t, nil, nil)
	target := newCard("cat", domain.PartOfSpeechNoun)

	q := svc.Generate(target, 0, standardPool(target))

	mc := q.MultipleChoice
	if mc == nil {
		t.Fatal("MultipleChoice payload is nil")
	}
	if len(mc.Options) != 4 {
		t.Fatalf("got %d options, want 4", len(mc.Options))
	}

	occurrences := 0
	for _, opt := range mc.Options {
		if opt == "cat" {
			occurrences++
		}
	}
	if occurrences != 1 {
		t.Fatalf("target appears %d times in options %v, want exactly once", occurrences, mc.Options)
	}

	if mc.CorrectIndex < 0 || mc.CorrectIndex >= len(mc.Options) {
		t.Fatalf("CorrectIndex %d out of range for %d options", mc.CorrectIndex, len(mc.Options))
	}
	if mc.Options[mc.CorrectIndex] != "cat" {
		t.Fatalf("Options[CorrectIndex] = %q, want %q", mc.Options[mc.CorrectIndex], "cat")
	}
}

func TestService_Generate_MultipleChoice_ThinPool(t *testing.T) {
	t.Parallel()

	svc := testService(t, nil, nil)
	target := newCard("cat", domain.PartOfSpeechNoun)
	pool := []domain.Flashcard{target, newCard("dog", domain.PartOfSpeechNoun)}

	q := svc.Generate(target, 0, pool)

	mc := q.MultipleChoice
	if mc == nil {
		t.Fatal("MultipleChoice payload is nil")
	}
	// One distractor available: two options total, still answerable.
	if len(mc.Options) != 2 {
		t.Fatalf("got %d options, want 2", len(mc.Options))
	}
	if mc.Options[mc.CorrectIndex] != "cat" {
		t.Fatalf("Options[CorrectIndex] = %q, want %q", mc.Options[mc.CorrectIndex], "cat")
	}
}

func TestService_Generate_Scramble_IsPermutation(t *testing.T) {
	t.Parallel()

	svc := testService(t, nil, nil)
	target := newCard("puzzle", domain.PartOfSpeechNoun)

	q := svc.Generate(target, 4, nil)

	sc := q.Scramble
	if sc == nil {
		t.Fatal("Scramble payload is nil")
	}
	if len(sc.Letters) != 6 {
		t.Fatalf("got %d letters, want 6", len(sc.Letters))
	}

	joined := make([]string, len(sc.Letters))
	copy(joined, sc.Letters)
	slices.Sort(joined)
	want := []string{"e", "l", "p", "u", "z", "z"}
	if !slices.Equal(joined, want) {
		t.Fatalf("letters %v are not a permutation of %q", sc.Letters, target.Word)
	}
}

func TestService_Generate_Scramble_EmptyWord(t *testing.T) {
	t.Parallel()

	svc := testService(t, nil, nil)

	q := svc.Generate(newCard("", domain.PartOfSpeechNoun), 4, nil)

	if q.Scramble == nil || len(q.Scramble.Letters) != 0 {
		t.Fatalf("expected an empty scramble, got %+v", q.Scramble)
	}
}

func TestService_Generate_Typing(t *testing.T) {
	t.Parallel()

	svc := testService(t, nil, nil)

	q := svc.Generate(newCard("über", domain.PartOfSpeechAdjective), 6, nil)

	ty := q.Typing
	if ty == nil {
		t.Fatal("Typing payload is nil")
	}
	if ty.Hint == nil || *ty.Hint != "ü" {
		t.Fatalf("Hint = %v, want first rune of headword", ty.Hint)
	}
}

func TestService_Generate_Typing_EmptyWord(t *testing.T) {
	t.Parallel()

	svc := testService(t, nil, nil)

	q := svc.Generate(newCard("", domain.PartOfSpeechNoun), 9, nil)

	if q.Typing == nil {
		t.Fatal("Typing payload is nil")
	}
	if q.Typing.Hint != nil {
		t.Fatalf("Hint = %q, want nil for empty headword", *q.Typing.Hint)
	}
}

// ---------------------------------------------------------------------------
// QuestionForFlashcard
// ---------------------------------------------------------------------------

func TestService_QuestionForFlashcard_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	target := newCard("cat", domain.PartOfSpeechNoun)
	pool := standardPool(target)

	mockCards := &flashcardRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
			if id != target.ID {
				t.Errorf("unexpected flashcard ID: got %v, want %v", id, target.ID)
			}
			return &target, nil
		},
		ListByTopicFunc: func(ctx context.Context, topicID uuid.UUID) ([]domain.Flashcard, error) {
			if topicID != target.TopicID {
				t.Errorf("unexpected topic ID: got %v, want %v", topicID, target.TopicID)
			}
			return pool, nil
		},
	}
	mockProgress := &progressRepoMock{
		GetScoreFunc: func(ctx context.Context, uid, fid uuid.UUID) (int, error) {
			if uid != userID {
				t.Errorf("unexpected user ID: got %v, want %v", uid, userID)
			}
			return 4, nil
		},
	}

	svc := testService(t, mockCards, mockProgress)
	ctx := ctxutil.WithUserID(context.Background(), userID)

	q, err := svc.QuestionForFlashcard(ctx, GetQuestionInput{FlashcardID: target.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Type != domain.QuestionTypeScramble {
		t.Errorf("question type = %v, want SCRAMBLE for score 4", q.Type)
	}
	if q.Flashcard.ID != target.ID {
		t.Errorf("question carries card %v, want %v", q.Flashcard.ID, target.ID)
	}
}

func TestService_QuestionForFlashcard_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := testService(t, nil, nil)

	_, err := svc.QuestionForFlashcard(context.Background(), GetQuestionInput{FlashcardID: uuid.New()})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
}

func TestService_QuestionForFlashcard_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := testService(t, nil, nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.QuestionForFlashcard(ctx, GetQuestionInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}

func TestService_QuestionForFlashcard_NotFound(t *testing.T) {
	t.Parallel()

	mockCards := &flashcardRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := testService(t, mockCards, nil)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.QuestionForFlashcard(ctx, GetQuestionInput{FlashcardID: uuid.New()})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestService_QuestionForFlashcard_UnknownProgressMeansNew(t *testing.T) {
	t.Parallel()

	target := newCard("cat", domain.PartOfSpeechNoun)

	mockCards := &flashcardRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
			return &target, nil
		},
		ListByTopicFunc: func(ctx context.Context, topicID uuid.UUID) ([]domain.Flashcard, error) {
			return standardPool(target), nil
		},
	}
	mockProgress := &progressRepoMock{
		GetScoreFunc: func(ctx context.Context, uid, fid uuid.UUID) (int, error) {
			return 0, nil // repo reports zero for never-studied cards
		},
	}

	svc := testService(t, mockCards, mockProgress)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	q, err := svc.QuestionForFlashcard(ctx, GetQuestionInput{FlashcardID: target.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Type != domain.QuestionTypeMultipleChoice {
		t.Errorf("question type = %v, want MULTIPLE_CHOICE for unseen card", q.Type)
	}
}
