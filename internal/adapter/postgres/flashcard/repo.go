// Package flashcard implements the Flashcard repository using PostgreSQL.
// Reads serve the quiz and daily services; Create exists for seeding.
package flashcard

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/nmoskvina/lexiday/internal/adapter/postgres"
	"github.com/nmoskvina/lexiday/internal/domain"
)

var columns = []string{
	"id", "topic_id", "word", "word_normalized", "phonetic", "part_of_speech",
	"definition", "example", "image_url", "synonyms", "created_at",
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
	// masteredScore is the lowest mastery score that makes a card
	// eligible for spotlight selection.
	masteredScore int
}

// New creates a new flashcard repository. masteredScore <= 0 falls back
// to the domain default.
func New(db postgres.Querier, masteredScore int) *Repo {
	if masteredScore <= 0 {
		masteredScore = domain.MasteredScore
	}
	return &Repo{db: db, masteredScore: masteredScore}
}

// ---------------------------------------------------------------------------
// Raw SQL for the selection query
// ---------------------------------------------------------------------------

// pickSpotlightSQL draws one random flashcard the user has mastered
// (mastery score at or above $2), has never answered correctly in the
// spotlight, and has not attempted today ($3). Sequential-scan random()
// is fine at vocabulary-deck sizes.
const pickSpotlightSQL = `
SELECT
    f.id, f.topic_id, f.word, f.word_normalized, f.phonetic, f.part_of_speech,
    f.definition, f.example, f.image_url, f.synonyms, f.created_at
FROM flashcards f
WHERE EXISTS (
        SELECT 1 FROM user_progress up
        WHERE up.user_id = $1 AND up.flashcard_id = f.id AND up.mastery_score >= $2
    )
  AND NOT EXISTS (
        SELECT 1 FROM word_history wh
        WHERE wh.user_id = $1 AND wh.flashcard_id = f.id AND wh.correct
    )
  AND NOT (f.id = ANY($3::uuid[]))
ORDER BY random()
LIMIT 1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a flashcard by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Select(columns...).
		From("flashcards").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get flashcard query: %w", err)
	}

	card, err := scanFlashcard(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, id)
	}
	return card, nil
}

// ListByTopic returns all flashcards of a topic ordered by headword.
// Returns an empty slice (not nil) when the topic has no cards.
func (r *Repo) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Select(columns...).
		From("flashcards").
		Where(sq.Eq{"topic_id": topicID}).
		OrderBy("word").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list flashcards query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	defer rows.Close()

	cards := make([]domain.Flashcard, 0)
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flashcard: %w", err)
		}
		cards = append(cards, *card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	return cards, nil
}

// PickSpotlight returns a random mastered flashcard the user has never
// answered correctly in the spotlight, excluding the given IDs. Returns
// domain.ErrNotFound when no candidate remains.
func (r *Repo) PickSpotlight(ctx context.Context, userID uuid.UUID, exclude []uuid.UUID) (*domain.Flashcard, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if exclude == nil {
		exclude = []uuid.UUID{}
	}

	card, err := scanFlashcard(q.QueryRow(ctx, pickSpotlightSQL, userID, r.masteredScore, exclude))
	if err != nil {
		return nil, mapError(err, uuid.Nil)
	}
	return card, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a flashcard. Returns domain.ErrAlreadyExists on ID
// collision and domain.ErrNotFound for an unknown topic.
func (r *Repo) Create(ctx context.Context, card *domain.Flashcard) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := builder.
		Insert("flashcards").
		Columns(columns...).
		Values(
			card.ID, card.TopicID, card.Word, card.WordNormalized, card.Phonetic,
			card.PartOfSpeech, card.Definition, card.Example, card.ImageURL,
			card.Synonyms, card.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create flashcard query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return mapError(err, card.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func mapError(err error, id uuid.UUID) error {
	return postgres.MapError(err, "flashcard", id)
}

func scanFlashcard(row pgx.Row) (*domain.Flashcard, error) {
	var card domain.Flashcard
	err := row.Scan(
		&card.ID, &card.TopicID, &card.Word, &card.WordNormalized, &card.Phonetic,
		&card.PartOfSpeech, &card.Definition, &card.Example, &card.ImageURL,
		&card.Synonyms, &card.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &card, nil
}
