package domain

import (
	"time"

	"github.com/google/uuid"
)

// Flashcard is a vocabulary card produced by the content layer.
// The learning core treats it as read-only.
type Flashcard struct {
	ID             uuid.UUID
	TopicID        uuid.UUID
	Word           string
	WordNormalized string
	Phonetic       string
	PartOfSpeech   PartOfSpeech
	Definition     string
	Example        string
	ImageURL       *string
	Synonyms       []string
	CreatedAt      time.Time
}

// Topic groups flashcards by theme.
type Topic struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}

// ProgressRecord is the per-(user, flashcard) mastery counter.
// The score only grows through external review flows; the core reads it
// to pick an exercise shape and to filter spotlight candidates.
type ProgressRecord struct {
	UserID       uuid.UUID
	FlashcardID  uuid.UUID
	MasteryScore int
	UpdatedAt    time.Time
}

// Proficiency returns the mastery band for this record.
func (p *ProgressRecord) Proficiency() ProficiencyLevel {
	return ProficiencyFromScore(p.MasteryScore)
}
