package domain

// QuizQuestion is a tagged union over exercise shapes. Type selects the
// variant; exactly one payload field is non-nil and matches Type.
type QuizQuestion struct {
	Type      QuestionType
	Flashcard Flashcard

	MultipleChoice *MultipleChoicePayload
	Scramble       *ScramblePayload
	Typing         *TypingPayload
	SentenceBuild  *SentenceBuildPayload
	GapFill        *GapFillPayload
	Dictation      *DictationPayload
}

// MultipleChoicePayload holds a recognition exercise: pick the headword
// among distractors. Options carries exactly one correct entry (absent
// pool collisions) and CorrectIndex points to its first occurrence.
type MultipleChoicePayload struct {
	Options      []string
	CorrectIndex int
}

// ScramblePayload holds the headword's characters in shuffled order.
// A shuffle that happens to reproduce the original ordering is valid.
type ScramblePayload struct {
	Letters []string
}

// TypingPayload holds an exact-typing prompt. Hint is the headword's
// first character, or nil for an empty headword.
type TypingPayload struct {
	Hint *string
}

// SentenceBuildPayload reorders the words of the example sentence.
// Modeled for forward extensibility; not produced by the current mapping.
type SentenceBuildPayload struct {
	Words []string
}

// GapFillPayload blanks the headword out of the example sentence.
// Modeled for forward extensibility; not produced by the current mapping.
type GapFillPayload struct {
	Sentence string
	Answer   string
}

// DictationPayload prompts typing the headword from its pronunciation.
// Modeled for forward extensibility; not produced by the current mapping.
type DictationPayload struct {
	AudioURL *string
}
