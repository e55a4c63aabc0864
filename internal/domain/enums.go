package domain

// ProficiencyLevel is the mastery band derived from an accumulated score.
type ProficiencyLevel string

const (
	ProficiencyNew      ProficiencyLevel = "NEW"
	ProficiencyFamiliar ProficiencyLevel = "FAMILIAR"
	ProficiencyMastered ProficiencyLevel = "MASTERED"
)

func (p ProficiencyLevel) String() string { return string(p) }

func (p ProficiencyLevel) IsValid() bool {
	switch p {
	case ProficiencyNew, ProficiencyFamiliar, ProficiencyMastered:
		return true
	}
	return false
}

// MasteredScore is the lowest mastery score that counts as MASTERED.
const MasteredScore = 6

// ProficiencyFromScore maps a mastery score to its band.
// Total over all integers: negative scores are clamped to zero, so callers
// never get an invalid band back.
//   - 0–2 → NEW
//   - 3–5 → FAMILIAR
//   - 6+  → MASTERED
func ProficiencyFromScore(score int) ProficiencyLevel {
	if score < 0 {
		score = 0
	}
	switch {
	case score <= 2:
		return ProficiencyNew
	case score <= 5:
		return ProficiencyFamiliar
	default:
		return ProficiencyMastered
	}
}

// QuestionType identifies the exercise shape of a QuizQuestion.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionTypeScramble       QuestionType = "SCRAMBLE"
	QuestionTypeTyping         QuestionType = "TYPING"
	// The following shapes exist in the model for forward extensibility;
	// the current mastery mapping never produces them.
	QuestionTypeSentenceBuild QuestionType = "SENTENCE_BUILD"
	QuestionTypeGapFill       QuestionType = "GAP_FILL"
	QuestionTypeDictation     QuestionType = "DICTATION"
)

func (q QuestionType) String() string { return string(q) }

func (q QuestionType) IsValid() bool {
	switch q {
	case QuestionTypeMultipleChoice, QuestionTypeScramble, QuestionTypeTyping,
		QuestionTypeSentenceBuild, QuestionTypeGapFill, QuestionTypeDictation:
		return true
	}
	return false
}

// DailyStateKind identifies the state of the daily spotlight feature.
type DailyStateKind string

const (
	DailyStateSignedOut    DailyStateKind = "SIGNED_OUT"
	DailyStateCardHidden   DailyStateKind = "CARD_HIDDEN"
	DailyStateCardRevealed DailyStateKind = "CARD_REVEALED"
	DailyStateDoneToday    DailyStateKind = "DONE_TODAY"
	DailyStateExhausted    DailyStateKind = "EXHAUSTED"
)

func (k DailyStateKind) String() string { return string(k) }

func (k DailyStateKind) IsValid() bool {
	switch k {
	case DailyStateSignedOut, DailyStateCardHidden, DailyStateCardRevealed,
		DailyStateDoneToday, DailyStateExhausted:
		return true
	}
	return false
}

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechAdjective    PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb       PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun      PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition  PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction  PartOfSpeech = "CONJUNCTION"
	PartOfSpeechInterjection PartOfSpeech = "INTERJECTION"
	PartOfSpeechPhrase       PartOfSpeech = "PHRASE"
	PartOfSpeechIdiom        PartOfSpeech = "IDIOM"
	PartOfSpeechOther        PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechPhrase, PartOfSpeechIdiom, PartOfSpeechOther:
		return true
	}
	return false
}
