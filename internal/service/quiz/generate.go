package quiz

import (
	"github.com/nmoskvina/lexiday/internal/domain"
)

// Generate maps a mastery score to an exercise shape and builds the
// question. Total over all inputs: an unknown card always yields a score
// of zero upstream, and a thin pool just yields fewer options.
//
//	0–2  recognition   multiple choice
//	3–5  construction  letter scramble
//	6+   recall        exact typing
func (s *Service) Generate(card domain.Flashcard, masteryScore int, pool []domain.Flashcard) domain.QuizQuestion {
	switch domain.ProficiencyFromScore(masteryScore) {
	case domain.ProficiencyNew:
		return s.multipleChoice(card, pool)
	case domain.ProficiencyFamiliar:
		return s.scramble(card)
	default:
		return s.typing(card)
	}
}

func (s *Service) multipleChoice(card domain.Flashcard, pool []domain.Flashcard) domain.QuizQuestion {
	options := s.distractors.Generate(card, pool, s.optionCount-1)
	options = append(options, card.Word)

	s.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correct := 0
	for i, opt := range options {
		if opt == card.Word {
			correct = i
			break
		}
	}

	return domain.QuizQuestion{
		Type:      domain.QuestionTypeMultipleChoice,
		Flashcard: card,
		MultipleChoice: &domain.MultipleChoicePayload{
			Options:      options,
			CorrectIndex: correct,
		},
	}
}

func (s *Service) scramble(card domain.Flashcard) domain.QuizQuestion {
	runes := []rune(card.Word)
	s.rnd.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})

	letters := make([]string, len(runes))
	for i, r := range runes {
		letters[i] = string(r)
	}

	return domain.QuizQuestion{
		Type:      domain.QuestionTypeScramble,
		Flashcard: card,
		Scramble:  &domain.ScramblePayload{Letters: letters},
	}
}

func (s *Service) typing(card domain.Flashcard) domain.QuizQuestion {
	var hint *string
	if runes := []rune(card.Word); len(runes) > 0 {
		h := string(runes[0])
		hint = &h
	}

	return domain.QuizQuestion{
		Type:      domain.QuestionTypeTyping,
		Flashcard: card,
		Typing:    &domain.TypingPayload{Hint: hint},
	}
}
