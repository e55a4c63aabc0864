package rest

import (
	"github.com/nmoskvina/lexiday/internal/domain"
)

type flashcardResponse struct {
	ID           string   `json:"id"`
	TopicID      string   `json:"topicId"`
	Word         string   `json:"word"`
	Phonetic     string   `json:"phonetic,omitempty"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Definition   string   `json:"definition"`
	Example      string   `json:"example,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	Synonyms     []string `json:"synonyms,omitempty"`
}

type streakResponse struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

type dailyStateResponse struct {
	State     string             `json:"state"`
	Date      string             `json:"date"`
	Flashcard *flashcardResponse `json:"flashcard,omitempty"`
	Streak    *streakResponse    `json:"streak,omitempty"`
	Message   string             `json:"message,omitempty"`
}

type multipleChoiceResponse struct {
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

type scrambleResponse struct {
	Letters []string `json:"letters"`
}

type typingResponse struct {
	Hint *string `json:"hint"`
}

type questionResponse struct {
	Type           string                  `json:"type"`
	Flashcard      flashcardResponse       `json:"flashcard"`
	MultipleChoice *multipleChoiceResponse `json:"multipleChoice,omitempty"`
	Scramble       *scrambleResponse       `json:"scramble,omitempty"`
	Typing         *typingResponse         `json:"typing,omitempty"`
}

func toFlashcardResponse(card *domain.Flashcard) *flashcardResponse {
	if card == nil {
		return nil
	}
	return &flashcardResponse{
		ID:           card.ID.String(),
		TopicID:      card.TopicID.String(),
		Word:         card.Word,
		Phonetic:     card.Phonetic,
		PartOfSpeech: card.PartOfSpeech.String(),
		Definition:   card.Definition,
		Example:      card.Example,
		ImageURL:     card.ImageURL,
		Synonyms:     card.Synonyms,
	}
}

func toDailyStateResponse(state *domain.DailyState) dailyStateResponse {
	resp := dailyStateResponse{
		State:     state.Kind.String(),
		Date:      state.Date.String(),
		Flashcard: toFlashcardResponse(state.Flashcard),
		Message:   state.Message,
	}
	if state.Kind == domain.DailyStateDoneToday {
		resp.Streak = &streakResponse{
			Current: state.StreakCurrent,
			Best:    state.StreakBest,
		}
	}
	return resp
}

func toQuestionResponse(q *domain.QuizQuestion) questionResponse {
	resp := questionResponse{
		Type:      q.Type.String(),
		Flashcard: *toFlashcardResponse(&q.Flashcard),
	}
	if q.MultipleChoice != nil {
		resp.MultipleChoice = &multipleChoiceResponse{
			Options:      q.MultipleChoice.Options,
			CorrectIndex: q.MultipleChoice.CorrectIndex,
		}
	}
	if q.Scramble != nil {
		resp.Scramble = &scrambleResponse{Letters: q.Scramble.Letters}
	}
	if q.Typing != nil {
		resp.Typing = &typingResponse{Hint: q.Typing.Hint}
	}
	return resp
}
