package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/nmoskvina/lexiday/internal/domain"
	"github.com/nmoskvina/lexiday/internal/service/quiz"
)

// quizService defines the minimal interface needed by QuizHandler.
type quizService interface {
	QuestionForFlashcard(ctx context.Context, input quiz.GetQuestionInput) (*domain.QuizQuestion, error)
}

// QuizHandler serves the quiz REST endpoints.
type QuizHandler struct {
	svc quizService
	log *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(svc quizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{svc: svc, log: logger.With("handler", "quiz")}
}

// Question handles GET /api/v1/quiz/question?flashcard_id={uuid}.
func (h *QuizHandler) Question(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("flashcard_id")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "flashcard_id is required")
		return
	}

	flashcardID, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "flashcard_id must be a UUID")
		return
	}

	question, err := h.svc.QuestionForFlashcard(r.Context(), quiz.GetQuestionInput{FlashcardID: flashcardID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(question))
}
