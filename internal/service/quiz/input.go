package quiz

import (
	"github.com/google/uuid"
	"github.com/nmoskvina/lexiday/internal/domain"
)

// GetQuestionInput holds the parameters for requesting a question.
type GetQuestionInput struct {
	FlashcardID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *GetQuestionInput) Validate() error {
	var errs []domain.FieldError

	if i.FlashcardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "flashcard_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
