package repository

import (
	"context"

	"quizhost/internal/models"
)

// QuestionStore defines question-set persistence operations. Only authored
// question sets are persisted; session state is in-memory by design.
type QuestionStore interface {
	LoadQuestionSet(ctx context.Context) (*models.QuestionSet, error)
	SaveQuestionSet(ctx context.Context, set models.QuestionSet) error
}
