package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"quizhost/internal/errors"
	"quizhost/internal/logger"
	"quizhost/internal/models"
	"quizhost/internal/repository"
)

// BankStore defines the persistence surface the question bank needs
type BankStore interface {
	LoadQuestionSet(ctx context.Context) (*models.QuestionSet, error)
	SaveQuestionSet(ctx context.Context, set models.QuestionSet) error
}

// QuestionBank holds the active question set. The set is read-shared by all
// requests and only swapped wholesale via Replace, which the session service
// refuses while a quiz is running.
type QuestionBank struct {
	log   logger.Logger
	store BankStore // nil means in-memory only

	mu        sync.RWMutex
	title     string
	questions []models.Question
}

// NewQuestionBank creates a QuestionBank seeded with the default question
// set. Pass a nil store to skip persistence.
func NewQuestionBank(log logger.Logger, store BankStore) *QuestionBank {
	defaults := DefaultQuestionSet()
	return &QuestionBank{
		log:       log,
		store:     store,
		title:     defaults.Title,
		questions: defaults.Questions,
	}
}

// Load replaces the default set with the stored one, if any.
func (b *QuestionBank) Load(ctx context.Context) error {
	if b.store == nil {
		return nil
	}

	set, err := b.store.LoadQuestionSet(ctx)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			b.log.Info("No stored question set, using defaults", "questions", len(b.questions))
			return nil
		}
		return err
	}

	if err := ValidateQuestions(set.Questions); err != nil {
		return err
	}

	b.mu.Lock()
	b.title = set.Title
	b.questions = set.Questions
	b.mu.Unlock()

	b.log.Info("Question set loaded", "title", set.Title, "questions", len(set.Questions))
	return nil
}

// Replace validates and swaps the active question set atomically, persisting
// it when a store is configured. Callers must ensure no session is running.
func (b *QuestionBank) Replace(ctx context.Context, set models.QuestionSet) error {
	if err := ValidateQuestions(set.Questions); err != nil {
		return err
	}

	if set.Title == "" {
		set.Title = "Quiz"
	}

	if b.store != nil {
		if err := b.store.SaveQuestionSet(ctx, set); err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to save question set")
		}
	}

	b.mu.Lock()
	b.title = set.Title
	b.questions = set.Questions
	b.mu.Unlock()

	b.log.Info("Question set replaced", "title", set.Title, "questions", len(set.Questions))
	return nil
}

// Title returns the active quiz title
func (b *QuestionBank) Title() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.title
}

// Count returns the number of questions in the active set
func (b *QuestionBank) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.questions)
}

// Question returns the question at index, or false when out of range
func (b *QuestionBank) Question(index int) (models.Question, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if index < 0 || index >= len(b.questions) {
		return models.Question{}, false
	}
	return b.questions[index], true
}

// ValidateQuestions checks every question against the bank invariants and
// reports the full set of problems, not just the first one.
func ValidateQuestions(questions []models.Question) error {
	if len(questions) == 0 {
		return errors.Validation("question set must contain at least one question")
	}

	var problems []string
	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			problems = append(problems, fmt.Sprintf("question %d: missing text", i))
		}
		if len(q.Options) != models.OptionCount {
			problems = append(problems, fmt.Sprintf("question %d: must have exactly %d options", i, models.OptionCount))
		} else {
			for j, opt := range q.Options {
				if strings.TrimSpace(opt) == "" {
					problems = append(problems, fmt.Sprintf("question %d: option %d is blank", i, j))
				}
			}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= models.OptionCount {
			problems = append(problems, fmt.Sprintf("question %d: correct index must be 0-%d", i, models.OptionCount-1))
		}
	}

	if len(problems) > 0 {
		return errors.Validation(strings.Join(problems, "; "))
	}
	return nil
}

// DefaultQuestionSet returns the built-in demo quiz used when no set has
// been authored yet.
func DefaultQuestionSet() models.QuestionSet {
	return models.QuestionSet{
		Title: "Game Show Quiz",
		Questions: []models.Question{
			{
				ID:           0,
				Text:         "What is the capital of the Netherlands?",
				Options:      []string{"Amsterdam", "Rotterdam", "The Hague", "Utrecht"},
				CorrectIndex: 0,
			},
			{
				ID:           1,
				Text:         "How many legs does a spider have?",
				Options:      []string{"6 legs", "8 legs", "10 legs", "12 legs"},
				CorrectIndex: 1,
			},
			{
				ID:           2,
				Text:         "What color is the sky on a clear day?",
				Options:      []string{"Green", "Red", "Blue", "Yellow"},
				CorrectIndex: 2,
			},
		},
	}
}
