package services_test

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"quizhost/internal/errors"
	"quizhost/internal/logger"
	"quizhost/internal/models"
	"quizhost/internal/services"
	"quizhost/internal/testutil"
)

func validQuestion(id int) models.Question {
	return models.Question{
		ID:           id,
		Text:         "What is 2 + 2?",
		Options:      []string{"3", "4", "5", "6"},
		CorrectIndex: 1,
	}
}

func TestValidateQuestions_AcceptsValidSet(t *testing.T) {
	qs := []models.Question{validQuestion(0), validQuestion(1)}
	if err := services.ValidateQuestions(qs); err != nil {
		t.Errorf("expected valid set to pass, got %v", err)
	}
}

func TestValidateQuestions_RejectsEmptySet(t *testing.T) {
	err := services.ValidateQuestions(nil)
	if err == nil {
		t.Fatal("expected error for empty set")
	}
	var appErr *errors.Error
	if !stderrors.As(err, &appErr) || appErr.Kind != errors.ErrValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestValidateQuestions_ReportsAllProblems(t *testing.T) {
	qs := []models.Question{
		{ID: 0, Text: "", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
		{ID: 1, Text: "ok", Options: []string{"a", "b"}, CorrectIndex: 0},
		{ID: 2, Text: "ok", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 7},
	}

	err := services.ValidateQuestions(qs)
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{
		"question 0: missing text",
		"question 1: must have exactly 4 options",
		"question 2: correct index must be 0-3",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q, got %q", want, msg)
		}
	}
}

func TestValidateQuestions_RejectsBlankOption(t *testing.T) {
	q := validQuestion(0)
	q.Options = []string{"a", "  ", "c", "d"}

	err := services.ValidateQuestions([]models.Question{q})
	if err == nil || !strings.Contains(err.Error(), "option 1 is blank") {
		t.Errorf("expected blank-option error, got %v", err)
	}
}

func TestQuestionBank_DefaultsWithoutStore(t *testing.T) {
	bank := services.NewQuestionBank(logger.New(), nil)

	if bank.Count() == 0 {
		t.Error("expected default questions to be present")
	}
	if bank.Title() == "" {
		t.Error("expected default title to be set")
	}

	if _, ok := bank.Question(-1); ok {
		t.Error("expected out-of-range index to return false")
	}
	if _, ok := bank.Question(bank.Count()); ok {
		t.Error("expected out-of-range index to return false")
	}
	if q, ok := bank.Question(0); !ok || len(q.Options) != 4 {
		t.Errorf("expected first question with 4 options, got %+v ok=%v", q, ok)
	}
}

func TestQuestionBank_LoadWithEmptyStoreKeepsDefaults(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	bank := services.NewQuestionBank(logger.New(), repo)

	before := bank.Count()
	if err := bank.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if bank.Count() != before {
		t.Errorf("expected defaults to survive empty store, got %d questions", bank.Count())
	}
}

func TestQuestionBank_ReplacePersistsAndReloads(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	log := logger.New()
	ctx := context.Background()

	bank := services.NewQuestionBank(log, repo)
	set := models.QuestionSet{
		Title:     "Office Party Quiz",
		Questions: []models.Question{validQuestion(0)},
	}
	if err := bank.Replace(ctx, set); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	if bank.Title() != "Office Party Quiz" {
		t.Errorf("expected new title, got %q", bank.Title())
	}
	if bank.Count() != 1 {
		t.Errorf("expected 1 question, got %d", bank.Count())
	}

	// A fresh bank over the same store picks up the replacement
	fresh := services.NewQuestionBank(log, repo)
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if fresh.Title() != "Office Party Quiz" {
		t.Errorf("expected reloaded title, got %q", fresh.Title())
	}
	if fresh.Count() != 1 {
		t.Errorf("expected 1 reloaded question, got %d", fresh.Count())
	}
}

func TestQuestionBank_ReplaceRejectsMalformedSet(t *testing.T) {
	bank := services.NewQuestionBank(logger.New(), nil)

	bad := models.QuestionSet{
		Title:     "Broken",
		Questions: []models.Question{{Text: "", Options: []string{"a"}, CorrectIndex: 9}},
	}
	err := bank.Replace(context.Background(), bad)
	if err == nil {
		t.Fatal("expected validation error")
	}

	// The active set is untouched on failure
	if bank.Title() == "Broken" {
		t.Error("expected active set to be unchanged after failed replace")
	}
}

func TestQuestionBank_ReplaceDefaultsEmptyTitle(t *testing.T) {
	bank := services.NewQuestionBank(logger.New(), nil)

	set := models.QuestionSet{Questions: []models.Question{validQuestion(0)}}
	if err := bank.Replace(context.Background(), set); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if bank.Title() != "Quiz" {
		t.Errorf("expected default title 'Quiz', got %q", bank.Title())
	}
}
