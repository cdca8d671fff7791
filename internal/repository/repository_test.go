package repository_test

import (
	"context"
	"errors"
	"testing"

	"quizhost/internal/models"
	"quizhost/internal/repository"
)

func newTestRepository(t *testing.T) *repository.Repository {
	t.Helper()
	repo, err := repository.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func sampleSet() models.QuestionSet {
	return models.QuestionSet{
		Title: "Movie Night Trivia",
		Questions: []models.Question{
			{
				ID:           0,
				Text:         "Which planet is known as the Red Planet?",
				Options:      []string{"Venus", "Mars", "Jupiter", "Saturn"},
				CorrectIndex: 1,
			},
			{
				ID:           1,
				Text:         "What is the largest ocean?",
				Options:      []string{"Atlantic", "Indian", "Arctic", "Pacific"},
				CorrectIndex: 3,
			},
		},
	}
}

func TestLoadQuestionSet_EmptyReturnsNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.LoadQuestionSet(context.Background())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveAndLoadQuestionSet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.SaveQuestionSet(ctx, sampleSet()); err != nil {
		t.Fatalf("SaveQuestionSet failed: %v", err)
	}

	loaded, err := repo.LoadQuestionSet(ctx)
	if err != nil {
		t.Fatalf("LoadQuestionSet failed: %v", err)
	}

	if loaded.Title != "Movie Night Trivia" {
		t.Errorf("expected title 'Movie Night Trivia', got %q", loaded.Title)
	}
	if len(loaded.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(loaded.Questions))
	}

	q := loaded.Questions[0]
	if q.Text != "Which planet is known as the Red Planet?" {
		t.Errorf("unexpected question text: %q", q.Text)
	}
	if len(q.Options) != 4 || q.Options[1] != "Mars" {
		t.Errorf("unexpected options: %v", q.Options)
	}
	if q.CorrectIndex != 1 {
		t.Errorf("expected correct index 1, got %d", q.CorrectIndex)
	}

	if loaded.Questions[1].CorrectIndex != 3 {
		t.Errorf("expected second question correct index 3, got %d", loaded.Questions[1].CorrectIndex)
	}
}

func TestSaveQuestionSet_ReplacesPrevious(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.SaveQuestionSet(ctx, sampleSet()); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	replacement := models.QuestionSet{
		Title: "Replacement Quiz",
		Questions: []models.Question{
			{
				ID:           0,
				Text:         "How many continents are there?",
				Options:      []string{"5", "6", "7", "8"},
				CorrectIndex: 2,
			},
		},
	}
	if err := repo.SaveQuestionSet(ctx, replacement); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := repo.LoadQuestionSet(ctx)
	if err != nil {
		t.Fatalf("LoadQuestionSet failed: %v", err)
	}

	if loaded.Title != "Replacement Quiz" {
		t.Errorf("expected replacement title, got %q", loaded.Title)
	}
	if len(loaded.Questions) != 1 {
		t.Errorf("expected old questions to be removed, got %d questions", len(loaded.Questions))
	}
}

func TestSaveQuestionSet_PreservesOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	set := models.QuestionSet{Title: "Ordered"}
	for i := 0; i < 5; i++ {
		set.Questions = append(set.Questions, models.Question{
			ID:           i,
			Text:         "Question",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % 4,
		})
	}

	if err := repo.SaveQuestionSet(ctx, set); err != nil {
		t.Fatalf("SaveQuestionSet failed: %v", err)
	}

	loaded, err := repo.LoadQuestionSet(ctx)
	if err != nil {
		t.Fatalf("LoadQuestionSet failed: %v", err)
	}

	for i, q := range loaded.Questions {
		if q.ID != i {
			t.Errorf("question %d: expected ID %d, got %d", i, i, q.ID)
		}
	}
}

func TestPing(t *testing.T) {
	repo := newTestRepository(t)
	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
