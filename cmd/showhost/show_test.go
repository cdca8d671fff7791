package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"quizhost/internal/logger"
	"quizhost/pkg/quizclient"
)

func newTestShow(client quizclient.Client) (*show, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &show{
		client:     client,
		voice:      NewCannedCommentator(),
		log:        logger.New(),
		out:        out,
		minPlayers: 1,
		// Zero durations keep the tests fast
	}, out
}

func TestRun_PlaysOneRoundToTheFinale(t *testing.T) {
	mock := quizclient.NewMockClient(
		quizclient.WithPlayers([]string{"Ada"}),
		quizclient.WithStatuses(
			&quizclient.Status{
				IsActive:        true,
				Phase:           "question",
				CurrentQuestion: 0,
				TotalQuestions:  1,
				PlayerCount:     1,
				QuestionData:    &quizclient.Question{Text: "First question?", Options: []string{"A", "B", "C", "D"}},
			},
			&quizclient.Status{
				IsActive:      true,
				Phase:         "answering",
				PlayerCount:   1,
				AnsweredCount: 1,
			},
			&quizclient.Status{IsActive: false, Phase: "waiting"},
		),
		quizclient.WithResults(&quizclient.Results{
			Distribution:  map[int]int{2: 1},
			CorrectAnswer: 2,
			TotalPlayers:  1,
			AnsweredCount: 1,
		}),
		quizclient.WithLeaderboard([]quizclient.LeaderboardEntry{
			{Name: "Ada", Score: 987, Rank: 1},
		}),
	)
	s, out := newTestShow(mock)

	if err := s.run(context.Background()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	for _, call := range []string{"Start", "RevealOptions", "ShowAnswers", "ShowLeaderboard", "Next", "Leaderboard"} {
		if mock.CallCount(call) == 0 {
			t.Errorf("expected %s to be called", call)
		}
	}

	output := out.String()
	if !strings.Contains(output, "First question?") {
		t.Error("expected the question text in the show output")
	}
	if !strings.Contains(output, "Winner: Ada") {
		t.Errorf("expected winner announcement, got: %s", output)
	}
}

func TestRun_TimesOutWhenPlayersStall(t *testing.T) {
	mock := quizclient.NewMockClient(
		quizclient.WithPlayers([]string{"Ada", "Bob"}),
		quizclient.WithStatuses(
			&quizclient.Status{
				IsActive:     true,
				PlayerCount:  2,
				QuestionData: &quizclient.Question{Text: "Q?"},
			},
			// Nobody ever answers
			&quizclient.Status{IsActive: true, PlayerCount: 2, AnsweredCount: 1},
			&quizclient.Status{IsActive: false},
		),
	)
	s, _ := newTestShow(mock)
	s.answerTimeout = 0

	if err := s.run(context.Background()); err != nil {
		t.Fatalf("expected timeout to be tolerated, got: %v", err)
	}
	if mock.CallCount("ShowAnswers") != 1 {
		t.Error("round must still be scored after a timeout")
	}
}

func TestRun_SurfacesStartError(t *testing.T) {
	wantErr := errors.New("server down")
	mock := quizclient.NewMockClient(
		quizclient.WithPlayers([]string{"Ada"}),
		quizclient.WithStartError(wantErr),
	)
	s, _ := newTestShow(mock)

	err := s.run(context.Background())
	if !errors.Is(err, wantErr) {
		t.Errorf("expected start error to propagate, got: %v", err)
	}
}

func TestRun_SurfacesStatusError(t *testing.T) {
	mock := quizclient.NewMockClient(
		quizclient.WithPlayers([]string{"Ada"}),
		quizclient.WithStatusError(errors.New("connection refused")),
	)
	s, _ := newTestShow(mock)

	if err := s.run(context.Background()); err == nil {
		t.Error("expected status error to propagate")
	}
}

func TestWaitForPlayers_CancelledContext(t *testing.T) {
	mock := quizclient.NewMockClient(quizclient.WithPlayers([]string{"Ada"}))
	s, _ := newTestShow(mock)
	s.minPlayers = 2

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.waitForPlayers(ctx); err == nil {
		t.Error("expected error when context is cancelled before enough players join")
	}
}

func TestPrintStandings_ShowsMovement(t *testing.T) {
	s, out := newTestShow(quizclient.NewMockClient())

	s.printStandings([]quizclient.LeaderboardEntry{
		{Name: "Ada", Score: 1500, Rank: 1, Change: 1},
		{Name: "Bob", Score: 1000, Rank: 2, Change: -1},
		{Name: "Cyd", Score: 900, Rank: 3, Change: 0},
	})

	output := out.String()
	if !strings.Contains(output, "Ada - 1500 (up 1)") {
		t.Errorf("expected rise marker, got: %s", output)
	}
	if !strings.Contains(output, "Bob - 1000 (down 1)") {
		t.Errorf("expected fall marker, got: %s", output)
	}
	if strings.Contains(output, "Cyd - 900 (") {
		t.Errorf("no marker expected for unchanged rank, got: %s", output)
	}
}
