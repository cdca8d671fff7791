package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"quizhost/internal/logger"
	"quizhost/pkg/quizclient"
)

// show drives one quiz from the lobby to the final leaderboard
type show struct {
	client        quizclient.Client
	voice         Commentator
	log           logger.Logger
	out           io.Writer
	pollInterval  time.Duration
	answerTimeout time.Duration
	readingPause  time.Duration
	minPlayers    int
}

func (s *show) say(ctx context.Context, event, detail string) {
	line := s.voice.Commentary(ctx, event, detail)
	fmt.Fprintf(s.out, "\n  HOST: %s\n", line)
}

// run plays the whole quiz. It returns once the final leaderboard has
// been shown or the context is cancelled.
func (s *show) run(ctx context.Context) error {
	s.say(ctx, "welcome", "")

	if err := s.waitForPlayers(ctx); err != nil {
		return err
	}

	if _, err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start quiz: %w", err)
	}

	for {
		status, err := s.client.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch status: %w", err)
		}
		if !status.IsActive {
			break
		}

		if status.QuestionData != nil {
			fmt.Fprintf(s.out, "\n  Question %d/%d: %s\n",
				status.CurrentQuestion+1, status.TotalQuestions, status.QuestionData.Text)
		}
		s.say(ctx, "question", "")

		// Give players a moment to read before opening the window
		if err := s.pause(ctx, s.readingPause); err != nil {
			return err
		}

		if err := s.client.RevealOptions(ctx); err != nil {
			return fmt.Errorf("failed to reveal options: %w", err)
		}

		if err := s.waitForAnswers(ctx); err != nil {
			return err
		}

		results, err := s.client.ShowAnswers(ctx)
		if err != nil {
			return fmt.Errorf("failed to show answers: %w", err)
		}
		s.say(ctx, "answers_in", detailForResults(results.CorrectAnswer, results.AnsweredCount, results.TotalPlayers))

		if err := s.pause(ctx, s.readingPause); err != nil {
			return err
		}

		entries, err := s.client.ShowLeaderboard(ctx)
		if err != nil {
			return fmt.Errorf("failed to show leaderboard: %w", err)
		}
		s.say(ctx, "leaderboard", "")
		s.printStandings(entries)

		if err := s.pause(ctx, s.readingPause); err != nil {
			return err
		}

		message, err := s.client.Next(ctx)
		if err != nil {
			return fmt.Errorf("failed to advance: %w", err)
		}
		if message == "Quiz finished" {
			break
		}
	}

	return s.finale(ctx)
}

// waitForPlayers polls the lobby until enough players have joined
func (s *show) waitForPlayers(ctx context.Context) error {
	fmt.Fprintf(s.out, "  Waiting for at least %d player(s) to join...\n", s.minPlayers)

	for {
		players, err := s.client.Players(ctx)
		if err != nil {
			return fmt.Errorf("failed to list players: %w", err)
		}
		if len(players) >= s.minPlayers {
			fmt.Fprintf(s.out, "  %d player(s) ready: %v\n", len(players), players)
			return nil
		}
		if err := s.pause(ctx, s.pollInterval); err != nil {
			return err
		}
	}
}

// waitForAnswers polls until every player has answered or the answer
// window times out
func (s *show) waitForAnswers(ctx context.Context) error {
	deadline := time.Now().Add(s.answerTimeout)

	for {
		status, err := s.client.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch status: %w", err)
		}
		if status.PlayerCount > 0 && status.AnsweredCount >= status.PlayerCount {
			s.log.Info("All players answered", "count", status.AnsweredCount)
			return nil
		}
		if time.Now().After(deadline) {
			s.log.Info("Answer window timed out",
				"answered", status.AnsweredCount, "players", status.PlayerCount)
			return nil
		}
		if err := s.pause(ctx, s.pollInterval); err != nil {
			return err
		}
	}
}

// finale announces the winner from the final standings
func (s *show) finale(ctx context.Context) error {
	entries, err := s.client.Leaderboard(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch final standings: %w", err)
	}

	s.say(ctx, "finale", "")
	if len(entries) > 0 {
		fmt.Fprintf(s.out, "  Winner: %s with %d points!\n", entries[0].Name, entries[0].Score)
	}
	s.printStandings(entries)
	return nil
}

func (s *show) printStandings(entries []quizclient.LeaderboardEntry) {
	for _, entry := range entries {
		marker := ""
		if entry.Change > 0 {
			marker = fmt.Sprintf(" (up %d)", entry.Change)
		} else if entry.Change < 0 {
			marker = fmt.Sprintf(" (down %d)", -entry.Change)
		}
		fmt.Fprintf(s.out, "    %d. %s - %d%s\n", entry.Rank, entry.Name, entry.Score, marker)
	}
}

// pause sleeps for d or returns early if the context is cancelled
func (s *show) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
