package services

import (
	"context"

	"quizhost/internal/models"
)

// BankServicer defines the interface for question bank operations
type BankServicer interface {
	Load(ctx context.Context) error
	Replace(ctx context.Context, set models.QuestionSet) error
	Title() string
	Count() int
	Question(index int) (models.Question, bool)
}

// SessionServicer defines the interface for quiz session operations
type SessionServicer interface {
	Join(name string) models.Player
	Reset()
	Start() string
	RevealOptions() error
	SubmitAnswer(playerID string, option int) error
	ShowAnswers() (*RoundResults, error)
	ShowLeaderboard() []models.LeaderboardEntry
	Leaderboard() []models.LeaderboardEntry
	NextQuestion() string
	PreviousQuestion() (string, error)
	Results() (*RoundResults, error)
	PlayerStatus(playerID string) PlayerStatus
	HostStatus() HostStatus
	PlayerNames() []string
	SetQuiz(ctx context.Context, set models.QuestionSet) error
	SetBroadcaster(b Broadcaster)
}

// Broadcaster pushes session events to connected clients. The websocket hub
// implements this; the session service never imports it directly.
type Broadcaster interface {
	PhaseChanged(phase models.Phase, questionIndex int)
	PlayerJoined(name string, playerCount int)
}

// Ensure concrete types implement interfaces
var (
	_ BankServicer    = (*QuestionBank)(nil)
	_ SessionServicer = (*SessionService)(nil)
)
