package quizclient

import (
	"context"
	"sync"
)

// MockClient is a mock quizhost client for testing
type MockClient struct {
	mu sync.Mutex

	statuses    []*Status
	statusIndex int
	players     []string
	results     *Results
	leaderboard []LeaderboardEntry

	statusErr error
	startErr  error
	revealErr error
	answerErr error
	nextErr   error

	// Calls records the method names invoked, in order
	Calls []string
}

// MockOption configures the mock client
type MockOption func(*MockClient)

// WithStatuses queues statuses returned by successive Status calls.
// The last status repeats once the queue is exhausted.
func WithStatuses(statuses ...*Status) MockOption {
	return func(m *MockClient) {
		m.statuses = statuses
	}
}

// WithPlayers sets the player names to return
func WithPlayers(players []string) MockOption {
	return func(m *MockClient) {
		m.players = players
	}
}

// WithResults sets the round results to return from ShowAnswers
func WithResults(results *Results) MockOption {
	return func(m *MockClient) {
		m.results = results
	}
}

// WithLeaderboard sets the standings to return
func WithLeaderboard(entries []LeaderboardEntry) MockOption {
	return func(m *MockClient) {
		m.leaderboard = entries
	}
}

// WithStatusError sets an error to return from Status
func WithStatusError(err error) MockOption {
	return func(m *MockClient) {
		m.statusErr = err
	}
}

// WithStartError sets an error to return from Start
func WithStartError(err error) MockOption {
	return func(m *MockClient) {
		m.startErr = err
	}
}

// WithRevealError sets an error to return from RevealOptions
func WithRevealError(err error) MockOption {
	return func(m *MockClient) {
		m.revealErr = err
	}
}

// WithSubmitAnswerError sets an error to return from SubmitAnswer
func WithSubmitAnswerError(err error) MockOption {
	return func(m *MockClient) {
		m.answerErr = err
	}
}

// WithNextError sets an error to return from Next
func WithNextError(err error) MockOption {
	return func(m *MockClient) {
		m.nextErr = err
	}
}

// NewMockClient creates a new mock quizhost client
func NewMockClient(opts ...MockOption) *MockClient {
	m := &MockClient{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockClient) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

// CallCount returns how many times the named method was invoked
func (m *MockClient) CallCount(call string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, c := range m.Calls {
		if c == call {
			count++
		}
	}
	return count
}

// Status returns the next queued status
func (m *MockClient) Status(ctx context.Context) (*Status, error) {
	m.record("Status")
	if m.statusErr != nil {
		return nil, m.statusErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.statuses) == 0 {
		return &Status{Phase: "waiting"}, nil
	}
	status := m.statuses[m.statusIndex]
	if m.statusIndex < len(m.statuses)-1 {
		m.statusIndex++
	}
	return status, nil
}

// Players returns the configured player names
func (m *MockClient) Players(ctx context.Context) ([]string, error) {
	m.record("Players")
	return m.players, nil
}

// Start returns a canned start message
func (m *MockClient) Start(ctx context.Context) (string, error) {
	m.record("Start")
	if m.startErr != nil {
		return "", m.startErr
	}
	return "Quiz started", nil
}

// RevealOptions succeeds unless configured with an error
func (m *MockClient) RevealOptions(ctx context.Context) error {
	m.record("RevealOptions")
	return m.revealErr
}

// ShowAnswers returns the configured results
func (m *MockClient) ShowAnswers(ctx context.Context) (*Results, error) {
	m.record("ShowAnswers")
	if m.results != nil {
		return m.results, nil
	}
	return &Results{Distribution: map[int]int{}}, nil
}

// ShowLeaderboard returns the configured standings
func (m *MockClient) ShowLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	m.record("ShowLeaderboard")
	return m.leaderboard, nil
}

// Leaderboard returns the configured standings
func (m *MockClient) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	m.record("Leaderboard")
	return m.leaderboard, nil
}

// Next returns a canned advance message
func (m *MockClient) Next(ctx context.Context) (string, error) {
	m.record("Next")
	if m.nextErr != nil {
		return "", m.nextErr
	}
	return "Moved to next question", nil
}

// Previous returns a canned step-back message
func (m *MockClient) Previous(ctx context.Context) (string, error) {
	m.record("Previous")
	return "Moved to previous question", nil
}

// Reset succeeds
func (m *MockClient) Reset(ctx context.Context) error {
	m.record("Reset")
	return nil
}

// Join returns a fixed player ID
func (m *MockClient) Join(ctx context.Context, name string) (string, string, error) {
	m.record("Join")
	return "mock-player-id", name, nil
}

// SubmitAnswer succeeds unless configured with an error
func (m *MockClient) SubmitAnswer(ctx context.Context, playerID string, option int) error {
	m.record("SubmitAnswer")
	return m.answerErr
}

// Ensure MockClient implements Client
var _ Client = (*MockClient)(nil)
