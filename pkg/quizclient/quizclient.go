// Package quizclient provides a client for driving a quizhost server
// over its HTTP API.
package quizclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"quizhost/internal/logger"
)

// Status is the host view of the game state
type Status struct {
	IsActive        bool      `json:"is_active"`
	Phase           string    `json:"phase"`
	CurrentQuestion int       `json:"current_question"`
	TotalQuestions  int       `json:"total_questions"`
	PlayerCount     int       `json:"player_count"`
	AnsweredCount   int       `json:"answered_count"`
	OptionsRevealed bool      `json:"options_revealed"`
	QuizTitle       string    `json:"quiz_title"`
	QuestionData    *Question `json:"current_question_data"`
}

// Question is a question as shown to players (no correct answer)
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// Results is the answer distribution after a round is scored
type Results struct {
	Distribution  map[int]int `json:"distribution"`
	CorrectAnswer int         `json:"correct_answer"`
	TotalPlayers  int         `json:"total_players"`
	AnsweredCount int         `json:"answered_count"`
}

// LeaderboardEntry is one row of the standings
type LeaderboardEntry struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Rank   int    `json:"rank"`
	Change int    `json:"change"`
}

// APIError is an error response from the quizhost API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("quizhost error: %s (%s)", e.Message, e.Code)
}

// Client defines the interface for quizhost operations
type Client interface {
	// Status retrieves the host view of the game state
	Status(ctx context.Context) (*Status, error)
	// Players lists the names of all joined players
	Players(ctx context.Context) ([]string, error)
	// Start begins or restarts the quiz
	Start(ctx context.Context) (string, error)
	// RevealOptions opens the answer window for the current question
	RevealOptions(ctx context.Context) error
	// ShowAnswers closes the answer window and scores the round
	ShowAnswers(ctx context.Context) (*Results, error)
	// ShowLeaderboard switches to the leaderboard and returns the standings
	ShowLeaderboard(ctx context.Context) ([]LeaderboardEntry, error)
	// Leaderboard returns the standings without changing phase
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
	// Next advances to the next question or finishes the quiz
	Next(ctx context.Context) (string, error)
	// Previous steps back to the previous question
	Previous(ctx context.Context) (string, error)
	// Reset clears all session state back to the lobby
	Reset(ctx context.Context) error
	// Join registers a player and returns their ID and resolved name
	Join(ctx context.Context, name string) (id, resolvedName string, err error)
	// SubmitAnswer records an answer for a player
	SubmitAnswer(ctx context.Context, playerID string, option int) error
}

// HTTPClient is a real HTTP client for a quizhost server
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

// NewHTTPClient creates a new quizhost HTTP client
func NewHTTPClient(baseURL string, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// NewHTTPClientWithHTTPClient creates a new quizhost client with a custom http.Client
func NewHTTPClientWithHTTPClient(baseURL string, httpClient *http.Client, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

// BaseURL returns the configured quizhost base URL
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// doRequest executes an HTTP request against the quizhost API, decodes
// the JSON response into out and surfaces API error envelopes
func (c *HTTPClient) doRequest(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := c.baseURL + path
	c.log.Debug("quizhost request", "method", method, "url", url)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to quizhost: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug("quizhost response", "status", resp.StatusCode, "body", string(data))

	if resp.StatusCode != http.StatusOK {
		var envelope struct {
			Error *APIError `json:"error"`
		}
		if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != nil {
			return envelope.Error
		}
		return fmt.Errorf("quizhost returned status %d: %s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// Status retrieves the host view of the game state
func (c *HTTPClient) Status(ctx context.Context) (*Status, error) {
	var status Status
	if err := c.doRequest(ctx, http.MethodGet, "/api/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Players lists the names of all joined players
func (c *HTTPClient) Players(ctx context.Context) ([]string, error) {
	var response struct {
		Players []string `json:"players"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/api/players", nil, &response); err != nil {
		return nil, err
	}
	return response.Players, nil
}

// Start begins or restarts the quiz
func (c *HTTPClient) Start(ctx context.Context) (string, error) {
	return c.postMessage(ctx, "/api/start")
}

// RevealOptions opens the answer window for the current question
func (c *HTTPClient) RevealOptions(ctx context.Context) error {
	_, err := c.postMessage(ctx, "/api/reveal_options")
	return err
}

// ShowAnswers closes the answer window and scores the round
func (c *HTTPClient) ShowAnswers(ctx context.Context) (*Results, error) {
	var results Results
	if err := c.doRequest(ctx, http.MethodPost, "/api/show_answers", nil, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// ShowLeaderboard switches to the leaderboard and returns the standings
func (c *HTTPClient) ShowLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	return c.fetchLeaderboard(ctx, http.MethodPost, "/api/show_leaderboard")
}

// Leaderboard returns the standings without changing phase
func (c *HTTPClient) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	return c.fetchLeaderboard(ctx, http.MethodGet, "/api/leaderboard")
}

// Next advances to the next question or finishes the quiz
func (c *HTTPClient) Next(ctx context.Context) (string, error) {
	return c.postMessage(ctx, "/api/next")
}

// Previous steps back to the previous question
func (c *HTTPClient) Previous(ctx context.Context) (string, error) {
	return c.postMessage(ctx, "/api/previous")
}

// Reset clears all session state back to the lobby
func (c *HTTPClient) Reset(ctx context.Context) error {
	_, err := c.postMessage(ctx, "/api/reset")
	return err
}

// Join registers a player and returns their ID and resolved name
func (c *HTTPClient) Join(ctx context.Context, name string) (string, string, error) {
	var response struct {
		PlayerID   string `json:"player_id"`
		PlayerName string `json:"player_name"`
	}
	payload := map[string]string{"name": name}
	if err := c.doRequest(ctx, http.MethodPost, "/api/player/join", payload, &response); err != nil {
		return "", "", err
	}
	return response.PlayerID, response.PlayerName, nil
}

// SubmitAnswer records an answer for a player
func (c *HTTPClient) SubmitAnswer(ctx context.Context, playerID string, option int) error {
	payload := map[string]any{"player_id": playerID, "answer": option}
	return c.doRequest(ctx, http.MethodPost, "/api/player/answer", payload, nil)
}

func (c *HTTPClient) postMessage(ctx context.Context, path string) (string, error) {
	var response struct {
		Message string `json:"message"`
	}
	if err := c.doRequest(ctx, http.MethodPost, path, nil, &response); err != nil {
		return "", err
	}
	return response.Message, nil
}

func (c *HTTPClient) fetchLeaderboard(ctx context.Context, method, path string) ([]LeaderboardEntry, error) {
	var response struct {
		Leaderboard []LeaderboardEntry `json:"leaderboard"`
	}
	if err := c.doRequest(ctx, method, path, nil, &response); err != nil {
		return nil, err
	}
	return response.Leaderboard, nil
}

// Ensure HTTPClient implements Client
var _ Client = (*HTTPClient)(nil)
