package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"quizhost/internal/logger"
)

// Commentator produces a spoken line for a show event. Implementations
// must always return something usable; the show never stalls on wit.
type Commentator interface {
	Commentary(ctx context.Context, event, detail string) string
}

// cannedLines holds fallback commentary per event
var cannedLines = map[string][]string{
	"welcome": {
		"Welcome, welcome! Grab your phones, the quiz is about to begin!",
		"Ladies and gentlemen, it's quiz time!",
	},
	"question": {
		"Here comes the next one. Think carefully!",
		"Ooh, a tricky one. Eyes on the screen!",
	},
	"answers_in": {
		"Pencils down! Let's see how you did.",
		"Time's up! The moment of truth.",
	},
	"leaderboard": {
		"And the standings are shifting!",
		"Look at that leaderboard climb!",
	},
	"finale": {
		"What a game! Give it up for our champion!",
		"That's a wrap, quiz fans!",
	},
}

// CannedCommentator cycles through a fixed set of lines per event
type CannedCommentator struct {
	mu      sync.Mutex
	cursors map[string]int
}

// NewCannedCommentator creates a commentator with built-in lines
func NewCannedCommentator() *CannedCommentator {
	return &CannedCommentator{cursors: make(map[string]int)}
}

// Commentary returns the next canned line for the event
func (c *CannedCommentator) Commentary(_ context.Context, event, detail string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines, ok := cannedLines[event]
	if !ok || len(lines) == 0 {
		return detail
	}
	line := lines[c.cursors[event]%len(lines)]
	c.cursors[event]++
	return line
}

// HTTPCommentator asks an external commentary service for a line and
// falls back to canned lines when the service is slow or unavailable
type HTTPCommentator struct {
	url        string
	httpClient *http.Client
	fallback   *CannedCommentator
	log        logger.Logger
}

// NewHTTPCommentator creates a commentator backed by an HTTP service
func NewHTTPCommentator(url string, log logger.Logger) *HTTPCommentator {
	return &HTTPCommentator{
		url: url,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		fallback: NewCannedCommentator(),
		log:      log,
	}
}

// Commentary requests a line from the service, falling back on error
func (c *HTTPCommentator) Commentary(ctx context.Context, event, detail string) string {
	payload, err := json.Marshal(map[string]string{"event": event, "detail": detail})
	if err != nil {
		return c.fallback.Commentary(ctx, event, detail)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return c.fallback.Commentary(ctx, event, detail)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("Commentary service unavailable", "error", err)
		return c.fallback.Commentary(ctx, event, detail)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("Commentary service error", "status", resp.StatusCode)
		return c.fallback.Commentary(ctx, event, detail)
	}

	var response struct {
		Line string `json:"line"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil || response.Line == "" {
		return c.fallback.Commentary(ctx, event, detail)
	}
	return response.Line
}

var (
	_ Commentator = (*CannedCommentator)(nil)
	_ Commentator = (*HTTPCommentator)(nil)
)

// detailForResults summarizes a scored round for the commentator
func detailForResults(correct, answered, total int) string {
	return fmt.Sprintf("correct option %d, %d of %d answered", correct, answered, total)
}
