package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizhost/internal/logger"
)

func TestCannedCommentator_CyclesLines(t *testing.T) {
	c := NewCannedCommentator()
	ctx := context.Background()

	first := c.Commentary(ctx, "question", "")
	second := c.Commentary(ctx, "question", "")
	third := c.Commentary(ctx, "question", "")

	if first == "" || second == "" {
		t.Fatal("expected non-empty lines")
	}
	if first == second {
		t.Error("expected consecutive lines to differ")
	}
	if first != third {
		t.Error("expected lines to cycle back around")
	}
}

func TestCannedCommentator_UnknownEventFallsBackToDetail(t *testing.T) {
	c := NewCannedCommentator()

	line := c.Commentary(context.Background(), "no-such-event", "the detail")
	if line != "the detail" {
		t.Errorf("expected detail passthrough, got %q", line)
	}
}

func TestHTTPCommentator_UsesServiceLine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["event"] != "question" {
			t.Errorf("expected event question, got %s", req["event"])
		}
		json.NewEncoder(w).Encode(map[string]string{"line": "A hush falls over the crowd..."})
	}))
	defer server.Close()

	c := NewHTTPCommentator(server.URL, logger.New())
	line := c.Commentary(context.Background(), "question", "")

	if line != "A hush falls over the crowd..." {
		t.Errorf("expected service line, got %q", line)
	}
}

func TestHTTPCommentator_FallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewHTTPCommentator(server.URL, logger.New())
	line := c.Commentary(context.Background(), "welcome", "")

	if line == "" {
		t.Error("expected a canned fallback line")
	}
}

func TestHTTPCommentator_FallsBackWhenUnreachable(t *testing.T) {
	c := NewHTTPCommentator("http://127.0.0.1:1", logger.New())

	line := c.Commentary(context.Background(), "finale", "")
	if line == "" {
		t.Error("expected a canned fallback line")
	}
}

func TestHTTPCommentator_FallsBackOnEmptyLine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"line": ""})
	}))
	defer server.Close()

	c := NewHTTPCommentator(server.URL, logger.New())
	line := c.Commentary(context.Background(), "leaderboard", "")

	if line == "" {
		t.Error("expected a canned fallback line")
	}
}
