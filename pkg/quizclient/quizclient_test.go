package quizclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizhost/internal/logger"
)

func newTestClient(handler http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewHTTPClient(server.URL, logger.New())
	return client, server
}

func TestStatus_ParsesHostView(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"is_active":        true,
			"phase":            "answering",
			"current_question": 1,
			"total_questions":  3,
			"player_count":     4,
			"answered_count":   2,
			"options_revealed": true,
			"quiz_title":       "Game Show Quiz",
			"current_question_data": map[string]any{
				"id":      2,
				"text":    "Which option?",
				"options": []string{"A", "B", "C", "D"},
			},
		})
	})
	defer server.Close()

	status, err := client.Status(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !status.IsActive || status.Phase != "answering" {
		t.Errorf("unexpected status: %+v", status)
	}
	if status.AnsweredCount != 2 || status.PlayerCount != 4 {
		t.Errorf("unexpected counts: %+v", status)
	}
	if status.QuestionData == nil || len(status.QuestionData.Options) != 4 {
		t.Errorf("unexpected question data: %+v", status.QuestionData)
	}
}

func TestStatus_ConnectionError(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1", logger.New())

	_, err := client.Status(context.Background())
	if err == nil {
		t.Fatal("expected connection error")
	}
}

func TestDoRequest_SurfacesAPIError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]string{"code": "INVALID_PHASE", "message": "Quiz not started"},
		})
	})
	defer server.Close()

	err := client.RevealOptions(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Code != "INVALID_PHASE" {
		t.Errorf("expected code INVALID_PHASE, got %s", apiErr.Code)
	}
}

func TestDoRequest_NonJSONErrorBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})
	defer server.Close()

	_, err := client.Start(context.Background())
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestJoin_SendsNameAndParsesID(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/player/join" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["name"] != "Ada" {
			t.Errorf("expected name Ada, got %s", req["name"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true, "player_id": "abc-123", "player_name": "Ada",
		})
	})
	defer server.Close()

	id, name, err := client.Join(context.Background(), "Ada")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if id != "abc-123" || name != "Ada" {
		t.Errorf("unexpected join result: %s / %s", id, name)
	}
}

func TestSubmitAnswer_SendsPayload(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		if req["player_id"] != "abc-123" || req["answer"] != float64(2) {
			t.Errorf("unexpected payload: %v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	defer server.Close()

	if err := client.SubmitAnswer(context.Background(), "abc-123", 2); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestShowAnswers_ParsesDistribution(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success":        true,
			"distribution":   map[string]int{"0": 1, "1": 0, "2": 3, "3": 0},
			"correct_answer": 2,
			"total_players":  4,
			"answered_count": 4,
		})
	})
	defer server.Close()

	results, err := client.ShowAnswers(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if results.Distribution[2] != 3 || results.CorrectAnswer != 2 {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestLeaderboard_ParsesEntries(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"leaderboard": []map[string]any{
				{"name": "Ada", "score": 1500, "rank": 1, "change": 1},
				{"name": "Bob", "score": 1000, "rank": 2, "change": -1},
			},
		})
	})
	defer server.Close()

	entries, err := client.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "Ada" || entries[1].Change != -1 {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestPlayers_ParsesNames(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true, "players": []string{"Ada", "Bob"}, "count": 2,
		})
	})
	defer server.Close()

	players, err := client.Players(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(players) != 2 || players[0] != "Ada" {
		t.Errorf("unexpected players: %v", players)
	}
}

func TestContextCancellation(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Status(ctx)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestMockClient_QueuesStatuses(t *testing.T) {
	mock := NewMockClient(WithStatuses(
		&Status{Phase: "question"},
		&Status{Phase: "answering"},
	))

	ctx := context.Background()
	first, _ := mock.Status(ctx)
	second, _ := mock.Status(ctx)
	third, _ := mock.Status(ctx)

	if first.Phase != "question" || second.Phase != "answering" {
		t.Errorf("unexpected queue order: %s, %s", first.Phase, second.Phase)
	}
	if third.Phase != "answering" {
		t.Errorf("last status should repeat, got %s", third.Phase)
	}
	if mock.CallCount("Status") != 3 {
		t.Errorf("expected 3 Status calls, got %d", mock.CallCount("Status"))
	}
}
