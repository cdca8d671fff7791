package handlers

import (
	"net/http"
	"strings"
)

// handlePlayerJoin registers a new player and returns their ID.
func (h *Handlers) handlePlayerJoin(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	player := h.Session.Join(strings.TrimSpace(req.Name))
	respondJSON(w, http.StatusOK, JoinResponse{
		Success:    true,
		PlayerID:   player.ID,
		PlayerName: player.Name,
	})
}

// handlePlayerAnswer records a player's answer to the current question.
func (h *Handlers) handlePlayerAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}
	if req.PlayerID == "" {
		respondBadRequest(w, "player_id is required")
		return
	}
	if req.Answer == nil {
		respondBadRequest(w, "answer is required")
		return
	}

	if err := h.Session.SubmitAnswer(req.PlayerID, *req.Answer); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Answer recorded"})
}

// handlePlayerStatus returns the game state as seen by one player.
func (h *Handlers) handlePlayerStatus(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("player_id")
	status := h.Session.PlayerStatus(playerID)
	respondJSON(w, http.StatusOK, status)
}
