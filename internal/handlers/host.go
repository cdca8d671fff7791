package handlers

import (
	"net/http"

	"github.com/skip2/go-qrcode"
)

// handlePlayers lists the names of all joined players.
func (h *Handlers) handlePlayers(w http.ResponseWriter, r *http.Request) {
	names := h.Session.PlayerNames()
	respondJSON(w, http.StatusOK, PlayersResponse{
		Success: true,
		Players: names,
		Count:   len(names),
	})
}

// handleStatus returns the full host view of the game state.
func (h *Handlers) handleStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Session.HostStatus())
}

// handleStart begins or restarts the quiz.
func (h *Handlers) handleStart(w http.ResponseWriter, r *http.Request) {
	message := h.Session.Start()
	respondJSON(w, http.StatusOK, MessageResponse{Success: true, Message: message})
}

// handleRevealOptions opens the answer window for the current question.
func (h *Handlers) handleRevealOptions(w http.ResponseWriter, r *http.Request) {
	if err := h.Session.RevealOptions(); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Options revealed"})
}

// handleShowAnswers closes the answer window, scores the round and
// returns the answer distribution.
func (h *Handlers) handleShowAnswers(w http.ResponseWriter, r *http.Request) {
	results, err := h.Session.ShowAnswers()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ShowAnswersResponse{
		Success:       true,
		Distribution:  results.Distribution,
		CorrectAnswer: results.CorrectAnswer,
		TotalPlayers:  results.TotalPlayers,
		AnsweredCount: results.AnsweredCount,
	})
}

// handleShowLeaderboard switches to the leaderboard phase and returns
// the current standings.
func (h *Handlers) handleShowLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries := h.Session.ShowLeaderboard()
	respondJSON(w, http.StatusOK, LeaderboardResponse{Success: true, Leaderboard: entries})
}

// handleLeaderboard returns the standings without changing phase.
func (h *Handlers) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, LeaderboardResponse{Success: true, Leaderboard: h.Session.Leaderboard()})
}

// handleNext advances to the next question or finishes the quiz.
func (h *Handlers) handleNext(w http.ResponseWriter, r *http.Request) {
	message := h.Session.NextQuestion()
	respondJSON(w, http.StatusOK, MessageResponse{Success: true, Message: message})
}

// handlePrevious steps back to the previous question.
func (h *Handlers) handlePrevious(w http.ResponseWriter, r *http.Request) {
	message, err := h.Session.PreviousQuestion()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Success: true, Message: message})
}

// handleResults returns the answer distribution for the current question.
func (h *Handlers) handleResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.Session.Results()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ShowAnswersResponse{
		Success:       true,
		Distribution:  results.Distribution,
		CorrectAnswer: results.CorrectAnswer,
		TotalPlayers:  results.TotalPlayers,
		AnsweredCount: results.AnsweredCount,
	})
}

// handleReset clears all session state back to the lobby.
func (h *Handlers) handleReset(w http.ResponseWriter, r *http.Request) {
	h.Session.Reset()
	respondJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Game reset"})
}

// handleSetQuiz replaces the loaded question set.
func (h *Handlers) handleSetQuiz(w http.ResponseWriter, r *http.Request) {
	var req SetQuizRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	if err := h.Session.SetQuiz(r.Context(), req.ToQuestionSet()); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Quiz loaded"})
}

// handleJoinQR renders a QR code pointing players at the join page.
func (h *Handlers) handleJoinQR(w http.ResponseWriter, r *http.Request) {
	joinURL := h.BaseURL + "/join"
	png, err := qrcode.Encode(joinURL, qrcode.Medium, 256)
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
