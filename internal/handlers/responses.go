package handlers

import "quizhost/internal/models"

// JoinResponse is returned by POST /api/player/join.
type JoinResponse struct {
	Success    bool   `json:"success"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// MessageResponse is the generic success envelope for state transitions.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// PlayersResponse is returned by GET /api/players.
type PlayersResponse struct {
	Success bool     `json:"success"`
	Players []string `json:"players"`
	Count   int      `json:"count"`
}

// ShowAnswersResponse is returned by POST /api/show_answers.
type ShowAnswersResponse struct {
	Success       bool        `json:"success"`
	Distribution  map[int]int `json:"distribution"`
	CorrectAnswer int         `json:"correct_answer"`
	TotalPlayers  int         `json:"total_players"`
	AnsweredCount int         `json:"answered_count"`
}

// LeaderboardResponse is returned by the leaderboard endpoints.
type LeaderboardResponse struct {
	Success     bool                      `json:"success"`
	Leaderboard []models.LeaderboardEntry `json:"leaderboard"`
}
