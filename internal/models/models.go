package models

// Phase is the session's current stage in the per-question cycle
type Phase string

const (
	PhaseWaiting     Phase = "waiting"
	PhaseQuestion    Phase = "question"
	PhaseAnswering   Phase = "answering"
	PhaseResults     Phase = "results"
	PhaseLeaderboard Phase = "leaderboard"
)

// OptionCount is the fixed number of answer options per question
const OptionCount = 4

// Question represents a single quiz question with exactly four options
type Question struct {
	ID           int      `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_answer"`
}

// PublicQuestion is the player-facing view of a question.
// It never carries the correct index.
type PublicQuestion struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// Public returns the question stripped of the correct index
func (q Question) Public() PublicQuestion {
	return PublicQuestion{ID: q.ID, Text: q.Text, Options: q.Options}
}

// AnswerRecord is one entry in a player's permanent answer history
type AnswerRecord struct {
	QuestionIndex int     `json:"question"`
	Option        int     `json:"answer"`
	Elapsed       float64 `json:"time"`
}

// Player represents a joined participant
type Player struct {
	ID        string         `json:"player_id"`
	Name      string         `json:"name"`
	JoinOrder int            `json:"-"`
	Answers   []AnswerRecord `json:"answers,omitempty"`
}

// Answer is a player's submission for the current round
type Answer struct {
	Option  int     `json:"answer"`
	Elapsed float64 `json:"time"`
}

// Ranking is one row of a computed score ranking
type Ranking struct {
	PlayerID string `json:"player_id"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
}

// RankChange extends a ranking with leaderboard movement since the
// previous snapshot (positive = moved up)
type RankChange struct {
	PlayerID string `json:"player_id"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
	Change   int    `json:"change"`
}

// LeaderboardEntry is the display view of a ranked player
type LeaderboardEntry struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Rank   int    `json:"rank"`
	Change int    `json:"change"`
}

// QuestionSet is a named, ordered collection of questions
type QuestionSet struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
