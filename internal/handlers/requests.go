package handlers

import "quizhost/internal/models"

// JoinRequest is the body of POST /api/player/join.
type JoinRequest struct {
	Name string `json:"name"`
}

// AnswerRequest is the body of POST /api/player/answer. Answer is a
// pointer so a missing field can be told apart from option 0.
type AnswerRequest struct {
	PlayerID string `json:"player_id"`
	Answer   *int   `json:"answer"`
}

// QuestionPayload is one question in a SetQuizRequest.
type QuestionPayload struct {
	ID            int      `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// SetQuizRequest is the body of POST /api/quiz.
type SetQuizRequest struct {
	Title     string            `json:"title"`
	Questions []QuestionPayload `json:"questions"`
}

// ToQuestionSet converts the request payload to the domain model.
func (r SetQuizRequest) ToQuestionSet() models.QuestionSet {
	questions := make([]models.Question, len(r.Questions))
	for i, q := range r.Questions {
		questions[i] = models.Question{
			ID:           q.ID,
			Text:         q.Text,
			Options:      q.Options,
			CorrectIndex: q.CorrectAnswer,
		}
	}
	return models.QuestionSet{Title: r.Title, Questions: questions}
}
