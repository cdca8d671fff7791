package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"quizhost/internal/errors"
	"quizhost/internal/logger"
	"quizhost/internal/models"
)

// RoundResults describes the outcome of the current question
type RoundResults struct {
	Distribution  map[int]int `json:"distribution"`
	CorrectAnswer int         `json:"correct_answer"`
	TotalPlayers  int         `json:"total_players"`
	AnsweredCount int         `json:"answered_count"`
}

// PlayerStatus is the player-facing poll view. Question data is withheld
// until options are revealed and never includes the correct index.
type PlayerStatus struct {
	IsActive        bool                   `json:"is_active"`
	Phase           models.Phase           `json:"phase"`
	CurrentQuestion int                    `json:"current_question"`
	OptionsRevealed bool                   `json:"options_revealed"`
	QuestionData    *models.PublicQuestion `json:"question_data,omitempty"`
	HasAnswered     *bool                  `json:"has_answered,omitempty"`
	Score           *int                   `json:"score,omitempty"`
}

// HostStatus is the host/driver-facing poll view. The question data carries
// what a narrator needs but not the correct index; that is only released
// through ShowAnswers and Results.
type HostStatus struct {
	IsActive        bool                   `json:"is_active"`
	Phase           models.Phase           `json:"phase"`
	CurrentQuestion int                    `json:"current_question"`
	TotalQuestions  int                    `json:"total_questions"`
	PlayerCount     int                    `json:"player_count"`
	AnsweredCount   int                    `json:"answered_count"`
	OptionsRevealed bool                   `json:"options_revealed"`
	QuizTitle       string                 `json:"quiz_title"`
	QuestionData    *models.PublicQuestion `json:"current_question_data,omitempty"`
}

// SessionService is the single mutable record of one quiz run. Every
// operation locks the whole record; the working set is small and no
// operation does I/O under the lock.
type SessionService struct {
	log         logger.Logger
	bank        BankServicer
	broadcaster Broadcaster
	now         func() time.Time

	mu              sync.Mutex
	active          bool
	phase           models.Phase
	current         int
	players         map[string]*models.Player
	answers         map[string]models.Answer
	scores          map[string]int
	prevRanks       map[string]int
	revealedAt      time.Time
	optionsRevealed bool
	roundScored     bool
	joinSeq         int
}

// NewSessionService creates a SessionService in the waiting phase
func NewSessionService(log logger.Logger, bank BankServicer) *SessionService {
	return NewSessionServiceWithClock(log, bank, time.Now)
}

// NewSessionServiceWithClock allows deterministic timestamps in tests
func NewSessionServiceWithClock(log logger.Logger, bank BankServicer, now func() time.Time) *SessionService {
	s := &SessionService{
		log:  log,
		bank: bank,
		now:  now,
	}
	s.resetLocked()
	return s
}

// SetBroadcaster wires the websocket hub after construction
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.mu.Lock()
	s.broadcaster = b
	s.mu.Unlock()
}

func (s *SessionService) resetLocked() {
	s.active = false
	s.phase = models.PhaseWaiting
	s.current = -1
	s.players = make(map[string]*models.Player)
	s.answers = make(map[string]models.Answer)
	s.scores = make(map[string]int)
	s.prevRanks = make(map[string]int)
	s.revealedAt = time.Time{}
	s.optionsRevealed = false
	s.roundScored = false
	s.joinSeq = 0
}

// Join registers a new player. Legal in any phase; a blank name defaults to
// "Anonymous". Joining never touches another player's score.
func (s *SessionService) Join(name string) models.Player {
	if name == "" {
		name = "Anonymous"
	}

	player := models.Player{
		ID:   uuid.NewString(),
		Name: name,
	}

	s.mu.Lock()
	player.JoinOrder = s.joinSeq
	s.joinSeq++
	s.players[player.ID] = &models.Player{ID: player.ID, Name: player.Name, JoinOrder: player.JoinOrder}
	s.scores[player.ID] = 0
	count := len(s.players)
	b := s.broadcaster
	s.mu.Unlock()

	s.log.Info("Player joined", "name", name, "player_count", count)
	if b != nil {
		b.PlayerJoined(name, count)
	}
	return player
}

// Reset clears every mutable field back to initial values. Legal from any
// phase and idempotent.
func (s *SessionService) Reset() {
	s.mu.Lock()
	s.resetLocked()
	b := s.broadcaster
	s.mu.Unlock()

	s.log.Info("Quiz reset")
	if b != nil {
		b.PhaseChanged(models.PhaseWaiting, -1)
	}
}

// Start begins the quiz at the first question. Legal from any phase as a
// force-restart; already-joined players keep their scores.
func (s *SessionService) Start() string {
	s.mu.Lock()
	s.active = true
	s.current = 0
	s.phase = models.PhaseQuestion
	s.answers = make(map[string]models.Answer)
	s.optionsRevealed = false
	s.revealedAt = time.Time{}
	s.roundScored = false
	for playerID := range s.players {
		if _, ok := s.scores[playerID]; !ok {
			s.scores[playerID] = 0
		}
	}
	b := s.broadcaster
	s.mu.Unlock()

	s.log.Info("Quiz started", "questions", s.bank.Count())
	if b != nil {
		b.PhaseChanged(models.PhaseQuestion, 0)
	}
	return "Quiz started"
}

// RevealOptions opens the answering window and starts the scoring clock
func (s *SessionService) RevealOptions() error {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return errors.InvalidPhase("quiz not active")
	}
	s.revealedAt = s.now()
	s.optionsRevealed = true
	s.phase = models.PhaseAnswering
	index := s.current
	b := s.broadcaster
	s.mu.Unlock()

	s.log.Info("Options revealed", "question", index)
	if b != nil {
		b.PhaseChanged(models.PhaseAnswering, index)
	}
	return nil
}

// SubmitAnswer records a player's answer for the current round. Submissions
// outside the answering window are rejected so a stale reveal timestamp can
// never leak into scoring. Resubmission overwrites the round answer (last
// write wins) and appends to the player's history.
func (s *SessionService) SubmitAnswer(playerID string, option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[playerID]
	if !ok {
		return errors.UnknownPlayer("invalid player_id")
	}
	if s.phase != models.PhaseAnswering || !s.optionsRevealed {
		return errors.OptionsNotRevealed("options not revealed yet")
	}
	if option < 0 || option >= models.OptionCount {
		return errors.InvalidOptionf("answer must be 0-%d", models.OptionCount-1)
	}

	elapsed := s.now().Sub(s.revealedAt).Seconds()
	s.answers[playerID] = models.Answer{Option: option, Elapsed: elapsed}
	player.Answers = append(player.Answers, models.AnswerRecord{
		QuestionIndex: s.current,
		Option:        option,
		Elapsed:       elapsed,
	})
	return nil
}

// ShowAnswers closes the round, scores every submitted answer exactly once
// and returns the answer distribution with the correct index.
func (s *SessionService) ShowAnswers() (*RoundResults, error) {
	s.mu.Lock()
	question, ok := s.currentQuestionLocked()
	if !ok {
		s.mu.Unlock()
		return nil, errors.NoActiveQuestion("no active question")
	}

	if !s.roundScored {
		for playerID, answer := range s.answers {
			correct := answer.Option == question.CorrectIndex
			s.scores[playerID] += Score(answer.Elapsed, correct)
		}
		s.roundScored = true
	}

	s.phase = models.PhaseResults
	results := s.roundResultsLocked(question)
	index := s.current
	b := s.broadcaster
	s.mu.Unlock()

	s.log.Info("Answers shown", "question", index, "answered", results.AnsweredCount)
	if b != nil {
		b.PhaseChanged(models.PhaseResults, index)
	}
	return results, nil
}

// ShowLeaderboard computes the top-10 leaderboard with rank movement since
// the last snapshot, then replaces the snapshot so the next view measures
// movement from this one.
func (s *SessionService) ShowLeaderboard() []models.LeaderboardEntry {
	s.mu.Lock()
	entries := s.leaderboardLocked()
	s.saveRankingsLocked()
	s.phase = models.PhaseLeaderboard
	index := s.current
	b := s.broadcaster
	s.mu.Unlock()

	if b != nil {
		b.PhaseChanged(models.PhaseLeaderboard, index)
	}
	return entries
}

// Leaderboard returns the current top-10 without changing phase or snapshot
func (s *SessionService) Leaderboard() []models.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leaderboardLocked()
}

// NextQuestion advances the quiz, or finishes it after the last question.
// Calling it while no quiz is running is a benign no-op.
func (s *SessionService) NextQuestion() string {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return "Quiz not active"
	}

	s.saveRankingsLocked()

	var message string
	var phase models.Phase
	if s.current < s.bank.Count()-1 {
		s.current++
		s.answers = make(map[string]models.Answer)
		s.optionsRevealed = false
		s.revealedAt = time.Time{}
		s.roundScored = false
		s.phase = models.PhaseQuestion
		message = "Next question"
		phase = models.PhaseQuestion
	} else {
		s.active = false
		s.phase = models.PhaseWaiting
		message = "Quiz finished"
		phase = models.PhaseWaiting
	}
	index := s.current
	b := s.broadcaster
	s.mu.Unlock()

	s.log.Info(message, "question", index)
	if b != nil {
		b.PhaseChanged(phase, index)
	}
	return message
}

// PreviousQuestion steps back one question, clearing the current round
func (s *SessionService) PreviousQuestion() (string, error) {
	s.mu.Lock()
	if !s.active || s.current <= 0 {
		s.mu.Unlock()
		return "", errors.AtFirstQuestion("already at first question")
	}

	s.current--
	s.answers = make(map[string]models.Answer)
	s.optionsRevealed = false
	s.revealedAt = time.Time{}
	s.roundScored = false
	s.phase = models.PhaseQuestion
	index := s.current
	b := s.broadcaster
	s.mu.Unlock()

	if b != nil {
		b.PhaseChanged(models.PhaseQuestion, index)
	}
	return "Previous question", nil
}

// Results returns the current round's distribution and totals without
// changing phase
func (s *SessionService) Results() (*RoundResults, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	question, ok := s.currentQuestionLocked()
	if !ok {
		return nil, errors.NoActiveQuestion("no active question")
	}
	return s.roundResultsLocked(question), nil
}

// PlayerStatus returns the player poll view. An empty playerID omits the
// per-player fields.
func (s *SessionService) PlayerStatus(playerID string) PlayerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := PlayerStatus{
		IsActive:        s.active,
		Phase:           s.phase,
		CurrentQuestion: s.current,
		OptionsRevealed: s.optionsRevealed,
	}

	if s.active && s.optionsRevealed {
		if question, ok := s.currentQuestionLocked(); ok {
			public := question.Public()
			status.QuestionData = &public
		}
	}

	if playerID != "" {
		if _, ok := s.players[playerID]; ok {
			_, answered := s.answers[playerID]
			score := s.scores[playerID]
			status.HasAnswered = &answered
			status.Score = &score
		}
	}
	return status
}

// HostStatus returns a consistent snapshot of the whole session for the
// host dashboard and the show driver's poll loop.
func (s *SessionService) HostStatus() HostStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := HostStatus{
		IsActive:        s.active,
		Phase:           s.phase,
		CurrentQuestion: s.current,
		TotalQuestions:  s.bank.Count(),
		PlayerCount:     len(s.players),
		AnsweredCount:   len(s.answers),
		OptionsRevealed: s.optionsRevealed,
		QuizTitle:       s.bank.Title(),
	}

	if question, ok := s.currentQuestionLocked(); ok {
		public := question.Public()
		status.QuestionData = &public
	}
	return status
}

// PlayerNames returns display names in join order
func (s *SessionService) PlayerNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ordered := make([]*models.Player, 0, len(s.players))
	for _, p := range s.players {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].JoinOrder < ordered[j].JoinOrder
	})

	names := make([]string, len(ordered))
	for i, p := range ordered {
		names[i] = p.Name
	}
	return names
}

// SetQuiz replaces the question bank. Refused while a quiz is running so an
// in-flight round can never reference a swapped-out question.
func (s *SessionService) SetQuiz(ctx context.Context, set models.QuestionSet) error {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	if active {
		return errors.InvalidPhase("cannot replace questions while a quiz is running")
	}
	return s.bank.Replace(ctx, set)
}

// currentQuestionLocked returns the active question, if any. Callers must
// hold the lock.
func (s *SessionService) currentQuestionLocked() (models.Question, bool) {
	if !s.active {
		return models.Question{}, false
	}
	return s.bank.Question(s.current)
}

func (s *SessionService) roundResultsLocked(question models.Question) *RoundResults {
	distribution := make(map[int]int, models.OptionCount)
	for i := 0; i < models.OptionCount; i++ {
		distribution[i] = 0
	}
	for _, answer := range s.answers {
		if answer.Option >= 0 && answer.Option < models.OptionCount {
			distribution[answer.Option]++
		}
	}

	return &RoundResults{
		Distribution:  distribution,
		CorrectAnswer: question.CorrectIndex,
		TotalPlayers:  len(s.players),
		AnsweredCount: len(s.answers),
	}
}

func (s *SessionService) joinOrderLocked() map[string]int {
	order := make(map[string]int, len(s.players))
	for id, p := range s.players {
		order[id] = p.JoinOrder
	}
	return order
}

func (s *SessionService) leaderboardLocked() []models.LeaderboardEntry {
	rankings := Rankings(s.scores, s.joinOrderLocked())
	changes := RankChanges(rankings, s.prevRanks)

	limit := len(changes)
	if limit > 10 {
		limit = 10
	}

	entries := make([]models.LeaderboardEntry, 0, limit)
	for _, change := range changes[:limit] {
		name := "Unknown"
		if p, ok := s.players[change.PlayerID]; ok {
			name = p.Name
		}
		entries = append(entries, models.LeaderboardEntry{
			Name:   name,
			Score:  change.Score,
			Rank:   change.Rank,
			Change: change.Change,
		})
	}
	return entries
}

func (s *SessionService) saveRankingsLocked() {
	rankings := Rankings(s.scores, s.joinOrderLocked())
	s.prevRanks = make(map[string]int, len(rankings))
	for _, r := range rankings {
		s.prevRanks[r.PlayerID] = r.Rank
	}
}
