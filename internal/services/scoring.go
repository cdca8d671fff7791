package services

import (
	"sort"

	"quizhost/internal/models"
)

// Scoring constants, Kahoot-style: answering instantly is worth MaxPoints,
// answering at or after MaxAnswerSeconds is worth the floor.
const (
	MaxPoints        = 1000
	MinCorrectPoints = 500
	MaxAnswerSeconds = 20.0
)

// Score computes the points awarded for an answer. Incorrect answers are
// always worth 0. Correct answers decay linearly with elapsed time, clamped
// to [MinCorrectPoints, MaxPoints].
func Score(elapsedSeconds float64, correct bool) int {
	if !correct {
		return 0
	}

	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	if elapsedSeconds > MaxAnswerSeconds {
		elapsedSeconds = MaxAnswerSeconds
	}

	timeFactor := 1 - (elapsedSeconds/MaxAnswerSeconds)/2
	points := int(MaxPoints * timeFactor)

	if points < MinCorrectPoints {
		points = MinCorrectPoints
	}
	return points
}

// Rankings orders a score table into 1-based ranks, highest score first.
// Ties are broken by join order (earlier joiner ranks higher), which keeps
// the ordering deterministic across calls.
func Rankings(scores map[string]int, joinOrder map[string]int) []models.Ranking {
	rankings := make([]models.Ranking, 0, len(scores))
	for playerID, score := range scores {
		rankings = append(rankings, models.Ranking{PlayerID: playerID, Score: score})
	}

	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].Score != rankings[j].Score {
			return rankings[i].Score > rankings[j].Score
		}
		return joinOrder[rankings[i].PlayerID] < joinOrder[rankings[j].PlayerID]
	})

	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings
}

// RankChanges annotates current rankings with movement since a previous
// snapshot. A player absent from the snapshot is treated as unchanged.
func RankChanges(current []models.Ranking, previous map[string]int) []models.RankChange {
	changes := make([]models.RankChange, 0, len(current))
	for _, r := range current {
		previousRank, ok := previous[r.PlayerID]
		if !ok {
			previousRank = r.Rank
		}
		changes = append(changes, models.RankChange{
			PlayerID: r.PlayerID,
			Score:    r.Score,
			Rank:     r.Rank,
			Change:   previousRank - r.Rank, // positive = moved up
		})
	}
	return changes
}
