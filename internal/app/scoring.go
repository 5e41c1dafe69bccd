package app

import (
	"time"

	"bar-trivia-service/internal/domain"
)

const (
	basePoints   = 100
	maxTimeBonus = 50
)

// scoreAnswer computes correctness and the time-weighted award for one
// submission. Correctness is an exact match against the question's answer.
// A correct answer earns 100 points plus a bonus that decays linearly from
// 50 at an instantaneous answer to 0 at or beyond the nominal time limit;
// the bonus never goes negative, so answering late is never penalized.
func scoreAnswer(submitted string, question domain.Question, elapsed time.Duration) (bool, int) {
	if submitted != question.CorrectAnswer {
		return false, 0
	}
	points := basePoints + timeBonus(elapsed.Milliseconds(), question.TimeLimitSeconds)
	return true, points
}

func timeBonus(elapsedMillis int64, limitSeconds int) int {
	if limitSeconds <= 0 {
		return 0
	}
	limitMillis := int64(limitSeconds) * 1000
	bonus := maxTimeBonus * (limitMillis - elapsedMillis) / limitMillis
	if bonus < 0 {
		return 0
	}
	return int(bonus)
}
