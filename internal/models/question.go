package models

import (
	"errors"
	"fmt"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

var ErrInvalidQuestion = errors.New("invalid quiz question")

type QuizQuestion struct {
	Question    string
	Options     []string
	Correct     int
	Explanation string
	Hint        string
	Difficulty  string
}

// Validate checks the invariants every question bank must hold:
// at least two options and a correct index inside the option list.
func (q QuizQuestion) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("%w: empty question text", ErrInvalidQuestion)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: %q needs at least 2 options, got %d", ErrInvalidQuestion, q.Question, len(q.Options))
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("%w: %q correct index %d out of range [0,%d)", ErrInvalidQuestion, q.Question, q.Correct, len(q.Options))
	}
	return nil
}
