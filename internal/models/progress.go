package models

import "time"

// WeekProgress holds the four monotonic stage flags for one course week.
// Flags only ever flip false -> true; a reset is an explicit new record.
type WeekProgress struct {
	Lesson   bool `db:"lesson" json:"lesson"`
	Activity bool `db:"activity" json:"activity"`
	Quiz     bool `db:"quiz" json:"quiz"`
	Badge    bool `db:"badge" json:"badge"`
}

// Merge ors the other record into this one, preserving monotonicity.
func (p WeekProgress) Merge(other WeekProgress) WeekProgress {
	return WeekProgress{
		Lesson:   p.Lesson || other.Lesson,
		Activity: p.Activity || other.Activity,
		Quiz:     p.Quiz || other.Quiz,
		Badge:    p.Badge || other.Badge,
	}
}

func (p WeekProgress) StepsDone() int {
	steps := 0
	for _, done := range []bool{p.Lesson, p.Activity, p.Quiz, p.Badge} {
		if done {
			steps++
		}
	}
	return steps
}

type QuizResult struct {
	UserID     int64     `db:"user_id"`
	WeekNumber int       `db:"week_number"`
	Score      int       `db:"score"`
	Total      int       `db:"total"`
	Passed     bool      `db:"passed"`
	TakenAt    time.Time `db:"taken_at"`
}

type QuizStats struct {
	TotalCount  int `db:"total_count"`
	PassedCount int `db:"passed_count"`
	FailedCount int `db:"failed_count"`
}

type BadgeAward struct {
	UserID     int64     `db:"user_id"`
	WeekNumber int       `db:"week_number"`
	Badge      string    `db:"badge"`
	EarnedAt   time.Time `db:"earned_at"`
}
