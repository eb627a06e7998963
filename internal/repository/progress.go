package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dataanalyse/financial-goals-planner/internal/models"
)

type ProgressR struct {
	db QueryI
}

func NewProgressRepository(db QueryI) *ProgressR {
	return &ProgressR{
		db: db,
	}
}

// WeekProgress loads the persisted stage flags for one (user, week). A
// missing row is a fresh week: all-false flags, no error.
func (p *ProgressR) WeekProgress(ctx context.Context, userID int64, week int) (models.WeekProgress, error) {
	query := `SELECT lesson, activity, quiz, badge
	FROM week_progress
	WHERE user_id = $1 AND week_number = $2`

	var progress models.WeekProgress
	err := p.db.GetContext(ctx, &progress, query, userID, week)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WeekProgress{}, nil
	}
	if err != nil {
		return models.WeekProgress{}, err
	}

	return progress, nil
}

// SaveWeekProgress upserts the flags after a stage mutation. Flags are
// ored with the stored row so a stale write can never clear a stage.
func (p *ProgressR) SaveWeekProgress(ctx context.Context, userID int64, week int, progress models.WeekProgress) error {
	query := `
        INSERT INTO week_progress (user_id, week_number, lesson, activity, quiz, badge)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id, week_number) DO UPDATE SET
            lesson = week_progress.lesson OR EXCLUDED.lesson,
            activity = week_progress.activity OR EXCLUDED.activity,
            quiz = week_progress.quiz OR EXCLUDED.quiz,
            badge = week_progress.badge OR EXCLUDED.badge
    `

	_, err := p.db.ExecContext(ctx, query, userID, week, progress.Lesson, progress.Activity, progress.Quiz, progress.Badge)
	if err != nil {
		return err
	}

	return nil
}

func (p *ProgressR) AddQuizResult(ctx context.Context, result models.QuizResult) error {
	query := `
        INSERT INTO quiz_results (user_id, week_number, score, total, passed)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err := p.db.ExecContext(ctx, query, result.UserID, result.WeekNumber, result.Score, result.Total, result.Passed)
	if err != nil {
		return err
	}

	return nil
}

func (p *ProgressR) QuizStats(ctx context.Context, userID int64) (models.QuizStats, error) {
	query := `SELECT
		COUNT(*) AS total_count,
		COALESCE(SUM(CASE WHEN passed THEN 1 ELSE 0 END), 0) AS passed_count
	FROM quiz_results
	WHERE user_id = $1`

	var stats models.QuizStats
	err := p.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		return models.QuizStats{}, err
	}

	stats.FailedCount = stats.TotalCount - stats.PassedCount

	return stats, nil
}

// AwardBadge records an earned badge. Re-awarding is a no-op so the
// exactly-once completion event stays idempotent at the store.
func (p *ProgressR) AwardBadge(ctx context.Context, award models.BadgeAward) error {
	query := `
        INSERT INTO badge_awards (user_id, week_number, badge)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, week_number) DO NOTHING
    `

	_, err := p.db.ExecContext(ctx, query, award.UserID, award.WeekNumber, award.Badge)
	if err != nil {
		return err
	}

	return nil
}

func (p *ProgressR) Badges(ctx context.Context, userID int64) ([]models.BadgeAward, error) {
	query := `SELECT user_id, week_number, badge, earned_at
	FROM badge_awards
	WHERE user_id = $1
	ORDER BY week_number`

	var awards []models.BadgeAward
	err := p.db.SelectContext(ctx, &awards, query, userID)
	if err != nil {
		return nil, err
	}

	return awards, nil
}
