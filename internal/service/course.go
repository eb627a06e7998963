package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dataanalyse/financial-goals-planner/internal/course"
	"github.com/dataanalyse/financial-goals-planner/internal/engine"
	"github.com/dataanalyse/financial-goals-planner/internal/models"
	"go.uber.org/zap"
)

type CourseS struct {
	repo ProgressRI
	log  *zap.Logger
}

func NewCourseService(repo ProgressRI, log *zap.Logger) *CourseS {
	return &CourseS{
		repo: repo,
		log:  log,
	}
}

// WeekProgress is the read-once-at-init load for a week session. Absent
// records come back as all-false flags.
func (c *CourseS) WeekProgress(ctx context.Context, userID int64, week int) (models.WeekProgress, error) {
	progress, err := c.repo.WeekProgress(ctx, userID, week)
	if err != nil {
		c.log.Warn("failed to load week progress", zap.Int64("user_id", userID), zap.Int("week", week), zap.Error(err))
		return models.WeekProgress{}, err
	}
	return progress, nil
}

// MarkStage flips one stage flag to true and persists the merged record.
// Flags are monotonic: marking an already complete stage is a no-op write.
func (c *CourseS) MarkStage(ctx context.Context, userID int64, week int, stage engine.Stage) (models.WeekProgress, error) {
	progress, err := c.repo.WeekProgress(ctx, userID, week)
	if err != nil {
		return models.WeekProgress{}, err
	}

	var update models.WeekProgress
	switch stage {
	case engine.StageLesson:
		update.Lesson = true
	case engine.StageActivity:
		update.Activity = true
	case engine.StageQuiz:
		update.Quiz = true
	case engine.StageBadge:
		update.Badge = true
	default:
		return models.WeekProgress{}, fmt.Errorf("stage %q is not completable", stage)
	}

	progress = progress.Merge(update)

	if err := c.repo.SaveWeekProgress(ctx, userID, week, progress); err != nil {
		c.log.Warn("failed to save week progress", zap.Int64("user_id", userID), zap.Int("week", week), zap.Error(err))
		return models.WeekProgress{}, err
	}

	return progress, nil
}

// CompleteQuiz logs the attempt and, on a pass, marks the quiz stage.
// A failed attempt is a normal outcome: recorded, nothing marked.
func (c *CourseS) CompleteQuiz(ctx context.Context, userID int64, week, score, total int, passed bool) error {
	err := c.repo.AddQuizResult(ctx, models.QuizResult{
		UserID:     userID,
		WeekNumber: week,
		Score:      score,
		Total:      total,
		Passed:     passed,
	})
	if err != nil {
		c.log.Warn("failed to record quiz attempt", zap.Int64("user_id", userID), zap.Int("week", week), zap.Error(err))
	}

	if !passed {
		return nil
	}

	if _, err := c.MarkStage(ctx, userID, week, engine.StageQuiz); err != nil {
		return err
	}

	return nil
}

// AwardBadge is the week's externally observable completion: the badge
// flag is marked and the award recorded (idempotently at the store).
func (c *CourseS) AwardBadge(ctx context.Context, userID int64, week int, badge string) error {
	if _, err := c.MarkStage(ctx, userID, week, engine.StageBadge); err != nil {
		return err
	}

	err := c.repo.AwardBadge(ctx, models.BadgeAward{
		UserID:     userID,
		WeekNumber: week,
		Badge:      badge,
	})
	if err != nil {
		c.log.Warn("failed to record badge award", zap.Int64("user_id", userID), zap.Int("week", week), zap.Error(err))
		return err
	}

	c.log.Info("badge awarded", zap.Int64("user_id", userID), zap.Int("week", week), zap.String("badge", badge))

	return nil
}

func (c *CourseS) QuizStats(ctx context.Context, userID int64) (string, error) {
	stats, err := c.repo.QuizStats(ctx, userID)
	if err != nil {
		c.log.Warn("failed to get quiz stats", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}

	return quizStatsFormat(stats), nil
}

// Overview renders the whole course state for one user: every week with
// its step count and the badges already earned.
func (c *CourseS) Overview(ctx context.Context, userID int64) (string, error) {
	awards, err := c.repo.Badges(ctx, userID)
	if err != nil {
		c.log.Warn("failed to get badges", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}

	earned := make(map[int]string, len(awards))
	for _, award := range awards {
		earned[award.WeekNumber] = award.Badge
	}

	var sb strings.Builder
	sb.WriteString("📚 *Your Course Progress*\n\n")

	for _, week := range course.Weeks() {
		progress, err := c.repo.WeekProgress(ctx, userID, week.Number)
		if err != nil {
			return "", err
		}

		sb.WriteString(fmt.Sprintf("Week %d: %s — %d/4", week.Number, week.Title, progress.StepsDone()))
		if badge, ok := earned[week.Number]; ok {
			sb.WriteString(" 🏆 " + badge)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n🏅 Badges earned: %d of %d", len(awards), course.Total()))

	return sb.String(), nil
}

func quizStatsFormat(stats models.QuizStats) string {
	var sb strings.Builder

	sb.WriteString("🧠 *Quiz attempts*: **")
	sb.WriteString(strconv.Itoa(stats.TotalCount))
	sb.WriteString("**\n\n")

	sb.WriteString("✅ *Passed*: **")
	sb.WriteString(strconv.Itoa(stats.PassedCount))
	sb.WriteString("**\n\n")

	sb.WriteString("❌ *Failed*: **")
	sb.WriteString(strconv.Itoa(stats.FailedCount))
	sb.WriteString("**")

	return sb.String()
}
