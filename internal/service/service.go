package service

import (
	"context"

	"github.com/dataanalyse/financial-goals-planner/internal/models"
	"go.uber.org/zap"
)

type ProgressRI interface {
	WeekProgress(ctx context.Context, userID int64, week int) (models.WeekProgress, error)
	SaveWeekProgress(ctx context.Context, userID int64, week int, progress models.WeekProgress) error
	AddQuizResult(ctx context.Context, result models.QuizResult) error
	QuizStats(ctx context.Context, userID int64) (models.QuizStats, error)
	AwardBadge(ctx context.Context, award models.BadgeAward) error
	Badges(ctx context.Context, userID int64) ([]models.BadgeAward, error)
}

type Service struct {
	*CourseS
	*PlannerS
}

func InitServices(repo ProgressRI, log *zap.Logger) *Service {
	return &Service{
		CourseS:  NewCourseService(repo, log),
		PlannerS: NewPlannerService(log),
	}
}
