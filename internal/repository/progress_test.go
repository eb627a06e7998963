package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dataanalyse/financial-goals-planner/internal/models"
	mock_repository "github.com/dataanalyse/financial-goals-planner/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *ProgressR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &ProgressR{db: db}
}

func TestProgressR_WeekProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.WeekProgress
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().
					GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.WeekProgress) = models.WeekProgress{Lesson: true, Quiz: true}
						return nil
					})
			},
			want: models.WeekProgress{Lesson: true, Quiz: true},
		},
		{
			name: "missing row defaults to all-false",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().
					GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(sql.ErrNoRows)
			},
			want: models.WeekProgress{},
		},
		{
			name: "failed get",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().
					GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("get error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newProgressMock(t, ctrl, tt.f)

			got, err := repo.WeekProgress(context.Background(), 1, 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgressR_SaveWeekProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().
					ExecContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().
					ExecContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newProgressMock(t, ctrl, tt.f)

			err := repo.SaveWeekProgress(context.Background(), 1, 1, models.WeekProgress{Lesson: true})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProgressR_AddQuizResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().
					ExecContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().
					ExecContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newProgressMock(t, ctrl, tt.f)

			err := repo.AddQuizResult(context.Background(), models.QuizResult{UserID: 1, WeekNumber: 1, Score: 3, Total: 4, Passed: true})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProgressR_QuizStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newProgressMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().
			GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
				*dest.(*models.QuizStats) = models.QuizStats{TotalCount: 5, PassedCount: 3}
				return nil
			})
	})

	stats, err := repo.QuizStats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalCount)
	assert.Equal(t, 3, stats.PassedCount)
	assert.Equal(t, 2, stats.FailedCount, "failed count is derived")
}

func TestProgressR_Badges(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newProgressMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().
			SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
				*dest.(*[]models.BadgeAward) = []models.BadgeAward{
					{UserID: 1, WeekNumber: 1, Badge: "Money Explorer"},
				}
				return nil
			})
	})

	awards, err := repo.Badges(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, awards, 1)
	assert.Equal(t, "Money Explorer", awards[0].Badge)
}
