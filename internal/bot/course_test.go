package bot

import (
	"strconv"
	"testing"

	mock_bot "github.com/dataanalyse/financial-goals-planner/internal/bot/mock"
	"github.com/dataanalyse/financial-goals-planner/internal/config"
	"github.com/dataanalyse/financial-goals-planner/internal/course"
	"github.com/dataanalyse/financial-goals-planner/internal/engine"
	"github.com/dataanalyse/financial-goals-planner/internal/models"
	"github.com/dataanalyse/financial-goals-planner/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourseTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockCourseSI)) *CourseT {
	t.Helper()

	mockService := mock_bot.NewMockCourseSI(ctrl)
	if setupMock != nil {
		setupMock(mockService)
	}

	cfg := config.CourseConfig{
		MaxLives:        3,
		MinPassingScore: 3,
	}

	return NewCourseTAPI(&mock_bot.MockBot{}, cache.NewCache(), mockService, cfg)
}

func lastMessage(t *testing.T, mb *mock_bot.MockBot) tgbotapi.MessageConfig {
	t.Helper()

	require.NotEmpty(t, mb.SentMessages)
	msg, ok := mb.SentMessages[len(mb.SentMessages)-1].(tgbotapi.MessageConfig)
	require.True(t, ok)
	return msg
}

func TestCourseT_sendCourseMenu(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	courseT := newCourseTMock(t, ctrl, nil)
	mb := courseT.bot.(*mock_bot.MockBot)

	courseT.sendCourseMenu(&tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}})

	msg := lastMessage(t, mb)
	assert.Contains(t, msg.Text, "Money Skills Course")

	keyboard, ok := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)

	var weekButtons int
	for _, row := range keyboard.InlineKeyboard {
		weekButtons += len(row)
	}
	assert.Equal(t, course.Total(), weekButtons)
}

func TestCourseT_startWeek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		weekNumber  int
		f           func(*mock_bot.MockCourseSI)
		wantText    string
		wantSession bool
	}{
		{
			name:       "success: fresh week",
			weekNumber: 1,
			f: func(ms *mock_bot.MockCourseSI) {
				ms.EXPECT().WeekProgress(gomock.Any(), int64(456), 1).Return(models.WeekProgress{}, nil)
			},
			wantText:    "Week 1",
			wantSession: true,
		},
		{
			name:       "success: resumed week shows saved stages",
			weekNumber: 2,
			f: func(ms *mock_bot.MockCourseSI) {
				ms.EXPECT().WeekProgress(gomock.Any(), int64(456), 2).
					Return(models.WeekProgress{Lesson: true, Activity: true}, nil)
			},
			wantText:    "✅ Lesson",
			wantSession: true,
		},
		{
			name:       "error: unknown week",
			weekNumber: 42,
			wantText:   "That week doesn't exist",
		},
		{
			name:       "error: progress load fails",
			weekNumber: 1,
			f: func(ms *mock_bot.MockCourseSI) {
				ms.EXPECT().WeekProgress(gomock.Any(), int64(456), 1).
					Return(models.WeekProgress{}, assert.AnError)
			},
			wantText: "Couldn't load the week",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			courseT := newCourseTMock(t, ctrl, tt.f)
			mb := courseT.bot.(*mock_bot.MockBot)

			courseT.startWeek(123, 456, tt.weekNumber)

			msg := lastMessage(t, mb)
			assert.Contains(t, msg.Text, tt.wantText)

			_, exists := courseT.cache.Week(456)
			assert.Equal(t, tt.wantSession, exists)
		})
	}
}

func TestCourseT_lessonFlow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	courseT := newCourseTMock(t, ctrl, func(ms *mock_bot.MockCourseSI) {
		ms.EXPECT().WeekProgress(gomock.Any(), int64(456), 1).Return(models.WeekProgress{}, nil)
		ms.EXPECT().MarkStage(gomock.Any(), int64(456), 1, engine.StageLesson).
			Return(models.WeekProgress{Lesson: true}, nil)
	})
	mb := courseT.bot.(*mock_bot.MockBot)

	courseT.startWeek(123, 456, 1)

	session, exists := courseT.cache.Week(456)
	require.True(t, exists)

	courseT.showLesson(123, session)
	msg := lastMessage(t, mb)
	assert.Contains(t, msg.Text, "(1/"+strconv.Itoa(session.Lesson.Total())+")")

	// step through every section; the last advance completes the lesson
	for i := 0; i < session.Lesson.Total(); i++ {
		courseT.lessonNext(123, 456, session)
	}

	msg = lastMessage(t, mb)
	assert.Contains(t, msg.Text, "Lesson complete")
	assert.True(t, session.Progression.Completed(engine.StageLesson))
}

func TestCourseT_orderingActivity(t *testing.T) {
	t.Parallel()

	t.Run("correct order completes the stage", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		courseT := newCourseTMock(t, ctrl, func(ms *mock_bot.MockCourseSI) {
			ms.EXPECT().WeekProgress(gomock.Any(), int64(456), 1).Return(models.WeekProgress{}, nil)
			ms.EXPECT().MarkStage(gomock.Any(), int64(456), 1, engine.StageActivity).
				Return(models.WeekProgress{Activity: true}, nil)
		})
		mb := courseT.bot.(*mock_bot.MockBot)

		courseT.startWeek(123, 456, 1)
		session, _ := courseT.cache.Week(456)

		ordering := session.Activity.(*engine.Ordering)

		// remaining stays in correct order, so slot 0 is always right
		for !ordering.Done() {
			courseT.handlePlace(123, 456, session, "0")
		}

		msg := lastMessage(t, mb)
		assert.Contains(t, msg.Text, "Activity complete")
		assert.True(t, session.Progression.Completed(engine.StageActivity))
	})

	t.Run("wrong order resets the board", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		courseT := newCourseTMock(t, ctrl, func(ms *mock_bot.MockCourseSI) {
			ms.EXPECT().WeekProgress(gomock.Any(), int64(456), 1).Return(models.WeekProgress{}, nil)
		})
		mb := courseT.bot.(*mock_bot.MockBot)

		courseT.startWeek(123, 456, 1)
		session, _ := courseT.cache.Week(456)

		ordering := session.Activity.(*engine.Ordering)
		total := len(ordering.Remaining())

		// fill every slot with the last remaining item: wrong order,
		// so the final placement trips the reset
		for i := 0; i < total; i++ {
			courseT.handlePlace(123, 456, session, strconv.Itoa(len(ordering.Remaining())-1))
		}

		assert.False(t, session.Progression.Completed(engine.StageActivity))
		assert.Len(t, ordering.Remaining(), total)

		var sawRetry bool
		for _, sent := range mb.SentMessages {
			if msg, ok := sent.(tgbotapi.MessageConfig); ok && msg.Text == "🙈 Not the right order. Let's try again from the top!" {
				sawRetry = true
			}
		}
		assert.True(t, sawRetry)
	})
}

func TestCourseT_matchingActivity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	courseT := newCourseTMock(t, ctrl, func(ms *mock_bot.MockCourseSI) {
		ms.EXPECT().WeekProgress(gomock.Any(), int64(456), 2).Return(models.WeekProgress{}, nil)
		ms.EXPECT().MarkStage(gomock.Any(), int64(456), 2, engine.StageActivity).
			Return(models.WeekProgress{Activity: true}, nil)
	})
	courseT.startWeek(123, 456, 2)

	session, _ := courseT.cache.Week(456)
	matching := session.Activity.(*engine.Matching)
	options := session.Week.Activity.Options()

	for !matching.Done() {
		key := matching.Unmatched()[0]
		want := matching.ValueFor(key)
		for j, option := range options {
			if option == want {
				courseT.handleMatch(123, 456, session, strconv.Itoa(j))
				break
			}
		}
	}

	assert.True(t, session.Progression.Completed(engine.StageActivity))
}

func TestCourseT_quizFlow(t *testing.T) {
	t.Parallel()

	t.Run("perfect run passes and schedules the badge", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		courseT := newCourseTMock(t, ctrl, func(ms *mock_bot.MockCourseSI) {
			ms.EXPECT().WeekProgress(gomock.Any(), int64(456), 1).Return(models.WeekProgress{}, nil)
			ms.EXPECT().CompleteQuiz(gomock.Any(), int64(456), 1, 4, 4, true).Return(nil)
			ms.EXPECT().AwardBadge(gomock.Any(), int64(456), 1, "Money Explorer").Return(nil)
		})
		mb := courseT.bot.(*mock_bot.MockBot)

		courseT.startWeek(123, 456, 1)
		session, _ := courseT.cache.Week(456)

		courseT.startQuiz(123, 456, session)
		require.NotNil(t, session.Quiz)

		for session.Quiz.State() != engine.StateComplete {
			correct := session.Quiz.Current().Correct
			courseT.handleAnswer(123, session, strconv.Itoa(correct))
			courseT.quizNext(123, session)
		}

		assert.True(t, session.Quiz.Passed())
		assert.True(t, session.Progression.Completed(engine.StageQuiz))

		// badge ceremony and explicit confirmation
		courseT.showBadge(123, session)
		msg := lastMessage(t, mb)
		assert.Contains(t, msg.Text, "Money Explorer")

		courseT.confirmBadge(123, session)

		// a second confirmation must not award twice
		courseT.confirmBadge(123, session)
	})

	t.Run("running out of lives fails and offers a retry", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		courseT := newCourseTMock(t, ctrl, func(ms *mock_bot.MockCourseSI) {
			ms.EXPECT().WeekProgress(gomock.Any(), int64(456), 1).Return(models.WeekProgress{}, nil)
			ms.EXPECT().CompleteQuiz(gomock.Any(), int64(456), 1, 0, 4, false).Return(nil)
		})
		mb := courseT.bot.(*mock_bot.MockBot)

		courseT.startWeek(123, 456, 1)
		session, _ := courseT.cache.Week(456)

		courseT.startQuiz(123, 456, session)

		for session.Quiz.State() != engine.StateComplete {
			wrong := (session.Quiz.Current().Correct + 1) % len(session.Quiz.Current().Options)
			courseT.handleAnswer(123, session, strconv.Itoa(wrong))
			courseT.quizNext(123, session)
		}

		assert.False(t, session.Quiz.Passed())
		assert.False(t, session.Progression.Completed(engine.StageQuiz))

		msg := lastMessage(t, mb)
		assert.Contains(t, msg.Text, "Out of lives")

		// retry rewinds to a fresh first question
		courseT.quizRetry(123, session)
		assert.Equal(t, engine.StateAnswering, session.Quiz.State())
		assert.Equal(t, 0, session.Quiz.Index())
		assert.Equal(t, 3, session.Quiz.Lives())
	})

	t.Run("badge stays locked until the quiz is passed", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		courseT := newCourseTMock(t, ctrl, func(ms *mock_bot.MockCourseSI) {
			ms.EXPECT().WeekProgress(gomock.Any(), int64(456), 1).Return(models.WeekProgress{}, nil)
		})
		mb := courseT.bot.(*mock_bot.MockBot)

		courseT.startWeek(123, 456, 1)
		session, _ := courseT.cache.Week(456)

		courseT.showBadge(123, session)

		msg := lastMessage(t, mb)
		assert.Contains(t, msg.Text, "Pass the quiz first")
	})
}
