package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/dataanalyse/financial-goals-planner/internal/config"
	"github.com/dataanalyse/financial-goals-planner/internal/course"
	"github.com/dataanalyse/financial-goals-planner/internal/engine"
	"github.com/dataanalyse/financial-goals-planner/internal/models"
	"github.com/dataanalyse/financial-goals-planner/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type CourseSI interface {
	WeekProgress(ctx context.Context, userID int64, week int) (models.WeekProgress, error)
	MarkStage(ctx context.Context, userID int64, week int, stage engine.Stage) (models.WeekProgress, error)
	CompleteQuiz(ctx context.Context, userID int64, week, score, total int, passed bool) error
	AwardBadge(ctx context.Context, userID int64, week int, badge string) error
	QuizStats(ctx context.Context, userID int64) (string, error)
	Overview(ctx context.Context, userID int64) (string, error)
}

type CourseT struct {
	bot     BotSender
	cache   *cache.Cache
	service CourseSI
	cfg     config.CourseConfig
}

func NewCourseTAPI(bot BotSender, cache *cache.Cache, service CourseSI, cfg config.CourseConfig) *CourseT {
	return &CourseT{
		bot:     bot,
		cache:   cache,
		service: service,
		cfg:     cfg,
	}
}

func (t *CourseT) sendCourseMenu(message *tgbotapi.Message) {
	var buttons [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	for _, week := range course.Weeks() {
		label := fmt.Sprintf("Week %d: %s", week.Number, week.Title)
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("week_%d", week.Number)))

		if len(row) == 2 {
			buttons = append(buttons, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 2)
		}
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	msg := tgbotapi.NewMessage(message.Chat.ID, "📚 *Money Skills Course*\n\nEight weeks, one badge each. Pick a week:")
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *CourseT) sendOverview(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	ctx, canceled := context.WithTimeout(context.Background(), 10*time.Second)
	defer canceled()

	overview, err := t.service.Overview(ctx, message.From.ID)
	if err != nil {
		log.Printf("failed to get overview for user %d: %v", message.From.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load your progress. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, overview)
	msg.ParseMode = "markdown"

	sendMessage(t.bot, msg)
}

func (t *CourseT) sendQuizStats(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	stats, err := t.service.QuizStats(ctx, message.From.ID)
	if err != nil {
		log.Printf("failed to get quiz stats for user %d: %v", message.From.ID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load quiz stats. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, stats)
	msg.ParseMode = "markdown"

	sendMessage(t.bot, msg)
}

func (t *CourseT) handleCourseCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	userID := query.From.ID
	chatID := query.Message.Chat.ID
	data := query.Data

	if data == "course_menu" {
		t.sendCourseMenu(query.Message)
		return
	}

	if weekStr, ok := strings.CutPrefix(data, "week_"); ok {
		weekNumber, err := strconv.Atoi(weekStr)
		if err != nil {
			log.Printf("Bad week callback data: %s", data)
			return
		}
		t.startWeek(chatID, userID, weekNumber)
		return
	}

	session, exists := t.cache.Week(userID)
	if !exists {
		msg := tgbotapi.NewMessage(chatID, "No active week. Open the course menu with /course")
		sendMessage(t.bot, msg)
		return
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	switch {
	case data == "go_overview":
		session.Progression.Go(engine.StageOverview)
		t.sendWeekOverview(chatID, session)
	case data == "go_lesson":
		session.Progression.Go(engine.StageLesson)
		t.showLesson(chatID, session)
	case data == "go_activity":
		session.Progression.Go(engine.StageActivity)
		t.showActivity(chatID, session)
	case data == "go_quiz":
		session.Progression.Go(engine.StageQuiz)
		t.startQuiz(chatID, userID, session)
	case data == "go_badge":
		session.Progression.Go(engine.StageBadge)
		t.showBadge(chatID, session)

	case data == "lesson_next":
		t.lessonNext(chatID, userID, session)
	case data == "lesson_prev":
		session.Lesson.Prev()
		t.showLesson(chatID, session)

	case strings.HasPrefix(data, "place_"):
		t.handlePlace(chatID, userID, session, strings.TrimPrefix(data, "place_"))
	case strings.HasPrefix(data, "match_"):
		t.handleMatch(chatID, userID, session, strings.TrimPrefix(data, "match_"))
	case data == "act_reset":
		session.Activity.Reset()
		t.showActivity(chatID, session)

	case strings.HasPrefix(data, "ans_"):
		t.handleAnswer(chatID, session, strings.TrimPrefix(data, "ans_"))
	case data == "quiz_hint":
		t.showHint(chatID, session)
	case data == "quiz_next":
		t.quizNext(chatID, session)
	case data == "quiz_retry":
		t.quizRetry(chatID, session)

	case data == "badge_confirm":
		t.confirmBadge(chatID, session)

	default:
		log.Printf("Unknown course callback data: %s from user %d", data, userID)
	}
}

// startWeek loads the persisted stage flags and builds a fresh in-memory
// session around them. Starting a week the user already visited resumes
// the flags but restarts the lesson, activity and quiz from scratch.
func (t *CourseT) startWeek(chatID, userID int64, weekNumber int) {
	week, ok := course.ByNumber(weekNumber)
	if !ok {
		msg := tgbotapi.NewMessage(chatID, "❌ That week doesn't exist.")
		sendMessage(t.bot, msg)
		return
	}

	ctx, canceled := context.WithTimeout(context.Background(), 10*time.Second)
	defer canceled()

	saved, err := t.service.WeekProgress(ctx, userID, weekNumber)
	if err != nil {
		log.Printf("failed to load progress for user %d week %d: %v", userID, weekNumber, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Couldn't load the week. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	activity, err := week.Activity.Build()
	if err != nil {
		log.Printf("failed to build activity for week %d: %v", weekNumber, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Couldn't load the week. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	progression := engine.NewProgression(weekNumber, week.Badge, saved, func(completedWeek int, badge string) {
		awardCtx, awardCanceled := context.WithTimeout(context.Background(), 5*time.Second)
		defer awardCanceled()

		if err := t.service.AwardBadge(awardCtx, userID, completedWeek, badge); err != nil {
			log.Printf("failed to award badge for user %d week %d: %v", userID, completedWeek, err)
		}
	})

	session := &cache.WeekSession{
		Week:        week,
		Progression: progression,
		Lesson:      engine.NewLesson(len(week.Sections)),
		Activity:    activity,
	}

	t.cache.SetWeek(userID, session)

	session.Mu.Lock()
	defer session.Mu.Unlock()
	t.sendWeekOverview(chatID, session)
}

func (t *CourseT) sendWeekOverview(chatID int64, session *cache.WeekSession) {
	week := session.Week
	progression := session.Progression

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 *Week %d: %s*\n\n", week.Number, week.Title))
	sb.WriteString(fmt.Sprintf("🎯 %s\n\n", week.Objective))
	sb.WriteString(stageLine(progression, engine.StageLesson, "Lesson") + "\n")
	sb.WriteString(stageLine(progression, engine.StageActivity, "Activity") + "\n")
	sb.WriteString(stageLine(progression, engine.StageQuiz, "Quiz") + "\n")
	sb.WriteString(stageLine(progression, engine.StageBadge, week.Badge+" badge"))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📖 Lesson", "go_lesson"),
			tgbotapi.NewInlineKeyboardButtonData("🎮 Activity", "go_activity"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧠 Quiz", "go_quiz"),
			tgbotapi.NewInlineKeyboardButtonData("🏅 Badge", "go_badge"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 All weeks", "course_menu"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func stageLine(p *engine.Progression, stage engine.Stage, label string) string {
	if p.Completed(stage) {
		return "✅ " + label
	}
	return "▫️ " + label
}

func (t *CourseT) showLesson(chatID int64, session *cache.WeekSession) {
	lesson := session.Lesson
	section := session.Week.Sections[lesson.Index()]

	text := fmt.Sprintf("%s *%s* (%d/%d)\n\n%s",
		sectionEmoji(section.Kind), section.Title, lesson.Index()+1, lesson.Total(), section.Body)

	var row []tgbotapi.InlineKeyboardButton
	if lesson.Index() > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️", "lesson_prev"))
	}
	nextLabel := "➡️"
	if lesson.Index() == lesson.Total()-1 {
		nextLabel = "✅ Finish lesson"
	}
	row = append(row, tgbotapi.NewInlineKeyboardButtonData(nextLabel, "lesson_next"))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Week overview", "go_overview"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func sectionEmoji(kind course.SectionKind) string {
	switch kind {
	case course.KindStory:
		return "📖"
	case course.KindExample:
		return "🧮"
	case course.KindTip:
		return "💡"
	case course.KindWarning:
		return "⚠️"
	default:
		return "📝"
	}
}

func (t *CourseT) lessonNext(chatID, userID int64, session *cache.WeekSession) {
	if !session.Lesson.Next() {
		t.showLesson(chatID, session)
		return
	}

	if !session.Progression.Completed(engine.StageLesson) {
		session.Progression.CompleteLesson()
		t.markStage(userID, session.Week.Number, engine.StageLesson)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎮 Go to activity", "go_activity"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Week overview", "go_overview"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "📖 Lesson complete! Time to put it into practice.")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *CourseT) markStage(userID int64, week int, stage engine.Stage) {
	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	if _, err := t.service.MarkStage(ctx, userID, week, stage); err != nil {
		log.Printf("failed to mark stage %s for user %d week %d: %v", stage, userID, week, err)
	}
}

func (t *CourseT) showActivity(chatID int64, session *cache.WeekSession) {
	descriptor := session.Week.Activity

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎮 *%s*\n\n%s\n\n", descriptor.Title, descriptor.Intro))

	var buttons [][]tgbotapi.InlineKeyboardButton

	switch activity := session.Activity.(type) {
	case *engine.Ordering:
		if placed := activity.Placed(); len(placed) > 0 {
			sb.WriteString("So far: " + strings.Join(placed, " → ") + "\n\n")
		}
		sb.WriteString("What comes next?")

		for i, item := range activity.Remaining() {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(item, fmt.Sprintf("place_%d", i)),
			))
		}

	case *engine.Matching:
		unmatched := activity.Unmatched()
		if len(unmatched) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("Match: *%s*", unmatched[0]))

		for j, option := range descriptor.Options() {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(option, fmt.Sprintf("match_%d", j)),
			))
		}

	default:
		log.Printf("Unknown activity type for week %d", session.Week.Number)
		return
	}

	buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 Start over", "act_reset"),
	))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *CourseT) handlePlace(chatID, userID int64, session *cache.WeekSession, indexStr string) {
	ordering, ok := session.Activity.(*engine.Ordering)
	if !ok {
		return
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 || index >= len(ordering.Remaining()) {
		log.Printf("Bad place callback data: %s", indexStr)
		return
	}

	if err := ordering.Place(ordering.Remaining()[index]); err != nil {
		log.Printf("failed to place item for user %d: %v", userID, err)
		return
	}

	if !ordering.Done() {
		t.showActivity(chatID, session)
		return
	}

	if ordering.Solved() {
		t.completeActivity(chatID, userID, session)
		return
	}

	ordering.Reset()

	msg := tgbotapi.NewMessage(chatID, "🙈 Not the right order. Let's try again from the top!")
	sendMessage(t.bot, msg)

	t.showActivity(chatID, session)
}

func (t *CourseT) handleMatch(chatID, userID int64, session *cache.WeekSession, indexStr string) {
	matching, ok := session.Activity.(*engine.Matching)
	if !ok {
		return
	}

	unmatched := matching.Unmatched()
	if len(unmatched) == 0 {
		return
	}

	options := session.Week.Activity.Options()

	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 || index >= len(options) {
		log.Printf("Bad match callback data: %s", indexStr)
		return
	}

	matched, err := matching.Match(unmatched[0], options[index])
	if err != nil {
		log.Printf("failed to match for user %d: %v", userID, err)
		return
	}

	if !matched {
		msg := tgbotapi.NewMessage(chatID, "🤔 Not quite — give it another go!")
		sendMessage(t.bot, msg)
		t.showActivity(chatID, session)
		return
	}

	if matching.Done() {
		t.completeActivity(chatID, userID, session)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "✅ Nice match!")
	sendMessage(t.bot, msg)

	t.showActivity(chatID, session)
}

func (t *CourseT) completeActivity(chatID, userID int64, session *cache.WeekSession) {
	if !session.Progression.Completed(engine.StageActivity) {
		session.Progression.CompleteActivity()
		t.markStage(userID, session.Week.Number, engine.StageActivity)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧠 Start the quiz", "go_quiz"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Week overview", "go_overview"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "🎯 Activity complete! Ready to prove what you learned?")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

// startQuiz resumes an attempt still in flight; otherwise it builds a
// fresh session over the week's question bank.
func (t *CourseT) startQuiz(chatID, userID int64, session *cache.WeekSession) {
	if session.Quiz != nil && session.Quiz.State() != engine.StateComplete {
		t.sendQuestion(chatID, session)
		return
	}

	week := session.Week

	quiz, err := engine.NewQuizSession(week.Questions, engine.QuizConfig{
		MinPassingScore: t.cfg.MinPassingScore,
		MaxLives:        t.cfg.MaxLives,
		ShowHints:       true,
		AllowRetry:      true,
		TimeLimit:       t.cfg.QuestionTimeLimit,
	}, func(score int, passed bool) {
		ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
		defer canceled()

		if err := t.service.CompleteQuiz(ctx, userID, week.Number, score, len(week.Questions), passed); err != nil {
			log.Printf("failed to record quiz completion for user %d week %d: %v", userID, week.Number, err)
		}

		session.Progression.CompleteQuiz(passed)
	})
	if err != nil {
		log.Printf("failed to build quiz for week %d: %v", week.Number, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Couldn't start the quiz. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	session.Quiz = quiz

	t.sendQuestion(chatID, session)
}

func (t *CourseT) sendQuestion(chatID int64, session *cache.WeekSession) {
	quiz := session.Quiz
	question := quiz.Current()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("❓ *Question %d of %d*  %s\n\n", quiz.Index()+1, quiz.Total(), hearts(quiz.Lives(), quiz.MaxLives())))
	sb.WriteString(question.Question)
	if limit := quiz.TimeLimit(); limit > 0 {
		sb.WriteString(fmt.Sprintf("\n\n⏱ You have %d seconds!", int(limit.Seconds())))
	}

	var buttons [][]tgbotapi.InlineKeyboardButton
	for i, option := range question.Options {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, fmt.Sprintf("ans_%d", i)),
		))
	}
	if question.Hint != "" {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💡 Hint", "quiz_hint"),
		))
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)

	t.armCountdown(chatID, session)
}

// armCountdown schedules the per-question timeout. The timer identity
// check in the callback discards expirations for questions the user
// already answered.
func (t *CourseT) armCountdown(chatID int64, session *cache.WeekSession) {
	limit := session.Quiz.TimeLimit()
	if limit <= 0 {
		return
	}

	session.CancelTimer()

	var timer *engine.Timer
	timer = engine.After(limit, func() {
		session.Mu.Lock()
		defer session.Mu.Unlock()

		if session.Timer != timer {
			return
		}
		session.Timer = nil

		if session.Quiz == nil || session.Quiz.State() != engine.StateAnswering {
			return
		}

		if err := session.Quiz.Answer(engine.TimeoutAnswer); err != nil {
			log.Printf("failed to submit timeout answer: %v", err)
			return
		}

		t.sendFeedback(chatID, session)
	})
	session.Timer = timer
}

func (t *CourseT) handleAnswer(chatID int64, session *cache.WeekSession, indexStr string) {
	if session.Quiz == nil {
		return
	}

	index, err := strconv.Atoi(indexStr)
	if err != nil {
		log.Printf("Bad answer callback data: %s", indexStr)
		return
	}

	session.CancelTimer()

	if err := session.Quiz.Answer(index); err != nil {
		log.Printf("answer rejected: %v", err)
		return
	}

	t.sendFeedback(chatID, session)
}

func (t *CourseT) sendFeedback(chatID int64, session *cache.WeekSession) {
	quiz := session.Quiz
	question := quiz.Current()

	var sb strings.Builder
	switch {
	case quiz.TimedOut():
		sb.WriteString("⏰ Time's up!")
	case quiz.Correct():
		sb.WriteString("✅ Correct!")
	default:
		sb.WriteString("❌ Not quite.")
	}
	sb.WriteString("\n\n" + question.Explanation)
	sb.WriteString("\n\n" + hearts(quiz.Lives(), quiz.MaxLives()))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Next", "quiz_next"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *CourseT) showHint(chatID int64, session *cache.WeekSession) {
	if session.Quiz == nil {
		return
	}

	hint, err := session.Quiz.ToggleHint()
	if err != nil {
		log.Printf("hint unavailable: %v", err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "💡 "+hint)
	sendMessage(t.bot, msg)
}

func (t *CourseT) quizNext(chatID int64, session *cache.WeekSession) {
	quiz := session.Quiz
	if quiz == nil {
		return
	}

	if err := quiz.Next(); err != nil {
		log.Printf("quiz advance rejected: %v", err)
		return
	}

	if quiz.State() == engine.StateAnswering {
		t.sendQuestion(chatID, session)
		return
	}

	t.sendQuizResults(chatID, session)
}

func (t *CourseT) quizRetry(chatID int64, session *cache.WeekSession) {
	if session.Quiz == nil {
		return
	}

	if err := session.Quiz.Reset(); err != nil {
		log.Printf("quiz retry rejected: %v", err)
		return
	}

	t.sendQuestion(chatID, session)
}

func (t *CourseT) sendQuizResults(chatID int64, session *cache.WeekSession) {
	quiz := session.Quiz
	passed := quiz.Passed()

	var sb strings.Builder
	if passed {
		sb.WriteString(fmt.Sprintf("🎉 *You passed!* %d of %d correct.", quiz.Score(), quiz.Total()))
	} else if quiz.Lives() <= 0 {
		sb.WriteString(fmt.Sprintf("💔 Out of lives. You got %d of %d.", quiz.Score(), quiz.Total()))
	} else {
		sb.WriteString(fmt.Sprintf("😅 Almost! You got %d of %d.", quiz.Score(), quiz.Total()))
	}

	var buttons [][]tgbotapi.InlineKeyboardButton
	if passed {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏅 Claim your badge", "go_badge"),
		))
	} else if quiz.CanRetry() {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Try again", "quiz_retry"),
		))
	}
	buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📋 Week overview", "go_overview"),
	))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)

	if passed && t.cfg.BadgeDelay > 0 {
		t.scheduleBadgeCeremony(chatID, session)
	}
}

// scheduleBadgeCeremony pauses briefly after a pass before rolling out
// the badge, so the results message lands first.
func (t *CourseT) scheduleBadgeCeremony(chatID int64, session *cache.WeekSession) {
	session.CancelTimer()

	var timer *engine.Timer
	timer = engine.After(t.cfg.BadgeDelay, func() {
		session.Mu.Lock()
		defer session.Mu.Unlock()

		if session.Timer != timer {
			return
		}
		session.Timer = nil

		session.Progression.Go(engine.StageBadge)
		t.showBadge(chatID, session)
	})
	session.Timer = timer
}

func (t *CourseT) showBadge(chatID int64, session *cache.WeekSession) {
	if !session.Progression.Completed(engine.StageQuiz) {
		msg := tgbotapi.NewMessage(chatID, "🔒 Pass the quiz first to unlock the badge!")
		sendMessage(t.bot, msg)
		return
	}

	week := session.Week

	text := fmt.Sprintf("🎊 *Week %d complete!*\n\n🏆 You've earned the *%s* badge!", week.Number, week.Badge)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🙌 Claim it!", "badge_confirm"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *CourseT) confirmBadge(chatID int64, session *cache.WeekSession) {
	if !session.Progression.Completed(engine.StageQuiz) {
		return
	}

	session.Progression.ConfirmBadge()

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 Next week", "course_menu"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("🏅 The %s badge is in your collection!", session.Week.Badge))
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func hearts(lives, maxLives int) string {
	if lives < 0 {
		lives = 0
	}
	return strings.Repeat("❤️", lives) + strings.Repeat("🖤", maxLives-lives)
}
