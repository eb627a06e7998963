package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonCourse    = "📚 Course"
	ButtonProgress  = "📊 My Progress"
	ButtonQuizStats = "🧠 Quiz Stats"
	ButtonPlanners  = "🧮 Calculators"
	ButtonMainMenu  = "🏠 Main Menu"
	ButtonBack      = "⏪ Back"
	ButtonHelp      = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "course":
		t.course.sendCourseMenu(message)
	case "progress":
		t.course.sendOverview(message)
	case "retirement":
		t.planner.handleRetirement(message)
	case "home":
		t.planner.handleHome(message)
	case "emergency":
		t.planner.handleEmergency(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Try /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "👋 Hi! I'm your money skills coach!\n\n" +
		"✨ What I can do:\n" +
		"• 📚 Walk you through an 8-week money course\n" +
		"• 🎮 Run hands-on activities and quizzes\n" +
		"• 🏆 Award badges as you finish each week\n" +
		"• 🧮 Project your savings, home and retirement goals\n\n" +
		"Tap a button below to begin!"

	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Main menu:")
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonCourse),
			tgbotapi.NewKeyboardButton(ButtonPlanners),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonProgress),
			tgbotapi.NewKeyboardButton(ButtonQuizStats),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Available commands:
/start — launch the bot
/course — open the course menu
/progress — your course progress
/retirement — retirement projection
/home — home down payment timeline
/emergency — emergency fund timeline
/help — this message

🎯 Use the buttons:
• "Course" — pick a week, read the lesson, play the activity, take the quiz
• "Calculators" — financial goal projections
• "My Progress" — weeks finished and badges earned
• "Quiz Stats" — your quiz attempt record
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	text := message.Text

	switch {
	case text == ButtonCourse:
		t.course.sendCourseMenu(message)
	case text == ButtonProgress:
		t.course.sendOverview(message)
	case text == ButtonQuizStats:
		t.course.sendQuizStats(message)
	case text == ButtonPlanners:
		t.planner.sendPlannerMenu(message)
	case text == ButtonMainMenu || text == ButtonBack:
		t.showMainMenu(message)
	case text == ButtonHelp:
		t.handleHelpCommand(message)

	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I didn't get that. Use the buttons below.")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	data := query.Data

	switch {
	case data == "course_menu" ||
		strings.HasPrefix(data, "week_") ||
		strings.HasPrefix(data, "go_") ||
		strings.HasPrefix(data, "lesson_") ||
		strings.HasPrefix(data, "place_") ||
		strings.HasPrefix(data, "match_") ||
		strings.HasPrefix(data, "act_") ||
		strings.HasPrefix(data, "ans_") ||
		strings.HasPrefix(data, "quiz_") ||
		data == "badge_confirm":
		t.course.handleCourseCallbackQuery(query)

	case data == "main_menu":
		t.showMainMenu(query.Message)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}
