package bot

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/dataanalyse/financial-goals-planner/internal/models"
	"github.com/dataanalyse/financial-goals-planner/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type PlannerSI interface {
	Retirement(plan models.RetirementPlan) (service.RetirementOutlook, error)
	Home(plan models.HomePurchasePlan) (service.HomeOutlook, error)
	Emergency(plan models.EmergencyFundPlan) (service.EmergencyOutlook, error)
}

type PlannerT struct {
	bot     BotSender
	service PlannerSI
}

func NewPlannerTAPI(bot BotSender, service PlannerSI) *PlannerT {
	return &PlannerT{
		bot:     bot,
		service: service,
	}
}

const plannerMenuText = `🧮 *Financial Calculators*

/retirement goal start monthly years stocks% bonds%
Project your savings with compound growth.
Example: /retirement 500000 1000 200 40 70 30

/home price down% saved monthly
How long until your down payment?
Example: /home 300000 20 5000 400

/emergency expenses months saved monthly
How long until your safety net is ready?
Example: /emergency 1500 3 0 150

Run a command with no numbers to see a sample plan.`

func (t *PlannerT) sendPlannerMenu(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, plannerMenuText)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *PlannerT) handleRetirement(message *tgbotapi.Message) {
	plan := models.RetirementPlan{
		GoalAmount:          500000,
		StartingBalance:     1000,
		MonthlyContribution: 200,
		TimeHorizonYears:    40,
		StockAllocation:     70,
		BondAllocation:      30,
	}

	args := fields(message)
	if len(args) > 0 {
		values, err := parseAmounts(args, 6)
		if err != nil {
			t.sendUsage(message.Chat.ID, "/retirement goal start monthly years stocks% bonds%\nExample: /retirement 500000 1000 200 40 70 30")
			return
		}
		plan = models.RetirementPlan{
			GoalAmount:          values[0],
			StartingBalance:     values[1],
			MonthlyContribution: values[2],
			TimeHorizonYears:    int(values[3]),
			StockAllocation:     values[4],
			BondAllocation:      values[5],
		}
	}

	outlook, err := t.service.Retirement(plan)
	if err != nil {
		log.Printf("retirement plan rejected for chat %d: %v", message.Chat.ID, err)
		t.sendUsage(message.Chat.ID, "Check your numbers: amounts can't be negative and stocks% + bonds% must equal 100.")
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, outlook.Summary())
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *PlannerT) handleHome(message *tgbotapi.Message) {
	plan := models.HomePurchasePlan{
		HomePrice:          300000,
		DownPaymentPercent: 20,
		CurrentSavings:     5000,
		MonthlySavings:     400,
	}

	args := fields(message)
	if len(args) > 0 {
		values, err := parseAmounts(args, 4)
		if err != nil {
			t.sendUsage(message.Chat.ID, "/home price down% saved monthly\nExample: /home 300000 20 5000 400")
			return
		}
		plan = models.HomePurchasePlan{
			HomePrice:          values[0],
			DownPaymentPercent: values[1],
			CurrentSavings:     values[2],
			MonthlySavings:     values[3],
		}
	}

	outlook, err := t.service.Home(plan)
	if err != nil {
		log.Printf("home plan rejected for chat %d: %v", message.Chat.ID, err)
		t.sendUsage(message.Chat.ID, "Check your numbers: the price must be positive and down% between 0 and 100.")
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, outlook.Summary())
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *PlannerT) handleEmergency(message *tgbotapi.Message) {
	plan := models.EmergencyFundPlan{
		MonthlyExpenses: 1500,
		MonthsOfCover:   3,
		CurrentFund:     0,
		MonthlySavings:  150,
	}

	args := fields(message)
	if len(args) > 0 {
		values, err := parseAmounts(args, 4)
		if err != nil {
			t.sendUsage(message.Chat.ID, "/emergency expenses months saved monthly\nExample: /emergency 1500 3 0 150")
			return
		}
		plan = models.EmergencyFundPlan{
			MonthlyExpenses: values[0],
			MonthsOfCover:   int(values[1]),
			CurrentFund:     values[2],
			MonthlySavings:  values[3],
		}
	}

	outlook, err := t.service.Emergency(plan)
	if err != nil {
		log.Printf("emergency plan rejected for chat %d: %v", message.Chat.ID, err)
		t.sendUsage(message.Chat.ID, "Check your numbers: expenses must be positive and months at least 1.")
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, outlook.Summary())
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *PlannerT) sendUsage(chatID int64, usage string) {
	msg := tgbotapi.NewMessage(chatID, "🤔 "+usage)
	sendMessage(t.bot, msg)
}

func fields(message *tgbotapi.Message) []string {
	return strings.Fields(message.CommandArguments())
}

// parseAmounts reads exactly want numbers, tolerating $ and commas.
func parseAmounts(args []string, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("want %d numbers, got %d", want, len(args))
	}

	values := make([]float64, 0, want)
	for _, arg := range args {
		cleaned := strings.NewReplacer("$", "", ",", "", "%", "").Replace(arg)
		value, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", arg, err)
		}
		values = append(values, value)
	}

	return values, nil
}
