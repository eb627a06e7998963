package service

import (
	"fmt"
	"strings"

	"github.com/dataanalyse/financial-goals-planner/internal/engine"
	"github.com/dataanalyse/financial-goals-planner/internal/models"
	"github.com/dataanalyse/financial-goals-planner/pkg/validator"
	"go.uber.org/zap"
)

// Long-run annual return assumptions used for blending a portfolio rate.
const (
	stockAnnualReturn = 0.10
	bondAnnualReturn  = 0.04

	monthsPerYear = 12
)

type RetirementOutlook struct {
	Plan        models.RetirementPlan
	BlendedRate float64
	Projection  engine.Projection
}

type HomeOutlook struct {
	Plan            models.HomePurchasePlan
	DownPaymentGoal float64
	StillNeeded     float64
	MonthsToGoal    int
}

type EmergencyOutlook struct {
	Plan         models.EmergencyFundPlan
	FundGoal     float64
	StillNeeded  float64
	MonthsToGoal int
}

// PlannerS runs the financial projection calculators. It is stateless:
// every call validates its plan and computes from scratch.
type PlannerS struct {
	log *zap.Logger
}

func NewPlannerService(log *zap.Logger) *PlannerS {
	return &PlannerS{
		log: log,
	}
}

// Retirement projects the plan month by month at a rate blended from the
// stock/bond split. Allocations must sum to 100.
func (p *PlannerS) Retirement(plan models.RetirementPlan) (RetirementOutlook, error) {
	if err := validator.ValidateStruct(plan); err != nil {
		return RetirementOutlook{}, fmt.Errorf("%w: %v", engine.ErrInvalidInput, err)
	}

	rate, err := engine.BlendedAnnualRate([]engine.AssetAllocation{
		{Name: "stocks", AnnualRate: stockAnnualReturn, Percent: plan.StockAllocation},
		{Name: "bonds", AnnualRate: bondAnnualReturn, Percent: plan.BondAllocation},
	})
	if err != nil {
		return RetirementOutlook{}, err
	}

	projection, err := engine.Project(engine.ProjectionInput{
		StartingBalance:      plan.StartingBalance,
		PeriodicContribution: plan.MonthlyContribution,
		AnnualReturnRate:     rate,
		HorizonPeriods:       plan.TimeHorizonYears * monthsPerYear,
		PeriodsPerYear:       monthsPerYear,
		GoalAmount:           plan.GoalAmount,
	})
	if err != nil {
		p.log.Warn("retirement projection failed", zap.Error(err))
		return RetirementOutlook{}, err
	}

	return RetirementOutlook{
		Plan:        plan,
		BlendedRate: rate,
		Projection:  projection,
	}, nil
}

// Home computes the down payment target and the flat savings timeline
// to reach it.
func (p *PlannerS) Home(plan models.HomePurchasePlan) (HomeOutlook, error) {
	if err := validator.ValidateStruct(plan); err != nil {
		return HomeOutlook{}, fmt.Errorf("%w: %v", engine.ErrInvalidInput, err)
	}

	goal := plan.HomePrice * plan.DownPaymentPercent / 100

	months, err := engine.MonthsToTarget(goal, plan.CurrentSavings, plan.MonthlySavings)
	if err != nil {
		return HomeOutlook{}, err
	}

	stillNeeded := goal - plan.CurrentSavings
	if stillNeeded < 0 {
		stillNeeded = 0
	}

	return HomeOutlook{
		Plan:            plan,
		DownPaymentGoal: goal,
		StillNeeded:     stillNeeded,
		MonthsToGoal:    months,
	}, nil
}

// Emergency sizes the fund as months-of-cover times monthly expenses and
// computes the flat savings timeline to fill it.
func (p *PlannerS) Emergency(plan models.EmergencyFundPlan) (EmergencyOutlook, error) {
	if err := validator.ValidateStruct(plan); err != nil {
		return EmergencyOutlook{}, fmt.Errorf("%w: %v", engine.ErrInvalidInput, err)
	}

	goal := plan.MonthlyExpenses * float64(plan.MonthsOfCover)

	months, err := engine.MonthsToTarget(goal, plan.CurrentFund, plan.MonthlySavings)
	if err != nil {
		return EmergencyOutlook{}, err
	}

	stillNeeded := goal - plan.CurrentFund
	if stillNeeded < 0 {
		stillNeeded = 0
	}

	return EmergencyOutlook{
		Plan:         plan,
		FundGoal:     goal,
		StillNeeded:  stillNeeded,
		MonthsToGoal: months,
	}, nil
}

// RetirementSummary is the chat-ready rendering of a retirement run.
func (o RetirementOutlook) Summary() string {
	var sb strings.Builder

	sb.WriteString("🏖 *Retirement Outlook*\n\n")
	sb.WriteString(fmt.Sprintf("Starting balance: %s\n", formatUSD(o.Plan.StartingBalance)))
	sb.WriteString(fmt.Sprintf("Monthly contribution: %s\n", formatUSD(o.Plan.MonthlyContribution)))
	sb.WriteString(fmt.Sprintf("Portfolio: %.0f%% stocks / %.0f%% bonds (%.1f%% per year)\n\n",
		o.Plan.StockAllocation, o.Plan.BondAllocation, o.BlendedRate*100))

	sb.WriteString(fmt.Sprintf("After %d years: *%s*\n", o.Plan.TimeHorizonYears, formatUSD(o.Projection.FinalBalance)))

	last := o.Projection.Points[len(o.Projection.Points)-1]
	sb.WriteString(fmt.Sprintf("You put in %s, growth added %s.\n", formatUSD(last.Contributions), formatUSD(last.Growth)))

	if o.Plan.GoalAmount > 0 {
		if at := o.Projection.GoalReachedAt; at == engine.GoalNotReached {
			sb.WriteString(fmt.Sprintf("\nGoal of %s is not reached within the horizon.", formatUSD(o.Plan.GoalAmount)))
		} else {
			sb.WriteString(fmt.Sprintf("\nGoal of %s reached in %s.", formatUSD(o.Plan.GoalAmount), formatMonths(at)))
		}
	}

	return sb.String()
}

func (o HomeOutlook) Summary() string {
	var sb strings.Builder

	sb.WriteString("🏠 *Home Down Payment*\n\n")
	sb.WriteString(fmt.Sprintf("Home price: %s\n", formatUSD(o.Plan.HomePrice)))
	sb.WriteString(fmt.Sprintf("Down payment (%.0f%%): *%s*\n", o.Plan.DownPaymentPercent, formatUSD(o.DownPaymentGoal)))
	sb.WriteString(fmt.Sprintf("Saved so far: %s\n", formatUSD(o.Plan.CurrentSavings)))

	if o.StillNeeded == 0 {
		sb.WriteString("\n🎉 You already have the full down payment!")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Still needed: %s\n", formatUSD(o.StillNeeded)))

	if o.MonthsToGoal == engine.GoalNotReached {
		sb.WriteString("\nAt the current savings rate the goal is never reached. Try saving monthly.")
	} else {
		sb.WriteString(fmt.Sprintf("\nSaving %s a month gets you there in *%s*.",
			formatUSD(o.Plan.MonthlySavings), formatMonths(o.MonthsToGoal)))
	}

	return sb.String()
}

func (o EmergencyOutlook) Summary() string {
	var sb strings.Builder

	sb.WriteString("🚨 *Emergency Fund*\n\n")
	sb.WriteString(fmt.Sprintf("Monthly expenses: %s\n", formatUSD(o.Plan.MonthlyExpenses)))
	sb.WriteString(fmt.Sprintf("Target (%d months of cover): *%s*\n", o.Plan.MonthsOfCover, formatUSD(o.FundGoal)))
	sb.WriteString(fmt.Sprintf("Saved so far: %s\n", formatUSD(o.Plan.CurrentFund)))

	if o.StillNeeded == 0 {
		sb.WriteString("\n🎉 Your emergency fund is fully stocked!")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("Still needed: %s\n", formatUSD(o.StillNeeded)))

	if o.MonthsToGoal == engine.GoalNotReached {
		sb.WriteString("\nAt the current savings rate the fund never fills. Try saving monthly.")
	} else {
		sb.WriteString(fmt.Sprintf("\nSaving %s a month fills it in *%s*.",
			formatUSD(o.Plan.MonthlySavings), formatMonths(o.MonthsToGoal)))
	}

	return sb.String()
}

// formatUSD renders a dollar amount with thousands separators and no
// cents; the calculators speak in whole-dollar estimates.
func formatUSD(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	whole := fmt.Sprintf("%.0f", amount)

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteByte('$')
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}

	return sb.String()
}

func formatMonths(months int) string {
	years := months / monthsPerYear
	rest := months % monthsPerYear

	switch {
	case years == 0:
		return plural(months, "month")
	case rest == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + " " + plural(rest, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
