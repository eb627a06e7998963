package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/dataanalyse/financial-goals-planner/internal/models"
	"github.com/dataanalyse/financial-goals-planner/pkg/validator"
)

// ErrInvalidInput marks malformed caller configuration: negative amounts,
// allocations that do not sum to 100, a non-positive horizon. It is
// returned instead of silently clamping so configuration bugs surface.
var ErrInvalidInput = errors.New("invalid input")

// GoalNotReached is the sentinel period index reported when a goal is
// never crossed within the horizon. It is a normal outcome, not an error.
const GoalNotReached = -1

const allocationEpsilon = 1e-9

type ProjectionInput struct {
	StartingBalance      float64 `validate:"min=0"`
	PeriodicContribution float64 `validate:"min=0"`
	AnnualReturnRate     float64
	HorizonPeriods       int     `validate:"min=1"`
	PeriodsPerYear       int     `validate:"min=1"`
	GoalAmount           float64 `validate:"min=0"`
}

type Projection struct {
	Points        []models.ProjectionPoint
	FinalBalance  float64
	GoalReachedAt int
}

type AssetAllocation struct {
	Name       string
	AnnualRate float64
	Percent    float64 `validate:"min=0,max=100"`
}

// BlendedAnnualRate averages the component annual rates weighted by their
// allocation percentages. The percentages must sum to exactly 100.
func BlendedAnnualRate(parts []AssetAllocation) (float64, error) {
	if len(parts) == 0 {
		return 0, fmt.Errorf("%w: no allocations given", ErrInvalidInput)
	}

	var sum, rate float64
	for _, part := range parts {
		if err := validator.ValidateStruct(part); err != nil {
			return 0, fmt.Errorf("%w: allocation %q: %v", ErrInvalidInput, part.Name, err)
		}
		sum += part.Percent
		rate += part.Percent / 100 * part.AnnualRate
	}

	if math.Abs(sum-100) > allocationEpsilon {
		return 0, fmt.Errorf("%w: allocations sum to %v, want 100", ErrInvalidInput, sum)
	}

	return rate, nil
}

// Project runs the discrete compounding recurrence over the full horizon.
// Period 0 carries the starting balance untouched; each later period adds
// the contribution first and then applies one period of growth:
//
//	balance = (balance + contribution) * (1 + annualRate/periodsPerYear)
//
// Every call recomputes from scratch; no state survives between runs.
func Project(in ProjectionInput) (Projection, error) {
	if err := validator.ValidateStruct(in); err != nil {
		return Projection{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	periodRate := in.AnnualReturnRate / float64(in.PeriodsPerYear)

	out := Projection{
		Points:        make([]models.ProjectionPoint, 0, in.HorizonPeriods+1),
		GoalReachedAt: GoalNotReached,
	}

	balance := in.StartingBalance
	for period := 0; period <= in.HorizonPeriods; period++ {
		if period > 0 {
			balance += in.PeriodicContribution
			balance *= 1 + periodRate
		}

		if out.GoalReachedAt == GoalNotReached && balance >= in.GoalAmount {
			out.GoalReachedAt = period
		}

		contributions := in.StartingBalance + in.PeriodicContribution*float64(period)
		out.Points = append(out.Points, models.ProjectionPoint{
			Period:        period,
			Balance:       balance,
			Contributions: contributions,
			Growth:        balance - contributions,
		})
	}

	out.FinalBalance = balance

	return out, nil
}

// MonthsToTarget is the closed-form savings timeline: how many whole
// periods of saving close the gap between current and target. A zero or
// negative savings rate with a gap left means the goal is unreachable,
// reported via GoalNotReached rather than a division failure.
func MonthsToTarget(target, current, monthlySavings float64) (int, error) {
	if target < 0 || current < 0 {
		return 0, fmt.Errorf("%w: amounts must be non-negative", ErrInvalidInput)
	}

	stillNeeded := math.Max(0, target-current)
	if stillNeeded == 0 {
		return 0, nil
	}
	if monthlySavings <= 0 {
		return GoalNotReached, nil
	}

	return int(math.Ceil(stillNeeded / monthlySavings)), nil
}
