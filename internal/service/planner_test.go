package service

import (
	"testing"

	"github.com/dataanalyse/financial-goals-planner/internal/engine"
	"github.com/dataanalyse/financial-goals-planner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPlannerS_Retirement(t *testing.T) {
	t.Parallel()

	planner := NewPlannerService(zap.NewNop())

	tests := []struct {
		name     string
		plan     models.RetirementPlan
		wantRate float64
		wantErr  bool
	}{
		{
			name: "success: blended rate from a 60/40 split",
			plan: models.RetirementPlan{
				GoalAmount:          500000,
				StartingBalance:     1000,
				MonthlyContribution: 200,
				TimeHorizonYears:    30,
				StockAllocation:     60,
				BondAllocation:      40,
			},
			wantRate: 0.6*stockAnnualReturn + 0.4*bondAnnualReturn,
		},
		{
			name: "success: all stocks",
			plan: models.RetirementPlan{
				StartingBalance:     5000,
				MonthlyContribution: 100,
				TimeHorizonYears:    10,
				StockAllocation:     100,
				BondAllocation:      0,
			},
			wantRate: stockAnnualReturn,
		},
		{
			name: "error: allocations do not sum to 100",
			plan: models.RetirementPlan{
				StartingBalance:     1000,
				MonthlyContribution: 100,
				TimeHorizonYears:    10,
				StockAllocation:     50,
				BondAllocation:      40,
			},
			wantErr: true,
		},
		{
			name: "error: zero horizon",
			plan: models.RetirementPlan{
				StartingBalance: 1000,
				StockAllocation: 60,
				BondAllocation:  40,
			},
			wantErr: true,
		},
		{
			name: "error: negative contribution",
			plan: models.RetirementPlan{
				StartingBalance:     1000,
				MonthlyContribution: -5,
				TimeHorizonYears:    10,
				StockAllocation:     60,
				BondAllocation:      40,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := planner.Retirement(tt.plan)
			if tt.wantErr {
				require.ErrorIs(t, err, engine.ErrInvalidInput)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantRate, got.BlendedRate, 1e-12)
			assert.Len(t, got.Projection.Points, tt.plan.TimeHorizonYears*monthsPerYear+1)
			assert.Greater(t, got.Projection.FinalBalance, tt.plan.StartingBalance)
		})
	}
}

func TestPlannerS_Home(t *testing.T) {
	t.Parallel()

	planner := NewPlannerService(zap.NewNop())

	tests := []struct {
		name       string
		plan       models.HomePurchasePlan
		wantGoal   float64
		wantMonths int
		wantErr    bool
	}{
		{
			name: "success: 20% down on 300k, saving 500 a month",
			plan: models.HomePurchasePlan{
				HomePrice:          300000,
				DownPaymentPercent: 20,
				CurrentSavings:     19000,
				MonthlySavings:     500,
			},
			wantGoal:   60000,
			wantMonths: 82,
		},
		{
			name: "success: already funded",
			plan: models.HomePurchasePlan{
				HomePrice:          200000,
				DownPaymentPercent: 10,
				CurrentSavings:     25000,
				MonthlySavings:     100,
			},
			wantGoal:   20000,
			wantMonths: 0,
		},
		{
			name: "success: no savings rate means never",
			plan: models.HomePurchasePlan{
				HomePrice:          200000,
				DownPaymentPercent: 10,
				CurrentSavings:     5000,
				MonthlySavings:     0,
			},
			wantGoal:   20000,
			wantMonths: engine.GoalNotReached,
		},
		{
			name: "error: zero price",
			plan: models.HomePurchasePlan{
				DownPaymentPercent: 20,
				MonthlySavings:     500,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := planner.Home(tt.plan)
			if tt.wantErr {
				require.ErrorIs(t, err, engine.ErrInvalidInput)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantGoal, got.DownPaymentGoal, 1e-9)
			assert.Equal(t, tt.wantMonths, got.MonthsToGoal)
		})
	}
}

func TestPlannerS_Emergency(t *testing.T) {
	t.Parallel()

	planner := NewPlannerService(zap.NewNop())

	tests := []struct {
		name       string
		plan       models.EmergencyFundPlan
		wantGoal   float64
		wantMonths int
		wantErr    bool
	}{
		{
			name: "success: six months of cover",
			plan: models.EmergencyFundPlan{
				MonthlyExpenses: 2000,
				MonthsOfCover:   6,
				CurrentFund:     3000,
				MonthlySavings:  300,
			},
			wantGoal:   12000,
			wantMonths: 30,
		},
		{
			name: "success: fully stocked",
			plan: models.EmergencyFundPlan{
				MonthlyExpenses: 1000,
				MonthsOfCover:   3,
				CurrentFund:     5000,
				MonthlySavings:  100,
			},
			wantGoal:   3000,
			wantMonths: 0,
		},
		{
			name: "error: zero expenses",
			plan: models.EmergencyFundPlan{
				MonthsOfCover:  6,
				MonthlySavings: 100,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := planner.Emergency(tt.plan)
			if tt.wantErr {
				require.ErrorIs(t, err, engine.ErrInvalidInput)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantGoal, got.FundGoal, 1e-9)
			assert.Equal(t, tt.wantMonths, got.MonthsToGoal)
		})
	}
}

func TestRetirementOutlook_Summary(t *testing.T) {
	t.Parallel()

	planner := NewPlannerService(zap.NewNop())

	outlook, err := planner.Retirement(models.RetirementPlan{
		GoalAmount:          1000000000,
		StartingBalance:     1000,
		MonthlyContribution: 100,
		TimeHorizonYears:    1,
		StockAllocation:     60,
		BondAllocation:      40,
	})
	require.NoError(t, err)

	summary := outlook.Summary()
	assert.Contains(t, summary, "$1,000")
	assert.Contains(t, summary, "60% stocks / 40% bonds")
	assert.Contains(t, summary, "not reached within the horizon")
}

func TestFormatUSD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{950, "$950"},
		{1000, "$1,000"},
		{60000, "$60,000"},
		{1234567, "$1,234,567"},
		{-2500, "-$2,500"},
		{999.6, "$1,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatUSD(tt.amount))
	}
}

func TestFormatMonths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		months int
		want   string
	}{
		{1, "1 month"},
		{11, "11 months"},
		{12, "1 year"},
		{24, "2 years"},
		{30, "2 years 6 months"},
		{82, "6 years 10 months"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMonths(tt.months))
	}
}
