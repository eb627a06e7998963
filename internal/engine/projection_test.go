package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlendedAnnualRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		parts   []AssetAllocation
		want    float64
		wantErr bool
	}{
		{
			name: "70/30 stocks and bonds",
			parts: []AssetAllocation{
				{Name: "stocks", AnnualRate: 0.10, Percent: 70},
				{Name: "bonds", AnnualRate: 0.04, Percent: 30},
			},
			want: 0.7*0.10 + 0.3*0.04,
		},
		{
			name: "single asset",
			parts: []AssetAllocation{
				{Name: "stocks", AnnualRate: 0.10, Percent: 100},
			},
			want: 0.10,
		},
		{
			name: "allocations do not sum to 100",
			parts: []AssetAllocation{
				{Name: "stocks", AnnualRate: 0.10, Percent: 70},
				{Name: "bonds", AnnualRate: 0.04, Percent: 20},
			},
			wantErr: true,
		},
		{
			name: "negative percent",
			parts: []AssetAllocation{
				{Name: "stocks", AnnualRate: 0.10, Percent: 110},
				{Name: "bonds", AnnualRate: 0.04, Percent: -10},
			},
			wantErr: true,
		},
		{
			name:    "empty",
			parts:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := BlendedAnnualRate(tt.parts)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestProject_CompoundingRecurrence(t *testing.T) {
	t.Parallel()

	got, err := Project(ProjectionInput{
		StartingBalance:      0,
		PeriodicContribution: 100,
		AnnualReturnRate:     0.12,
		HorizonPeriods:       12,
		PeriodsPerYear:       12,
	})
	require.NoError(t, err)

	// Twelve direct applications of (balance+100)*(1+0.01).
	want := 0.0
	for i := 0; i < 12; i++ {
		want = (want + 100) * 1.01
	}

	require.Len(t, got.Points, 13)
	assert.InDelta(t, want, got.Points[12].Balance, 1e-9)
	assert.InDelta(t, want, got.FinalBalance, 1e-9)
	assert.Equal(t, 1200.0, got.Points[12].Contributions)
	assert.InDelta(t, want-1200, got.Points[12].Growth, 1e-9)
}

func TestProject_SinglePeriodGrowth(t *testing.T) {
	t.Parallel()

	got, err := Project(ProjectionInput{
		StartingBalance:  1000,
		AnnualReturnRate: 0.10,
		HorizonPeriods:   1,
		PeriodsPerYear:   1,
	})
	require.NoError(t, err)
	assert.InDelta(t, 1100.0, got.FinalBalance, 1e-9)
}

func TestProject_GoalDetection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   ProjectionInput
		want int
	}{
		{
			name: "goal at or below starting balance reached at period 0",
			in: ProjectionInput{
				StartingBalance:  5000,
				GoalAmount:       5000,
				AnnualReturnRate: 0.10,
				HorizonPeriods:   12,
				PeriodsPerYear:   12,
			},
			want: 0,
		},
		{
			name: "goal crossed mid horizon",
			in: ProjectionInput{
				StartingBalance:      0,
				PeriodicContribution: 100,
				GoalAmount:           250,
				HorizonPeriods:       12,
				PeriodsPerYear:       12,
			},
			want: 3,
		},
		{
			name: "goal never reached",
			in: ProjectionInput{
				StartingBalance:      0,
				PeriodicContribution: 1,
				GoalAmount:           1e9,
				HorizonPeriods:       12,
				PeriodsPerYear:       12,
			},
			want: GoalNotReached,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Project(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.GoalReachedAt)
		})
	}
}

func TestProject_PointSeriesShape(t *testing.T) {
	t.Parallel()

	got, err := Project(ProjectionInput{
		StartingBalance:      10000,
		PeriodicContribution: 500,
		AnnualReturnRate:     0.076, // 70/30 blend of 10%/4%
		HorizonPeriods:       120,
		PeriodsPerYear:       12,
	})
	require.NoError(t, err)

	require.Len(t, got.Points, 121)
	assert.Equal(t, 10000.0, got.Points[0].Balance, "period 0 is the untouched starting balance")
	assert.Equal(t, 0.0, got.Points[0].Growth)

	for i, point := range got.Points {
		assert.Equal(t, i, point.Period)
		if i > 0 {
			assert.Greater(t, point.Balance, got.Points[i-1].Balance, "balance grows every period with positive inputs")
		}
	}
}

func TestProject_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   ProjectionInput
	}{
		{
			name: "negative starting balance",
			in:   ProjectionInput{StartingBalance: -1, HorizonPeriods: 12, PeriodsPerYear: 12},
		},
		{
			name: "negative contribution",
			in:   ProjectionInput{PeriodicContribution: -1, HorizonPeriods: 12, PeriodsPerYear: 12},
		},
		{
			name: "zero horizon",
			in:   ProjectionInput{HorizonPeriods: 0, PeriodsPerYear: 12},
		},
		{
			name: "zero periods per year",
			in:   ProjectionInput{HorizonPeriods: 12, PeriodsPerYear: 0},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Project(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestMonthsToTarget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  float64
		current float64
		monthly float64
		want    int
		wantErr bool
	}{
		{
			// homePrice=400000 at 20% down, 15000 saved, 800/month.
			name:    "down payment timeline",
			target:  80000,
			current: 15000,
			monthly: 800,
			want:    82,
		},
		{
			name:    "already funded",
			target:  5000,
			current: 5000,
			monthly: 0,
			want:    0,
		},
		{
			name:    "overfunded",
			target:  5000,
			current: 9000,
			monthly: 100,
			want:    0,
		},
		{
			name:    "zero savings rate is unreachable, not a crash",
			target:  5000,
			current: 0,
			monthly: 0,
			want:    GoalNotReached,
		},
		{
			name:    "partial month rounds up",
			target:  1000,
			current: 0,
			monthly: 300,
			want:    4,
		},
		{
			name:    "negative target",
			target:  -1,
			current: 0,
			monthly: 100,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := MonthsToTarget(tt.target, tt.current, tt.monthly)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
