package models

// ProjectionPoint is one period of a projection run: the compounded
// balance, the money put in so far and the growth on top of it.
type ProjectionPoint struct {
	Period        int
	Balance       float64
	Contributions float64
	Growth        float64
}

// RetirementPlan is the input record for the compounding projection.
// Stock and bond allocations are percentages and must sum to 100.
type RetirementPlan struct {
	GoalAmount          float64 `validate:"min=0"`
	StartingBalance     float64 `validate:"min=0"`
	MonthlyContribution float64 `validate:"min=0"`
	TimeHorizonYears    int     `validate:"min=1"`
	StockAllocation     float64 `validate:"min=0,max=100"`
	BondAllocation      float64 `validate:"min=0,max=100"`
}

type HomePurchasePlan struct {
	HomePrice          float64 `validate:"gt=0"`
	DownPaymentPercent float64 `validate:"gt=0,max=100"`
	CurrentSavings     float64 `validate:"min=0"`
	MonthlySavings     float64 `validate:"min=0"`
}

type EmergencyFundPlan struct {
	MonthlyExpenses float64 `validate:"gt=0"`
	MonthsOfCover   int     `validate:"min=1"`
	CurrentFund     float64 `validate:"min=0"`
	MonthlySavings  float64 `validate:"min=0"`
}
