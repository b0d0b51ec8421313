package rcm

import (
	"github.com/shopspring/decimal"

	"github.com/warp/capacity-engine/engine"
)

// DefaultAssumptions is the standard parameter set for an offshore RCM
// operation: 10,000 claims per account-month at $200 average value
// with a 5% fee, 15 minutes per clean claim, 15% denials of which 60%
// are reworked at double effort, and a two-month analyst ramp.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Claims: ClaimsProfile{
			ClaimsPerAccount:     10000,
			AvgClaimValue:        decimal.NewFromInt(200),
			RevenuePct:           decimal.NewFromFloat(0.05),
			DenialRate:           decimal.NewFromFloat(0.15),
			RecoveryRate:         decimal.NewFromFloat(0.60),
			MinutesPerClaim:      decimal.NewFromInt(15),
			DenialTimeMultiplier: decimal.NewFromInt(2),
		},
		Workday: Workday{
			HoursPerDay:       8,
			DaysPerMonth:      20,
			TargetUtilization: decimal.NewFromFloat(0.85),
		},
		Labor: LaborCosts{
			AnalystHourly: decimal.NewFromFloat(2.50),
			ManagerHourly: decimal.NewFromFloat(3.75),
		},
		Over: Overheads{
			PerAnalyst:   decimal.NewFromInt(50),
			PerManager:   decimal.NewFromInt(100),
			FixedMonthly: decimal.NewFromInt(10000),
		},
		Ratios: StaffRatios{
			AnalystsPerManager: 24,
			AnalystsPerTrainer: 50,
			AnalystsPerQA:      40,
		},
		TrainingMonths: 2,
		Ramp:           engine.NewStepRamp(0.8, 0.9),
		Quality: engine.QualityWeights{
			Attainment: decimal.NewFromFloat(0.7),
			Experience: decimal.NewFromFloat(0.3),
		},
	}
}
