/*
Package rcm adapts revenue-cycle-management business assumptions into
engine configuration.

PURPOSE:
  The engine thinks in staff-hours and flat monthly rates. An RCM
  operation thinks in claims per account, denial rates, analyst
  throughput, and hourly labor cost. This package owns the translation:
  a set of Assumptions plus a run shape (onboarding schedule, SLA
  target, hiring cap) produces an engine.Config.

KEY CONCEPTS:
  - ClaimsProfile: Claim volume and value per account, denial behavior
  - Workday: Working hours, days per month, target utilization
  - LaborCosts/Overheads: Hourly rates and monthly overhead
  - StaffRatios: Analysts per manager/trainer/QA reviewer
  - Assumptions: All of the above, with defaults carrying a typical
    offshore RCM cost structure

SEE ALSO:
  - derive.go: Assumptions -> engine.Config
  - ../factory: Declarative scenario definitions on top of this
*/
package rcm

import (
	"github.com/shopspring/decimal"

	"github.com/warp/capacity-engine/engine"
)

// ClaimsProfile describes claim volume and handling effort per account.
type ClaimsProfile struct {
	// ClaimsPerAccount is the monthly claim volume one account produces.
	ClaimsPerAccount int

	// AvgClaimValue is the dollar value of a single claim.
	AvgClaimValue decimal.Decimal

	// RevenuePct is the fee collected as a fraction of claim value.
	RevenuePct decimal.Decimal

	// DenialRate is the fraction of claims denied on first pass.
	DenialRate decimal.Decimal

	// RecoveryRate is the fraction of denials worth reworking.
	RecoveryRate decimal.Decimal

	// MinutesPerClaim is analyst effort for a clean claim.
	MinutesPerClaim decimal.Decimal

	// DenialTimeMultiplier scales effort for denial rework.
	DenialTimeMultiplier decimal.Decimal
}

// Workday describes the working calendar of an analyst.
type Workday struct {
	HoursPerDay  int
	DaysPerMonth int

	// TargetUtilization is the fraction of paid hours an analyst
	// realistically spends on claims.
	TargetUtilization decimal.Decimal
}

// MonthlyHours is the paid hours in one analyst-month.
func (w Workday) MonthlyHours() decimal.Decimal {
	return decimal.NewFromInt(int64(w.HoursPerDay * w.DaysPerMonth))
}

// LaborCosts are hourly rates by role.
type LaborCosts struct {
	AnalystHourly decimal.Decimal
	ManagerHourly decimal.Decimal
}

// Overheads are non-labor monthly costs.
type Overheads struct {
	PerAnalyst   decimal.Decimal
	PerManager   decimal.Decimal
	FixedMonthly decimal.Decimal
}

// StaffRatios size the support structure around the analyst pool.
type StaffRatios struct {
	AnalystsPerManager int
	AnalystsPerTrainer int
	AnalystsPerQA      int
}

// SupportPlan is the support headcount implied by an analyst count.
type SupportPlan struct {
	Managers int
	Trainers int
	QA       int
}

// Assumptions bundles every RCM business parameter the engine
// derivation needs.
type Assumptions struct {
	Claims  ClaimsProfile
	Workday Workday
	Labor   LaborCosts
	Over    Overheads
	Ratios  StaffRatios

	// TrainingMonths and Ramp describe how long a new analyst takes to
	// reach full throughput.
	TrainingMonths int
	Ramp           engine.RampCurve

	// Quality weights for the engine's quality score.
	Quality engine.QualityWeights
}
