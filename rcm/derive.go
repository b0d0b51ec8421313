/*
derive.go - Assumptions to engine configuration

PURPOSE:
  Collapses the RCM claim math into the engine's flat per-month rates:

  hours/account   = claims * minutes/claim
                    + claims * denial * recovery * minutes/claim * multiplier,
                    converted to hours
  hours/analyst   = workday hours * days * target utilization
  cost/analyst    = analyst hourly labor for the month, plus the
                    prorated share of a manager (via the staffing ratio)
  revenue/account = claims * claim value * fee percentage

  Trainer and QA headcount is reported via SupportStaff for planning
  but deliberately excluded from the per-analyst cost rate: those
  roles bill at the analyst rate and are covered by the overhead
  allowances.

SEE ALSO:
  - types.go: The assumption records
  - defaults.go: The standard parameter set
*/
package rcm

import (
	"github.com/shopspring/decimal"

	"github.com/warp/capacity-engine/engine"
)

var sixty = decimal.NewFromInt(60)

// HoursPerAccount is the monthly analyst effort one account demands,
// including denial rework.
func (a Assumptions) HoursPerAccount() decimal.Decimal {
	claims := decimal.NewFromInt(int64(a.Claims.ClaimsPerAccount))
	cleanMinutes := claims.Mul(a.Claims.MinutesPerClaim)
	reworkMinutes := claims.
		Mul(a.Claims.DenialRate).
		Mul(a.Claims.RecoveryRate).
		Mul(a.Claims.MinutesPerClaim).
		Mul(a.Claims.DenialTimeMultiplier)
	return cleanMinutes.Add(reworkMinutes).Div(sixty)
}

// HoursPerAnalyst is the productive hours a fully ramped analyst
// delivers per month.
func (a Assumptions) HoursPerAnalyst() decimal.Decimal {
	return a.Workday.MonthlyHours().Mul(a.Workday.TargetUtilization)
}

// CostPerAnalyst is the monthly labor cost of one analyst, including
// the prorated manager share.
func (a Assumptions) CostPerAnalyst() decimal.Decimal {
	hours := a.Workday.MonthlyHours()
	analyst := a.Labor.AnalystHourly.Mul(hours)
	manager := a.Labor.ManagerHourly.Mul(hours).
		Div(decimal.NewFromInt(int64(a.Ratios.AnalystsPerManager)))
	return analyst.Add(manager)
}

// OverheadPerAnalyst is the monthly non-labor overhead of one analyst,
// including the prorated manager share.
func (a Assumptions) OverheadPerAnalyst() decimal.Decimal {
	manager := a.Over.PerManager.Div(decimal.NewFromInt(int64(a.Ratios.AnalystsPerManager)))
	return a.Over.PerAnalyst.Add(manager)
}

// RevenuePerAccount is the monthly fee revenue one account generates.
func (a Assumptions) RevenuePerAccount() decimal.Decimal {
	return decimal.NewFromInt(int64(a.Claims.ClaimsPerAccount)).
		Mul(a.Claims.AvgClaimValue).
		Mul(a.Claims.RevenuePct)
}

// SupportStaff returns the manager/trainer/QA headcount the ratios
// imply for a given analyst pool.
func (a Assumptions) SupportStaff(analysts int) SupportPlan {
	return SupportPlan{
		Managers: ceilDiv(analysts, a.Ratios.AnalystsPerManager),
		Trainers: ceilDiv(analysts, a.Ratios.AnalystsPerTrainer),
		QA:       ceilDiv(analysts, a.Ratios.AnalystsPerQA),
	}
}

func ceilDiv(n, d int) int {
	if d <= 0 || n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

// EngineConfig builds the engine configuration for a run shape. The
// returned config still goes through engine validation; invalid
// assumptions surface there as ConfigurationErrors.
func (a Assumptions) EngineConfig(onboarding []engine.OnboardingEvent, horizon int, slaTarget decimal.Decimal, hiringCap int) engine.Config {
	return engine.Config{
		Horizon:         horizon,
		Onboarding:      onboarding,
		SLATarget:       slaTarget,
		HiringCap:       hiringCap,
		TrainingMonths:  a.TrainingMonths,
		Ramp:            a.Ramp,
		HoursPerAccount: a.HoursPerAccount(),
		HoursPerAnalyst: a.HoursPerAnalyst(),
		Rates: engine.Rates{
			CostPerAnalyst:     a.CostPerAnalyst(),
			OverheadPerAnalyst: a.OverheadPerAnalyst(),
			FixedOverhead:      a.Over.FixedMonthly,
			RevenuePerAccount:  a.RevenuePerAccount(),
		},
		Quality: a.Quality,
	}
}
