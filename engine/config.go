/*
config.go - Simulation configuration and eager validation

PURPOSE:
  One immutable configuration object holds every assumption the
  simulation depends on: the onboarding schedule, the SLA target, the
  hiring cap, the training/ramp model, and the cost/revenue rates.
  The engine never reads ambient or global state - callers construct
  a Config (usually via the rcm or factory packages) and hand it in.

VALIDATION:
  Validate() runs once, synchronously, before the first simulated
  month. Any violation is returned as a ConfigurationError and no
  partial results are produced.

SEE ALSO:
  - errors.go: ConfigurationError
  - ramp.go: RampCurve implementations
  - ../rcm: Derives a Config from RCM business assumptions
*/
package engine

import "github.com/shopspring/decimal"

// OnboardingEvent adds accounts in a given month. Months must be
// non-decreasing across the schedule and deltas non-negative:
// onboarding never reverses.
type OnboardingEvent struct {
	Month    int
	Accounts int
}

// Rates are the per-month financial assumptions.
type Rates struct {
	// Labor cost per analyst-month.
	CostPerAnalyst decimal.Decimal
	// Non-labor overhead per analyst-month.
	OverheadPerAnalyst decimal.Decimal
	// Overhead independent of headcount.
	FixedOverhead decimal.Decimal
	// Revenue per active account per month.
	RevenuePerAccount decimal.Decimal
}

// QualityWeights blend SLA attainment and staff experience into the
// quality score. The weights must be non-negative and sum to 1.
type QualityWeights struct {
	Attainment decimal.Decimal
	Experience decimal.Decimal
}

// Config is the complete, read-only input to a simulation run.
type Config struct {
	// Horizon is the number of months to simulate (month 0 .. Horizon-1).
	Horizon int

	// Onboarding is the ordered account-growth schedule.
	Onboarding []OnboardingEvent

	// SLATarget is the required attainment fraction, in (0,1].
	SLATarget decimal.Decimal

	// HiringCap limits new hires per month. Zero means no hiring.
	HiringCap int

	// TrainingMonths is the tenure at which a cohort reaches full
	// productivity. Zero means hires are productive immediately.
	TrainingMonths int

	// Ramp maps tenure below TrainingMonths to a productivity fraction.
	Ramp RampCurve

	// HoursPerAccount converts active accounts into required staff-hours.
	HoursPerAccount decimal.Decimal

	// HoursPerAnalyst is the staff-hours a fully ramped analyst
	// delivers per month.
	HoursPerAnalyst decimal.Decimal

	Rates   Rates
	Quality QualityWeights

	// InitialCohorts optionally seeds the run with existing staff.
	// Their tenures are taken as-is at month 0.
	InitialCohorts []Cohort
}

// Validate checks the configuration eagerly. It returns nil or a
// *ConfigurationError; nothing is simulated on failure.
func (c Config) Validate() error {
	if c.Horizon <= 0 {
		return configErr("horizon", "must be positive, got %d", c.Horizon)
	}

	one := decimal.NewFromInt(1)
	if !c.SLATarget.IsPositive() || c.SLATarget.GreaterThan(one) {
		return configErr("sla_target", "must be in (0,1], got %s", c.SLATarget)
	}
	if c.HiringCap < 0 {
		return configErr("hiring_cap", "must be non-negative, got %d", c.HiringCap)
	}
	if c.TrainingMonths < 0 {
		return configErr("training_months", "must be non-negative, got %d", c.TrainingMonths)
	}
	if c.Ramp == nil {
		return configErr("ramp", "ramp curve is required")
	}

	lastMonth := 0
	for i, ev := range c.Onboarding {
		if ev.Month < 0 {
			return configErr("onboarding", "event %d: month must be non-negative, got %d", i, ev.Month)
		}
		if ev.Month < lastMonth {
			return configErr("onboarding", "event %d: months must be non-decreasing (%d after %d)", i, ev.Month, lastMonth)
		}
		if ev.Accounts < 0 {
			return configErr("onboarding", "event %d: account delta must be non-negative, got %d", i, ev.Accounts)
		}
		lastMonth = ev.Month
	}

	if c.HoursPerAccount.IsNegative() {
		return configErr("hours_per_account", "must be non-negative, got %s", c.HoursPerAccount)
	}
	if !c.HoursPerAnalyst.IsPositive() {
		return configErr("hours_per_analyst", "must be positive, got %s", c.HoursPerAnalyst)
	}
	if c.Rates.CostPerAnalyst.IsNegative() {
		return configErr("cost_per_analyst", "must be non-negative, got %s", c.Rates.CostPerAnalyst)
	}
	if c.Rates.OverheadPerAnalyst.IsNegative() {
		return configErr("overhead_per_analyst", "must be non-negative, got %s", c.Rates.OverheadPerAnalyst)
	}
	if c.Rates.FixedOverhead.IsNegative() {
		return configErr("fixed_overhead", "must be non-negative, got %s", c.Rates.FixedOverhead)
	}
	if c.Rates.RevenuePerAccount.IsNegative() {
		return configErr("revenue_per_account", "must be non-negative, got %s", c.Rates.RevenuePerAccount)
	}

	if c.Quality.Attainment.IsNegative() || c.Quality.Experience.IsNegative() {
		return configErr("quality_weights", "weights must be non-negative")
	}
	if !c.Quality.Attainment.Add(c.Quality.Experience).Equal(one) {
		return configErr("quality_weights", "weights must sum to 1, got %s", c.Quality.Attainment.Add(c.Quality.Experience))
	}

	if err := c.validateRamp(); err != nil {
		return err
	}

	for i, cohort := range c.InitialCohorts {
		if cohort.Size < 0 {
			return configErr("initial_cohorts", "cohort %d: size must be non-negative, got %d", i, cohort.Size)
		}
		if cohort.Tenure < 0 {
			return configErr("initial_cohorts", "cohort %d: tenure must be non-negative, got %d", i, cohort.Tenure)
		}
	}

	return nil
}

// validateRamp checks the curve is within [0,1], monotonically
// non-decreasing, and reaches 1 at the training duration.
func (c Config) validateRamp() error {
	one := decimal.NewFromInt(1)
	prev := decimal.Zero
	for tenure := 0; tenure <= c.TrainingMonths; tenure++ {
		f := c.Ramp.Fraction(tenure, c.TrainingMonths)
		if f.IsNegative() || f.GreaterThan(one) {
			return configErr("ramp", "fraction at tenure %d is %s, want [0,1]", tenure, f)
		}
		if tenure > 0 && f.LessThan(prev) {
			return configErr("ramp", "fraction decreases at tenure %d (%s after %s)", tenure, f, prev)
		}
		prev = f
	}
	if !c.Ramp.Fraction(c.TrainingMonths, c.TrainingMonths).Equal(one) {
		return configErr("ramp", "fraction must reach 1 at training duration %d", c.TrainingMonths)
	}
	return nil
}
