/*
Package engine provides the monthly capacity simulation core.

PURPOSE:
  This package contains the domain-agnostic machinery for modeling a
  service operation month over month: accounts come online on a
  schedule, staff are hired in cohorts that ramp up to full
  productivity, and each month the engine finds the minimum number of
  new hires that keeps the service-level target satisfied.

KEY CONCEPTS IN THIS FILE (types.go):
  - Cohort: A group of staff hired in the same month, tracked by tenure
  - MonthState: The mutable state carried between simulated months
  - MonthlyResult: The immutable per-month output record
  - HiringPlan: The optimizer's answer for a single month

DESIGN PRINCIPLES:
  1. Determinism: No wall-clock, no randomness - identical config
     always yields an identical result sequence
  2. Precision: Uses decimal.Decimal to avoid floating-point drift
  3. Immutability: MonthlyResult is never mutated after emission
  4. Single owner: Only the Simulation mutates MonthState

SEE ALSO:
  - config.go: Configuration and validation
  - calc.go: Pure single-month calculations
  - optimizer.go: Minimum-hire search
  - model.go: The month-by-month state machine
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// COHORT - Staff hired together, ramping together
// =============================================================================

// Cohort is a group of staff hired in the same month. Tenure is months
// since hire, capped at the configured training duration once the
// cohort is fully ramped.
type Cohort struct {
	HiredMonth int
	Size       int
	Tenure     int
}

// Headcount sums cohort sizes.
func Headcount(cohorts []Cohort) int {
	total := 0
	for _, c := range cohorts {
		total += c.Size
	}
	return total
}

// =============================================================================
// MONTH STATE - Mutable state carried between months
// =============================================================================

// MonthState is exclusively owned by the Simulation and mutated only
// through its month transitions.
type MonthState struct {
	Month    int
	Accounts int
	Cohorts  []Cohort

	CumulativeRevenue decimal.Decimal
	CumulativeCost    decimal.Decimal
}

// =============================================================================
// MONTHLY RESULT - Immutable output record
// =============================================================================

// CohortBreakdown reports one cohort's contribution in a month.
type CohortBreakdown struct {
	HiredMonth   int
	Size         int
	Tenure       int
	RampFraction decimal.Decimal
}

// MonthlyResult is emitted once per simulated month and never mutated
// afterwards. The ordered sequence of results is the engine's only
// output.
type MonthlyResult struct {
	Month     int
	Accounts  int
	Headcount int
	NewHires  int
	Cohorts   []CohortBreakdown

	// Workload and staffing adequacy, in staff-hours.
	RequiredHours decimal.Decimal
	CapacityHours decimal.Decimal

	// Attainment is capped at 1; Utilization is the uncapped
	// required/capacity ratio so over- and under-staffing stay visible.
	Attainment  decimal.Decimal
	Utilization decimal.Decimal
	Quality     decimal.Decimal

	Revenue decimal.Decimal
	Cost    decimal.Decimal
	Margin  decimal.Decimal

	CumulativeRevenue decimal.Decimal
	CumulativeCost    decimal.Decimal

	// SLAUnmet records that even the hiring cap could not reach the
	// target this month. Soft condition: the run continues.
	SLAUnmet bool
}

// =============================================================================
// HIRING PLAN - Optimizer output for one month
// =============================================================================

// HiringPlan is the optimizer's decision for a single month.
type HiringPlan struct {
	Hires      int
	Attainment decimal.Decimal
	SLAUnmet   bool
}
