/*
optimizer.go - Minimum-hire search for one month

PURPOSE:
  Given the month's required workload, the current cohorts, and the
  SLA target, find the smallest number of new hires (tenure 0) whose
  addition brings attainment to the target. Capacity is monotonically
  non-decreasing in hires, so a binary search over [0, hiring cap] is
  exact.

TIE-BREAK:
  Always the smallest count that meets-or-exceeds the target. Cost
  minimization is implicit - the optimizer never over-hires.

SHORTFALL:
  If even the cap cannot reach the target, the plan carries the capped
  hire count and SLAUnmet=true. This is a soft condition recorded on
  the month's result, not an error.

STATELESSNESS:
  The search takes cohort state as an explicit input and never touches
  engine state. Prior months are invisible to it.

SEE ALSO:
  - calc.go: EffectiveCapacity and Attainment
  - model.go: Applies the plan as a new tenure-0 cohort
*/
package engine

import "github.com/shopspring/decimal"

// OptimizerInput carries everything the search needs for one month.
type OptimizerInput struct {
	Cohorts         []Cohort
	Workload        decimal.Decimal
	SLATarget       decimal.Decimal
	HiringCap       int
	TrainingMonths  int
	Ramp            RampCurve
	HoursPerAnalyst decimal.Decimal
}

// PlanHires returns the minimum number of new hires that satisfies the
// SLA target, or the capped count flagged SLAUnmet when the cap is not
// enough.
func PlanHires(in OptimizerInput) HiringPlan {
	attainWith := func(hires int) decimal.Decimal {
		capacity := EffectiveCapacity(in.Cohorts, in.Ramp, in.TrainingMonths, in.HoursPerAnalyst)
		if hires > 0 {
			probe := Cohort{Size: hires, Tenure: 0}
			capacity = capacity.Add(EffectiveCapacity([]Cohort{probe}, in.Ramp, in.TrainingMonths, in.HoursPerAnalyst))
		}
		return Attainment(capacity, in.Workload)
	}

	// Even the cap falls short: hire to the cap and record the shortfall.
	if attainWith(in.HiringCap).LessThan(in.SLATarget) {
		return HiringPlan{
			Hires:      in.HiringCap,
			Attainment: attainWith(in.HiringCap),
			SLAUnmet:   true,
		}
	}

	// Binary search for the smallest satisfying count. Attainment is
	// monotonically non-decreasing in hires, so the predicate is
	// false..false,true..true over [0, cap].
	lo, hi := 0, in.HiringCap
	for lo < hi {
		mid := lo + (hi-lo)/2
		if attainWith(mid).GreaterThanOrEqual(in.SLATarget) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return HiringPlan{Hires: lo, Attainment: attainWith(lo)}
}
