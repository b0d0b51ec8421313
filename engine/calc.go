/*
calc.go - Pure single-month calculations

PURPOSE:
  Every derived quantity for one month in one place: workload from
  accounts, ramp-weighted capacity from cohorts, SLA attainment,
  utilization, financials, and the quality score. All functions are
  total over validated inputs and deterministic - no state, no clock,
  no randomness.

EDGE CASES (defined, never raised):
  - Zero required workload: attainment is 1 (vacuously met),
    utilization is 0
  - Zero capacity with nonzero workload: attainment is 0,
    utilization is reported as 0 (the ratio is undefined; the
    attainment and SLAUnmet flag carry the signal)

SEE ALSO:
  - optimizer.go: Searches over EffectiveCapacity
  - model.go: Drives these per month
*/
package engine

import "github.com/shopspring/decimal"

// Workload converts active accounts into required staff-hours.
func Workload(accounts int, hoursPerAccount decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(accounts)).Mul(hoursPerAccount)
}

// EffectiveCapacity sums ramp-weighted staff-hours over all cohorts:
// size * hoursPerAnalyst * rampFraction(tenure).
func EffectiveCapacity(cohorts []Cohort, ramp RampCurve, trainingMonths int, hoursPerAnalyst decimal.Decimal) decimal.Decimal {
	capacity := decimal.Zero
	for _, c := range cohorts {
		if c.Size == 0 {
			continue
		}
		fraction := ramp.Fraction(c.Tenure, trainingMonths)
		capacity = capacity.Add(decimal.NewFromInt(int64(c.Size)).Mul(hoursPerAnalyst).Mul(fraction))
	}
	return capacity
}

// Attainment is the capped ratio min(1, capacity/required). Zero
// required workload is fully met.
func Attainment(capacity, required decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if !required.IsPositive() {
		return one
	}
	ratio := capacity.Div(required)
	if ratio.GreaterThan(one) {
		return one
	}
	return ratio
}

// Utilization is the uncapped required/capacity ratio. Values above 1
// expose understaffing, values well below 1 expose overstaffing.
func Utilization(required, capacity decimal.Decimal) decimal.Decimal {
	if !required.IsPositive() || !capacity.IsPositive() {
		return decimal.Zero
	}
	return required.Div(capacity)
}

// Financials computes the month's cost, revenue, and margin.
func Financials(headcount, accounts int, rates Rates) (cost, revenue, margin decimal.Decimal) {
	staff := decimal.NewFromInt(int64(headcount))
	cost = staff.Mul(rates.CostPerAnalyst.Add(rates.OverheadPerAnalyst)).Add(rates.FixedOverhead)
	revenue = decimal.NewFromInt(int64(accounts)).Mul(rates.RevenuePerAccount)
	margin = revenue.Sub(cost)
	return cost, revenue, margin
}

// Quality blends SLA attainment with the average experience of the
// staff mix, bounded to [0,1]. Experience is the headcount-weighted
// mean of tenure/trainingMonths, where fully ramped staff count as 1.
// With no staff the experience term is vacuously 1 - there is nobody
// inexperienced on the floor.
func Quality(attainment decimal.Decimal, cohorts []Cohort, trainingMonths int, weights QualityWeights) decimal.Decimal {
	experience := averageExperience(cohorts, trainingMonths)
	score := weights.Attainment.Mul(attainment).Add(weights.Experience.Mul(experience))

	one := decimal.NewFromInt(1)
	if score.GreaterThan(one) {
		return one
	}
	if score.IsNegative() {
		return decimal.Zero
	}
	return score
}

func averageExperience(cohorts []Cohort, trainingMonths int) decimal.Decimal {
	one := decimal.NewFromInt(1)
	total := Headcount(cohorts)
	if total == 0 {
		return one
	}
	if trainingMonths == 0 {
		return one
	}

	weighted := decimal.Zero
	for _, c := range cohorts {
		tenure := c.Tenure
		if tenure > trainingMonths {
			tenure = trainingMonths
		}
		fraction := decimal.NewFromInt(int64(tenure)).Div(decimal.NewFromInt(int64(trainingMonths)))
		weighted = weighted.Add(decimal.NewFromInt(int64(c.Size)).Mul(fraction))
	}
	return weighted.Div(decimal.NewFromInt(int64(total)))
}
