package engine

import "github.com/shopspring/decimal"

// =============================================================================
// RAMP CURVE - How new hires grow into full productivity
// =============================================================================

// RampCurve maps a cohort's tenure to its productivity fraction.
// Implementations must be monotonically non-decreasing in tenure and
// return 1 once tenure reaches trainingMonths; Config.Validate checks
// both, so a violating curve is rejected as a configuration error.
type RampCurve interface {
	// Fraction returns productivity in [0,1] for the given tenure.
	Fraction(tenure, trainingMonths int) decimal.Decimal
}

// StepRamp uses an explicit fraction per month of tenure. Tenures past
// the last entry reuse the last entry until training completes.
//
//	NewStepRamp(0.8, 0.9) // 80% first month, 90% second, then full
type StepRamp struct {
	Fractions []decimal.Decimal
}

// NewStepRamp builds a StepRamp from float fractions.
func NewStepRamp(fractions ...float64) StepRamp {
	r := StepRamp{Fractions: make([]decimal.Decimal, len(fractions))}
	for i, f := range fractions {
		r.Fractions[i] = decimal.NewFromFloat(f)
	}
	return r
}

func (r StepRamp) Fraction(tenure, trainingMonths int) decimal.Decimal {
	if tenure >= trainingMonths {
		return decimal.NewFromInt(1)
	}
	if len(r.Fractions) == 0 {
		return decimal.Zero
	}
	if tenure >= len(r.Fractions) {
		return r.Fractions[len(r.Fractions)-1]
	}
	if tenure < 0 {
		tenure = 0
	}
	return r.Fractions[tenure]
}

// LinearRamp starts at Floor and rises linearly to 1 over the training
// duration.
type LinearRamp struct {
	Floor decimal.Decimal
}

func (r LinearRamp) Fraction(tenure, trainingMonths int) decimal.Decimal {
	if tenure >= trainingMonths || trainingMonths <= 0 {
		return decimal.NewFromInt(1)
	}
	if tenure < 0 {
		tenure = 0
	}
	one := decimal.NewFromInt(1)
	progress := decimal.NewFromInt(int64(tenure)).Div(decimal.NewFromInt(int64(trainingMonths)))
	return r.Floor.Add(one.Sub(r.Floor).Mul(progress))
}
