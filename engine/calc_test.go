package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/capacity-engine/engine"
)

// =============================================================================
// TEST HELPERS
// =============================================================================
// Note: dec and testConfig are shared with optimizer_test.go and
// model_test.go.

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// testConfig is the shared baseline: one onboarding event of 1000
// accounts in month 1, 95% SLA target, hiring cap 50, two months of
// training at 50%/75% productivity.
func testConfig() engine.Config {
	return engine.Config{
		Horizon:         4,
		Onboarding:      []engine.OnboardingEvent{{Month: 1, Accounts: 1000}},
		SLATarget:       dec(0.95),
		HiringCap:       50,
		TrainingMonths:  2,
		Ramp:            engine.NewStepRamp(0.5, 0.75),
		HoursPerAccount: dec(1),
		HoursPerAnalyst: dec(25),
		Rates: engine.Rates{
			CostPerAnalyst:     dec(400),
			OverheadPerAnalyst: dec(50),
			FixedOverhead:      dec(1000),
			RevenuePerAccount:  dec(500),
		},
		Quality: engine.QualityWeights{Attainment: dec(0.7), Experience: dec(0.3)},
	}
}

// =============================================================================
// WORKLOAD AND CAPACITY
// =============================================================================

func TestWorkload_LinearInAccounts(t *testing.T) {
	if got := engine.Workload(1000, dec(2.5)); !got.Equal(dec(2500)) {
		t.Errorf("expected 2500 hours, got %s", got)
	}
	if got := engine.Workload(0, dec(2.5)); !got.IsZero() {
		t.Errorf("expected zero workload for zero accounts, got %s", got)
	}
}

func TestEffectiveCapacity_RampWeighted(t *testing.T) {
	// GIVEN: 10 new hires (50%), 10 mid-ramp (75%), 10 fully trained
	// WHEN: Computing capacity at 25 hours per analyst
	// THEN: 10*25*0.5 + 10*25*0.75 + 10*25*1 = 562.5

	ramp := engine.NewStepRamp(0.5, 0.75)
	cohorts := []engine.Cohort{
		{Size: 10, Tenure: 0},
		{Size: 10, Tenure: 1},
		{Size: 10, Tenure: 2},
	}

	got := engine.EffectiveCapacity(cohorts, ramp, 2, dec(25))
	if !got.Equal(dec(562.5)) {
		t.Errorf("expected 562.5 hours, got %s", got)
	}
}

func TestEffectiveCapacity_EmptyCohorts_Zero(t *testing.T) {
	got := engine.EffectiveCapacity(nil, engine.NewStepRamp(0.5), 1, dec(25))
	if !got.IsZero() {
		t.Errorf("expected zero capacity, got %s", got)
	}
}

// =============================================================================
// ATTAINMENT AND UTILIZATION EDGES
// =============================================================================

func TestAttainment_CappedAtOne(t *testing.T) {
	if got := engine.Attainment(dec(200), dec(100)); !got.Equal(dec(1)) {
		t.Errorf("expected attainment capped at 1, got %s", got)
	}
	if got := engine.Attainment(dec(50), dec(100)); !got.Equal(dec(0.5)) {
		t.Errorf("expected 0.5, got %s", got)
	}
}

func TestAttainment_ZeroWorkload_VacuouslyMet(t *testing.T) {
	if got := engine.Attainment(dec(0), dec(0)); !got.Equal(dec(1)) {
		t.Errorf("expected attainment 1 for zero workload, got %s", got)
	}
}

func TestUtilization_Uncapped(t *testing.T) {
	// Understaffing shows up as utilization above 1.
	if got := engine.Utilization(dec(150), dec(100)); !got.Equal(dec(1.5)) {
		t.Errorf("expected 1.5, got %s", got)
	}
}

func TestUtilization_ZeroEdges(t *testing.T) {
	if got := engine.Utilization(dec(0), dec(100)); !got.IsZero() {
		t.Errorf("expected 0 for zero workload, got %s", got)
	}
	if got := engine.Utilization(dec(100), dec(0)); !got.IsZero() {
		t.Errorf("expected 0 for zero capacity, got %s", got)
	}
}

// =============================================================================
// FINANCIALS
// =============================================================================

func TestFinancials_MarginIsRevenueMinusCost(t *testing.T) {
	rates := engine.Rates{
		CostPerAnalyst:     dec(400),
		OverheadPerAnalyst: dec(50),
		FixedOverhead:      dec(1000),
		RevenuePerAccount:  dec(500),
	}

	cost, revenue, margin := engine.Financials(10, 20, rates)

	if !cost.Equal(dec(5500)) { // 10*(400+50) + 1000
		t.Errorf("expected cost 5500, got %s", cost)
	}
	if !revenue.Equal(dec(10000)) { // 20*500
		t.Errorf("expected revenue 10000, got %s", revenue)
	}
	if !margin.Equal(dec(4500)) {
		t.Errorf("expected margin 4500, got %s", margin)
	}
}

// =============================================================================
// QUALITY
// =============================================================================

func TestQuality_WeightedBlend(t *testing.T) {
	// GIVEN: attainment 0.9, all staff fully trained, weights 0.7/0.3
	// THEN: 0.7*0.9 + 0.3*1 = 0.93

	cohorts := []engine.Cohort{{Size: 5, Tenure: 2}}
	weights := engine.QualityWeights{Attainment: dec(0.7), Experience: dec(0.3)}

	got := engine.Quality(dec(0.9), cohorts, 2, weights)
	if !got.Equal(dec(0.93)) {
		t.Errorf("expected 0.93, got %s", got)
	}
}

func TestQuality_GreenCohortDragsScore(t *testing.T) {
	// GIVEN: perfect attainment but every analyst at tenure 0
	// THEN: the experience term contributes nothing

	cohorts := []engine.Cohort{{Size: 5, Tenure: 0}}
	weights := engine.QualityWeights{Attainment: dec(0.7), Experience: dec(0.3)}

	got := engine.Quality(dec(1), cohorts, 2, weights)
	if !got.Equal(dec(0.7)) {
		t.Errorf("expected 0.7, got %s", got)
	}
}

func TestQuality_NoStaff_BoundedAtOne(t *testing.T) {
	weights := engine.QualityWeights{Attainment: dec(0.7), Experience: dec(0.3)}

	got := engine.Quality(dec(1), nil, 2, weights)
	if !got.Equal(dec(1)) {
		t.Errorf("expected 1, got %s", got)
	}
}

// =============================================================================
// RAMP CURVES
// =============================================================================

func TestStepRamp_FullAtTrainingDuration(t *testing.T) {
	ramp := engine.NewStepRamp(0.8, 0.9)

	if got := ramp.Fraction(0, 2); !got.Equal(dec(0.8)) {
		t.Errorf("tenure 0: expected 0.8, got %s", got)
	}
	if got := ramp.Fraction(1, 2); !got.Equal(dec(0.9)) {
		t.Errorf("tenure 1: expected 0.9, got %s", got)
	}
	if got := ramp.Fraction(2, 2); !got.Equal(dec(1)) {
		t.Errorf("tenure 2: expected 1, got %s", got)
	}
	if got := ramp.Fraction(7, 2); !got.Equal(dec(1)) {
		t.Errorf("tenure past training: expected 1, got %s", got)
	}
}

func TestLinearRamp_RisesFromFloor(t *testing.T) {
	ramp := engine.LinearRamp{Floor: dec(0.4)}

	if got := ramp.Fraction(0, 3); !got.Equal(dec(0.4)) {
		t.Errorf("tenure 0: expected floor 0.4, got %s", got)
	}
	if got := ramp.Fraction(3, 3); !got.Equal(dec(1)) {
		t.Errorf("tenure 3: expected 1, got %s", got)
	}

	// Monotone between floor and full.
	prev := decimal.Zero
	for tenure := 0; tenure <= 3; tenure++ {
		f := ramp.Fraction(tenure, 3)
		if f.LessThan(prev) {
			t.Fatalf("ramp decreases at tenure %d: %s after %s", tenure, f, prev)
		}
		prev = f
	}
}
