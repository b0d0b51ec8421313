package rcm_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/capacity-engine/engine"
	"github.com/warp/capacity-engine/rcm"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func assertDecimal(t *testing.T, want, got decimal.Decimal, msg string) {
	t.Helper()
	eps := decimal.New(1, -9) // 1e-9, covers division rounding
	assert.True(t, want.Sub(got).Abs().LessThan(eps),
		"%s: want %s, got %s", msg, want, got)
}

// =============================================================================
// DERIVATION MATH
// =============================================================================

func TestHoursPerAccount_IncludesDenialRework(t *testing.T) {
	// 10,000 claims * 15 min = 150,000 clean minutes.
	// 10,000 * 0.15 * 0.60 * 15 * 2 = 27,000 rework minutes.
	// Total 177,000 minutes = 2,950 hours.

	a := rcm.DefaultAssumptions()
	assertDecimal(t, dec(2950), a.HoursPerAccount(), "hours per account")
}

func TestHoursPerAnalyst_UtilizationAdjusted(t *testing.T) {
	// 8h * 20d = 160 paid hours, 85% productive = 136.

	a := rcm.DefaultAssumptions()
	assertDecimal(t, dec(136), a.HoursPerAnalyst(), "hours per analyst")
}

func TestCostPerAnalyst_IncludesManagerShare(t *testing.T) {
	// Analyst: 2.50 * 160 = 400. Manager share: 3.75 * 160 / 24 = 25.

	a := rcm.DefaultAssumptions()
	assertDecimal(t, dec(425), a.CostPerAnalyst(), "cost per analyst")
}

func TestOverheadPerAnalyst_IncludesManagerShare(t *testing.T) {
	// 50 + 100/24.

	a := rcm.DefaultAssumptions()
	want := dec(50).Add(dec(100).Div(dec(24)))
	assertDecimal(t, want, a.OverheadPerAnalyst(), "overhead per analyst")
}

func TestRevenuePerAccount_FeeOnClaimValue(t *testing.T) {
	// 10,000 claims * $200 * 5% = $100,000.

	a := rcm.DefaultAssumptions()
	assertDecimal(t, dec(100000), a.RevenuePerAccount(), "revenue per account")
}

func TestSupportStaff_CeilingOnRatios(t *testing.T) {
	a := rcm.DefaultAssumptions()

	plan := a.SupportStaff(100)
	assert.Equal(t, 5, plan.Managers) // ceil(100/24)
	assert.Equal(t, 2, plan.Trainers) // ceil(100/50)
	assert.Equal(t, 3, plan.QA)       // ceil(100/40)

	assert.Equal(t, rcm.SupportPlan{}, a.SupportStaff(0))
}

// =============================================================================
// ENGINE WIRING
// =============================================================================

func TestEngineConfig_RunsCleanly(t *testing.T) {
	// The default assumption set must survive engine validation and a
	// full run without shortfalls once hiring is not the bottleneck.

	a := rcm.DefaultAssumptions()
	onboarding := []engine.OnboardingEvent{
		{Month: 1, Accounts: 10},
		{Month: 2, Accounts: 30},
		{Month: 3, Accounts: 60},
	}

	cfg := a.EngineConfig(onboarding, 4, dec(0.95), 5000)
	results, err := engine.Run(cfg)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, 0, results[0].Accounts)
	assert.Equal(t, 10, results[1].Accounts)
	assert.Equal(t, 40, results[2].Accounts)
	assert.Equal(t, 100, results[3].Accounts)

	for _, r := range results {
		assert.False(t, r.SLAUnmet, "month %d should meet target with an open cap", r.Month)
		assert.True(t, r.Attainment.GreaterThanOrEqual(dec(0.95)),
			"month %d attainment %s", r.Month, r.Attainment)
	}

	// Revenue scales with accounts: $100k per account-month.
	assertDecimal(t, dec(1000000), results[1].Revenue, "month 1 revenue")
	assertDecimal(t, dec(10000000), results[3].Revenue, "month 3 revenue")
}

func TestEngineConfig_InvalidAssumptionsFailFast(t *testing.T) {
	a := rcm.DefaultAssumptions()
	a.Ramp = engine.NewStepRamp(0.9, 0.5) // decreasing: rejected

	cfg := a.EngineConfig(nil, 4, dec(0.95), 50)
	_, err := engine.Run(cfg)
	require.Error(t, err)
	assert.True(t, engine.IsConfigurationError(err))
}
