package factory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/capacity-engine/engine"
	"github.com/warp/capacity-engine/factory"
)

func TestLoad_FullDocument(t *testing.T) {
	doc := []byte(`
id: custom
name: Custom Run
horizon: 4
sla_target: 0.9
hiring_cap: 25
onboarding:
  - {month: 1, accounts: 5}
training_months: 3
ramp: [0.5, 0.7, 0.9]
initial_staff: 10
assumptions:
  claims_per_account: 500
  analyst_hourly: 3.10
`)

	spec, err := factory.Load(doc)
	require.NoError(t, err)

	assert.Equal(t, "custom", spec.ID)
	assert.Equal(t, 4, spec.Horizon)
	require.NotNil(t, spec.TrainingMonths)
	assert.Equal(t, 3, *spec.TrainingMonths)
	require.NotNil(t, spec.Assumptions)
	require.NotNil(t, spec.Assumptions.ClaimsPerAccount)
	assert.Equal(t, 500, *spec.Assumptions.ClaimsPerAccount)

	cfg, err := spec.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.TrainingMonths)
	assert.Equal(t, 25, cfg.HiringCap)
	require.Len(t, cfg.InitialCohorts, 1)
	assert.Equal(t, 10, cfg.InitialCohorts[0].Size)
	assert.Equal(t, 3, cfg.InitialCohorts[0].Tenure)

	// 500 claims * 15 min clean + 500*0.15*0.60*15*2 rework = 8850 min.
	assert.True(t, cfg.HoursPerAccount.Equal(decimal.NewFromFloat(147.5)),
		"hours per account: %s", cfg.HoursPerAccount)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	_, err := factory.Load([]byte("id: x\nhorzon: 4\n"))
	require.Error(t, err)
	assert.True(t, engine.IsConfigurationError(err))
}

func TestLoad_MalformedYAMLRejected(t *testing.T) {
	_, err := factory.Load([]byte("id: [unclosed"))
	require.Error(t, err)
	assert.True(t, engine.IsConfigurationError(err))
}

func TestBuild_InvalidTargetRejected(t *testing.T) {
	spec, err := factory.Load([]byte("id: bad\nhorizon: 4\nsla_target: 1.5\nhiring_cap: 10\n"))
	require.NoError(t, err)

	_, err = spec.Build()
	require.Error(t, err)
	assert.True(t, engine.IsConfigurationError(err))
}

func TestBuiltin_AllBuildAndRun(t *testing.T) {
	specs := factory.Builtin()
	require.Len(t, specs, 4)

	for _, spec := range specs {
		cfg, err := spec.Build()
		require.NoError(t, err, "scenario %s", spec.ID)

		results, err := engine.Run(cfg)
		require.NoError(t, err, "scenario %s", spec.ID)
		assert.Len(t, results, cfg.Horizon, "scenario %s", spec.ID)
	}
}

func TestBuiltin_SurgeShowsShortfall(t *testing.T) {
	spec := factory.FindBuiltin("surge")
	require.NotNil(t, spec)

	cfg, err := spec.Build()
	require.NoError(t, err)
	results, err := engine.Run(cfg)
	require.NoError(t, err)

	// 1000 accounts at the standard effort model dwarf a 50-hire cap.
	assert.True(t, results[1].SLAUnmet)
	assert.Equal(t, 50, results[1].NewHires)
}

func TestFindBuiltin_MissingIsNil(t *testing.T) {
	assert.Nil(t, factory.FindBuiltin("nope"))
}
