/*
Package factory provides declarative YAML scenario definitions.

PURPOSE:
  Converts YAML scenario documents into engine configurations. This
  enables planning runs without code changes - an operations analyst
  can describe an onboarding schedule, SLA target, and assumption
  tweaks in YAML, and the factory produces the proper engine.Config.

YAML SCHEMA:
  id: baseline
  name: Baseline Onboarding Ramp
  description: Three-wave onboarding at the standard assumptions
  horizon: 6
  sla_target: 0.95
  hiring_cap: 1500
  onboarding:
    - {month: 1, accounts: 10}
    - {month: 2, accounts: 30}
  training_months: 2
  ramp: [0.8, 0.9]
  initial_staff: 0
  assumptions:
    claims_per_account: 10000
    analyst_hourly: 2.50

KEY FEATURES:
  - Unknown fields are rejected (yaml.v3 KnownFields)
  - Omitted fields fall back to the standard RCM assumptions
  - Structural problems surface as engine ConfigurationErrors, so
    callers handle exactly one error family

USAGE:
  spec, err := factory.Load(yamlBytes)
  cfg, err := spec.Build()
  results, err := engine.Run(cfg)

SEE ALSO:
  - builtin.go: The scenarios shipped with the server
  - ../rcm: The assumption set the overrides patch
*/
package factory

import (
	"bytes"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/warp/capacity-engine/engine"
	"github.com/warp/capacity-engine/rcm"
)

// =============================================================================
// YAML SCHEMA TYPES
// =============================================================================

// ScenarioSpec is the YAML (and JSON, for the ad-hoc API) shape of a
// planning scenario.
type ScenarioSpec struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Horizon    int               `yaml:"horizon" json:"horizon"`
	SLATarget  float64           `yaml:"sla_target" json:"sla_target"`
	HiringCap  int               `yaml:"hiring_cap" json:"hiring_cap"`
	Onboarding []OnboardingYAML  `yaml:"onboarding,omitempty" json:"onboarding,omitempty"`

	// Optional ramp overrides. TrainingMonths defaults to the standard
	// assumptions; Ramp, when present, is a step curve of per-tenure
	// fractions.
	TrainingMonths *int      `yaml:"training_months,omitempty" json:"training_months,omitempty"`
	Ramp           []float64 `yaml:"ramp,omitempty" json:"ramp,omitempty"`

	// InitialStaff seeds the run with fully trained analysts.
	InitialStaff int `yaml:"initial_staff,omitempty" json:"initial_staff,omitempty"`

	Assumptions *AssumptionOverrides `yaml:"assumptions,omitempty" json:"assumptions,omitempty"`
}

// OnboardingYAML is one account wave.
type OnboardingYAML struct {
	Month    int `yaml:"month" json:"month"`
	Accounts int `yaml:"accounts" json:"accounts"`
}

// AssumptionOverrides patches the standard assumption set. Nil fields
// keep the default.
type AssumptionOverrides struct {
	ClaimsPerAccount     *int     `yaml:"claims_per_account,omitempty" json:"claims_per_account,omitempty"`
	AvgClaimValue        *float64 `yaml:"avg_claim_value,omitempty" json:"avg_claim_value,omitempty"`
	RevenuePct           *float64 `yaml:"revenue_pct,omitempty" json:"revenue_pct,omitempty"`
	DenialRate           *float64 `yaml:"denial_rate,omitempty" json:"denial_rate,omitempty"`
	RecoveryRate         *float64 `yaml:"recovery_rate,omitempty" json:"recovery_rate,omitempty"`
	MinutesPerClaim      *float64 `yaml:"minutes_per_claim,omitempty" json:"minutes_per_claim,omitempty"`
	DenialTimeMultiplier *float64 `yaml:"denial_time_multiplier,omitempty" json:"denial_time_multiplier,omitempty"`
	TargetUtilization    *float64 `yaml:"target_utilization,omitempty" json:"target_utilization,omitempty"`
	AnalystHourly        *float64 `yaml:"analyst_hourly,omitempty" json:"analyst_hourly,omitempty"`
	FixedMonthly         *float64 `yaml:"fixed_monthly,omitempty" json:"fixed_monthly,omitempty"`
}

// =============================================================================
// LOADING AND BUILDING
// =============================================================================

// Load parses a YAML scenario document. Unknown fields are rejected to
// catch typos in hand-written scenarios.
func Load(data []byte) (*ScenarioSpec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var spec ScenarioSpec
	if err := dec.Decode(&spec); err != nil {
		return nil, &engine.ConfigurationError{Field: "scenario", Reason: err.Error()}
	}
	return &spec, nil
}

// Build resolves the spec against the standard assumptions and returns
// the engine configuration. The config still goes through engine
// validation on Run.
func (s *ScenarioSpec) Build() (engine.Config, error) {
	a := rcm.DefaultAssumptions()
	s.applyOverrides(&a)

	if s.TrainingMonths != nil {
		a.TrainingMonths = *s.TrainingMonths
	}
	if len(s.Ramp) > 0 {
		a.Ramp = engine.NewStepRamp(s.Ramp...)
	}

	onboarding := make([]engine.OnboardingEvent, len(s.Onboarding))
	for i, ev := range s.Onboarding {
		onboarding[i] = engine.OnboardingEvent{Month: ev.Month, Accounts: ev.Accounts}
	}

	cfg := a.EngineConfig(onboarding, s.Horizon, decimal.NewFromFloat(s.SLATarget), s.HiringCap)
	if s.InitialStaff > 0 {
		cfg.InitialCohorts = []engine.Cohort{{Size: s.InitialStaff, Tenure: a.TrainingMonths}}
	}
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}

func (s *ScenarioSpec) applyOverrides(a *rcm.Assumptions) {
	o := s.Assumptions
	if o == nil {
		return
	}
	if o.ClaimsPerAccount != nil {
		a.Claims.ClaimsPerAccount = *o.ClaimsPerAccount
	}
	if o.AvgClaimValue != nil {
		a.Claims.AvgClaimValue = decimal.NewFromFloat(*o.AvgClaimValue)
	}
	if o.RevenuePct != nil {
		a.Claims.RevenuePct = decimal.NewFromFloat(*o.RevenuePct)
	}
	if o.DenialRate != nil {
		a.Claims.DenialRate = decimal.NewFromFloat(*o.DenialRate)
	}
	if o.RecoveryRate != nil {
		a.Claims.RecoveryRate = decimal.NewFromFloat(*o.RecoveryRate)
	}
	if o.MinutesPerClaim != nil {
		a.Claims.MinutesPerClaim = decimal.NewFromFloat(*o.MinutesPerClaim)
	}
	if o.DenialTimeMultiplier != nil {
		a.Claims.DenialTimeMultiplier = decimal.NewFromFloat(*o.DenialTimeMultiplier)
	}
	if o.TargetUtilization != nil {
		a.Workday.TargetUtilization = decimal.NewFromFloat(*o.TargetUtilization)
	}
	if o.AnalystHourly != nil {
		a.Labor.AnalystHourly = decimal.NewFromFloat(*o.AnalystHourly)
	}
	if o.FixedMonthly != nil {
		a.Over.FixedMonthly = decimal.NewFromFloat(*o.FixedMonthly)
	}
}
