package factory

// =============================================================================
// BUILT-IN SCENARIOS - Shipped with the server for demos and smoke runs
// =============================================================================

const baselineYAML = `
id: baseline
name: Baseline Onboarding Ramp
description: Three onboarding waves (10/30/60 accounts) at the standard assumptions
horizon: 6
sla_target: 0.95
hiring_cap: 1500
onboarding:
  - {month: 1, accounts: 10}
  - {month: 2, accounts: 30}
  - {month: 3, accounts: 60}
`

const surgeYAML = `
id: surge
name: Single Surge, Capped Hiring
description: One 1000-account wave against a 50-hire monthly cap; shows a sustained shortfall
horizon: 6
sla_target: 0.95
hiring_cap: 50
onboarding:
  - {month: 1, accounts: 1000}
`

const hiringFreezeYAML = `
id: hiring-freeze
name: Hiring Freeze
description: Onboarding continues with a zero hiring cap; every loaded month misses target
horizon: 4
sla_target: 0.95
hiring_cap: 0
onboarding:
  - {month: 1, accounts: 10}
`

const steadyStateYAML = `
id: steady-state
name: Steady State
description: No onboarding at all; the floor stays idle and clean
horizon: 6
sla_target: 0.95
hiring_cap: 100
`

var builtinYAML = []string{baselineYAML, surgeYAML, hiringFreezeYAML, steadyStateYAML}

// Builtin returns the scenarios shipped with the server. The documents
// are compiled in, so parse failures are programmer errors.
func Builtin() []ScenarioSpec {
	specs := make([]ScenarioSpec, 0, len(builtinYAML))
	for _, doc := range builtinYAML {
		spec, err := Load([]byte(doc))
		if err != nil {
			panic("builtin scenario does not parse: " + err.Error())
		}
		specs = append(specs, *spec)
	}
	return specs
}

// FindBuiltin returns the built-in scenario with the given id, or nil.
func FindBuiltin(id string) *ScenarioSpec {
	for _, spec := range Builtin() {
		if spec.ID == id {
			return &spec
		}
	}
	return nil
}
