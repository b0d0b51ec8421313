/*
model.go - The month-by-month state machine

PURPOSE:
  Owns MonthState and drives the monthly transition:

    1. Onboard:   apply the configured account delta
    2. Age:       increment every cohort's tenure (capped at training)
    3. Workload:  required staff-hours from active accounts
    4. Optimize:  minimum hires that satisfy the SLA target
    5. Hire:      append a tenure-0 cohort
    6. Metrics:   attainment, utilization, quality, financials
    7. Emit:      one immutable MonthlyResult

  The run is fully sequential - each month depends on the previous
  month's ending state - and terminates after exactly Horizon months.
  No convergence detection, no cancellation: re-running an identical
  Config produces a bit-identical result sequence.

FAILURE SEMANTICS:
  New rejects malformed configuration with a ConfigurationError before
  any month runs. Per-month SLA shortfalls are recorded on the result,
  never raised.

SEE ALSO:
  - config.go: Validation
  - optimizer.go: Step 4
  - calc.go: Steps 3 and 6
*/
package engine

// Simulation owns the mutable state of one run.
type Simulation struct {
	cfg   Config
	state MonthState
}

// New validates the configuration and prepares a simulation at month
// zero. The initial state is zero accounts, zero financials, and the
// configured starting cohorts (none by default).
func New(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cohorts := make([]Cohort, 0, len(cfg.InitialCohorts))
	for _, c := range cfg.InitialCohorts {
		if c.Tenure > cfg.TrainingMonths {
			c.Tenure = cfg.TrainingMonths
		}
		cohorts = append(cohorts, c)
	}

	return &Simulation{
		cfg:   cfg,
		state: MonthState{Cohorts: cohorts},
	}, nil
}

// Run simulates the configured horizon and returns one result per
// month, in order.
func (s *Simulation) Run() []MonthlyResult {
	results := make([]MonthlyResult, 0, s.cfg.Horizon)
	for month := 0; month < s.cfg.Horizon; month++ {
		results = append(results, s.step(month))
	}
	return results
}

// Run is the single entry point for external callers: validate, then
// simulate. The only returned error is a ConfigurationError.
func Run(cfg Config) ([]MonthlyResult, error) {
	sim, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return sim.Run(), nil
}

// step performs one full month transition and emits its result.
func (s *Simulation) step(month int) MonthlyResult {
	s.state.Month = month

	// 1. Onboard. The schedule is validated non-decreasing, so a
	// linear scan for this month's deltas is enough.
	for _, ev := range s.cfg.Onboarding {
		if ev.Month == month {
			s.state.Accounts += ev.Accounts
		}
	}

	// 2. Age cohorts. Month 0 reports initial cohorts at their
	// configured tenure; aging starts with the first transition.
	if month > 0 {
		for i := range s.state.Cohorts {
			if s.state.Cohorts[i].Tenure < s.cfg.TrainingMonths {
				s.state.Cohorts[i].Tenure++
			}
		}
	}

	// 3. Workload.
	required := Workload(s.state.Accounts, s.cfg.HoursPerAccount)

	// 4. Optimize staffing.
	plan := PlanHires(OptimizerInput{
		Cohorts:         s.state.Cohorts,
		Workload:        required,
		SLATarget:       s.cfg.SLATarget,
		HiringCap:       s.cfg.HiringCap,
		TrainingMonths:  s.cfg.TrainingMonths,
		Ramp:            s.cfg.Ramp,
		HoursPerAnalyst: s.cfg.HoursPerAnalyst,
	})

	// 5. Apply hires as a fresh cohort.
	if plan.Hires > 0 {
		s.state.Cohorts = append(s.state.Cohorts, Cohort{
			HiredMonth: month,
			Size:       plan.Hires,
			Tenure:     0,
		})
	}

	// 6. Compute metrics on the post-hire state.
	capacity := EffectiveCapacity(s.state.Cohorts, s.cfg.Ramp, s.cfg.TrainingMonths, s.cfg.HoursPerAnalyst)
	headcount := Headcount(s.state.Cohorts)
	cost, revenue, margin := Financials(headcount, s.state.Accounts, s.cfg.Rates)
	quality := Quality(plan.Attainment, s.state.Cohorts, s.cfg.TrainingMonths, s.cfg.Quality)

	s.state.CumulativeRevenue = s.state.CumulativeRevenue.Add(revenue)
	s.state.CumulativeCost = s.state.CumulativeCost.Add(cost)

	// 7. Emit.
	return MonthlyResult{
		Month:             month,
		Accounts:          s.state.Accounts,
		Headcount:         headcount,
		NewHires:          plan.Hires,
		Cohorts:           s.breakdown(),
		RequiredHours:     required,
		CapacityHours:     capacity,
		Attainment:        plan.Attainment,
		Utilization:       Utilization(required, capacity),
		Quality:           quality,
		Revenue:           revenue,
		Cost:              cost,
		Margin:            margin,
		CumulativeRevenue: s.state.CumulativeRevenue,
		CumulativeCost:    s.state.CumulativeCost,
		SLAUnmet:          plan.SLAUnmet,
	}
}

// breakdown snapshots the cohort mix for the result record.
func (s *Simulation) breakdown() []CohortBreakdown {
	out := make([]CohortBreakdown, 0, len(s.state.Cohorts))
	for _, c := range s.state.Cohorts {
		out = append(out, CohortBreakdown{
			HiredMonth:   c.HiredMonth,
			Size:         c.Size,
			Tenure:       c.Tenure,
			RampFraction: s.cfg.Ramp.Fraction(c.Tenure, s.cfg.TrainingMonths),
		})
	}
	return out
}
