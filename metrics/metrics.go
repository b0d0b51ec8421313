// Package metrics exposes Prometheus observability for the capacity
// engine. Gauges reflect the most recent simulation run; counters
// accumulate across the server's lifetime.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/warp/capacity-engine/engine"
)

// Registry is the custom prometheus registry for the application.
var Registry = prometheus.NewRegistry()

// factory registers metrics to our custom Registry directly.
var factory = promauto.With(Registry)

// =============================================================================
// RUN METRICS - Last simulation outcome
// =============================================================================

// MonthsSimulated is the horizon of the last run.
var MonthsSimulated = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "capacity",
	Name:      "months_simulated",
	Help:      "Number of months in the most recent simulation run",
})

// MonthsSLAUnmet counts months in the last run that could not reach
// the SLA target within the hiring cap. Nonzero values indicate the
// cap, not demand, is the binding constraint.
var MonthsSLAUnmet = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "capacity",
	Name:      "months_sla_unmet",
	Help:      "Months in the most recent run flagged as missing the SLA target",
})

// PeakHeadcount is the largest monthly headcount of the last run.
var PeakHeadcount = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "capacity",
	Name:      "peak_headcount",
	Help:      "Largest monthly headcount in the most recent run",
})

// TotalHires sums new hires across the last run.
var TotalHires = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "capacity",
	Name:      "total_hires",
	Help:      "Total new hires across the most recent run",
})

// FinalCumulativeMargin is cumulative revenue minus cumulative cost at
// the last run's horizon.
var FinalCumulativeMargin = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "capacity",
	Name:      "final_cumulative_margin_dollars",
	Help:      "Cumulative margin at the end of the most recent run",
})

// SimulationsTotal counts simulation runs served.
var SimulationsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "capacity",
	Name:      "simulations_total",
	Help:      "Number of simulation runs executed",
})

// ObserveRun updates the run gauges from a completed result sequence.
func ObserveRun(results []engine.MonthlyResult) {
	SimulationsTotal.Inc()
	MonthsSimulated.Set(float64(len(results)))

	unmet := 0
	peak := 0
	hires := 0
	for _, r := range results {
		if r.SLAUnmet {
			unmet++
		}
		if r.Headcount > peak {
			peak = r.Headcount
		}
		hires += r.NewHires
	}
	MonthsSLAUnmet.Set(float64(unmet))
	PeakHeadcount.Set(float64(peak))
	TotalHires.Set(float64(hires))

	if len(results) > 0 {
		last := results[len(results)-1]
		margin, _ := last.CumulativeRevenue.Sub(last.CumulativeCost).Float64()
		FinalCumulativeMargin.Set(margin)
	}
}
