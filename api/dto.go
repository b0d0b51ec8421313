/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types
  decouple the engine's decimal-typed records from the external API
  contract: decimals are rendered as strings so clients never see
  float artifacts.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Response: Wrappers combining several DTOs

VALIDATION:
  Validation is done in the engine, not in DTOs. Ad-hoc simulation
  requests reuse factory.ScenarioSpec directly (it carries JSON tags),
  so the API and YAML scenario schemas never drift apart.

SEE ALSO:
  - handlers.go: Uses these types
  - ../factory/scenario.go: ScenarioSpec, the request shape
*/
package api

import (
	"time"

	"github.com/warp/capacity-engine/engine"
	"github.com/warp/capacity-engine/store/sqlite"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ScenarioDTO describes a built-in scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Horizon     int    `json:"horizon"`
}

// RunDTO is run metadata in API responses.
type RunDTO struct {
	ID         string `json:"id"`
	ScenarioID string `json:"scenario_id"`
	Name       string `json:"name"`
	CreatedAt  string `json:"created_at"`
}

// CohortDTO is one cohort's share of a month.
type CohortDTO struct {
	HiredMonth   int    `json:"hired_month"`
	Size         int    `json:"size"`
	Tenure       int    `json:"tenure"`
	RampFraction string `json:"ramp_fraction"`
}

// MonthlyResultDTO is one simulated month.
type MonthlyResultDTO struct {
	Month             int         `json:"month"`
	Accounts          int         `json:"accounts"`
	Headcount         int         `json:"headcount"`
	NewHires          int         `json:"new_hires"`
	Cohorts           []CohortDTO `json:"cohorts"`
	RequiredHours     string      `json:"required_hours"`
	CapacityHours     string      `json:"capacity_hours"`
	Attainment        string      `json:"sla_attainment"`
	Utilization       string      `json:"utilization"`
	Quality           string      `json:"quality"`
	Revenue           string      `json:"revenue"`
	Cost              string      `json:"cost"`
	Margin            string      `json:"margin"`
	CumulativeRevenue string      `json:"cumulative_revenue"`
	CumulativeCost    string      `json:"cumulative_cost"`
	SLAUnmet          bool        `json:"sla_unmet"`
}

// RunResponse bundles a run with its result sequence.
type RunResponse struct {
	Run     RunDTO             `json:"run"`
	Results []MonthlyResultDTO `json:"results"`
}

// SimulateResponse carries an ad-hoc (unpersisted) run.
type SimulateResponse struct {
	Results []MonthlyResultDTO `json:"results"`
}

// ErrorResponse is the error body for all failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toRunDTO(run sqlite.Run) RunDTO {
	return RunDTO{
		ID:         run.ID,
		ScenarioID: run.ScenarioID,
		Name:       run.Name,
		CreatedAt:  run.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toResultDTOs(results []engine.MonthlyResult) []MonthlyResultDTO {
	dtos := make([]MonthlyResultDTO, len(results))
	for i, r := range results {
		cohorts := make([]CohortDTO, len(r.Cohorts))
		for j, c := range r.Cohorts {
			cohorts[j] = CohortDTO{
				HiredMonth:   c.HiredMonth,
				Size:         c.Size,
				Tenure:       c.Tenure,
				RampFraction: c.RampFraction.String(),
			}
		}
		dtos[i] = MonthlyResultDTO{
			Month:             r.Month,
			Accounts:          r.Accounts,
			Headcount:         r.Headcount,
			NewHires:          r.NewHires,
			Cohorts:           cohorts,
			RequiredHours:     r.RequiredHours.String(),
			CapacityHours:     r.CapacityHours.String(),
			Attainment:        r.Attainment.String(),
			Utilization:       r.Utilization.String(),
			Quality:           r.Quality.String(),
			Revenue:           r.Revenue.String(),
			Cost:              r.Cost.String(),
			Margin:            r.Margin.String(),
			CumulativeRevenue: r.CumulativeRevenue.String(),
			CumulativeCost:    r.CumulativeCost.String(),
			SLAUnmet:          r.SLAUnmet,
		}
	}
	return dtos
}
