package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardMetrics holds the values behind the dashboard's metric cards.
// All values are computed fresh from the processed sheet tables; when the
// service runs without spreadsheet access they are the sample numbers and
// Sample is true.
type DashboardMetrics struct {
	TotalVolunteers       int             `json:"total_volunteers"`
	TotalHours            int             `json:"total_hours"`
	HoursValue            decimal.Decimal `json:"value_of_hours"`
	TotalAcresCleaned     float64         `json:"total_acres_cleaned"`
	PercentForestReached  float64         `json:"percent_forest_reached"`
	TotalSurveyResponses  int             `json:"total_survey_responses"`
	PercentFacingBarriers float64         `json:"percent_facing_barriers"`
	AverageBarrierRating  float64         `json:"average_barrier_rating"`
	Sample                bool            `json:"sample"`
	GeneratedAt           time.Time       `json:"generated_at"`
	// Warnings carries inline notices about sheets that failed to load;
	// a failed sheet zeroes its metrics instead of failing the request
	Warnings []string `json:"warnings,omitempty"`
}

// SampleDashboardMetrics returns the hardcoded fallback numbers shown when
// no spreadsheet is configured
func SampleDashboardMetrics() *DashboardMetrics {
	return &DashboardMetrics{
		TotalVolunteers:       21324,
		TotalHours:            16769,
		HoursValue:            decimal.RequireFromString("221324.50"),
		TotalAcresCleaned:     1340,
		PercentForestReached:  34,
		TotalSurveyResponses:  25,
		PercentFacingBarriers: 75,
		Sample:                true,
		GeneratedAt:           time.Now().UTC(),
	}
}
