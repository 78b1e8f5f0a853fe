package dto

import "shelby-dashboard/internal/models"

// Dashboard page DTOs. Each mirrors one page of the original dashboard:
// the metric cards plus the tables its charts are drawn from.

// VolunteerPage backs the Volunteer Program page
type VolunteerPage struct {
	Metrics       *models.DashboardMetrics     `json:"metrics"`
	Participation []models.ParticipationRecord `json:"participation"`
	Satisfaction  []models.SatisfactionRecord  `json:"satisfaction"`
	PopularEvents []models.PopularEvent        `json:"popular_events"`
	Warnings      []string                     `json:"warnings,omitempty"`
}

// ForestPage backs the Restore The Forest Program page
type ForestPage struct {
	Metrics        *models.DashboardMetrics `json:"metrics"`
	AcresTimeline  []models.AcresRecord     `json:"acres_timeline"`
	BarrierRatings []models.BarrierRating   `json:"barrier_ratings"`
	Warnings       []string                 `json:"warnings,omitempty"`
}

// StrategicPage backs the Strategic Plan - Pillar 1 page
type StrategicPage struct {
	Metrics         *models.DashboardMetrics `json:"metrics"`
	SurveyResponses []models.SurveyResponse  `json:"survey_responses"`
	BarrierRatings  []models.BarrierRating   `json:"barrier_ratings"`
	Warnings        []string                 `json:"warnings,omitempty"`
}

// SheetListResponse lists the spreadsheet's tabs (connection check)
type SheetListResponse struct {
	Sheets []string `json:"sheets"`
	Count  int      `json:"count"`
}

// TableResponse wraps a single processed table with its row count and any
// inline warning produced while loading it
type TableResponse struct {
	Rows     interface{} `json:"rows"`
	Count    int         `json:"count"`
	Warnings []string    `json:"warnings,omitempty"`
}
