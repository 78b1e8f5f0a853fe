package handlers

import (
	"net/http"

	"shelby-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetMetrics returns the dashboard's metric cards
//
// Method: GET /api/v1/dashboard/metrics
//
// Success Response: 200 OK
//   - total_volunteers: Integer sum of participant counts
//   - total_hours: Integer sum of reported hours
//   - value_of_hours: Decimal dollar value of volunteer time
//   - total_acres_cleaned: Float cumulative acres
//   - percent_forest_reached: Float percentage, capped at 100
//   - total_survey_responses: Integer row count
//   - percent_facing_barriers: Float percentage of yes responses
//   - average_barrier_rating: Float mean rating
//   - sample: Boolean, true when showing sample data
//   - warnings: Array of inline load warnings, when present
//
// This endpoint never returns an upstream error: sheets that cannot be
// loaded zero their cards and add a warning instead.
func (h *DashboardHandler) GetMetrics(c echo.Context) error {
	metrics := h.dashboardService.Metrics(c.Request().Context())

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: metrics,
	})
}

// GetVolunteerPage returns the Volunteer Program page payload
//
// Method: GET /api/v1/dashboard/volunteer
//
// Query parameters:
//   - organization: Organization filter (optional, "All" disables)
//   - range: Date range preset (optional: last_month, last_3_months, last_year)
//
// Success Response: 200 OK
//   - metrics: The metric cards
//   - participation: Participation records, oldest first
//   - satisfaction: Satisfaction records
//   - popular_events: Top events by participant count
//   - warnings: Inline load warnings, when present
//
// Error Responses:
//   - 400: Invalid range preset
func (h *DashboardHandler) GetVolunteerPage(c echo.Context) error {
	filters, ok, respErr := parseTableFilters(c)
	if !ok {
		return respErr
	}

	page := h.dashboardService.VolunteerPage(c.Request().Context(), filters)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: page,
	})
}

// GetForestPage returns the Restore The Forest page payload
//
// Method: GET /api/v1/dashboard/forest
//
// Query parameters:
//   - organization: Organization filter (optional)
//   - range: Date range preset (optional)
//
// Error Responses:
//   - 400: Invalid range preset
func (h *DashboardHandler) GetForestPage(c echo.Context) error {
	filters, ok, respErr := parseTableFilters(c)
	if !ok {
		return respErr
	}

	page := h.dashboardService.ForestPage(c.Request().Context(), filters)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: page,
	})
}

// GetStrategicPage returns the Strategic Plan Pillar 1 page payload
//
// Method: GET /api/v1/dashboard/strategic
//
// Query parameters:
//   - organization: Organization filter (optional)
//   - range: Date range preset (optional)
//
// Error Responses:
//   - 400: Invalid range preset
func (h *DashboardHandler) GetStrategicPage(c echo.Context) error {
	filters, ok, respErr := parseTableFilters(c)
	if !ok {
		return respErr
	}

	page := h.dashboardService.StrategicPage(c.Request().Context(), filters)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: page,
	})
}
