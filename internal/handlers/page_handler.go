package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"shelby-dashboard/internal/models"
	"shelby-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTemplate = template.Must(
	template.ParseFS(templateFS, "templates/dashboard.html"))

// PageHandler serves the server-rendered HTML dashboard
type PageHandler struct {
	dashboardService services.DashboardServiceInterface
}

func NewPageHandler(dashboardService services.DashboardServiceInterface) *PageHandler {
	return &PageHandler{dashboardService: dashboardService}
}

// GetDashboard renders the landing page: metric cards, the popular events
// table and inline chart images
//
// Method: GET /
//
// Filter query parameters are best-effort here: an invalid range preset
// falls back to all time instead of failing the page render.
func (h *PageHandler) GetDashboard(c echo.Context) error {
	filters := models.TableFilters{
		Organization: c.QueryParam("organization"),
		RangePreset:  c.QueryParam("range"),
	}
	if _, err := filters.Cutoff(time.Now()); err != nil {
		filters.RangePreset = models.RangeAll
	}

	page := h.dashboardService.VolunteerPage(c.Request().Context(), filters)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return dashboardTemplate.Execute(c.Response(), page)
}
