package handlers

import (
	"errors"
	"net/http"
	"strings"

	apierrors "shelby-dashboard/internal/errors"
	"shelby-dashboard/internal/services"
	"shelby-dashboard/internal/sheets"

	"github.com/labstack/echo/v4"
)

// ChartHandler serves the dashboard's charts as standalone PNG images
type ChartHandler struct {
	chartService services.ChartServiceInterface
}

func NewChartHandler(chartService services.ChartServiceInterface) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// GetChart renders one named chart
//
// Method: GET /api/v1/charts/:name
//
// Path parameters:
//   - name: participation, acres, popular-events or satisfaction,
//     with an optional .png suffix
//
// Query parameters:
//   - organization: Organization filter (optional, ignored by popular-events)
//   - range: Date range preset (optional)
//
// Success Response: 200 OK, image/png body
//
// Error Responses:
//   - 400: Unknown chart name or invalid range preset
//   - 404: No data points to chart after filtering
//   - 502: Spreadsheet service unreachable
func (h *ChartHandler) GetChart(c echo.Context) error {
	filters, ok, respErr := parseTableFilters(c)
	if !ok {
		return respErr
	}

	ctx := c.Request().Context()

	var (
		png []byte
		err error
	)
	switch strings.TrimSuffix(c.Param("name"), ".png") {
	case "participation":
		png, err = h.chartService.ParticipationChart(ctx, filters)
	case "acres":
		png, err = h.chartService.AcresChart(ctx, filters)
	case "popular-events":
		png, err = h.chartService.PopularEventsChart(ctx)
	case "satisfaction":
		png, err = h.chartService.SatisfactionChart(ctx, filters)
	default:
		return SendError(c, apierrors.ChartUnknown,
			apierrors.WithDetails("chart must be one of participation, acres, popular-events, satisfaction"))
	}

	if err != nil {
		return h.handleChartError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *ChartHandler) handleChartError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNoChartData):
		return SendError(c, apierrors.SheetsNotFound,
			apierrors.WithDetails("no data points to chart"))
	case errors.Is(err, sheets.ErrNotConfigured):
		return SendError(c, apierrors.SheetsNotConfigured)
	case errors.Is(err, services.ErrCircuitBreakerOpen):
		return SendError(c, apierrors.SystemServiceUnavailable)
	default:
		return SendError(c, apierrors.ChartRenderFailed,
			apierrors.WithDetails(err.Error()))
	}
}
