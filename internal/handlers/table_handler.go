package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"shelby-dashboard/internal/dto"
	apierrors "shelby-dashboard/internal/errors"
	"shelby-dashboard/internal/models"
	"shelby-dashboard/internal/services"
	"shelby-dashboard/internal/sheets"

	"github.com/labstack/echo/v4"
)

// TableHandler serves the processed sheet tables directly, one endpoint each
type TableHandler struct {
	processorService services.SheetProcessorServiceInterface
}

func NewTableHandler(processorService services.SheetProcessorServiceInterface) *TableHandler {
	return &TableHandler{processorService: processorService}
}

// GetParticipation returns the volunteer participation table
//
// Method: GET /api/v1/participation
//
// Query parameters:
//   - organization: Organization filter (optional)
//   - range: Date range preset (optional: last_month, last_3_months, last_year)
//
// Success Response: 200 OK
//   - rows: Array of participation records, oldest first
//   - count: Integer row count
//
// Error Responses:
//   - 400: Invalid range preset
//   - 502: Spreadsheet service unreachable
//   - 503: Spreadsheet access not configured
func (h *TableHandler) GetParticipation(c echo.Context) error {
	filters, ok, respErr := parseTableFilters(c)
	if !ok {
		return respErr
	}

	records, err := h.processorService.Participation(c.Request().Context(), filters)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TableResponse{Rows: records, Count: len(records)},
	})
}

// GetSatisfaction returns the volunteer satisfaction table
//
// Method: GET /api/v1/satisfaction
func (h *TableHandler) GetSatisfaction(c echo.Context) error {
	filters, ok, respErr := parseTableFilters(c)
	if !ok {
		return respErr
	}

	records, err := h.processorService.Satisfaction(c.Request().Context(), filters)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TableResponse{Rows: records, Count: len(records)},
	})
}

// GetPopularEvents returns the top events ranked by participant count
//
// Method: GET /api/v1/popular-events
func (h *TableHandler) GetPopularEvents(c echo.Context) error {
	events, err := h.processorService.PopularEvents(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TableResponse{Rows: events, Count: len(events)},
	})
}

// GetAcresTimeline returns the acres cleaned timeline with running totals
//
// Method: GET /api/v1/acres
func (h *TableHandler) GetAcresTimeline(c echo.Context) error {
	filters, ok, respErr := parseTableFilters(c)
	if !ok {
		return respErr
	}

	records, err := h.processorService.AcresTimeline(c.Request().Context(), filters)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TableResponse{Rows: records, Count: len(records)},
	})
}

// GetSurveyResponses returns the survey response details table
//
// Method: GET /api/v1/surveys
func (h *TableHandler) GetSurveyResponses(c echo.Context) error {
	filters, ok, respErr := parseTableFilters(c)
	if !ok {
		return respErr
	}

	records, err := h.processorService.SurveyResponses(c.Request().Context(), filters)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TableResponse{Rows: records, Count: len(records)},
	})
}

// GetBarrierRatings returns the barrier ratings table
//
// Method: GET /api/v1/barrier-ratings
func (h *TableHandler) GetBarrierRatings(c echo.Context) error {
	filters, ok, respErr := parseTableFilters(c)
	if !ok {
		return respErr
	}

	records, err := h.processorService.BarrierRatings(c.Request().Context(), filters)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.TableResponse{Rows: records, Count: len(records)},
	})
}

// GetSheets lists the spreadsheet's tab names (connection check)
//
// Method: GET /api/v1/sheets
func (h *TableHandler) GetSheets(c echo.Context) error {
	names, err := h.processorService.SheetNames(c.Request().Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.SheetListResponse{Sheets: names, Count: len(names)},
	})
}

// RefreshCache drops cached sheet rows so the next request refetches
//
// Method: POST /api/v1/cache/refresh
//
// Success Response: 200 OK with a confirmation message
func (h *TableHandler) RefreshCache(c echo.Context) error {
	h.processorService.ClearCache()

	slog.Info("Sheet cache cleared",
		"trace_id", getTraceID(c),
		"client_ip", getClientIP(c),
	)

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "cache cleared, next request will refetch sheet data",
	})
}

// handleServiceError maps processor failures to API error responses
func (h *TableHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, sheets.ErrNotConfigured):
		return SendError(c, apierrors.SheetsNotConfigured)
	case errors.Is(err, sheets.ErrSheetNotFound):
		return SendError(c, apierrors.SheetsNotFound)
	case errors.Is(err, sheets.ErrRateLimited):
		return SendError(c, apierrors.SheetsRateLimited)
	case errors.Is(err, services.ErrCircuitBreakerOpen):
		return SendError(c, apierrors.SystemServiceUnavailable,
			apierrors.WithDetails("spreadsheet upstream temporarily suspended"))
	case errors.Is(err, models.ErrInvalidRangePreset):
		return SendError(c, apierrors.ValidationOutOfRange)
	default:
		return SendUpstreamError(c, err)
	}
}
