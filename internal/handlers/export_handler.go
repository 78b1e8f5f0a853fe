package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	apierrors "shelby-dashboard/internal/errors"
	"shelby-dashboard/internal/services"
	"shelby-dashboard/internal/sheets"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the full-dashboard workbook download
type ExportHandler struct {
	exportService services.ExportServiceInterface
}

func NewExportHandler(exportService services.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// GetWorkbook downloads every processed table plus the metric summary as
// an XLSX workbook
//
// Method: GET /api/v1/export.xlsx
//
// Success Response: 200 OK, XLSX body with a dated attachment filename
//
// Error Responses:
//   - 500: Workbook generation failed
//   - 502: Spreadsheet service unreachable
//   - 503: Spreadsheet access not configured
func (h *ExportHandler) GetWorkbook(c echo.Context) error {
	data, err := h.exportService.Workbook(c.Request().Context())
	if err != nil {
		switch {
		case errors.Is(err, sheets.ErrNotConfigured):
			return SendError(c, apierrors.SheetsNotConfigured)
		case errors.Is(err, services.ErrCircuitBreakerOpen):
			return SendError(c, apierrors.SystemServiceUnavailable)
		case errors.Is(err, sheets.ErrSheetNotFound), errors.Is(err, sheets.ErrRateLimited):
			return SendUpstreamError(c, err)
		default:
			return SendError(c, apierrors.ExportGenerationFailed)
		}
	}

	filename := fmt.Sprintf("shelby-dashboard-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.Blob(http.StatusOK, xlsxContentType, data)
}
