package handlers

import (
	"strings"

	apierrors "shelby-dashboard/internal/errors"
	"shelby-dashboard/internal/models"

	"github.com/labstack/echo/v4"
)

// tableFilterParams carries the shared query parameters of the table and
// chart endpoints
type tableFilterParams struct {
	Organization string `query:"organization"`
	Range        string `query:"range" validate:"omitempty,oneof=last_month last_3_months last_year"`
}

// parseTableFilters binds and validates the filter query parameters. On
// failure it writes the error response and returns ok=false; the handler
// returns the accompanying error value as-is.
func parseTableFilters(c echo.Context) (models.TableFilters, bool, error) {
	var params tableFilterParams
	if err := c.Bind(&params); err != nil {
		return models.TableFilters{}, false, SendError(c, apierrors.ValidationGeneral,
			apierrors.WithDetails("malformed query parameters"))
	}
	if err := c.Validate(&params); err != nil {
		return models.TableFilters{}, false, SendError(c, apierrors.ValidationOutOfRange,
			apierrors.WithDetails("range must be one of last_month, last_3_months, last_year"))
	}

	return models.TableFilters{
		Organization: strings.TrimSpace(params.Organization),
		RangePreset:  params.Range,
	}, true, nil
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
