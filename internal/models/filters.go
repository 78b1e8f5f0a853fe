package models

import (
	"errors"
	"time"
)

// Date range presets from the dashboard's sidebar filters
const (
	RangeAll         = ""
	RangeLastMonth   = "last_month"
	RangeLast3Months = "last_3_months"
	RangeLastYear    = "last_year"
)

// OrganizationAll disables organization filtering
const OrganizationAll = "All"

var ErrInvalidRangePreset = errors.New("invalid date range preset")

// TableFilters narrows processed sheet tables before they are returned.
// The zero value applies no filtering.
type TableFilters struct {
	Organization string
	RangePreset  string
}

// Cutoff returns the earliest date admitted by the range preset, relative to
// now. The zero time means no date filtering.
func (f TableFilters) Cutoff(now time.Time) (time.Time, error) {
	switch f.RangePreset {
	case RangeAll:
		return time.Time{}, nil
	case RangeLastMonth:
		return now.AddDate(0, -1, 0), nil
	case RangeLast3Months:
		return now.AddDate(0, -3, 0), nil
	case RangeLastYear:
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, ErrInvalidRangePreset
	}
}

// FiltersOrganization reports whether an organization filter is active
func (f TableFilters) FiltersOrganization() bool {
	return f.Organization != "" && f.Organization != OrganizationAll
}
