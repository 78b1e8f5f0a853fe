package services

import (
	"strconv"
	"strings"
	"time"
)

// Cell coercion for raw spreadsheet rows. Sheets deliver every cell as a
// string; these helpers convert them to typed values with a fallback-to-zero
// policy. Malformed or missing cells never produce an error, they produce
// the type's zero value, so one bad row cannot take down a page.

// dateLayouts are tried in order when coercing date cells
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	time.RFC3339,
}

// cell returns the trimmed cell at idx, or "" when the row is too short
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// coerceInt converts a cell to an int, 0 on malformed input
func coerceInt(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}

// coerceFloat converts a cell to a float64, 0 on malformed input
func coerceFloat(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

// coerceDate converts a cell to a time.Time, trying each known layout.
// Unparseable dates yield the zero time; the record is kept.
func coerceDate(raw string) time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed
		}
	}

	return time.Time{}
}

// dataRows skips the header row. Sheets with no data rows (or nothing at
// all) yield nil.
func dataRows(raw [][]string) [][]string {
	if len(raw) <= 1 {
		return nil
	}
	return raw[1:]
}
