package models

import "time"

// AcresRecord is one row of the Acres Cleaned Timeline sheet.
// CumulativeTotal is the running sum of AcresCleaned in sheet row order.
type AcresRecord struct {
	Date            time.Time `json:"date"`
	AcresCleaned    float64   `json:"acres_cleaned"`
	CumulativeTotal float64   `json:"cumulative_total"`
}

// BarrierRating is one row of the Barrier Ratings Over Time sheet
type BarrierRating struct {
	Date         time.Time `json:"date"`
	Organization string    `json:"organization"`
	Rating       float64   `json:"rating"`
}
