package models

import (
	"strings"
	"time"
)

// SurveyResponse is one row of the Survey Response Details sheet
type SurveyResponse struct {
	Date                  time.Time `json:"date"`
	RespondentID          string    `json:"respondent_id"`
	Organization          string    `json:"organization"`
	BarrierStatement      string    `json:"barrier_statement"`
	ParkVisitDetails      string    `json:"park_visit_details"`
	AccessibilityComments string    `json:"accessibility_comments"`
}

// FacesBarrier reports whether the respondent indicated a barrier.
// The sheet records free text; any answer containing "yes" counts.
func (r SurveyResponse) FacesBarrier() bool {
	return strings.Contains(strings.ToLower(r.BarrierStatement), "yes")
}
