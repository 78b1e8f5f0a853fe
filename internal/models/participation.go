package models

import "time"

// ParticipationRecord is one row of the Volunteer Participation Trends sheet.
// ParticipantCount is the event's headcount; TotalCount is the volunteer
// hours column (the spreadsheet's historical naming, kept as-is).
type ParticipationRecord struct {
	Date             time.Time `json:"date"`
	EventName        string    `json:"event_name"`
	ParticipantCount int       `json:"participant_count"`
	TotalCount       int       `json:"total_count"`
}

// SatisfactionRecord is one row of the Volunteer Satisfaction sheet
type SatisfactionRecord struct {
	Date              time.Time `json:"date"`
	EventName         string    `json:"event_name"`
	SatisfactionScore float64   `json:"satisfaction_score"`
	OverallAverage    float64   `json:"overall_average"`
}

// PopularEvent is one row of the Most Popular Events sheet, or a row of the
// fallback ranking computed from participation data
type PopularEvent struct {
	EventName         string  `json:"event_name"`
	TotalParticipants int     `json:"total_participants"`
	PercentageShare   float64 `json:"percentage_share"`
}
