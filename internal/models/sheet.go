package models

// Sheet tab names in the Friends of Shelby spreadsheet
const (
	SheetParticipation  = "Volunteer Participation Trends"
	SheetSatisfaction   = "Volunteer Satisfaction"
	SheetPopularEvents  = "Most Popular Events"
	SheetAcresTimeline  = "Acres Cleaned Timeline"
	SheetSurveyDetails  = "Survey Response Details"
	SheetBarrierRatings = "Barrier Ratings Over Time"
)

// KnownSheets lists every sheet the dashboard consumes, in display order
var KnownSheets = []string{
	SheetParticipation,
	SheetSatisfaction,
	SheetPopularEvents,
	SheetAcresTimeline,
	SheetSurveyDetails,
	SheetBarrierRatings,
}

// IsKnownSheet reports whether name is one of the dashboard's sheet tabs
func IsKnownSheet(name string) bool {
	for _, sheet := range KnownSheets {
		if sheet == name {
			return true
		}
	}
	return false
}
