package services

import (
	"context"
	"time"

	"shelby-dashboard/internal/dto"
	"shelby-dashboard/internal/models"
)

// SheetProcessorServiceInterface normalizes raw spreadsheet rows into typed,
// filtered tables. Every method degrades to an empty table on upstream
// failure only at the dashboard level; here failures are returned so callers
// decide how to surface them.
type SheetProcessorServiceInterface interface {
	Participation(ctx context.Context, filters models.TableFilters) ([]models.ParticipationRecord, error)
	Satisfaction(ctx context.Context, filters models.TableFilters) ([]models.SatisfactionRecord, error)
	PopularEvents(ctx context.Context) ([]models.PopularEvent, error)
	AcresTimeline(ctx context.Context, filters models.TableFilters) ([]models.AcresRecord, error)
	SurveyResponses(ctx context.Context, filters models.TableFilters) ([]models.SurveyResponse, error)
	BarrierRatings(ctx context.Context, filters models.TableFilters) ([]models.BarrierRating, error)
	SheetNames(ctx context.Context) ([]string, error)
	ClearCache()
}

// DashboardServiceInterface aggregates processed tables into the metric
// cards and composite page payloads. It never fails a request: upstream
// errors become zeroed metrics plus inline warnings.
type DashboardServiceInterface interface {
	Metrics(ctx context.Context) *models.DashboardMetrics
	VolunteerPage(ctx context.Context, filters models.TableFilters) *dto.VolunteerPage
	ForestPage(ctx context.Context, filters models.TableFilters) *dto.ForestPage
	StrategicPage(ctx context.Context, filters models.TableFilters) *dto.StrategicPage
}

// ChartServiceInterface renders dashboard charts as PNG images
type ChartServiceInterface interface {
	ParticipationChart(ctx context.Context, filters models.TableFilters) ([]byte, error)
	AcresChart(ctx context.Context, filters models.TableFilters) ([]byte, error)
	PopularEventsChart(ctx context.Context) ([]byte, error)
	SatisfactionChart(ctx context.Context, filters models.TableFilters) ([]byte, error)
}

// ExportServiceInterface builds the XLSX workbook export of every table
type ExportServiceInterface interface {
	Workbook(ctx context.Context) ([]byte, error)
}

// CircuitBreakerInterface guards the spreadsheet upstream
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
}

// MetricsRecorderInterface records operational metrics
type MetricsRecorderInterface interface {
	RecordFetch(sheet, status string, duration time.Duration)
	RecordCacheHit(sheet string)
	RecordCacheMiss(sheet string)
	SetCircuitBreakerState(state models.CircuitBreakerState)
	RecordExport(status string, duration time.Duration)
	RecordChartRender(chart, status string)
}
