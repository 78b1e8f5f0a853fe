package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"shelby-dashboard/internal/models"
	"shelby-dashboard/internal/sheets"
)

// Required column counts per sheet; shorter rows are skipped, matching the
// spreadsheet's habit of leaving trailing cells blank on partial rows
const (
	participationColumns = 4
	satisfactionColumns  = 4
	popularEventColumns  = 3
	acresColumns         = 2
	surveyColumns        = 6
	barrierColumns       = 3
)

// popularEventsTopN is how many events the popularity fallback ranking keeps
const popularEventsTopN = 3

type sheetProcessorService struct {
	source  sheets.RowSource
	breaker CircuitBreakerInterface
	cache   *rowCache
	metrics MetricsRecorderInterface
	nowFn   func() time.Time
}

func NewSheetProcessorService(
	source sheets.RowSource,
	breaker CircuitBreakerInterface,
	cacheTTL time.Duration,
	metrics MetricsRecorderInterface,
) SheetProcessorServiceInterface {
	return &sheetProcessorService{
		source:  source,
		breaker: breaker,
		cache:   newRowCache(cacheTTL),
		metrics: metrics,
		nowFn:   time.Now,
	}
}

func (s *sheetProcessorService) Participation(ctx context.Context, filters models.TableFilters) ([]models.ParticipationRecord, error) {
	raw, err := s.fetchRows(ctx, models.SheetParticipation)
	if err != nil {
		return nil, err
	}

	records := make([]models.ParticipationRecord, 0, len(raw))
	for _, row := range dataRows(raw) {
		if len(row) < participationColumns {
			continue
		}
		records = append(records, models.ParticipationRecord{
			Date:             coerceDate(cell(row, 0)),
			EventName:        cell(row, 1),
			ParticipantCount: coerceInt(cell(row, 2)),
			TotalCount:       coerceInt(cell(row, 3)),
		})
	}

	cutoff, err := filters.Cutoff(s.nowFn())
	if err != nil {
		return nil, err
	}
	if !cutoff.IsZero() {
		filtered := records[:0]
		for _, r := range records {
			if !r.Date.Before(cutoff) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	// Stable: rows sharing a date keep their sheet order
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	return records, nil
}

func (s *sheetProcessorService) Satisfaction(ctx context.Context, filters models.TableFilters) ([]models.SatisfactionRecord, error) {
	raw, err := s.fetchRows(ctx, models.SheetSatisfaction)
	if err != nil {
		return nil, err
	}

	records := make([]models.SatisfactionRecord, 0, len(raw))
	for _, row := range dataRows(raw) {
		if len(row) < satisfactionColumns {
			continue
		}
		records = append(records, models.SatisfactionRecord{
			Date:              coerceDate(cell(row, 0)),
			EventName:         cell(row, 1),
			SatisfactionScore: coerceFloat(cell(row, 2)),
			OverallAverage:    coerceFloat(cell(row, 3)),
		})
	}

	cutoff, err := filters.Cutoff(s.nowFn())
	if err != nil {
		return nil, err
	}
	if !cutoff.IsZero() {
		filtered := records[:0]
		for _, r := range records {
			if !r.Date.Before(cutoff) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	return records, nil
}

// PopularEvents prefers the curated Most Popular Events sheet. When that
// sheet is empty, missing, or unreachable it falls back to ranking the
// participation data directly.
func (s *sheetProcessorService) PopularEvents(ctx context.Context) ([]models.PopularEvent, error) {
	raw, err := s.fetchRows(ctx, models.SheetPopularEvents)
	if err == nil {
		events := make([]models.PopularEvent, 0, len(raw))
		for _, row := range dataRows(raw) {
			if len(row) < popularEventColumns {
				continue
			}
			events = append(events, models.PopularEvent{
				EventName:         cell(row, 0),
				TotalParticipants: coerceInt(cell(row, 1)),
				PercentageShare:   coerceFloat(cell(row, 2)),
			})
		}
		if len(events) > 0 {
			return events, nil
		}
	} else {
		slog.Warn("popular events sheet unavailable, ranking participation data instead",
			"error", err)
	}

	return s.rankParticipation(ctx)
}

// rankParticipation is the popularity fallback: group participation rows by
// event, sum headcounts, compute each event's share of the grand total, and
// keep the top N. Ties keep first-appearance order.
func (s *sheetProcessorService) rankParticipation(ctx context.Context) ([]models.PopularEvent, error) {
	participation, err := s.Participation(ctx, models.TableFilters{})
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	order := make([]string, 0)
	for _, record := range participation {
		if _, seen := totals[record.EventName]; !seen {
			order = append(order, record.EventName)
		}
		totals[record.EventName] += record.ParticipantCount
	}

	grandTotal := 0
	for _, count := range totals {
		grandTotal += count
	}

	events := make([]models.PopularEvent, 0, len(order))
	for _, name := range order {
		share := 0.0
		if grandTotal > 0 {
			share = round2(float64(totals[name]) / float64(grandTotal) * 100)
		}
		events = append(events, models.PopularEvent{
			EventName:         name,
			TotalParticipants: totals[name],
			PercentageShare:   share,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].TotalParticipants > events[j].TotalParticipants
	})
	if len(events) > popularEventsTopN {
		events = events[:popularEventsTopN]
	}

	return events, nil
}

// AcresTimeline returns acres records with the cumulative running total.
// The cumulative sum is computed over the full sheet in row order before
// any date filter is applied, so filtering a window does not rewrite the
// running total's history.
func (s *sheetProcessorService) AcresTimeline(ctx context.Context, filters models.TableFilters) ([]models.AcresRecord, error) {
	raw, err := s.fetchRows(ctx, models.SheetAcresTimeline)
	if err != nil {
		return nil, err
	}

	records := make([]models.AcresRecord, 0, len(raw))
	cumulative := 0.0
	for _, row := range dataRows(raw) {
		if len(row) < acresColumns {
			continue
		}
		acres := coerceFloat(cell(row, 1))
		cumulative += acres
		records = append(records, models.AcresRecord{
			Date:            coerceDate(cell(row, 0)),
			AcresCleaned:    acres,
			CumulativeTotal: cumulative,
		})
	}

	cutoff, err := filters.Cutoff(s.nowFn())
	if err != nil {
		return nil, err
	}
	if !cutoff.IsZero() {
		filtered := records[:0]
		for _, r := range records {
			if !r.Date.Before(cutoff) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	return records, nil
}

func (s *sheetProcessorService) SurveyResponses(ctx context.Context, filters models.TableFilters) ([]models.SurveyResponse, error) {
	raw, err := s.fetchRows(ctx, models.SheetSurveyDetails)
	if err != nil {
		return nil, err
	}

	cutoff, err := filters.Cutoff(s.nowFn())
	if err != nil {
		return nil, err
	}

	records := make([]models.SurveyResponse, 0, len(raw))
	for _, row := range dataRows(raw) {
		if len(row) < surveyColumns {
			continue
		}
		record := models.SurveyResponse{
			Date:                  coerceDate(cell(row, 0)),
			RespondentID:          cell(row, 1),
			Organization:          cell(row, 2),
			BarrierStatement:      cell(row, 3),
			ParkVisitDetails:      cell(row, 4),
			AccessibilityComments: cell(row, 5),
		}
		if filters.FiltersOrganization() && record.Organization != filters.Organization {
			continue
		}
		if !cutoff.IsZero() && record.Date.Before(cutoff) {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func (s *sheetProcessorService) BarrierRatings(ctx context.Context, filters models.TableFilters) ([]models.BarrierRating, error) {
	raw, err := s.fetchRows(ctx, models.SheetBarrierRatings)
	if err != nil {
		return nil, err
	}

	cutoff, err := filters.Cutoff(s.nowFn())
	if err != nil {
		return nil, err
	}

	records := make([]models.BarrierRating, 0, len(raw))
	for _, row := range dataRows(raw) {
		if len(row) < barrierColumns {
			continue
		}
		record := models.BarrierRating{
			Date:         coerceDate(cell(row, 0)),
			Organization: cell(row, 1),
			Rating:       coerceFloat(cell(row, 2)),
		}
		if filters.FiltersOrganization() && record.Organization != filters.Organization {
			continue
		}
		if !cutoff.IsZero() && record.Date.Before(cutoff) {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func (s *sheetProcessorService) SheetNames(ctx context.Context) ([]string, error) {
	if s.breaker.IsOpen() {
		s.metrics.SetCircuitBreakerState(s.breaker.GetState())
		return nil, ErrCircuitBreakerOpen
	}

	start := time.Now()
	names, err := s.source.SheetNames(ctx)
	if err != nil {
		s.breaker.RecordFailure()
		s.metrics.SetCircuitBreakerState(s.breaker.GetState())
		s.metrics.RecordFetch("metadata", "error", time.Since(start))
		return nil, fmt.Errorf("listing sheet names: %w", err)
	}

	s.breaker.RecordSuccess()
	s.metrics.SetCircuitBreakerState(s.breaker.GetState())
	s.metrics.RecordFetch("metadata", "success", time.Since(start))

	return names, nil
}

func (s *sheetProcessorService) ClearCache() {
	s.cache.Clear()
	slog.Info("sheet row cache cleared")
}

// fetchRows returns raw rows for a sheet, consulting the TTL cache and the
// circuit breaker before going upstream
func (s *sheetProcessorService) fetchRows(ctx context.Context, sheet string) ([][]string, error) {
	if rows, fresh := s.cache.Get(sheet); fresh {
		s.metrics.RecordCacheHit(sheet)
		return rows, nil
	}
	s.metrics.RecordCacheMiss(sheet)

	if s.breaker.IsOpen() {
		s.metrics.SetCircuitBreakerState(s.breaker.GetState())
		return nil, ErrCircuitBreakerOpen
	}

	start := time.Now()
	rows, err := s.source.FetchRows(ctx, sheet)
	if err != nil {
		s.breaker.RecordFailure()
		s.metrics.SetCircuitBreakerState(s.breaker.GetState())
		s.metrics.RecordFetch(sheet, "error", time.Since(start))
		slog.Error("sheet fetch failed",
			"sheet", sheet,
			"error", err)
		return nil, fmt.Errorf("fetching sheet %q: %w", sheet, err)
	}

	s.breaker.RecordSuccess()
	s.metrics.SetCircuitBreakerState(s.breaker.GetState())
	s.metrics.RecordFetch(sheet, "success", time.Since(start))
	s.cache.Set(sheet, rows)

	return rows, nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
