package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"shelby-dashboard/internal/config"
	"shelby-dashboard/internal/dto"
	"shelby-dashboard/internal/models"
)

type dashboardService struct {
	processor SheetProcessorServiceInterface
	program   config.Program
	sample    bool
}

// NewDashboardService builds the aggregation layer on top of the sheet
// processor. When sample is true no upstream calls are made and every
// payload carries the hardcoded sample numbers.
func NewDashboardService(processor SheetProcessorServiceInterface, program config.Program, sample bool) DashboardServiceInterface {
	return &dashboardService{
		processor: processor,
		program:   program,
		sample:    sample,
	}
}

// Metrics computes the dashboard's metric cards. It never fails: a sheet
// that cannot be loaded zeroes its metrics and adds a warning instead.
func (s *dashboardService) Metrics(ctx context.Context) *models.DashboardMetrics {
	if s.sample {
		return models.SampleDashboardMetrics()
	}

	metrics := &models.DashboardMetrics{GeneratedAt: time.Now().UTC()}

	participation, err := s.processor.Participation(ctx, models.TableFilters{})
	if err != nil {
		s.warn(metrics, models.SheetParticipation, err)
	} else {
		for _, record := range participation {
			metrics.TotalVolunteers += record.ParticipantCount
			metrics.TotalHours += record.TotalCount
		}
	}
	metrics.HoursValue = decimal.NewFromInt(int64(metrics.TotalHours)).
		Mul(s.program.VolunteerHourValue).
		Round(2)

	acres, err := s.processor.AcresTimeline(ctx, models.TableFilters{})
	if err != nil {
		s.warn(metrics, models.SheetAcresTimeline, err)
	} else if len(acres) > 0 {
		metrics.TotalAcresCleaned = acres[len(acres)-1].CumulativeTotal
		if s.program.ForestAcres > 0 {
			reached := metrics.TotalAcresCleaned / s.program.ForestAcres * 100
			metrics.PercentForestReached = math.Min(100, reached)
		}
	}

	surveys, err := s.processor.SurveyResponses(ctx, models.TableFilters{})
	if err != nil {
		s.warn(metrics, models.SheetSurveyDetails, err)
	} else {
		metrics.TotalSurveyResponses = len(surveys)
		if len(surveys) > 0 {
			facing := 0
			for _, response := range surveys {
				if response.FacesBarrier() {
					facing++
				}
			}
			metrics.PercentFacingBarriers = round2(float64(facing) / float64(len(surveys)) * 100)
		}
	}

	ratings, err := s.processor.BarrierRatings(ctx, models.TableFilters{})
	if err != nil {
		s.warn(metrics, models.SheetBarrierRatings, err)
	} else if len(ratings) > 0 {
		sum := 0.0
		for _, rating := range ratings {
			sum += rating.Rating
		}
		metrics.AverageBarrierRating = round2(sum / float64(len(ratings)))
	}

	return metrics
}

// VolunteerPage assembles the volunteer impact page. Tables that fail to
// load come back empty with a warning; the page itself always renders.
func (s *dashboardService) VolunteerPage(ctx context.Context, filters models.TableFilters) *dto.VolunteerPage {
	page := &dto.VolunteerPage{
		Metrics:       s.Metrics(ctx),
		Participation: []models.ParticipationRecord{},
		Satisfaction:  []models.SatisfactionRecord{},
		PopularEvents: []models.PopularEvent{},
	}
	if s.sample {
		page.Warnings = sampleWarnings()
		return page
	}
	page.Warnings = page.Metrics.Warnings

	if participation, err := s.processor.Participation(ctx, filters); err != nil {
		page.Warnings = s.pageWarn(page.Warnings, models.SheetParticipation, err)
	} else {
		page.Participation = participation
	}
	if satisfaction, err := s.processor.Satisfaction(ctx, filters); err != nil {
		page.Warnings = s.pageWarn(page.Warnings, models.SheetSatisfaction, err)
	} else {
		page.Satisfaction = satisfaction
	}
	if popular, err := s.processor.PopularEvents(ctx); err != nil {
		page.Warnings = s.pageWarn(page.Warnings, models.SheetPopularEvents, err)
	} else {
		page.PopularEvents = popular
	}

	return page
}

func (s *dashboardService) ForestPage(ctx context.Context, filters models.TableFilters) *dto.ForestPage {
	page := &dto.ForestPage{
		Metrics:        s.Metrics(ctx),
		AcresTimeline:  []models.AcresRecord{},
		BarrierRatings: []models.BarrierRating{},
	}
	if s.sample {
		page.Warnings = sampleWarnings()
		return page
	}
	page.Warnings = page.Metrics.Warnings

	if acres, err := s.processor.AcresTimeline(ctx, filters); err != nil {
		page.Warnings = s.pageWarn(page.Warnings, models.SheetAcresTimeline, err)
	} else {
		page.AcresTimeline = acres
	}
	if ratings, err := s.processor.BarrierRatings(ctx, filters); err != nil {
		page.Warnings = s.pageWarn(page.Warnings, models.SheetBarrierRatings, err)
	} else {
		page.BarrierRatings = ratings
	}

	return page
}

func (s *dashboardService) StrategicPage(ctx context.Context, filters models.TableFilters) *dto.StrategicPage {
	page := &dto.StrategicPage{
		Metrics:         s.Metrics(ctx),
		SurveyResponses: []models.SurveyResponse{},
		BarrierRatings:  []models.BarrierRating{},
	}
	if s.sample {
		page.Warnings = sampleWarnings()
		return page
	}
	page.Warnings = page.Metrics.Warnings

	if surveys, err := s.processor.SurveyResponses(ctx, filters); err != nil {
		page.Warnings = s.pageWarn(page.Warnings, models.SheetSurveyDetails, err)
	} else {
		page.SurveyResponses = surveys
	}
	if ratings, err := s.processor.BarrierRatings(ctx, filters); err != nil {
		page.Warnings = s.pageWarn(page.Warnings, models.SheetBarrierRatings, err)
	} else {
		page.BarrierRatings = ratings
	}

	return page
}

func (s *dashboardService) pageWarn(warnings []string, sheet string, err error) []string {
	slog.Warn("table unavailable for page payload",
		"sheet", sheet,
		"error", err)
	return append(warnings,
		fmt.Sprintf("%s could not be loaded; showing an empty table", sheet))
}

func (s *dashboardService) warn(metrics *models.DashboardMetrics, sheet string, err error) {
	slog.Warn("metric source unavailable, zeroing its metrics",
		"sheet", sheet,
		"error", err)
	metrics.Warnings = append(metrics.Warnings,
		fmt.Sprintf("%s could not be loaded; its metrics show zero", sheet))
}

func sampleWarnings() []string {
	return []string{"No spreadsheet configured. Showing sample data."}
}
