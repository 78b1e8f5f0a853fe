package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"shelby-dashboard/internal/models"
)

const exportDateLayout = "2006-01-02"

type exportService struct {
	processor SheetProcessorServiceInterface
	dashboard DashboardServiceInterface
	metrics   MetricsRecorderInterface
}

// NewExportService builds the XLSX export: one worksheet per processed
// table plus a Metrics summary sheet.
func NewExportService(
	processor SheetProcessorServiceInterface,
	dashboard DashboardServiceInterface,
	metrics MetricsRecorderInterface,
) ExportServiceInterface {
	return &exportService{
		processor: processor,
		dashboard: dashboard,
		metrics:   metrics,
	}
}

func (s *exportService) Workbook(ctx context.Context) ([]byte, error) {
	start := time.Now()

	data, err := s.buildWorkbook(ctx)
	if err != nil {
		s.metrics.RecordExport("error", time.Since(start))
		return nil, err
	}

	s.metrics.RecordExport("success", time.Since(start))
	return data, nil
}

func (s *exportService) buildWorkbook(ctx context.Context) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := s.writeMetricsSheet(ctx, file); err != nil {
		return nil, err
	}
	if err := s.writeParticipationSheet(ctx, file); err != nil {
		return nil, err
	}
	if err := s.writeSatisfactionSheet(ctx, file); err != nil {
		return nil, err
	}
	if err := s.writePopularEventsSheet(ctx, file); err != nil {
		return nil, err
	}
	if err := s.writeAcresSheet(ctx, file); err != nil {
		return nil, err
	}
	if err := s.writeSurveySheet(ctx, file); err != nil {
		return nil, err
	}
	if err := s.writeBarrierSheet(ctx, file); err != nil {
		return nil, err
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *exportService) writeMetricsSheet(ctx context.Context, file *excelize.File) error {
	// excelize starts every workbook with "Sheet1"; reuse it for the summary
	if err := file.SetSheetName("Sheet1", "Metrics"); err != nil {
		return fmt.Errorf("renaming metrics sheet: %w", err)
	}

	metrics := s.dashboard.Metrics(ctx)
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total volunteers", metrics.TotalVolunteers},
		{"Total hours", metrics.TotalHours},
		{"Value of hours ($)", metrics.HoursValue.String()},
		{"Total acres cleaned", metrics.TotalAcresCleaned},
		{"% of forest reached", metrics.PercentForestReached},
		{"Survey responses", metrics.TotalSurveyResponses},
		{"% facing barriers", metrics.PercentFacingBarriers},
		{"Average barrier rating", metrics.AverageBarrierRating},
		{"Generated at", metrics.GeneratedAt.Format(time.RFC3339)},
	}
	if metrics.Sample {
		rows = append(rows, []interface{}{"Note", "Sample data (no spreadsheet configured)"})
	}

	return writeRows(file, "Metrics", rows)
}

func (s *exportService) writeParticipationSheet(ctx context.Context, file *excelize.File) error {
	records, err := s.processor.Participation(ctx, models.TableFilters{})
	if err != nil {
		return err
	}

	rows := [][]interface{}{{"Date", "Event", "Participants", "Total Hours"}}
	for _, record := range records {
		rows = append(rows, []interface{}{
			record.Date.Format(exportDateLayout),
			record.EventName,
			record.ParticipantCount,
			record.TotalCount,
		})
	}

	return addSheet(file, models.SheetParticipation, rows)
}

func (s *exportService) writeSatisfactionSheet(ctx context.Context, file *excelize.File) error {
	records, err := s.processor.Satisfaction(ctx, models.TableFilters{})
	if err != nil {
		return err
	}

	rows := [][]interface{}{{"Date", "Event", "Satisfaction Score", "Overall Average"}}
	for _, record := range records {
		rows = append(rows, []interface{}{
			record.Date.Format(exportDateLayout),
			record.EventName,
			record.SatisfactionScore,
			record.OverallAverage,
		})
	}

	return addSheet(file, models.SheetSatisfaction, rows)
}

func (s *exportService) writePopularEventsSheet(ctx context.Context, file *excelize.File) error {
	events, err := s.processor.PopularEvents(ctx)
	if err != nil {
		return err
	}

	rows := [][]interface{}{{"Event", "Total Participants", "% Share"}}
	for _, event := range events {
		rows = append(rows, []interface{}{
			event.EventName,
			event.TotalParticipants,
			event.PercentageShare,
		})
	}

	return addSheet(file, models.SheetPopularEvents, rows)
}

func (s *exportService) writeAcresSheet(ctx context.Context, file *excelize.File) error {
	records, err := s.processor.AcresTimeline(ctx, models.TableFilters{})
	if err != nil {
		return err
	}

	rows := [][]interface{}{{"Date", "Acres Cleaned", "Cumulative Total"}}
	for _, record := range records {
		rows = append(rows, []interface{}{
			record.Date.Format(exportDateLayout),
			record.AcresCleaned,
			record.CumulativeTotal,
		})
	}

	return addSheet(file, models.SheetAcresTimeline, rows)
}

func (s *exportService) writeSurveySheet(ctx context.Context, file *excelize.File) error {
	records, err := s.processor.SurveyResponses(ctx, models.TableFilters{})
	if err != nil {
		return err
	}

	rows := [][]interface{}{{
		"Date", "Respondent ID", "Organization",
		"Barrier Statement", "Park Visit Details", "Accessibility Comments",
	}}
	for _, record := range records {
		rows = append(rows, []interface{}{
			record.Date.Format(exportDateLayout),
			record.RespondentID,
			record.Organization,
			record.BarrierStatement,
			record.ParkVisitDetails,
			record.AccessibilityComments,
		})
	}

	return addSheet(file, models.SheetSurveyDetails, rows)
}

func (s *exportService) writeBarrierSheet(ctx context.Context, file *excelize.File) error {
	records, err := s.processor.BarrierRatings(ctx, models.TableFilters{})
	if err != nil {
		return err
	}

	rows := [][]interface{}{{"Date", "Organization", "Rating"}}
	for _, record := range records {
		rows = append(rows, []interface{}{
			record.Date.Format(exportDateLayout),
			record.Organization,
			record.Rating,
		})
	}

	return addSheet(file, models.SheetBarrierRatings, rows)
}

func addSheet(file *excelize.File, name string, rows [][]interface{}) error {
	if _, err := file.NewSheet(name); err != nil {
		return fmt.Errorf("adding sheet %q: %w", name, err)
	}
	return writeRows(file, name, rows)
}

func writeRows(file *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("addressing row %d on %q: %w", i+1, sheet, err)
		}
		if err := file.SetSheetRow(sheet, addr, &row); err != nil {
			return fmt.Errorf("writing row %d on %q: %w", i+1, sheet, err)
		}
	}
	return nil
}
