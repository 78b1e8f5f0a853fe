package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"shelby-dashboard/internal/models"
	"shelby-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

// ExportServiceSuite defines the test suite for ExportServiceInterface
type ExportServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	processor *service_mocks.MockSheetProcessorServiceInterface
	dashboard *service_mocks.MockDashboardServiceInterface
	service   ExportServiceInterface
	ctx       context.Context
}

// SetupTest runs before each test in the suite
func (s *ExportServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.processor = service_mocks.NewMockSheetProcessorServiceInterface(s.ctrl)
	s.dashboard = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.service = NewExportService(s.processor, s.dashboard, NewNoopMetrics())
	s.ctx = context.Background()
}

// TearDownTest runs after each test in the suite
func (s *ExportServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestExportServiceSuite runs the test suite
func TestExportServiceSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceSuite))
}

func (s *ExportServiceSuite) expectFullExport() {
	noFilters := models.TableFilters{}
	s.dashboard.EXPECT().Metrics(s.ctx).Return(&models.DashboardMetrics{
		TotalVolunteers:      50,
		TotalHours:           200,
		HoursValue:           decimal.RequireFromString("2640.00"),
		TotalAcresCleaned:    400,
		PercentForestReached: 10,
		GeneratedAt:          time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	})
	s.processor.EXPECT().Participation(s.ctx, noFilters).Return([]models.ParticipationRecord{
		{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), EventName: "River Cleanup", ParticipantCount: 25, TotalCount: 100},
	}, nil)
	s.processor.EXPECT().Satisfaction(s.ctx, noFilters).Return(nil, nil)
	s.processor.EXPECT().PopularEvents(s.ctx).Return([]models.PopularEvent{
		{EventName: "River Cleanup", TotalParticipants: 25, PercentageShare: 100},
	}, nil)
	s.processor.EXPECT().AcresTimeline(s.ctx, noFilters).Return(nil, nil)
	s.processor.EXPECT().SurveyResponses(s.ctx, noFilters).Return(nil, nil)
	s.processor.EXPECT().BarrierRatings(s.ctx, noFilters).Return(nil, nil)
}

func (s *ExportServiceSuite) TestWorkbook_ContainsEverySheet() {
	s.expectFullExport()

	data, err := s.service.Workbook(s.ctx)
	s.Require().NoError(err)
	s.Require().NotEmpty(data)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	defer file.Close()

	names := file.GetSheetList()
	s.Contains(names, "Metrics")
	for _, sheet := range models.KnownSheets {
		s.Contains(names, sheet)
	}
}

func (s *ExportServiceSuite) TestWorkbook_MetricsSheetValues() {
	s.expectFullExport()

	data, err := s.service.Workbook(s.ctx)
	s.Require().NoError(err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	defer file.Close()

	label, err := file.GetCellValue("Metrics", "A2")
	s.Require().NoError(err)
	s.Equal("Total volunteers", label)

	volunteers, err := file.GetCellValue("Metrics", "B2")
	s.Require().NoError(err)
	s.Equal("50", volunteers)

	value, err := file.GetCellValue("Metrics", "B4")
	s.Require().NoError(err)
	s.Equal("2640.00", value)
}

func (s *ExportServiceSuite) TestWorkbook_ParticipationRows() {
	s.expectFullExport()

	data, err := s.service.Workbook(s.ctx)
	s.Require().NoError(err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	defer file.Close()

	date, err := file.GetCellValue(models.SheetParticipation, "A2")
	s.Require().NoError(err)
	s.Equal("2024-06-01", date)

	event, err := file.GetCellValue(models.SheetParticipation, "B2")
	s.Require().NoError(err)
	s.Equal("River Cleanup", event)
}

func (s *ExportServiceSuite) TestWorkbook_PropagatesTableError() {
	s.dashboard.EXPECT().Metrics(s.ctx).Return(&models.DashboardMetrics{
		HoursValue: decimal.Zero,
	})
	upstream := errors.New("upstream down")
	s.processor.EXPECT().Participation(s.ctx, models.TableFilters{}).Return(nil, upstream)

	_, err := s.service.Workbook(s.ctx)

	s.Require().Error(err)
	s.ErrorIs(err, upstream)
}
