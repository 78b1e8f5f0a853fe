package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shelby-dashboard/internal/dto"
	"shelby-dashboard/internal/models"
	"shelby-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PageHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	echo                 *echo.Echo
	mockDashboardService *service_mocks.MockDashboardServiceInterface
	handler              *PageHandler
}

func TestPageHandlerSuite(t *testing.T) {
	suite.Run(t, new(PageHandlerTestSuite))
}

func (s *PageHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockDashboardService = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.handler = NewPageHandler(s.mockDashboardService)
}

func (s *PageHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PageHandlerTestSuite) renderedPage() *dto.VolunteerPage {
	return &dto.VolunteerPage{
		Metrics: &models.DashboardMetrics{
			TotalVolunteers:      50,
			TotalHours:           200,
			HoursValue:           decimal.RequireFromString("2640.00"),
			TotalAcresCleaned:    400.5,
			PercentForestReached: 10,
		},
		PopularEvents: []models.PopularEvent{
			{EventName: "River Cleanup", TotalParticipants: 500, PercentageShare: 45.5},
		},
	}
}

func (s *PageHandlerTestSuite) TestGetDashboard_RendersMetricCards() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockDashboardService.EXPECT().
		VolunteerPage(gomock.Any(), models.TableFilters{}).
		Return(s.renderedPage())

	err := s.handler.GetDashboard(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), "text/html")

	body := rec.Body.String()
	s.Contains(body, "Friends of Shelby")
	s.Contains(body, "$2640.00")
	s.Contains(body, "River Cleanup")
	s.Contains(body, "45.50%")
}

func (s *PageHandlerTestSuite) TestGetDashboard_SampleModeShowsNotice() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	page := s.renderedPage()
	page.Metrics.Sample = true
	page.PopularEvents = nil
	s.mockDashboardService.EXPECT().
		VolunteerPage(gomock.Any(), models.TableFilters{}).
		Return(page)

	err := s.handler.GetDashboard(c)

	s.NoError(err)
	s.Contains(rec.Body.String(), "Showing sample data")
	s.NotContains(rec.Body.String(), "charts/participation")
}

func (s *PageHandlerTestSuite) TestGetDashboard_InvalidRangeFallsBackToAllTime() {
	req := httptest.NewRequest(http.MethodGet, "/?range=bogus&organization=Parks+Dept", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	wantFilters := models.TableFilters{Organization: "Parks Dept"}
	s.mockDashboardService.EXPECT().
		VolunteerPage(gomock.Any(), wantFilters).
		Return(s.renderedPage())

	err := s.handler.GetDashboard(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.False(strings.Contains(rec.Body.String(), "bogus"))
}
