package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(SheetsUnreachable, s.traceID)

	s.NotNil(response)
	s.Equal("SHEETS_001", response.Error.Code)
	s.Equal("Could not reach the spreadsheet service", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"sheet: Volunteer Participation Trends", "status: 503"}
	response := NewErrorResponse(SheetsUnreachable, s.traceID, WithDetails(details...))

	s.NotNil(response)
	s.Equal("SHEETS_001", response.Error.Code)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithCustomMessage tests overriding the default message
func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "Spreadsheet fetch failed for this page"
	response := NewErrorResponse(SystemInternalError, s.traceID, WithMessage(customMessage))

	s.NotNil(response)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
}

// TestNewValidationError tests field-level validation error construction
func (s *ResponseTestSuite) TestNewValidationError() {
	fieldErrors := map[string]string{
		"range": "must be one of: last_month, last_3_months, last_year",
	}
	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 1)
	s.Contains(response.Error.Details[0], "range:")
}

// TestWrapSystemError tests that internal details are hidden from the client
func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("connection refused 10.0.0.4:443")
	response, returned := WrapSystemError(internal, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "10.0.0.4")
	s.Equal(internal, returned)
}

// TestWrapUpstreamError tests the upstream wrapper uses the sheets code
func (s *ResponseTestSuite) TestWrapUpstreamError() {
	internal := errors.New("read tcp: i/o timeout")
	response, returned := WrapUpstreamError(internal, s.traceID)

	s.Equal("SHEETS_001", response.Error.Code)
	s.Equal(internal, returned)
}

// TestGetHTTPStatus_Mapping tests the code-to-status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus_Mapping() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationOutOfRange, http.StatusBadRequest},
		{ChartUnknown, http.StatusBadRequest},
		{SheetsNotFound, http.StatusNotFound},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SheetsUnreachable, http.StatusBadGateway},
		{SheetsRateLimited, http.StatusBadGateway},
		{SheetsNotConfigured, http.StatusServiceUnavailable},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ExportGenerationFailed, http.StatusInternalServerError},
		{ErrorCode("UNKNOWN_001"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

// TestErrorResponse_ClassificationHelpers tests IsClientError and IsServerError
func (s *ResponseTestSuite) TestErrorResponse_ClassificationHelpers() {
	clientErr := NewErrorResponse(ValidationGeneral, s.traceID)
	s.True(clientErr.IsClientError())
	s.False(clientErr.IsServerError())

	serverErr := NewErrorResponse(SystemInternalError, s.traceID)
	s.False(serverErr.IsClientError())
	s.True(serverErr.IsServerError())
}

// TestErrorResponse_ToJSON tests serialization shape
func (s *ResponseTestSuite) TestErrorResponse_ToJSON() {
	response := NewErrorResponse(SheetsNotFound, s.traceID, WithDetails("sheet: Acres Cleaned Timeline"))

	data, err := response.ToJSON()
	s.NoError(err)

	var decoded map[string]map[string]interface{}
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("SHEETS_003", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}
