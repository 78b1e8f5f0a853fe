package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Sheets Unreachable",
			code:     SheetsUnreachable,
			expected: "Could not reach the spreadsheet service",
		},
		{
			name:     "Sheets Rate Limited",
			code:     SheetsRateLimited,
			expected: "Spreadsheet service rate limit exceeded",
		},
		{
			name:     "Sheets Not Configured",
			code:     SheetsNotConfigured,
			expected: "Spreadsheet access is not configured",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Chart Unknown",
			code:     ChartUnknown,
			expected: "Unknown chart name",
		},
		{
			name:     "Export Generation Failed",
			code:     ExportGenerationFailed,
			expected: "Workbook export failed",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An internal error occurred",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_UnknownCode tests the generic fallback for unknown codes
func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	message := GetErrorMessage(ErrorCode("NOPE_999"))
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode tests membership checks against the taxonomy
func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(SheetsUnreachable))
	s.True(IsValidErrorCode(ValidationOutOfRange))
	s.True(IsValidErrorCode(SystemRateLimitExceeded))
	s.False(IsValidErrorCode(ErrorCode("AUTH_001")))
	s.False(IsValidErrorCode(ErrorCode("")))
}
