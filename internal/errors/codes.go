package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Sheets upstream error codes (SHEETS_*)
const (
	SheetsUnreachable       ErrorCode = "SHEETS_001"
	SheetsRateLimited       ErrorCode = "SHEETS_002"
	SheetsNotFound          ErrorCode = "SHEETS_003"
	SheetsMalformedResponse ErrorCode = "SHEETS_004"
	SheetsNotConfigured     ErrorCode = "SHEETS_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Export and chart error codes (EXPORT_*)
const (
	ExportGenerationFailed ErrorCode = "EXPORT_001"
	ChartRenderFailed      ErrorCode = "EXPORT_002"
	ChartUnknown           ErrorCode = "EXPORT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Sheets upstream errors
	SheetsUnreachable:       "Could not reach the spreadsheet service",
	SheetsRateLimited:       "Spreadsheet service rate limit exceeded",
	SheetsNotFound:          "Requested sheet was not found",
	SheetsMalformedResponse: "Spreadsheet service returned an unexpected response",
	SheetsNotConfigured:     "Spreadsheet access is not configured",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid format",
	ValidationOutOfRange:    "Value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format",

	// Export and chart errors
	ExportGenerationFailed: "Workbook export failed",
	ChartRenderFailed:      "Chart rendering failed",
	ChartUnknown:           "Unknown chart name",

	// System errors
	SystemInternalError:      "An internal error occurred",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "Service configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Too many requests, please try again later",
}

// GetErrorMessage returns the default message for an error code
// Returns a generic message for unknown codes
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "An error occurred"
}

// IsValidErrorCode checks whether the code belongs to the known taxonomy
func IsValidErrorCode(code ErrorCode) bool {
	_, exists := errorMessages[code]
	return exists
}
