package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeUnsupportedFormat is used when no renderer serves the requested format
	ErrCodeUnsupportedFormat = "ERR_UNSUPPORTED_FORMAT"
)

// Rendering error codes
const (
	// ErrCodeInvalidConfiguration is used when page capacities are invalid
	ErrCodeInvalidConfiguration = "ERR_INVALID_CONFIGURATION"
	// ErrCodeRenderFailed is used when a renderer or PDF engine fails
	ErrCodeRenderFailed = "ERR_RENDER_FAILED"
	// ErrCodeRenderTimeout is used when the PDF engine times out
	ErrCodeRenderTimeout = "ERR_RENDER_TIMEOUT"
	// ErrCodeStorageFailed is used when the customer file cannot be written
	ErrCodeStorageFailed = "ERR_STORAGE_FAILED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeUnsupportedFormat: http.StatusNotFound,

	ErrCodeInvalidConfiguration: http.StatusInternalServerError,
	ErrCodeRenderFailed:         http.StatusInternalServerError,
	ErrCodeRenderTimeout:        http.StatusGatewayTimeout,
	ErrCodeStorageFailed:        http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps domain and renderer error codes to the
// standardized API codes
var LegacyErrorCodeMapping = map[string]string{
	"INVALID_INPUT":      ErrCodeInvalidInput,
	"INVALID_GRID":       ErrCodeInvalidConfiguration,
	"INVALID_MARGINS":    ErrCodeInvalidConfiguration,
	"UNSUPPORTED_FORMAT": ErrCodeUnsupportedFormat,
	"RENDER_FAILED":      ErrCodeRenderFailed,
	"RENDER_TIMEOUT":     ErrCodeRenderTimeout,
	"INVALID_HTML":       ErrCodeRenderFailed,
	"INVALID_LAYOUT":     ErrCodeRenderFailed,
	"INVALID_PAPER_SIZE": ErrCodeInvalidConfiguration,
	"FONT_UNAVAILABLE":   ErrCodeInvalidConfiguration,
	"STORAGE_FAILED":     ErrCodeStorageFailed,
	"INTERNAL_ERROR":     ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := LegacyErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
