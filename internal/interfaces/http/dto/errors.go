package dto

import (
	"net/http"

	"github.com/trackcase/backend/internal/domain/shared"
)

// Error codes used only at the HTTP boundary
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes. The core
// never picks status codes; this table is the only place the mapping lives.
var errorCodeHTTPStatus = map[string]int{
	shared.CodeNotFound:             http.StatusNotFound,
	shared.CodeValidation:           http.StatusBadRequest,
	shared.CodeUnsupportedOperation: http.StatusBadRequest,
	shared.CodeDependencyConflict:   http.StatusUnprocessableEntity,
	shared.CodePersistence:          http.StatusServiceUnavailable,
	shared.CodeHistoryWrite:         http.StatusInternalServerError,
	shared.CodeUnauthorized:         http.StatusUnauthorized,
	shared.CodeForbidden:            http.StatusForbidden,

	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to 500
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
