package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeUnauthorized       ErrorCode = "COMMON_003"
	ErrCodeForbidden          ErrorCode = "COMMON_004"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeConflict           ErrorCode = "COMMON_006"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeDatabaseError      ErrorCode = "COMMON_012"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeExternalService    ErrorCode = "COMMON_014"
	ErrCodeNotImplemented     ErrorCode = "COMMON_015"
)

// Short aliases used throughout the codebase.
const (
	CodeInternal       = ErrCodeInternal
	CodeInvalidParam   = ErrCodeBadRequest
	CodeUnauthorized   = ErrCodeUnauthorized
	CodeForbidden      = ErrCodeForbidden
	CodeNotFound       = ErrCodeNotFound
	CodeConflict       = ErrCodeConflict
	CodeRateLimit      = ErrCodeTooManyRequests
	CodeNotImplemented = ErrCodeNotImplemented
	CodeOK             = ErrorCode("OK")
	CodeUnknown        = ErrorCode("UNKNOWN")

	CodeDatabaseError = ErrCodeDatabaseError
	CodeCacheError    = ErrCodeCacheError

	CodeDiseaseNotFound = ErrCodeDiseaseNotFound
	CodeSessionNotFound = ErrCodeSessionNotFound
)

// Lexicon Module Error Codes
const (
	ErrCodeLexiconUnknownDimension ErrorCode = "LEX_001"
	ErrCodeLexiconTermOverlap      ErrorCode = "LEX_002"
	ErrCodeLexiconRuleInvalid      ErrorCode = "LEX_003"
)

// Graph Module Error Codes
const (
	ErrCodeGraphUnavailable    ErrorCode = "GRAPH_001"
	ErrCodeGraphRebuildFailed  ErrorCode = "GRAPH_002"
	ErrCodeGraphRebuildBusy    ErrorCode = "GRAPH_003"
	ErrCodeGraphLabelInvalid   ErrorCode = "GRAPH_004"
	ErrCodeGraphRecordInvalid  ErrorCode = "GRAPH_005"
	ErrCodeGraphCSVParseFailed ErrorCode = "GRAPH_006"
)

// Diagnosis Module Error Codes
const (
	ErrCodeDiseaseNotFound      ErrorCode = "DIAG_001"
	ErrCodeDiagnosisQueryFailed ErrorCode = "DIAG_002"
	ErrCodeSymptomsEmpty        ErrorCode = "DIAG_003"
)

// Session Module Error Codes
const (
	ErrCodeSessionNotFound    ErrorCode = "SESS_001"
	ErrCodeSessionStoreFailed ErrorCode = "SESS_002"
	ErrCodeHistoryCorrupted   ErrorCode = "SESS_003"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusInternalServerError,
	ErrCodeNotImplemented:     http.StatusNotImplemented,

	ErrCodeLexiconUnknownDimension: http.StatusBadRequest,
	ErrCodeLexiconTermOverlap:      http.StatusInternalServerError,
	ErrCodeLexiconRuleInvalid:      http.StatusInternalServerError,

	ErrCodeGraphUnavailable:    http.StatusServiceUnavailable,
	ErrCodeGraphRebuildFailed:  http.StatusInternalServerError,
	ErrCodeGraphRebuildBusy:    http.StatusConflict,
	ErrCodeGraphLabelInvalid:   http.StatusBadRequest,
	ErrCodeGraphRecordInvalid:  http.StatusUnprocessableEntity,
	ErrCodeGraphCSVParseFailed: http.StatusUnprocessableEntity,

	ErrCodeDiseaseNotFound:      http.StatusNotFound,
	ErrCodeDiagnosisQueryFailed: http.StatusInternalServerError,
	ErrCodeSymptomsEmpty:        http.StatusBadRequest,

	ErrCodeSessionNotFound:    http.StatusNotFound,
	ErrCodeSessionStoreFailed: http.StatusInternalServerError,
	ErrCodeHistoryCorrupted:   http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeUnauthorized:       "unauthorized",
	ErrCodeForbidden:          "forbidden",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",
	ErrCodeNotImplemented:     "not implemented",

	ErrCodeLexiconUnknownDimension: "unknown symptom dimension",
	ErrCodeLexiconTermOverlap:      "lexicon term appears in multiple dimensions",
	ErrCodeLexiconRuleInvalid:      "invalid synonym rule",

	ErrCodeGraphUnavailable:    "knowledge graph unavailable",
	ErrCodeGraphRebuildFailed:  "knowledge graph rebuild failed",
	ErrCodeGraphRebuildBusy:    "knowledge graph rebuild already in progress",
	ErrCodeGraphLabelInvalid:   "invalid graph node label",
	ErrCodeGraphRecordInvalid:  "disease record failed validation",
	ErrCodeGraphCSVParseFailed: "failed to parse disease CSV",

	ErrCodeDiseaseNotFound:      "disease not found",
	ErrCodeDiagnosisQueryFailed: "disease matching query failed",
	ErrCodeSymptomsEmpty:        "no symptoms recognized",

	ErrCodeSessionNotFound:    "session not found",
	ErrCodeSessionStoreFailed: "failed to persist session data",
	ErrCodeHistoryCorrupted:   "stored conversation history is corrupted",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
