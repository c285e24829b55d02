package errors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "COMMON_001", ErrCodeInternal.String())
}

func TestHTTPStatusForCode(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ErrCodeInternal, 500},
		{ErrCodeBadRequest, 400},
		{ErrCodeNotFound, 404},
		{ErrCodeConflict, 409},
		{ErrCodeValidation, 422},
		{ErrCodeGraphRebuildBusy, 409},
		{ErrCodeGraphUnavailable, 503},
		{ErrCodeDiseaseNotFound, 404},
		{ErrCodeSessionNotFound, 404},
		{ErrorCode("UNKNOWN"), 500},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, HTTPStatusForCode(tt.code))
	}
}

func TestDefaultMessageForCode(t *testing.T) {
	assert.Equal(t, "internal server error", DefaultMessageForCode(ErrCodeInternal))
	assert.Equal(t, "unknown error", DefaultMessageForCode(ErrorCode("UNKNOWN")))
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ErrCodeBadRequest))
	assert.True(t, IsClientError(ErrCodeGraphRebuildBusy))
	assert.False(t, IsClientError(ErrCodeInternal))
}

func TestIsServerError(t *testing.T) {
	assert.True(t, IsServerError(ErrCodeInternal))
	assert.True(t, IsServerError(ErrCodeGraphRebuildFailed))
	assert.False(t, IsServerError(ErrCodeBadRequest))
}

func TestModuleForCode(t *testing.T) {
	assert.Equal(t, "COMMON", ModuleForCode(ErrCodeInternal))
	assert.Equal(t, "LEX", ModuleForCode(ErrCodeLexiconTermOverlap))
	assert.Equal(t, "GRAPH", ModuleForCode(ErrCodeGraphRebuildFailed))
	assert.Equal(t, "DIAG", ModuleForCode(ErrCodeDiseaseNotFound))
	assert.Equal(t, "SESS", ModuleForCode(ErrCodeSessionNotFound))
	assert.Equal(t, "UNKNOWN", ModuleForCode(ErrorCode("")))
}

func TestErrorCodeFormat_Convention(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z]+_\d{3}$`)
	allCodes := []ErrorCode{
		ErrCodeInternal, ErrCodeBadRequest, ErrCodeLexiconUnknownDimension,
		ErrCodeLexiconTermOverlap, ErrCodeGraphUnavailable, ErrCodeGraphRebuildBusy,
		ErrCodeGraphRecordInvalid, ErrCodeDiseaseNotFound, ErrCodeDiagnosisQueryFailed,
		ErrCodeSessionNotFound, ErrCodeHistoryCorrupted,
	}
	for _, code := range allCodes {
		assert.Regexp(t, re, string(code))
	}
}

func TestErrorCodeMappings_Completeness(t *testing.T) {
	allCodes := []ErrorCode{
		ErrCodeInternal, ErrCodeLexiconUnknownDimension, ErrCodeLexiconTermOverlap,
		ErrCodeLexiconRuleInvalid, ErrCodeGraphUnavailable, ErrCodeGraphRebuildFailed,
		ErrCodeGraphRebuildBusy, ErrCodeGraphLabelInvalid, ErrCodeGraphRecordInvalid,
		ErrCodeGraphCSVParseFailed, ErrCodeDiseaseNotFound, ErrCodeDiagnosisQueryFailed,
		ErrCodeSymptomsEmpty, ErrCodeSessionNotFound, ErrCodeSessionStoreFailed,
		ErrCodeHistoryCorrupted,
	}
	for _, code := range allCodes {
		_, hasStatus := ErrorCodeHTTPStatus[code]
		_, hasMessage := ErrorCodeMessage[code]
		assert.True(t, hasStatus, "missing status for %s", code)
		assert.True(t, hasMessage, "missing message for %s", code)
	}
}

//Personal.AI order the ending
