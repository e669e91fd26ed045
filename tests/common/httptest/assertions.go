//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"regexp"
	"testing"

	"car-rental-engine/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx responses, decodes the body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "unexpected status; body: %s", w.Body.String()) {
		return
	}
	if target == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and the error envelope; an empty
// expectedMsg skips the message check.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) httperr.Response {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "unexpected status; body: %s", w.Body.String())

	var resp httperr.Response
	if !assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &resp), "undecodable error body: %s", w.Body.String()) {
		return resp
	}
	resp.Status = w.Code
	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
	return resp
}

var requestIDPattern = regexp.MustCompile(`^\d{14}-[0-9a-f]{8}$`)

// AssertRequestID checks the correlation id set by the logging middleware.
func AssertRequestID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	id := w.Header().Get("X-Request-ID")
	assert.Regexp(t, requestIDPattern, id)
	return id
}
