//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// AssertSuccessResponse checks the status code and decodes the envelope data into targetStruct.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	var env envelope
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String())) {
		return
	}
	assert.Equal(t, "success", env.Status, "Response: %s", w.Body.String())

	if targetStruct != nil {
		err := json.Unmarshal(env.Data, targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode envelope data: %s", string(env.Data)))
	}
}

// AssertErrorResponse checks the status code and that the envelope carries a string message.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	AssertErrorEnvelope(t, w.Body.Bytes(), expectedErrorMsg)
}

func AssertErrorEnvelope(t *testing.T, body []byte, expectedErrorMsg string) {
	t.Helper()

	var env envelope
	if !assert.NoError(t, json.Unmarshal(body, &env), fmt.Sprintf("Failed to decode error response JSON: %s", string(body))) {
		return
	}
	assert.Equal(t, "error", env.Status)

	var msg string
	assert.NoError(t, json.Unmarshal(env.Data, &msg), "error data must be a plain string: %s", string(env.Data))

	if expectedErrorMsg != "" {
		assert.Contains(t, msg, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}
