package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"destination":"Paris","days":3}`, ""},
		{"empty", ``, "body must not be empty"},
		{"malformed", `{"destination":`, "badly-formed JSON"},
		{"wrong type", `{"days":"three"}`, `incorrect JSON type for field "days"`},
		{"unknown field", `{"planet":"Mars"}`, `unknown key "planet"`},
		{"trailing value", `{"days":3}{"days":4}`, "single JSON value"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var dst types.TripRequest
			err := DecodeJSONBody(httptest.NewRecorder(), req, &dst)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Paris", dst.Destination)
				assert.Equal(t, 3, dst.Days)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidationResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/itineraries", nil)
	ValidationResponse(rec, req, types.ValidationErrors{{Field: "days", Message: "must be a whole number"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body types.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, map[string]string{"days": "must be a whole number"}, body.Fields)
}

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorResponse(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusInternalServerError, "boom")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "boom", body["error"])
}
