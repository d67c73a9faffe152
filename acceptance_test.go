package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawscare/vet-clinic-site/tests/testutil"
)

// TestAPIHealthEndpointAcceptance calls the health endpoint over a real HTTP connection
func TestAPIHealthEndpointAcceptance(t *testing.T) {
	app := testutil.NewTestApp(t)
	server := httptest.NewServer(app.Router)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "Health endpoint should return 200 OK")

	var response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response), "Response should be valid JSON")
	assert.True(t, response.Success)
	assert.Equal(t, "Vet clinic API is running", response.Message)
}

// TestHealthEndpointAvailability makes repeated requests and expects consistent answers
func TestHealthEndpointAvailability(t *testing.T) {
	app := testutil.NewTestApp(t)
	server := httptest.NewServer(app.Router)
	defer server.Close()

	for i := 0; i < 5; i++ {
		resp, err := http.Get(server.URL + "/api/health")
		require.NoError(t, err)

		var response map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&response)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode, fmt.Sprintf("Request %d should succeed", i+1))
		assert.Equal(t, true, response["success"], fmt.Sprintf("Request %d should have success=true", i+1))
	}
}

// TestHomePageAcceptance checks the site renders in both languages
func TestHomePageAcceptance(t *testing.T) {
	app := testutil.NewTestApp(t)
	server := httptest.NewServer(app.Router)
	defer server.Close()

	for lang, dir := range map[string]string{"en": "ltr", "ar": "rtl"} {
		resp, err := http.Get(server.URL + "/?lang=" + lang)
		require.NoError(t, err)
		body := readAll(t, resp)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, fmt.Sprintf(`<html lang="%s" dir="%s">`, lang, dir))
	}
}

// TestHealthEndpointResponseTime tests that the endpoint responds quickly
func TestHealthEndpointResponseTime(t *testing.T) {
	app := testutil.NewTestApp(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	start := time.Now()
	app.Router.ServeHTTP(w, req)
	duration := time.Since(start)

	assert.Less(t, duration, 100*time.Millisecond, "Health endpoint should respond in less than 100ms")
}

func readAll(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
