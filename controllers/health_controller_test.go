package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health", HealthCheck)

	w := performRequest(router, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Vet clinic API is running", response["message"])
}

func TestDatabaseStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	router := gin.New()
	router.GET("/api/database/status", DatabaseStatus)

	w := performRequest(router, http.MethodGet, "/api/database/status", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	response := decodeBody(t, w)
	assert.Equal(t, "Database connected", response["message"])
	assert.Subset(t, response["tables"], []interface{}{"service_packages", "customer_reviews", "partners", "opening_discounts", "users"})
}
