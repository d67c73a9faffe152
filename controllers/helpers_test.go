package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pawscare/vet-clinic-site/config"
	"github.com/pawscare/vet-clinic-site/models"
	"github.com/pawscare/vet-clinic-site/repository"
	"github.com/pawscare/vet-clinic-site/services"
)

const testCacheTTL = time.Minute

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...), "Failed to migrate test database")
	config.SetDB(db)
	return db
}

// catalogRouter wires the three admin-managed resources without auth
func catalogRouter(t *testing.T) (*gin.Engine, *gorm.DB, *services.MemoryCache) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	cache := services.NewMemoryCache()

	router := gin.New()
	api := router.Group("/api")

	packages := NewServicePackageController(repository.New[models.ServicePackage](db), cache, testCacheTTL)
	api.GET("/service-packages", packages.List)
	api.GET("/service-packages/:id", packages.Get)
	api.POST("/service-packages", packages.Create)
	api.PUT("/service-packages/:id", packages.Update)
	api.DELETE("/service-packages/:id", packages.Delete)

	reviews := NewCustomerReviewController(repository.New[models.CustomerReview](db), cache, testCacheTTL)
	api.GET("/customer-reviews", reviews.List)
	api.POST("/customer-reviews", reviews.Create)
	api.PUT("/customer-reviews/:id", reviews.Update)

	partners := NewPartnerController(repository.New[models.Partner](db), cache, testCacheTTL)
	api.GET("/partners", partners.List)
	api.POST("/partners", partners.Create)
	api.PUT("/partners/:id", partners.Update)
	api.DELETE("/partners/:id", partners.Delete)

	return router, db, cache
}

func performRequest(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		encoded, _ := json.Marshal(b)
		reader = bytes.NewBuffer(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "body: %s", w.Body.String())
	return response
}

func detailFields(response map[string]interface{}) []string {
	details, _ := response["details"].([]interface{})
	fields := make([]string, 0, len(details))
	for _, d := range details {
		if m, ok := d.(map[string]interface{}); ok {
			fields = append(fields, m["field"].(string))
		}
	}
	return fields
}

func uintString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
