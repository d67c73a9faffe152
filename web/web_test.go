package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pawscare/vet-clinic-site/middleware"
	"github.com/pawscare/vet-clinic-site/models"
)

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
	return db
}

// siteRouter mounts the public and admin pages without auth
func siteRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer, err := NewRenderer()
	require.NoError(t, err)

	site := NewSiteHandler(db, renderer)
	admin := NewAdminHandler(db, renderer, DefaultScreens(db))

	router := gin.New()
	router.Use(middleware.Language())
	router.GET("/", site.Home)
	router.GET("/admin/login", admin.Login)
	router.GET("/admin", admin.Dashboard)
	router.GET("/admin/:entity", admin.Manage)
	router.NoRoute(site.NotFound)
	return router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string {
	return &s
}
