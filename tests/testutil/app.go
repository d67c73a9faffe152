package testutil

import (
	"context"
	"net/http"
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
	"github.com/pawscare/vet-clinic-site/routes"
	"github.com/pawscare/vet-clinic-site/services"
)

const (
	AdminUsername = "admin"
	AdminPassword = "correct horse battery staple"
)

// TestApp is the full router wired to in-memory and mock collaborators
type TestApp struct {
	Router  *gin.Engine
	DB      *gorm.DB
	Config  *config.Config
	Storage *services.MockObjectStorage
	Mailer  *services.MockMailer
	Cache   *services.MemoryCache
	Auth    *services.AuthService
}

// Option adjusts the collaborators before the router is built
type Option func(*TestApp)

// WithFailingMailer makes every email send fail
func WithFailingMailer() Option {
	return func(app *TestApp) {
		app.Mailer = services.NewFailingMailer()
	}
}

// TestConfig returns a configuration suitable for tests
func TestConfig() *config.Config {
	return &config.Config{
		DatabaseURL:             "sqlite::memory:",
		Port:                    "8080",
		GoEnv:                   "test",
		LogLevel:                "error",
		AllowedOrigins:          []string{"*"},
		SiteURL:                 "http://localhost:8080",
		JWTSecret:               "test-secret-key-for-admin-sessions",
		JWTIssuer:               "pawscare-admin",
		JWTAudience:             "pawscare-site",
		SessionTTL:              time.Hour,
		AdminUsername:           AdminUsername,
		AdminPassword:           AdminPassword,
		AWSRegion:               "us-east-1",
		AWSS3Bucket:             services.MockBucket,
		PrivateObjectDir:        services.MockPrivateDir,
		PublicObjectSearchPaths: []string{"public"},
		CacheTTL:                time.Minute,
	}
}

// NewTestDB opens a migrated in-memory sqlite database and registers it as the global DB
func NewTestDB(t *testing.T) *gorm.DB {
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

// NewTestApp builds the application router with a seeded admin account
func NewTestApp(t *testing.T, opts ...Option) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := &TestApp{
		DB:      NewTestDB(t),
		Config:  TestConfig(),
		Storage: services.NewMockObjectStorage(),
		Mailer:  services.NewMockMailer(),
		Cache:   services.NewMemoryCache(),
	}
	for _, opt := range opts {
		opt(app)
	}

	auth, err := services.NewAuthService(repository.NewUserRepository(app.DB), app.Config)
	require.NoError(t, err)
	require.NoError(t, auth.EnsureAdmin(context.Background(), app.Config.AdminUsername, app.Config.AdminPassword))
	app.Auth = auth

	router, err := routes.Setup(routes.Dependencies{
		DB:      app.DB,
		Config:  app.Config,
		Storage: app.Storage,
		Mailer:  app.Mailer,
		Cache:   app.Cache,
		Auth:    app.Auth,
	})
	require.NoError(t, err)
	app.Router = router
	return app
}

// AdminToken issues a valid admin session token
func (app *TestApp) AdminToken(t *testing.T) string {
	t.Helper()
	session, err := app.Auth.IssueToken(AdminUsername)
	require.NoError(t, err)
	return session.Token
}

// Authorize adds a bearer admin token to req
func (app *TestApp) Authorize(t *testing.T, req *http.Request) *http.Request {
	t.Helper()
	req.Header.Set("Authorization", "Bearer "+app.AdminToken(t))
	return req
}
