// Package routes assembles the HTTP surface: the JSON API, object streaming and the rendered pages.
package routes

import (
	"errors"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pawscare/vet-clinic-site/config"
	"github.com/pawscare/vet-clinic-site/controllers"
	"github.com/pawscare/vet-clinic-site/middleware"
	"github.com/pawscare/vet-clinic-site/models"
	"github.com/pawscare/vet-clinic-site/repository"
	"github.com/pawscare/vet-clinic-site/services"
	"github.com/pawscare/vet-clinic-site/web"
)

// LoginPath is where unauthenticated admin page requests are sent
const LoginPath = "/admin/login"

// Dependencies are the collaborators the router wires into handlers
type Dependencies struct {
	DB      *gorm.DB
	Config  *config.Config
	Storage services.ObjectStorage
	Mailer  services.Mailer
	Cache   services.Cache
	Auth    *services.AuthService
}

func (d Dependencies) validate() error {
	switch {
	case d.DB == nil:
		return errors.New("routes: database is required")
	case d.Config == nil:
		return errors.New("routes: config is required")
	case d.Storage == nil:
		return errors.New("routes: object storage is required")
	case d.Mailer == nil:
		return errors.New("routes: mailer is required")
	case d.Cache == nil:
		return errors.New("routes: cache is required")
	case d.Auth == nil:
		return errors.New("routes: auth service is required")
	}
	return nil
}

// Setup builds the application router
func Setup(deps Dependencies) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	cfg := deps.Config

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	router.Use(middleware.Language())

	tokens := middleware.TokenConfig{
		Secret:   deps.Auth.Secret(),
		Issuer:   deps.Auth.Issuer(),
		Audience: deps.Auth.Audience(),
	}
	requireAdmin := middleware.EnsureAdminToken(tokens)
	requireAdminPage := middleware.EnsureAdminPage(tokens, LoginPath)

	packages := controllers.NewServicePackageController(repository.New[models.ServicePackage](deps.DB), deps.Cache, cfg.CacheTTL)
	reviews := controllers.NewCustomerReviewController(repository.New[models.CustomerReview](deps.DB), deps.Cache, cfg.CacheTTL)
	partners := controllers.NewPartnerController(repository.New[models.Partner](deps.DB), deps.Cache, cfg.CacheTTL)
	discounts := controllers.NewOpeningDiscountController(
		repository.NewOpeningDiscountRepository(deps.DB),
		services.NewNotificationService(deps.Mailer, cfg.SiteURL),
	)
	objects := controllers.NewObjectController(deps.Storage, repository.New[models.Partner](deps.DB), partners)
	auth := controllers.NewAuthController(deps.Auth, cfg.IsProduction())

	api := router.Group("/api")
	{
		api.GET("/health", controllers.HealthCheck)
		api.GET("/database/status", controllers.DatabaseStatus)
		api.GET("/translations/:lang", controllers.GetTranslations)

		api.POST("/auth/login", auth.Login)
		api.POST("/auth/logout", auth.Logout)
		api.GET("/auth/me", requireAdmin, auth.Me)

		resource(api, "/service-packages", requireAdmin, packages.List, packages.Get, packages.Create, packages.Update, packages.Delete)
		resource(api, "/customer-reviews", requireAdmin, reviews.List, reviews.Get, reviews.Create, reviews.Update, reviews.Delete)
		resource(api, "/partners", requireAdmin, partners.List, partners.Get, partners.Create, partners.Update, partners.Delete)
		api.PUT("/partners/:id/logo", requireAdmin, objects.SetPartnerLogo)

		api.POST("/opening-discount", discounts.Create)
		api.GET("/opening-discount", requireAdmin, discounts.List)
		api.GET("/opening-discount/check-phone/:phoneNumber", discounts.CheckPhone)
		api.GET("/opening-discount/check-email/:email", discounts.CheckEmail)

		api.POST("/objects/upload", requireAdmin, objects.UploadURL)
	}

	router.GET("/objects/*path", objects.ServePrivate)
	router.GET("/public-objects/*path", objects.ServePublic)

	site := web.NewSiteHandler(deps.DB, renderer)
	admin := web.NewAdminHandler(deps.DB, renderer, web.DefaultScreens(deps.DB))

	router.StaticFS("/static", web.StaticFiles())
	router.GET("/", site.Home)
	router.GET(LoginPath, admin.Login)
	adminPages := router.Group("/admin", requireAdminPage)
	{
		adminPages.GET("", admin.Dashboard)
		adminPages.GET("/:entity", admin.Manage)
	}
	router.NoRoute(site.NotFound)

	return router, nil
}

// resource mounts the five CRUD routes; reads are public and writes go through guard
func resource(group *gin.RouterGroup, path string, guard gin.HandlerFunc, list, get, create, update, remove gin.HandlerFunc) {
	group.GET(path, list)
	group.GET(path+"/:id", get)
	group.POST(path, guard, create)
	group.PUT(path+"/:id", guard, update)
	group.DELETE(path+"/:id", guard, remove)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{controllers.CacheHeader, middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
