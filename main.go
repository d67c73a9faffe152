package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pawscare/vet-clinic-site/config"
	"github.com/pawscare/vet-clinic-site/logger"
	"github.com/pawscare/vet-clinic-site/models"
	"github.com/pawscare/vet-clinic-site/repository"
	"github.com/pawscare/vet-clinic-site/routes"
	"github.com/pawscare/vet-clinic-site/services"
)

const serviceName = "vet-clinic-site"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(serviceName, cfg.GoEnv, cfg.LogLevel)
	log.Info().Str("env", cfg.GoEnv).Msg("Starting vet clinic site...")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := config.ConnectDatabase(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	db := config.GetDB()
	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	log.Info().Msg("Database migration completed successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cache, closeCache := newCache(ctx, cfg)
	defer closeCache()

	storage, err := newObjectStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize object storage")
	}

	mailer, err := newMailer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize mailer")
	}

	auth, err := services.NewAuthService(repository.NewUserRepository(db), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize auth service")
	}
	if err := auth.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed admin account")
	}

	router, err := routes.Setup(routes.Dependencies{
		DB:      db,
		Config:  cfg,
		Storage: storage,
		Mailer:  mailer,
		Cache:   cache,
		Auth:    auth,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build router")
	}

	port := ":" + cfg.Port
	log.Info().Str("address", "http://localhost"+port).Msg("Server is running")
	if err := router.Run(port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// newCache connects to Redis when REDIS_URL is set and falls back to an in-process cache
func newCache(ctx context.Context, cfg *config.Config) (services.Cache, func()) {
	if cfg.RedisURL == "" {
		log.Info().Msg("REDIS_URL not set, using in-memory response cache")
		return services.NewMemoryCache(), func() {}
	}

	redisCache, err := services.NewRedisCache(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, using in-memory response cache")
		return services.NewMemoryCache(), func() {}
	}

	log.Info().Msg("Response cache backed by Redis")
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis client")
		}
	}
}

// newObjectStorage returns S3 storage when a bucket is configured
func newObjectStorage(ctx context.Context, cfg *config.Config) (services.ObjectStorage, error) {
	if !cfg.StorageConfigured() {
		log.Warn().Msg("AWS_S3_BUCKET not set, object uploads are disabled")
		return services.DisabledObjectStorage{}, nil
	}
	return services.NewS3ObjectStorage(ctx, cfg)
}

// newMailer returns the mail API client when an API key is configured
func newMailer(cfg *config.Config) (services.Mailer, error) {
	if cfg.MailAPIKey == "" {
		log.Warn().Msg("MAIL_API_KEY not set, confirmation emails will only be logged")
		return services.DisabledMailer{}, nil
	}
	return services.NewHTTPMailer(cfg)
}
