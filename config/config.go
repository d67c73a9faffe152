package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	DatabaseURL    string
	Port           string
	GoEnv          string
	LogLevel       string
	AllowedOrigins []string
	SiteURL        string

	// Admin sessions
	JWTSecret     string
	JWTIssuer     string
	JWTAudience   string
	SessionTTL    time.Duration
	AdminUsername string
	AdminPassword string

	// Object storage
	AWSRegion               string
	AWSS3Bucket             string
	AWSS3Endpoint           string
	AWSAccessKeyID          string
	AWSSecretAccessKey      string
	PrivateObjectDir        string
	PublicObjectSearchPaths []string

	// Transactional mail
	MailAPIURL      string
	MailAPIKey      string
	MailFromAddress string
	MailFromName    string

	// Response cache
	RedisURL string
	CacheTTL time.Duration
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		if err := godotenv.Load(); err != nil {
			// In production the variables are set directly on the process
			log.Debug().Msg("No .env file found, using system environment variables")
		}
	} else {
		log.Info().Str("file", envFile).Msg("Loaded configuration")
	}

	sessionTTL, err := getDuration("SESSION_TTL", 12*time.Hour)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getDuration("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	config := &Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		Port:           getEnv("PORT", "8080"),
		GoEnv:          getEnv("GO_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getList("ALLOWED_ORIGINS", []string{"*"}),
		SiteURL:        getEnv("SITE_URL", "http://localhost:8080"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTIssuer:     getEnv("JWT_ISSUER", "pawscare-admin"),
		JWTAudience:   getEnv("JWT_AUDIENCE", "pawscare-site"),
		SessionTTL:    sessionTTL,
		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		AWSRegion:               getEnv("AWS_REGION", "us-east-1"),
		AWSS3Bucket:             getEnv("AWS_S3_BUCKET", ""),
		AWSS3Endpoint:           getEnv("AWS_S3_ENDPOINT", ""),
		AWSAccessKeyID:          getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:      getEnv("AWS_SECRET_ACCESS_KEY", ""),
		PrivateObjectDir:        strings.Trim(getEnv("PRIVATE_OBJECT_DIR", "private"), "/"),
		PublicObjectSearchPaths: getList("PUBLIC_OBJECT_SEARCH_PATHS", []string{"public"}),

		MailAPIURL:      getEnv("MAIL_API_URL", "https://api.sendgrid.com/v3/mail/send"),
		MailAPIKey:      getEnv("MAIL_API_KEY", ""),
		MailFromAddress: getEnv("MAIL_FROM_ADDRESS", "no-reply@pawscare.example"),
		MailFromName:    getEnv("MAIL_FROM_NAME", "PawsCare Veterinary Clinics"),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: cacheTTL,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.IsProduction() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	if c.PrivateObjectDir == "" {
		return fmt.Errorf("PRIVATE_OBJECT_DIR must not be empty")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// StorageConfigured reports whether an object storage bucket is available
func (c *Config) StorageConfigured() bool {
	return c.AWSS3Bucket != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getList splits a comma separated variable, dropping blank entries
func getList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 30m or 12h: %w", key, err)
	}
	return d, nil
}
