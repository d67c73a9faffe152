package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	// SessionCookieName carries the admin token for browser sessions
	SessionCookieName = "admin_session"
	// AdminRole is the only role allowed through the admin guards
	AdminRole = "admin"

	usernameKey = "username"
	claimsKey   = "validated_claims"
)

var errNotAdmin = errors.New("token does not carry the admin role")

// TokenConfig describes how admin tokens are signed
type TokenConfig struct {
	Secret   []byte
	Issuer   string
	Audience string
}

// CustomClaims contains custom data we want from the token.
type CustomClaims struct {
	Role string `json:"role"`
}

// Validate rejects tokens that were not issued for the back office.
func (c CustomClaims) Validate(ctx context.Context) error {
	if c.Role != AdminRole {
		return errNotAdmin
	}
	return nil
}

// NewTokenValidator builds an HS256 validator for admin tokens
func NewTokenValidator(cfg TokenConfig) (*validator.Validator, error) {
	keyFunc := func(context.Context) (interface{}, error) {
		return cfg.Secret, nil
	}

	return validator.New(
		keyFunc,
		validator.HS256,
		cfg.Issuer,
		[]string{cfg.Audience},
		validator.WithCustomClaims(
			func() validator.CustomClaims {
				return &CustomClaims{}
			},
		),
		validator.WithAllowedClockSkew(time.Minute),
	)
}

// EnsureAdminToken guards API routes; requests without a valid admin token get a 401 JSON error.
// The token is read from the Authorization header or the session cookie.
func EnsureAdminToken(cfg TokenConfig) gin.HandlerFunc {
	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("Rejected admin token")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		if _, writeErr := w.Write([]byte(`{"success":false,"error":"Authentication required","code":"UNAUTHORIZED"}`)); writeErr != nil {
			log.Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
	return ensureValidToken(cfg, errorHandler)
}

// EnsureAdminPage guards server-rendered admin pages, redirecting to loginPath instead of failing
func EnsureAdminPage(cfg TokenConfig, loginPath string) gin.HandlerFunc {
	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		http.Redirect(w, r, loginPath, http.StatusFound)
	}
	return ensureValidToken(cfg, errorHandler)
}

func ensureValidToken(cfg TokenConfig, errorHandler jwtmiddleware.ErrorHandler) gin.HandlerFunc {
	jwtValidator, err := NewTokenValidator(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up the jwt validator")
	}

	middleware := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
		jwtmiddleware.WithTokenExtractor(jwtmiddleware.MultiTokenExtractor(
			jwtmiddleware.AuthHeaderTokenExtractor,
			jwtmiddleware.CookieTokenExtractor(SessionCookieName),
		)),
	)

	return func(c *gin.Context) {
		passed := false
		var handler http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			passed = true

			token := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
			c.Request = r
			c.Set(usernameKey, token.RegisteredClaims.Subject)
			c.Set(claimsKey, token)

			c.Next()
		}

		middleware.CheckJWT(handler).ServeHTTP(c.Writer, c.Request)

		// the error handler already wrote the response
		if !passed {
			c.Abort()
		}
	}
}

// GetUsername extracts the authenticated admin's username from the Gin context
func GetUsername(c *gin.Context) (string, error) {
	username, exists := c.Get(usernameKey)
	if !exists {
		return "", &AuthError{Code: "MISSING_USERNAME", Message: "Username not found in context"}
	}

	usernameStr, ok := username.(string)
	if !ok {
		return "", &AuthError{Code: "INVALID_USERNAME", Message: "Username is not a string"}
	}

	return usernameStr, nil
}

// GetClaims extracts the validated JWT claims from the Gin context
func GetClaims(c *gin.Context) (*validator.ValidatedClaims, error) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, &AuthError{Code: "MISSING_CLAIMS", Message: "Claims not found in context"}
	}

	validatedClaims, ok := claims.(*validator.ValidatedClaims)
	if !ok {
		return nil, &AuthError{Code: "INVALID_CLAIMS", Message: "Claims are not in the expected format"}
	}

	return validatedClaims, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
