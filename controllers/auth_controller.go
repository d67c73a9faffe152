package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pawscare/vet-clinic-site/middleware"
	"github.com/pawscare/vet-clinic-site/services"
)

// Authenticator checks admin credentials
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*services.Session, error)
	TTL() time.Duration
}

// LoginRequest represents the admin login form
type LoginRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}

// AuthController handles admin sign-in
type AuthController struct {
	auth          Authenticator
	secureCookies bool
}

// NewAuthController creates the auth controller; secureCookies marks the session cookie Secure
func NewAuthController(auth Authenticator, secureCookies bool) *AuthController {
	return &AuthController{auth: auth, secureCookies: secureCookies}
}

// Login handles POST /api/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := ctl.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, CodeInvalidCredentials, "Invalid username or password")
			return
		}
		respondServerError(c, CodeInternal, "Failed to sign in", err)
		return
	}

	ctl.setSessionCookie(c, session.Token, int(ctl.auth.TTL().Seconds()))
	respondData(c, http.StatusOK, session)
}

// Logout handles POST /api/auth/logout
func (ctl *AuthController) Logout(c *gin.Context) {
	ctl.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Signed out",
	})
}

// Me handles GET /api/auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	username, err := middleware.GetUsername(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, CodeUnauthorized, "Authentication required")
		return
	}

	data := gin.H{"username": username}
	if claims, err := middleware.GetClaims(c); err == nil && claims.RegisteredClaims.Expiry > 0 {
		data["expiresAt"] = time.Unix(claims.RegisteredClaims.Expiry, 0).UTC()
	}
	respondData(c, http.StatusOK, data)
}

func (ctl *AuthController) setSessionCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   ctl.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
