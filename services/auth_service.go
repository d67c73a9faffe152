package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	appConfig "github.com/pawscare/vet-clinic-site/config"
	"github.com/pawscare/vet-clinic-site/repository"
)

// AdminRole is the role claim carried by every back-office token
const AdminRole = "admin"

// ErrInvalidCredentials is returned by Login for an unknown user or a wrong password
var ErrInvalidCredentials = errors.New("invalid username or password")

// dummyHash is compared against when the user does not exist so both failure paths cost one bcrypt round
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// AdminClaims is the payload of a back-office session token
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Session is an issued back-office token
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
}

// AuthService verifies admin credentials and issues session tokens
type AuthService struct {
	users    *repository.UserRepository
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService creates the admin auth service. Without a JWT secret a random one is generated,
// which invalidates all sessions on restart.
func NewAuthService(users *repository.UserRepository, cfg *appConfig.Config) (*AuthService, error) {
	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		log.Warn().Msg("JWT_SECRET not set, using a random secret; admin sessions will not survive a restart")
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &AuthService{
		users:    users,
		secret:   secret,
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// Secret returns the HMAC key tokens are signed with
func (s *AuthService) Secret() []byte {
	return s.secret
}

// Issuer returns the iss claim of issued tokens
func (s *AuthService) Issuer() string {
	return s.issuer
}

// Audience returns the aud claim of issued tokens
func (s *AuthService) Audience() string {
	return s.audience
}

// TTL returns how long an issued token stays valid
func (s *AuthService) TTL() time.Duration {
	return s.ttl
}

// HashPassword returns the bcrypt hash of password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// EnsureAdmin creates the admin account, or resets its password when it no longer matches.
// Empty credentials are ignored.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		log.Warn().Msg("ADMIN_USERNAME/ADMIN_PASSWORD not set, no admin account seeded")
		return nil
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil && bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)) == nil {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := s.users.SavePasswordHash(ctx, username, hash); err != nil {
		return err
	}

	log.Info().Str("username", username).Msg("Admin account seeded")
	return nil
}

// Login checks the credentials and issues a session token
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.IssueToken(user.Username)
}

// IssueToken signs an HS256 admin token for username
func (s *AuthService) IssueToken(username string) (*Session, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := AdminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
		Username:  username,
	}, nil
}
