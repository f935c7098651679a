package service

import (
	"context"
	"errors"
	"time"

	"github.com/farmlink/internal/config"
	"github.com/farmlink/internal/models"
	"github.com/farmlink/internal/repository"
	"github.com/farmlink/internal/session"
	"github.com/farmlink/pkg/crypto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials never distinguishes a wrong email from a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// AuthService handles registration, login, and session resolution
type AuthService struct {
	userRepo   *repository.UserRepository
	sessions   session.Store
	sessionCfg config.SessionConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repository.UserRepository, sessions session.Store, sessionCfg config.SessionConfig) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		sessions:   sessions,
		sessionCfg: sessionCfg,
	}
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Username    string             `json:"username" binding:"required,min=2,max=20"`
	Email       string             `json:"email" binding:"required,email"`
	Password    string             `json:"password" binding:"required,min=6,max=100"`
	AccountType models.AccountType `json:"account_type" binding:"required,oneof=farmer buyer"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the session token response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// SessionClaims represents the JWT claims of a session token
type SessionClaims struct {
	UserID    uint   `json:"user_id"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Register registers a new user
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	// Check if username exists
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	// Check if email exists
	exists, err = s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	// Hash password
	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AccountType:  req.AccountType,
		ImageFile:    models.DefaultImageFile,
	}

	// The repository maps unique-index races to the same duplicate errors
	// the pre-checks report.
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Login authenticates a user by email, creates a session record, and returns
// a signed session token.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	ttl := time.Duration(s.sessionCfg.ExpireHours) * time.Hour
	sessionID := uuid.NewString()
	if err := s.sessions.Create(ctx, sessionID, user.ID, ttl); err != nil {
		return nil, err
	}

	return s.signToken(user.ID, sessionID, ttl)
}

// Logout invalidates the session carried by the token. Idempotent: a second
// logout, an unknown session, or a garbled token all succeed quietly.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.SessionID)
}

// CurrentUser resolves a session token to its user. The session record must
// still exist; a logged-out token is rejected even before its JWT expiry.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, ErrInvalidSession
	}

	userID, ok, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !ok || userID != claims.UserID {
		return nil, ErrInvalidSession
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}

// signToken signs a session token for a user
func (s *AuthService) signToken(userID uint, sessionID string, ttl time.Duration) (*TokenResponse, error) {
	claims := &SessionClaims{
		UserID:    userID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "farmlink",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.sessionCfg.Secret))
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl / time.Second),
	}, nil
}

// parseToken validates a session token and returns its claims
func (s *AuthService) parseToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.sessionCfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidSession
}

// CookieName returns the configured session cookie name
func (s *AuthService) CookieName() string {
	return s.sessionCfg.CookieName
}

// SessionTTL returns the configured session lifetime
func (s *AuthService) SessionTTL() time.Duration {
	return time.Duration(s.sessionCfg.ExpireHours) * time.Hour
}
