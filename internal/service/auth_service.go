package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal_profile/internal/models"
	"personal_profile/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput accepts a username or an email in the username field.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthService handles registration, login and session validation. Tokens
// are HS256 JWTs whose jti points at a server-side session row; deleting
// the row on logout invalidates the token before its signed expiry.
type AuthService struct {
	users      repository.Users
	sessions   repository.Sessions
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(users repository.Users, sessions repository.Sessions, cfg AuthConfig) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		signingKey: cfg.SigningKey,
		tokenTTL:   cfg.TokenTTL,
	}
}

// Claims binds a token to a user and to its server-side session via the
// registered jti claim.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// Register creates a user and logs them straight in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, string, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if username == "" || email == "" {
		return models.User{}, "", invalidf("username and email are required")
	}
	if len(in.Password) < minPasswordLength {
		return models.User{}, "", invalidf("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, username, email, string(hash))
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Login verifies credentials and issues a session token. The error never
// says whether the identifier or the password was wrong.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (models.User, string, error) {
	identifier := strings.TrimSpace(in.Username)
	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return models.User{}, "", err
	}
	if user == nil {
		return models.User{}, "", models.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return models.User{}, "", models.ErrUnauthorized
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return *user, token, nil
}

// Logout deletes the server-side session, so the same cookie can no longer
// re-authenticate.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return models.ErrUnauthorized
	}
	return s.sessions.Delete(ctx, claims.ID)
}

// ValidateToken returns the user id behind a token, requiring both a valid
// signature and a live session row.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (int64, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return 0, models.ErrUnauthorized
	}

	sess, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return 0, err
	}
	if sess == nil || sess.UserID != claims.UserID || time.Now().After(sess.ExpiresAt) {
		return 0, models.ErrUnauthorized
	}
	return claims.UserID, nil
}

// Profile returns the minimal user profile, never the password hash.
func (s *AuthService) Profile(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, models.ErrUnauthorized
	}
	user.PasswordHash = ""
	return *user, nil
}

func (s *AuthService) issueSession(ctx context.Context, userID int64) (string, error) {
	now := time.Now()
	sessionID := uuid.NewString()

	if err := s.sessions.Create(ctx, models.Session{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: now.Add(s.tokenTTL),
	}); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) parseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, models.ErrUnauthorized
	}
	return claims, nil
}
