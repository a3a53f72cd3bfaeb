package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"inventory-api/internal/config"
	"inventory-api/internal/model"
	"inventory-api/internal/result"
	"inventory-api/pkg/password"
)

// Refresh tokens live for a fixed window from issuance. Reissuing overwrites
// the previous token, so an account holds at most one live refresh token.
const refreshTokenTTL = 7 * 24 * time.Hour

// defaultRoleClaim is used when an account has no role name attached.
const defaultRoleClaim = "User"

type AuthService struct {
	users  UserStore
	hasher *password.Hasher
	jwt    config.JWTConfig
	logger *slog.Logger
	now    func() time.Time
}

func NewAuthService(users UserStore, hasher *password.Hasher, jwtCfg config.JWTConfig, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		jwt:    jwtCfg,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the time source. Tests use it to pin token expiries.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Login verifies credentials and issues a fresh access/refresh token pair.
// The "not found" and "inactive" cases share one message so callers cannot
// tell which applied.
func (s *AuthService) Login(ctx context.Context, email string, plaintext string) *result.Result[model.TokenResponse] {
	res := result.New[model.TokenResponse]()

	if strings.TrimSpace(email) == "" || strings.TrimSpace(plaintext) == "" {
		return res.Fail(result.StatusBadRequest, "Email and Password are required.")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("login lookup failed", "email", email, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred during login. Please try again later.")
	}
	if errors.Is(err, model.ErrNotFound) || !user.Active {
		return res.Fail(result.StatusUnauthenticated, "Invalid credentials or inactive user.")
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		return res.Fail(result.StatusUnauthenticated, "Invalid credentials.")
	}

	accessToken, err := s.mintAccessToken(user)
	if err != nil {
		s.logger.Error("access token minting failed", "email", email, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred during login. Please try again later.")
	}

	// Opaque random identifier; collision probability treated as negligible,
	// no uniqueness check against the store.
	refreshToken := uuid.NewString()
	if err := s.users.StoreRefreshToken(ctx, user.ID, refreshToken, s.now().Add(refreshTokenTTL)); err != nil {
		s.logger.Error("storing refresh token failed", "email", email, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred during login. Please try again later.")
	}

	s.logger.Info("user logged in", "user", user.FullName)
	return res.Succeed(model.TokenResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Role:         user.RoleName,
	}, "Login successful.")
}

// Refresh re-issues an access token for a live refresh token. The refresh
// token itself is not rotated. A token whose expiry equals the current time
// is already invalid.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) *result.Result[model.TokenResponse] {
	res := result.New[model.TokenResponse]()

	if strings.TrimSpace(refreshToken) == "" {
		return res.Fail(result.StatusBadRequest, "Refresh token is required.")
	}

	user, err := s.users.FindByRefreshToken(ctx, refreshToken)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("refresh lookup failed", "token", refreshToken, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while refreshing token. Please try again later.")
	}
	if errors.Is(err, model.ErrNotFound) ||
		user.RefreshTokenExpiry == nil || !user.RefreshTokenExpiry.After(s.now()) {
		return res.Fail(result.StatusUnauthenticated, "Invalid or expired refresh token.")
	}

	accessToken, err := s.mintAccessToken(user)
	if err != nil {
		s.logger.Error("access token minting failed", "token", refreshToken, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while refreshing token. Please try again later.")
	}

	if err := s.users.Touch(ctx); err != nil {
		s.logger.Error("refresh persistence failed", "token", refreshToken, "error", err)
		return res.Fail(result.StatusInternalError, "An error occurred while refreshing token. Please try again later.")
	}

	s.logger.Info("token refreshed", "user", user.FullName)
	return res.Succeed(model.TokenResponse{Token: accessToken}, "Token refreshed successfully.")
}

// ValidateToken verifies an access token's signature, lifetime, issuer and
// audience, returning its claims. Used by the auth middleware.
func (s *AuthService) ValidateToken(tokenString string) (*model.AuthClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.jwt.Secret), nil
	},
		jwt.WithIssuer(s.jwt.Issuer),
		jwt.WithAudience(s.jwt.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	claims := &model.AuthClaims{}
	claims.Email, _ = claimsMap["sub"].(string)
	claims.Role, _ = claimsMap["role"].(string)
	if claims.Email == "" {
		return nil, errors.New("invalid token subject")
	}

	return claims, nil
}

func (s *AuthService) mintAccessToken(user model.User) (string, error) {
	role := user.RoleName
	if role == "" {
		role = defaultRoleClaim
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": role,
		"iss":  s.jwt.Issuer,
		"aud":  s.jwt.Audience,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Duration(s.jwt.ExpiryMinutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwt.Secret))
}
