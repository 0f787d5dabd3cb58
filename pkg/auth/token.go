package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// Claims are embedded in every issued token
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenPair is an access/refresh token pair bound to one user session
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenManager issues and verifies signed tokens. Access and refresh
// tokens are signed with separate secrets so one cannot stand in for
// the other.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	resetTTL      time.Duration
}

// NewTokenManager creates a token manager with explicit secrets and lifetimes
func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL, resetTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		resetTTL:      resetTTL,
	}
}

func (m *TokenManager) sign(userID uint, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			// A unique jti keeps tokens issued within the same second
			// distinct, which rotation's equality check relies on.
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *TokenManager) verify(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Token("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 || claims.Role == "" {
		return nil, apperror.Token("invalid token claims")
	}
	return claims, nil
}

// GenerateTokenPair issues a new access/refresh pair for a user identity
func (m *TokenManager) GenerateTokenPair(userID uint, role string) (*TokenPair, error) {
	accessToken, err := m.sign(userID, role, m.accessSecret, m.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := m.sign(userID, role, m.refreshSecret, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ValidateAccessToken verifies an access token and returns its claims
func (m *TokenManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	return m.verify(tokenString, m.accessSecret)
}

// ValidateRefreshToken verifies a refresh token and returns its claims
func (m *TokenManager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return m.verify(tokenString, m.refreshSecret)
}

// GenerateResetToken issues a short-lived password reset token. The
// signed token itself is the reset capability; nothing is persisted.
func (m *TokenManager) GenerateResetToken(userID uint, role string) (string, error) {
	return m.sign(userID, role, m.accessSecret, m.resetTTL)
}

// ValidateResetToken verifies a password reset token
func (m *TokenManager) ValidateResetToken(tokenString string) (*Claims, error) {
	return m.verify(tokenString, m.accessSecret)
}
