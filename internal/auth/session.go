package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrSecretNotSet = errors.New("JWT_SECRET is not set")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the payload of the session cookie.
type Claims struct {
	UserID     int64  `json:"user_id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	ProviderID *int64 `json:"provider_id,omitempty"`
	jwt.RegisteredClaims
}

// Identity is what a login hands over to the token manager.
type Identity struct {
	UserID     int64
	Email      string
	Role       string
	Name       string
	ProviderID *int64
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrSecretNotSet
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a new session token. Every token carries a fresh jti so it can be revoked alone.
func (m *TokenManager) Issue(id Identity) (string, *Claims, error) {
	now := m.now()
	claims := &Claims{
		UserID:     id.UserID,
		Email:      id.Email,
		Role:       id.Role,
		Name:       id.Name,
		ProviderID: id.ProviderID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprintf("%d", id.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}
	return signed, claims, nil
}

func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return m.secret, nil
		},
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Remaining is how long the token stays valid, used as the revocation TTL.
func (m *TokenManager) Remaining(c *Claims) time.Duration {
	if c == nil || c.ExpiresAt == nil {
		return 0
	}
	d := c.ExpiresAt.Time.Sub(m.now())
	if d < 0 {
		return 0
	}
	return d
}
