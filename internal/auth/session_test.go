package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenManager_NoSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.ErrorIs(t, err, ErrSecretNotSet)
	assert.Equal(t, "JWT_SECRET is not set", err.Error())
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	m, err := NewTokenManager("testsecret", time.Hour)
	require.NoError(t, err)

	providerID := int64(4)
	tok, claims, err := m.Issue(Identity{
		UserID:     9,
		Email:      "farmer@spg.it",
		Role:       "farmer",
		Name:       "Mario",
		ProviderID: &providerID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.NotEmpty(t, claims.ID)

	t.Run("Success", func(t *testing.T) {
		parsed, err := m.Parse(tok)
		require.NoError(t, err)
		assert.Equal(t, int64(9), parsed.UserID)
		assert.Equal(t, "farmer@spg.it", parsed.Email)
		assert.Equal(t, "farmer", parsed.Role)
		require.NotNil(t, parsed.ProviderID)
		assert.Equal(t, int64(4), *parsed.ProviderID)
		assert.Equal(t, claims.ID, parsed.ID)
	})

	t.Run("Unique jti", func(t *testing.T) {
		_, other, err := m.Issue(Identity{UserID: 9, Role: "farmer"})
		require.NoError(t, err)
		assert.NotEqual(t, claims.ID, other.ID)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := m.Parse("invalid-token-string")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := m.Parse("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other, err := NewTokenManager("another", time.Hour)
		require.NoError(t, err)
		_, err = other.Parse(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Contains(t, err.Error(), "signature is invalid")
	})

	t.Run("WrongAlgorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1})
		s, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Parse(s)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenManager_Expired(t *testing.T) {
	m, err := NewTokenManager("testsecret", time.Hour)
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, claims, err := m.Issue(Identity{UserID: 1, Role: "client"})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, time.Duration(0), m.Remaining(claims))
}

func TestTokenManager_Remaining(t *testing.T) {
	m, err := NewTokenManager("testsecret", time.Hour)
	require.NoError(t, err)

	fixed := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }
	_, claims, err := m.Issue(Identity{UserID: 1, Role: "client"})
	require.NoError(t, err)

	m.now = func() time.Time { return fixed.Add(15 * time.Minute) }
	assert.Equal(t, 45*time.Minute, m.Remaining(claims))
	assert.Equal(t, time.Duration(0), m.Remaining(nil))
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, CheckPasswordHash("secret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestRevokers(t *testing.T) {
	ctx := context.Background()

	t.Run("Nop", func(t *testing.T) {
		var r Revoker = NopRevoker{}
		assert.NoError(t, r.Revoke(ctx, "jti", time.Minute))
		revoked, err := r.IsRevoked(ctx, "jti")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Redis key", func(t *testing.T) {
		assert.Equal(t, "blacklist:abc", blacklistKey("abc"))
	})

	t.Run("Redis unreachable", func(t *testing.T) {
		r := NewRedisRevokerFromClient(redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 100 * time.Millisecond,
			MaxRetries:  -1,
		}))
		defer r.Close()

		_, err := r.IsRevoked(ctx, "abc")
		assert.Error(t, err)

		// expired tokens never reach redis
		assert.NoError(t, r.Revoke(ctx, "abc", 0))
	})
}
