package middleware

import (
	"net/http"

	"spg-be/internal/auth"
	"spg-be/internal/logger"
	"spg-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClaimsKey holds the parsed *auth.Claims in the gin context.
const ClaimsKey = "session_claims"

// Session reads the session cookie. It is passive: a missing, invalid or revoked
// token leaves the request anonymous and RequireRole decides what to do with it.
func Session(tokens *auth.TokenManager, revoker auth.Revoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := logger.FromCtx(ctx)

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			log.Debug("session token rejected", zap.Error(err))
			c.Next()
			return
		}

		revoked, err := revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			log.Warn("revocation lookup failed", zap.Error(err))
			c.Next()
			return
		}
		if revoked {
			log.Debug("session token revoked", zap.String("jti", claims.ID))
			c.Next()
			return
		}

		user := utils.SessionUser{ID: claims.UserID, Email: claims.Email, Role: claims.Role}
		if claims.ProviderID != nil {
			user.ProviderID = *claims.ProviderID
		}
		ctx = utils.WithSessionUser(ctx, user)
		c.Request = c.Request.WithContext(ctx)
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// CurrentClaims returns the claims stored by Session.
func CurrentClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// RequireRole lets the request through only for an authenticated user holding one of roles.
// With no roles any authenticated user passes.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		user, ok := utils.SessionUserFrom(ctx)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized user"})
			return
		}

		if len(allowed) > 0 && !allowed[user.Role] {
			logger.FromCtx(ctx).Warn("role not allowed",
				zap.String("path", c.FullPath()),
				zap.Strings("allowed", roles),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized user"})
			return
		}

		c.Next()
	}
}
