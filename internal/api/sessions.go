package api

import (
	"net/http"

	"spg-be/internal/auth"
	"spg-be/internal/logger"
	"spg-be/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionUser struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	ProviderID *int64 `json:"provider_id,omitempty"`
}

// @Summary Log in
// @Tags sessions
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} sessionUser
// @Failure 401 {object} map[string]string
// @Router /api/sessions [post]
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	email := req.Email
	if email == "" {
		email = req.Username
	}

	ctx := c.Request.Context()
	id, err := s.Users.Login(ctx, email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, claims, err := s.Tokens.Issue(id)
	if err != nil {
		writeError(c, err)
		return
	}
	auth.SetSessionCookie(c.Writer, token, claims.ExpiresAt.Time, s.CookieSecure)

	c.JSON(http.StatusOK, sessionUser{
		ID: id.UserID, Email: id.Email, Name: id.Name, Role: id.Role, ProviderID: id.ProviderID,
	})
}

// @Summary Current session user
// @Tags sessions
// @Produce json
// @Success 200 {object} sessionUser
// @Failure 401 {object} map[string]any
// @Router /api/sessions/current [get]
func (s *Server) currentSession(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "error": "Unauthenticated user!"})
		return
	}
	c.JSON(http.StatusOK, sessionUser{
		ID: claims.UserID, Email: claims.Email, Name: claims.Name, Role: claims.Role, ProviderID: claims.ProviderID,
	})
}

// @Summary Log out
// @Tags sessions
// @Router /api/sessions/current [delete]
func (s *Server) logout(c *gin.Context) {
	if claims, ok := middleware.CurrentClaims(c); ok {
		ctx := c.Request.Context()
		if err := s.Revoker.Revoke(ctx, claims.ID, s.Tokens.Remaining(claims)); err != nil {
			logger.FromCtx(ctx).Warn("failed to revoke session", zap.Error(err))
		}
	}
	auth.ClearSessionCookie(c.Writer, s.CookieSecure)
	c.String(http.StatusOK, "Logout completed!")
}
