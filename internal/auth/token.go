package auth

import (
	"net/http"
	"strings"
	"time"
)

// CookieName is the HttpOnly cookie carrying the signed session token.
const CookieName = "spg_session"

// ExtractAccessToken reads the session token from the cookie, falling back to
// an "Authorization: Bearer" header for non-browser clients.
func ExtractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func sessionCookie(value string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// SetSessionCookie writes the session cookie so it expires with the token.
func SetSessionCookie(w http.ResponseWriter, token string, expires time.Time, secure bool) {
	c := sessionCookie(token, secure)
	c.Expires = expires
	http.SetCookie(w, c)
}

func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	c := sessionCookie("", secure)
	c.MaxAge = -1
	http.SetCookie(w, c)
}
