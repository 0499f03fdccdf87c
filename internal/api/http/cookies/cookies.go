package cookies

import (
	"net/http"
	"time"

	"github.com/coursehub/coursehub-server/internal/model"
)

// Cookie names shared with the web client.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
	RoleCookie         = "role"
)

// Manager writes and clears the session cookies. Token cookies are HttpOnly;
// the role cookie is readable by the client for rendering decisions only and
// carries no authority.
type Manager struct {
	secure bool
	domain string
}

func NewManager(secure bool, domain string) *Manager {
	return &Manager{secure: secure, domain: domain}
}

// SetSession writes the token pair and role cookies on the response.
func (m *Manager) SetSession(w http.ResponseWriter, access, refresh string, role model.Role, accessTTL, refreshTTL time.Duration) {
	m.SetTokens(w, access, refresh, accessTTL, refreshTTL)

	roleCookie := m.tokenCookie(RoleCookie, string(role), refreshTTL)
	roleCookie.HttpOnly = false
	http.SetCookie(w, roleCookie)
}

// SetTokens writes only the token pair, leaving the role cookie untouched.
// Used on refresh, where the role has not changed.
func (m *Manager) SetTokens(w http.ResponseWriter, access, refresh string, accessTTL, refreshTTL time.Duration) {
	http.SetCookie(w, m.tokenCookie(AccessTokenCookie, access, accessTTL))
	http.SetCookie(w, m.tokenCookie(RefreshTokenCookie, refresh, refreshTTL))
}

// ClearSession expires all session cookies.
func (m *Manager) ClearSession(w http.ResponseWriter) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie, RoleCookie} {
		cookie := m.tokenCookie(name, "", 0)
		cookie.MaxAge = -1
		if name == RoleCookie {
			cookie.HttpOnly = false
		}
		http.SetCookie(w, cookie)
	}
}

// RefreshToken reads the refresh token cookie. Empty string when absent.
func RefreshToken(r *http.Request) string {
	cookie, err := r.Cookie(RefreshTokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// AccessToken reads the access token cookie. Empty string when absent.
func AccessToken(r *http.Request) string {
	cookie, err := r.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (m *Manager) tokenCookie(name, value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   m.domain,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
	if ttl > 0 {
		cookie.Expires = time.Now().Add(ttl)
		cookie.MaxAge = int(ttl.Seconds())
	}
	return cookie
}
