package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/college/skillbridge/internal/config"
)

// CookieWriter attaches and clears the auth cookies. Both cookies are
// HttpOnly so scripts never see token material.
type CookieWriter struct {
	accessName  string
	refreshName string
	domain      string
	secure      bool
	sameSite    http.SameSite
}

func NewCookieWriter(cfg config.CookieConfig) *CookieWriter {
	secure := true
	if cfg.Secure != nil {
		secure = *cfg.Secure
	}
	return &CookieWriter{
		accessName:  cfg.AccessName,
		refreshName: cfg.RefreshName,
		domain:      cfg.Domain,
		secure:      secure,
		sameSite:    parseSameSite(cfg.SameSite),
	}
}

func (w *CookieWriter) AccessCookieName() string  { return w.accessName }
func (w *CookieWriter) RefreshCookieName() string { return w.refreshName }

// SetAuthCookies writes both tokens with max-age matching each token's TTL.
func (w *CookieWriter) SetAuthCookies(c *gin.Context, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	c.SetSameSite(w.sameSite)
	c.SetCookie(w.accessName, accessToken, int(accessTTL.Seconds()), "/", w.domain, w.secure, true)
	c.SetCookie(w.refreshName, refreshToken, int(refreshTTL.Seconds()), "/", w.domain, w.secure, true)
}

// ClearAuthCookies expires both cookies immediately.
func (w *CookieWriter) ClearAuthCookies(c *gin.Context) {
	c.SetSameSite(w.sameSite)
	c.SetCookie(w.accessName, "", -1, "/", w.domain, w.secure, true)
	c.SetCookie(w.refreshName, "", -1, "/", w.domain, w.secure, true)
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
