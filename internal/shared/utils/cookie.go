package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brandvault/brandvault/internal/shared/config"
)

// SetSessionCookie stores the signed session token in an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(cfg.Name, token, maxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
}

func ClearSessionCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(cfg.Name, "", -1, cfg.Path, cfg.Domain, cfg.Secure, true)
}

// GetSessionToken reads the session cookie. Empty when absent.
func GetSessionToken(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}

func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
