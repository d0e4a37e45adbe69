package handler

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Admin UI preferences live in the cookie session, keyed per browser.
// They are presentation state only and never touch the database.
const (
	prefThemeKey  = "admin_theme"
	prefLocaleKey = "admin_locale"

	defaultTheme  = "light"
	defaultLocale = "vi"
)

// GetPrefs returns the admin UI preferences for this session.
func (a *API) GetPrefs(c *gin.Context) {
	session := sessions.Default(c)

	theme, _ := session.Get(prefThemeKey).(string)
	if theme == "" {
		theme = defaultTheme
	}
	locale, _ := session.Get(prefLocaleKey).(string)
	if locale == "" {
		locale = defaultLocale
	}

	c.JSON(http.StatusOK, gin.H{"theme": theme, "locale": locale})
}

type prefsUpdateRequest struct {
	Theme  string `json:"theme"`
	Locale string `json:"locale"`
}

// UpdatePrefs stores the admin UI preferences in the session.
func (a *API) UpdatePrefs(c *gin.Context) {
	var req prefsUpdateRequest
	if !bindJSON(c, &req, "invalid preferences payload") {
		return
	}

	theme := strings.TrimSpace(req.Theme)
	if theme != "" && theme != "light" && theme != "dark" {
		respondError(c, http.StatusBadRequest, "theme must be light or dark")
		return
	}

	session := sessions.Default(c)
	if theme != "" {
		session.Set(prefThemeKey, theme)
	}
	if locale := strings.TrimSpace(req.Locale); locale != "" {
		session.Set(prefLocaleKey, locale)
	}
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save preferences")
		return
	}

	a.GetPrefs(c)
}

// GetStats returns dashboard traffic totals.
func (a *API) GetStats(c *gin.Context) {
	stats, err := a.visitors.Stats()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load stats")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
