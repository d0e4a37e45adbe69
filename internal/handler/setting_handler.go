package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkwell/internal/service"
)

type settingsView struct {
	SiteName         string   `json:"siteName"`
	LogoStorageID    string   `json:"logoStorageId"`
	LogoURL          string   `json:"logoUrl"`
	FaviconStorageID string   `json:"faviconStorageId"`
	FaviconURL       string   `json:"faviconUrl"`
	SEOTitle         string   `json:"seoTitle"`
	SEODescription   string   `json:"seoDescription"`
	SEOKeywords      []string `json:"seoKeywords"`
	PrimaryColor     string   `json:"primaryColor"`
	Phone            string   `json:"phone"`
	Zalo             string   `json:"zalo"`
	Facebook         string   `json:"facebook"`
	Address          string   `json:"address"`
}

// GetSettings returns the site settings with resolved image URLs.
func (a *API) GetSettings(c *gin.Context) {
	settings, err := a.settings.Get()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": a.settingsView(settings)})
}

type settingsUpdateRequest struct {
	SiteName         string   `json:"siteName"`
	LogoStorageID    string   `json:"logoStorageId"`
	FaviconStorageID string   `json:"faviconStorageId"`
	SEOTitle         string   `json:"seoTitle"`
	SEODescription   string   `json:"seoDescription"`
	SEOKeywords      []string `json:"seoKeywords"`
	PrimaryColor     string   `json:"primaryColor"`
	Phone            string   `json:"phone"`
	Zalo             string   `json:"zalo"`
	Facebook         string   `json:"facebook"`
	Address          string   `json:"address"`
}

// UpdateSettings replaces the site settings.
func (a *API) UpdateSettings(c *gin.Context) {
	var req settingsUpdateRequest
	if !bindJSON(c, &req, "invalid settings payload") {
		return
	}

	settings, err := a.settings.Update(service.SettingsInput{
		SiteName:         req.SiteName,
		LogoStorageID:    req.LogoStorageID,
		FaviconStorageID: req.FaviconStorageID,
		SEOTitle:         req.SEOTitle,
		SEODescription:   req.SEODescription,
		SEOKeywords:      req.SEOKeywords,
		PrimaryColor:     req.PrimaryColor,
		Phone:            req.Phone,
		Zalo:             req.Zalo,
		Facebook:         req.Facebook,
		Address:          req.Address,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": a.settingsView(settings)})
}

func (a *API) settingsView(settings service.Settings) settingsView {
	view := settingsView{
		SiteName:         settings.SiteName,
		LogoStorageID:    settings.LogoStorageID,
		FaviconStorageID: settings.FaviconStorageID,
		SEOTitle:         settings.SEOTitle,
		SEODescription:   settings.SEODescription,
		SEOKeywords:      settings.SEOKeywords,
		PrimaryColor:     settings.PrimaryColor,
		Phone:            settings.Phone,
		Zalo:             settings.Zalo,
		Facebook:         settings.Facebook,
		Address:          settings.Address,
	}
	if url, ok := a.blobs.URL(settings.LogoStorageID); ok {
		view.LogoURL = url
	}
	if url, ok := a.blobs.URL(settings.FaviconStorageID); ok {
		view.FaviconURL = url
	}
	return view
}
