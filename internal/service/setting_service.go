package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/inkwell/internal/db"
	"github.com/inkwell/internal/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultSiteName is used until the admin sets a name of their own.
const DefaultSiteName = "Inkwell Tattoo Studio"

// Settings is the singleton site configuration assembled from the
// key-value rows.
type Settings struct {
	SiteName         string
	LogoStorageID    string
	FaviconStorageID string
	SEOTitle         string
	SEODescription   string
	SEOKeywords      []string
	PrimaryColor     string
	Phone            string
	Zalo             string
	Facebook         string
	Address          string
}

// SettingsInput carries a full replacement of the site settings.
type SettingsInput struct {
	SiteName         string
	LogoStorageID    string
	FaviconStorageID string
	SEOTitle         string
	SEODescription   string
	SEOKeywords      []string
	PrimaryColor     string
	Phone            string
	Zalo             string
	Facebook         string
	Address          string
}

// SettingService reads and updates the site settings.
type SettingService struct {
	db    *gorm.DB
	blobs storage.Store
}

// NewSettingService creates a SettingService instance.
func NewSettingService(gdb *gorm.DB, blobs storage.Store) *SettingService {
	return &SettingService{db: gdb, blobs: blobs}
}

var settingKeys = []string{
	db.SettingKeySiteName,
	db.SettingKeyLogoStorageID,
	db.SettingKeyFaviconStorageID,
	db.SettingKeySEOTitle,
	db.SettingKeySEODescription,
	db.SettingKeySEOKeywords,
	db.SettingKeyPrimaryColor,
	db.SettingKeyPhone,
	db.SettingKeyZalo,
	db.SettingKeyFacebook,
	db.SettingKeyAddress,
}

// Get reads the settings, substituting defaults for anything unset.
func (s *SettingService) Get() (Settings, error) {
	result := Settings{SiteName: DefaultSiteName}

	var records []db.Setting
	if err := s.db.Where("key IN ?", settingKeys).Find(&records).Error; err != nil {
		return result, fmt.Errorf("load settings: %w", err)
	}

	for _, record := range records {
		switch record.Key {
		case db.SettingKeySiteName:
			if strings.TrimSpace(record.Value) != "" {
				result.SiteName = record.Value
			}
		case db.SettingKeyLogoStorageID:
			result.LogoStorageID = record.Value
		case db.SettingKeyFaviconStorageID:
			result.FaviconStorageID = record.Value
		case db.SettingKeySEOTitle:
			result.SEOTitle = record.Value
		case db.SettingKeySEODescription:
			result.SEODescription = record.Value
		case db.SettingKeySEOKeywords:
			result.SEOKeywords = decodeKeywords(record.Value)
		case db.SettingKeyPrimaryColor:
			result.PrimaryColor = record.Value
		case db.SettingKeyPhone:
			result.Phone = record.Value
		case db.SettingKeyZalo:
			result.Zalo = record.Value
		case db.SettingKeyFacebook:
			result.Facebook = record.Value
		case db.SettingKeyAddress:
			result.Address = record.Value
		}
	}

	return result, nil
}

// Update saves the settings. A replaced logo or favicon blob is deleted
// from storage once the new value is committed.
func (s *SettingService) Update(input SettingsInput) (Settings, error) {
	previous, err := s.Get()
	if err != nil {
		return Settings{}, err
	}

	sanitized := Settings{
		SiteName:         strings.TrimSpace(input.SiteName),
		LogoStorageID:    strings.TrimSpace(input.LogoStorageID),
		FaviconStorageID: strings.TrimSpace(input.FaviconStorageID),
		SEOTitle:         strings.TrimSpace(input.SEOTitle),
		SEODescription:   strings.TrimSpace(input.SEODescription),
		SEOKeywords:      trimKeywords(input.SEOKeywords),
		PrimaryColor:     strings.TrimSpace(input.PrimaryColor),
		Phone:            strings.TrimSpace(input.Phone),
		Zalo:             strings.TrimSpace(input.Zalo),
		Facebook:         strings.TrimSpace(input.Facebook),
		Address:          strings.TrimSpace(input.Address),
	}
	if sanitized.SiteName == "" {
		sanitized.SiteName = DefaultSiteName
	}

	values := map[string]string{
		db.SettingKeySiteName:         sanitized.SiteName,
		db.SettingKeyLogoStorageID:    sanitized.LogoStorageID,
		db.SettingKeyFaviconStorageID: sanitized.FaviconStorageID,
		db.SettingKeySEOTitle:         sanitized.SEOTitle,
		db.SettingKeySEODescription:   sanitized.SEODescription,
		db.SettingKeySEOKeywords:      encodeKeywords(sanitized.SEOKeywords),
		db.SettingKeyPrimaryColor:     sanitized.PrimaryColor,
		db.SettingKeyPhone:            sanitized.Phone,
		db.SettingKeyZalo:             sanitized.Zalo,
		db.SettingKeyFacebook:         sanitized.Facebook,
		db.SettingKeyAddress:          sanitized.Address,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, key := range settingKeys {
			if err := upsertSetting(tx, key, values[key]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Settings{}, fmt.Errorf("update settings: %w", err)
	}

	if previous.LogoStorageID != "" && previous.LogoStorageID != sanitized.LogoStorageID {
		_ = s.blobs.Delete(previous.LogoStorageID)
	}
	if previous.FaviconStorageID != "" && previous.FaviconStorageID != sanitized.FaviconStorageID {
		_ = s.blobs.Delete(previous.FaviconStorageID)
	}

	return sanitized, nil
}

func upsertSetting(tx *gorm.DB, key, value string) error {
	setting := db.Setting{Key: key, Value: value}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}

func decodeKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var keywords []string
	if err := json.Unmarshal([]byte(raw), &keywords); err != nil {
		return nil
	}
	return keywords
}

func encodeKeywords(keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	data, err := json.Marshal(keywords)
	if err != nil {
		return ""
	}
	return string(data)
}

func trimKeywords(keywords []string) []string {
	var out []string
	for _, keyword := range keywords {
		if trimmed := strings.TrimSpace(keyword); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
