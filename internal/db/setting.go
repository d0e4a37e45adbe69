package db

import "gorm.io/gorm"

// Setting stores one admin-configurable site value as a key-value row.
type Setting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName keeps the table name plural.
func (Setting) TableName() string {
	return "settings"
}

const (
	// SettingKeySiteName is the public site name.
	SettingKeySiteName = "site_name"
	// SettingKeyLogoStorageID references the uploaded logo blob.
	SettingKeyLogoStorageID = "logo_storage_id"
	// SettingKeyFaviconStorageID references the uploaded favicon blob.
	SettingKeyFaviconStorageID = "favicon_storage_id"
	// SettingKeySEOTitle is the default <title> for public pages.
	SettingKeySEOTitle = "seo_title"
	// SettingKeySEODescription is the meta description.
	SettingKeySEODescription = "seo_description"
	// SettingKeySEOKeywords holds the meta keywords as a JSON array.
	SettingKeySEOKeywords = "seo_keywords"
	// SettingKeyPrimaryColor is the site accent color.
	SettingKeyPrimaryColor = "primary_color"
	// SettingKeyPhone is the studio contact phone.
	SettingKeyPhone = "phone"
	// SettingKeyZalo is the studio Zalo contact.
	SettingKeyZalo = "zalo"
	// SettingKeyFacebook is the studio Facebook page URL.
	SettingKeyFacebook = "facebook"
	// SettingKeyAddress is the studio street address.
	SettingKeyAddress = "address"
)
