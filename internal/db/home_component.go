package db

import "gorm.io/gorm"

// HomeComponent is a configurable section of the public home page. Type
// selects the config shape and the renderer; Config holds the JSON-encoded
// configuration blob written by the admin form.
type HomeComponent struct {
	gorm.Model
	Name   string `gorm:"size:120;not null"`
	Type   string `gorm:"size:40;not null;index"`
	Active bool   `gorm:"index"`
	Order  int    `gorm:"column:sort_order;default:0;index"`
	Config string `gorm:"type:text"`
}

// TableName keeps the table name aligned with the admin wording.
func (HomeComponent) TableName() string {
	return "home_components"
}
