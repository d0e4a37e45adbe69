package db

import "gorm.io/gorm"

// Menu is a navigation entry shown in the public header.
// Lower Order values come first.
type Menu struct {
	gorm.Model
	Name   string `gorm:"size:120;not null"`
	URL    string `gorm:"size:255;not null"`
	Order  int    `gorm:"column:sort_order;default:0;index"`
	Active bool   `gorm:"index"`
}
