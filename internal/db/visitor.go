package db

import (
	"time"

	"gorm.io/gorm"
)

// Visitor aggregates repeat visits from one cookie-identified browser.
type Visitor struct {
	gorm.Model
	VisitorID  string `gorm:"size:64;uniqueIndex;not null"`
	FirstSeen  time.Time
	LastSeen   time.Time
	VisitCount int `gorm:"default:0"`
}

// Visit is one recorded page view.
type Visit struct {
	gorm.Model
	VisitorID string `gorm:"size:64;index"`
	Path      string `gorm:"size:255"`
	UserAgent string `gorm:"size:255"`
}
