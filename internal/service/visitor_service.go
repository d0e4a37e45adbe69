package service

import (
	"errors"
	"strings"
	"time"

	"github.com/inkwell/internal/db"
	"gorm.io/gorm"
)

// VisitorService records public page views and keeps per-browser visit
// aggregates.
type VisitorService struct {
	db *gorm.DB
}

// NewVisitorService creates a VisitorService instance.
func NewVisitorService(gdb *gorm.DB) *VisitorService {
	return &VisitorService{db: gdb}
}

// VisitInput describes one page view.
type VisitInput struct {
	VisitorID string
	Path      string
	UserAgent string
}

// VisitorStats aggregates traffic for the admin dashboard.
type VisitorStats struct {
	UniqueVisitors int64 `json:"uniqueVisitors"`
	TotalVisits    int64 `json:"totalVisits"`
}

// Track upserts the visitor aggregate and appends a visit row. A visit
// with no visitor id is still counted, just not attributed.
func (s *VisitorService) Track(input VisitInput) (isNew bool, err error) {
	now := time.Now()
	visitorID := strings.TrimSpace(input.VisitorID)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if visitorID != "" {
			var visitor db.Visitor
			findErr := tx.Where("visitor_id = ?", visitorID).First(&visitor).Error
			switch {
			case findErr == nil:
				if err := tx.Model(&visitor).Updates(map[string]interface{}{
					"last_seen":   now,
					"visit_count": gorm.Expr("visit_count + 1"),
				}).Error; err != nil {
					return err
				}
			case errors.Is(findErr, gorm.ErrRecordNotFound):
				isNew = true
				if err := tx.Create(&db.Visitor{
					VisitorID:  visitorID,
					FirstSeen:  now,
					LastSeen:   now,
					VisitCount: 1,
				}).Error; err != nil {
					return err
				}
			default:
				return findErr
			}
		}

		return tx.Create(&db.Visit{
			VisitorID: visitorID,
			Path:      strings.TrimSpace(input.Path),
			UserAgent: strings.TrimSpace(input.UserAgent),
		}).Error
	})
	if err != nil {
		return false, err
	}
	return isNew, nil
}

// Stats returns the traffic totals.
func (s *VisitorService) Stats() (VisitorStats, error) {
	var stats VisitorStats
	if err := s.db.Model(&db.Visitor{}).Count(&stats.UniqueVisitors).Error; err != nil {
		return stats, err
	}
	if err := s.db.Model(&db.Visit{}).Count(&stats.TotalVisits).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
