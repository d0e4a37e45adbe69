package db

import "gorm.io/gorm"

// User is a staff directory entry. There is no credential field: the admin
// panel carries no authentication of its own and accounts are data only.
type User struct {
	gorm.Model
	Name   string `gorm:"size:120;not null"`
	Email  string `gorm:"size:200;uniqueIndex;not null"`
	Role   string `gorm:"size:20;not null;default:staff"`
	Active bool   `gorm:"index"`
}

const (
	// RoleAdmin may manage everything including users.
	RoleAdmin = "admin"
	// RoleEditor may manage content.
	RoleEditor = "editor"
	// RoleStaff is a plain directory entry.
	RoleStaff = "staff"
)
