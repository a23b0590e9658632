package models

import "gorm.io/gorm"

// User is an admin account. The public site never touches this table.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
