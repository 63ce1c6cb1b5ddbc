// Package models contains data models for the auth service.
package models

import "time"

// User represents a registered user account.
//
// Username and email are unique across all users; the database enforces
// both constraints. PasswordHash holds the bcrypt hash of the password and
// is never serialized.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
